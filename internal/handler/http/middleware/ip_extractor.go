// Package middleware contains HTTP middleware shared by the API server:
// client IP extraction, per-IP rate limiting, CORS and Content-Security-Policy.
package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"slices"
	"strings"

	"newsportal/pkg/config"
)

// IPExtractor decides which address a request is attributed to.
type IPExtractor interface {
	ExtractIP(r *http.Request) (string, error)
}

// RemoteAddrExtractor uses the TCP peer. Use it when nothing sits in front of
// the server.
type RemoteAddrExtractor struct{}

func (e *RemoteAddrExtractor) ExtractIP(r *http.Request) (string, error) {
	addr, err := peerAddr(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

// TrustedProxyConfig lists the reverse proxies whose forwarding headers are honoured.
type TrustedProxyConfig struct {
	Enabled      bool
	AllowedCIDRs []netip.Prefix
}

// IsTrusted reports whether the peer in remoteAddr ("ip:port" or "ip") is
// inside one of the allowed ranges.
func (c *TrustedProxyConfig) IsTrusted(remoteAddr string) bool {
	addr, err := peerAddr(remoteAddr)
	if err != nil {
		return false
	}
	return slices.ContainsFunc(c.AllowedCIDRs, func(p netip.Prefix) bool { return p.Contains(addr) })
}

// LoadTrustedProxyConfig reads TRUST_PROXY and TRUSTED_PROXIES. Enabling
// trust without any proxy, or listing an unparsable one, is an error.
func LoadTrustedProxyConfig() (*TrustedProxyConfig, error) {
	cfg := &TrustedProxyConfig{Enabled: config.GetEnvBool("TRUST_PROXY", false)}
	if !cfg.Enabled {
		return cfg, nil
	}
	entries := config.GetEnvStringList("TRUSTED_PROXIES", nil)
	if len(entries) == 0 {
		return nil, errors.New("TRUST_PROXY is enabled but TRUSTED_PROXIES is empty")
	}
	prefixes, err := config.ParseTrustedProxies(entries)
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	cfg.AllowedCIDRs = prefixes
	return cfg, nil
}

// NewIPExtractor picks the extractor matching cfg.
func NewIPExtractor(cfg *TrustedProxyConfig) IPExtractor {
	if cfg == nil || !cfg.Enabled {
		return &RemoteAddrExtractor{}
	}
	return NewTrustedProxyExtractor(*cfg)
}

// TrustedProxyExtractor believes X-Forwarded-For (first hop) and then
// X-Real-IP, but only from a trusted peer.
type TrustedProxyExtractor struct {
	config TrustedProxyConfig
}

func NewTrustedProxyExtractor(cfg TrustedProxyConfig) *TrustedProxyExtractor {
	return &TrustedProxyExtractor{config: cfg}
}

func (e *TrustedProxyExtractor) ExtractIP(r *http.Request) (string, error) {
	peer, err := peerAddr(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	xff := r.Header.Get("X-Forwarded-For")
	xri := r.Header.Get("X-Real-IP")

	if !e.config.Enabled || !e.config.IsTrusted(r.RemoteAddr) {
		if e.config.Enabled && (xff != "" || xri != "") {
			// 信頼できないプロキシからのヘッダは無視する
			slog.Warn("ignoring forwarding headers from untrusted peer",
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("x_forwarded_for", xff),
				slog.String("x_real_ip", xri))
		}
		return peer.String(), nil
	}

	first, _, _ := strings.Cut(xff, ",")
	for _, candidate := range []string{first, xri} {
		if addr, err := netip.ParseAddr(strings.TrimSpace(candidate)); err == nil {
			return addr.Unmap().String(), nil
		}
	}
	return peer.String(), nil
}

// peerAddr parses "ip:port", "[ipv6]:port" or a bare IP.
func peerAddr(s string) (netip.Addr, error) {
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return ap.Addr().Unmap(), nil
	}
	addr, err := netip.ParseAddr(strings.Trim(s, "[]"))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid peer address %q", s)
	}
	return addr.Unmap(), nil
}
