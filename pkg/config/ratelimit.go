package config

import (
	"fmt"
	"log/slog"
	"net/netip"
	"time"
)

// RateLimitConfig configures the per-IP token bucket placed in front of the
// login endpoint.
type RateLimitConfig struct {
	// Enabled toggles the limiter. Disabled limiters pass every request through.
	Enabled bool

	// Requests is the number of requests a client may make per Window.
	Requests int

	// Window is the period over which Requests tokens are refilled.
	Window time.Duration

	// Burst is the bucket size. Defaults to Requests.
	Burst int

	// IdleTTL is how long an idle client keeps its bucket before cleanup.
	IdleTTL time.Duration

	// CleanupInterval is how often idle buckets are swept.
	CleanupInterval time.Duration
}

// LoadRateLimitConfig loads login rate limiting configuration from environment variables.
//
// Invalid values are logged and replaced by their defaults; the function never fails.
//
// Environment variables:
//   - RATELIMIT_ENABLED: Enable/disable rate limiting (default: true)
//   - AUTH_RATELIMIT_REQUESTS: Requests per window (default: 5)
//   - AUTH_RATELIMIT_WINDOW: Refill window (default: 1m)
//   - AUTH_RATELIMIT_BURST: Bucket size (default: AUTH_RATELIMIT_REQUESTS)
//   - RATELIMIT_IDLE_TTL: Idle bucket lifetime (default: 10m)
//   - RATELIMIT_CLEANUP_INTERVAL: Cleanup interval (default: 5m)
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: GetEnvBool("RATELIMIT_ENABLED", true),
	}

	requests := GetEnvInt("AUTH_RATELIMIT_REQUESTS", 5)
	if requests <= 0 {
		slog.Warn("invalid AUTH_RATELIMIT_REQUESTS, using default",
			slog.Int("value", requests),
			slog.Int("default", 5))
		requests = 5
	}
	cfg.Requests = requests

	cfg.Window = positiveDuration("AUTH_RATELIMIT_WINDOW", time.Minute)

	burst := GetEnvInt("AUTH_RATELIMIT_BURST", requests)
	if burst <= 0 {
		slog.Warn("invalid AUTH_RATELIMIT_BURST, using default",
			slog.Int("value", burst),
			slog.Int("default", requests))
		burst = requests
	}
	cfg.Burst = burst

	cfg.IdleTTL = positiveDuration("RATELIMIT_IDLE_TTL", 10*time.Minute)
	cfg.CleanupInterval = positiveDuration("RATELIMIT_CLEANUP_INTERVAL", 5*time.Minute)

	return cfg
}

// positiveDuration reads a duration variable and falls back to def when the
// value is not positive.
func positiveDuration(key string, def time.Duration) time.Duration {
	d := GetEnvDuration(key, def)
	if d <= 0 {
		slog.Warn("invalid "+key+", using default",
			slog.String("value", d.String()),
			slog.String("default", def.String()))
		return def
	}
	return d
}

// CSPConfig contains the configuration for Content Security Policy headers.
type CSPConfig struct {
	// Enabled controls whether CSP headers are applied
	Enabled bool

	// ReportOnly sets the header to Content-Security-Policy-Report-Only
	// instead of Content-Security-Policy, which logs violations but does not enforce
	ReportOnly bool
}

// LoadCSPConfig loads Content Security Policy configuration from environment variables.
//
// Environment variables:
//   - CSP_ENABLED: Enable/disable CSP headers (default: true)
//   - CSP_REPORT_ONLY: Use report-only mode (default: false)
func LoadCSPConfig() CSPConfig {
	return CSPConfig{
		Enabled:    GetEnvBool("CSP_ENABLED", true),
		ReportOnly: GetEnvBool("CSP_REPORT_ONLY", false),
	}
}

// ParseTrustedProxies parses a list of IPs or CIDR ranges.
// Single IPs become /32 (IPv4) or /128 (IPv6) prefixes.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, raw := range entries {
		if raw == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(raw); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid IP or CIDR %q", raw)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}
