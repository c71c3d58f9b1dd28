package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"newsportal/pkg/config"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins.
	// Example: ["http://localhost:3000", "https://news.example.com"]
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int
}

// Enabled reports whether any origin is configured.
func (c CORSConfig) Enabled() bool {
	return len(c.AllowedOrigins) > 0
}

// LoadCORSConfig loads CORS configuration from environment variables.
//
// Environment Variables:
//   - CORS_ALLOWED_ORIGINS: comma-separated origins; empty disables CORS (same-origin front end)
//   - CORS_ALLOWED_METHODS: default "GET,POST,PUT,DELETE,OPTIONS"
//   - CORS_ALLOWED_HEADERS: default "Content-Type,Authorization,X-Request-ID"
//   - CORS_MAX_AGE: preflight cache seconds, default 86400
//
// Each origin must be an http(s) URL without path, query, fragment or trailing slash.
func LoadCORSConfig() (CORSConfig, error) {
	cfg := CORSConfig{
		AllowedMethods: config.GetEnvStringList("CORS_ALLOWED_METHODS",
			[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders: config.GetEnvStringList("CORS_ALLOWED_HEADERS",
			[]string{"Content-Type", "Authorization", "X-Request-ID"}),
		MaxAge: config.GetEnvInt("CORS_MAX_AGE", 86400),
	}

	for _, origin := range config.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil) {
		if err := validateOrigin(origin); err != nil {
			return CORSConfig{}, err
		}
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
	}
	for i, m := range cfg.AllowedMethods {
		cfg.AllowedMethods[i] = strings.ToUpper(m)
	}
	if cfg.MaxAge < 0 {
		cfg.MaxAge = 0
	}
	return cfg, nil
}

func validateOrigin(origin string) error {
	if origin == "*" {
		return fmt.Errorf("wildcard origin is not allowed with credentials")
	}
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
	}
	return nil
}

// CORS returns middleware that sets CORS headers for whitelisted origins.
//
//   - No Origin header: same-origin request, passed through.
//   - Origin not allowed: passed through without CORS headers; the browser blocks it.
//   - Preflight (OPTIONS) from an allowed origin: answered with 204, next is not called.
func CORS(cfg CORSConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !slices.Contains(cfg.AllowedOrigins, origin) {
				logger.Warn("CORS: origin not allowed",
					slog.String("origin", origin),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
