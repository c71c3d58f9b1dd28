package middleware

import (
	"net/http"
	"strings"

	"newsportal/pkg/config"
)

// Built-in Content-Security-Policy values.
const (
	// APIPolicy is applied to JSON endpoints, which never render markup.
	APIPolicy = "default-src 'none'; frame-ancestors 'none'"

	// FrontendPolicy is applied to the static front end. Article images may be
	// hosted anywhere over https.
	FrontendPolicy = "default-src 'self'; img-src 'self' data: https:; style-src 'self' 'unsafe-inline'; " +
		"script-src 'self'; connect-src 'self'; object-src 'none'; base-uri 'self'; frame-ancestors 'none'"

	// SwaggerUIPolicy allows the inline bootstrap script and styles of the Swagger UI.
	SwaggerUIPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; object-src 'none'; frame-ancestors 'none'"
)

// CSPMiddlewareConfig selects a policy per path prefix.
type CSPMiddlewareConfig struct {
	Enabled    bool
	ReportOnly bool

	// DefaultPolicy is used when no PathPolicies prefix matches.
	DefaultPolicy string

	// PathPolicies maps path prefixes to policies; the longest matching prefix wins.
	PathPolicies map[string]string
}

// NewCSPConfig builds the server's CSP configuration from the environment.
// staticPrefix is where the front end is mounted, or "" when it is not served.
func NewCSPConfig(cfg config.CSPConfig, staticPrefix string) CSPMiddlewareConfig {
	paths := map[string]string{"/swagger/": SwaggerUIPolicy}
	if staticPrefix != "" {
		paths[staticPrefix] = FrontendPolicy
	}
	return CSPMiddlewareConfig{
		Enabled:       cfg.Enabled,
		ReportOnly:    cfg.ReportOnly,
		DefaultPolicy: APIPolicy,
		PathPolicies:  paths,
	}
}

// CSP applies a Content-Security-Policy header chosen by request path.
func CSP(cfg CSPMiddlewareConfig) func(http.Handler) http.Handler {
	header := "Content-Security-Policy"
	if cfg.ReportOnly {
		header = "Content-Security-Policy-Report-Only"
	}

	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if policy := cfg.selectPolicy(r.URL.Path); policy != "" {
				w.Header().Set(header, policy)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// selectPolicy returns the policy of the longest matching prefix, or DefaultPolicy.
func (c CSPMiddlewareConfig) selectPolicy(path string) string {
	longest := ""
	policy := c.DefaultPolicy
	for prefix, p := range c.PathPolicies {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(longest) {
			longest = prefix
			policy = p
		}
	}
	return policy
}
