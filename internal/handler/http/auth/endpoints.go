package auth

import (
	"net/http"
	"slices"
	"strings"
)

// PublicEndpoints defines endpoints that don't require authentication,
// whatever the method.
//
// - /health, /ready, /live: orchestration health checks
// - /metrics: Prometheus scraping
// - /swagger/: API documentation
// - /auth/token: token generation (can't require token to get token)
// - /static/: the front end
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
	"/auth/token",
	"/static/",
}

// SetPublicEndpoints replaces PublicEndpoints with the list from the
// security configuration. Call it before the server starts.
func SetPublicEndpoints(endpoints []string) {
	PublicEndpoints = slices.Clone(endpoints)
}

// publicReadPrefixes are content collections readers can browse anonymously.
var publicReadPrefixes = []string{
	"/articles",
	"/categories",
	"/ads",
}

// IsPublicEndpoint checks if a given path is a public endpoint.
//
// Matching logic:
// - Endpoints ending with '/' use prefix matching (e.g., /swagger/index.html)
// - Other endpoints require exact match, a trailing slash or query params only
//
//	IsPublicEndpoint("/health")          // true
//	IsPublicEndpoint("/health?x=1")      // true
//	IsPublicEndpoint("/health/detail")   // false
//	IsPublicEndpoint("/healthcheck")     // false
//	IsPublicEndpoint("/articles")        // false
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint || path == endpoint+"/" || strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}

// IsPublicRequest extends IsPublicEndpoint with the anonymous reader surface:
// GET/HEAD on content collections and the ad click beacon.
func IsPublicRequest(method, path string) bool {
	if IsPublicEndpoint(path) {
		return true
	}
	switch method {
	case http.MethodGet, http.MethodHead:
		for _, prefix := range publicReadPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
		}
	case http.MethodPost:
		return isAdClickPath(path)
	}
	return false
}

// isAdClickPath matches /ads/{id}/click.
func isAdClickPath(path string) bool {
	rest, ok := strings.CutPrefix(path, "/ads/")
	if !ok {
		return false
	}
	id, ok := strings.CutSuffix(rest, "/click")
	return ok && id != "" && !strings.Contains(id, "/")
}
