package http

import (
	"net/http"

	"newsportal/internal/handler/http/respond"
	"newsportal/pkg/config"
)

// InputLimits bounds the size of incoming requests.
type InputLimits struct {
	MaxAuthHeader  int   // bytes; JWTs issued by /auth/token are well under 1KB
	MaxPathLength  int   // bytes; slugs are derived from titles and can be long
	MaxQueryLength int   // bytes; bounds the full-text search term
	MaxBodyBytes   int64 // article bodies are the largest payloads
}

// DefaultInputLimits returns the limits used when nothing is configured.
func DefaultInputLimits() InputLimits {
	return InputLimits{
		MaxAuthHeader:  8 << 10,
		MaxPathLength:  2 << 10,
		MaxQueryLength: 2 << 10,
		MaxBodyBytes:   2 << 20,
	}
}

// LoadInputLimits reads MAX_REQUEST_BODY_BYTES, MAX_PATH_LENGTH and
// MAX_QUERY_LENGTH, falling back to DefaultInputLimits for missing or
// non-positive values.
func LoadInputLimits() InputLimits {
	l := DefaultInputLimits()
	if v := config.GetEnvInt("MAX_REQUEST_BODY_BYTES", int(l.MaxBodyBytes)); v > 0 {
		l.MaxBodyBytes = int64(v)
	}
	if v := config.GetEnvInt("MAX_PATH_LENGTH", l.MaxPathLength); v > 0 {
		l.MaxPathLength = v
	}
	if v := config.GetEnvInt("MAX_QUERY_LENGTH", l.MaxQueryLength); v > 0 {
		l.MaxQueryLength = v
	}
	return l
}

// InputValidation rejects oversized headers, paths and query strings and
// caps the request body with LimitRequestBody.
func InputValidation(limits InputLimits) func(http.Handler) http.Handler {
	limitBody := LimitRequestBody(limits.MaxBodyBytes)
	return func(next http.Handler) http.Handler {
		limited := limitBody(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case len(r.Header.Get("Authorization")) > limits.MaxAuthHeader:
				respond.JSON(w, http.StatusRequestHeaderFieldsTooLarge,
					map[string]string{"error": "authorization header too large"})
				return
			case len(r.URL.Path) > limits.MaxPathLength:
				respond.JSON(w, http.StatusRequestURITooLong, map[string]string{"error": "URI too long"})
				return
			case len(r.URL.RawQuery) > limits.MaxQueryLength:
				respond.JSON(w, http.StatusRequestURITooLong, map[string]string{"error": "query string too long"})
				return
			}
			limited.ServeHTTP(w, r)
		})
	}
}
