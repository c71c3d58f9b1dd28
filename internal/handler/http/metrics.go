package http

import (
	"net/http"
	"strconv"
	"time"

	"newsportal/internal/handler/http/pathutil"
	"newsportal/internal/handler/http/responsewriter"
	"newsportal/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records HTTP request metrics including duration, size, and status codes.
// Paths are normalized (/articles/go-125 -> /articles/:key, /ads/3/click -> /ads/:id/click)
// to keep label cardinality bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		wrapped := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(wrapped, r)

		metrics.RecordHTTPRequest(
			r.Method,
			path,
			strconv.Itoa(wrapped.StatusCode()),
			time.Since(start),
			int(max(r.ContentLength, 0)),
			wrapped.BytesWritten(),
		)
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
