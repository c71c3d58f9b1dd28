package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsportal/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func okWithBody(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		_, _ = w.Write([]byte(body))
	})
}

// TestMetricsMiddleware_PathNormalization checks that slug and ID paths
// collapse onto a single label.
func TestMetricsMiddleware_PathNormalization(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()
	handler := MetricsMiddleware(okWithBody("OK"))

	for _, p := range []string{
		"/articles/budget-vote-delayed",
		"/articles/42",
		"/articles/world-cup?page=2",
		"/categories/politics",
		"/ads/7/click",
		"/health",
	} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/articles/:key", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/categories/:key", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/ads/:id/click", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 4, testutil.CollectAndCount(metrics.HTTPRequestsTotal))
}

func TestMetricsMiddleware_StatusCodes(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()

	for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError} {
		handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/categories/3", nil))
	}

	for _, status := range []string{"200", "404", "409", "500"} {
		assert.Equal(t, 1.0,
			testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("DELETE", "/categories/:key", status)),
			"status %s", status)
	}
}

func TestMetricsMiddleware_Sizes(t *testing.T) {
	metrics.HTTPRequestSize.Reset()
	metrics.HTTPResponseSize.Reset()

	handler := MetricsMiddleware(okWithBody(`{"id":1}`))
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(`{"title":"Budget vote"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.HTTPRequestSize))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.HTTPResponseSize))
}

func TestMetricsMiddleware_ActiveConnectionsReturnToZero(t *testing.T) {
	before := testutil.ToFloat64(metrics.ActiveConnections)

	var during float64
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(metrics.ActiveConnections)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ads", nil))

	assert.Equal(t, before+1, during)
	assert.Equal(t, before, testutil.ToFloat64(metrics.ActiveConnections))
}

func TestMetricsHandler_ExposesRegistry(t *testing.T) {
	MetricsMiddleware(okWithBody("")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/live", nil))

	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_requests_total")
}
