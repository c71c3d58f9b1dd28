package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ───────── ヘルパ ───────── */

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func probe(t *testing.T, h *HealthServer, path string) (int, healthResponse) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	var body healthResponse
	if rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	}
	return rr.Code, body
}

/* ───────── tests ───────── */

func TestHealthServer_Liveness(t *testing.T) {
	h := NewHealthServer(":0", quietLogger(), nil)

	code, body := probe(t, h, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
}

func TestHealthServer_Readiness(t *testing.T) {
	var checkErr error
	h := NewHealthServer(":0", quietLogger(), func(context.Context) error { return checkErr })

	code, body := probe(t, h, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not ready", body.Status)

	h.SetReady(true)
	code, body = probe(t, h, "/health/ready")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)

	checkErr = errors.New("dial tcp 10.0.0.5:5432: connection refused")
	code, body = probe(t, h, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "dependency unavailable", body.Error)
	assert.NotContains(t, body.Error, "10.0.0.5")

	h.SetReady(false)
	checkErr = nil
	code, _ = probe(t, h, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestHealthServer_Metrics(t *testing.T) {
	h := NewHealthServer(":0", quietLogger(), nil)

	rr := httptest.NewRecorder()
	h.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestHealthServer_GracefulShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	h := NewHealthServer(addr, quietLogger(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(6 * time.Second):
		t.Fatal("server did not shut down")
	}
}
