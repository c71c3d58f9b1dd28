// Package http provides HTTP handlers and middleware for the web application.
// Resource handlers live in subpackages (article, category, ad, auth); this
// package holds health endpoints, metrics and the cross-cutting middleware.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"newsportal/internal/handler/http/respond"
)

// Check states. Degraded is reported but does not fail the probe.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// CheckStatus is one entry of HealthResponse.Checks.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// RateLimiterStats is implemented by middleware.RateLimiter.
type RateLimiterStats interface {
	Name() string
	ActiveKeys() int
}

// QueueStats is implemented by the ad impression queue.
type QueueStats interface {
	Pending() int
	Capacity() int
}

// HealthHandler reports store connectivity and the state of the in-process
// components. Only the database check can make the service unhealthy.
type HealthHandler struct {
	DB      *sql.DB
	Version string

	// optional
	RateLimiters    []RateLimiterStats
	ImpressionQueue QueueStats
	CSPEnabled      bool
	CSPReportOnly   bool
	Now             func() time.Time
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{"database": h.checkDatabase(ctx)}
	if len(h.RateLimiters) > 0 {
		checks["rate_limiter"] = h.checkRateLimiters()
	}
	if h.ImpressionQueue != nil {
		checks["impression_queue"] = h.checkImpressionQueue()
	}
	if h.CSPEnabled {
		checks["csp"] = CheckStatus{Status: StatusHealthy, Details: map[string]any{"report_only": h.CSPReportOnly}}
	}

	overall, code := StatusHealthy, http.StatusOK
	for _, c := range checks {
		switch c.Status {
		case StatusUnhealthy:
			overall, code = StatusUnhealthy, http.StatusServiceUnavailable
		case StatusDegraded:
			if overall == StatusHealthy {
				overall = StatusDegraded
			}
		}
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    overall,
		Timestamp: now().UTC().Format(time.RFC3339),
		Version:   h.Version,
		Checks:    checks,
	})
}

// checkDatabase pings the store and reports pool usage. A pool that is
// unbounded or at least 80% in use is degraded.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: StatusUnhealthy, Message: "not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		slog.Warn("health: database ping failed", slog.Any("error", err))
		return CheckStatus{Status: StatusUnhealthy, Message: "database unreachable"}
	}

	s := h.DB.Stats()
	details := map[string]any{
		"max_open":         s.MaxOpenConnections,
		"open":             s.OpenConnections,
		"in_use":           s.InUse,
		"idle":             s.Idle,
		"wait_count":       s.WaitCount,
		"wait_duration_ms": s.WaitDuration.Milliseconds(),
	}
	if s.MaxOpenConnections == 0 {
		return CheckStatus{Status: StatusDegraded, Message: "connection pool is unbounded", Details: details}
	}
	util := float64(s.InUse) / float64(s.MaxOpenConnections)
	details["utilization"] = util
	if util >= 0.8 {
		return CheckStatus{Status: StatusDegraded, Message: "connection pool utilization above 80%", Details: details}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

func (h *HealthHandler) checkRateLimiters() CheckStatus {
	details := make(map[string]any, len(h.RateLimiters))
	for _, rl := range h.RateLimiters {
		details[rl.Name()] = map[string]int{"active_keys": rl.ActiveKeys()}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// checkImpressionQueue is degraded above 90% because further batches would
// be dropped.
func (h *HealthHandler) checkImpressionQueue() CheckStatus {
	pending, capacity := h.ImpressionQueue.Pending(), h.ImpressionQueue.Capacity()
	details := map[string]any{"pending": pending, "capacity": capacity}
	if capacity > 0 && pending*10 >= capacity*9 {
		return CheckStatus{Status: StatusDegraded, Message: "impression queue above 90% capacity", Details: details}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// ReadyHandler answers the readiness probe. Check is typically the database
// circuit breaker's PingContext, so an open breaker takes the pod out of
// rotation without touching the store.
type ReadyHandler struct {
	Check func(ctx context.Context) error
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Check == nil {
		http.Error(w, "not configured", http.StatusServiceUnavailable)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.Check(ctx); err != nil {
		slog.Warn("ready: dependency check failed", slog.Any("error", err))
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	writePlain(w, "ready")
}

// LiveHandler answers the liveness probe.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writePlain(w, "alive")
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
