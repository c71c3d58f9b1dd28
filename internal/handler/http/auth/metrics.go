package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tokenRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_requests_total",
			Help: "POST /auth/token outcomes by role",
		},
		[]string{"role", "result"}, // result: success | failure
	)

	tokenDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_token_duration_seconds",
			Help:    "Time to check credentials, upsert the author and sign a token",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"result"},
	)

	authzDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authz_check_duration_seconds",
			Help:    "JWT validation plus role check on protected routes",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	authzDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_denied_total",
			Help: "Requests with a valid token whose role may not call the route",
		},
		[]string{"role", "method"},
	)
)

func observeLogin(role, result string, d time.Duration) {
	tokenRequests.WithLabelValues(role, result).Inc()
	tokenDuration.WithLabelValues(result).Observe(d.Seconds())
}

func observeAuthz(d time.Duration) {
	authzDuration.Observe(d.Seconds())
}

func countDenied(role, method string) {
	authzDenied.WithLabelValues(role, method).Inc()
}
