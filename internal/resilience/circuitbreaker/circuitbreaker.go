// Package circuitbreaker wraps github.com/sony/gobreaker for the impression
// writer and the database calls made by health checks and background jobs.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker"
)

var (
	stateGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions by target state",
		},
		[]string{"name", "to"},
	)
)

// Config tunes one breaker. It trips once at least MinRequests calls were
// seen in the current Interval and the failure ratio reaches
// FailureThreshold.
type Config struct {
	Name string
	// MaxRequests are admitted while half-open.
	MaxRequests uint32
	// Interval clears the closed-state counts.
	Interval time.Duration
	// Timeout is the open period before probing again.
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
	// Ignore marks errors that should not count as failures, e.g. a caller
	// cancelling its own context.
	Ignore func(error) bool
}

// DefaultConfig trips at 60% failures over at least 5 calls.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// ImpressionWriterConfig is used by the background impression writer.
// Half-open admits a single batch.
func ImpressionWriterConfig() Config {
	cfg := DefaultConfig("ad-impressions")
	cfg.MaxRequests = 1
	cfg.Timeout = 15 * time.Second
	cfg.FailureThreshold = 0.5
	cfg.MinRequests = 4
	return cfg
}

// CircuitBreaker is a named gobreaker instance that exports its state.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New builds a breaker from cfg.
func New(cfg Config) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.Requests >= cfg.MinRequests &&
				float64(c.TotalFailures)/float64(c.Requests) >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			stateGauge.WithLabelValues(name).Set(float64(to))
			transitionsTotal.WithLabelValues(name, to.String()).Inc()
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}
	if cfg.Ignore != nil {
		settings.IsSuccessful = func(err error) bool { return err == nil || cfg.Ignore(err) }
	}

	stateGauge.WithLabelValues(cfg.Name).Set(float64(gobreaker.StateClosed))
	return &CircuitBreaker{breaker: gobreaker.NewCircuitBreaker(settings), name: cfg.Name}
}

// Run calls fn unless the breaker is open, in which case it returns
// gobreaker.ErrOpenState (or ErrTooManyRequests while half-open).
func (cb *CircuitBreaker) Run(fn func() error) error {
	_, err := cb.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

// State returns the current state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

// Name returns the breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether calls are currently rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}
