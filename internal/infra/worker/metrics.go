package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"newsportal/internal/pkg/config"
)

// WorkerMetrics holds the worker's Prometheus metrics.
type WorkerMetrics struct {
	*config.ConfigMetrics

	// JobRunsTotal counts refresh runs by status (success/failure/skipped).
	JobRunsTotal *prometheus.CounterVec

	JobDurationSeconds prometheus.Histogram

	JobLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics registers the worker metrics with the default registry.
func NewWorkerMetrics() *WorkerMetrics {
	return NewWorkerMetricsWith(prometheus.DefaultRegisterer)
}

// NewWorkerMetricsWith registers the worker metrics with reg.
func NewWorkerMetricsWith(reg prometheus.Registerer) *WorkerMetrics {
	factory := promauto.With(reg)
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetricsWith(reg, "worker"),

		JobRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_inventory_refresh_runs_total",
			Help: "Total number of inventory refresh runs by status",
		}, []string{"status"}),

		JobDurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_inventory_refresh_duration_seconds",
			Help:    "Duration of inventory refresh runs in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 30},
		}),

		JobLastSuccessTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "worker_inventory_refresh_last_success_timestamp",
			Help: "Unix timestamp of the last successful inventory refresh",
		}),
	}
}

// RecordJobRun counts one run with status.
func (m *WorkerMetrics) RecordJobRun(status string) {
	m.JobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes one run's duration.
func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.JobDurationSeconds.Observe(seconds)
}

// RecordLastSuccess stamps the current time as the last success.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.JobLastSuccessTimestamp.SetToCurrentTime()
}
