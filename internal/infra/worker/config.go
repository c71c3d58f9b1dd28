// Package worker holds the runtime plumbing of cmd/worker: validated
// configuration, job metrics and the health/metrics HTTP server.
package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newsportal/internal/pkg/config"
)

// WorkerConfig holds the configuration of the inventory worker.
type WorkerConfig struct {
	// CronSchedule is a five-field cron expression or a descriptor such as "@hourly".
	CronSchedule string

	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string

	// JobTimeout bounds one inventory refresh. Range: 5s-30m.
	JobTimeout time.Duration

	// HealthPort serves /health, /health/ready and /metrics. Range: 1024-65535.
	HealthPort int
}

// DefaultConfig returns the configuration used for unset or invalid variables.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule: "*/5 * * * *", // 5 分ごと
		Timezone:     "UTC",
		JobTimeout:   time.Minute,
		HealthPort:   9091,
	}
}

func validateJobTimeout(d time.Duration) error {
	return config.InRange(d, 5*time.Second, 30*time.Minute)
}

func validateHealthPort(p int) error {
	return config.InRange(p, 1024, 65535)
}

// Validate checks every field and reports all problems together.
func (c *WorkerConfig) Validate() error {
	var errs []error
	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := validateJobTimeout(c.JobTimeout); err != nil {
		errs = append(errs, fmt.Errorf("job timeout: %w", err))
	}
	if err := validateHealthPort(c.HealthPort); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfigFromEnv reads the worker configuration. It never fails: each
// invalid variable is replaced by its default, logged and counted.
//
//	WORKER_CRON_SCHEDULE  (default "*/5 * * * *")
//	WORKER_TIMEZONE       (default "UTC")
//	WORKER_JOB_TIMEOUT    (default 1m)
//	WORKER_HEALTH_PORT    (default 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) WorkerConfig {
	cfg := DefaultConfig()
	fallback := false

	note := func(field string, applied bool, warning string) {
		if !applied {
			return
		}
		fallback = true
		metrics.RecordFallback(field)
		logger.Warn("configuration fallback applied",
			slog.String("field", field),
			slog.String("warning", warning))
	}

	schedule := config.LoadString("WORKER_CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = schedule.Value
	note("cron_schedule", schedule.FallbackApplied, schedule.Warning)

	tz := config.LoadString("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = tz.Value
	note("timezone", tz.FallbackApplied, tz.Warning)

	timeout := config.LoadDuration("WORKER_JOB_TIMEOUT", cfg.JobTimeout, validateJobTimeout)
	cfg.JobTimeout = timeout.Value
	note("job_timeout", timeout.FallbackApplied, timeout.Warning)

	port := config.LoadInt("WORKER_HEALTH_PORT", cfg.HealthPort, validateHealthPort)
	cfg.HealthPort = port.Value
	note("health_port", port.FallbackApplied, port.Warning)

	metrics.RecordLoad(fallback)
	return cfg
}
