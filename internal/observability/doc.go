// Package observability provides the observability infrastructure of the
// portal: structured logging, Prometheus metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer provider, spans and HTTP middleware
//
// Example usage:
//
//	import (
//	    "newsportal/internal/observability/logging"
//	    "newsportal/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordArticleView()
//	}
package observability
