package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"newsportal/internal/handler/http/requestid"
	"newsportal/internal/observability/tracing"
)

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
// LOG_FORMAT=text selects the human-readable handler; anything else is JSON.
func NewLogger() *slog.Logger {
	return New(os.Stdout, os.Getenv("LOG_FORMAT"), ParseLevel(os.Getenv("LOG_LEVEL")))
}

// New writes to w. Source locations are attached at debug level only.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID annotates logger with the request ID carried by ctx.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := requestid.FromContext(ctx); id != "" {
		return logger.With("request_id", id)
	}
	return logger
}

// WithTraceID annotates logger with the OpenTelemetry trace ID in ctx.
func WithTraceID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := tracing.TraceIDFromContext(ctx); id != "" {
		return logger.With("trace_id", id)
	}
	return logger
}

// ForRequest combines WithRequestID and WithTraceID.
func ForRequest(ctx context.Context, logger *slog.Logger) *slog.Logger {
	return WithTraceID(ctx, WithRequestID(ctx, logger))
}
