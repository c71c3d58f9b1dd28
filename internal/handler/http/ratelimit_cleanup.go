package http

import (
	"context"
	"log/slog"
	"time"

	"newsportal/internal/handler/http/middleware"
)

// StartRateLimitCleanup periodically evicts idle client buckets from limiter.
// It blocks until ctx is cancelled, so callers run it in its own goroutine.
func StartRateLimitCleanup(
	ctx context.Context,
	limiter *middleware.RateLimiter,
	interval time.Duration,
	idleTTL time.Duration,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started",
		slog.String("limiter", limiter.Name()),
		slog.Duration("interval", interval),
		slog.Duration("idle_ttl", idleTTL))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped",
				slog.String("limiter", limiter.Name()))
			return

		case <-ticker.C:
			removed := limiter.CleanupExpired(idleTTL)
			slog.Debug("rate limit cleanup completed",
				slog.String("limiter", limiter.Name()),
				slog.Int("keys_removed", removed),
				slog.Int("active_keys", limiter.ActiveKeys()))
		}
	}
}
