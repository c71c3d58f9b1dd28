// Package resilience provides reliability and fault tolerance patterns for the application.
//
// The package supports:
//   - Circuit breakers around database calls (impression batches, worker statistics)
//   - Retry logic with exponential backoff and jitter (database startup)
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.ImpressionWriterConfig())
//	err := cb.Run(func() error {
//	    return repo.IncrementImpressions(ctx, ids)
//	})
//
//	err := retry.WithBackoff(ctx, retry.StartupConfig(), func() error {
//	    return db.PingContext(ctx)
//	})
package resilience
