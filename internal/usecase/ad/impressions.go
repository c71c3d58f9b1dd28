package ad

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"newsportal/internal/observability/metrics"
	"newsportal/internal/resilience/circuitbreaker"
)

const (
	defaultQueueSize    = 1024
	defaultWriteTimeout = 5 * time.Second
)

// ImpressionWriter persists one impression for each ad ID in a single statement.
type ImpressionWriter interface {
	IncrementImpressions(ctx context.Context, ids []int64) error
}

// ImpressionQueue records ad impressions in the background.
//
// Enqueue never blocks: when the buffer is full the batch is dropped and
// counted. Write failures are logged and counted, never returned to the
// caller that served the ads.
type ImpressionQueue struct {
	writer       ImpressionWriter
	breaker      *circuitbreaker.CircuitBreaker
	logger       *slog.Logger
	writeTimeout time.Duration

	ch     chan []int64
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
}

// QueueOption configures an ImpressionQueue.
type QueueOption func(*ImpressionQueue)

// WithQueueSize sets the number of pending batches the queue buffers.
func WithQueueSize(n int) QueueOption {
	return func(q *ImpressionQueue) {
		if n > 0 {
			q.ch = make(chan []int64, n)
		}
	}
}

// WithWriteTimeout bounds each batch write.
func WithWriteTimeout(d time.Duration) QueueOption {
	return func(q *ImpressionQueue) {
		if d > 0 {
			q.writeTimeout = d
		}
	}
}

// WithBreaker replaces the default impression circuit breaker.
func WithBreaker(cb *circuitbreaker.CircuitBreaker) QueueOption {
	return func(q *ImpressionQueue) {
		if cb != nil {
			q.breaker = cb
		}
	}
}

// NewImpressionQueue starts the worker goroutine. Call Close to drain it.
func NewImpressionQueue(writer ImpressionWriter, logger *slog.Logger, opts ...QueueOption) *ImpressionQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ImpressionQueue{
		writer:       writer,
		breaker:      circuitbreaker.New(circuitbreaker.ImpressionWriterConfig()),
		logger:       logger,
		writeTimeout: defaultWriteTimeout,
		ch:           make(chan []int64, defaultQueueSize),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.run()
	return q
}

// Enqueue schedules one impression for each id.
func (q *ImpressionQueue) Enqueue(ids []int64) {
	if len(ids) == 0 {
		return
	}
	batch := append([]int64(nil), ids...)

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		metrics.RecordImpressions("dropped", len(batch))
		return
	}

	select {
	case q.ch <- batch:
		metrics.SetImpressionQueueDepth(len(q.ch))
	default:
		metrics.RecordImpressions("dropped", len(batch))
		q.logger.Warn("impression queue full, batch dropped",
			slog.Int("ads", len(batch)),
			slog.Int("capacity", cap(q.ch)))
	}
}

// Close stops accepting batches and waits until the pending ones are
// written or ctx expires.
func (q *ImpressionQueue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		q.logger.Info("impression queue drained")
		return nil
	case <-ctx.Done():
		q.logger.Warn("impression queue drain timeout",
			slog.Int("pending", len(q.ch)))
		return ctx.Err()
	}
}

// Pending returns the number of batches waiting to be written.
func (q *ImpressionQueue) Pending() int { return len(q.ch) }

// Capacity returns the queue buffer size.
func (q *ImpressionQueue) Capacity() int { return cap(q.ch) }

func (q *ImpressionQueue) run() {
	defer close(q.done)
	for batch := range q.ch {
		metrics.SetImpressionQueueDepth(len(q.ch))
		q.write(batch)
	}
	metrics.SetImpressionQueueDepth(0)
}

func (q *ImpressionQueue) write(batch []int64) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordImpressions("failed", len(batch))
			q.logger.Error("panic in impression writer",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), q.writeTimeout)
	defer cancel()

	err := q.breaker.Run(func() error {
		return q.writer.IncrementImpressions(ctx, batch)
	})
	if err != nil {
		metrics.RecordImpressions("failed", len(batch))
		level := slog.LevelWarn
		if errors.Is(err, context.DeadlineExceeded) {
			level = slog.LevelError
		}
		q.logger.Log(ctx, level, "record impressions failed",
			slog.Int("ads", len(batch)),
			slog.String("circuit", q.breaker.State().String()),
			slog.Any("error", err))
		return
	}
	metrics.RecordImpressions("recorded", len(batch))
}
