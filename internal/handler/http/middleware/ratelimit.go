package middleware

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"newsportal/internal/handler/http/respond"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

var (
	rateLimitDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limit_decisions_total",
			Help: "Rate limit decisions by limiter and result",
		},
		[]string{"limiter", "result"}, // result: allowed, denied
	)

	rateLimitActiveKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_rate_limit_active_keys",
			Help: "Number of client buckets currently tracked",
		},
		[]string{"limiter"},
	)
)

var errRateLimited = errors.New("rate limit exceeded")

// visitor holds one client's token bucket.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-IP token bucket limiter.
// Each client IP gets its own rate.Limiter which refills requests tokens per window
// and holds at most burst tokens.
type RateLimiter struct {
	name        string
	limit       rate.Limit
	burst       int
	ipExtractor IPExtractor
	now         func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter creates a limiter that allows requests per window with the given burst.
// A nil ipExtractor defaults to RemoteAddrExtractor.
//
// Example:
//
//	// 5 login attempts per minute per IP
//	limiter := NewRateLimiter("auth", 5, time.Minute, 5, &RemoteAddrExtractor{})
func NewRateLimiter(name string, requests int, window time.Duration, burst int, ipExtractor IPExtractor) *RateLimiter {
	if ipExtractor == nil {
		ipExtractor = &RemoteAddrExtractor{}
	}
	if burst <= 0 {
		burst = requests
	}
	limit := rate.Inf
	if requests > 0 && window > 0 {
		limit = rate.Every(window / time.Duration(requests))
	}
	return &RateLimiter{
		name:        name,
		limit:       limit,
		burst:       burst,
		ipExtractor: ipExtractor,
		now:         time.Now,
		visitors:    make(map[string]*visitor),
	}
}

// Middleware rejects requests over the limit with 429 Too Many Requests and a
// Retry-After header. Requests whose IP cannot be determined are allowed.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, err := rl.ipExtractor.ExtractIP(r)
			if err != nil {
				slog.Warn("rate limiter: cannot determine client ip",
					slog.String("limiter", rl.name),
					slog.String("remote_addr", r.RemoteAddr),
					slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			allowed, retryAfter := rl.allow(ip)
			if !allowed {
				rateLimitDecisions.WithLabelValues(rl.name, "denied").Inc()
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				respond.JSON(w, http.StatusTooManyRequests, map[string]string{"error": errRateLimited.Error()})
				return
			}
			rateLimitDecisions.WithLabelValues(rl.name, "allowed").Inc()
			next.ServeHTTP(w, r)
		})
	}
}

// allow consumes a token for ip. When denied it returns the seconds until
// the next token is available.
func (rl *RateLimiter) allow(ip string) (bool, int) {
	now := rl.now()

	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
		rateLimitActiveKeys.WithLabelValues(rl.name).Set(float64(len(rl.visitors)))
	}
	v.lastSeen = now
	rl.mu.Unlock()

	res := v.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, 1
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	// トークンを消費しない
	res.CancelAt(now)
	return false, int(math.Ceil(delay.Seconds()))
}

// CleanupExpired removes buckets idle for longer than idleTTL and returns how
// many were removed.
func (rl *RateLimiter) CleanupExpired(idleTTL time.Duration) int {
	cutoff := rl.now().Add(-idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			removed++
		}
	}
	rateLimitActiveKeys.WithLabelValues(rl.name).Set(float64(len(rl.visitors)))
	return removed
}

// ActiveKeys returns the number of client buckets currently tracked.
func (rl *RateLimiter) ActiveKeys() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Name returns the limiter's metrics label.
func (rl *RateLimiter) Name() string {
	return rl.name
}
