package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithBackoff(t *testing.T) {
	refused := fmt.Errorf("dial tcp 127.0.0.1:5432: %w", syscall.ECONNREFUSED)
	tests := []struct {
		name         string
		failures     int
		failWith     error
		wantAttempts int
		wantErr      string
	}{
		{"first try", 0, nil, 1, ""},
		{"recovers on third", 2, refused, 3, ""},
		{"gives up", 10, refused, 3, "max retry attempts (3) exceeded"},
		{"non retryable stops", 10, errors.New("password authentication failed"), 1, "password authentication failed"},
		{"migration marker", 2, fmt.Errorf("%w: relation \"articles\" does not exist", ErrTransient), 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			err := WithBackoff(context.Background(), fastConfig(3), func() error {
				attempts++
				if attempts <= tt.failures {
					return tt.failWith
				}
				return nil
			})

			assert.Equal(t, tt.wantAttempts, attempts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWithBackoff_ExhaustedKeepsCause(t *testing.T) {
	err := WithBackoff(context.Background(), fastConfig(2), func() error { return driver.ErrBadConn })

	assert.ErrorIs(t, err, driver.ErrBadConn)
}

func TestWithBackoff_ContextCanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := Config{MaxAttempts: 10, InitialDelay: time.Hour, MaxDelay: time.Hour, Multiplier: 1}

	attempts := 0
	err := WithBackoff(ctx, cfg, func() error {
		attempts++
		cancel()
		return syscall.ECONNRESET
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "retry aborted")
	assert.Equal(t, 1, attempts)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("ping: %w", context.DeadlineExceeded), false},
		{"bad pooled connection", fmt.Errorf("ping: %w", driver.ErrBadConn), true},
		{"postgres not up", &pgconn.ConnectError{}, true},
		{"refused", fmt.Errorf("dial tcp: %w", syscall.ECONNREFUSED), true},
		{"reset", syscall.ECONNRESET, true},
		{"timed out", syscall.ETIMEDOUT, true},
		{"unreachable", syscall.ENETUNREACH, true},
		{"net timeout", timeoutErr{}, true},
		{"transient marker", fmt.Errorf("probe: %w", ErrTransient), true},
		{"plain", errors.New("duplicate key value violates unique constraint"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestStartupConfig(t *testing.T) {
	cfg := StartupConfig()

	assert.Equal(t, 8, cfg.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.InitialDelay)
	assert.Equal(t, 5*time.Second, cfg.MaxDelay)
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := addJitter(base, 0.2)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, 120*time.Millisecond)
	}
	assert.Equal(t, base, addJitter(base, 0))
	assert.LessOrEqual(t, addJitter(base, 5), 200*time.Millisecond)
}

/* ───────── ヘルパ ───────── */

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Multiplier: 2}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }
