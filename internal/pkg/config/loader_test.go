package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadString(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		want         string
		wantFallback bool
	}{
		{"unset uses default", "", "*/5 * * * *", false},
		{"valid value", "0 * * * *", "0 * * * *", false},
		{"descriptor", "@hourly", "@hourly", false},
		{"invalid falls back", "every minute", "*/5 * * * *", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NP_CRON", tt.env)

			r := LoadString("NP_CRON", "*/5 * * * *", ValidateCronSchedule)

			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, tt.wantFallback, r.FallbackApplied)
			if tt.wantFallback {
				assert.Contains(t, r.Warning, "Invalid NP_CRON='every minute'")
				assert.Contains(t, r.Warning, "falling back to default '*/5 * * * *'")
			} else {
				assert.Empty(t, r.Warning)
			}
		})
	}
}

func TestLoadInt(t *testing.T) {
	port := func(v int) error { return InRange(v, 1024, 65535) }

	t.Setenv("NP_PORT", "9191")
	r := LoadInt("NP_PORT", 9091, port)
	assert.Equal(t, 9191, r.Value)
	assert.False(t, r.FallbackApplied)

	t.Setenv("NP_PORT", "80")
	r = LoadInt("NP_PORT", 9091, port)
	assert.Equal(t, 9091, r.Value)
	assert.True(t, r.FallbackApplied)
	assert.Contains(t, r.Warning, "below minimum 1024")

	t.Setenv("NP_PORT", "90x1")
	r = LoadInt("NP_PORT", 9091, port)
	assert.Equal(t, 9091, r.Value)
	assert.Contains(t, r.Warning, "invalid integer format")
}

func TestLoadDuration(t *testing.T) {
	bounds := func(d time.Duration) error { return InRange(d, 5*time.Second, 30*time.Minute) }

	t.Setenv("NP_TIMEOUT", "2m")
	r := LoadDuration("NP_TIMEOUT", time.Minute, bounds)
	assert.Equal(t, 2*time.Minute, r.Value)
	assert.False(t, r.FallbackApplied)

	t.Setenv("NP_TIMEOUT", "2h")
	r = LoadDuration("NP_TIMEOUT", time.Minute, bounds)
	assert.Equal(t, time.Minute, r.Value)
	assert.True(t, r.FallbackApplied)

	t.Setenv("NP_TIMEOUT", "soon")
	r = LoadDuration("NP_TIMEOUT", time.Minute, nil)
	assert.Equal(t, time.Minute, r.Value)
	assert.True(t, r.FallbackApplied)
}

func TestLoad_NilValidator(t *testing.T) {
	t.Setenv("NP_ANY", "anything")
	r := Load("NP_ANY", "default", func(s string) (string, error) { return s, nil }, nil)
	assert.Equal(t, "anything", r.Value)
	assert.False(t, r.FallbackApplied)
}

func TestLoad_ParseErrorSkipsValidation(t *testing.T) {
	t.Setenv("NP_ANY", "x")
	validated := false
	r := Load("NP_ANY", 1,
		func(string) (int, error) { return 0, errors.New("bad") },
		func(int) error { validated = true; return nil })
	assert.True(t, r.FallbackApplied)
	assert.False(t, validated)
}
