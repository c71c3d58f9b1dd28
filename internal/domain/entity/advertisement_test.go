package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAdPosition(t *testing.T) {
	for _, p := range AdPositions {
		got, err := ParseAdPosition(string(p))
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParseAdPosition("popup")
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "position", ve.Field)
}

func TestAdvertisement_IsServable(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name   string
		active bool
		now    time.Time
		want   bool
	}{
		{name: "inside window", active: true, now: start.Add(24 * time.Hour), want: true},
		{name: "exactly at start", active: true, now: start, want: true},
		{name: "exactly at end", active: true, now: end, want: true},
		{name: "before start", active: true, now: start.Add(-time.Second), want: false},
		{name: "after end", active: true, now: end.Add(time.Second), want: false},
		{name: "inactive inside window", active: false, now: start.Add(time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ad := Advertisement{IsActive: tt.active, StartDate: start, EndDate: end}
			assert.Equal(t, tt.want, ad.IsServable(tt.now))
		})
	}
}

func TestAdvertisement_ValidateWindow(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Error(t, (&Advertisement{EndDate: start}).ValidateWindow())
	assert.Error(t, (&Advertisement{StartDate: start}).ValidateWindow())
	assert.Error(t, (&Advertisement{StartDate: start, EndDate: start.Add(-time.Hour)}).ValidateWindow())
	assert.NoError(t, (&Advertisement{StartDate: start, EndDate: start}).ValidateWindow())
}
