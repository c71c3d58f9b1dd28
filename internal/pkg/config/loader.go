// Package config loads validated settings for long-running components.
//
// Loaders never fail: a value that cannot be parsed or does not validate is
// replaced by its default and reported as a warning, so a typo in one
// variable cannot keep a worker from starting.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadResult is the outcome of loading one setting.
type LoadResult[T any] struct {
	Value T
	// Warning is set when FallbackApplied is true.
	Warning         string
	FallbackApplied bool
}

// Load reads envKey, parses it and validates it. An unset variable yields
// defaultValue without a warning. validate may be nil.
func Load[T any](envKey string, defaultValue T, parse func(string) (T, error), validate func(T) error) LoadResult[T] {
	raw := os.Getenv(envKey)
	if raw == "" {
		return LoadResult[T]{Value: defaultValue}
	}

	value, err := parse(raw)
	if err == nil && validate != nil {
		err = validate(value)
	}
	if err != nil {
		return LoadResult[T]{
			Value:           defaultValue,
			Warning:         fmt.Sprintf("Invalid %s='%s': %v, falling back to default '%v'", envKey, raw, err, defaultValue),
			FallbackApplied: true,
		}
	}
	return LoadResult[T]{Value: value}
}

// LoadString loads a string setting.
//
//	r := LoadString("WORKER_CRON_SCHEDULE", "*/5 * * * *", ValidateCronSchedule)
func LoadString(envKey, defaultValue string, validate func(string) error) LoadResult[string] {
	return Load(envKey, defaultValue, func(s string) (string, error) { return s, nil }, validate)
}

// LoadInt loads a base-10 integer setting.
func LoadInt(envKey string, defaultValue int, validate func(int) error) LoadResult[int] {
	return Load(envKey, defaultValue, func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer format")
		}
		return v, nil
	}, validate)
}

// LoadDuration loads a setting in time.ParseDuration format ("30s", "5m").
func LoadDuration(envKey string, defaultValue time.Duration, validate func(time.Duration) error) LoadResult[time.Duration] {
	return Load(envKey, defaultValue, time.ParseDuration, validate)
}
