package config

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Five fields plus descriptors (@hourly); the worker's scheduler parses the
// same way.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

var errEmpty = errors.New("must not be empty")

func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("cron schedule %w", errEmpty)
	}
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", schedule, err)
	}
	return nil
}

// ValidateTimezone requires a name time.LoadLocation understands.
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("timezone %w", errEmpty)
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", timezone, err)
	}
	return nil
}

// InRange checks lo <= v <= hi. An inverted range is itself an error.
//
//	InRange(port, 1024, 65535)
//	InRange(timeout, 5*time.Second, 30*time.Minute)
func InRange[T cmp.Ordered](v, lo, hi T) error {
	switch {
	case lo > hi:
		return fmt.Errorf("invalid range [%v, %v]", lo, hi)
	case v < lo:
		return fmt.Errorf("%v is below minimum %v", v, lo)
	case v > hi:
		return fmt.Errorf("%v exceeds maximum %v", v, hi)
	}
	return nil
}
