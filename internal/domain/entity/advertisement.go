package entity

import (
	"fmt"
	"time"
)

// AdPosition is the page slot an advertisement is rendered into.
type AdPosition string

const (
	PositionHeader  AdPosition = "header"
	PositionSidebar AdPosition = "sidebar"
	PositionContent AdPosition = "content"
	PositionFooter  AdPosition = "footer"
)

// AdPositions lists every known position in display order.
var AdPositions = []AdPosition{PositionHeader, PositionSidebar, PositionContent, PositionFooter}

// ParseAdPosition validates raw and returns the matching AdPosition.
func ParseAdPosition(raw string) (AdPosition, error) {
	for _, p := range AdPositions {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", &ValidationError{
		Field:   "position",
		Message: fmt.Sprintf("must be one of header, sidebar, content, footer (got %q)", raw),
	}
}

// Advertisement is a banner shown in a fixed position during an active window.
type Advertisement struct {
	ID          int64
	Title       string
	Image       string
	URL         string
	Position    AdPosition
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
	Clicks      int64
	Impressions int64
	CreatedAt   time.Time
}

// IsServable reports whether the ad may be shown at now: it must be active
// and now must fall inside [StartDate, EndDate] inclusive.
func (a *Advertisement) IsServable(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	return !now.Before(a.StartDate) && !now.After(a.EndDate)
}

// ValidateWindow checks that the active window is well formed.
func (a *Advertisement) ValidateWindow() error {
	if a.StartDate.IsZero() {
		return &ValidationError{Field: "startDate", Message: "is required"}
	}
	if a.EndDate.IsZero() {
		return &ValidationError{Field: "endDate", Message: "is required"}
	}
	if a.EndDate.Before(a.StartDate) {
		return &ValidationError{Field: "endDate", Message: "must not be before startDate"}
	}
	return nil
}
