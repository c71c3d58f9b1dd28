package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a positive int64 path segment, typically r.PathValue("id").
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the specified prefix and an optional suffix segment, then parses
// the rest as an int64.
//
// Example:
//
//	id, err := ExtractID("/ads/123/click", "/ads/")
//	// Returns: 123, nil
func ExtractID(path, prefix string) (int64, error) {
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return ParseID(rest)
}
