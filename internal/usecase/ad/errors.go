// Package ad provides advertisement use cases: serving ads for a page
// position, recording clicks and impressions, and admin CRUD.
package ad

import "newsportal/internal/domain/entity"

// Sentinel errors for advertisement use case operations.
var (
	// ErrAdNotFound indicates that the requested advertisement was not found.
	ErrAdNotFound = entity.NotFoundError("ad not found")

	// ErrInvalidAdID indicates a non-positive advertisement ID.
	ErrInvalidAdID = &entity.ValidationError{Field: "id", Message: "invalid ad ID"}
)
