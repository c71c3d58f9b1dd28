// Package article provides use cases for managing article entities.
// It implements the public listing and reading of published articles as well
// as editorial create, update and delete, including slug assignment.
package article

import "newsportal/internal/domain/entity"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// It matches entity.ErrNotFound.
	ErrArticleNotFound = entity.NotFoundError("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = &entity.ValidationError{Field: "id", Message: "invalid article ID"}

	// ErrDuplicateArticle indicates that another article already uses the
	// slug derived from this title. It matches entity.ErrConflict.
	ErrDuplicateArticle = entity.ConflictError("article with this title already exists")

	// ErrUnknownCategory indicates that the referenced category does not exist.
	ErrUnknownCategory = &entity.ValidationError{Field: "category", Message: "must reference an existing category"}
)
