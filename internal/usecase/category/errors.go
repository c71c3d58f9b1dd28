// Package category provides use cases for managing article categories.
// Categories carry a unique name and a slug derived from it; a category
// referenced by any article cannot be removed.
package category

import "newsportal/internal/domain/entity"

// Sentinel errors for category use case operations.
var (
	// ErrCategoryNotFound indicates that the requested category was not found.
	ErrCategoryNotFound = entity.NotFoundError("category not found")

	// ErrInvalidCategoryID indicates a non-positive category ID.
	ErrInvalidCategoryID = &entity.ValidationError{Field: "id", Message: "invalid category ID"}

	// ErrDuplicateCategory indicates that the name or its slug is already taken.
	ErrDuplicateCategory = entity.ConflictError("category with this name already exists")

	// ErrCategoryInUse indicates that articles still reference the category.
	ErrCategoryInUse = entity.ConflictError("category is in use by existing articles")
)
