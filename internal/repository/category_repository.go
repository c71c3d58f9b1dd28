package repository

import (
	"context"

	"newsportal/internal/domain/entity"
)

type CategoryRepository interface {
	// List returns every category sorted by name.
	List(ctx context.Context) ([]*entity.Category, error)
	// Get returns (nil, nil) if the category is not found.
	Get(ctx context.Context, id int64) (*entity.Category, error)
	// GetBySlug returns (nil, nil) if no category has the slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	// Create and Update report duplicate name or slug as entity.ErrConflict.
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// Delete returns entity.ErrNotFound if no row was removed and
	// entity.ErrConflict if articles still reference the category.
	Delete(ctx context.Context, id int64) error
}
