package repository

import (
	"context"

	"newsportal/internal/domain/entity"
)

// ArticleFilters narrows article listings. Zero values mean "no filter".
type ArticleFilters struct {
	Status     entity.ArticleStatus // Optional: exact status match
	CategoryID *int64               // Optional: articles of this category only
	Search     string               // Optional: full-text query over title, content and tags
}

// CategoryRef is the projection of a category embedded in article listings.
type CategoryRef struct {
	ID   int64
	Name string
	Slug string
}

// AuthorRef is the projection of an author embedded in article listings.
type AuthorRef struct {
	ID     int64
	Name   string
	Avatar string
}

// ArticleWithRefs represents an article along with its resolved category and author.
type ArticleWithRefs struct {
	Article  *entity.Article
	Category CategoryRef
	Author   AuthorRef
}

type ArticleRepository interface {
	// ListPage returns one page of articles matching filters, ordered by
	// published_at DESC, id DESC.
	ListPage(ctx context.Context, filters ArticleFilters, offset, limit int) ([]ArticleWithRefs, error)
	// Count returns the number of articles matching filters. It uses the same
	// predicate as ListPage.
	Count(ctx context.Context, filters ArticleFilters) (int64, error)
	// Get returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetBySlugWithRefs returns (nil, nil) if no article has the slug.
	GetBySlugWithRefs(ctx context.Context, slug string) (*ArticleWithRefs, error)
	// IncrementViews atomically adds one to the view counter and returns the new value.
	// Returns entity.ErrNotFound if the article does not exist.
	IncrementViews(ctx context.Context, id int64) (int64, error)
	// SlugExists reports whether an article other than excludeID holds slug.
	// Pass 0 as excludeID to check against every article.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error)
	// Create inserts the article and sets its ID. A duplicate slug is
	// reported as entity.ErrConflict.
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	// Delete returns entity.ErrNotFound if no row was removed.
	Delete(ctx context.Context, id int64) error
}
