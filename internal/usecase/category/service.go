package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsportal/internal/domain/entity"
	"newsportal/internal/observability/metrics"
	"newsportal/internal/repository"
	"newsportal/internal/usecase/slug"
)

// CreateInput represents the input parameters for creating a new category.
type CreateInput struct {
	Name           string
	Description    string
	FeaturedImage  string
	SEOTitle       string
	SEODescription string
}

// UpdateInput represents the input parameters for updating a category.
// Empty string fields will not be updated.
type UpdateInput struct {
	ID             int64
	Name           string
	Description    string
	FeaturedImage  string
	SEOTitle       string
	SEODescription string
}

// ArticleCounter reports how many articles reference a category.
// repository.ArticleRepository satisfies it.
type ArticleCounter interface {
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// Service provides category management use cases.
type Service struct {
	Repo repository.CategoryRepository
	// Articles is consulted before Delete; nil leaves the check to the
	// store's foreign key.
	Articles ArticleCounter
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns all categories sorted by name.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	cats, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// GetBySlug returns ErrCategoryNotFound if no category has the slug.
func (s *Service) GetBySlug(ctx context.Context, categorySlug string) (*entity.Category, error) {
	if categorySlug == "" {
		return nil, ErrCategoryNotFound
	}
	cat, err := s.Repo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidCategoryID
	}
	cat, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

// Create validates the input and stores a category with a slug derived from
// its name. Returns ErrDuplicateCategory if the slug is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if err := entity.ValidateRequired("name", name); err != nil {
		return nil, err
	}
	if err := entity.ValidateMaxLength("name", name, 100); err != nil {
		return nil, err
	}
	if err := entity.ValidateImageRef("featuredImage", in.FeaturedImage); err != nil {
		return nil, err
	}

	sl, err := slug.AssignUnique(ctx, s.Repo, name, 0)
	if err != nil {
		return nil, slugError(err)
	}

	cat := &entity.Category{
		Name:           name,
		Slug:           sl,
		Description:    in.Description,
		FeaturedImage:  in.FeaturedImage,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		CreatedAt:      s.now(),
	}
	cat.FillSEODefaults()

	if err := s.Repo.Create(ctx, cat); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, slugError(err)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

// Update applies the non-empty fields of in. The slug follows the name only
// when the name actually changes.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Category, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidCategoryID
	}

	cat, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	if name := strings.TrimSpace(in.Name); name != "" && name != cat.Name {
		if err := entity.ValidateMaxLength("name", name, 100); err != nil {
			return nil, err
		}
		sl, err := slug.AssignUnique(ctx, s.Repo, name, cat.ID)
		if err != nil {
			return nil, slugError(err)
		}
		cat.Name = name
		cat.Slug = sl
	}
	if in.Description != "" {
		cat.Description = in.Description
	}
	if in.FeaturedImage != "" {
		if err := entity.ValidateImageRef("featuredImage", in.FeaturedImage); err != nil {
			return nil, err
		}
		cat.FeaturedImage = in.FeaturedImage
	}
	if in.SEOTitle != "" {
		cat.SEOTitle = in.SEOTitle
	}
	if in.SEODescription != "" {
		cat.SEODescription = in.SEODescription
	}

	if err := s.Repo.Update(ctx, cat); err != nil {
		switch {
		case errors.Is(err, entity.ErrConflict):
			return nil, slugError(err)
		case errors.Is(err, entity.ErrNotFound):
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return cat, nil
}

// Delete removes a category that no article references.
// Returns ErrCategoryInUse otherwise.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCategoryID
	}

	if s.Articles != nil {
		n, err := s.Articles.CountByCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("count articles in category: %w", err)
		}
		if n > 0 {
			return ErrCategoryInUse
		}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, entity.ErrConflict):
			// an article was attached between the count and the delete
			return ErrCategoryInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Count returns the number of categories.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

func slugError(err error) error {
	if slug.IsTaken(err) {
		metrics.RecordSlugConflict("category")
		return ErrDuplicateCategory
	}
	if errors.Is(err, slug.ErrEmptySlug) {
		return &entity.ValidationError{Field: "name", Message: "must contain at least one letter or digit"}
	}
	return fmt.Errorf("assign slug: %w", err)
}
