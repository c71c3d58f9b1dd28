package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"newsportal/internal/common/pagination"
	"newsportal/internal/domain/entity"
	"newsportal/internal/observability/metrics"
	"newsportal/internal/observability/tracing"
	"newsportal/internal/repository"
	"newsportal/internal/usecase/slug"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title          string
	Excerpt        string
	Content        string
	FeaturedImage  string
	CategoryID     int64
	Tags           []string
	AuthorID       int64
	Status         string
	SEOTitle       string
	SEODescription string
	SEOKeywords    []string
}

// UpdateInput represents the input parameters for updating an existing article.
// Empty strings, zero IDs and nil slices keep the stored value.
type UpdateInput struct {
	ID             int64
	Title          string
	Excerpt        string
	Content        string
	FeaturedImage  string
	CategoryID     int64
	Tags           []string
	Status         string
	SEOTitle       string
	SEODescription string
	SEOKeywords    []string
}

// ListFilters are the public listing filters.
type ListFilters struct {
	CategorySlug string
	Search       string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo       repository.ArticleRepository
	Categories repository.CategoryRepository
	Pagination pagination.Config
	Now        func() time.Time
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithRefs
	Pagination pagination.Metadata
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) paginationConfig() pagination.Config {
	if s.Pagination.MaxLimit <= 0 {
		return pagination.DefaultConfig()
	}
	return s.Pagination
}

// ListPublished returns one page of published articles, newest first.
//
// An unknown category slug drops the category filter instead of failing.
// The page and the total count are fetched concurrently with the same
// predicate; it has no side effects.
func (s *Service) ListPublished(ctx context.Context, f ListFilters, params pagination.Params) (*PaginatedResult, error) {
	ctx, span := tracing.StartSpan(ctx, "article.ListPublished")
	defer span.End()
	start := time.Now()

	params = params.Normalize(s.paginationConfig())
	filters := repository.ArticleFilters{
		Status: entity.StatusPublished,
		Search: strings.TrimSpace(f.Search),
	}

	if f.CategorySlug != "" && s.Categories != nil {
		cat, err := s.Categories.GetBySlug(ctx, f.CategorySlug)
		if err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}
		if cat != nil {
			id := cat.ID
			filters.CategoryID = &id
		}
	}

	var (
		items []repository.ArticleWithRefs
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.Repo.ListPage(gctx, filters, params.Offset(), params.Limit)
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.Count(gctx, filters)
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("page", params.Page),
		attribute.Int("limit", params.Limit),
		attribute.Int64("total", total),
	)
	pagination.ObserveDuration("service", time.Since(start))

	if items == nil {
		items = []repository.ArticleWithRefs{}
	}
	return &PaginatedResult{
		Data:       items,
		Pagination: params.Meta(total),
	}, nil
}

// GetBySlug returns the article with its category and author and records one view.
// Every call increments the view counter; there is no per-reader dedup.
// Returns ErrArticleNotFound if no article has the slug.
func (s *Service) GetBySlug(ctx context.Context, articleSlug string) (*repository.ArticleWithRefs, error) {
	ctx, span := tracing.StartSpan(ctx, "article.GetBySlug")
	defer span.End()

	if articleSlug == "" {
		return nil, ErrArticleNotFound
	}

	item, err := s.Repo.GetBySlugWithRefs(ctx, articleSlug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if item == nil {
		return nil, ErrArticleNotFound
	}

	views, err := s.Repo.IncrementViews(ctx, item.Article.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("increment views: %w", err)
	}
	item.Article.Views = views
	metrics.RecordArticleView()

	return item, nil
}

// Get retrieves a single article by its ID without touching the view counter.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create validates the input, assigns a unique slug derived from the title
// and stores the article. SEO fields default to title, excerpt and tags.
// Returns a ValidationError if any input field is invalid and
// ErrDuplicateArticle if the slug is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if err := entity.ValidateRequired("title", in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateRequired("content", in.Content); err != nil {
		return nil, err
	}
	if err := entity.ValidateRequired("excerpt", in.Excerpt); err != nil {
		return nil, err
	}
	if in.CategoryID <= 0 {
		return nil, &entity.ValidationError{Field: "category", Message: "is required"}
	}
	if in.AuthorID <= 0 {
		return nil, &entity.ValidationError{Field: "author", Message: "is required"}
	}
	if err := entity.ValidateImageRef("featuredImage", in.FeaturedImage); err != nil {
		return nil, err
	}
	status, err := entity.ParseArticleStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	sl, err := slug.AssignUnique(ctx, s.Repo, title, 0)
	if err != nil {
		return nil, s.slugError(err)
	}

	now := s.now()
	art := &entity.Article{
		Title:          title,
		Slug:           sl,
		Excerpt:        in.Excerpt,
		Content:        in.Content,
		FeaturedImage:  in.FeaturedImage,
		CategoryID:     in.CategoryID,
		Tags:           normalizeTags(in.Tags),
		AuthorID:       in.AuthorID,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		SEOKeywords:    normalizeTags(in.SEOKeywords),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	art.ApplyStatus(status, now)
	art.FillSEODefaults()

	if err := s.Repo.Create(ctx, art); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, s.slugError(err)
		}
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update modifies an existing article with the provided input.
// The slug is re-derived only when the title actually changes. The publish
// timestamp is stamped on the first transition to published and kept after.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
// Returns ErrDuplicateArticle if the new title collides with another article.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if title := strings.TrimSpace(in.Title); title != "" && title != art.Title {
		sl, err := slug.AssignUnique(ctx, s.Repo, title, art.ID)
		if err != nil {
			return nil, s.slugError(err)
		}
		art.Title = title
		art.Slug = sl
	}

	if in.Content != "" {
		art.Content = in.Content
	}
	if in.Excerpt != "" {
		art.Excerpt = in.Excerpt
	}
	if in.Tags != nil {
		art.Tags = normalizeTags(in.Tags)
	}
	if in.CategoryID != 0 {
		if in.CategoryID < 0 {
			return nil, &entity.ValidationError{Field: "category", Message: "must be positive"}
		}
		if in.CategoryID != art.CategoryID {
			if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
				return nil, err
			}
		}
		art.CategoryID = in.CategoryID
	}
	if in.FeaturedImage != "" {
		if err := entity.ValidateImageRef("featuredImage", in.FeaturedImage); err != nil {
			return nil, err
		}
		art.FeaturedImage = in.FeaturedImage
	}
	if in.SEOTitle != "" {
		art.SEOTitle = in.SEOTitle
	}
	if in.SEODescription != "" {
		art.SEODescription = in.SEODescription
	}
	if in.SEOKeywords != nil {
		art.SEOKeywords = normalizeTags(in.SEOKeywords)
	}

	now := s.now()
	if in.Status != "" {
		status, err := entity.ParseArticleStatus(in.Status)
		if err != nil {
			return nil, err
		}
		art.ApplyStatus(status, now)
	}
	art.UpdatedAt = now

	if err := s.Repo.Update(ctx, art); err != nil {
		switch {
		case errors.Is(err, entity.ErrConflict):
			return nil, s.slugError(err)
		case errors.Is(err, entity.ErrNotFound):
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// CountByStatus returns the number of articles in each status.
func (s *Service) CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error) {
	counts, err := s.Repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles by status: %w", err)
	}
	return counts, nil
}

func (s *Service) ensureCategory(ctx context.Context, id int64) error {
	if s.Categories == nil {
		return nil
	}
	cat, err := s.Categories.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return ErrUnknownCategory
	}
	return nil
}

func (s *Service) slugError(err error) error {
	if slug.IsTaken(err) {
		metrics.RecordSlugConflict("article")
		return ErrDuplicateArticle
	}
	if errors.Is(err, slug.ErrEmptySlug) {
		return &entity.ValidationError{Field: "title", Message: "must contain at least one letter or digit"}
	}
	return fmt.Errorf("assign slug: %w", err)
}

// normalizeTags trims tags and drops empty or repeated ones, keeping order.
// A nil input stays nil.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
