package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

const articleColumns = `a.id, a.title, a.slug, a.excerpt, a.content, a.featured_image,
       a.category_id, a.tags, a.author_id, a.status, a.views,
       a.seo_title, a.seo_description, a.seo_keywords,
       a.created_at, a.updated_at, a.published_at`

const refColumns = `c.id, c.name, c.slug, au.id, au.name, au.avatar`

const refJoins = `
JOIN categories c ON c.id = a.category_id
JOIN authors au ON au.id = a.author_id`

type scanner interface {
	Scan(dest ...any) error
}

func articleDest(a *entity.Article) []any {
	return []any{
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.FeaturedImage,
		&a.CategoryID, pq.Array(&a.Tags), &a.AuthorID, &a.Status, &a.Views,
		&a.SEOTitle, &a.SEODescription, pq.Array(&a.SEOKeywords),
		&a.CreatedAt, &a.UpdatedAt, &a.PublishedAt,
	}
}

func scanArticleWithRefs(row scanner) (repository.ArticleWithRefs, error) {
	var (
		a   entity.Article
		out repository.ArticleWithRefs
	)
	dest := append(articleDest(&a),
		&out.Category.ID, &out.Category.Name, &out.Category.Slug,
		&out.Author.ID, &out.Author.Name, &out.Author.Avatar,
	)
	if err := row.Scan(dest...); err != nil {
		return out, err
	}
	out.Article = &a
	return out, nil
}

// ListPage returns one page of articles matching filters, newest published
// first with id as the tie-breaker.
func (repo *ArticleRepo) ListPage(ctx context.Context, filters repository.ArticleFilters, offset, limit int) ([]repository.ArticleWithRefs, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filters, "a")
	n := len(args)
	query := fmt.Sprintf(`
SELECT %s,
       %s
FROM articles a%s
%s
ORDER BY a.published_at DESC NULLS LAST, a.id DESC
LIMIT $%d OFFSET $%d`, articleColumns, refColumns, refJoins, where, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	result := make([]repository.ArticleWithRefs, 0, limit)
	for rows.Next() {
		item, err := scanArticleWithRefs(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPage: Scan: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPage: rows.Err: %w", err)
	}
	return result, nil
}

// Count uses the same predicate as ListPage.
func (repo *ArticleRepo) Count(ctx context.Context, filters repository.ArticleFilters) (int64, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filters, "a")
	query := "SELECT COUNT(*) FROM articles a " + where

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles a
WHERE a.id = $1
LIMIT 1`
	var a entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).Scan(articleDest(&a)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &a, nil
}

func (repo *ArticleRepo) GetBySlugWithRefs(ctx context.Context, slug string) (*repository.ArticleWithRefs, error) {
	query := `
SELECT ` + articleColumns + `,
       ` + refColumns + `
FROM articles a` + refJoins + `
WHERE a.slug = $1
LIMIT 1`
	item, err := scanArticleWithRefs(repo.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlugWithRefs: %w", err)
	}
	return &item, nil
}

// IncrementViews adds one view in a single statement and returns the new count.
func (repo *ArticleRepo) IncrementViews(ctx context.Context, id int64) (int64, error) {
	const query = `UPDATE articles SET views = views + 1 WHERE id = $1 RETURNING views`
	var views int64
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&views)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("IncrementViews: %w", entity.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("IncrementViews: %w", err)
	}
	return views, nil
}

func (repo *ArticleRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("SlugExists: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles WHERE category_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByCategory: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error) {
	const query = `SELECT status, COUNT(*) FROM articles GROUP BY status`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CountByStatus: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[entity.ArticleStatus]int64, 3)
	for rows.Next() {
		var (
			status entity.ArticleStatus
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("CountByStatus: Scan: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles
       (title, slug, excerpt, content, featured_image, category_id, tags, author_id,
        status, views, seo_title, seo_description, seo_keywords,
        created_at, updated_at, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		a.Title, a.Slug, a.Excerpt, a.Content, a.FeaturedImage, a.CategoryID,
		pq.Array(nonNil(a.Tags)), a.AuthorID, string(a.Status), a.Views,
		a.SEOTitle, a.SEODescription, pq.Array(nonNil(a.SEOKeywords)),
		a.CreatedAt, a.UpdatedAt, a.PublishedAt,
	).Scan(&a.ID)
	if err != nil {
		return writeError("Create", err)
	}
	return nil
}

// Update rewrites every mutable column. Views are left to IncrementViews.
func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	const query = `
UPDATE articles SET
       title           = $1,
       slug            = $2,
       excerpt         = $3,
       content         = $4,
       featured_image  = $5,
       category_id     = $6,
       tags            = $7,
       status          = $8,
       seo_title       = $9,
       seo_description = $10,
       seo_keywords    = $11,
       updated_at      = $12,
       published_at    = $13
WHERE id = $14`
	res, err := repo.db.ExecContext(ctx, query,
		a.Title, a.Slug, a.Excerpt, a.Content, a.FeaturedImage, a.CategoryID,
		pq.Array(nonNil(a.Tags)), string(a.Status),
		a.SEOTitle, a.SEODescription, pq.Array(nonNil(a.SEOKeywords)),
		a.UpdatedAt, a.PublishedAt, a.ID,
	)
	if err != nil {
		return writeError("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return deleteError("Delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
