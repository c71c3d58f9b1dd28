package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db, queryBuilder: NewArticleQueryBuilder()}
}

const articleColumns = `a.id, a.title, a.slug, a.excerpt, a.content, a.featured_image,
       a.category_id, a.tags, a.author_id, a.status, a.views,
       a.seo_title, a.seo_description, a.seo_keywords,
       a.created_at, a.updated_at, a.published_at`

const refColumns = `c.id, c.name, c.slug, au.id, au.name, au.avatar`

const refJoins = `
JOIN categories c ON c.id = a.category_id
JOIN authors au ON au.id = a.author_id`

// articleRow holds the raw column values before conversion to entity.Article.
type articleRow struct {
	a                entity.Article
	tags, keywords   string
	created, updated int64
	published        sql.NullInt64
}

func (r *articleRow) dest() []any {
	return []any{
		&r.a.ID, &r.a.Title, &r.a.Slug, &r.a.Excerpt, &r.a.Content, &r.a.FeaturedImage,
		&r.a.CategoryID, &r.tags, &r.a.AuthorID, &r.a.Status, &r.a.Views,
		&r.a.SEOTitle, &r.a.SEODescription, &r.keywords,
		&r.created, &r.updated, &r.published,
	}
}

func (r *articleRow) article() (*entity.Article, error) {
	var err error
	if r.a.Tags, err = decodeList(r.tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if r.a.SEOKeywords, err = decodeList(r.keywords); err != nil {
		return nil, fmt.Errorf("decode seo_keywords: %w", err)
	}
	r.a.CreatedAt = fromUnix(r.created)
	r.a.UpdatedAt = fromUnix(r.updated)
	r.a.PublishedAt = fromNullUnix(r.published)
	a := r.a
	return &a, nil
}

func scanArticleWithRefs(row scanner) (repository.ArticleWithRefs, error) {
	var (
		raw articleRow
		out repository.ArticleWithRefs
	)
	dest := append(raw.dest(),
		&out.Category.ID, &out.Category.Name, &out.Category.Slug,
		&out.Author.ID, &out.Author.Name, &out.Author.Avatar,
	)
	if err := row.Scan(dest...); err != nil {
		return out, err
	}
	a, err := raw.article()
	if err != nil {
		return out, err
	}
	out.Article = a
	return out, nil
}

// ListPage returns one page of articles matching filters, newest published
// first with id as the tie-breaker. Unpublished rows sort last.
func (repo *ArticleRepo) ListPage(ctx context.Context, filters repository.ArticleFilters, offset, limit int) ([]repository.ArticleWithRefs, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filters, "a")
	query := `
SELECT ` + articleColumns + `,
       ` + refColumns + `
FROM articles a` + refJoins + `
` + where + `
ORDER BY a.published_at DESC, a.id DESC
LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPage: QueryContext: %w", err)
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
	query := `SELECT ` + articleColumns + ` FROM articles a WHERE a.id = ? LIMIT 1`
	var raw articleRow
	err := repo.db.QueryRowContext(ctx, query, id).Scan(raw.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	a, err := raw.article()
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) GetBySlugWithRefs(ctx context.Context, slug string) (*repository.ArticleWithRefs, error) {
	query := `
SELECT ` + articleColumns + `,
       ` + refColumns + `
FROM articles a` + refJoins + `
WHERE a.slug = ?
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

func (repo *ArticleRepo) IncrementViews(ctx context.Context, id int64) (int64, error) {
	const query = `UPDATE articles SET views = views + 1 WHERE id = ? RETURNING views`
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
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE slug = ? AND id <> ?)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("SlugExists: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles WHERE category_id = ?`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountByCategory: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM articles GROUP BY status`)
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
	tags, keywords, err := encodeArticleLists(a)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	const query = `
INSERT INTO articles
       (title, slug, excerpt, content, featured_image, category_id, tags, author_id,
        status, views, seo_title, seo_description, seo_keywords,
        created_at, updated_at, published_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query,
		a.Title, a.Slug, a.Excerpt, a.Content, a.FeaturedImage, a.CategoryID,
		tags, a.AuthorID, string(a.Status), a.Views,
		a.SEOTitle, a.SEODescription, keywords,
		toUnix(a.CreatedAt), toUnix(a.UpdatedAt), toNullUnix(a.PublishedAt),
	)
	if err != nil {
		return writeError("Create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	a.ID = id
	return nil
}

// Update rewrites every mutable column. Views are left to IncrementViews.
func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	tags, keywords, err := encodeArticleLists(a)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	const query = `
UPDATE articles SET
       title = ?, slug = ?, excerpt = ?, content = ?, featured_image = ?,
       category_id = ?, tags = ?, status = ?,
       seo_title = ?, seo_description = ?, seo_keywords = ?,
       updated_at = ?, published_at = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		a.Title, a.Slug, a.Excerpt, a.Content, a.FeaturedImage,
		a.CategoryID, tags, string(a.Status),
		a.SEOTitle, a.SEODescription, keywords,
		toUnix(a.UpdatedAt), toNullUnix(a.PublishedAt), a.ID,
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
	res, err := repo.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return deleteError("Delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func encodeArticleLists(a *entity.Article) (tags, keywords string, err error) {
	if tags, err = encodeList(a.Tags); err != nil {
		return "", "", fmt.Errorf("encode tags: %w", err)
	}
	if keywords, err = encodeList(a.SEOKeywords); err != nil {
		return "", "", fmt.Errorf("encode seo_keywords: %w", err)
	}
	return tags, keywords, nil
}
