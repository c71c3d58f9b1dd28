package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

// CategoryRepo implements the CategoryRepository interface using SQLite.
type CategoryRepo struct{ db *sql.DB }

// NewCategoryRepo creates a new SQLite-backed category repository.
func NewCategoryRepo(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, name, slug, description, featured_image, seo_title, seo_description, created_at`

func scanCategory(row scanner) (*entity.Category, error) {
	var (
		c       entity.Category
		created int64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.FeaturedImage,
		&c.SEOTitle, &c.SEODescription, &created); err != nil {
		return nil, err
	}
	c.CreatedAt = fromUnix(created)
	return &c, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return categories, nil
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := scanCategory(repo.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	c, err := scanCategory(repo.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE slug = ? LIMIT 1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return c, nil
}

func (repo *CategoryRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := repo.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE slug = ? AND id <> ?)`, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("SlugExists: %w", err)
	}
	return exists, nil
}

func (repo *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	const query = `
INSERT INTO categories (name, slug, description, featured_image, seo_title, seo_description, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query,
		c.Name, c.Slug, c.Description, c.FeaturedImage,
		c.SEOTitle, c.SEODescription, toUnix(c.CreatedAt),
	)
	if err != nil {
		return writeError("Create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	c.ID = id
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	const query = `
UPDATE categories SET
       name = ?, slug = ?, description = ?, featured_image = ?,
       seo_title = ?, seo_description = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		c.Name, c.Slug, c.Description, c.FeaturedImage,
		c.SEOTitle, c.SEODescription, c.ID,
	)
	if err != nil {
		return writeError("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return deleteError("Delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
