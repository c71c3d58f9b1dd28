package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

type CategoryRepo struct{ db *sql.DB }

func NewCategoryRepo(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, name, slug, description, featured_image, seo_title, seo_description, created_at`

func scanCategory(row scanner) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.FeaturedImage,
		&c.SEOTitle, &c.SEODescription, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
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
	return categories, rows.Err()
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 LIMIT 1`
	c, err := scanCategory(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1 LIMIT 1`
	c, err := scanCategory(repo.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return c, nil
}

func (repo *CategoryRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
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
INSERT INTO categories
       (name, slug, description, featured_image, seo_title, seo_description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		c.Name, c.Slug, c.Description, c.FeaturedImage,
		c.SEOTitle, c.SEODescription, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return writeError("Create", err)
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	const query = `
UPDATE categories SET
       name            = $1,
       slug            = $2,
       description     = $3,
       featured_image  = $4,
       seo_title       = $5,
       seo_description = $6
WHERE id = $7`
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

// Delete fails with entity.ErrConflict while articles reference the category.
func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return deleteError("Delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
