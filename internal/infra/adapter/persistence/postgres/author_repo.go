package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

type AuthorRepo struct{ db *sql.DB }

func NewAuthorRepo(db *sql.DB) repository.AuthorRepository {
	return &AuthorRepo{db: db}
}

// Upsert keeps the original created_at of an existing author.
func (repo *AuthorRepo) Upsert(ctx context.Context, a *entity.Author) error {
	const query = `
INSERT INTO authors (email, name, avatar, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET
       name   = EXCLUDED.name,
       avatar = EXCLUDED.avatar
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, a.Email, a.Name, a.Avatar, a.CreatedAt).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return writeError("Upsert", err)
	}
	return nil
}

func (repo *AuthorRepo) GetByEmail(ctx context.Context, email string) (*entity.Author, error) {
	const query = `SELECT id, email, name, avatar, created_at FROM authors WHERE email = $1 LIMIT 1`
	var a entity.Author
	err := repo.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.Name, &a.Avatar, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &a, nil
}
