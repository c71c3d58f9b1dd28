package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

// AuthorRepo implements the AuthorRepository interface using SQLite.
type AuthorRepo struct{ db *sql.DB }

// NewAuthorRepo creates a new SQLite-backed author repository.
func NewAuthorRepo(db *sql.DB) repository.AuthorRepository {
	return &AuthorRepo{db: db}
}

func (repo *AuthorRepo) Upsert(ctx context.Context, a *entity.Author) error {
	const query = `
INSERT INTO authors (email, name, avatar, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (email) DO UPDATE SET name = excluded.name, avatar = excluded.avatar
RETURNING id, created_at`
	var created int64
	err := repo.db.QueryRowContext(ctx, query, a.Email, a.Name, a.Avatar, toUnix(a.CreatedAt)).
		Scan(&a.ID, &created)
	if err != nil {
		return writeError("Upsert", err)
	}
	a.CreatedAt = fromUnix(created)
	return nil
}

func (repo *AuthorRepo) GetByEmail(ctx context.Context, email string) (*entity.Author, error) {
	var (
		a       entity.Author
		created int64
	)
	err := repo.db.QueryRowContext(ctx,
		`SELECT id, email, name, avatar, created_at FROM authors WHERE email = ? LIMIT 1`, email).
		Scan(&a.ID, &a.Email, &a.Name, &a.Avatar, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	a.CreatedAt = fromUnix(created)
	return &a, nil
}
