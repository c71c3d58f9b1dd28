package repository

import (
	"context"

	"newsportal/internal/domain/entity"
)

type AuthorRepository interface {
	// Upsert inserts the author or refreshes name and avatar of the row with
	// the same email, then sets author.ID.
	Upsert(ctx context.Context, author *entity.Author) error
	// GetByEmail returns (nil, nil) if no author has the email.
	GetByEmail(ctx context.Context, email string) (*entity.Author, error)
}
