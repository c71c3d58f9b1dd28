// Package slug assigns unique URL slugs to content entities.
package slug

import (
	"context"
	"errors"
	"fmt"

	"newsportal/internal/domain/entity"
)

var (
	// ErrEmptySlug is returned when the source text yields no slug characters.
	ErrEmptySlug = &entity.ValidationError{Field: "slug", Message: "cannot be derived from an empty or symbol-only title"}

	// ErrSlugTaken is returned when another record already holds the derived slug.
	ErrSlugTaken = fmt.Errorf("slug %w", entity.ErrConflict)
)

// Store answers whether a slug is held by a record other than excludeID.
type Store interface {
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// AssignUnique derives a slug from text and checks it against store.
// excludeID is the record being updated, or 0 on create.
// It never suffixes or retries: a collision is reported as ErrSlugTaken.
// The uniqueness check is advisory; the store's unique constraint is the
// final arbiter at write time.
func AssignUnique(ctx context.Context, store Store, text string, excludeID int64) (string, error) {
	s := entity.DeriveSlug(text)
	if s == "" {
		return "", ErrEmptySlug
	}

	taken, err := store.SlugExists(ctx, s, excludeID)
	if err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return "", ErrSlugTaken
	}
	return s, nil
}

// IsTaken reports whether err signals a slug collision, either from
// AssignUnique or from a unique-constraint violation surfaced by a repository.
func IsTaken(err error) bool {
	return errors.Is(err, entity.ErrConflict)
}
