package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "slug", Message: "must not exceed 200 characters"}

	assert.Equal(t, "validation error on field 'slug': must not exceed 200 characters", err.Error())
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrInvalidInput)

	wrapped := fmt.Errorf("create article: %w", err)
	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "slug", ve.Field)
	assert.ErrorIs(t, wrapped, ErrValidationFailed)
}

func TestValidationError_Joined(t *testing.T) {
	err := errors.Join(
		&ValidationError{Field: "title", Message: "is required"},
		&ValidationError{Field: "category", Message: "is required"},
	)

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "'title'")
	assert.Contains(t, err.Error(), "'category'")
}

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrValidationFailed}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

func TestKindErrors(t *testing.T) {
	nf := NotFoundError("article not found")
	assert.Equal(t, "article not found", nf.Error())
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.NotErrorIs(t, nf, ErrConflict)

	wrapped := fmt.Errorf("get article: %w", nf)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.ErrorIs(t, wrapped, nf)

	c := ConflictError("category with this name already exists")
	assert.ErrorIs(t, c, ErrConflict)
	assert.NotErrorIs(t, c, ErrNotFound)
}
