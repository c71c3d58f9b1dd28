package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"newsportal/internal/domain/entity"
)

// SQLSTATE codes mapped to domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// writeError wraps err with op and maps constraint violations raised by an
// INSERT or UPDATE to domain errors.
func writeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, entity.ErrConflict)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w", op, &entity.ValidationError{
				Field:   pgErr.ColumnName,
				Message: "invalid reference: " + pgErr.ConstraintName,
			})
		case checkViolation:
			return fmt.Errorf("%s: %w", op, &entity.ValidationError{
				Field:   pgErr.ColumnName,
				Message: "invalid value: " + pgErr.ConstraintName,
			})
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteError maps a foreign key violation on DELETE to entity.ErrConflict:
// the row is still referenced.
func deleteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, entity.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
