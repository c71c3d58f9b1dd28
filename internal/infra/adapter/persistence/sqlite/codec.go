package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"newsportal/internal/domain/entity"
)

// Timestamps are stored as INTEGER nanoseconds since the Unix epoch so that
// range predicates and ORDER BY compare numerically.

func toUnix(t time.Time) int64 { return t.UnixNano() }

func fromUnix(n int64) time.Time { return time.Unix(0, n).UTC() }

func toNullUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func fromNullUnix(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromUnix(n.Int64)
	return &t
}

// Tags and keywords are stored as a JSON array of strings.

func encodeList(list []string) (string, error) {
	if len(list) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// constraintCode returns the extended result code of a SQLite error. When
// only the primary SQLITE_CONSTRAINT code is present the kind is taken from
// the message.
func constraintCode(err error) (code int, msg string, ok bool) {
	var sqlErr *moderncsqlite.Error
	if !errors.As(err, &sqlErr) {
		return 0, "", false
	}
	code, msg = sqlErr.Code(), sqlErr.Error()
	if code == sqlite3.SQLITE_CONSTRAINT {
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed"):
			code = sqlite3.SQLITE_CONSTRAINT_UNIQUE
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			code = sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
		case strings.Contains(msg, "CHECK constraint failed"):
			code = sqlite3.SQLITE_CONSTRAINT_CHECK
		case strings.Contains(msg, "NOT NULL constraint failed"):
			code = sqlite3.SQLITE_CONSTRAINT_NOTNULL
		}
	}
	return code, msg, true
}

// writeError wraps err with op and maps constraint violations raised by an
// INSERT or UPDATE to domain errors.
func writeError(op string, err error) error {
	if code, msg, ok := constraintCode(err); ok {
		switch code {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s: %s: %w", op, msg, entity.ErrConflict)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w", op, &entity.ValidationError{
				Field:   "reference",
				Message: "invalid reference",
			})
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%s: %w", op, &entity.ValidationError{
				Field:   "value",
				Message: "invalid value: " + msg,
			})
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteError maps a foreign key violation on DELETE to entity.ErrConflict.
func deleteError(op string, err error) error {
	if code, _, ok := constraintCode(err); ok && code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return fmt.Errorf("%s: still referenced: %w", op, entity.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

type scanner interface {
	Scan(dest ...any) error
}
