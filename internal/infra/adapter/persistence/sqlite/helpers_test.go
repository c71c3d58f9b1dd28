package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"newsportal/internal/domain/entity"
	"newsportal/internal/infra/adapter/persistence/sqlite"
	"newsportal/internal/infra/db"
)

/* ────────────────────────────  ヘルパ  ──────────────────────────── */

func newTestDB(tb testing.TB) *sql.DB {
	tb.Helper()
	conn, err := db.OpenSQLite(filepath.Join(tb.TempDir(), "test.db"))
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = conn.Close() })
	require.NoError(tb, db.MigrateUp(conn, db.DriverSQLite))
	return conn
}

var t0 = time.Date(2025, 7, 19, 9, 0, 0, 0, time.UTC)

func seedCategory(tb testing.TB, conn *sql.DB, name string) *entity.Category {
	tb.Helper()
	c := &entity.Category{Name: name, Slug: entity.DeriveSlug(name), CreatedAt: t0}
	require.NoError(tb, sqlite.NewCategoryRepo(conn).Create(context.Background(), c))
	return c
}

func seedAuthor(tb testing.TB, conn *sql.DB, email string) *entity.Author {
	tb.Helper()
	a := &entity.Author{Email: email, Name: "Author " + email, Avatar: "/avatars/1.png", CreatedAt: t0}
	require.NoError(tb, sqlite.NewAuthorRepo(conn).Upsert(context.Background(), a))
	return a
}

func newArticle(title string, cat *entity.Category, au *entity.Author, status entity.ArticleStatus, published *time.Time) *entity.Article {
	return &entity.Article{
		Title:       title,
		Slug:        entity.DeriveSlug(title),
		Excerpt:     "excerpt of " + title,
		Content:     "content of " + title,
		CategoryID:  cat.ID,
		AuthorID:    au.ID,
		Tags:        []string{"news"},
		Status:      status,
		CreatedAt:   t0,
		UpdatedAt:   t0,
		PublishedAt: published,
	}
}

func at(d time.Duration) *time.Time {
	t := t0.Add(d)
	return &t
}
