package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"newsportal/internal/domain/entity"
	pg "newsportal/internal/infra/adapter/persistence/postgres"
	"newsportal/internal/repository"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

var articleCols = []string{
	"id", "title", "slug", "excerpt", "content", "featured_image",
	"category_id", "tags", "author_id", "status", "views",
	"seo_title", "seo_description", "seo_keywords",
	"created_at", "updated_at", "published_at",
}

var refCols = []string{"c_id", "c_name", "c_slug", "au_id", "au_name", "au_avatar"}

func fixedTime() time.Time {
	return time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
}

func sampleArticle() *entity.Article {
	now := fixedTime()
	return &entity.Article{
		ID: 1, Title: "Go 1.25 released", Slug: "go-125-released",
		Excerpt: "short", Content: "long body", FeaturedImage: "/img/go.png",
		CategoryID: 2, Tags: []string{"go", "release"}, AuthorID: 3,
		Status: entity.StatusPublished, Views: 10,
		SEOTitle: "Go 1.25 released", SEODescription: "short",
		SEOKeywords: []string{"go", "release"},
		CreatedAt:   now, UpdatedAt: now, PublishedAt: &now,
	}
}

func articleValues(a *entity.Article) []any {
	var published any
	if a.PublishedAt != nil {
		published = *a.PublishedAt
	}
	return []any{
		a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.FeaturedImage,
		a.CategoryID, "{go,release}", a.AuthorID, string(a.Status), a.Views,
		a.SEOTitle, a.SEODescription, "{go,release}",
		a.CreatedAt, a.UpdatedAt, published,
	}
}

func articleRows(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows(articleCols).AddRow(articleValues(a)...)
}

func articleRefRows(items ...repository.ArticleWithRefs) *sqlmock.Rows {
	rows := sqlmock.NewRows(append(append([]string{}, articleCols...), refCols...))
	for _, it := range items {
		vals := append(articleValues(it.Article),
			it.Category.ID, it.Category.Name, it.Category.Slug,
			it.Author.ID, it.Author.Name, it.Author.Avatar,
		)
		rows.AddRow(vals...)
	}
	return rows
}

func sampleWithRefs() repository.ArticleWithRefs {
	return repository.ArticleWithRefs{
		Article:  sampleArticle(),
		Category: repository.CategoryRef{ID: 2, Name: "Tech", Slug: "tech"},
		Author:   repository.AuthorRef{ID: 3, Name: "Alice", Avatar: "/a.png"},
	}
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

/* ─────────────────────────── 1. Get ─────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	db, mock := newMock(t)
	want := sampleArticle()

	mock.ExpectQuery(regexp.QuoteMeta("FROM articles a\nWHERE a.id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(articleRows(want))

	got, err := pg.NewArticleRepo(db).Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM articles").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(articleCols))

	got, err := pg.NewArticleRepo(db).Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
	}
}

func TestArticleRepo_Get_DraftWithoutPublishedAt(t *testing.T) {
	db, mock := newMock(t)
	draft := sampleArticle()
	draft.Status = entity.StatusDraft
	draft.PublishedAt = nil

	mock.ExpectQuery("FROM articles").WillReturnRows(articleRows(draft))

	got, err := pg.NewArticleRepo(db).Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.PublishedAt != nil {
		t.Fatalf("PublishedAt = %v, want nil", got.PublishedAt)
	}
	if got.Status != entity.StatusDraft {
		t.Fatalf("Status = %q", got.Status)
	}
}

/* ─────────────────────────── 2. ListPage / Count ─────────────────────────── */

func TestArticleRepo_ListPage(t *testing.T) {
	db, mock := newMock(t)
	item := sampleWithRefs()
	catID := int64(2)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.status = $1 AND a.category_id = $2")).
		WithArgs("published", int64(2), 10, 20).
		WillReturnRows(articleRefRows(item))

	got, err := pg.NewArticleRepo(db).ListPage(context.Background(),
		repository.ArticleFilters{Status: entity.StatusPublished, CategoryID: &catID}, 20, 10)
	if err != nil {
		t.Fatalf("ListPage err=%v", err)
	}
	if diff := cmp.Diff([]repository.ArticleWithRefs{item}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListPage_Ordering(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY a.published_at DESC NULLS LAST, a.id DESC")).
		WithArgs(10, 0).
		WillReturnRows(articleRefRows())

	got, err := pg.NewArticleRepo(db).ListPage(context.Background(), repository.ArticleFilters{}, 0, 10)
	if err != nil {
		t.Fatalf("ListPage err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListPage_Search(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("a.search_vector @@ websearch_to_tsquery('simple', $2)")).
		WithArgs("published", "golang release", 5, 0).
		WillReturnRows(articleRefRows(sampleWithRefs()))

	got, err := pg.NewArticleRepo(db).ListPage(context.Background(),
		repository.ArticleFilters{Status: entity.StatusPublished, Search: "  golang release "}, 0, 5)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListPage err=%v len=%d", err, len(got))
	}
}

func TestArticleRepo_ListPage_QueryError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM articles").WillReturnError(errors.New("boom"))

	_, err := pg.NewArticleRepo(db).ListPage(context.Background(), repository.ArticleFilters{}, 0, 10)
	if err == nil {
		t.Fatal("want error")
	}
}

func TestArticleRepo_Count(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles a WHERE a.status = $1")).
		WithArgs("published").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	got, err := pg.NewArticleRepo(db).Count(context.Background(),
		repository.ArticleFilters{Status: entity.StatusPublished})
	if err != nil || got != 42 {
		t.Fatalf("Count = %d, %v; want 42", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ─────────────────────────── 3. GetBySlugWithRefs ─────────────────────────── */

func TestArticleRepo_GetBySlugWithRefs(t *testing.T) {
	db, mock := newMock(t)
	want := sampleWithRefs()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.slug = $1")).
		WithArgs("go-125-released").
		WillReturnRows(articleRefRows(want))

	got, err := pg.NewArticleRepo(db).GetBySlugWithRefs(context.Background(), "go-125-released")
	if err != nil {
		t.Fatalf("GetBySlugWithRefs err=%v", err)
	}
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleRepo_GetBySlugWithRefs_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("WHERE a.slug").WillReturnError(sql.ErrNoRows)

	got, err := pg.NewArticleRepo(db).GetBySlugWithRefs(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
	}
}

/* ─────────────────────────── 4. Counters ─────────────────────────── */

func TestArticleRepo_IncrementViews(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles SET views = views + 1 WHERE id = $1 RETURNING views")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"views"}).AddRow(11))

	got, err := pg.NewArticleRepo(db).IncrementViews(context.Background(), 1)
	if err != nil || got != 11 {
		t.Fatalf("IncrementViews = %d, %v; want 11", got, err)
	}
}

func TestArticleRepo_IncrementViews_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("UPDATE articles SET views").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"views"}))

	_, err := pg.NewArticleRepo(db).IncrementViews(context.Background(), 9)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestArticleRepo_SlugExists(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE slug = $1 AND id <> $2")).
		WithArgs("hello-world", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := pg.NewArticleRepo(db).SlugExists(context.Background(), "hello-world", 4)
	if err != nil || !got {
		t.Fatalf("SlugExists = %v, %v; want true", got, err)
	}
}

func TestArticleRepo_CountByCategory(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM articles WHERE category_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	got, err := pg.NewArticleRepo(db).CountByCategory(context.Background(), 2)
	if err != nil || got != 3 {
		t.Fatalf("CountByCategory = %d, %v; want 3", got, err)
	}
}

func TestArticleRepo_CountByStatus(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("draft", 2).
			AddRow("published", 5))

	got, err := pg.NewArticleRepo(db).CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus err=%v", err)
	}
	want := map[entity.ArticleStatus]int64{entity.StatusDraft: 2, entity.StatusPublished: 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

/* ─────────────────────────── 5. Create / Update / Delete ─────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	db, mock := newMock(t)
	a := sampleArticle()
	a.ID = 0

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs(
			a.Title, a.Slug, a.Excerpt, a.Content, a.FeaturedImage, a.CategoryID,
			sqlmock.AnyArg(), a.AuthorID, "published", a.Views,
			a.SEOTitle, a.SEODescription, sqlmock.AnyArg(),
			a.CreatedAt, a.UpdatedAt, sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	if err := pg.NewArticleRepo(db).Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID != 7 {
		t.Fatalf("ID = %d, want 7", a.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Create_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name string
		pg   *pgconn.PgError
		want error
	}{
		{
			name: "duplicate slug",
			pg:   &pgconn.PgError{Code: "23505", ConstraintName: "articles_slug_key"},
			want: entity.ErrConflict,
		},
		{
			name: "unknown category",
			pg:   &pgconn.PgError{Code: "23503", ConstraintName: "articles_category_id_fkey", ColumnName: "category_id"},
			want: entity.ErrValidationFailed,
		},
		{
			name: "bad status",
			pg:   &pgconn.PgError{Code: "23514", ConstraintName: "articles_status_check"},
			want: entity.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectQuery("INSERT INTO articles").WillReturnError(tt.pg)

			err := pg.NewArticleRepo(db).Create(context.Background(), sampleArticle())
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestArticleRepo_Update(t *testing.T) {
	db, mock := newMock(t)
	a := sampleArticle()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles SET")).
		WithArgs(
			a.Title, a.Slug, a.Excerpt, a.Content, a.FeaturedImage, a.CategoryID,
			sqlmock.AnyArg(), "published",
			a.SEOTitle, a.SEODescription, sqlmock.AnyArg(),
			a.UpdatedAt, sqlmock.AnyArg(), a.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := pg.NewArticleRepo(db).Update(context.Background(), a); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE articles SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := pg.NewArticleRepo(db).Update(context.Background(), sampleArticle())
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestArticleRepo_Delete(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := pg.NewArticleRepo(db).Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestArticleRepo_Delete_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := pg.NewArticleRepo(db).Delete(context.Background(), 5)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
