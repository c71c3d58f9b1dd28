package ad_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/internal/domain/entity"
	adUC "newsportal/internal/usecase/ad"
)

/* ───────── スタブ実装 ───────── */

type stubRepo struct {
	mu      sync.Mutex
	data    map[int64]*entity.Advertisement
	nextID  int64
	err     error
	written [][]int64
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Advertisement{}, nextID: 1}
}

func (s *stubRepo) newestFirst(keep func(*entity.Advertisement) bool) []*entity.Advertisement {
	var out []*entity.Advertisement
	for _, a := range s.data {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *stubRepo) ListServable(_ context.Context, p entity.AdPosition, now time.Time) ([]*entity.Advertisement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.newestFirst(func(a *entity.Advertisement) bool {
		return a.Position == p && a.IsServable(now)
	}), nil
}

func (s *stubRepo) ListActive(context.Context) ([]*entity.Advertisement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.newestFirst(func(a *entity.Advertisement) bool { return a.IsActive }), nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Advertisement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *stubRepo) IncrementImpressions(_ context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.written = append(s.written, ids)
	for _, id := range ids {
		if a, ok := s.data[id]; ok {
			a.Impressions++
		}
	}
	return nil
}

func (s *stubRepo) IncrementClicks(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.data[id]
	if !ok {
		return entity.ErrNotFound
	}
	a.Clicks++
	return nil
}

func (s *stubRepo) CountServableByPosition(_ context.Context, now time.Time) (map[entity.AdPosition]int64, error) {
	out := map[entity.AdPosition]int64{}
	for _, a := range s.data {
		if a.IsServable(now) {
			out[a.Position]++
		}
	}
	return out, s.err
}

func (s *stubRepo) Create(_ context.Context, a *entity.Advertisement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	cp := *a
	s.data[a.ID] = &cp
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Advertisement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[a.ID]; !ok {
		return entity.ErrNotFound
	}
	cp := *a
	s.data[a.ID] = &cp
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) put(a *entity.Advertisement) *entity.Advertisement {
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return a
}

// recorder captures enqueued batches synchronously.
type recorder struct {
	batches [][]int64
}

func (r *recorder) Enqueue(ids []int64) { r.batches = append(r.batches, ids) }

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newService(repo *stubRepo, rec adUC.Recorder) *adUC.Service {
	return &adUC.Service{Repo: repo, Impressions: rec, Now: func() time.Time { return now }}
}

func seedAds(repo *stubRepo) (live, expired, future, inactive, other *entity.Advertisement) {
	day := 24 * time.Hour
	live = repo.put(&entity.Advertisement{Title: "live", Position: entity.PositionSidebar, IsActive: true,
		StartDate: now.Add(-day), EndDate: now.Add(day), CreatedAt: now.Add(-3 * time.Hour)})
	expired = repo.put(&entity.Advertisement{Title: "expired", Position: entity.PositionSidebar, IsActive: true,
		StartDate: now.Add(-3 * day), EndDate: now.Add(-day), CreatedAt: now.Add(-2 * time.Hour)})
	future = repo.put(&entity.Advertisement{Title: "future", Position: entity.PositionSidebar, IsActive: true,
		StartDate: now.Add(day), EndDate: now.Add(2 * day), CreatedAt: now.Add(-time.Hour)})
	inactive = repo.put(&entity.Advertisement{Title: "inactive", Position: entity.PositionSidebar, IsActive: false,
		StartDate: now.Add(-day), EndDate: now.Add(day), CreatedAt: now})
	other = repo.put(&entity.Advertisement{Title: "header", Position: entity.PositionHeader, IsActive: true,
		StartDate: now, EndDate: now, CreatedAt: now.Add(-4 * time.Hour)})
	return
}

/* ───────── List ───────── */

func TestService_List_position(t *testing.T) {
	repo := newStub()
	live, _, _, _, header := seedAds(repo)
	rec := &recorder{}
	svc := newService(repo, rec)

	got, err := svc.List(context.Background(), "sidebar")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, live.ID, got[0].ID)
	assert.Equal(t, [][]int64{{live.ID}}, rec.batches)
	assert.Equal(t, int64(1), got[0].Impressions, "served count includes this impression")
	stored, _ := repo.Get(context.Background(), live.ID)
	assert.Zero(t, stored.Impressions, "the store is updated by the queue")

	// window bounds are inclusive
	got, err = svc.List(context.Background(), "header")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, header.ID, got[0].ID)
}

func TestService_List_admin(t *testing.T) {
	repo := newStub()
	seedAds(repo)
	rec := &recorder{}
	svc := newService(repo, rec)

	got, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	titles := make([]string, 0, len(got))
	for _, a := range got {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"future", "expired", "live", "header"}, titles)
	assert.Empty(t, rec.batches, "admin listing must not record impressions")
}

func TestService_List_emptyResultEnqueuesNothing(t *testing.T) {
	rec := &recorder{}
	svc := newService(newStub(), rec)

	got, err := svc.List(context.Background(), "footer")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, rec.batches)
}

func TestService_List_invalidPosition(t *testing.T) {
	svc := newService(newStub(), nil)
	_, err := svc.List(context.Background(), "popup")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestService_List_repoError(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("timeout")
	svc := newService(repo, nil)
	_, err := svc.List(context.Background(), "header")
	assert.ErrorContains(t, err, "list servable ads")
}

/* ───────── RecordClick ───────── */

func TestService_RecordClick(t *testing.T) {
	repo := newStub()
	live, _, _, _, _ := seedAds(repo)
	svc := newService(repo, nil)

	require.NoError(t, svc.RecordClick(context.Background(), live.ID))
	require.NoError(t, svc.RecordClick(context.Background(), live.ID))
	assert.Equal(t, int64(2), repo.data[live.ID].Clicks)

	assert.ErrorIs(t, svc.RecordClick(context.Background(), 999), adUC.ErrAdNotFound)
	assert.ErrorIs(t, svc.RecordClick(context.Background(), 0), adUC.ErrInvalidAdID)
	for id, a := range repo.data {
		if id != live.ID {
			assert.Zero(t, a.Clicks)
		}
	}
}

/* ───────── CRUD ───────── */

func validCreate() adUC.CreateInput {
	return adUC.CreateInput{
		Title:     "Summer sale",
		Image:     "/uploads/sale.png",
		URL:       "https://shop.example.com/sale",
		Position:  "footer",
		StartDate: now,
		EndDate:   now.Add(48 * time.Hour),
	}
}

func TestService_Create(t *testing.T) {
	repo := newStub()
	svc := newService(repo, nil)

	got, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.True(t, got.IsActive, "ads are active by default")
	assert.Equal(t, entity.PositionFooter, got.Position)
	assert.Equal(t, now, got.CreatedAt)

	off := false
	in := validCreate()
	in.IsActive = &off
	got, err = svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestService_Create_validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*adUC.CreateInput)
		field  string
	}{
		{"missing title", func(in *adUC.CreateInput) { in.Title = "" }, "title"},
		{"missing url", func(in *adUC.CreateInput) { in.URL = "" }, "url"},
		{"non-http url", func(in *adUC.CreateInput) { in.URL = "ftp://files.example.com" }, "url"},
		{"missing position", func(in *adUC.CreateInput) { in.Position = "" }, "position"},
		{"unknown position", func(in *adUC.CreateInput) { in.Position = "popup" }, "position"},
		{"missing start", func(in *adUC.CreateInput) { in.StartDate = time.Time{} }, "startDate"},
		{"missing end", func(in *adUC.CreateInput) { in.EndDate = time.Time{} }, "endDate"},
		{"end before start", func(in *adUC.CreateInput) { in.EndDate = now.Add(-time.Hour) }, "endDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub()
			svc := newService(repo, nil)
			in := validCreate()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			var ve *entity.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.field, ve.Field)
			assert.Empty(t, repo.data)
		})
	}
}

func TestService_Update(t *testing.T) {
	repo := newStub()
	svc := newService(repo, nil)
	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	off := false
	got, err := svc.Update(context.Background(), adUC.UpdateInput{ID: created.ID, Title: "Winter sale", IsActive: &off})
	require.NoError(t, err)
	assert.Equal(t, "Winter sale", got.Title)
	assert.False(t, got.IsActive)
	assert.Equal(t, created.URL, got.URL)
	assert.Equal(t, created.Position, got.Position)
	assert.Equal(t, created.EndDate, got.EndDate)

	_, err = svc.Update(context.Background(), adUC.UpdateInput{ID: created.ID, EndDate: now.Add(-time.Hour)})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	_, err = svc.Update(context.Background(), adUC.UpdateInput{ID: 77, Title: "x"})
	assert.ErrorIs(t, err, adUC.ErrAdNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newStub()
	svc := newService(repo, nil)
	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), adUC.ErrAdNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), -1), adUC.ErrInvalidAdID)
}

func TestService_Get(t *testing.T) {
	repo := newStub()
	live, _, _, _, _ := seedAds(repo)
	svc := newService(repo, nil)

	got, err := svc.Get(context.Background(), live.ID)
	require.NoError(t, err)
	assert.Equal(t, "live", got.Title)
	assert.Zero(t, got.Impressions, "single reads are not impressions")

	_, err = svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_CountServableByPosition(t *testing.T) {
	repo := newStub()
	seedAds(repo)
	svc := newService(repo, nil)

	got, err := svc.CountServableByPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got[entity.PositionSidebar])
	assert.Equal(t, int64(1), got[entity.PositionHeader])
	assert.Zero(t, got[entity.PositionFooter])
}
