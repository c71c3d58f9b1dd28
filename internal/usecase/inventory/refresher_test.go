package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/internal/domain/entity"
	"newsportal/internal/observability/metrics"
)

/* ───────── ヘルパ ───────── */

type stubArticles struct {
	counts map[entity.ArticleStatus]int64
	err    error
}

func (s stubArticles) CountByStatus(context.Context) (map[entity.ArticleStatus]int64, error) {
	return s.counts, s.err
}

type stubCategories struct {
	n   int64
	err error
}

func (s stubCategories) Count(context.Context) (int64, error) { return s.n, s.err }

type stubAds struct {
	counts map[entity.AdPosition]int64
	err    error
}

func (s stubAds) CountServableByPosition(context.Context) (map[entity.AdPosition]int64, error) {
	return s.counts, s.err
}

type countingGuard struct {
	calls int
	err   error
}

func (g *countingGuard) Do(ctx context.Context, fn func(context.Context) error) error {
	g.calls++
	if g.err != nil {
		return g.err
	}
	return fn(ctx)
}

func newRefresher() *Refresher {
	return &Refresher{
		Articles: stubArticles{counts: map[entity.ArticleStatus]int64{
			entity.StatusDraft:     2,
			entity.StatusPublished: 7,
		}},
		Categories: stubCategories{n: 4},
		Ads: stubAds{counts: map[entity.AdPosition]int64{
			entity.PositionSidebar: 3,
		}},
	}
}

/* ───────── tests ───────── */

func TestRefresher_PublishesGauges(t *testing.T) {
	r := newRefresher()

	snap, err := r.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(9), snap.Articles())
	assert.Equal(t, int64(4), snap.Categories)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ArticlesByStatus.WithLabelValues("draft")))
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.ArticlesByStatus.WithLabelValues("published")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ArticlesByStatus.WithLabelValues("archived")))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.CategoriesTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.ServableAds.WithLabelValues("sidebar")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ServableAds.WithLabelValues("header")))
}

func TestRefresher_ErrorKeepsPreviousGauges(t *testing.T) {
	r := newRefresher()
	_, err := r.Refresh(context.Background())
	require.NoError(t, err)

	boom := errors.New("connection reset")
	r.Categories = stubCategories{n: 99, err: boom}
	r.Articles = stubArticles{counts: map[entity.ArticleStatus]int64{entity.StatusPublished: 50}}

	_, err = r.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "count categories")

	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.CategoriesTotal))
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.ArticlesByStatus.WithLabelValues("published")))
}

func TestRefresher_UsesGuard(t *testing.T) {
	r := newRefresher()
	g := &countingGuard{}
	r.Guard = g

	_, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, g.calls)

	open := errors.New("circuit breaker is open")
	g.err = open
	_, err = r.Refresh(context.Background())
	assert.ErrorIs(t, err, open)
	assert.Equal(t, 2, g.calls)
}
