// Package inventory publishes content inventory gauges: articles by status,
// categories, and servable ads by position.
package inventory

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"newsportal/internal/domain/entity"
	"newsportal/internal/observability/metrics"
	"newsportal/internal/observability/tracing"
)

// ArticleCounter is satisfied by *article.Service.
type ArticleCounter interface {
	CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error)
}

// CategoryCounter is satisfied by *category.Service.
type CategoryCounter interface {
	Count(ctx context.Context) (int64, error)
}

// AdCounter is satisfied by *ad.Service.
type AdCounter interface {
	CountServableByPosition(ctx context.Context) (map[entity.AdPosition]int64, error)
}

// Guard runs store work, typically through a circuit breaker.
// *circuitbreaker.DBCircuitBreaker satisfies it.
type Guard interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Snapshot is one consistent read of the inventory counts.
type Snapshot struct {
	ArticlesByStatus map[entity.ArticleStatus]int64
	Categories       int64
	ServableAds      map[entity.AdPosition]int64
}

// Articles returns the total number of articles across statuses.
func (s Snapshot) Articles() int64 {
	var n int64
	for _, c := range s.ArticlesByStatus {
		n += c
	}
	return n
}

// Refresher reads inventory counts and publishes them as gauges.
type Refresher struct {
	Articles   ArticleCounter
	Categories CategoryCounter
	Ads        AdCounter
	// Guard is optional.
	Guard Guard
}

// Refresh reads all counts concurrently. Gauges are only updated when every
// count succeeded, so a failing store leaves the previous values in place.
func (r *Refresher) Refresh(ctx context.Context) (Snapshot, error) {
	ctx, span := tracing.StartSpan(ctx, "inventory.Refresh")
	defer span.End()

	var snap Snapshot
	read := func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			counts, err := r.Articles.CountByStatus(gctx)
			if err != nil {
				return fmt.Errorf("count articles: %w", err)
			}
			snap.ArticlesByStatus = counts
			return nil
		})
		g.Go(func() error {
			n, err := r.Categories.Count(gctx)
			if err != nil {
				return fmt.Errorf("count categories: %w", err)
			}
			snap.Categories = n
			return nil
		})
		g.Go(func() error {
			counts, err := r.Ads.CountServableByPosition(gctx)
			if err != nil {
				return fmt.Errorf("count ads: %w", err)
			}
			snap.ServableAds = counts
			return nil
		})
		return g.Wait()
	}

	var err error
	if r.Guard != nil {
		err = r.Guard.Do(ctx, read)
	} else {
		err = read(ctx)
	}
	if err != nil {
		span.RecordError(err)
		return Snapshot{}, fmt.Errorf("Refresh: %w", err)
	}

	publish(snap)
	return snap, nil
}

func publish(snap Snapshot) {
	statuses := []string{string(entity.StatusDraft), string(entity.StatusPublished), string(entity.StatusArchived)}
	articles := make(map[string]int64, len(snap.ArticlesByStatus))
	for st, n := range snap.ArticlesByStatus {
		articles[string(st)] = n
	}
	metrics.UpdateArticlesByStatus(articles, statuses)

	metrics.UpdateCategoriesTotal(snap.Categories)

	positions := make([]string, 0, len(entity.AdPositions))
	for _, p := range entity.AdPositions {
		positions = append(positions, string(p))
	}
	ads := make(map[string]int64, len(snap.ServableAds))
	for p, n := range snap.ServableAds {
		ads[string(p)] = n
	}
	metrics.UpdateServableAds(ads, positions)
}
