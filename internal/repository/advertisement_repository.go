package repository

import (
	"context"
	"time"

	"newsportal/internal/domain/entity"
)

type AdvertisementRepository interface {
	// ListServable returns active ads in position whose window contains now,
	// newest first.
	ListServable(ctx context.Context, position entity.AdPosition, now time.Time) ([]*entity.Advertisement, error)
	// ListActive returns every ad with the active flag set, newest first,
	// regardless of its window.
	ListActive(ctx context.Context) ([]*entity.Advertisement, error)
	// Get returns (nil, nil) if the ad is not found.
	Get(ctx context.Context, id int64) (*entity.Advertisement, error)
	// IncrementImpressions adds one impression to each id in a single statement.
	IncrementImpressions(ctx context.Context, ids []int64) error
	// IncrementClicks atomically adds one click. Returns entity.ErrNotFound
	// if the ad does not exist.
	IncrementClicks(ctx context.Context, id int64) error
	// CountServableByPosition is used for inventory gauges.
	CountServableByPosition(ctx context.Context, now time.Time) (map[entity.AdPosition]int64, error)
	Create(ctx context.Context, ad *entity.Advertisement) error
	Update(ctx context.Context, ad *entity.Advertisement) error
	Delete(ctx context.Context, id int64) error
}
