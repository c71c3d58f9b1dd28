package ad

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"newsportal/internal/domain/entity"
	"newsportal/internal/observability/metrics"
	"newsportal/internal/observability/tracing"
	"newsportal/internal/repository"
)

// Recorder receives the IDs of ads that were served. *ImpressionQueue
// implements it.
type Recorder interface {
	Enqueue(ids []int64)
}

// CreateInput represents the input parameters for creating an advertisement.
// A nil IsActive defaults to true.
type CreateInput struct {
	Title     string
	Image     string
	URL       string
	Position  string
	StartDate time.Time
	EndDate   time.Time
	IsActive  *bool
}

// UpdateInput represents the input parameters for updating an advertisement.
// Empty strings, zero times and a nil IsActive keep the stored value.
type UpdateInput struct {
	ID        int64
	Title     string
	Image     string
	URL       string
	Position  string
	StartDate time.Time
	EndDate   time.Time
	IsActive  *bool
}

// Service provides advertisement use cases.
type Service struct {
	Repo repository.AdvertisementRepository
	// Impressions is nil when impressions are not recorded.
	Impressions Recorder
	Now         func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns the ads to render for position, newest first, and schedules
// one impression for each of them. The returned counts already include it.
// With an empty position it is the admin
// listing: every ad with the active flag set regardless of its window, and
// no impressions are recorded.
func (s *Service) List(ctx context.Context, position string) ([]*entity.Advertisement, error) {
	ctx, span := tracing.StartSpan(ctx, "ad.List")
	defer span.End()

	if position == "" {
		ads, err := s.Repo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("list active ads: %w", err)
		}
		return ads, nil
	}

	pos, err := entity.ParseAdPosition(position)
	if err != nil {
		return nil, err
	}

	ads, err := s.Repo.ListServable(ctx, pos, s.now())
	if err != nil {
		return nil, fmt.Errorf("list servable ads: %w", err)
	}
	span.SetAttributes(
		attribute.String("position", string(pos)),
		attribute.Int("served", len(ads)),
	)

	if s.Impressions != nil && len(ads) > 0 {
		ids := make([]int64, len(ads))
		for i, a := range ads {
			ids[i] = a.ID
			// 書き込みは非同期なので、返却値には先に反映する
			a.Impressions++
		}
		s.Impressions.Enqueue(ids)
	}
	return ads, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Advertisement, error) {
	if id <= 0 {
		return nil, ErrInvalidAdID
	}
	ad, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ad: %w", err)
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	return ad, nil
}

// RecordClick atomically adds one click to the ad.
// Returns ErrAdNotFound if the ad does not exist.
func (s *Service) RecordClick(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAdID
	}
	if err := s.Repo.IncrementClicks(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrAdNotFound
		}
		return fmt.Errorf("record click: %w", err)
	}
	metrics.RecordAdClick()
	return nil
}

// Create validates the input and stores the advertisement.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Advertisement, error) {
	if err := entity.ValidateRequired("title", in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateRequired("url", in.URL); err != nil {
		return nil, err
	}
	if err := entity.ValidateURL("url", in.URL); err != nil {
		return nil, err
	}
	if err := entity.ValidateRequired("position", in.Position); err != nil {
		return nil, err
	}
	pos, err := entity.ParseAdPosition(in.Position)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateImageRef("image", in.Image); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	ad := &entity.Advertisement{
		Title:     strings.TrimSpace(in.Title),
		Image:     in.Image,
		URL:       in.URL,
		Position:  pos,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		IsActive:  active,
		CreatedAt: s.now(),
	}
	if err := ad.ValidateWindow(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return ad, nil
}

// Update applies the non-empty fields of in and re-validates the window.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Advertisement, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidAdID
	}

	ad, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get ad: %w", err)
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	if t := strings.TrimSpace(in.Title); t != "" {
		ad.Title = t
	}
	if in.URL != "" {
		if err := entity.ValidateURL("url", in.URL); err != nil {
			return nil, err
		}
		ad.URL = in.URL
	}
	if in.Position != "" {
		pos, err := entity.ParseAdPosition(in.Position)
		if err != nil {
			return nil, err
		}
		ad.Position = pos
	}
	if in.Image != "" {
		if err := entity.ValidateImageRef("image", in.Image); err != nil {
			return nil, err
		}
		ad.Image = in.Image
	}
	if !in.StartDate.IsZero() {
		ad.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		ad.EndDate = in.EndDate
	}
	if in.IsActive != nil {
		ad.IsActive = *in.IsActive
	}
	if err := ad.ValidateWindow(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, ad); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, fmt.Errorf("update ad: %w", err)
	}
	return ad, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAdID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrAdNotFound
		}
		return fmt.Errorf("delete ad: %w", err)
	}
	return nil
}

// CountServableByPosition returns, for each position, how many ads are
// servable right now.
func (s *Service) CountServableByPosition(ctx context.Context) (map[entity.AdPosition]int64, error) {
	counts, err := s.Repo.CountServableByPosition(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("count servable ads: %w", err)
	}
	return counts, nil
}
