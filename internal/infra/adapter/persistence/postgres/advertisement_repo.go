package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

type AdvertisementRepo struct{ db *sql.DB }

func NewAdvertisementRepo(db *sql.DB) repository.AdvertisementRepository {
	return &AdvertisementRepo{db: db}
}

const adColumns = `id, title, image, url, position, start_date, end_date, is_active, clicks, impressions, created_at`

func scanAd(row scanner) (*entity.Advertisement, error) {
	var ad entity.Advertisement
	if err := row.Scan(&ad.ID, &ad.Title, &ad.Image, &ad.URL, &ad.Position,
		&ad.StartDate, &ad.EndDate, &ad.IsActive, &ad.Clicks, &ad.Impressions, &ad.CreatedAt); err != nil {
		return nil, err
	}
	return &ad, nil
}

func (repo *AdvertisementRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Advertisement, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	ads := make([]*entity.Advertisement, 0, 8)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows.Err: %w", op, err)
	}
	return ads, nil
}

func (repo *AdvertisementRepo) ListServable(ctx context.Context, position entity.AdPosition, now time.Time) ([]*entity.Advertisement, error) {
	const query = `
SELECT ` + adColumns + `
FROM advertisements
WHERE is_active AND position = $1 AND start_date <= $2 AND end_date >= $2
ORDER BY created_at DESC, id DESC`
	return repo.list(ctx, "ListServable", query, string(position), now)
}

func (repo *AdvertisementRepo) ListActive(ctx context.Context) ([]*entity.Advertisement, error) {
	const query = `
SELECT ` + adColumns + `
FROM advertisements
WHERE is_active
ORDER BY created_at DESC, id DESC`
	return repo.list(ctx, "ListActive", query)
}

func (repo *AdvertisementRepo) Get(ctx context.Context, id int64) (*entity.Advertisement, error) {
	const query = `SELECT ` + adColumns + ` FROM advertisements WHERE id = $1 LIMIT 1`
	ad, err := scanAd(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return ad, nil
}

// IncrementImpressions adds one impression to every listed ad in one statement.
func (repo *AdvertisementRepo) IncrementImpressions(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	const query = `UPDATE advertisements SET impressions = impressions + 1 WHERE id = ANY($1)`
	if _, err := repo.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("IncrementImpressions: %w", err)
	}
	return nil
}

func (repo *AdvertisementRepo) IncrementClicks(ctx context.Context, id int64) error {
	const query = `UPDATE advertisements SET clicks = clicks + 1 WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("IncrementClicks: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("IncrementClicks: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *AdvertisementRepo) CountServableByPosition(ctx context.Context, now time.Time) (map[entity.AdPosition]int64, error) {
	const query = `
SELECT position, COUNT(*)
FROM advertisements
WHERE is_active AND start_date <= $1 AND end_date >= $1
GROUP BY position`
	rows, err := repo.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("CountServableByPosition: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[entity.AdPosition]int64, len(entity.AdPositions))
	for rows.Next() {
		var (
			pos entity.AdPosition
			n   int64
		)
		if err := rows.Scan(&pos, &n); err != nil {
			return nil, fmt.Errorf("CountServableByPosition: Scan: %w", err)
		}
		counts[pos] = n
	}
	return counts, rows.Err()
}

func (repo *AdvertisementRepo) Create(ctx context.Context, ad *entity.Advertisement) error {
	const query = `
INSERT INTO advertisements
       (title, image, url, position, start_date, end_date, is_active, clicks, impressions, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		ad.Title, ad.Image, ad.URL, string(ad.Position), ad.StartDate, ad.EndDate,
		ad.IsActive, ad.Clicks, ad.Impressions, ad.CreatedAt,
	).Scan(&ad.ID)
	if err != nil {
		return writeError("Create", err)
	}
	return nil
}

// Update leaves the click and impression counters alone.
func (repo *AdvertisementRepo) Update(ctx context.Context, ad *entity.Advertisement) error {
	const query = `
UPDATE advertisements SET
       title      = $1,
       image      = $2,
       url        = $3,
       position   = $4,
       start_date = $5,
       end_date   = $6,
       is_active  = $7
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		ad.Title, ad.Image, ad.URL, string(ad.Position),
		ad.StartDate, ad.EndDate, ad.IsActive, ad.ID,
	)
	if err != nil {
		return writeError("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *AdvertisementRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
