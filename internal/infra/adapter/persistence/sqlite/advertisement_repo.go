package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

// AdvertisementRepo implements the AdvertisementRepository interface using SQLite.
type AdvertisementRepo struct{ db *sql.DB }

// NewAdvertisementRepo creates a new SQLite-backed advertisement repository.
func NewAdvertisementRepo(db *sql.DB) repository.AdvertisementRepository {
	return &AdvertisementRepo{db: db}
}

const adColumns = `id, title, image, url, position, start_date, end_date, is_active, clicks, impressions, created_at`

func scanAd(row scanner) (*entity.Advertisement, error) {
	var (
		ad                  entity.Advertisement
		start, end, created int64
	)
	if err := row.Scan(&ad.ID, &ad.Title, &ad.Image, &ad.URL, &ad.Position,
		&start, &end, &ad.IsActive, &ad.Clicks, &ad.Impressions, &created); err != nil {
		return nil, err
	}
	ad.StartDate = fromUnix(start)
	ad.EndDate = fromUnix(end)
	ad.CreatedAt = fromUnix(created)
	return &ad, nil
}

func (repo *AdvertisementRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Advertisement, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: QueryContext: %w", op, err)
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
WHERE is_active = 1 AND position = ? AND start_date <= ? AND end_date >= ?
ORDER BY created_at DESC, id DESC`
	ts := toUnix(now)
	return repo.list(ctx, "ListServable", query, string(position), ts, ts)
}

func (repo *AdvertisementRepo) ListActive(ctx context.Context) ([]*entity.Advertisement, error) {
	const query = `
SELECT ` + adColumns + `
FROM advertisements
WHERE is_active = 1
ORDER BY created_at DESC, id DESC`
	return repo.list(ctx, "ListActive", query)
}

func (repo *AdvertisementRepo) Get(ctx context.Context, id int64) (*entity.Advertisement, error) {
	ad, err := scanAd(repo.db.QueryRowContext(ctx,
		`SELECT `+adColumns+` FROM advertisements WHERE id = ? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return ad, nil
}

func (repo *AdvertisementRepo) IncrementImpressions(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `UPDATE advertisements SET impressions = impressions + 1 WHERE id IN (` + placeholders + `)`
	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("IncrementImpressions: %w", err)
	}
	return nil
}

func (repo *AdvertisementRepo) IncrementClicks(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `UPDATE advertisements SET clicks = clicks + 1 WHERE id = ?`, id)
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
WHERE is_active = 1 AND start_date <= ? AND end_date >= ?
GROUP BY position`
	ts := toUnix(now)
	rows, err := repo.db.QueryContext(ctx, query, ts, ts)
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
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := repo.db.ExecContext(ctx, query,
		ad.Title, ad.Image, ad.URL, string(ad.Position),
		toUnix(ad.StartDate), toUnix(ad.EndDate), ad.IsActive,
		ad.Clicks, ad.Impressions, toUnix(ad.CreatedAt),
	)
	if err != nil {
		return writeError("Create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	ad.ID = id
	return nil
}

func (repo *AdvertisementRepo) Update(ctx context.Context, ad *entity.Advertisement) error {
	const query = `
UPDATE advertisements SET
       title = ?, image = ?, url = ?, position = ?,
       start_date = ?, end_date = ?, is_active = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		ad.Title, ad.Image, ad.URL, string(ad.Position),
		toUnix(ad.StartDate), toUnix(ad.EndDate), ad.IsActive, ad.ID,
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
	res, err := repo.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
