// Package pagination turns page/limit query parameters into SQL offsets and
// the metadata block that accompanies every paginated listing.
package pagination

import (
	"math"
	"net/http"
	"strconv"

	"newsportal/pkg/config"
)

// Config bounds the page size.
type Config struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns limit 10, capped at 100.
func DefaultConfig() Config {
	return Config{DefaultLimit: 10, MaxLimit: 100}
}

// LoadFromEnv reads PAGINATION_DEFAULT_LIMIT and PAGINATION_MAX_LIMIT.
// Values below 1 fall back to the defaults and the default limit never
// exceeds the maximum.
func LoadFromEnv() Config {
	def := DefaultConfig()
	cfg := Config{
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
	if cfg.MaxLimit < 1 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.DefaultLimit < 1 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	cfg.DefaultLimit = min(cfg.DefaultLimit, cfg.MaxLimit)
	return cfg
}

// Params is a 1-based page request.
type Params struct {
	Page  int
	Limit int
}

// FromRequest reads ?page= and ?limit=. It never fails: anything missing,
// non-numeric or below 1 becomes the default.
func FromRequest(r *http.Request, cfg Config) Params {
	q := r.URL.Query()
	p := Params{Page: positiveInt(q.Get("page")), Limit: positiveInt(q.Get("limit"))}
	return p.Normalize(cfg)
}

func positiveInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// Normalize fills in page 1 and the default limit, and caps the limit.
// The page is capped so that Offset cannot overflow.
func (p Params) Normalize(cfg Config) Params {
	if cfg.MaxLimit < 1 {
		cfg = DefaultConfig()
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = cfg.DefaultLimit
	}
	p.Limit = min(p.Limit, cfg.MaxLimit)
	p.Page = min(p.Page, maxPage(p.Limit))
	return p
}

// maxPage is the last page whose offset still fits in an int.
func maxPage(limit int) int {
	return math.MaxInt/limit + 1
}

// Offset is the number of rows to skip.
func (p Params) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page > maxPage(p.Limit) {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Metadata describes where a page sits in the full listing.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Meta builds the metadata for a listing of total rows.
func (p Params) Meta(total int64) Metadata {
	return Metadata{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}

// TotalPages is ceil(total/limit); an empty listing has zero pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Response is the {"data": [...], "pagination": {...}} envelope.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse wraps one page of items. A nil slice is encoded as [].
func NewResponse[T any](data []T, meta Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{Data: data, Pagination: meta}
}
