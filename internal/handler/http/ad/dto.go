// Package ad provides HTTP handlers for advertisement endpoints: serving ads
// for a page position, the click beacon and admin CRUD.
package ad

import (
	"time"

	"newsportal/internal/domain/entity"
)

// DTO represents the JSON structure for advertisement data transfer.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"Summer sale"`
	Image       string    `json:"image" example:"/uploads/banner.png"`
	URL         string    `json:"url" example:"https://shop.example.com/sale"`
	Position    string    `json:"position" example:"sidebar"`
	StartDate   time.Time `json:"start_date" example:"2025-07-01T00:00:00Z"`
	EndDate     time.Time `json:"end_date" example:"2025-08-31T23:59:59Z"`
	IsActive    bool      `json:"is_active" example:"true"`
	Clicks      int64     `json:"clicks" example:"12"`
	Impressions int64     `json:"impressions" example:"3400"`
	CreatedAt   time.Time `json:"created_at" example:"2025-06-20T12:00:00Z"`
}

// writeRequest is the body of POST /ads and PUT /ads/{id}.
type writeRequest struct {
	Title     string     `json:"title" example:"Summer sale"`
	Image     string     `json:"image" example:"/uploads/banner.png"`
	URL       string     `json:"url" example:"https://shop.example.com/sale"`
	Position  string     `json:"position" example:"sidebar"`
	StartDate *time.Time `json:"start_date" example:"2025-07-01T00:00:00Z"`
	EndDate   *time.Time `json:"end_date" example:"2025-08-31T23:59:59Z"`
	IsActive  *bool      `json:"is_active" example:"true"`
}

func (r writeRequest) window() (start, end time.Time) {
	if r.StartDate != nil {
		start = *r.StartDate
	}
	if r.EndDate != nil {
		end = *r.EndDate
	}
	return start, end
}

func toDTO(a *entity.Advertisement) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Image:       a.Image,
		URL:         a.URL,
		Position:    string(a.Position),
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		IsActive:    a.IsActive,
		Clicks:      a.Clicks,
		Impressions: a.Impressions,
		CreatedAt:   a.CreatedAt,
	}
}
