// Package category provides HTTP handlers for category endpoints.
package category

import (
	"time"

	"newsportal/internal/domain/entity"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID             int64     `json:"id" example:"2"`
	Name           string    `json:"name" example:"Politics"`
	Slug           string    `json:"slug" example:"politics"`
	Description    string    `json:"description" example:"National and local politics"`
	FeaturedImage  string    `json:"featured_image,omitempty" example:"/uploads/politics.jpg"`
	SEOTitle       string    `json:"seo_title" example:"Politics"`
	SEODescription string    `json:"seo_description" example:"National and local politics"`
	CreatedAt      time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
}

type writeRequest struct {
	Name           string `json:"name" example:"Politics"`
	Description    string `json:"description" example:"National and local politics"`
	FeaturedImage  string `json:"featured_image" example:"/uploads/politics.jpg"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{
		ID:             c.ID,
		Name:           c.Name,
		Slug:           c.Slug,
		Description:    c.Description,
		FeaturedImage:  c.FeaturedImage,
		SEOTitle:       c.SEOTitle,
		SEODescription: c.SEODescription,
		CreatedAt:      c.CreatedAt,
	}
}
