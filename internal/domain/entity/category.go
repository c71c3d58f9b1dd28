package entity

import "time"

// Category groups articles. Name and Slug are both unique.
type Category struct {
	ID             int64
	Name           string
	Slug           string
	Description    string
	FeaturedImage  string
	SEOTitle       string
	SEODescription string
	CreatedAt      time.Time
}

// FillSEODefaults copies name and description into empty SEO fields.
func (c *Category) FillSEODefaults() {
	if c.SEOTitle == "" {
		c.SEOTitle = c.Name
	}
	if c.SEODescription == "" {
		c.SEODescription = c.Description
	}
}
