// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Category and
// Advertisement, along with their validation rules and domain-specific errors.
package entity

import (
	"fmt"
	"time"
)

// ArticleStatus is the lifecycle state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ParseArticleStatus converts raw input into an ArticleStatus.
// An empty string yields StatusDraft.
func ParseArticleStatus(raw string) (ArticleStatus, error) {
	if raw == "" {
		return StatusDraft, nil
	}
	s := ArticleStatus(raw)
	if !s.Valid() {
		return "", &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("must be one of draft, published, archived (got %q)", raw),
		}
	}
	return s, nil
}

// Article represents a news article entity in the system.
// Slug is unique across all articles. PublishedAt is set on the first
// transition to published and never cleared afterwards.
type Article struct {
	ID             int64
	Title          string
	Slug           string
	Excerpt        string
	Content        string
	FeaturedImage  string
	CategoryID     int64
	Tags           []string
	AuthorID       int64
	Status         ArticleStatus
	Views          int64
	SEOTitle       string
	SEODescription string
	SEOKeywords    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	PublishedAt    *time.Time
}

// ApplyStatus moves the article to status s. The publish timestamp is
// stamped with now only the first time the article becomes published.
func (a *Article) ApplyStatus(s ArticleStatus, now time.Time) {
	a.Status = s
	if s == StatusPublished && a.PublishedAt == nil {
		t := now
		a.PublishedAt = &t
	}
}

// FillSEODefaults copies title, excerpt and tags into empty SEO fields.
func (a *Article) FillSEODefaults() {
	if a.SEOTitle == "" {
		a.SEOTitle = a.Title
	}
	if a.SEODescription == "" {
		a.SEODescription = a.Excerpt
	}
	if len(a.SEOKeywords) == 0 && len(a.Tags) > 0 {
		a.SEOKeywords = append([]string(nil), a.Tags...)
	}
}
