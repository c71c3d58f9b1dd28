// Package article provides HTTP handlers for article endpoints: the public
// paginated listing and slug reads, and editorial create, update and delete.
package article

import (
	"time"

	"newsportal/internal/domain/entity"
	"newsportal/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID            int64        `json:"id" example:"1"`
	Title         string       `json:"title" example:"Election results are in"`
	Slug          string       `json:"slug" example:"election-results-are-in"`
	Excerpt       string       `json:"excerpt" example:"Turnout hit a record high."`
	Content       string       `json:"content" example:"<p>...</p>"`
	FeaturedImage string       `json:"featured_image,omitempty" example:"/uploads/election.jpg"`
	CategoryID    int64        `json:"category_id" example:"2"`
	Category      *CategoryRef `json:"category,omitempty"`
	Tags          []string     `json:"tags" example:"politics,election"`
	AuthorID      int64        `json:"author_id" example:"1"`
	Author        *AuthorRef   `json:"author,omitempty"`
	Status        string       `json:"status" example:"published"`
	Views         int64        `json:"views" example:"42"`
	SEO           SEO          `json:"seo"`
	CreatedAt     time.Time    `json:"created_at" example:"2025-10-26T12:00:00Z"`
	UpdatedAt     time.Time    `json:"updated_at" example:"2025-10-26T12:00:00Z"`
	PublishedAt   *time.Time   `json:"published_at,omitempty" example:"2025-10-26T12:00:00Z"`
}

// CategoryRef is the category projection embedded in article responses.
type CategoryRef struct {
	ID   int64  `json:"id" example:"2"`
	Name string `json:"name" example:"Politics"`
	Slug string `json:"slug" example:"politics"`
}

// AuthorRef is the author projection embedded in article responses.
type AuthorRef struct {
	ID     int64  `json:"id" example:"1"`
	Name   string `json:"name" example:"jane doe"`
	Avatar string `json:"avatar,omitempty" example:"/uploads/jane.png"`
}

// SEO groups the search-engine metadata of an article.
type SEO struct {
	Title       string   `json:"title" example:"Election results are in"`
	Description string   `json:"description" example:"Turnout hit a record high."`
	Keywords    []string `json:"keywords" example:"politics,election"`
}

// writeRequest is the body of POST /articles and PUT /articles/{id}.
type writeRequest struct {
	Title          string   `json:"title" example:"Election results are in"`
	Excerpt        string   `json:"excerpt" example:"Turnout hit a record high."`
	Content        string   `json:"content" example:"<p>...</p>"`
	FeaturedImage  string   `json:"featured_image" example:"/uploads/election.jpg"`
	CategoryID     int64    `json:"category_id" example:"2"`
	Tags           []string `json:"tags" example:"politics,election"`
	Status         string   `json:"status" example:"draft"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
	SEOKeywords    []string `json:"seo_keywords"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:            a.ID,
		Title:         a.Title,
		Slug:          a.Slug,
		Excerpt:       a.Excerpt,
		Content:       a.Content,
		FeaturedImage: a.FeaturedImage,
		CategoryID:    a.CategoryID,
		Tags:          nonNil(a.Tags),
		AuthorID:      a.AuthorID,
		Status:        string(a.Status),
		Views:         a.Views,
		SEO: SEO{
			Title:       a.SEOTitle,
			Description: a.SEODescription,
			Keywords:    nonNil(a.SEOKeywords),
		},
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		PublishedAt: a.PublishedAt,
	}
}

func toDTOWithRefs(item repository.ArticleWithRefs) DTO {
	out := toDTO(item.Article)
	out.Category = &CategoryRef{ID: item.Category.ID, Name: item.Category.Name, Slug: item.Category.Slug}
	out.Author = &AuthorRef{ID: item.Author.ID, Name: item.Author.Name, Avatar: item.Author.Avatar}
	return out
}
