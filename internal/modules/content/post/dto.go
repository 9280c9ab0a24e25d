package post

import (
	"time"

	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/modules/processing/markdown"
)

type CreatePostDTO struct {
	Title       string  `json:"title" binding:"required"`
	Slug        string  `json:"slug"` // manual override; derived from title when empty
	Excerpt     string  `json:"excerpt"`
	Content     string  `json:"content"`
	CoverImage  string  `json:"cover_image"`
	CategoryID  *string `json:"category_id"`
	IsPublished *bool   `json:"is_published"`
	Author      string  `json:"author"`
}

type UpdatePostDTO struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	CoverImage  *string `json:"cover_image"`
	CategoryID  *string `json:"category_id"`
	IsPublished *bool   `json:"is_published"`
	Author      *string `json:"author"`
}

// ListQuery holds the public list filters: category is an exact slug
// match, q is a case-insensitive substring over title and content.
type ListQuery struct {
	Category *string `form:"category"`
	Q        *string `form:"q"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type postResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Slug         string            `json:"slug"`
	Excerpt      string            `json:"excerpt"`
	Content      string            `json:"content"`
	HTML         string            `json:"html,omitempty"`
	CoverImage   string            `json:"cover_image"`
	Category     *categoryResponse `json:"category"`
	CategoryName string            `json:"category_name"`
	IsPublished  bool              `json:"is_published"`
	PublishedAt  *time.Time        `json:"published_at"`
	Author       string            `json:"author"`
	Created      time.Time         `json:"created"`
	Modified     time.Time         `json:"modified"`
}

// fallbackCategoryLabel is what an uncategorized post renders under; a
// post without a category is valid, never an error.
const fallbackCategoryLabel = "Non classé"

func toResponse(p *models.BlogPostModel, renderHTML bool) postResponse {
	resp := postResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Excerpt:      p.Excerpt,
		Content:      p.Content,
		CoverImage:   p.CoverImage,
		CategoryName: fallbackCategoryLabel,
		IsPublished:  p.IsPublished,
		PublishedAt:  p.PublishedAt,
		Author:       p.Author,
		Created:      p.CreatedAt,
		Modified:     p.UpdatedAt,
	}
	if p.Category != nil {
		resp.Category = &categoryResponse{ID: p.Category.ID, Name: p.Category.Name, Slug: p.Category.Slug}
		resp.CategoryName = p.Category.Name
	}
	if renderHTML {
		resp.HTML = markdown.ToHTML(p.Content)
	}
	return resp
}
