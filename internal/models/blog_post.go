package models

import "time"

// BlogPostModel is a blog article.
//
// PublishedAt is set on the first transition to published and deliberately
// kept on unpublish, so the original publication date survives a
// publish/unpublish cycle.
type BlogPostModel struct {
	Base
	Title       string             `json:"title"        gorm:"not null"`
	Slug        string             `json:"slug"         gorm:"uniqueIndex;not null"`
	Excerpt     string             `json:"excerpt"      gorm:"type:text"`
	Content     string             `json:"content"      gorm:"type:longtext"`
	CoverImage  string             `json:"cover_image"`
	CategoryID  *string            `json:"category_id"  gorm:"index"`
	Category    *BlogCategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsPublished bool               `json:"is_published" gorm:"default:false;index"`
	PublishedAt *time.Time         `json:"published_at"`
	Author      string             `json:"author"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
