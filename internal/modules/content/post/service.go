package post

import (
	"errors"
	"strings"
	"time"

	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/pagination"
	"github.com/jawa-agence/core/internal/pkg/response"
	"github.com/jawa-agence/core/internal/pkg/slug"
	"gorm.io/gorm"
)

// Service handles blog post business logic.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns posts with their category preloaded. Public callers only
// get published posts, newest publication first; the draft filter is part
// of the query, unpublished content never reaches the client. Admins see
// everything, newest record first.
func (s *Service) List(q pagination.Query, lq ListQuery, isAdmin bool) ([]models.BlogPostModel, response.Pagination, error) {
	tx := s.db.Model(&models.BlogPostModel{}).Preload("Category")

	if isAdmin {
		tx = tx.Order("created_at DESC")
	} else {
		tx = tx.Where("is_published = ?", true).Order("published_at DESC")
	}

	if lq.Category != nil {
		tx = tx.Joins("JOIN blog_categories ON blog_categories.id = blog_posts.category_id").
			Where("blog_categories.slug = ?", *lq.Category)
	}
	if lq.Q != nil {
		like := "%" + strings.ToLower(strings.TrimSpace(*lq.Q)) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}

	var posts []models.BlogPostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// GetByIdentifier fetches a post by ID first, then falls back to slug.
func (s *Service) GetByIdentifier(identifier string, isAdmin bool) (*models.BlogPostModel, error) {
	post, err := s.getBy("id = ?", identifier, isAdmin)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	return s.getBy("slug = ?", identifier, isAdmin)
}

func (s *Service) getBy(cond, value string, isAdmin bool) (*models.BlogPostModel, error) {
	tx := s.db.Preload("Category").Where(cond, value)
	if !isAdmin {
		tx = tx.Where("is_published = ?", true)
	}
	var post models.BlogPostModel
	if err := tx.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post. The slug derives from the title unless the
// editor supplied one; a duplicate is rejected outright rather than
// auto-suffixed.
func (s *Service) Create(dto *CreatePostDTO) (*models.BlogPostModel, error) {
	postSlug := slug.Assign(dto.Title, dto.Slug)
	if postSlug == "" {
		return nil, apperr.Validation("slug", "derives to empty")
	}
	if taken, err := s.slugTaken(postSlug, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("slug", postSlug)
	}

	post := models.BlogPostModel{
		Title:      dto.Title,
		Slug:       postSlug,
		Excerpt:    dto.Excerpt,
		Content:    dto.Content,
		CoverImage: dto.CoverImage,
		CategoryID: dto.CategoryID,
		Author:     dto.Author,
	}
	if dto.IsPublished != nil && *dto.IsPublished {
		now := time.Now()
		post.IsPublished = true
		post.PublishedAt = &now
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update patches a post. The slug stays as assigned unless the editor
// explicitly edits it, in which case the same duplicate rejection applies.
func (s *Service) Update(id string, dto *UpdatePostDTO) (*models.BlogPostModel, error) {
	post, err := s.getBy("id = ?", id, true)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil {
		newSlug := slug.Slugify(*dto.Slug)
		if newSlug == "" {
			return nil, apperr.Validation("slug", "derives to empty")
		}
		if newSlug != post.Slug {
			if taken, err := s.slugTaken(newSlug, id); err != nil {
				return nil, err
			} else if taken {
				return nil, apperr.Conflict("slug", newSlug)
			}
			updates["slug"] = newSlug
		}
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.CoverImage != nil {
		updates["cover_image"] = *dto.CoverImage
	}
	if dto.CategoryID != nil {
		updates["category_id"] = *dto.CategoryID
	}
	if dto.Author != nil {
		updates["author"] = *dto.Author
	}
	if dto.IsPublished != nil {
		applyPublishTransition(post, *dto.IsPublished, updates)
	}

	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// SetPublished drives the Draft ⇄ Published state machine.
func (s *Service) SetPublished(id string, published bool) (*models.BlogPostModel, error) {
	post, err := s.getBy("id = ?", id, true)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	applyPublishTransition(post, published, updates)
	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// applyPublishTransition records a publish state change. Publishing stamps
// published_at the first time only; unpublishing keeps it, so the original
// publication date survives a publish/unpublish cycle. That retention is
// intentional, not a missed cleanup.
func applyPublishTransition(post *models.BlogPostModel, published bool, updates map[string]interface{}) {
	updates["is_published"] = published
	if published && post.PublishedAt == nil {
		now := time.Now()
		updates["published_at"] = &now
		post.PublishedAt = &now
	}
	post.IsPublished = published
}

// Delete removes a post and its comments permanently, in one
// transaction: either both go or neither does.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.BlogPostModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return tx.Where("post_id = ?", id).Delete(&models.BlogCommentModel{}).Error
	})
}

func (s *Service) slugTaken(candidate, excludeID string) (bool, error) {
	tx := s.db.Model(&models.BlogPostModel{}).Where("slug = ?", candidate)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
