package comment

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateCommentDTO struct {
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content"     binding:"required"`
}

// Service handles blog comments. Unlike testimonials, comments carry no
// moderation gate: a created comment is publicly visible at once.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// resolvePost accepts the same identifier the post routes do, an id first
// and a slug as fallback. Only published posts resolve: drafts leak
// nothing through the comment surface either.
func (s *Service) resolvePost(identifier string) (*models.BlogPostModel, error) {
	var post models.BlogPostModel
	err := s.db.Where("id = ? AND is_published = ?", identifier, true).First(&post).Error
	if err == nil {
		return &post, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = s.db.Where("slug = ? AND is_published = ?", identifier, true).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListForPost returns a post's comments in conversation order. The post
// may be addressed by id or slug.
func (s *Service) ListForPost(identifier string) ([]models.BlogCommentModel, error) {
	post, err := s.resolvePost(identifier)
	if err != nil {
		return nil, err
	}
	var comments []models.BlogCommentModel
	err = s.db.Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// Create attaches a comment to a published post addressed by id or slug.
// Commenting on a draft or unknown post fails with NotFound.
func (s *Service) Create(identifier string, dto *CreateCommentDTO) (*models.BlogCommentModel, error) {
	post, err := s.resolvePost(identifier)
	if err != nil {
		return nil, err
	}

	comment := models.BlogCommentModel{
		PostID:     post.ID,
		AuthorName: dto.AuthorName,
		Content:    dto.Content,
	}
	return &comment, s.db.Create(&comment).Error
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.BlogCommentModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	// nested under posts; the param name must match the post routes
	rg.GET("/blog/posts/:identifier/comments", h.list)
	rg.POST("/blog/posts/:identifier/comments", h.create)

	rg.DELETE("/blog/comments/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	comments, err := h.svc.ListForPost(c.Param("identifier"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, comments)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.svc.Create(c.Param("identifier"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
