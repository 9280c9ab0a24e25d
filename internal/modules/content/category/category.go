package category

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/response"
	"github.com/jawa-agence/core/internal/pkg/slug"
	"gorm.io/gorm"
)

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

type UpdateCategoryDTO struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.BlogCategoryModel, error) {
	var cats []models.BlogCategoryModel
	return cats, s.db.Order("created_at ASC").Find(&cats).Error
}

func (s *Service) GetByID(id string) (*models.BlogCategoryModel, error) {
	var cat models.BlogCategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.BlogCategoryModel, error) {
	catSlug := slug.Assign(dto.Name, dto.Slug)
	if catSlug == "" {
		return nil, apperr.Validation("slug", "derives to empty")
	}

	var count int64
	if err := s.db.Model(&models.BlogCategoryModel{}).
		Where("slug = ? OR name = ?", catSlug, dto.Name).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("category", dto.Name)
	}

	cat := models.BlogCategoryModel{Name: dto.Name, Slug: catSlug}
	return &cat, s.db.Create(&cat).Error
}

func (s *Service) Update(id string, dto *UpdateCategoryDTO) (*models.BlogCategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil {
		newSlug := slug.Slugify(*dto.Slug)
		if newSlug == "" {
			return nil, apperr.Validation("slug", "derives to empty")
		}
		var count int64
		if err := s.db.Model(&models.BlogCategoryModel{}).
			Where("slug = ? AND id <> ?", newSlug, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.Conflict("slug", newSlug)
		}
		updates["slug"] = newSlug
	}
	if err := s.db.Model(cat).Updates(updates).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete detaches referencing posts (category_id goes null, posts render
// with the fallback label) before removing the category.
func (s *Service) Delete(id string) error {
	s.db.Model(&models.BlogPostModel{}).Where("category_id = ?", id).Update("category_id", nil)
	res := s.db.Delete(&models.BlogCategoryModel{}, "id = ?", id)
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
	cats := rg.Group("/blog/categories")
	cats.GET("", h.list)

	authed := cats.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cats)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cat)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
