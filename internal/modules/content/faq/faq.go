package faq

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/middleware"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateFAQDTO struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"is_active"`
}

type UpdateFAQDTO struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"is_active"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns FAQs ordered by their designated order field. Public
// callers only see active entries; the gate is applied in the query,
// inactive rows never leave the store. The search term is a
// case-insensitive substring match over question and answer.
func (s *Service) List(isAdmin bool, search string) ([]models.FAQModel, error) {
	tx := s.db.Order("order_num ASC, created_at ASC")
	if !isAdmin {
		tx = tx.Where("is_active = ?", true)
	}
	if q := strings.TrimSpace(search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(question) LIKE ? OR LOWER(answer) LIKE ?", like, like)
	}
	var faqs []models.FAQModel
	return faqs, tx.Find(&faqs).Error
}

func (s *Service) GetByID(id string) (*models.FAQModel, error) {
	var f models.FAQModel
	if err := s.db.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *Service) Create(dto *CreateFAQDTO) (*models.FAQModel, error) {
	f := models.FAQModel{
		Question: dto.Question,
		Answer:   dto.Answer,
		IsActive: true,
	}
	if dto.Order != nil {
		f.Order = *dto.Order
	}
	if dto.IsActive != nil {
		f.IsActive = *dto.IsActive
	}
	return &f, s.db.Create(&f).Error
}

func (s *Service) Update(id string, dto *UpdateFAQDTO) (*models.FAQModel, error) {
	f, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Question != nil {
		updates["question"] = *dto.Question
	}
	if dto.Answer != nil {
		updates["answer"] = *dto.Answer
	}
	if dto.Order != nil {
		updates["order_num"] = *dto.Order
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if err := s.db.Model(f).Updates(updates).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.FAQModel{}, "id = ?", id)
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
	faqs := rg.Group("/faqs")
	faqs.GET("", h.list)

	authed := faqs.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

// list GET /faqs?q=delai — admins see inactive entries too.
func (h *Handler) list(c *gin.Context) {
	faqs, err := h.svc.List(middleware.IsAuthenticated(c), c.Query("q"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, faqs)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateFAQDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, f)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateFAQDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, f)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
