package process

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateStepDTO struct {
	Number      int    `json:"number" binding:"required"`
	Title       string `json:"title"  binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type UpdateStepDTO struct {
	Number      *int    `json:"number"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List orders by the step number, the field that defines the process.
func (s *Service) List() ([]models.ProcessStepModel, error) {
	var steps []models.ProcessStepModel
	return steps, s.db.Order("number ASC").Find(&steps).Error
}

func (s *Service) GetByID(id string) (*models.ProcessStepModel, error) {
	var step models.ProcessStepModel
	if err := s.db.First(&step, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &step, nil
}

func (s *Service) Create(dto *CreateStepDTO) (*models.ProcessStepModel, error) {
	step := models.ProcessStepModel{
		Number:      dto.Number,
		Title:       dto.Title,
		Description: dto.Description,
		Icon:        dto.Icon,
	}
	return &step, s.db.Create(&step).Error
}

func (s *Service) Update(id string, dto *UpdateStepDTO) (*models.ProcessStepModel, error) {
	step, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Number != nil {
		updates["number"] = *dto.Number
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Icon != nil {
		updates["icon"] = *dto.Icon
	}
	if err := s.db.Model(step).Updates(updates).Error; err != nil {
		return nil, err
	}
	return step, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.ProcessStepModel{}, "id = ?", id)
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
	steps := rg.Group("/process-steps")
	steps.GET("", h.list)

	authed := steps.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	steps, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, steps)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateStepDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	step, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, step)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateStepDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	step, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, step)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
