package team

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateMemberDTO struct {
	Name     string   `json:"name" binding:"required"`
	Role     string   `json:"role"`
	Bio      string   `json:"bio"`
	PhotoURL string   `json:"photo_url"`
	Socials  []string `json:"socials"`
}

type UpdateMemberDTO struct {
	Name     *string  `json:"name"`
	Role     *string  `json:"role"`
	Bio      *string  `json:"bio"`
	PhotoURL *string  `json:"photo_url"`
	Socials  []string `json:"socials"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.TeamMemberModel, error) {
	var members []models.TeamMemberModel
	return members, s.db.Order("created_at DESC").Find(&members).Error
}

func (s *Service) GetByID(id string) (*models.TeamMemberModel, error) {
	var m models.TeamMemberModel
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *CreateMemberDTO) (*models.TeamMemberModel, error) {
	m := models.TeamMemberModel{
		Name:     dto.Name,
		Role:     dto.Role,
		Bio:      dto.Bio,
		PhotoURL: dto.PhotoURL,
		Socials:  dto.Socials,
	}
	return &m, s.db.Create(&m).Error
}

func (s *Service) Update(id string, dto *UpdateMemberDTO) (*models.TeamMemberModel, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Role != nil {
		updates["role"] = *dto.Role
	}
	if dto.Bio != nil {
		updates["bio"] = *dto.Bio
	}
	if dto.PhotoURL != nil {
		updates["photo_url"] = *dto.PhotoURL
	}
	if dto.Socials != nil {
		updates["socials"] = models.StringArray(dto.Socials)
	}
	if err := s.db.Model(m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.TeamMemberModel{}, "id = ?", id)
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
	members := rg.Group("/team")
	members.GET("", h.list)

	authed := members.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	members, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, members)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateMemberDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateMemberDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
