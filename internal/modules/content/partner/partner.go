package partner

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreatePartnerDTO struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logo_url"`
	Website string `json:"website"`
}

type UpdatePartnerDTO struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
	Website *string `json:"website"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.TrustedCompanyModel, error) {
	var items []models.TrustedCompanyModel
	return items, s.db.Order("created_at ASC").Find(&items).Error
}

func (s *Service) GetByID(id string) (*models.TrustedCompanyModel, error) {
	var item models.TrustedCompanyModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *Service) Create(dto *CreatePartnerDTO) (*models.TrustedCompanyModel, error) {
	item := models.TrustedCompanyModel{
		Name:    dto.Name,
		LogoURL: dto.LogoURL,
		Website: dto.Website,
	}
	return &item, s.db.Create(&item).Error
}

func (s *Service) Update(id string, dto *UpdatePartnerDTO) (*models.TrustedCompanyModel, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.LogoURL != nil {
		updates["logo_url"] = *dto.LogoURL
	}
	if dto.Website != nil {
		updates["website"] = *dto.Website
	}
	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.TrustedCompanyModel{}, "id = ?", id)
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
	partners := rg.Group("/partners")
	partners.GET("", h.list)

	authed := partners.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePartnerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdatePartnerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
