package company

import (
	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type UpdateCompanyInfoDTO struct {
	Name    *string             `json:"name"`
	Tagline *string             `json:"tagline"`
	Email   *string             `json:"email"`
	Phone   *string             `json:"phone"`
	Address *string             `json:"address"`
	LogoURL *string             `json:"logo_url"`
	Socials *models.StringArray `json:"socials"`
}

type UpdateAboutSectionDTO struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

// Service manages the two single-row kinds. Both are pinned to the fixed
// row id, so an update can never grow the table.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetCompanyInfo() (*models.CompanyInfoModel, error) {
	info := models.CompanyInfoModel{ID: models.SingletonID}
	if err := s.db.FirstOrCreate(&info, models.CompanyInfoModel{ID: models.SingletonID}).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *Service) UpdateCompanyInfo(dto *UpdateCompanyInfoDTO) (*models.CompanyInfoModel, error) {
	info, err := s.GetCompanyInfo()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Tagline != nil {
		updates["tagline"] = *dto.Tagline
	}
	if dto.Email != nil {
		updates["email"] = *dto.Email
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
	}
	if dto.Address != nil {
		updates["address"] = *dto.Address
	}
	if dto.LogoURL != nil {
		updates["logo_url"] = *dto.LogoURL
	}
	if dto.Socials != nil {
		updates["socials"] = *dto.Socials
	}
	if len(updates) == 0 {
		return info, nil
	}

	if err := s.db.Model(info).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetCompanyInfo()
}

func (s *Service) GetAboutSection() (*models.AboutSectionModel, error) {
	about := models.AboutSectionModel{ID: models.SingletonID}
	if err := s.db.FirstOrCreate(&about, models.AboutSectionModel{ID: models.SingletonID}).Error; err != nil {
		return nil, err
	}
	return &about, nil
}

func (s *Service) UpdateAboutSection(dto *UpdateAboutSectionDTO) (*models.AboutSectionModel, error) {
	about, err := s.GetAboutSection()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if len(updates) == 0 {
		return about, nil
	}

	if err := s.db.Model(about).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetAboutSection()
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/company-info", h.getCompanyInfo)
	rg.PUT("/company-info", authMW, h.updateCompanyInfo)

	rg.GET("/about", h.getAbout)
	rg.PUT("/about", authMW, h.updateAbout)
}

func (h *Handler) getCompanyInfo(c *gin.Context) {
	info, err := h.svc.GetCompanyInfo()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, info)
}

func (h *Handler) updateCompanyInfo(c *gin.Context) {
	var dto UpdateCompanyInfoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	info, err := h.svc.UpdateCompanyInfo(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

func (h *Handler) getAbout(c *gin.Context) {
	about, err := h.svc.GetAboutSection()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, about)
}

func (h *Handler) updateAbout(c *gin.Context) {
	var dto UpdateAboutSectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	about, err := h.svc.UpdateAboutSection(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, about)
}
