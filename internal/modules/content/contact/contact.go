package contact

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/pagination"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateInquiryDTO struct {
	Name    string `json:"name"    binding:"required"`
	Email   string `json:"email"   binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(dto *CreateInquiryDTO) (*models.ContactInquiryModel, error) {
	inquiry := models.ContactInquiryModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Message: dto.Message,
		Status:  models.InquiryNew,
	}
	return &inquiry, s.db.Create(&inquiry).Error
}

// List supports filtering by status so the back office can show the inbox
// of unhandled inquiries on its own.
func (s *Service) List(q pagination.Query, status string) ([]models.ContactInquiryModel, response.Pagination, error) {
	tx := s.db.Model(&models.ContactInquiryModel{}).Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var inquiries []models.ContactInquiryModel
	p, err := pagination.Paginate(tx, q, &inquiries)
	return inquiries, p, err
}

func (s *Service) SetStatus(id, status string) (*models.ContactInquiryModel, error) {
	switch status {
	case models.InquiryNew, models.InquiryRead, models.InquiryReplied:
	default:
		return nil, apperr.Validation("status", "must be one of new, read, replied")
	}

	var inquiry models.ContactInquiryModel
	if err := s.db.Where("id = ?", id).First(&inquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if err := s.db.Model(&inquiry).Update("status", status).Error; err != nil {
		return nil, err
	}
	inquiry.Status = status
	return &inquiry, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.ContactInquiryModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/contact", h.create)

	admin := rg.Group("/contact", authMW)
	{
		admin.GET("/inquiries", h.list)
		admin.PATCH("/inquiries/:id/status", h.setStatus)
		admin.DELETE("/inquiries/:id", h.delete)
	}
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateInquiryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	inquiry, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, inquiry)
}

func (h *Handler) list(c *gin.Context) {
	inquiries, p, err := h.svc.List(pagination.FromContext(c), c.Query("status"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, inquiries, p)
}

func (h *Handler) setStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	inquiry, err := h.svc.SetStatus(c.Param("id"), body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, inquiry)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
