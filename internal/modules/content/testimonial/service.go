package testimonial

import (
	"errors"

	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/pagination"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateTestimonialDTO struct {
	Quote     string `json:"quote" binding:"required"`
	Name      string `json:"name"  binding:"required"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	Approved  *bool  `json:"approved"`
}

type UpdateTestimonialDTO struct {
	Quote     *string `json:"quote"`
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Company   *string `json:"company"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url"`
	Approved  *bool   `json:"approved"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// ListVisible returns approved testimonials only. The filter runs in the
// query itself: an unapproved quote is written by an unvetted visitor and
// must never reach a public client, not even hidden.
func (s *Service) ListVisible() ([]models.TestimonialModel, error) {
	var items []models.TestimonialModel
	err := s.db.Where("approved = ?", true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// ListAll is the admin view, pending submissions included.
func (s *Service) ListAll(q pagination.Query, approved *bool) ([]models.TestimonialModel, response.Pagination, error) {
	tx := s.db.Model(&models.TestimonialModel{}).Order("created_at DESC")
	if approved != nil {
		tx = tx.Where("approved = ?", *approved)
	}
	var items []models.TestimonialModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id string) (*models.TestimonialModel, error) {
	var item models.TestimonialModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a testimonial. Public submissions always start
// unapproved, whatever the request claims; admin-created ones default to
// approved unless the admin says otherwise.
func (s *Service) Create(dto *CreateTestimonialDTO, isAdmin bool) (*models.TestimonialModel, error) {
	item := models.TestimonialModel{
		Quote:     dto.Quote,
		Name:      dto.Name,
		Role:      dto.Role,
		Company:   dto.Company,
		Email:     dto.Email,
		AvatarURL: dto.AvatarURL,
	}
	if isAdmin {
		item.Approved = true
		if dto.Approved != nil {
			item.Approved = *dto.Approved
		}
	}
	return &item, s.db.Create(&item).Error
}

func (s *Service) Update(id string, dto *UpdateTestimonialDTO) (*models.TestimonialModel, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Quote != nil {
		updates["quote"] = *dto.Quote
	}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Role != nil {
		updates["role"] = *dto.Role
	}
	if dto.Company != nil {
		updates["company"] = *dto.Company
	}
	if dto.Email != nil {
		updates["email"] = *dto.Email
	}
	if dto.AvatarURL != nil {
		updates["avatar_url"] = *dto.AvatarURL
	}
	if dto.Approved != nil {
		updates["approved"] = *dto.Approved
	}
	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// SetApproved toggles the moderation gate.
func (s *Service) SetApproved(id string, approved bool) (*models.TestimonialModel, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(item).Update("approved", approved).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.TestimonialModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
