package pricing

import (
	"errors"

	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"gorm.io/gorm"
)

type CreatePlanDTO struct {
	Title      string   `json:"title" binding:"required"`
	Price      string   `json:"price"`
	Currency   string   `json:"currency"`
	Features   []string `json:"features"`
	IsPopular  *bool    `json:"is_popular"`
	Category   string   `json:"category"`
	ButtonText string   `json:"button_text"`
	ButtonLink string   `json:"button_link"`
}

type UpdatePlanDTO struct {
	Title      *string  `json:"title"`
	Price      *string  `json:"price"`
	Currency   *string  `json:"currency"`
	Features   []string `json:"features"`
	IsPopular  *bool    `json:"is_popular"`
	Category   *string  `json:"category"`
	ButtonText *string  `json:"button_text"`
	ButtonLink *string  `json:"button_link"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns plans in insertion order, optionally filtered by exact
// category match.
func (s *Service) List(category *string) ([]models.PricingPlanModel, error) {
	tx := s.db.Order("created_at ASC")
	if category != nil {
		tx = tx.Where("category = ?", *category)
	}
	var plans []models.PricingPlanModel
	return plans, tx.Find(&plans).Error
}

// ResolveForService resolves the plans shown under a service by matching
// PricingPlan.Category against the service title, string equality only.
// There is no foreign key backing this relation: zero matches is a valid
// empty result, and two services sharing a title resolve the same plans.
func (s *Service) ResolveForService(serviceTitle string) ([]models.PricingPlanModel, error) {
	var plans []models.PricingPlanModel
	err := s.db.Where("category = ?", serviceTitle).
		Order("created_at ASC").
		Find(&plans).Error
	return plans, err
}

// ResolveForServiceID looks up the service, then resolves its plans by
// title.
func (s *Service) ResolveForServiceID(serviceID string) ([]models.PricingPlanModel, error) {
	var svc models.ServiceModel
	if err := s.db.First(&svc, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return s.ResolveForService(svc.Title)
}

func (s *Service) GetByID(id string) (*models.PricingPlanModel, error) {
	var plan models.PricingPlanModel
	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *Service) Create(dto *CreatePlanDTO) (*models.PricingPlanModel, error) {
	plan := models.PricingPlanModel{
		Title:      dto.Title,
		Price:      dto.Price,
		Currency:   dto.Currency,
		Features:   dto.Features,
		Category:   dto.Category,
		ButtonText: dto.ButtonText,
		ButtonLink: dto.ButtonLink,
	}
	if dto.IsPopular != nil {
		plan.IsPopular = *dto.IsPopular
	}
	return &plan, s.db.Create(&plan).Error
}

func (s *Service) Update(id string, dto *UpdatePlanDTO) (*models.PricingPlanModel, error) {
	plan, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Price != nil {
		updates["price"] = *dto.Price
	}
	if dto.Currency != nil {
		updates["currency"] = *dto.Currency
	}
	if dto.Features != nil {
		updates["features"] = models.StringArray(dto.Features)
	}
	if dto.IsPopular != nil {
		updates["is_popular"] = *dto.IsPopular
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.ButtonText != nil {
		updates["button_text"] = *dto.ButtonText
	}
	if dto.ButtonLink != nil {
		updates["button_link"] = *dto.ButtonLink
	}
	if err := s.db.Model(plan).Updates(updates).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.PricingPlanModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
