package service

import (
	"errors"

	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"gorm.io/gorm"
)

type CreateServiceDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Image       string `json:"image"`
	Gradient    string `json:"gradient"`
}

type UpdateServiceDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Details     *string `json:"details"`
	Image       *string `json:"image"`
	Gradient    *string `json:"gradient"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns all services in insertion order. There is no visibility
// gate on services, the public site sees every record.
func (s *Service) List() ([]models.ServiceModel, error) {
	var items []models.ServiceModel
	return items, s.db.Order("created_at ASC").Find(&items).Error
}

func (s *Service) GetByID(id string) (*models.ServiceModel, error) {
	var item models.ServiceModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new service. Titles are deliberately not unique:
// two services may share a title, in which case pricing plans matching
// that title resolve under both.
func (s *Service) Create(dto *CreateServiceDTO) (*models.ServiceModel, error) {
	item := models.ServiceModel{
		Title:       dto.Title,
		Description: dto.Description,
		Details:     dto.Details,
		Image:       dto.Image,
		Gradient:    dto.Gradient,
	}
	return &item, s.db.Create(&item).Error
}

func (s *Service) Update(id string, dto *UpdateServiceDTO) (*models.ServiceModel, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Details != nil {
		updates["details"] = *dto.Details
	}
	if dto.Image != nil {
		updates["image"] = *dto.Image
	}
	if dto.Gradient != nil {
		updates["gradient"] = *dto.Gradient
	}
	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a service permanently. Deleting an already-deleted id
// fails with ErrNotFound rather than succeeding silently.
func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.ServiceModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
