package newsletter

import (
	"errors"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/pagination"
	"github.com/jawa-agence/core/internal/pkg/response"
	"gorm.io/gorm"
)

type SubscribeDTO struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Subscribe registers an email address. The address is the natural key:
// subscribing twice is a conflict, not an upsert, so callers can tell the
// difference.
func (s *Service) Subscribe(dto *SubscribeDTO) (*models.SubscriberModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if email == "" {
		return nil, apperr.Validation("email", "must not be empty")
	}

	var count int64
	if err := s.db.Model(&models.SubscriberModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("email", email)
	}

	sub := models.SubscriberModel{
		Email:    email,
		Name:     dto.Name,
		IsActive: true,
		Source:   dto.Source,
	}
	if err := s.db.Create(&sub).Error; err != nil {
		// the unique index backstops the count check under concurrency
		if isDuplicateEmailError(err) {
			return nil, apperr.Conflict("email", email)
		}
		return nil, err
	}
	return &sub, nil
}

func isDuplicateEmailError(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}

func (s *Service) List(q pagination.Query) ([]models.SubscriberModel, response.Pagination, error) {
	var subs []models.SubscriberModel
	tx := s.db.Model(&models.SubscriberModel{}).Order("created_at DESC")
	p, err := pagination.Paginate(tx, q, &subs)
	return subs, p, err
}

// ListAll returns every subscriber, oldest first, for export.
func (s *Service) ListAll() ([]models.SubscriberModel, error) {
	var subs []models.SubscriberModel
	err := s.db.Order("created_at ASC").Find(&subs).Error
	return subs, err
}

func (s *Service) SetActive(id string, active bool) (*models.SubscriberModel, error) {
	var sub models.SubscriberModel
	if err := s.db.Where("id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	if err := s.db.Model(&sub).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	sub.IsActive = active
	return &sub, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.SubscriberModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
