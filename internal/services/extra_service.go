package services

import (
	"strings"

	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"gorm.io/gorm"
)

// ExtraService provides methods to interact with the extras catalog.
// Extras are keyed by name, which never changes after creation.
type ExtraService interface {
	// GetAllExtras retrieves all extras ordered by sort position
	GetAllExtras() ([]models.Extra, error)
	// GetExtraByName retrieves an extra by its name
	GetExtraByName(name string) (models.Extra, error)
	// CreateExtra validates and inserts a new extra
	CreateExtra(extra models.Extra) (models.Extra, error)
	// UpdateExtra updates the price and sort position of the extra
	// identified by its name
	UpdateExtra(extra models.Extra) (models.Extra, error)
	// DeleteExtra deletes an extra by its name
	DeleteExtra(name string) error
}

type extraService struct {
	db *gorm.DB
}

// NewExtraService creates a new instance of ExtraService
func NewExtraService(db *gorm.DB) ExtraService {
	return &extraService{db: db}
}

func normalizeExtra(extra models.Extra) (models.Extra, error) {
	extra.Name = strings.TrimSpace(extra.Name)
	if extra.Name == "" || extra.Price < 0 {
		return models.Extra{}, ErrInvalidInput
	}
	return extra, nil
}

func (s *extraService) GetAllExtras() ([]models.Extra, error) {
	var extras []models.Extra
	if err := s.db.Order("sort_order asc").Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

func (s *extraService) GetExtraByName(name string) (models.Extra, error) {
	var extra models.Extra
	if err := s.db.First(&extra, "name = ?", name).Error; err != nil {
		return models.Extra{}, err
	}
	return extra, nil
}

func (s *extraService) CreateExtra(extra models.Extra) (models.Extra, error) {
	extra, err := normalizeExtra(extra)
	if err != nil {
		return models.Extra{}, err
	}
	if err := s.db.Create(&extra).Error; err != nil {
		return models.Extra{}, err
	}
	return extra, nil
}

func (s *extraService) UpdateExtra(extra models.Extra) (models.Extra, error) {
	extra, err := normalizeExtra(extra)
	if err != nil {
		return models.Extra{}, err
	}
	result := s.db.Model(&models.Extra{}).Where("name = ?", extra.Name).
		Updates(map[string]interface{}{
			"price":      extra.Price,
			"sort_order": extra.SortOrder,
		})
	if result.Error != nil {
		return models.Extra{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Extra{}, gorm.ErrRecordNotFound
	}
	return extra, nil
}

func (s *extraService) DeleteExtra(name string) error {
	if err := s.db.Delete(&models.Extra{}, "name = ?", name).Error; err != nil {
		return err
	}
	return nil
}
