package services

import (
	"strings"

	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"gorm.io/gorm"
)

// SizeService provides methods to interact with the size catalog.
// Sizes are keyed by their short stable key, which never changes after
// creation.
type SizeService interface {
	// GetAllSizes retrieves all sizes ordered by sort position
	GetAllSizes() ([]models.Size, error)
	// GetSizeByKey retrieves a size by its key
	GetSizeByKey(key string) (models.Size, error)
	// CreateSize validates and inserts a new size
	CreateSize(size models.Size) (models.Size, error)
	// UpdateSize updates the label, factor and sort position of the size
	// identified by its key
	UpdateSize(size models.Size) (models.Size, error)
	// DeleteSize deletes a size by its key
	DeleteSize(key string) error
}

type sizeService struct {
	db *gorm.DB
}

// NewSizeService creates a new instance of SizeService
func NewSizeService(db *gorm.DB) SizeService {
	return &sizeService{db: db}
}

func normalizeSize(size models.Size) (models.Size, error) {
	size.Key = strings.TrimSpace(size.Key)
	size.Label = strings.TrimSpace(size.Label)
	if size.Key == "" || size.Label == "" || size.Factor < 0 {
		return models.Size{}, ErrInvalidInput
	}
	return size, nil
}

func (s *sizeService) GetAllSizes() ([]models.Size, error) {
	var sizes []models.Size
	if err := s.db.Order("sort_order asc").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

func (s *sizeService) GetSizeByKey(key string) (models.Size, error) {
	var size models.Size
	if err := s.db.First(&size, "key = ?", key).Error; err != nil {
		return models.Size{}, err
	}
	return size, nil
}

func (s *sizeService) CreateSize(size models.Size) (models.Size, error) {
	size, err := normalizeSize(size)
	if err != nil {
		return models.Size{}, err
	}
	if err := s.db.Create(&size).Error; err != nil {
		return models.Size{}, err
	}
	return size, nil
}

func (s *sizeService) UpdateSize(size models.Size) (models.Size, error) {
	size, err := normalizeSize(size)
	if err != nil {
		return models.Size{}, err
	}
	// The key is the row identity, only the remaining columns move
	result := s.db.Model(&models.Size{}).Where("key = ?", size.Key).
		Updates(map[string]interface{}{
			"label":      size.Label,
			"factor":     size.Factor,
			"sort_order": size.SortOrder,
		})
	if result.Error != nil {
		return models.Size{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Size{}, gorm.ErrRecordNotFound
	}
	return size, nil
}

func (s *sizeService) DeleteSize(key string) error {
	if err := s.db.Delete(&models.Size{}, "key = ?", key).Error; err != nil {
		return err
	}
	return nil
}
