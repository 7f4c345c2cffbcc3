package services

import (
	"errors"
	"strings"
	"unicode"

	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrInvalidInput is returned when a submitted row fails validation
	ErrInvalidInput = errors.New("invalid input")
)

// CoffeeService provides methods to interact with the coffee catalog
type CoffeeService interface {
	// GetAllCoffees retrieves all coffees ordered by name ascending
	GetAllCoffees() ([]models.Coffee, error)
	// GetCoffeesByCreation retrieves all coffees ordered by creation time,
	// oldest first, the order the menu page shows them in
	GetCoffeesByCreation() ([]models.Coffee, error)
	// GetCoffeeByID retrieves a coffee by its ID
	GetCoffeeByID(id int) (models.Coffee, error)
	// CreateCoffee validates, normalizes and inserts a new coffee
	CreateCoffee(coffee models.Coffee) (models.Coffee, error)
	// UpdateCoffee validates, normalizes and updates an existing coffee
	UpdateCoffee(coffee models.Coffee) (models.Coffee, error)
	// DeleteCoffee deletes a coffee from the catalog by its ID
	DeleteCoffee(id int) error
	// InsertRaw inserts a coffee without validation or normalization,
	// relying on storage-layer constraints only
	InsertRaw(coffee models.Coffee) (models.Coffee, error)
}

// coffeeService is the implementation of the CoffeeService interface
type coffeeService struct {
	db *gorm.DB
}

// NewCoffeeService creates a new instance of CoffeeService
func NewCoffeeService(db *gorm.DB) CoffeeService {
	return &coffeeService{db: db}
}

// NormalizeCategory trims the category and folds its casing to a single
// capitalized form so the same logical category never fragments into
// "hot", "HOT" and "Hot"
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	runes := []rune(strings.ToLower(category))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// normalizeCoffee applies the shared form rules: trimmed text fields,
// normalized category, non-negative numerics
func normalizeCoffee(coffee models.Coffee) (models.Coffee, error) {
	coffee.Name = strings.TrimSpace(coffee.Name)
	coffee.Category = NormalizeCategory(coffee.Category)
	coffee.Description = strings.TrimSpace(coffee.Description)

	if coffee.Name == "" || coffee.Category == "" {
		return models.Coffee{}, ErrInvalidInput
	}
	if coffee.Price < 0 || coffee.Calories < 0 {
		return models.Coffee{}, ErrInvalidInput
	}
	return coffee, nil
}

func (s *coffeeService) GetAllCoffees() ([]models.Coffee, error) {
	var coffees []models.Coffee
	if err := s.db.Order("name asc").Find(&coffees).Error; err != nil {
		return nil, err
	}
	return coffees, nil
}

func (s *coffeeService) GetCoffeesByCreation() ([]models.Coffee, error) {
	var coffees []models.Coffee
	if err := s.db.Order("created_at asc").Find(&coffees).Error; err != nil {
		return nil, err
	}
	return coffees, nil
}

func (s *coffeeService) GetCoffeeByID(id int) (models.Coffee, error) {
	var coffee models.Coffee
	if err := s.db.First(&coffee, id).Error; err != nil {
		return models.Coffee{}, err
	}
	return coffee, nil
}

func (s *coffeeService) CreateCoffee(coffee models.Coffee) (models.Coffee, error) {
	coffee, err := normalizeCoffee(coffee)
	if err != nil {
		return models.Coffee{}, err
	}
	if err := s.db.Create(&coffee).Error; err != nil {
		return models.Coffee{}, err
	}
	return coffee, nil
}

func (s *coffeeService) UpdateCoffee(coffee models.Coffee) (models.Coffee, error) {
	coffee, err := normalizeCoffee(coffee)
	if err != nil {
		return models.Coffee{}, err
	}
	// Save writes every column, so an emptied image_url clears the stored
	// reference. Last write wins on concurrent edits.
	if err := s.db.Save(&coffee).Error; err != nil {
		return models.Coffee{}, err
	}
	return coffee, nil
}

func (s *coffeeService) DeleteCoffee(id int) error {
	if err := s.db.Delete(&models.Coffee{}, id).Error; err != nil {
		return err
	}
	return nil
}

func (s *coffeeService) InsertRaw(coffee models.Coffee) (models.Coffee, error) {
	if err := s.db.Create(&coffee).Error; err != nil {
		return models.Coffee{}, err
	}
	return coffee, nil
}
