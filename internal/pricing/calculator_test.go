package pricing

import (
	"testing"

	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	testSizes = []models.Size{
		{Key: "sm", Label: "Small", Factor: 0.8, SortOrder: 1},
		{Key: "md", Label: "Medium", Factor: 1, SortOrder: 2},
		{Key: "lg", Label: "Large", Factor: 1.5, SortOrder: 3},
	}
	testExtras = []models.Extra{
		{Name: "Milk", Price: 0.5, SortOrder: 1},
		{Name: "Caramel", Price: 0.75, SortOrder: 2},
		{Name: "Extra Shot", Price: 1, SortOrder: 3},
	}
)

func TestTotal(t *testing.T) {
	latte := &models.Coffee{Name: "Latte", Price: 4.5}

	testCases := []struct {
		name     string
		coffee   *models.Coffee
		sizeKey  string
		selected map[string]bool
		expected string
	}{
		{
			name:     "base price with medium size and no extras",
			coffee:   latte,
			sizeKey:  "md",
			expected: "4.50",
		},
		{
			name:     "small size applies factor",
			coffee:   latte,
			sizeKey:  "sm",
			expected: "3.60",
		},
		{
			name:     "large size with two extras",
			coffee:   latte,
			sizeKey:  "lg",
			selected: map[string]bool{"Milk": true, "Caramel": true},
			expected: "8.00",
		},
		{
			name:     "deselected extras do not count",
			coffee:   latte,
			sizeKey:  "md",
			selected: map[string]bool{"Milk": false, "Extra Shot": true},
			expected: "5.50",
		},
		{
			name:     "no coffee selected",
			coffee:   nil,
			sizeKey:  "lg",
			selected: map[string]bool{"Milk": true},
			expected: "0.00",
		},
		{
			name:     "empty size key falls back to factor 1",
			coffee:   latte,
			sizeKey:  "",
			expected: "4.50",
		},
		{
			name:     "unknown size key falls back to factor 1",
			coffee:   latte,
			sizeKey:  "xxl",
			expected: "4.50",
		},
		{
			name:     "extra missing from catalog is ignored",
			coffee:   latte,
			sizeKey:  "md",
			selected: map[string]bool{"Whipped Cream": true, "Milk": true},
			expected: "5.00",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.coffee, tt.sizeKey, tt.selected, testSizes, testExtras)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTotalRoundsOnlyAtFormatting(t *testing.T) {
	// 3.33 * 1.5 = 4.995 exactly in decimal; float64 math keeps the raw
	// product and the two-decimal formatting settles the result.
	coffee := &models.Coffee{Name: "Flat White", Price: 3.33}
	got := Total(coffee, "lg", nil, testSizes, testExtras)
	assert.Equal(t, "5.00", got)
}

func TestTotalEmptyCatalogs(t *testing.T) {
	coffee := &models.Coffee{Name: "Espresso", Price: 2.2}
	got := Total(coffee, "sm", map[string]bool{"Milk": true}, nil, nil)
	assert.Equal(t, "2.20", got)
}
