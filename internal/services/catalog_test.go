package services

import (
	"testing"

	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Coffee{}, &models.Size{}, &models.Extra{}, &models.User{})
	require.NoError(t, err)

	return db
}

func TestNormalizeCategory(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"hOT", "Hot"},
		{" Cold ", "Cold"},
		{"iced", "Iced"},
		{"HOT", "Hot"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range testCases {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCategory(tt.input))
		})
	}
}

func TestCoffeeCreateNormalizes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCoffeeService(db)

	created, err := svc.CreateCoffee(models.Coffee{
		Name:     "  Latte ",
		Category: " hOT ",
		Price:    4.5,
		Calories: 180,
	})
	require.NoError(t, err)
	assert.Equal(t, "Latte", created.Name)
	assert.Equal(t, "Hot", created.Category)

	// The normalized form is what got persisted
	stored, err := svc.GetCoffeeByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hot", stored.Category)
}

func TestCoffeeCreateRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCoffeeService(db)

	_, err := svc.CreateCoffee(models.Coffee{Name: "", Category: "Hot", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCoffee(models.Coffee{Name: "Mocha", Category: "Hot", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCoffee(models.Coffee{Name: "Mocha", Category: "Hot", Price: 3, Calories: -10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCoffeeListOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCoffeeService(db)

	for _, name := range []string{"Mocha", "Americano", "Latte"} {
		_, err := svc.CreateCoffee(models.Coffee{Name: name, Category: "Hot", Price: 3})
		require.NoError(t, err)
	}

	coffees, err := svc.GetAllCoffees()
	require.NoError(t, err)
	require.Len(t, coffees, 3)
	assert.Equal(t, "Americano", coffees[0].Name)
	assert.Equal(t, "Latte", coffees[1].Name)
	assert.Equal(t, "Mocha", coffees[2].Name)
}

func TestCoffeeUpdateClearsImage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCoffeeService(db)

	created, err := svc.CreateCoffee(models.Coffee{
		Name: "Latte", Category: "Hot", Price: 4.5,
		ImageURL: "http://localhost:8080/images/1_latte.png",
	})
	require.NoError(t, err)

	created.ImageURL = ""
	_, err = svc.UpdateCoffee(created)
	require.NoError(t, err)

	stored, err := svc.GetCoffeeByID(created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ImageURL)
}

func TestSizeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSizeService(db)

	created, err := svc.CreateSize(models.Size{Key: "sm", Label: "Small", Factor: 0.8, SortOrder: 1})
	require.NoError(t, err)
	assert.Equal(t, "sm", created.Key)

	sizes, err := svc.GetAllSizes()
	require.NoError(t, err)
	require.Len(t, sizes, 1)
	assert.Equal(t, models.Size{Key: "sm", Label: "Small", Factor: 0.8, SortOrder: 1}, sizes[0])
}

func TestSizeKeyIsUnique(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSizeService(db)

	_, err := svc.CreateSize(models.Size{Key: "sm", Label: "Small", Factor: 0.8, SortOrder: 1})
	require.NoError(t, err)

	_, err = svc.CreateSize(models.Size{Key: "sm", Label: "Smaller", Factor: 0.7, SortOrder: 2})
	assert.Error(t, err)
}

func TestSizeUpdateKeepsKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSizeService(db)

	_, err := svc.CreateSize(models.Size{Key: "lg", Label: "Large", Factor: 1.4, SortOrder: 3})
	require.NoError(t, err)

	_, err = svc.UpdateSize(models.Size{Key: "lg", Label: "Grande", Factor: 1.5, SortOrder: 4})
	require.NoError(t, err)

	stored, err := svc.GetSizeByKey("lg")
	require.NoError(t, err)
	assert.Equal(t, "Grande", stored.Label)
	assert.Equal(t, 1.5, stored.Factor)
	assert.Equal(t, 4, stored.SortOrder)
}

func TestSizeUpdateUnknownKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSizeService(db)

	_, err := svc.UpdateSize(models.Size{Key: "xl", Label: "Extra Large", Factor: 2, SortOrder: 5})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSizesOrderedBySortOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSizeService(db)

	_, err := svc.CreateSize(models.Size{Key: "lg", Label: "Large", Factor: 1.5, SortOrder: 3})
	require.NoError(t, err)
	_, err = svc.CreateSize(models.Size{Key: "sm", Label: "Small", Factor: 0.8, SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.CreateSize(models.Size{Key: "md", Label: "Medium", Factor: 1, SortOrder: 2})
	require.NoError(t, err)

	sizes, err := svc.GetAllSizes()
	require.NoError(t, err)
	require.Len(t, sizes, 3)
	assert.Equal(t, "sm", sizes[0].Key)
	assert.Equal(t, "md", sizes[1].Key)
	assert.Equal(t, "lg", sizes[2].Key)
}

func TestExtraDeleteByNameRemovesExactlyOne(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExtraService(db)

	_, err := svc.CreateExtra(models.Extra{Name: "Milk", Price: 0.5, SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.CreateExtra(models.Extra{Name: "Caramel", Price: 0.75, SortOrder: 2})
	require.NoError(t, err)

	err = svc.DeleteExtra("Milk")
	require.NoError(t, err)

	extras, err := svc.GetAllExtras()
	require.NoError(t, err)
	require.Len(t, extras, 1)
	assert.Equal(t, "Caramel", extras[0].Name)
}

func TestExtraUpdateByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExtraService(db)

	_, err := svc.CreateExtra(models.Extra{Name: "Milk", Price: 0.5, SortOrder: 1})
	require.NoError(t, err)

	_, err = svc.UpdateExtra(models.Extra{Name: "Milk", Price: 0.6, SortOrder: 2})
	require.NoError(t, err)

	stored, err := svc.GetExtraByName("Milk")
	require.NoError(t, err)
	assert.Equal(t, 0.6, stored.Price)
	assert.Equal(t, 2, stored.SortOrder)
}

func TestUserServiceDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user := &models.User{Email: "admin@example.com", Password: "hash", Name: "Admin", IsAdmin: true}
	require.NoError(t, svc.CreateUser(user))

	err := svc.CreateUser(&models.User{Email: "admin@example.com", Password: "hash"})
	assert.Error(t, err)
}
