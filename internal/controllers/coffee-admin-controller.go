package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rashadgasimli/coffee-shop-api/internal/config"
	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"github.com/rashadgasimli/coffee-shop-api/internal/services"
)

// CoffeeAdminController handles the admin CRUD surface for coffees
type CoffeeAdminController interface {
	// ListCoffees retrieves all coffees ordered by name
	ListCoffees(c *gin.Context)
	// CreateCoffee validates and inserts a new coffee
	CreateCoffee(c *gin.Context)
	// UpdateCoffee validates and updates an existing coffee
	UpdateCoffee(c *gin.Context)
	// RequestDelete registers a pending deletion and returns its token
	RequestDelete(c *gin.Context)
}

type coffeeAdminController struct {
	service   services.CoffeeService
	deletions services.DeletionService
	cfg       *config.Config
}

// NewCoffeeAdminController creates a new instance of CoffeeAdminController
func NewCoffeeAdminController(service services.CoffeeService, deletions services.DeletionService, cfg *config.Config) *coffeeAdminController {
	return &coffeeAdminController{service: service, deletions: deletions, cfg: cfg}
}

// coffeePayload is the admin form body for create and update
type coffeePayload struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price"`
	Calories    int     `json:"calories"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// ListCoffees godoc
// @Summary List coffees for the admin panel
// @Tags admin
// @Produce json
// @Success 200 {array} models.Coffee
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/coffees [get]
func (ctrl *coffeeAdminController) ListCoffees(ctx *gin.Context) {
	coffees, err := ctrl.service.GetAllCoffees()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve coffees"})
		return
	}
	ctx.JSON(http.StatusOK, coffees)
}

// CreateCoffee godoc
// @Summary Create a coffee
// @Description Validate, normalize and insert a new coffee
// @Tags admin
// @Accept json
// @Produce json
// @Param coffee body coffeePayload true "Coffee fields"
// @Success 201 {object} models.Coffee
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/coffees [post]
func (ctrl *coffeeAdminController) CreateCoffee(ctx *gin.Context) {
	var req coffeePayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !ctrl.cfg.ImageHostAllowed(req.ImageURL) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "image_url host is not allowed"})
		return
	}

	created, err := ctrl.service.CreateCoffee(models.Coffee{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Calories:    req.Calories,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": models.ErrCoffeeInvalidData})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coffee"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateCoffee godoc
// @Summary Update a coffee
// @Description Validate, normalize and update the coffee with the given ID. An empty image_url clears the stored image reference.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Coffee ID"
// @Param coffee body coffeePayload true "Coffee fields"
// @Success 200 {object} models.Coffee
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/coffees/{id} [put]
func (ctrl *coffeeAdminController) UpdateCoffee(ctx *gin.Context) {
	id, existID := ctx.Params.Get("id")
	if !existID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coffee ID"})
		return
	}

	coffeeID, err := strconv.Atoi(id)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coffee ID format"})
		return
	}

	existing, err := ctrl.service.GetCoffeeByID(coffeeID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrCoffeeNotFound})
		return
	}

	var req coffeePayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !ctrl.cfg.ImageHostAllowed(req.ImageURL) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "image_url host is not allowed"})
		return
	}

	updated, err := ctrl.service.UpdateCoffee(models.Coffee{
		ID:          existing.ID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Calories:    req.Calories,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   existing.CreatedAt,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": models.ErrCoffeeInvalidData})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coffee"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// RequestDelete godoc
// @Summary Request deletion of a coffee
// @Description First step of the two-step delete: returns a confirmation token to redeem at /api/admin/deletions/{token}
// @Tags admin
// @Produce json
// @Param id path int true "Coffee ID"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/coffees/{id} [delete]
func (ctrl *coffeeAdminController) RequestDelete(ctx *gin.Context) {
	id, existID := ctx.Params.Get("id")
	if !existID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coffee ID"})
		return
	}

	coffeeID, err := strconv.Atoi(id)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coffee ID format"})
		return
	}

	if _, err := ctrl.service.GetCoffeeByID(coffeeID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrCoffeeNotFound})
		return
	}

	pending := ctrl.deletions.Request(services.EntityCoffee, id)
	ctx.JSON(http.StatusAccepted, gin.H{
		"confirmation_token": pending.Token,
		"expires_at":         pending.ExpiresAt,
	})
}
