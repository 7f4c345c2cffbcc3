package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"github.com/rashadgasimli/coffee-shop-api/internal/services"
	"gorm.io/gorm"
)

// SizeController handles the admin CRUD surface for sizes
type SizeController interface {
	ListSizes(c *gin.Context)
	CreateSize(c *gin.Context)
	UpdateSize(c *gin.Context)
	RequestDelete(c *gin.Context)
}

type sizeController struct {
	service   services.SizeService
	deletions services.DeletionService
}

// NewSizeController creates a new instance of SizeController
func NewSizeController(service services.SizeService, deletions services.DeletionService) *sizeController {
	return &sizeController{service: service, deletions: deletions}
}

// ListSizes godoc
// @Summary List sizes ordered by sort position
// @Tags admin
// @Produce json
// @Success 200 {array} models.Size
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/sizes [get]
func (ctrl *sizeController) ListSizes(ctx *gin.Context) {
	sizes, err := ctrl.service.GetAllSizes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sizes"})
		return
	}
	ctx.JSON(http.StatusOK, sizes)
}

// CreateSize godoc
// @Summary Create a size
// @Description Insert a new size; the key becomes its permanent identifier
// @Tags admin
// @Accept json
// @Produce json
// @Param size body models.Size true "Size fields"
// @Success 201 {object} models.Size
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/sizes [post]
func (ctrl *sizeController) CreateSize(ctx *gin.Context) {
	var size models.Size
	if err := ctx.ShouldBindJSON(&size); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := ctrl.service.CreateSize(size)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": models.ErrValidationFailed})
			return
		}
		// The key is a primary key, a second insert with the same key is
		// a constraint violation
		ctx.JSON(http.StatusConflict, gin.H{"error": models.ErrDuplicateKey})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateSize godoc
// @Summary Update a size
// @Description Update label, factor and sort position of the size with the given key; the key itself never changes
// @Tags admin
// @Accept json
// @Produce json
// @Param key path string true "Size key"
// @Param size body models.Size true "Size fields"
// @Success 200 {object} models.Size
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/sizes/{key} [put]
func (ctrl *sizeController) UpdateSize(ctx *gin.Context) {
	key, existKey := ctx.Params.Get("key")
	if !existKey {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size key"})
		return
	}

	var size models.Size
	if err := ctx.ShouldBindJSON(&size); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// The URL, not the body, decides which row moves
	size.Key = key

	updated, err := ctrl.service.UpdateSize(size)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": models.ErrValidationFailed})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrSizeNotFound})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update size"})
		}
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// RequestDelete godoc
// @Summary Request deletion of a size
// @Description First step of the two-step delete: returns a confirmation token to redeem at /api/admin/deletions/{token}
// @Tags admin
// @Produce json
// @Param key path string true "Size key"
// @Success 202 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/sizes/{key} [delete]
func (ctrl *sizeController) RequestDelete(ctx *gin.Context) {
	key, existKey := ctx.Params.Get("key")
	if !existKey {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size key"})
		return
	}

	if _, err := ctrl.service.GetSizeByKey(key); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrSizeNotFound})
		return
	}

	pending := ctrl.deletions.Request(services.EntitySize, key)
	ctx.JSON(http.StatusAccepted, gin.H{
		"confirmation_token": pending.Token,
		"expires_at":         pending.ExpiresAt,
	})
}
