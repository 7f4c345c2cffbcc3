package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"github.com/rashadgasimli/coffee-shop-api/internal/services"
	"gorm.io/gorm"
)

// ExtraController handles the admin CRUD surface for extras
type ExtraController interface {
	ListExtras(c *gin.Context)
	CreateExtra(c *gin.Context)
	UpdateExtra(c *gin.Context)
	RequestDelete(c *gin.Context)
}

type extraController struct {
	service   services.ExtraService
	deletions services.DeletionService
}

// NewExtraController creates a new instance of ExtraController
func NewExtraController(service services.ExtraService, deletions services.DeletionService) *extraController {
	return &extraController{service: service, deletions: deletions}
}

// ListExtras godoc
// @Summary List extras ordered by sort position
// @Tags admin
// @Produce json
// @Success 200 {array} models.Extra
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/extras [get]
func (ctrl *extraController) ListExtras(ctx *gin.Context) {
	extras, err := ctrl.service.GetAllExtras()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve extras"})
		return
	}
	ctx.JSON(http.StatusOK, extras)
}

// CreateExtra godoc
// @Summary Create an extra
// @Description Insert a new extra; the name becomes its permanent identifier
// @Tags admin
// @Accept json
// @Produce json
// @Param extra body models.Extra true "Extra fields"
// @Success 201 {object} models.Extra
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/extras [post]
func (ctrl *extraController) CreateExtra(ctx *gin.Context) {
	var extra models.Extra
	if err := ctx.ShouldBindJSON(&extra); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := ctrl.service.CreateExtra(extra)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": models.ErrValidationFailed})
			return
		}
		ctx.JSON(http.StatusConflict, gin.H{"error": models.ErrDuplicateKey})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateExtra godoc
// @Summary Update an extra
// @Description Update price and sort position of the extra with the given name; the name itself never changes
// @Tags admin
// @Accept json
// @Produce json
// @Param name path string true "Extra name"
// @Param extra body models.Extra true "Extra fields"
// @Success 200 {object} models.Extra
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/extras/{name} [put]
func (ctrl *extraController) UpdateExtra(ctx *gin.Context) {
	name, existName := ctx.Params.Get("name")
	if !existName {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extra name"})
		return
	}

	var extra models.Extra
	if err := ctx.ShouldBindJSON(&extra); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	extra.Name = name

	updated, err := ctrl.service.UpdateExtra(extra)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": models.ErrValidationFailed})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrExtraNotFound})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update extra"})
		}
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// RequestDelete godoc
// @Summary Request deletion of an extra
// @Description First step of the two-step delete: returns a confirmation token to redeem at /api/admin/deletions/{token}
// @Tags admin
// @Produce json
// @Param name path string true "Extra name"
// @Success 202 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/extras/{name} [delete]
func (ctrl *extraController) RequestDelete(ctx *gin.Context) {
	name, existName := ctx.Params.Get("name")
	if !existName {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extra name"})
		return
	}

	if _, err := ctrl.service.GetExtraByName(name); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrExtraNotFound})
		return
	}

	pending := ctrl.deletions.Request(services.EntityExtra, name)
	ctx.JSON(http.StatusAccepted, gin.H{
		"confirmation_token": pending.Token,
		"expires_at":         pending.ExpiresAt,
	})
}
