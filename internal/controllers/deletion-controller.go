package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"github.com/rashadgasimli/coffee-shop-api/internal/services"
)

// DeletionController redeems the confirmation tokens handed out by the
// per-entity delete requests
type DeletionController interface {
	// ConfirmDeletion performs the deletion a token stands for
	ConfirmDeletion(c *gin.Context)
}

type deletionController struct {
	deletions services.DeletionService
	coffees   services.CoffeeService
	sizes     services.SizeService
	extras    services.ExtraService
}

// NewDeletionController creates a new instance of DeletionController
func NewDeletionController(deletions services.DeletionService, coffees services.CoffeeService, sizes services.SizeService, extras services.ExtraService) *deletionController {
	return &deletionController{deletions: deletions, coffees: coffees, sizes: sizes, extras: extras}
}

// ConfirmDeletion godoc
// @Summary Confirm a pending deletion
// @Description Second step of the two-step delete: redeems the confirmation token and removes the row it points at. Tokens are single-use and expire.
// @Tags admin
// @Produce json
// @Param token path string true "Confirmation token"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/deletions/{token} [post]
func (ctrl *deletionController) ConfirmDeletion(ctx *gin.Context) {
	token, existToken := ctx.Params.Get("token")
	if !existToken {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid confirmation token"})
		return
	}

	pending, err := ctrl.deletions.Confirm(token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConfirmationExpired):
			ctx.JSON(http.StatusGone, gin.H{"error": models.ErrConfirmationExpired})
		default:
			ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrConfirmationUnknown})
		}
		return
	}

	switch pending.Entity {
	case services.EntityCoffee:
		id, convErr := strconv.Atoi(pending.Key)
		if convErr != nil {
			err = convErr
			break
		}
		err = ctrl.coffees.DeleteCoffee(id)
	case services.EntitySize:
		err = ctrl.sizes.DeleteSize(pending.Key)
	case services.EntityExtra:
		err = ctrl.extras.DeleteExtra(pending.Key)
	default:
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrConfirmationUnknown})
		return
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete " + pending.Entity})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"deleted": pending.Entity,
		"key":     pending.Key,
	})
}
