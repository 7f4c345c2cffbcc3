package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rashadgasimli/coffee-shop-api/internal/models"
	"github.com/rashadgasimli/coffee-shop-api/internal/pricing"
	"github.com/rashadgasimli/coffee-shop-api/internal/services"
	log "github.com/sirupsen/logrus"
)

// CatalogController serves the public catalog: the coffees API, the menu
// snapshot and the price quote
type CatalogController interface {
	// GetAllCoffees retrieves all coffees ordered by name
	GetAllCoffees(c *gin.Context)
	// CreateCoffeeRaw inserts a coffee with storage-layer validation only
	CreateCoffeeRaw(c *gin.Context)
	// GetMenu retrieves the full catalog snapshot the menu renders from
	GetMenu(c *gin.Context)
	// Quote computes the total for a selection
	Quote(c *gin.Context)
}

type catalogController struct {
	coffees services.CoffeeService
	sizes   services.SizeService
	extras  services.ExtraService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(coffees services.CoffeeService, sizes services.SizeService, extras services.ExtraService) *catalogController {
	return &catalogController{coffees: coffees, sizes: sizes, extras: extras}
}

// GetAllCoffees godoc
// @Summary Get all coffees
// @Description Get all coffees ordered by name ascending
// @Tags coffees
// @Produce json
// @Success 200 {array} models.Coffee
// @Failure 500 {object} map[string]string
// @Router /api/coffees [get]
func (ctrl *catalogController) GetAllCoffees(ctx *gin.Context) {
	coffees, err := ctrl.coffees.GetAllCoffees()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve coffees"})
		return
	}
	ctx.JSON(http.StatusOK, coffees)
}

// CreateCoffeeRaw godoc
// @Summary Insert a coffee
// @Description Insert a coffee row; only storage-layer constraints apply
// @Tags coffees
// @Accept json
// @Produce json
// @Param coffee body models.Coffee true "Coffee fields"
// @Success 201 {object} models.Coffee
// @Failure 500 {object} map[string]string
// @Router /api/coffees [post]
func (ctrl *catalogController) CreateCoffeeRaw(ctx *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		ImageURL    string  `json:"image_url"`
		Description string  `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	inserted, err := ctrl.coffees.InsertRaw(models.Coffee{
		Name:        req.Name,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, inserted)
}

// GetMenu godoc
// @Summary Get the menu catalog snapshot
// @Description Get coffees (oldest first), sizes and extras in one response. The three reads run concurrently; if one fails its list comes back empty and the response is marked degraded.
// @Tags menu
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/menu [get]
func (ctrl *catalogController) GetMenu(ctx *gin.Context) {
	var (
		wg      sync.WaitGroup
		coffees []models.Coffee
		sizes   []models.Size
		extras  []models.Extra

		cErr, sErr, eErr error
	)

	// The three loads have no ordering dependency; a failed one leaves
	// its list empty without blocking the others
	wg.Add(3)
	go func() {
		defer wg.Done()
		coffees, cErr = ctrl.coffees.GetCoffeesByCreation()
	}()
	go func() {
		defer wg.Done()
		sizes, sErr = ctrl.sizes.GetAllSizes()
	}()
	go func() {
		defer wg.Done()
		extras, eErr = ctrl.extras.GetAllExtras()
	}()
	wg.Wait()

	degraded := false
	for _, err := range []error{cErr, sErr, eErr} {
		if err != nil {
			degraded = true
			log.WithError(err).Warn("Partial menu load failure")
		}
	}

	if coffees == nil {
		coffees = []models.Coffee{}
	}
	if sizes == nil {
		sizes = []models.Size{}
	}
	if extras == nil {
		extras = []models.Extra{}
	}

	resp := gin.H{
		"coffees": coffees,
		"sizes":   sizes,
		"extras":  extras,
	}
	if degraded {
		resp["message"] = "Some catalog data could not be loaded"
	}
	ctx.JSON(http.StatusOK, resp)
}

// Quote godoc
// @Summary Compute the total for a selection
// @Description Total = base price x size factor + sum of selected extras, formatted to two decimals. Unknown size keys fall back to factor 1, unknown extras are ignored.
// @Tags menu
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/quote [post]
func (ctrl *catalogController) Quote(ctx *gin.Context) {
	var req struct {
		CoffeeID int             `json:"coffee_id"`
		Size     string          `json:"size"`
		Extras   map[string]bool `json:"extras"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// No selection yet: the total is simply zero
	if req.CoffeeID == 0 {
		ctx.JSON(http.StatusOK, gin.H{"total": pricing.Total(nil, req.Size, req.Extras, nil, nil)})
		return
	}

	coffee, err := ctrl.coffees.GetCoffeeByID(req.CoffeeID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Coffee not found"})
		return
	}

	// Size and extras catalogs feed the calculator as a snapshot; a read
	// failure here degrades to empty lists, which the calculator treats
	// leniently
	sizes, err := ctrl.sizes.GetAllSizes()
	if err != nil {
		log.WithError(err).Warn("Quote computed without size catalog")
	}
	extras, err := ctrl.extras.GetAllExtras()
	if err != nil {
		log.WithError(err).Warn("Quote computed without extras catalog")
	}

	total := pricing.Total(&coffee, req.Size, req.Extras, sizes, extras)
	ctx.JSON(http.StatusOK, gin.H{"total": total})
}
