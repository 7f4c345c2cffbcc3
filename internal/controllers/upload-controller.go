package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashadgasimli/coffee-shop-api/internal/storage"
)

// UploadController receives admin image uploads and stores them in the
// object store
type UploadController interface {
	UploadImage(c *gin.Context)
}

type uploadController struct {
	store storage.ObjectStore
}

// NewUploadController creates a new instance of UploadController
func NewUploadController(store storage.ObjectStore) *uploadController {
	return &uploadController{store: store}
}

// UploadImage godoc
// @Summary Upload a coffee image
// @Description Store an image under a timestamped name and return its public URL. Content type and size are not validated beyond what the upload form restricts.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/images [post]
func (ctrl *uploadController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing file field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	path, err := ctrl.store.Upload(fileHeader.Filename, file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"path":       path,
		"public_url": ctrl.store.PublicURL(path),
	})
}
