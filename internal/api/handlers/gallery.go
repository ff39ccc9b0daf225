package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GalleryHandler handles HTTP requests for gallery images
type GalleryHandler struct {
	galleryService *service.GalleryService
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
	}
}

// ListGallery handles GET /dashboard/:projectId/gallery
// @Summary List gallery images
// @Description List a project's gallery images, newest first
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {array} models.GalleryImage "Gallery images"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/gallery [get]
func (h *GalleryHandler) ListGallery(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	images, err := h.galleryService.List(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, images)
}

// AddGalleryImage handles POST /dashboard/:projectId/gallery
// @Summary Add a gallery image
// @Description Upload an image to the project's gallery folder and record it
// @Tags dashboard
// @Accept multipart/form-data
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param image formData file true "Image file"
// @Param alt formData string false "Alt text"
// @Success 201 {object} models.GalleryImage "Created gallery image"
// @Failure 400 {object} handlers.ErrorResponse "Missing, oversized or unsupported file"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/gallery [post]
func (h *GalleryHandler) AddGalleryImage(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	file, err := openImageUpload(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	var alt *string
	if v := c.PostForm("alt"); v != "" {
		alt = &v
	}

	image, err := h.galleryService.Add(c.Request.Context(), projectID, file, alt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteGalleryImage handles DELETE /dashboard/:projectId/gallery/:imageId
// @Summary Delete a gallery image
// @Description Delete a gallery image and best-effort remove the stored object
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param imageId path string true "Image ID (UUID)"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Failure 403 {object} handlers.ErrorResponse "Image belongs to another project"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/gallery/{imageId} [delete]
func (h *GalleryHandler) DeleteGalleryImage(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	imageID, ok := parseUUIDParam(c, "imageId")
	if !ok {
		return
	}

	if err := h.galleryService.Delete(c.Request.Context(), projectID, imageID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "gallery image deleted"})
}
