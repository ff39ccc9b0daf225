package handlers

import (
	"mime/multipart"
	"net/http"

	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps image uploads at 10MB
const maxUploadBytes = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// openImageUpload validates the multipart image field and opens it.
// Validation happens before any storage traffic.
func openImageUpload(c *gin.Context, field string) (multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "image file is required")
	}
	if header.Size > maxUploadBytes {
		return nil, apperrors.ErrFileTooLarge
	}
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		return nil, apperrors.ErrUnsupportedFileType
	}
	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewValidationError(field, "could not read uploaded file")
	}
	return file, nil
}

// UploadHandler handles standalone image uploads
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload handles POST /dashboard/:projectId/upload
// @Summary Upload an image
// @Description Upload an image for use in section content; JPEG, PNG, WebP and GIF up to 10MB
// @Tags dashboard
// @Accept multipart/form-data
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param image formData file true "Image file"
// @Success 201 {object} service.UploadResponse "Stored object location"
// @Failure 400 {object} handlers.ErrorResponse "Missing, oversized or unsupported file"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
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

	resp, err := h.uploadService.Upload(c.Request.Context(), projectID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
