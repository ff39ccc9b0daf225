package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WhyUsHandler handles HTTP requests for the why-us section
type WhyUsHandler struct {
	whyUsService *service.WhyUsService
}

// NewWhyUsHandler creates a new why-us handler
func NewWhyUsHandler(whyUsService *service.WhyUsService) *WhyUsHandler {
	return &WhyUsHandler{
		whyUsService: whyUsService,
	}
}

// GetWhyUs handles GET /dashboard/:projectId/why-us
// @Summary Get the why-us section
// @Description Get the why-us section with its features in insertion order
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} models.WhyUsSection "Why-us section"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "Why-us section not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/why-us [get]
func (h *WhyUsHandler) GetWhyUs(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	section, err := h.whyUsService.Get(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// UpsertWhyUs handles PUT /dashboard/:projectId/why-us
// @Summary Create or update the why-us section
// @Description Merges header fields; a supplied features list replaces all items
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.UpsertWhyUsRequest true "Why-us section fields"
// @Success 200 {object} models.WhyUsSection "Why-us section as stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/why-us [put]
func (h *WhyUsHandler) UpsertWhyUs(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req service.UpsertWhyUsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	section, err := h.whyUsService.Upsert(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// UpdateWhyUsFeature handles PATCH /dashboard/:projectId/why-us/:featureId
// @Summary Update one why-us feature
// @Description Partially update a feature; the item must belong to the addressed project
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param featureId path string true "Feature ID (UUID)"
// @Param request body service.UpdateWhyUsFeatureRequest true "Fields to change"
// @Success 200 {object} models.WhyUsFeature "Updated feature"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Feature belongs to another project"
// @Failure 404 {object} handlers.ErrorResponse "Feature not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/why-us/{featureId} [patch]
func (h *WhyUsHandler) UpdateWhyUsFeature(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	featureID, ok := parseUUIDParam(c, "featureId")
	if !ok {
		return
	}

	var req service.UpdateWhyUsFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	feature, err := h.whyUsService.UpdateFeature(projectID, featureID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feature)
}
