package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SiteSettingsHandler handles HTTP requests for keywords and metadata
type SiteSettingsHandler struct {
	settingsService *service.SiteSettingsService
}

// NewSiteSettingsHandler creates a new site settings handler
func NewSiteSettingsHandler(settingsService *service.SiteSettingsService) *SiteSettingsHandler {
	return &SiteSettingsHandler{
		settingsService: settingsService,
	}
}

// GetKeywords handles GET /dashboard/:projectId/keywords
// @Summary Get SEO keywords
// @Description Get the keyword list of a project
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} service.KeywordsResponse "Keyword list"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "Site settings not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/keywords [get]
func (h *SiteSettingsHandler) GetKeywords(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	resp, err := h.settingsService.GetKeywords(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateKeywords handles PUT /dashboard/:projectId/keywords
// @Summary Replace SEO keywords
// @Description Replace the keyword list of a project; every entry must be non-empty after trimming
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.UpdateKeywordsRequest true "Keyword list"
// @Success 200 {object} service.KeywordsResponse "Updated keyword list"
// @Failure 400 {object} handlers.ErrorResponse "Invalid keywords"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/keywords [put]
func (h *SiteSettingsHandler) UpdateKeywords(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req service.UpdateKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.settingsService.UpdateKeywords(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMetadata handles GET /public/:projectId/metadata
// @Summary Get public site metadata
// @Description Get the SEO excerpt of a project by its public identifier
// @Tags public
// @Produce json
// @Param projectId path string true "Public project identifier"
// @Success 200 {object} service.MetadataResponse "Site metadata"
// @Failure 404 {object} handlers.ErrorResponse "Project or metadata not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /public/{projectId}/metadata [get]
func (h *SiteSettingsHandler) GetMetadata(c *gin.Context) {
	resp, err := h.settingsService.GetMetadata(c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
