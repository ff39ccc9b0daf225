package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SectionHandler handles HTTP requests for the about and contact sections
type SectionHandler struct {
	sectionService *service.SectionService
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(sectionService *service.SectionService) *SectionHandler {
	return &SectionHandler{
		sectionService: sectionService,
	}
}

// GetAbout handles GET /dashboard/:projectId/about
// @Summary Get the about section
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} models.AboutSection "About section"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "About section not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/about [get]
func (h *SectionHandler) GetAbout(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	section, err := h.sectionService.GetAbout(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// UpsertAbout handles PUT /dashboard/:projectId/about
// @Summary Create or update the about section
// @Description Creates the section when absent; otherwise merges only the supplied fields
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.UpsertAboutRequest true "About section fields"
// @Success 200 {object} models.AboutSection "About section as stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/about [put]
func (h *SectionHandler) UpsertAbout(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req service.UpsertAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	section, err := h.sectionService.UpsertAbout(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// GetContact handles GET /dashboard/:projectId/contact
// @Summary Get the contact section
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} models.ContactSection "Contact section"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "Contact section not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/contact [get]
func (h *SectionHandler) GetContact(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	section, err := h.sectionService.GetContact(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// UpsertContact handles PUT /dashboard/:projectId/contact
// @Summary Create or update the contact section
// @Description Creates the section when absent; otherwise merges only the supplied fields
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.UpsertContactRequest true "Contact section fields"
// @Success 200 {object} models.ContactSection "Contact section as stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/contact [put]
func (h *SectionHandler) UpsertContact(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req service.UpsertContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	section, err := h.sectionService.UpsertContact(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}
