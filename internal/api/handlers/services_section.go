package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ServicesSectionHandler handles HTTP requests for the services section
type ServicesSectionHandler struct {
	servicesService *service.ServicesSectionService
}

// NewServicesSectionHandler creates a new services section handler
func NewServicesSectionHandler(servicesService *service.ServicesSectionService) *ServicesSectionHandler {
	return &ServicesSectionHandler{
		servicesService: servicesService,
	}
}

// GetServicesSection handles GET /dashboard/:projectId/services
// @Summary Get the services section
// @Description Get the services section with its items in insertion order
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} models.ServicesSection "Services section"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "Services section not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/services [get]
func (h *ServicesSectionHandler) GetServicesSection(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	section, err := h.servicesService.Get(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// UpsertServicesSection handles PUT /dashboard/:projectId/services
// @Summary Create or update the services section
// @Description Merges header fields; a supplied services list replaces all items
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.UpsertServicesSectionRequest true "Services section fields"
// @Success 200 {object} models.ServicesSection "Services section as stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/services [put]
func (h *ServicesSectionHandler) UpsertServicesSection(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req service.UpsertServicesSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	section, err := h.servicesService.Upsert(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// UpdateService handles PATCH /dashboard/:projectId/services/:serviceId
// @Summary Update one service item
// @Description Partially update a service; the item must belong to the addressed project
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param serviceId path string true "Service ID (UUID)"
// @Param request body service.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} models.Service "Updated service"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Service belongs to another project"
// @Failure 404 {object} handlers.ErrorResponse "Service not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/services/{serviceId} [patch]
func (h *ServicesSectionHandler) UpdateService(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	serviceID, ok := parseUUIDParam(c, "serviceId")
	if !ok {
		return
	}

	var req service.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.servicesService.UpdateService(projectID, serviceID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}
