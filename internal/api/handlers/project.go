package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a project together with any nested content sections in one atomic write
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Successfully created project"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Project identifier already in use"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetMainData handles GET /dashboard/:projectId/main-data
// @Summary Get project main data
// @Description Get the project name, site settings and hero headline in one call
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} service.MainDataResponse "Main data"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/main-data [get]
func (h *ProjectHandler) GetMainData(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	resp, err := h.projectService.GetMainData(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMainData handles PUT /dashboard/:projectId/main-data
// @Summary Update project main data
// @Description Update the project name, site settings and hero headline as one transactional batch
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.UpdateMainDataRequest true "Main data"
// @Success 200 {object} service.MainDataResponse "Updated main data"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/main-data [put]
func (h *ProjectHandler) UpdateMainData(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req service.UpdateMainDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.projectService.UpdateMainData(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
