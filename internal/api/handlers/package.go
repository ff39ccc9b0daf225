package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PackageHandler handles HTTP requests for packages
type PackageHandler struct {
	packageService *service.PackageService
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// ListPackages handles GET /dashboard/:projectId/packages
// @Summary List packages
// @Description List a project's packages, newest first
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {array} models.Package "Packages"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	packages, err := h.packageService.List(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, packages)
}

// CreatePackage handles POST /dashboard/:projectId/packages
// @Summary Create a package
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.CreatePackageRequest true "Package data"
// @Success 201 {object} models.Package "Created package"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req service.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	pkg, err := h.packageService.Create(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage handles PATCH /dashboard/:projectId/packages/:packageId
// @Summary Update a package
// @Description Partially update a package scoped to the addressed project
// @Tags dashboard
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param packageId path string true "Package ID (UUID)"
// @Param request body service.UpdatePackageRequest true "Fields to change"
// @Success 200 {object} models.Package "Updated package"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Package not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/packages/{packageId} [patch]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	packageID, ok := parseUUIDParam(c, "packageId")
	if !ok {
		return
	}

	var req service.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	pkg, err := h.packageService.Update(projectID, packageID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage handles DELETE /dashboard/:projectId/packages/:packageId
// @Summary Delete a package
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param packageId path string true "Package ID (UUID)"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Failure 404 {object} handlers.ErrorResponse "Package not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/packages/{packageId} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	packageID, ok := parseUUIDParam(c, "packageId")
	if !ok {
		return
	}

	if err := h.packageService.Delete(projectID, packageID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}
