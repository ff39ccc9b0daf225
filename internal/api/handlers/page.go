package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PageHandler handles HTTP requests for the public page read model
type PageHandler struct {
	pageService *service.PageService
}

// NewPageHandler creates a new page handler
func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{
		pageService: pageService,
	}
}

// GetPage handles GET /public/:projectId/page
// @Summary Get the public page
// @Description Get the full denormalized page content of a project
// @Tags public
// @Produce json
// @Param projectId path string true "Public project identifier"
// @Success 200 {object} service.PublicPage "Page content"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /public/{projectId}/page [get]
func (h *PageHandler) GetPage(c *gin.Context) {
	page, err := h.pageService.Get(c.Param("projectId"), false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetPageWithKeywords handles GET /public/:projectId/page-with-keywords
// @Summary Get the public page with SEO keywords
// @Description Get the page content plus the keyword list in one call
// @Tags public
// @Produce json
// @Param projectId path string true "Public project identifier"
// @Success 200 {object} service.PublicPage "Page content with keywords"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /public/{projectId}/page-with-keywords [get]
func (h *PageHandler) GetPageWithKeywords(c *gin.Context) {
	page, err := h.pageService.Get(c.Param("projectId"), true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
