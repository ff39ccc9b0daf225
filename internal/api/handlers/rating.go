package handlers

import (
	"net/http"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RatingHandler handles HTTP requests for visitor ratings
type RatingHandler struct {
	ratingService service.RatingServiceInterface
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingService service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// AddRating handles POST /public/:projectId/rating
// @Summary Submit a rating
// @Description Record a 1-5 star rating and return the stored row with the recomputed aggregate
// @Tags public
// @Accept json
// @Produce json
// @Param projectId path string true "Public project identifier"
// @Param request body service.AddRatingRequest true "Rating"
// @Success 201 {object} service.AddRatingResponse "Stored rating and updated aggregate"
// @Failure 400 {object} handlers.ErrorResponse "Stars out of range"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /public/{projectId}/rating [post]
func (h *RatingHandler) AddRating(c *gin.Context) {
	var req service.AddRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.ratingService.AddBySlug(c.Param("projectId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetRatingStats handles GET /dashboard/:projectId/rating
// @Summary Get the rating aggregate
// @Tags dashboard
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} service.RatingStats "Rating aggregate"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project ID"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/{projectId}/rating [get]
func (h *RatingHandler) GetRatingStats(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	stats, err := h.ratingService.Stats(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
