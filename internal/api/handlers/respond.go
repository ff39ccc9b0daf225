package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the JSON error body returned by every endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondError maps domain errors onto HTTP statuses. Unclassified errors
// are logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err) || isBadRequest(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsOwnership(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logrus.WithError(err).WithField("request_id", c.GetString("request_id")).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Message: "An unexpected error occurred",
		})
	}
}

func isBadRequest(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidStars) ||
		errors.Is(err, apperrors.ErrInvalidSecret) ||
		errors.Is(err, apperrors.ErrInvalidKeywords) ||
		errors.Is(err, apperrors.ErrUnsupportedFileType) ||
		errors.Is(err, apperrors.ErrFileTooLarge)
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 response
// on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + ": must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}
