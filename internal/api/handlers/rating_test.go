package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/api/handlers"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/mocks"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RatingHandlerTestSuite defines the test suite for RatingHandler
type RatingHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRatingSvc *mocks.MockRatingServiceInterface
	handler       *handlers.RatingHandler
	router        *gin.Engine
}

func (suite *RatingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRatingSvc = mocks.NewMockRatingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRatingHandler(suite.mockRatingSvc)

	suite.router = gin.New()
	suite.router.POST("/public/:projectId/rating", suite.handler.AddRating)
	suite.router.GET("/dashboard/:projectId/rating", suite.handler.GetRatingStats)
}

func (suite *RatingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RatingHandlerTestSuite) TestAddRating_Success() {
	resp := &service.AddRatingResponse{
		Rating:     models.Rating{Stars: 4},
		Statistics: &service.RatingStats{AverageRating: 4.5, TotalRatings: 2, TotalStars: 9},
	}
	suite.mockRatingSvc.EXPECT().
		AddBySlug("qahwa-cart", &service.AddRatingRequest{Stars: 4}).
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodPost, "/public/qahwa-cart/rating", strings.NewReader(`{"stars":4}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.AddRatingResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, got.Rating.Stars)
	assert.Equal(suite.T(), 4.5, got.Statistics.AverageRating)
	assert.Equal(suite.T(), 2, got.Statistics.TotalRatings)
	assert.Equal(suite.T(), 9, got.Statistics.TotalStars)
}

func (suite *RatingHandlerTestSuite) TestAddRating_StarsOutOfRange() {
	suite.mockRatingSvc.EXPECT().
		AddBySlug("qahwa-cart", &service.AddRatingRequest{Stars: 6}).
		Return(nil, apperrors.ErrInvalidStars)

	req := httptest.NewRequest(http.MethodPost, "/public/qahwa-cart/rating", strings.NewReader(`{"stars":6}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "stars")
}

func (suite *RatingHandlerTestSuite) TestAddRating_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/public/qahwa-cart/rating", strings.NewReader(`{"stars":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RatingHandlerTestSuite) TestAddRating_ProjectNotFound() {
	suite.mockRatingSvc.EXPECT().
		AddBySlug("no-such-project", gomock.Any()).
		Return(nil, apperrors.ErrProjectNotFound)

	req := httptest.NewRequest(http.MethodPost, "/public/no-such-project/rating", strings.NewReader(`{"stars":5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RatingHandlerTestSuite) TestGetRatingStats_Success() {
	projectID := uuid.New()
	stats := &service.RatingStats{AverageRating: 5, TotalRatings: 1, TotalStars: 5}
	suite.mockRatingSvc.EXPECT().Stats(projectID).Return(stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/"+projectID.String()+"/rating", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.RatingStats
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, got.TotalRatings)
}

func (suite *RatingHandlerTestSuite) TestGetRatingStats_InvalidProjectID() {
	req := httptest.NewRequest(http.MethodGet, "/dashboard/not-a-uuid/rating", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "UUID")
}

func (suite *RatingHandlerTestSuite) TestGetRatingStats_ServiceError() {
	projectID := uuid.New()
	suite.mockRatingSvc.EXPECT().Stats(projectID).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/"+projectID.String()+"/rating", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "connection refused")
}

func TestRatingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatingHandlerTestSuite))
}
