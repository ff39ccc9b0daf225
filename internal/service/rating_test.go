package service_test

import (
	"testing"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/mocks"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func ratingsOf(stars ...int) []models.Rating {
	ratings := make([]models.Rating, 0, len(stars))
	for _, s := range stars {
		ratings = append(ratings, models.Rating{Stars: s})
	}
	return ratings
}

func TestComputeRatingStats(t *testing.T) {
	tests := []struct {
		name         string
		stars        []int
		wantAverage  float64
		wantTotal    int
		wantStarsSum int
	}{
		{"empty", nil, 0, 0, 0},
		{"single", []int{5}, 5.0, 1, 5},
		{"two ratings round to half", []int{5, 4}, 4.5, 2, 9},
		{"three ratings exact", []int{5, 4, 3}, 4.0, 3, 12},
		{"rounds to one decimal", []int{5, 5, 4}, 4.7, 3, 14},
		{"rounds down", []int{5, 4, 4, 4, 4, 4, 4}, 4.1, 7, 29},
		{"all ones", []int{1, 1, 1}, 1.0, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := service.ComputeRatingStats(ratingsOf(tt.stars...))
			assert.Equal(t, tt.wantAverage, stats.AverageRating)
			assert.Equal(t, tt.wantTotal, stats.TotalRatings)
			assert.Equal(t, tt.wantStarsSum, stats.TotalStars)
		})
	}
}

func TestRatingServiceAdd(t *testing.T) {
	projectID := uuid.New()

	t.Run("rejects stars below range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewRatingService(mocks.NewMockProjectRepositoryInterface(ctrl), mocks.NewMockRatingRepositoryInterface(ctrl))

		_, err := svc.Add(projectID, &service.AddRatingRequest{Stars: 0})
		assert.ErrorIs(t, err, apperrors.ErrInvalidStars)
	})

	t.Run("rejects stars above range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewRatingService(mocks.NewMockProjectRepositoryInterface(ctrl), mocks.NewMockRatingRepositoryInterface(ctrl))

		_, err := svc.Add(projectID, &service.AddRatingRequest{Stars: 6})
		assert.ErrorIs(t, err, apperrors.ErrInvalidStars)
	})

	t.Run("maps missing project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryInterface(ctrl)
		ratings := mocks.NewMockRatingRepositoryInterface(ctrl)
		projects.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

		svc := service.NewRatingService(projects, ratings)
		_, err := svc.Add(projectID, &service.AddRatingRequest{Stars: 3})
		assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
	})

	t.Run("records rating and recomputes aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryInterface(ctrl)
		ratings := mocks.NewMockRatingRepositoryInterface(ctrl)

		projects.EXPECT().GetByID(projectID).Return(&models.Project{}, nil)
		ratings.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Rating) error {
			assert.Equal(t, projectID, r.ProjectID)
			assert.Equal(t, 4, r.Stars)
			return nil
		})
		ratings.EXPECT().ListByProjectID(projectID).Return(ratingsOf(5, 4), nil)

		svc := service.NewRatingService(projects, ratings)
		resp, err := svc.Add(projectID, &service.AddRatingRequest{Stars: 4})
		require.NoError(t, err)
		assert.Equal(t, projectID, resp.Rating.ProjectID)
		assert.Equal(t, 4, resp.Rating.Stars)
		require.NotNil(t, resp.Statistics)
		assert.Equal(t, 4.5, resp.Statistics.AverageRating)
		assert.Equal(t, 2, resp.Statistics.TotalRatings)
		assert.Equal(t, 9, resp.Statistics.TotalStars)
	})

	t.Run("resolves project by public identifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryInterface(ctrl)
		ratings := mocks.NewMockRatingRepositoryInterface(ctrl)

		project := &models.Project{Slug: "cart"}
		project.ID = projectID
		projects.EXPECT().GetBySlug("cart").Return(project, nil)
		projects.EXPECT().GetByID(projectID).Return(project, nil)
		ratings.EXPECT().Create(gomock.Any()).Return(nil)
		ratings.EXPECT().ListByProjectID(projectID).Return(ratingsOf(5), nil)

		svc := service.NewRatingService(projects, ratings)
		resp, err := svc.AddBySlug("cart", &service.AddRatingRequest{Stars: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Rating.Stars)
		assert.Equal(t, 5.0, resp.Statistics.AverageRating)
	})
}
