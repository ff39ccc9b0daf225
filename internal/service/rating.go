package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingService handles visitor star ratings. Ratings are append-only;
// the aggregate is recomputed from the full list on every read.
type RatingService struct {
	projects repository.ProjectRepositoryInterface
	ratings  repository.RatingRepositoryInterface
}

// NewRatingService creates a new rating service
func NewRatingService(projects repository.ProjectRepositoryInterface, ratings repository.RatingRepositoryInterface) *RatingService {
	return &RatingService{projects: projects, ratings: ratings}
}

// AddRatingRequest represents one visitor rating submission
type AddRatingRequest struct {
	Stars int `json:"stars"`
}

// RatingStats is the denormalized aggregate of a project's ratings
type RatingStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
	TotalStars    int     `json:"totalStars"`
}

// AddRatingResponse carries the stored rating row and the aggregate
// recomputed after it
type AddRatingResponse struct {
	Rating     models.Rating `json:"rating"`
	Statistics *RatingStats  `json:"statistics"`
}

// AddBySlug records a rating for the project addressed by its public
// identifier
func (s *RatingService) AddBySlug(slug string, req *AddRatingRequest) (*AddRatingResponse, error) {
	project, err := s.projects.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return s.Add(project.ID, req)
}

// Add records a rating and returns the stored row with the updated
// aggregate
func (s *RatingService) Add(projectID uuid.UUID, req *AddRatingRequest) (*AddRatingResponse, error) {
	if req.Stars < 1 || req.Stars > 5 {
		return nil, apperrors.ErrInvalidStars
	}
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	rating := &models.Rating{ProjectID: projectID, Stars: req.Stars}
	if err := s.ratings.Create(rating); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	stats, err := s.Stats(projectID)
	if err != nil {
		return nil, err
	}
	return &AddRatingResponse{Rating: *rating, Statistics: stats}, nil
}

// Stats recomputes the rating aggregate for a project
func (s *RatingService) Stats(projectID uuid.UUID) (*RatingStats, error) {
	ratings, err := s.ratings.ListByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ComputeRatingStats(ratings), nil
}

// ComputeRatingStats derives the aggregate from a rating list. The average
// is rounded to one decimal place; an empty list yields all zeroes.
func ComputeRatingStats(ratings []models.Rating) *RatingStats {
	stats := &RatingStats{}
	for _, r := range ratings {
		stats.TotalStars += r.Stars
	}
	stats.TotalRatings = len(ratings)
	if stats.TotalRatings > 0 {
		avg := float64(stats.TotalStars) / float64(stats.TotalRatings)
		stats.AverageRating = math.Round(avg*10) / 10
	}
	return stats
}
