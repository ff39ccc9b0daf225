package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingRepository handles database operations for ratings. Ratings are
// append-only: there is deliberately no update or delete here.
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create appends a new rating row
func (r *RatingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// ListByProjectID retrieves all rating rows of a project
func (r *RatingRepository) ListByProjectID(projectID uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("project_id = ?", projectID).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
