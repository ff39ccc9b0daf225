package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryImageRepository handles database operations for gallery images
type GalleryImageRepository struct {
	db *gorm.DB
}

// NewGalleryImageRepository creates a new gallery image repository
func NewGalleryImageRepository(db *gorm.DB) *GalleryImageRepository {
	return &GalleryImageRepository{db: db}
}

// Create creates a new gallery image row
func (r *GalleryImageRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

// GetByID retrieves a gallery image by ID
func (r *GalleryImageRepository) GetByID(id uuid.UUID) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// ListByProjectID retrieves all gallery images of a project, newest first
func (r *GalleryImageRepository) ListByProjectID(projectID uuid.UUID) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Delete removes a gallery image row
func (r *GalleryImageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GalleryImage{}, "id = ?", id).Error
}
