package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WhyUsFeatureRepository handles database operations for why-us features
type WhyUsFeatureRepository struct {
	db *gorm.DB
}

// NewWhyUsFeatureRepository creates a new why-us feature repository
func NewWhyUsFeatureRepository(db *gorm.DB) *WhyUsFeatureRepository {
	return &WhyUsFeatureRepository{db: db}
}

// GetByID retrieves a why-us feature by ID
func (r *WhyUsFeatureRepository) GetByID(id uuid.UUID) (*models.WhyUsFeature, error) {
	var feature models.WhyUsFeature
	if err := r.db.First(&feature, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

// SectionByID retrieves the parent why-us section of a feature
func (r *WhyUsFeatureRepository) SectionByID(sectionID uuid.UUID) (*models.WhyUsSection, error) {
	var section models.WhyUsSection
	if err := r.db.First(&section, "id = ?", sectionID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// Update applies the supplied column assignments to a why-us feature
func (r *WhyUsFeatureRepository) Update(id uuid.UUID, assign map[string]interface{}) (*models.WhyUsFeature, error) {
	if err := r.db.Model(&models.WhyUsFeature{}).Where("id = ?", id).Updates(assign).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// ReplaceForSection swaps the full feature list of a section in one
// transaction
func (r *WhyUsFeatureRepository) ReplaceForSection(sectionID uuid.UUID, features []models.WhyUsFeature) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", sectionID).Delete(&models.WhyUsFeature{}).Error; err != nil {
			return err
		}
		if len(features) == 0 {
			return nil
		}
		for i := range features {
			features[i].SectionID = sectionID
		}
		return tx.Create(&features).Error
	})
}
