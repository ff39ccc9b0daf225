package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionRepository handles database operations for the 1:1 content
// sections that share the project-scoped upsert pattern: hero, about,
// services, why-us and contact.
type SectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// GetHero retrieves the hero section for a project
func (r *SectionRepository) GetHero(projectID uuid.UUID) (*models.HeroSection, error) {
	var section models.HeroSection
	if err := r.db.First(&section, "project_id = ?", projectID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// UpsertHero creates or partially updates the hero section of a project
func (r *SectionRepository) UpsertHero(row *models.HeroSection, assign map[string]interface{}) (*models.HeroSection, error) {
	if err := upsertByProject(r.db, row, assign); err != nil {
		return nil, err
	}
	return r.GetHero(row.ProjectID)
}

// GetAbout retrieves the about section for a project
func (r *SectionRepository) GetAbout(projectID uuid.UUID) (*models.AboutSection, error) {
	var section models.AboutSection
	if err := r.db.First(&section, "project_id = ?", projectID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// UpsertAbout creates or partially updates the about section of a project
func (r *SectionRepository) UpsertAbout(row *models.AboutSection, assign map[string]interface{}) (*models.AboutSection, error) {
	if err := upsertByProject(r.db, row, assign); err != nil {
		return nil, err
	}
	return r.GetAbout(row.ProjectID)
}

// GetServices retrieves the services section for a project with its
// services in insertion order
func (r *SectionRepository) GetServices(projectID uuid.UUID) (*models.ServicesSection, error) {
	var section models.ServicesSection
	err := r.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.created_at ASC")
		}).
		First(&section, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// UpsertServices creates or partially updates the services section of a project
func (r *SectionRepository) UpsertServices(row *models.ServicesSection, assign map[string]interface{}) (*models.ServicesSection, error) {
	if err := upsertByProject(r.db, row, assign); err != nil {
		return nil, err
	}
	var section models.ServicesSection
	if err := r.db.First(&section, "project_id = ?", row.ProjectID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// GetWhyUs retrieves the why-us section for a project with its features in
// insertion order
func (r *SectionRepository) GetWhyUs(projectID uuid.UUID) (*models.WhyUsSection, error) {
	var section models.WhyUsSection
	err := r.db.
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("why_us_features.created_at ASC")
		}).
		First(&section, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// UpsertWhyUs creates or partially updates the why-us section of a project
func (r *SectionRepository) UpsertWhyUs(row *models.WhyUsSection, assign map[string]interface{}) (*models.WhyUsSection, error) {
	if err := upsertByProject(r.db, row, assign); err != nil {
		return nil, err
	}
	var section models.WhyUsSection
	if err := r.db.First(&section, "project_id = ?", row.ProjectID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// GetContact retrieves the contact section for a project
func (r *SectionRepository) GetContact(projectID uuid.UUID) (*models.ContactSection, error) {
	var section models.ContactSection
	if err := r.db.First(&section, "project_id = ?", projectID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// UpsertContact creates or partially updates the contact section of a project
func (r *SectionRepository) UpsertContact(row *models.ContactSection, assign map[string]interface{}) (*models.ContactSection, error) {
	if err := upsertByProject(r.db, row, assign); err != nil {
		return nil, err
	}
	return r.GetContact(row.ProjectID)
}
