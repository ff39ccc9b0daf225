package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRepository handles database operations for services
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// SectionByID retrieves the parent services section of a service. Used by
// the ownership guard to resolve the section hop of the chain.
func (r *ServiceRepository) SectionByID(sectionID uuid.UUID) (*models.ServicesSection, error) {
	var section models.ServicesSection
	if err := r.db.First(&section, "id = ?", sectionID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// Update applies the supplied column assignments to a service
func (r *ServiceRepository) Update(id uuid.UUID, assign map[string]interface{}) (*models.Service, error) {
	if err := r.db.Model(&models.Service{}).Where("id = ?", id).Updates(assign).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// ReplaceForSection swaps the full service list of a section in one
// transaction
func (r *ServiceRepository) ReplaceForSection(sectionID uuid.UUID, services []models.Service) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", sectionID).Delete(&models.Service{}).Error; err != nil {
			return err
		}
		if len(services) == 0 {
			return nil
		}
		for i := range services {
			services[i].SectionID = sectionID
		}
		return tx.Create(&services).Error
	})
}
