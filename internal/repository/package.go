package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PackageRepository handles database operations for packages
type PackageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// Create creates a new package
func (r *PackageRepository) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

// GetByID retrieves a package by ID
func (r *PackageRepository) GetByID(id uuid.UUID) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.First(&pkg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListByProjectID retrieves all packages of a project, newest first
func (r *PackageRepository) ListByProjectID(projectID uuid.UUID) ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

// Update applies the supplied column assignments to a package
func (r *PackageRepository) Update(id uuid.UUID, assign map[string]interface{}) (*models.Package, error) {
	if err := r.db.Model(&models.Package{}).Where("id = ?", id).Updates(assign).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes a package
func (r *PackageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Package{}, "id = ?", id).Error
}
