package service

import (
	"errors"
	"fmt"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PackageService handles the service packages offered by a project
type PackageService struct {
	projects  *repository.ProjectRepository
	packages  *repository.PackageRepository
	validator *validator.Validate
}

// NewPackageService creates a new package service
func NewPackageService(projects *repository.ProjectRepository, packages *repository.PackageRepository, validator *validator.Validate) *PackageService {
	return &PackageService{projects: projects, packages: packages, validator: validator}
}

// CreatePackageRequest represents a new package
type CreatePackageRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=200"`
	Features []string `json:"features"`
	Image    string   `json:"image"`
}

// UpdatePackageRequest partially updates a package
type UpdatePackageRequest struct {
	Title    *string   `json:"title"`
	Features *[]string `json:"features"`
	Image    *string   `json:"image"`
}

// List returns a project's packages, newest first
func (s *PackageService) List(projectID uuid.UUID) ([]models.Package, error) {
	if err := s.ensureProject(projectID); err != nil {
		return nil, err
	}
	packages, err := s.packages.ListByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	if packages == nil {
		packages = []models.Package{}
	}
	return packages, nil
}

// Create adds a package to a project
func (s *PackageService) Create(projectID uuid.UUID, req *CreatePackageRequest) (*models.Package, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := s.ensureProject(projectID); err != nil {
		return nil, err
	}

	pkg := &models.Package{
		ProjectID: projectID,
		Title:     req.Title,
		Features:  req.Features,
		Image:     req.Image,
	}
	if err := s.packages.Create(pkg); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return pkg, nil
}

// Update partially updates a package. The package is looked up scoped to
// the project, so an ID owned by another project reads as absent.
func (s *PackageService) Update(projectID, packageID uuid.UUID, req *UpdatePackageRequest) (*models.Package, error) {
	if _, err := s.getOwned(projectID, packageID); err != nil {
		return nil, err
	}

	assign := map[string]interface{}{}
	setIfPresent(assign, "title", req.Title)
	setIfPresent(assign, "image", req.Image)
	if req.Features != nil {
		assign["features"] = pq.StringArray(*req.Features)
	}
	if len(assign) == 0 {
		return s.packages.GetByID(packageID)
	}

	pkg, err := s.packages.Update(packageID, assign)
	if err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	return pkg, nil
}

// Delete removes a package from a project
func (s *PackageService) Delete(projectID, packageID uuid.UUID) error {
	if _, err := s.getOwned(projectID, packageID); err != nil {
		return err
	}
	if err := s.packages.Delete(packageID); err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return nil
}

func (s *PackageService) getOwned(projectID, packageID uuid.UUID) (*models.Package, error) {
	pkg, err := s.packages.GetByID(packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to load package: %w", err)
	}
	if pkg.ProjectID != projectID {
		return nil, apperrors.ErrPackageNotFound
	}
	return pkg, nil
}

func (s *PackageService) ensureProject(projectID uuid.UUID) error {
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}
	return nil
}
