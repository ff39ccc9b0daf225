package service

import (
	"errors"
	"fmt"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnershipGuard resolves the full parent chain of a child entity and
// rejects mutations whose asserted project does not own it. Each entity
// kind gets its own typed traversal; checking only that a section exists
// is not enough, the chain has to be walked to the root tenant.
type OwnershipGuard struct {
	services *repository.ServiceRepository
	features *repository.WhyUsFeatureRepository
	gallery  *repository.GalleryImageRepository
}

// NewOwnershipGuard creates a new ownership guard
func NewOwnershipGuard(
	services *repository.ServiceRepository,
	features *repository.WhyUsFeatureRepository,
	gallery *repository.GalleryImageRepository,
) *OwnershipGuard {
	return &OwnershipGuard{services: services, features: features, gallery: gallery}
}

// AuthorizeService walks service -> services section -> project and
// returns the service when the chain ends at projectID.
func (g *OwnershipGuard) AuthorizeService(projectID, serviceID uuid.UUID) (*models.Service, error) {
	svc, err := g.services.GetByID(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	section, err := g.services.SectionByID(svc.SectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServicesSectionNotFound
		}
		return nil, fmt.Errorf("failed to load services section: %w", err)
	}

	if section.ProjectID != projectID {
		return nil, apperrors.ErrServiceOwnership
	}
	return svc, nil
}

// AuthorizeWhyUsFeature walks feature -> why-us section -> project and
// returns the feature when the chain ends at projectID.
func (g *OwnershipGuard) AuthorizeWhyUsFeature(projectID, featureID uuid.UUID) (*models.WhyUsFeature, error) {
	feature, err := g.features.GetByID(featureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWhyUsFeatureNotFound
		}
		return nil, fmt.Errorf("failed to load why us feature: %w", err)
	}

	section, err := g.features.SectionByID(feature.SectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWhyUsSectionNotFound
		}
		return nil, fmt.Errorf("failed to load why us section: %w", err)
	}

	if section.ProjectID != projectID {
		return nil, apperrors.ErrWhyUsFeatureOwnership
	}
	return feature, nil
}

// AuthorizeGalleryImage checks that a gallery image belongs to projectID.
// Gallery images hang directly off the project, so the chain is one hop.
func (g *OwnershipGuard) AuthorizeGalleryImage(projectID, imageID uuid.UUID) (*models.GalleryImage, error) {
	image, err := g.gallery.GetByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGalleryImageNotFound
		}
		return nil, fmt.Errorf("failed to load gallery image: %w", err)
	}

	if image.ProjectID != projectID {
		return nil, apperrors.ErrGalleryImageOwnership
	}
	return image, nil
}
