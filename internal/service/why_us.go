package service

import (
	"errors"
	"fmt"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WhyUsService handles the why-us section and its feature items
type WhyUsService struct {
	projects  *repository.ProjectRepository
	sections  *repository.SectionRepository
	features  *repository.WhyUsFeatureRepository
	guard     *OwnershipGuard
	validator *validator.Validate
}

// NewWhyUsService creates a new why-us service
func NewWhyUsService(projects *repository.ProjectRepository, sections *repository.SectionRepository, features *repository.WhyUsFeatureRepository, guard *OwnershipGuard, validator *validator.Validate) *WhyUsService {
	return &WhyUsService{
		projects:  projects,
		sections:  sections,
		features:  features,
		guard:     guard,
		validator: validator,
	}
}

// UpsertWhyUsRequest updates the why-us section. Nil header fields keep
// their prior value; a non-nil Features list replaces the items.
type UpsertWhyUsRequest struct {
	Label       *string            `json:"label"`
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Features    []SectionItemInput `json:"features"`
}

// UpdateWhyUsFeatureRequest partially updates one feature item
type UpdateWhyUsFeatureRequest struct {
	Icon        *string `json:"icon"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Get returns the why-us section of a project with its features in
// insertion order
func (s *WhyUsService) Get(projectID uuid.UUID) (*models.WhyUsSection, error) {
	section, err := s.sections.GetWhyUs(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWhyUsSectionNotFound
		}
		return nil, fmt.Errorf("failed to load why-us section: %w", err)
	}
	return section, nil
}

// Upsert creates the why-us section when absent, otherwise merges the
// supplied header fields. A features list, when given, replaces all items.
func (s *WhyUsService) Upsert(projectID uuid.UUID, req *UpsertWhyUsRequest) (*models.WhyUsSection, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	row := &models.WhyUsSection{ProjectID: projectID}
	if req.Label != nil {
		row.Label = *req.Label
	}
	if req.Title != nil {
		row.Title = *req.Title
	}
	if req.Description != nil {
		row.Description = *req.Description
	}

	assign := map[string]interface{}{}
	setIfPresent(assign, "label", req.Label)
	setIfPresent(assign, "title", req.Title)
	setIfPresent(assign, "description", req.Description)

	section, err := s.sections.UpsertWhyUs(row, assign)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert why-us section: %w", err)
	}

	if req.Features != nil {
		items := make([]models.WhyUsFeature, 0, len(req.Features))
		for _, in := range req.Features {
			items = append(items, models.WhyUsFeature{
				Icon:        in.Icon,
				Title:       in.Title,
				Description: in.Description,
			})
		}
		if err := s.features.ReplaceForSection(section.ID, items); err != nil {
			return nil, fmt.Errorf("failed to replace features: %w", err)
		}
	}

	return s.Get(projectID)
}

// UpdateFeature partially updates one feature item. The item must belong
// to the given project; a cross-project ID is rejected without touching
// the row.
func (s *WhyUsService) UpdateFeature(projectID, featureID uuid.UUID, req *UpdateWhyUsFeatureRequest) (*models.WhyUsFeature, error) {
	if _, err := s.guard.AuthorizeWhyUsFeature(projectID, featureID); err != nil {
		return nil, err
	}

	assign := map[string]interface{}{}
	setIfPresent(assign, "icon", req.Icon)
	setIfPresent(assign, "title", req.Title)
	setIfPresent(assign, "description", req.Description)
	if len(assign) == 0 {
		return s.features.GetByID(featureID)
	}

	feature, err := s.features.Update(featureID, assign)
	if err != nil {
		return nil, fmt.Errorf("failed to update feature: %w", err)
	}
	return feature, nil
}
