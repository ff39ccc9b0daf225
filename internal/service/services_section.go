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

// ServicesSectionService handles the services section and its items
type ServicesSectionService struct {
	projects  *repository.ProjectRepository
	sections  *repository.SectionRepository
	services  *repository.ServiceRepository
	guard     *OwnershipGuard
	validator *validator.Validate
}

// NewServicesSectionService creates a new services section service
func NewServicesSectionService(projects *repository.ProjectRepository, sections *repository.SectionRepository, services *repository.ServiceRepository, guard *OwnershipGuard, validator *validator.Validate) *ServicesSectionService {
	return &ServicesSectionService{
		projects:  projects,
		sections:  sections,
		services:  services,
		guard:     guard,
		validator: validator,
	}
}

// UpsertServicesSectionRequest updates the services section. Nil header
// fields keep their prior value; a non-nil Services list replaces the items.
type UpsertServicesSectionRequest struct {
	Label       *string            `json:"label"`
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Services    []SectionItemInput `json:"services"`
}

// UpdateServiceRequest partially updates one service item
type UpdateServiceRequest struct {
	Icon        *string `json:"icon"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Get returns the services section of a project with its items in
// insertion order
func (s *ServicesSectionService) Get(projectID uuid.UUID) (*models.ServicesSection, error) {
	section, err := s.sections.GetServices(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServicesSectionNotFound
		}
		return nil, fmt.Errorf("failed to load services section: %w", err)
	}
	return section, nil
}

// Upsert creates the services section when absent, otherwise merges the
// supplied header fields. A services list, when given, replaces all items.
func (s *ServicesSectionService) Upsert(projectID uuid.UUID, req *UpsertServicesSectionRequest) (*models.ServicesSection, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	row := &models.ServicesSection{ProjectID: projectID}
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

	section, err := s.sections.UpsertServices(row, assign)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert services section: %w", err)
	}

	if req.Services != nil {
		items := make([]models.Service, 0, len(req.Services))
		for _, in := range req.Services {
			items = append(items, models.Service{
				Icon:        in.Icon,
				Title:       in.Title,
				Description: in.Description,
			})
		}
		if err := s.services.ReplaceForSection(section.ID, items); err != nil {
			return nil, fmt.Errorf("failed to replace services: %w", err)
		}
	}

	return s.Get(projectID)
}

// UpdateService partially updates one service item. The item must belong
// to the given project; a cross-project ID is rejected without touching
// the row.
func (s *ServicesSectionService) UpdateService(projectID, serviceID uuid.UUID, req *UpdateServiceRequest) (*models.Service, error) {
	if _, err := s.guard.AuthorizeService(projectID, serviceID); err != nil {
		return nil, err
	}

	assign := map[string]interface{}{}
	setIfPresent(assign, "icon", req.Icon)
	setIfPresent(assign, "title", req.Title)
	setIfPresent(assign, "description", req.Description)
	if len(assign) == 0 {
		return s.services.GetByID(serviceID)
	}

	service, err := s.services.Update(serviceID, assign)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}
