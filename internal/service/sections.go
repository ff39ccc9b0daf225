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

// SectionService handles the single-row content sections that are written
// with the create-or-merge upsert: about and contact. Hero is covered by
// the dashboard main-data update.
type SectionService struct {
	projects  *repository.ProjectRepository
	sections  *repository.SectionRepository
	validator *validator.Validate
}

// NewSectionService creates a new section service
func NewSectionService(projects *repository.ProjectRepository, sections *repository.SectionRepository, validator *validator.Validate) *SectionService {
	return &SectionService{projects: projects, sections: sections, validator: validator}
}

// UpsertAboutRequest updates the about section. Nil fields keep their
// prior value on an existing row.
type UpsertAboutRequest struct {
	Label        *string `json:"label"`
	Title        *string `json:"title"`
	Description1 *string `json:"description1"`
	Image        *string `json:"image"`
}

// UpsertContactRequest updates the contact section. Nil fields keep their
// prior value on an existing row.
type UpsertContactRequest struct {
	Label       *string `json:"label"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// GetAbout returns the about section of a project
func (s *SectionService) GetAbout(projectID uuid.UUID) (*models.AboutSection, error) {
	section, err := s.sections.GetAbout(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAboutSectionNotFound
		}
		return nil, fmt.Errorf("failed to load about section: %w", err)
	}
	return section, nil
}

// UpsertAbout creates the about section when absent, otherwise merges the
// supplied fields into the existing row.
func (s *SectionService) UpsertAbout(projectID uuid.UUID, req *UpsertAboutRequest) (*models.AboutSection, error) {
	if err := s.ensureProject(projectID); err != nil {
		return nil, err
	}

	row := &models.AboutSection{ProjectID: projectID, Image: req.Image}
	if req.Label != nil {
		row.Label = *req.Label
	}
	if req.Title != nil {
		row.Title = *req.Title
	}
	if req.Description1 != nil {
		row.Description1 = *req.Description1
	}

	assign := map[string]interface{}{}
	setIfPresent(assign, "label", req.Label)
	setIfPresent(assign, "title", req.Title)
	setIfPresent(assign, "description1", req.Description1)
	setIfPresent(assign, "image", req.Image)

	section, err := s.sections.UpsertAbout(row, assign)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert about section: %w", err)
	}
	return section, nil
}

// GetContact returns the contact section of a project
func (s *SectionService) GetContact(projectID uuid.UUID) (*models.ContactSection, error) {
	section, err := s.sections.GetContact(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("contact section")
		}
		return nil, fmt.Errorf("failed to load contact section: %w", err)
	}
	return section, nil
}

// UpsertContact creates the contact section when absent, otherwise merges
// the supplied fields into the existing row.
func (s *SectionService) UpsertContact(projectID uuid.UUID, req *UpsertContactRequest) (*models.ContactSection, error) {
	if err := s.ensureProject(projectID); err != nil {
		return nil, err
	}

	row := &models.ContactSection{ProjectID: projectID}
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

	section, err := s.sections.UpsertContact(row, assign)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert contact section: %w", err)
	}
	return section, nil
}

func (s *SectionService) ensureProject(projectID uuid.UUID) error {
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}
	return nil
}
