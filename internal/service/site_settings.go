package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	apperrors "github.com/ibrahimsaleh8/qahwajige-backend/internal/errors"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SiteSettingsService handles the keyword list and public site metadata
type SiteSettingsService struct {
	projects  *repository.ProjectRepository
	settings  *repository.SiteSettingsRepository
	validator *validator.Validate
}

// NewSiteSettingsService creates a new site settings service
func NewSiteSettingsService(projects *repository.ProjectRepository, settings *repository.SiteSettingsRepository, validator *validator.Validate) *SiteSettingsService {
	return &SiteSettingsService{projects: projects, settings: settings, validator: validator}
}

// KeywordsResponse carries the SEO keyword list of a project
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// UpdateKeywordsRequest replaces the SEO keyword list of a project
type UpdateKeywordsRequest struct {
	Keywords []string `json:"keywords" validate:"required"`
}

// MetadataResponse is the public SEO excerpt of a project
type MetadataResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	BrandName   string   `json:"brandName"`
}

// GetKeywords returns the keyword list of a project's settings row
func (s *SiteSettingsService) GetKeywords(projectID uuid.UUID) (*KeywordsResponse, error) {
	settings, err := s.settings.GetByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSiteSettingsNotFound
		}
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}
	return &KeywordsResponse{Keywords: keywordSlice(settings.SiteKeywords)}, nil
}

// UpdateKeywords replaces the keyword list. Every entry must be a non-empty
// string after trimming; entries are stored trimmed. The settings row is
// created when absent.
func (s *SiteSettingsService) UpdateKeywords(projectID uuid.UUID, req *UpdateKeywordsRequest) (*KeywordsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	cleaned := make([]string, 0, len(req.Keywords))
	for _, kw := range req.Keywords {
		trimmed := strings.TrimSpace(kw)
		if trimmed == "" {
			return nil, apperrors.ErrInvalidKeywords
		}
		cleaned = append(cleaned, trimmed)
	}

	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	row := &models.SiteSettings{ProjectID: projectID, SiteKeywords: cleaned}
	settings, err := s.settings.Upsert(row, map[string]interface{}{
		"site_keywords": pq.StringArray(cleaned),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update keywords: %w", err)
	}
	return &KeywordsResponse{Keywords: keywordSlice(settings.SiteKeywords)}, nil
}

// GetMetadata returns the public SEO excerpt of a project looked up by slug
func (s *SiteSettingsService) GetMetadata(slug string) (*MetadataResponse, error) {
	project, err := s.projects.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	settings, err := s.settings.GetByProjectID(project.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMetadataNotFound
		}
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	return &MetadataResponse{
		Title:       settings.SiteTitle,
		Description: settings.SiteDescription,
		Keywords:    keywordSlice(settings.SiteKeywords),
		BrandName:   settings.BrandName,
	}, nil
}

// keywordSlice normalizes a stored keyword array to a non-nil slice so it
// serializes as [] rather than null.
func keywordSlice(stored pq.StringArray) []string {
	if stored == nil {
		return []string{}
	}
	return []string(stored)
}
