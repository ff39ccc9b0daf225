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

// ProjectService handles business logic for the project content graph
type ProjectService struct {
	repo      *repository.ProjectRepository
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository, validator *validator.Validate) *ProjectService {
	return &ProjectService{repo: repo, validator: validator}
}

// SectionItemInput is a nested service or why-us feature block
type SectionItemInput struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SiteSettingsInput is the nested site settings block of a create request
type SiteSettingsInput struct {
	SiteTitle       string   `json:"siteTitle"`
	SiteDescription string   `json:"siteDescription"`
	SiteKeywords    []string `json:"siteKeywords"`
	Phone           string   `json:"phone"`
	Whatsapp        string   `json:"whatsapp"`
	Email           string   `json:"email"`
	Address         string   `json:"address"`
	BrandName       string   `json:"brandName"`
}

// HeroSectionInput is the nested hero block of a create request
type HeroSectionInput struct {
	Headline          string `json:"headline"`
	HeadlineHighlight string `json:"headlineHighlight"`
	Subheadline       string `json:"subheadline"`
	PrimaryCtaText    string `json:"primaryCtaText"`
	PrimaryCtaLink    string `json:"primaryCtaLink"`
	SecondaryCtaText  string `json:"secondaryCtaText"`
	SecondaryCtaLink  string `json:"secondaryCtaLink"`
	BackgroundImage   string `json:"backgroundImage"`
	IsActive          *bool  `json:"isActive"`
}

// AboutSectionInput is the nested about block of a create request
type AboutSectionInput struct {
	Label        string  `json:"label"`
	Title        string  `json:"title"`
	Description1 string  `json:"description1"`
	Image        *string `json:"image"`
}

// ServicesSectionInput is the nested services block of a create request
type ServicesSectionInput struct {
	Label       string             `json:"label"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Services    []SectionItemInput `json:"services"`
}

// WhyUsSectionInput is the nested why-us block of a create request
type WhyUsSectionInput struct {
	Label       string             `json:"label"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Features    []SectionItemInput `json:"features"`
}

// ContactSectionInput is the nested contact block of a create request
type ContactSectionInput struct {
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GalleryImageInput is a nested gallery image of a create request
type GalleryImageInput struct {
	URL string  `json:"url" validate:"required"`
	Alt *string `json:"alt"`
}

// CreateProjectRequest represents the request to create a project together
// with any of its nested blocks. Blocks left nil are simply not created.
type CreateProjectRequest struct {
	Slug            string                `json:"projectId" validate:"required,min=1,max=100"`
	Name            string                `json:"name" validate:"required,min=1,max=200"`
	Description     string                `json:"description" validate:"required"`
	IsActive        *bool                 `json:"isActive"`
	SiteSettings    *SiteSettingsInput    `json:"siteSettings"`
	HeroSection     *HeroSectionInput     `json:"heroSection"`
	AboutSection    *AboutSectionInput    `json:"aboutSection"`
	ServicesSection *ServicesSectionInput `json:"servicesSection"`
	WhyUsSection    *WhyUsSectionInput    `json:"whyUsSection"`
	ContactSection  *ContactSectionInput  `json:"contactSection"`
	GalleryImages   []GalleryImageInput   `json:"galleryImages"`
}

// Create creates a project and all nested blocks present in the request as
// one atomic write. A losing race on the slug surfaces as a conflict.
func (s *ProjectService) Create(req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Check the slug is absent before writing; the unique index is the
	// final arbiter under concurrency.
	existing, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing project: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProjectExists
	}

	project := buildProjectTree(req)
	if err := s.repo.CreateTree(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrProjectExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	stored, err := s.repo.GetWithTree(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created project: %w", err)
	}
	return stored, nil
}

func buildProjectTree(req *CreateProjectRequest) *models.Project {
	project := &models.Project{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if in := req.SiteSettings; in != nil {
		project.SiteSettings = &models.SiteSettings{
			SiteTitle:       in.SiteTitle,
			SiteDescription: in.SiteDescription,
			SiteKeywords:    in.SiteKeywords,
			Phone:           in.Phone,
			Whatsapp:        in.Whatsapp,
			Email:           in.Email,
			Address:         in.Address,
			BrandName:       in.BrandName,
		}
	}
	if in := req.HeroSection; in != nil {
		hero := &models.HeroSection{
			Headline:          in.Headline,
			HeadlineHighlight: in.HeadlineHighlight,
			Subheadline:       in.Subheadline,
			PrimaryCtaText:    in.PrimaryCtaText,
			PrimaryCtaLink:    in.PrimaryCtaLink,
			SecondaryCtaText:  in.SecondaryCtaText,
			SecondaryCtaLink:  in.SecondaryCtaLink,
			BackgroundImage:   in.BackgroundImage,
			IsActive:          true,
		}
		if in.IsActive != nil {
			hero.IsActive = *in.IsActive
		}
		project.HeroSection = hero
	}
	if in := req.AboutSection; in != nil {
		project.AboutSection = &models.AboutSection{
			Label:        in.Label,
			Title:        in.Title,
			Description1: in.Description1,
			Image:        in.Image,
		}
	}
	if in := req.ServicesSection; in != nil {
		section := &models.ServicesSection{
			Label:       in.Label,
			Title:       in.Title,
			Description: in.Description,
		}
		for _, item := range in.Services {
			section.Services = append(section.Services, models.Service{
				Icon:        item.Icon,
				Title:       item.Title,
				Description: item.Description,
			})
		}
		project.ServicesSection = section
	}
	if in := req.WhyUsSection; in != nil {
		section := &models.WhyUsSection{
			Label:       in.Label,
			Title:       in.Title,
			Description: in.Description,
		}
		for _, item := range in.Features {
			section.Features = append(section.Features, models.WhyUsFeature{
				Icon:        item.Icon,
				Title:       item.Title,
				Description: item.Description,
			})
		}
		project.WhyUsSection = section
	}
	if in := req.ContactSection; in != nil {
		project.ContactSection = &models.ContactSection{
			Label:       in.Label,
			Title:       in.Title,
			Description: in.Description,
		}
	}
	for _, in := range req.GalleryImages {
		project.GalleryImages = append(project.GalleryImages, models.GalleryImage{
			URL: in.URL,
			Alt: in.Alt,
		})
	}

	return project
}

// UpdateMainDataRequest is the combined dashboard update of project name,
// site settings and hero headline. Nil fields keep their prior value.
type UpdateMainDataRequest struct {
	ProjectName        string  `json:"projectName" validate:"required"`
	ProjectDescription string  `json:"projectDescription" validate:"required"`
	BrandName          *string `json:"brandName"`
	SiteTitle          *string `json:"siteTitle"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	Whatsapp           *string `json:"whatsapp"`
	Address            *string `json:"address"`
	HeroHeadline       *string `json:"heroHeadline"`
	HeroSubheadline    *string `json:"heroSubheadline"`
}

// MainDataResponse is the dashboard excerpt of a project
type MainDataResponse struct {
	Project struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
	} `json:"project"`
	SiteSettings *MainDataSiteSettings `json:"siteSettings"`
	HeroSection  *MainDataHeroSection  `json:"heroSection"`
}

// MainDataSiteSettings is the settings excerpt of the dashboard view
type MainDataSiteSettings struct {
	SiteTitle string `json:"siteTitle"`
	BrandName string `json:"brandName"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// MainDataHeroSection is the hero excerpt of the dashboard view
type MainDataHeroSection struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
}

// GetMainData returns the dashboard excerpt of a project
func (s *ProjectService) GetMainData(id uuid.UUID) (*MainDataResponse, error) {
	project, err := s.repo.GetMainData(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return toMainDataResponse(project), nil
}

// UpdateMainData applies the combined project + site settings + hero update
// as one transactional batch: either all three commit or none do.
func (s *ProjectService) UpdateMainData(id uuid.UUID, req *UpdateMainDataRequest) (*MainDataResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.repo.GetMainData(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	settings := map[string]interface{}{}
	setIfPresent(settings, "brand_name", req.BrandName)
	setIfPresent(settings, "site_title", req.SiteTitle)
	setIfPresent(settings, "email", req.Email)
	setIfPresent(settings, "phone", req.Phone)
	setIfPresent(settings, "whatsapp", req.Whatsapp)
	setIfPresent(settings, "address", req.Address)

	hero := map[string]interface{}{}
	setIfPresent(hero, "headline", req.HeroHeadline)
	setIfPresent(hero, "subheadline", req.HeroSubheadline)

	if err := s.repo.UpdateMainData(id, req.ProjectName, req.ProjectDescription, settings, hero); err != nil {
		return nil, fmt.Errorf("failed to update main data: %w", err)
	}

	project, err := s.repo.GetMainData(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return toMainDataResponse(project), nil
}

func setIfPresent(assign map[string]interface{}, column string, value *string) {
	if value != nil {
		assign[column] = *value
	}
}

func toMainDataResponse(project *models.Project) *MainDataResponse {
	resp := &MainDataResponse{}
	resp.Project.ID = project.ID
	resp.Project.Name = project.Name
	resp.Project.Description = project.Description

	if s := project.SiteSettings; s != nil {
		resp.SiteSettings = &MainDataSiteSettings{
			SiteTitle: s.SiteTitle,
			BrandName: s.BrandName,
			Phone:     s.Phone,
			Whatsapp:  s.Whatsapp,
			Email:     s.Email,
			Address:   s.Address,
		}
	}
	if h := project.HeroSection; h != nil {
		resp.HeroSection = &MainDataHeroSection{
			Headline:    h.Headline,
			Subheadline: h.Subheadline,
		}
	}
	return resp
}
