package testutils

import (
	"time"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenience in tests
type FactorySet struct {
	Project  *ProjectFactory
	Services *ServicesSectionFactory
	WhyUs    *WhyUsSectionFactory
	Gallery  *GalleryImageFactory
	Package  *PackageFactory
	Article  *ArticleFactory
	Admin    *AdminFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:  NewProjectFactory(),
		Services: NewServicesSectionFactory(),
		WhyUs:    NewWhyUsSectionFactory(),
		Gallery:  NewGalleryImageFactory(),
		Package:  NewPackageFactory(),
		Article:  NewArticleFactory(),
		Admin:    NewAdminFactory(),
	}
}

func baseModel() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// staggeredBaseModel offsets CreatedAt so list items have a deterministic
// insertion order in tests.
func staggeredBaseModel(offset time.Duration) models.BaseModel {
	now := time.Now().Add(offset)
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel:   baseModel(),
		Slug:        "test-project-" + uuid.New().String()[:8],
		Name:        "Test Project",
		Description: "A test project",
		IsActive:    true,
	}
}

// WithSlug sets a custom public identifier
func (f *ProjectFactory) WithSlug(slug string) *models.Project {
	p := f.Create()
	p.Slug = slug
	return p
}

// WithSettings attaches a site settings row
func (f *ProjectFactory) WithSettings(p *models.Project) *models.Project {
	p.SiteSettings = &models.SiteSettings{
		BaseModel:       baseModel(),
		SiteTitle:       "Test Site",
		SiteDescription: "Site for testing",
		SiteKeywords:    []string{"coffee", "events"},
		Phone:           "+100000000",
		Whatsapp:        "+100000000",
		Email:           "hello@test.example",
		Address:         "1 Test Street",
		BrandName:       "Test Brand",
	}
	return p
}

// WithHero attaches a hero section
func (f *ProjectFactory) WithHero(p *models.Project) *models.Project {
	p.HeroSection = &models.HeroSection{
		BaseModel:   baseModel(),
		Headline:    "Welcome",
		Subheadline: "To the test project",
		IsActive:    true,
	}
	return p
}

// ServicesSectionFactory provides methods to create test services section data
type ServicesSectionFactory struct{}

// NewServicesSectionFactory creates a new ServicesSectionFactory
func NewServicesSectionFactory() *ServicesSectionFactory {
	return &ServicesSectionFactory{}
}

// Create creates a services section with two items for a project
func (f *ServicesSectionFactory) Create(projectID uuid.UUID) *models.ServicesSection {
	return &models.ServicesSection{
		BaseModel:   baseModel(),
		ProjectID:   projectID,
		Label:       "Services",
		Title:       "What we offer",
		Description: "Service catalog",
		Services: []models.Service{
			{BaseModel: staggeredBaseModel(0), Icon: "coffee", Title: "Coffee corner", Description: "Fresh coffee"},
			{BaseModel: staggeredBaseModel(time.Second), Icon: "cake", Title: "Catering", Description: "Sweets and snacks"},
		},
	}
}

// WhyUsSectionFactory provides methods to create test why-us section data
type WhyUsSectionFactory struct{}

// NewWhyUsSectionFactory creates a new WhyUsSectionFactory
func NewWhyUsSectionFactory() *WhyUsSectionFactory {
	return &WhyUsSectionFactory{}
}

// Create creates a why-us section with two features for a project
func (f *WhyUsSectionFactory) Create(projectID uuid.UUID) *models.WhyUsSection {
	return &models.WhyUsSection{
		BaseModel:   baseModel(),
		ProjectID:   projectID,
		Label:       "Why us",
		Title:       "Why choose us",
		Description: "Reasons",
		Features: []models.WhyUsFeature{
			{BaseModel: staggeredBaseModel(0), Icon: "star", Title: "Experience", Description: "Years of events"},
			{BaseModel: staggeredBaseModel(time.Second), Icon: "clock", Title: "Punctual", Description: "Always on time"},
		},
	}
}

// GalleryImageFactory provides methods to create test gallery image data
type GalleryImageFactory struct{}

// NewGalleryImageFactory creates a new GalleryImageFactory
func NewGalleryImageFactory() *GalleryImageFactory {
	return &GalleryImageFactory{}
}

// Create creates a gallery image for a project
func (f *GalleryImageFactory) Create(projectID uuid.UUID) *models.GalleryImage {
	alt := "test image"
	return &models.GalleryImage{
		BaseModel: baseModel(),
		ProjectID: projectID,
		URL:       "https://res.cloudinary.com/demo/image/upload/v1700000000/projects/test/gallery/sample.jpg",
		Alt:       &alt,
	}
}

// PackageFactory provides methods to create test package data
type PackageFactory struct{}

// NewPackageFactory creates a new PackageFactory
func NewPackageFactory() *PackageFactory {
	return &PackageFactory{}
}

// Create creates a package for a project
func (f *PackageFactory) Create(projectID uuid.UUID) *models.Package {
	return &models.Package{
		BaseModel: baseModel(),
		ProjectID: projectID,
		Title:     "Basic Package",
		Features:  []string{"coffee cart", "two baristas"},
		Image:     "https://res.cloudinary.com/demo/image/upload/v1700000000/projects/test/uploads/pkg.jpg",
	}
}

// ArticleFactory provides methods to create test article data
type ArticleFactory struct{}

// NewArticleFactory creates a new ArticleFactory
func NewArticleFactory() *ArticleFactory {
	return &ArticleFactory{}
}

// Create creates an article for a project. Titles must be globally unique,
// so each gets a random suffix.
func (f *ArticleFactory) Create(projectID uuid.UUID) *models.Article {
	return &models.Article{
		BaseModel: baseModel(),
		ProjectID: projectID,
		Title:     "Test Article " + uuid.New().String()[:8],
		Content:   "Article body",
	}
}

// AdminFactory provides methods to create test admin data
type AdminFactory struct{}

// NewAdminFactory creates a new AdminFactory
func NewAdminFactory() *AdminFactory {
	return &AdminFactory{}
}

// Create creates an admin with a pre-hashed password placeholder
func (f *AdminFactory) Create() *models.Admin {
	return &models.Admin{
		BaseModel: baseModel(),
		Name:      "Test Admin",
		Email:     "admin-" + uuid.New().String()[:8] + "@test.example",
		Password:  "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5bGJ8MGpoiZ7tKqJ0O9rRrnOK0Hvqs6",
	}
}
