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

// PageService assembles the denormalized public page for a project
type PageService struct {
	projects *repository.ProjectRepository
}

// NewPageService creates a new page service
func NewPageService(projects *repository.ProjectRepository) *PageService {
	return &PageService{projects: projects}
}

// PublicPage is the full public read model of a project. Missing sections
// render as null; list sections render as empty arrays.
type PublicPage struct {
	Header   PageHeader    `json:"header"`
	Hero     *PageHero     `json:"hero"`
	About    *PageAbout    `json:"about"`
	Services *PageServices `json:"services"`
	WhyUs    *PageWhyUs    `json:"whyUs"`
	Contact  *PageContact  `json:"contact"`
	Gallery  []PageImage   `json:"gallery"`
	Packages []PagePackage `json:"packages"`
	Rating   PageRating    `json:"rating"`
	Footer   PageFooter    `json:"footer"`
	// Keywords is a pointer so the key is present (even when empty) on the
	// with-keywords variant and absent otherwise.
	Keywords *[]string `json:"keywords,omitempty"`
}

// PageHeader is the site header block
type PageHeader struct {
	BrandName string `json:"brandName"`
}

// PageHero is the hero block of the public page
type PageHero struct {
	Headline          string `json:"headline"`
	HeadlineHighlight string `json:"headlineHighlight"`
	Subheadline       string `json:"subheadline"`
	WhatsApp          string `json:"whatsApp"`
}

// PageAbout is the about block of the public page
type PageAbout struct {
	Label        string  `json:"label"`
	Title        string  `json:"title"`
	Description1 string  `json:"description1"`
	Image        *string `json:"image"`
}

// PageItem is one service or why-us feature entry
type PageItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PageServices is the services block of the public page
type PageServices struct {
	Label       string     `json:"label"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Items       []PageItem `json:"items"`
}

// PageWhyUs is the why-us block of the public page
type PageWhyUs struct {
	Label       string     `json:"label"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Features    []PageItem `json:"features"`
}

// PageContact is the contact block of the public page
type PageContact struct {
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PageImage is one gallery entry
type PageImage struct {
	URL string  `json:"url"`
	Alt *string `json:"alt"`
}

// PagePackage is one package entry
type PagePackage struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Features []string  `json:"features"`
	Image    string    `json:"image"`
}

// PageRating is the rating aggregate shown publicly
type PageRating struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

// PageFooter is the site footer block
type PageFooter struct {
	BrandName string `json:"brandName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// Get assembles the public page for a project looked up by slug
func (s *PageService) Get(slug string, includeKeywords bool) (*PublicPage, error) {
	project, err := s.projects.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	tree, err := s.projects.GetWithTree(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project content: %w", err)
	}
	return BuildPublicPage(tree, includeKeywords), nil
}

// BuildPublicPage flattens a loaded project tree into the public page
// shape. It is a pure transformation of the already-loaded rows.
func BuildPublicPage(project *models.Project, includeKeywords bool) *PublicPage {
	page := &PublicPage{
		Gallery:  []PageImage{},
		Packages: []PagePackage{},
	}

	settings := project.SiteSettings
	if settings != nil {
		page.Header.BrandName = settings.BrandName
		page.Footer = PageFooter{
			BrandName: settings.BrandName,
			Phone:     settings.Phone,
			Email:     settings.Email,
			Address:   settings.Address,
		}
	}

	if h := project.HeroSection; h != nil {
		hero := &PageHero{
			Headline:          h.Headline,
			HeadlineHighlight: h.HeadlineHighlight,
			Subheadline:       h.Subheadline,
		}
		if settings != nil {
			hero.WhatsApp = settings.Whatsapp
		}
		page.Hero = hero
	}

	if a := project.AboutSection; a != nil {
		page.About = &PageAbout{
			Label:        a.Label,
			Title:        a.Title,
			Description1: a.Description1,
			Image:        a.Image,
		}
	}

	if sec := project.ServicesSection; sec != nil {
		block := &PageServices{
			Label:       sec.Label,
			Title:       sec.Title,
			Description: sec.Description,
			Items:       []PageItem{},
		}
		for _, item := range sec.Services {
			block.Items = append(block.Items, PageItem{
				Icon:        item.Icon,
				Title:       item.Title,
				Description: item.Description,
			})
		}
		page.Services = block
	}

	if sec := project.WhyUsSection; sec != nil {
		block := &PageWhyUs{
			Label:       sec.Label,
			Title:       sec.Title,
			Description: sec.Description,
			Features:    []PageItem{},
		}
		for _, item := range sec.Features {
			block.Features = append(block.Features, PageItem{
				Icon:        item.Icon,
				Title:       item.Title,
				Description: item.Description,
			})
		}
		page.WhyUs = block
	}

	if c := project.ContactSection; c != nil {
		page.Contact = &PageContact{
			Label:       c.Label,
			Title:       c.Title,
			Description: c.Description,
		}
	}

	for _, img := range project.GalleryImages {
		page.Gallery = append(page.Gallery, PageImage{URL: img.URL, Alt: img.Alt})
	}

	for _, pkg := range project.Packages {
		features := []string(pkg.Features)
		if features == nil {
			features = []string{}
		}
		page.Packages = append(page.Packages, PagePackage{
			ID:       pkg.ID,
			Title:    pkg.Title,
			Features: features,
			Image:    pkg.Image,
		})
	}

	stats := ComputeRatingStats(project.Ratings)
	page.Rating = PageRating{
		AverageRating: stats.AverageRating,
		TotalRatings:  stats.TotalRatings,
	}

	if includeKeywords {
		keywords := []string{}
		if settings != nil {
			keywords = keywordSlice(settings.SiteKeywords)
		}
		page.Keywords = &keywords
	}

	return page
}
