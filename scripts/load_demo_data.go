package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/config"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures mirroring the YAML layout under scripts/data.
// Each file holds one or more complete project trees.
type ProjectData struct {
	ProjectID   string         `yaml:"project_id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Settings    *SettingsData  `yaml:"settings,omitempty"`
	Hero        *HeroData      `yaml:"hero,omitempty"`
	About       *AboutData     `yaml:"about,omitempty"`
	Services    *SectionData   `yaml:"services,omitempty"`
	WhyUs       *SectionData   `yaml:"why_us,omitempty"`
	Contact     *ContactData   `yaml:"contact,omitempty"`
	Gallery     []ImageData    `yaml:"gallery,omitempty"`
	Packages    []PackageData  `yaml:"packages,omitempty"`
	Articles    []ArticleData  `yaml:"articles,omitempty"`
}

type SettingsData struct {
	BrandName       string   `yaml:"brand_name"`
	SiteTitle       string   `yaml:"site_title"`
	SiteDescription string   `yaml:"site_description,omitempty"`
	SiteKeywords    []string `yaml:"site_keywords,omitempty"`
	Email           string   `yaml:"email,omitempty"`
	Phone           string   `yaml:"phone,omitempty"`
	Whatsapp        string   `yaml:"whatsapp,omitempty"`
	Address         string   `yaml:"address,omitempty"`
}

type HeroData struct {
	Headline          string `yaml:"headline"`
	HeadlineHighlight string `yaml:"headline_highlight,omitempty"`
	Subheadline       string `yaml:"subheadline,omitempty"`
}

type AboutData struct {
	Label        string  `yaml:"label,omitempty"`
	Title        string  `yaml:"title"`
	Description1 string  `yaml:"description1,omitempty"`
	Image        *string `yaml:"image,omitempty"`
}

type SectionData struct {
	Label       string     `yaml:"label,omitempty"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	Items       []ItemData `yaml:"items,omitempty"`
}

type ItemData struct {
	Icon        string `yaml:"icon,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

type ContactData struct {
	Label       string `yaml:"label,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

type ImageData struct {
	URL string  `yaml:"url"`
	Alt *string `yaml:"alt,omitempty"`
}

type PackageData struct {
	Title    string   `yaml:"title"`
	Features []string `yaml:"features,omitempty"`
	Image    string   `yaml:"image,omitempty"`
}

type ArticleData struct {
	Title      string  `yaml:"title"`
	Content    string  `yaml:"content"`
	CoverImage *string `yaml:"cover_image,omitempty"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadProjectsFromYAML(db, dataDir); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("✅ Demo data loaded successfully!")
}

// connectWithRetry waits for Postgres readiness, for dockerized startup.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadProjectsFromYAML(db *gorm.DB, dataDir string) error {
	projects, err := loadProjectFiles(dataDir)
	if err != nil {
		return err
	}

	repo := repository.NewProjectRepository(db)
	created := 0
	for _, data := range projects {
		ok, err := createProject(db, repo, data)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", data.ProjectID, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", created, len(projects))
	return nil
}

func loadProjectFiles(dataDir string) ([]ProjectData, error) {
	var projects []ProjectData
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var file ProjectsFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		projects = append(projects, file.Projects...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// createProject inserts one project tree. Existing projects are left
// untouched so the loader stays idempotent.
func createProject(db *gorm.DB, repo *repository.ProjectRepository, data ProjectData) (bool, error) {
	if data.ProjectID == "" || data.Name == "" {
		return false, fmt.Errorf("project_id and name are required")
	}

	if _, err := repo.GetBySlug(data.ProjectID); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	project := &models.Project{
		Slug:        data.ProjectID,
		Name:        data.Name,
		Description: data.Description,
	}

	if s := data.Settings; s != nil {
		project.SiteSettings = &models.SiteSettings{
			BrandName:       s.BrandName,
			SiteTitle:       s.SiteTitle,
			SiteDescription: s.SiteDescription,
			SiteKeywords:    pq.StringArray(s.SiteKeywords),
			Email:           s.Email,
			Phone:           s.Phone,
			Whatsapp:        s.Whatsapp,
			Address:         s.Address,
		}
	}
	if h := data.Hero; h != nil {
		project.HeroSection = &models.HeroSection{
			Headline:          h.Headline,
			HeadlineHighlight: h.HeadlineHighlight,
			Subheadline:       h.Subheadline,
		}
	}
	if a := data.About; a != nil {
		project.AboutSection = &models.AboutSection{
			Label:        a.Label,
			Title:        a.Title,
			Description1: a.Description1,
			Image:        a.Image,
		}
	}
	if s := data.Services; s != nil {
		section := &models.ServicesSection{
			Label:       s.Label,
			Title:       s.Title,
			Description: s.Description,
		}
		for _, item := range s.Items {
			section.Services = append(section.Services, models.Service{
				Icon:        item.Icon,
				Title:       item.Title,
				Description: item.Description,
			})
		}
		project.ServicesSection = section
	}
	if w := data.WhyUs; w != nil {
		section := &models.WhyUsSection{
			Label:       w.Label,
			Title:       w.Title,
			Description: w.Description,
		}
		for _, item := range w.Items {
			section.Features = append(section.Features, models.WhyUsFeature{
				Icon:        item.Icon,
				Title:       item.Title,
				Description: item.Description,
			})
		}
		project.WhyUsSection = section
	}
	if c := data.Contact; c != nil {
		project.ContactSection = &models.ContactSection{
			Label:       c.Label,
			Title:       c.Title,
			Description: c.Description,
		}
	}
	for _, img := range data.Gallery {
		project.GalleryImages = append(project.GalleryImages, models.GalleryImage{
			URL: img.URL,
			Alt: img.Alt,
		})
	}
	for _, pkg := range data.Packages {
		project.Packages = append(project.Packages, models.Package{
			Title:    pkg.Title,
			Features: pq.StringArray(pkg.Features),
			Image:    pkg.Image,
		})
	}

	if err := repo.CreateTree(project); err != nil {
		return false, err
	}

	// Articles live outside the create-tree write; titles are unique
	// across all projects, so a clash only skips the one article.
	for _, art := range data.Articles {
		article := &models.Article{
			ProjectID:  project.ID,
			Title:      art.Title,
			Content:    art.Content,
			CoverImage: art.CoverImage,
		}
		if err := db.Create(article).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Printf("⚠️  Warning: article title already taken: %s", art.Title)
				continue
			}
			return false, fmt.Errorf("create article %s: %w", art.Title, err)
		}
	}

	return true, nil
}
