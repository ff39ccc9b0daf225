package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateTree creates a project together with every nested child attached to
// it, in a single transaction. Blocks the caller left nil are not created.
// Any failure rolls the whole graph back.
func (r *ProjectRepository) CreateTree(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(project).Error
	})
}

// GetByID retrieves a project by its internal UUID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetBySlug retrieves a project by its external slug
func (r *ProjectRepository) GetBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "project_id = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithTree loads a project with every 1:1 section, their children,
// gallery images, packages and raw ratings, preserving insertion order on
// the 1:many lists.
func (r *ProjectRepository) GetWithTree(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("SiteSettings").
		Preload("HeroSection").
		Preload("AboutSection").
		Preload("ServicesSection").
		Preload("ServicesSection.Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.created_at ASC")
		}).
		Preload("WhyUsSection").
		Preload("WhyUsSection.Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("why_us_features.created_at ASC")
		}).
		Preload("ContactSection").
		Preload("GalleryImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("gallery_images.created_at ASC")
		}).
		Preload("Packages", func(db *gorm.DB) *gorm.DB {
			return db.Order("packages.created_at ASC")
		}).
		Preload("Ratings").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetMainData loads a project with only its site settings and hero section.
func (r *ProjectRepository) GetMainData(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("SiteSettings").
		Preload("HeroSection").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateMainData applies the combined project + site settings + hero section
// update as one all-or-nothing batch. The three statements commit together
// or not at all; partial application would corrupt the dashboard view.
func (r *ProjectRepository) UpdateMainData(id uuid.UUID, name, description string, settings map[string]interface{}, hero map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"name": name, "description": description}).Error; err != nil {
			return err
		}

		if len(settings) > 0 {
			if err := tx.Model(&models.SiteSettings{}).
				Where("project_id = ?", id).
				Updates(settings).Error; err != nil {
				return err
			}
		}

		if len(hero) == 0 {
			return nil
		}
		row := &models.HeroSection{ProjectID: id}
		for col, val := range hero {
			switch col {
			case "headline":
				row.Headline = val.(string)
			case "subheadline":
				row.Subheadline = val.(string)
			}
		}
		return upsertByProject(tx, row, hero)
	})
}

// upsertByProject performs the 1:1 section upsert as one conditional write:
// insert the row, and on a project_id conflict apply only the supplied
// assignments. Unsupplied columns keep their prior value.
func upsertByProject(db *gorm.DB, row interface{}, assign map[string]interface{}) error {
	onConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}},
	}
	if len(assign) > 0 {
		onConflict.DoUpdates = clause.Assignments(assign)
	} else {
		onConflict.DoNothing = true
	}
	return db.Clauses(onConflict).Create(row).Error
}
