package repository

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SiteSettingsRepository handles database operations for site settings
type SiteSettingsRepository struct {
	db *gorm.DB
}

// NewSiteSettingsRepository creates a new site settings repository
func NewSiteSettingsRepository(db *gorm.DB) *SiteSettingsRepository {
	return &SiteSettingsRepository{db: db}
}

// GetByProjectID retrieves the settings row for a project
func (r *SiteSettingsRepository) GetByProjectID(projectID uuid.UUID) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert creates the settings row if absent, otherwise applies only the
// supplied assignments. Returns the row as stored.
func (r *SiteSettingsRepository) Upsert(row *models.SiteSettings, assign map[string]interface{}) (*models.SiteSettings, error) {
	if err := upsertByProject(r.db, row, assign); err != nil {
		return nil, err
	}
	return r.GetByProjectID(row.ProjectID)
}

// UpdateKeywords replaces the keyword list on an existing settings row.
func (r *SiteSettingsRepository) UpdateKeywords(projectID uuid.UUID, keywords []string) (*models.SiteSettings, error) {
	err := r.db.Model(&models.SiteSettings{}).
		Where("project_id = ?", projectID).
		Update("site_keywords", pq.StringArray(keywords)).Error
	if err != nil {
		return nil, err
	}
	return r.GetByProjectID(projectID)
}
