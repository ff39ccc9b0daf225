package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SiteSettings holds the SEO and contact configuration for a project.
// At most one row per project; the unique index on project_id is what
// decides the winner when two creates race.
type SiteSettings struct {
	BaseModel
	ProjectID       uuid.UUID      `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	SiteTitle       string         `json:"site_title" gorm:"size:200"`
	SiteDescription string         `json:"site_description" gorm:"type:text"`
	SiteKeywords    pq.StringArray `json:"site_keywords" gorm:"type:text[]"`
	Phone           string         `json:"phone" gorm:"size:50"`
	Whatsapp        string         `json:"whatsapp" gorm:"size:50"`
	Email           string         `json:"email" gorm:"size:200"`
	Address         string         `json:"address" gorm:"size:300"`
	BrandName       string         `json:"brand_name" gorm:"size:200"`
}

// TableName returns the table name for SiteSettings
func (SiteSettings) TableName() string {
	return "site_settings"
}
