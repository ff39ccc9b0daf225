package models

import "github.com/google/uuid"

// HeroSection is the 1:1 hero content block of a project.
type HeroSection struct {
	BaseModel
	ProjectID         uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	Headline          string    `json:"headline" gorm:"size:300"`
	HeadlineHighlight string    `json:"headline_highlight" gorm:"size:300"`
	Subheadline       string    `json:"subheadline" gorm:"type:text"`
	PrimaryCtaText    string    `json:"primary_cta_text" gorm:"size:100"`
	PrimaryCtaLink    string    `json:"primary_cta_link" gorm:"size:300"`
	SecondaryCtaText  string    `json:"secondary_cta_text" gorm:"size:100"`
	SecondaryCtaLink  string    `json:"secondary_cta_link" gorm:"size:300"`
	BackgroundImage   string    `json:"background_image" gorm:"size:500"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for HeroSection
func (HeroSection) TableName() string {
	return "hero_sections"
}
