package models

import "github.com/google/uuid"

// ContactSection is the 1:1 contact content block of a project.
type ContactSection struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	Label       string    `json:"label" gorm:"size:100"`
	Title       string    `json:"title" gorm:"size:300"`
	Description string    `json:"description" gorm:"type:text"`
}

// TableName returns the table name for ContactSection
func (ContactSection) TableName() string {
	return "contact_sections"
}
