package models

import "github.com/google/uuid"

// AboutSection is the 1:1 about content block of a project.
// Image stays nullable: callers distinguish "no image" from an empty URL.
type AboutSection struct {
	BaseModel
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	Label        string    `json:"label" gorm:"size:100"`
	Title        string    `json:"title" gorm:"size:300"`
	Description1 string    `json:"description1" gorm:"type:text"`
	Image        *string   `json:"image" gorm:"size:500"`
}

// TableName returns the table name for AboutSection
func (AboutSection) TableName() string {
	return "about_sections"
}
