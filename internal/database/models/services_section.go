package models

import "github.com/google/uuid"

// ServicesSection is the 1:1 services block of a project and the parent of
// its Service rows.
type ServicesSection struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	Label       string    `json:"label" gorm:"size:100"`
	Title       string    `json:"title" gorm:"size:300"`
	Description string    `json:"description" gorm:"type:text"`

	Services []Service `json:"services,omitempty" gorm:"foreignKey:SectionID;references:ID"`
}

// TableName returns the table name for ServicesSection
func (ServicesSection) TableName() string {
	return "services_sections"
}

// Service is a single offering under a project's services section. Its
// ownership chain to the project runs through SectionID.
type Service struct {
	BaseModel
	SectionID   uuid.UUID `json:"section_id" gorm:"type:uuid;not null;index"`
	Icon        string    `json:"icon" gorm:"size:100"`
	Title       string    `json:"title" gorm:"size:300"`
	Description string    `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Service
func (Service) TableName() string {
	return "services"
}
