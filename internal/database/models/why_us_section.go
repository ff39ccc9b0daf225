package models

import "github.com/google/uuid"

// WhyUsSection is the 1:1 why-us block of a project and the parent of its
// WhyUsFeature rows.
type WhyUsSection struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	Label       string    `json:"label" gorm:"size:100"`
	Title       string    `json:"title" gorm:"size:300"`
	Description string    `json:"description" gorm:"type:text"`

	Features []WhyUsFeature `json:"features,omitempty" gorm:"foreignKey:SectionID;references:ID"`
}

// TableName returns the table name for WhyUsSection
func (WhyUsSection) TableName() string {
	return "why_us_sections"
}

// WhyUsFeature is a single selling point under a project's why-us section.
type WhyUsFeature struct {
	BaseModel
	SectionID   uuid.UUID `json:"section_id" gorm:"type:uuid;not null;index"`
	Icon        string    `json:"icon" gorm:"size:100"`
	Title       string    `json:"title" gorm:"size:300"`
	Description string    `json:"description" gorm:"type:text"`
}

// TableName returns the table name for WhyUsFeature
func (WhyUsFeature) TableName() string {
	return "why_us_features"
}
