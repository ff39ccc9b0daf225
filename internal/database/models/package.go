package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Package is a purchasable offer of a project with an ordered feature list.
type Package struct {
	BaseModel
	ProjectID uuid.UUID      `json:"project_id" gorm:"type:uuid;not null;index"`
	Title     string         `json:"title" gorm:"not null;size:300"`
	Features  pq.StringArray `json:"features" gorm:"type:text[]"`
	Image     string         `json:"image" gorm:"not null;size:500"`
}

// TableName returns the table name for Package
func (Package) TableName() string {
	return "packages"
}
