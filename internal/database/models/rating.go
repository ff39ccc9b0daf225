package models

import "github.com/google/uuid"

// Rating is a single append-only star rating for a project. Rows are never
// updated or deleted; the average is always derived at read time.
type Rating struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Stars     int       `json:"stars" gorm:"not null" validate:"required,min=1,max=5"`
}

// TableName returns the table name for Rating
func (Rating) TableName() string {
	return "ratings"
}
