package models

import "github.com/google/uuid"

// GalleryImage is one image in a project's gallery. The URL points at the
// object-storage asset; deleting the row also releases that asset
// (best effort).
type GalleryImage struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"not null;size:500"`
	Alt       *string   `json:"alt" gorm:"size:300"`
}

// TableName returns the table name for GalleryImage
func (GalleryImage) TableName() string {
	return "gallery_images"
}
