package models

import "github.com/google/uuid"

// Article is a blog entry of a project. The title is unique across the
// whole store, not per project; articles are also looked up by title.
type Article struct {
	BaseModel
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Title      string    `json:"title" gorm:"not null;uniqueIndex;size:300"`
	Content    string    `json:"content" gorm:"type:text"`
	CoverImage *string   `json:"cover_image" gorm:"size:500"`
}

// TableName returns the table name for Article
func (Article) TableName() string {
	return "articles"
}
