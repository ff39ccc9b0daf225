package models

// Project is a tenant: the root of one content graph, identified externally
// by a stable slug. The slug is immutable once set; children reference the
// internal UUID, never the slug.
type Project struct {
	BaseModel
	Slug        string `json:"project_id" gorm:"column:project_id;not null;uniqueIndex;size:100" validate:"required,min=1,max=100"`
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string `json:"description" gorm:"type:text" validate:"required"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	SiteSettings    *SiteSettings    `json:"site_settings,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	HeroSection     *HeroSection     `json:"hero_section,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	AboutSection    *AboutSection    `json:"about_section,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	ServicesSection *ServicesSection `json:"services_section,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	WhyUsSection    *WhyUsSection    `json:"why_us_section,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	ContactSection  *ContactSection  `json:"contact_section,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	GalleryImages   []GalleryImage   `json:"gallery_images,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	Packages        []Package        `json:"packages,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	Ratings         []Rating         `json:"ratings,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	Articles        []Article        `json:"articles,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
