package models

// Admin is a dashboard operator account. Password holds the bcrypt hash and
// is never serialized.
type Admin struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:100" validate:"required"`
	Email    string `json:"email" gorm:"not null;uniqueIndex;size:200" validate:"required,email"`
	Password string `json:"-" gorm:"not null;size:200"`
}

// TableName returns the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
