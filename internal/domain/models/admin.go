package models

// Admin represents an internal operator with access to the management API.
type Admin struct {
	BaseModel
	Username string `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // bcrypt hash, never exposed in JSON
}
