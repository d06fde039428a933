package models

// Client is a sales lead captured from the public contact form.
// Status is a free-form tag assigned by admins; new submissions start as "new".
type Client struct {
	BaseModel
	Name   string  `gorm:"type:varchar(100);not null" json:"name"`
	Email  string  `gorm:"type:varchar(100);not null" json:"email"`
	Phone  string  `gorm:"type:varchar(30);not null" json:"phone"`
	Zip    string  `gorm:"type:varchar(10);not null" json:"zip"`
	Bill   *string `gorm:"type:varchar(50)" json:"bill"` // self-reported monthly electric bill
	Status string  `gorm:"type:varchar(50);not null;default:'new'" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes"`
}
