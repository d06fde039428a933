package models

// Estimate is a cost/savings projection prepared by an admin for a client.
// Every estimate belongs to exactly one client; deleting the client removes
// its estimates (ON DELETE CASCADE).
type Estimate struct {
	BaseModel
	ClientID         uint    `gorm:"not null;index" json:"client_id"`
	Client           *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	SystemSize       *string `gorm:"type:varchar(50)" json:"system_size"`
	PanelCount       *string `gorm:"type:varchar(50)" json:"panel_count"`
	AnnualProduction *string `gorm:"type:varchar(50)" json:"annual_production"`
	EstimatedSavings *string `gorm:"type:varchar(50)" json:"estimated_savings"`
	Incentives       *string `gorm:"type:varchar(100)" json:"incentives"`
	Notes            *string `gorm:"type:text" json:"notes"`
}
