package models

import "time"

// Company represents the brokerage or owner organization behind a listing
type Company struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(255);not null;index" json:"name"`
	LogoImg string `gorm:"type:text" json:"logo_img,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Company) TableName() string {
	return "companies"
}
