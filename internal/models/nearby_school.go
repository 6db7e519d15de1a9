package models

import "time"

// NearbySchool is a school in the vicinity of a property
type NearbySchool struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Distance   *float64  `gorm:"type:decimal(6,2)" json:"distance,omitempty"`
	Rating     *float64  `gorm:"type:decimal(3,1)" json:"rating,omitempty"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (NearbySchool) TableName() string {
	return "nearby_schools"
}
