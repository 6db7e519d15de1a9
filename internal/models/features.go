package models

import "time"

// The label tables below all follow the same shape: one row per label,
// owned by a property, ordered by the position in the imported array.

// ParkFeature is an outdoor/parking feature label for a property
type ParkFeature struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (ParkFeature) TableName() string {
	return "park_features"
}

// Special is a promotional/special-offer label for a property
type Special struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	Label      string    `gorm:"type:varchar(255);not null" json:"label"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Special) TableName() string {
	return "specials"
}

// Room is an interior room label for a property
type Room struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Room) TableName() string {
	return "rooms"
}

// KitchenFeature is a kitchen feature label for a property
type KitchenFeature struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (KitchenFeature) TableName() string {
	return "kitchen_features"
}

// CommunityFeature is a community amenity label for a property
type CommunityFeature struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (CommunityFeature) TableName() string {
	return "community_features"
}
