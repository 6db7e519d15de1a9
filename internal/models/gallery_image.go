package models

import "time"

// GalleryImage is one image in a property's gallery
type GalleryImage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	SortOrder  int       `gorm:"not null;default:0;index" json:"sort_order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (GalleryImage) TableName() string {
	return "gallery_images"
}
