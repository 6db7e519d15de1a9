package models

import "time"

// PriceChange records a listing price moving between two imports of the
// same external identifier. Written inside the import transaction.
type PriceChange struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	OldPrice   *float64  `gorm:"type:decimal(14,2)" json:"old_price,omitempty"`
	NewPrice   *float64  `gorm:"type:decimal(14,2)" json:"new_price,omitempty"`
	Magnitude  *float64  `gorm:"type:decimal(14,2)" json:"magnitude,omitempty"`
	DetectedAt time.Time `gorm:"not null;autoCreateTime;index" json:"detected_at"`
}

// TableName specifies the table name
func (PriceChange) TableName() string {
	return "price_changes"
}
