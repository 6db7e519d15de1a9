package models

import "time"

// PurgeLog records a listing that was physically deleted by cleanup
type PurgeLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	ExternalID int       `gorm:"not null" json:"external_id"`
	Address    string    `gorm:"type:text" json:"address"`
	Reason     string    `gorm:"type:varchar(50);not null" json:"reason"`
	PurgedAt   time.Time `gorm:"not null;autoCreateTime;index" json:"purged_at"`
}

// TableName specifies the table name
func (PurgeLog) TableName() string {
	return "purge_logs"
}

// PurgeReason constants
const (
	PurgeReasonDemoExpired = "demo_expired"
	PurgeReasonManual      = "manual_deletion"
)
