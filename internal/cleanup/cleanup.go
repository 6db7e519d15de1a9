package cleanup

import (
	"fmt"
	"time"

	"real-estate-marketplace/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service physically removes demo listings that outlived their retention
type Service struct {
	db *gorm.DB
}

// NewService creates a new cleanup service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// PurgeConfig holds configuration for a purge run
type PurgeConfig struct {
	RetentionDays    int  // Days a demo listing is kept before physical deletion
	MaxDeletionCount int  // Maximum number of listings to delete in one run (safety limit)
	DryRun           bool // If true, only log what would be deleted
}

// DefaultPurgeConfig returns default configuration
func DefaultPurgeConfig() PurgeConfig {
	return PurgeConfig{
		RetentionDays:    30,
		MaxDeletionCount: 10000,
		DryRun:           false,
	}
}

// PurgeResult holds the result of a purge run
type PurgeResult struct {
	TargetCount    int       `json:"target_count"`
	DeletedCount   int       `json:"deleted_count"`
	ErrorCount     int       `json:"error_count"`
	DryRun         bool      `json:"dry_run"`
	ExecutedAt     time.Time `json:"executed_at"`
	DeletedIDs     []uint    `json:"deleted_ids"`
	Errors         []string  `json:"errors,omitempty"`
}

// FindExpiredDemoListings finds demo listings older than the retention window
func (s *Service) FindExpiredDemoListings(retentionDays int) ([]models.Property, error) {
	var properties []models.Property

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	err := s.db.Where("is_demo = ? AND created_at < ?", true, cutoff).Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired demo listings: %w", err)
	}

	log.Info().Int("count", len(properties)).Time("cutoff", cutoff).Msg("found expired demo listings")
	return properties, nil
}

// PurgeDemoListings deletes expired demo listings with their child rows,
// one transaction per listing
func (s *Service) PurgeDemoListings(config PurgeConfig) (*PurgeResult, error) {
	result := &PurgeResult{
		DryRun:     config.DryRun,
		ExecutedAt: time.Now(),
	}

	expired, err := s.FindExpiredDemoListings(config.RetentionDays)
	if err != nil {
		return nil, err
	}

	result.TargetCount = len(expired)
	if result.TargetCount == 0 {
		return result, nil
	}

	if result.TargetCount > config.MaxDeletionCount {
		return nil, fmt.Errorf("safety check failed: %d listings exceed max deletion limit of %d",
			result.TargetCount, config.MaxDeletionCount)
	}

	for _, prop := range expired {
		if config.DryRun {
			log.Info().Uint("property_id", prop.ID).Int("external_id", prop.ExternalID).
				Msg("dry-run: would delete demo listing")
			result.DeletedIDs = append(result.DeletedIDs, prop.ID)
			result.DeletedCount++
			continue
		}

		if err := s.purgeOne(prop); err != nil {
			log.Error().Uint("property_id", prop.ID).Err(err).Msg("failed to purge demo listing")
			result.Errors = append(result.Errors, fmt.Sprintf("property %d: %v", prop.ID, err))
			result.ErrorCount++
			continue
		}

		result.DeletedIDs = append(result.DeletedIDs, prop.ID)
		result.DeletedCount++
	}

	log.Info().Int("deleted", result.DeletedCount).Int("target", result.TargetCount).
		Int("errors", result.ErrorCount).Bool("dry_run", config.DryRun).Msg("purge completed")

	return result, nil
}

func (s *Service) purgeOne(prop models.Property) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		purgeLog := models.PurgeLog{
			PropertyID: prop.ID,
			ExternalID: prop.ExternalID,
			Address:    prop.Address,
			Reason:     models.PurgeReasonDemoExpired,
		}
		if err := tx.Create(&purgeLog).Error; err != nil {
			return err
		}

		owned := []interface{}{
			&models.GalleryImage{},
			&models.ParkFeature{},
			&models.Special{},
			&models.Room{},
			&models.KitchenFeature{},
			&models.CommunityFeature{},
			&models.NearbySchool{},
			&models.PriceChange{},
		}
		for _, m := range owned {
			if err := tx.Where("property_id = ?", prop.ID).Delete(m).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&prop).Error
	})
}

// GetPurgeStats returns statistics about purged listings
func (s *Service) GetPurgeStats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalPurged int64
	if err := s.db.Model(&models.PurgeLog{}).Count(&totalPurged).Error; err != nil {
		return nil, err
	}
	stats["total_purged"] = totalPurged

	var recentPurged int64
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	if err := s.db.Model(&models.PurgeLog{}).
		Where("purged_at >= ?", thirtyDaysAgo).
		Count(&recentPurged).Error; err != nil {
		return nil, err
	}
	stats["purged_last_30_days"] = recentPurged

	var currentDemo int64
	if err := s.db.Model(&models.Property{}).
		Where("is_demo = ?", true).
		Count(&currentDemo).Error; err != nil {
		return nil, err
	}
	stats["current_demo_listings"] = currentDemo

	return stats, nil
}

// GetRecentPurgeLogs returns recent purge log entries
func (s *Service) GetRecentPurgeLogs(limit int) ([]models.PurgeLog, error) {
	var logs []models.PurgeLog
	err := s.db.Order("purged_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
