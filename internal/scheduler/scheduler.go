package scheduler

import (
	"fmt"

	"real-estate-marketplace/internal/cleanup"
	"real-estate-marketplace/internal/config"
	"real-estate-marketplace/internal/database"
	"real-estate-marketplace/internal/search"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the nightly maintenance jobs: full search reindex and
// demo-listing cleanup
type Scheduler struct {
	cron      *cron.Cron
	db        *database.GormDB
	search    *search.SearchClient
	cleanup   *cleanup.Service
	config    *config.Config
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(db *database.GormDB, searchClient *search.SearchClient, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		db:      db,
		search:  searchClient,
		cleanup: cleanup.NewService(db.DB()),
		config:  cfg,
	}
}

// Start registers the enabled jobs and starts the cron loop
func (s *Scheduler) Start() error {
	registered := 0

	if s.config.Scheduler.ReindexEnabled {
		spec := parseDailyRunTime(s.config.Scheduler.ReindexTime, "03:00")
		_, err := s.cron.AddFunc(spec, func() {
			if err := s.RunReindex(); err != nil {
				log.Error().Err(err).Msg("scheduled reindex failed")
			}
		})
		if err != nil {
			return err
		}
		log.Info().Str("time", s.config.Scheduler.ReindexTime).Msg("scheduled nightly reindex")
		registered++
	}

	if s.config.Scheduler.CleanupEnabled {
		spec := parseDailyRunTime(s.config.Scheduler.CleanupTime, "04:00")
		_, err := s.cron.AddFunc(spec, func() {
			if err := s.RunCleanup(); err != nil {
				log.Error().Err(err).Msg("scheduled cleanup failed")
			}
		})
		if err != nil {
			return err
		}
		log.Info().Str("time", s.config.Scheduler.CleanupTime).Msg("scheduled nightly demo cleanup")
		registered++
	}

	if registered == 0 {
		log.Info().Msg("scheduler: no jobs enabled in configuration")
		return nil
	}

	s.cron.Start()
	s.isRunning = true
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Info().Msg("scheduler stopped")
	}
}

// RunReindex pushes every stored property into the search index
func (s *Scheduler) RunReindex() error {
	if s.search == nil {
		return fmt.Errorf("search client not configured")
	}

	properties, err := s.db.GetAllProperties()
	if err != nil {
		return fmt.Errorf("load properties for reindex: %w", err)
	}

	// Chunked so one oversized payload doesn't take the whole run down
	const chunkSize = 500
	for start := 0; start < len(properties); start += chunkSize {
		end := start + chunkSize
		if end > len(properties) {
			end = len(properties)
		}
		if err := s.search.IndexProperties(properties[start:end]); err != nil {
			return fmt.Errorf("index chunk %d-%d: %w", start, end, err)
		}
	}

	log.Info().Int("count", len(properties)).Msg("reindex completed")
	return nil
}

// RunCleanup purges expired demo listings and drops them from the index
func (s *Scheduler) RunCleanup() error {
	cfg := cleanup.PurgeConfig{
		RetentionDays:    s.config.Cleanup.DemoRetentionDays,
		MaxDeletionCount: s.config.Cleanup.MaxDeletionCount,
	}

	result, err := s.cleanup.PurgeDemoListings(cfg)
	if err != nil {
		return err
	}

	if s.search != nil && len(result.DeletedIDs) > 0 {
		if err := s.search.DeleteProperties(result.DeletedIDs); err != nil {
			log.Warn().Err(err).Msg("failed to drop purged listings from search index")
		}
	}
	return nil
}

// parseDailyRunTime converts HH:MM format to a cron specification
// Example: "03:00" -> "0 3 * * *"
func parseDailyRunTime(timeStr, fallback string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	log.Warn().Str("time", timeStr).Str("fallback", fallback).Msg("failed to parse job time")
	fmt.Sscanf(fallback, "%d:%d", &hour, &minute)
	return fmt.Sprintf("%d %d * * *", minute, hour)
}
