package handlers

import (
	"net/http"
	"strconv"
	"time"

	"real-estate-marketplace/internal/cleanup"
	"real-estate-marketplace/internal/database"
	"real-estate-marketplace/internal/models"
	"real-estate-marketplace/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminHandler handles admin-related requests
type AdminHandler struct {
	db             *gorm.DB
	cleanupService *cleanup.Service
	limiter        *ratelimit.RateLimiter
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *database.GormDB, limiter *ratelimit.RateLimiter) *AdminHandler {
	return &AdminHandler{
		db:             db.DB(),
		cleanupService: cleanup.NewService(db.DB()),
		limiter:        limiter,
	}
}

// GetStats returns system statistics
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats := make(map[string]interface{})

	var totalCount, demoCount int64
	h.db.Model(&models.Property{}).Count(&totalCount)
	h.db.Model(&models.Property{}).Where("is_demo = ?", true).Count(&demoCount)

	stats["properties"] = map[string]interface{}{
		"total": totalCount,
		"demo":  demoCount,
		"live":  totalCount - demoCount,
	}

	var companyCount int64
	h.db.Model(&models.Company{}).Count(&companyCount)
	stats["companies"] = map[string]interface{}{
		"total": companyCount,
	}

	// Import activity (last 24 hours)
	last24h := time.Now().AddDate(0, 0, -1)
	var recentlyImported int64
	h.db.Model(&models.Property{}).Where("updated_at >= ?", last24h).Count(&recentlyImported)
	stats["recent_activity"] = map[string]interface{}{
		"imported_last_24h": recentlyImported,
	}

	// Price changes (last 7 days)
	last7days := time.Now().AddDate(0, 0, -7)
	var recentChanges int64
	h.db.Model(&models.PriceChange{}).Where("detected_at >= ?", last7days).Count(&recentChanges)
	stats["price_changes"] = map[string]interface{}{
		"last_7_days": recentChanges,
	}

	purgeStats, err := h.cleanupService.GetPurgeStats()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get purge stats")
	} else {
		stats["purges"] = purgeStats
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecentActivity returns the most recently imported listings
func (h *AdminHandler) GetRecentActivity(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, _ := strconv.Atoi(limitStr)

	var properties []models.Property
	err := h.db.Order("updated_at DESC").Limit(limit).Find(&properties).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
		"count":      len(properties),
	})
}

// GetPriceDistribution returns listing price distribution
func (h *AdminHandler) GetPriceDistribution(c *gin.Context) {
	type PriceRange struct {
		RangeLabel string  `json:"range_label"`
		MinPrice   float64 `json:"min_price"`
		MaxPrice   float64 `json:"max_price"`
		Count      int64   `json:"count"`
	}

	ranges := []PriceRange{
		{RangeLabel: "under 100k", MinPrice: 0, MaxPrice: 100000},
		{RangeLabel: "100k-250k", MinPrice: 100000, MaxPrice: 250000},
		{RangeLabel: "250k-500k", MinPrice: 250000, MaxPrice: 500000},
		{RangeLabel: "500k-750k", MinPrice: 500000, MaxPrice: 750000},
		{RangeLabel: "750k-1m", MinPrice: 750000, MaxPrice: 1000000},
		{RangeLabel: "over 1m", MinPrice: 1000000, MaxPrice: 100000000},
	}

	for i := range ranges {
		var count int64
		h.db.Model(&models.Property{}).
			Where("is_demo = ? AND price >= ? AND price < ?",
				false, ranges[i].MinPrice, ranges[i].MaxPrice).
			Count(&count)
		ranges[i].Count = count
	}

	c.JSON(http.StatusOK, gin.H{
		"price_distribution": ranges,
	})
}

// GetRecentChanges returns recent price changes across all listings
func (h *AdminHandler) GetRecentChanges(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, _ := strconv.Atoi(limitStr)

	var changes []models.PriceChange
	err := h.db.Order("detected_at DESC").Limit(limit).Find(&changes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"changes": changes,
		"count":   len(changes),
	})
}

// RunCleanup executes physical deletion of expired demo listings
func (h *AdminHandler) RunCleanup(c *gin.Context) {
	var req struct {
		RetentionDays    int  `json:"retention_days"`
		MaxDeletionCount int  `json:"max_deletion_count"`
		DryRun           bool `json:"dry_run"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config := cleanup.DefaultPurgeConfig()
	if req.RetentionDays > 0 {
		config.RetentionDays = req.RetentionDays
	}
	if req.MaxDeletionCount > 0 {
		config.MaxDeletionCount = req.MaxDeletionCount
	}
	config.DryRun = req.DryRun

	result, err := h.cleanupService.PurgeDemoListings(config)
	if err != nil {
		log.Error().Err(err).Msg("cleanup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPurgeLogs returns recent purge log entries
func (h *AdminHandler) GetPurgeLogs(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, _ := strconv.Atoi(limitStr)

	logs, err := h.cleanupService.GetRecentPurgeLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":  logs,
		"count": len(logs),
	})
}

// GetRateLimitStats returns import endpoint rate limiter statistics
func (h *AdminHandler) GetRateLimitStats(c *gin.Context) {
	if h.limiter == nil {
		c.JSON(http.StatusOK, ratelimit.Stats{Enabled: false})
		return
	}
	c.JSON(http.StatusOK, h.limiter.GetStats())
}
