package handlers

import (
	"fmt"
	"net/http"

	"real-estate-marketplace/internal/database"
	"real-estate-marketplace/internal/importer"
	"real-estate-marketplace/internal/search"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ImportHandler handles batch property imports
type ImportHandler struct {
	importer *importer.Service
	db       *database.GormDB
	search   *search.SearchClient
	maxBatch int
}

// NewImportHandler creates a new import handler. searchClient may be nil,
// in which case imported listings are not indexed.
func NewImportHandler(db *database.GormDB, searchClient *search.SearchClient, maxBatch int) *ImportHandler {
	return &ImportHandler{
		importer: importer.NewService(db.DB()),
		db:       db,
		search:   searchClient,
		maxBatch: maxBatch,
	}
}

// ImportProperties handles POST /api/import/properties.
// The body must be a non-empty JSON array; anything else is rejected before
// a single transaction is opened. Per-item failures are reported in-band,
// so a valid batch always answers 200.
func (h *ImportHandler) ImportProperties(c *gin.Context) {
	var items []importer.Item
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON array of import items"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "import batch must not be empty"})
		return
	}
	if h.maxBatch > 0 && len(items) > h.maxBatch {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("batch exceeds maximum size of %d items", h.maxBatch),
		})
		return
	}

	batch := h.importer.ImportBatch(items)

	// Index upserted listings. Best-effort: a search outage must not turn
	// a committed import into a failure.
	if h.search != nil {
		if ids := batch.SucceededIDs(); len(ids) > 0 {
			properties, err := h.db.GetPropertiesByIDs(ids)
			if err == nil {
				err = h.search.IndexProperties(properties)
			}
			if err != nil {
				log.Warn().Err(err).Msg("failed to index imported listings")
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   batch.Count,
		"results": batch.Results,
	})
}
