package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"real-estate-marketplace/internal/database"

	"github.com/gin-gonic/gin"
)

// PropertyHandler serves the read side of the listings API
type PropertyHandler struct {
	db *database.GormDB
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(db *database.GormDB) *PropertyHandler {
	return &PropertyHandler{db: db}
}

// ListProperties handles GET /api/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filters := database.PropertyFilters{
		City:   c.Query("city"),
		State:  c.Query("state"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
		SortBy: c.DefaultQuery("sort", "newest"),
	}

	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, parseErr := strconv.ParseFloat(minPriceStr, 64); parseErr == nil {
			filters.MinPrice = &minPrice
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, parseErr := strconv.ParseFloat(maxPriceStr, 64); parseErr == nil {
			filters.MaxPrice = &maxPrice
		}
	}
	if minBedsStr := c.Query("min_beds"); minBedsStr != "" {
		if minBeds, parseErr := strconv.Atoi(minBedsStr); parseErr == nil {
			filters.MinBeds = &minBeds
		}
	}
	if maxBedsStr := c.Query("max_beds"); maxBedsStr != "" {
		if maxBeds, parseErr := strconv.Atoi(maxBedsStr); parseErr == nil {
			filters.MaxBeds = &maxBeds
		}
	}
	if companyIDStr := c.Query("company_id"); companyIDStr != "" {
		if companyID, parseErr := strconv.ParseUint(companyIDStr, 10, 32); parseErr == nil {
			id := uint(companyID)
			filters.CompanyID = &id
		}
	}
	if demoStr := c.Query("include_demo"); demoStr != "" {
		filters.IncludeDemo = strings.EqualFold(demoStr, "true") || demoStr == "1"
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, parseErr := strconv.Atoi(limitStr); parseErr == nil && limit > 0 {
			filters.Limit = limit
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, parseErr := strconv.Atoi(offsetStr); parseErr == nil && offset >= 0 {
			filters.Offset = offset
		}
	}

	page, err := h.db.ListProperties(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetProperty handles GET /api/properties/:id, returning the listing with
// all of its child collections
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	property, err := h.db.GetPropertyByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}

	children, err := h.db.GetPropertyChildren(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property": property,
		"children": children,
	})
}

// GetPriceHistory handles GET /api/properties/:id/price-history
func (h *PropertyHandler) GetPriceHistory(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	if _, err := h.db.GetPropertyByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}

	limitStr := c.DefaultQuery("limit", "30")
	limit, _ := strconv.Atoi(limitStr)

	changes, err := h.db.GetPriceHistory(id, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property_id": id,
		"changes":     changes,
		"count":       len(changes),
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
