package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"real-estate-marketplace/internal/database"
	"real-estate-marketplace/internal/search"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SearchHandler serves full-text property search
type SearchHandler struct {
	db     *database.GormDB
	search *search.SearchClient
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(db *database.GormDB, searchClient *search.SearchClient) *SearchHandler {
	return &SearchHandler{db: db, search: searchClient}
}

// SearchProperties handles GET /api/search
func (h *SearchHandler) SearchProperties(c *gin.Context) {
	params := search.FilterParams{
		Query:  c.Query("q"),
		City:   c.Query("city"),
		Status: c.Query("status"),
		SortBy: c.Query("sort"),
	}

	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, parseErr := strconv.ParseFloat(minPriceStr, 64); parseErr == nil {
			params.MinPrice = &minPrice
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, parseErr := strconv.ParseFloat(maxPriceStr, 64); parseErr == nil {
			params.MaxPrice = &maxPrice
		}
	}
	if minBedsStr := c.Query("min_beds"); minBedsStr != "" {
		if minBeds, parseErr := strconv.Atoi(minBedsStr); parseErr == nil {
			params.MinBeds = &minBeds
		}
	}
	if typesStr := c.Query("types"); typesStr != "" {
		params.Types = strings.Split(typesStr, ",")
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, parseErr := strconv.ParseInt(limitStr, 10, 64); parseErr == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, parseErr := strconv.ParseInt(offsetStr, 10, 64); parseErr == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	properties, total, err := h.search.FilterSearch(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
		"total":      total,
		"count":      len(properties),
	})
}

// GetSearchFacets handles GET /api/search/facets
func (h *SearchHandler) GetSearchFacets(c *gin.Context) {
	facets := []string{"type", "status", "city", "beds"}
	if facetsStr := c.Query("facets"); facetsStr != "" {
		facets = strings.Split(facetsStr, ",")
	}

	distribution, err := h.search.GetFacets(facets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"facets": distribution})
}

// ReindexAll handles POST /api/search/reindex
func (h *SearchHandler) ReindexAll(c *gin.Context) {
	properties, err := h.db.GetAllProperties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.search.IndexProperties(properties); err != nil {
		log.Error().Err(err).Msg("reindex failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "reindex started",
		"count":   len(properties),
	})
}
