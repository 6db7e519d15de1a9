package handlers

import (
	"net/http"

	"real-estate-marketplace/internal/database"

	"github.com/gin-gonic/gin"
)

// CompanyHandler serves listing companies
type CompanyHandler struct {
	db *database.GormDB
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(db *database.GormDB) *CompanyHandler {
	return &CompanyHandler{db: db}
}

// ListCompanies handles GET /api/companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.db.ListCompanies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}

// GetCompanyProperties handles GET /api/companies/:id/properties
func (h *CompanyHandler) GetCompanyProperties(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	company, err := h.db.GetCompanyByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}

	properties, err := h.db.GetCompanyProperties(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company":    company,
		"properties": properties,
		"count":      len(properties),
	})
}
