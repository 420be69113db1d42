package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCategoriesHandler lists the legal categories.
func (h *HandlerBundle) GetCategoriesHandler(c *gin.Context) {
	items, err := h.SimpleData.GetCategories(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetRegionsHandler lists the judicial regions.
func (h *HandlerBundle) GetRegionsHandler(c *gin.Context) {
	items, err := h.SimpleData.GetRegions(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list regions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list regions"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetCitiesHandler lists the cities available at registration.
func (h *HandlerBundle) GetCitiesHandler(c *gin.Context) {
	items, err := h.SimpleData.GetCities(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list cities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cities"})
		return
	}
	c.JSON(http.StatusOK, items)
}
