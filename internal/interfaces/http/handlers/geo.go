// internal/interfaces/http/handlers/geo.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gamestore-backend/internal/domain/geo"
)

// GeoHandler serves the region reference data
type GeoHandler struct{}

// NewGeoHandler creates a new geo handler
func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// ListWilayas handles GET /wilayas
func (h *GeoHandler) ListWilayas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Wilayas retrieved successfully",
		"data":    geo.Wilayas(),
	})
}
