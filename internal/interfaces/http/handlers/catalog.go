// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gamestore-backend/internal/config"
	"github.com/your-org/gamestore-backend/internal/domain/catalog"
)

// CatalogHandler handles game catalog endpoints
type CatalogHandler struct {
	store  *catalog.Store
	config *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *catalog.Store, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		config: cfg,
	}
}

// ListGames handles GET /games. The query surface (search, platform, page)
// is carried entirely in the URL so a reload reconstructs the same view.
// The view is derived per request; handlers run concurrently and must not
// observe each other's filters.
func (h *CatalogHandler) ListGames(c *gin.Context) {
	platform := catalog.Platform(c.Query("platform"))
	search := c.Query("search")

	page := 1
	if pageParam := c.Query("page"); pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid page number",
			})
			return
		}
		page = parsed
	}

	result, err := h.store.Query(search, platform, page)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid platform. Must be one of: pc, playstation, xbox, nintendo",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Games retrieved successfully",
		"data": gin.H{
			"games": result.Games,
			"query": gin.H{
				"search":   search,
				"platform": platform,
			},
			"pagination": gin.H{
				"page":        page,
				"page_size":   h.config.Catalog.PageSize,
				"total_pages": result.TotalPages,
				"total_count": result.TotalCount,
			},
		},
	})
}

// GetGame handles GET /games/:id. Lookup is against the full catalog,
// ignoring any active filters.
func (h *CatalogHandler) GetGame(c *gin.Context) {
	game, err := h.store.GameByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Game not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Game retrieved successfully",
		"data":    game,
	})
}

// ListPlatforms handles GET /games/platforms
func (h *CatalogHandler) ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Platforms retrieved successfully",
		"data":    catalog.Platforms(),
	})
}
