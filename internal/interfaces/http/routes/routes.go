// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/gamestore-backend/internal/config"
	"github.com/your-org/gamestore-backend/internal/domain/cart"
	"github.com/your-org/gamestore-backend/internal/domain/catalog"
	"github.com/your-org/gamestore-backend/internal/domain/order"
	"github.com/your-org/gamestore-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires all API routes onto the given group
func SetupRoutes(rg *gin.RouterGroup, store *catalog.Store, cartService *cart.Service, gateway *order.Gateway, cfg *config.Config) {
	SetupCatalogRoutes(rg, store, cfg)
	SetupCartRoutes(rg, cartService, store)
	SetupOrderRoutes(rg, gateway, cartService)
	SetupGeoRoutes(rg)
}

// SetupCatalogRoutes sets up game catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, store *catalog.Store, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(store, cfg)

	games := rg.Group("/games")
	{
		games.GET("", catalogHandler.ListGames)
		games.GET("/platforms", catalogHandler.ListPlatforms)
		games.GET("/:id", catalogHandler.GetGame)
	}
}

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service, store *catalog.Store) {
	cartHandler := handlers.NewCartHandler(cartService, store)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}
}

// SetupOrderRoutes sets up order routes
func SetupOrderRoutes(rg *gin.RouterGroup, gateway *order.Gateway, cartService *cart.Service) {
	orderHandler := handlers.NewOrderHandler(gateway, cartService)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.SubmitOrder)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}

// SetupGeoRoutes sets up region reference data routes
func SetupGeoRoutes(rg *gin.RouterGroup) {
	geoHandler := handlers.NewGeoHandler()

	rg.GET("/wilayas", geoHandler.ListWilayas)
}
