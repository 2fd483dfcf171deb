// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/gamestore-backend/internal/config"
	"github.com/your-org/gamestore-backend/internal/domain/cart"
	"github.com/your-org/gamestore-backend/internal/domain/catalog"
	"github.com/your-org/gamestore-backend/internal/domain/order"
	"github.com/your-org/gamestore-backend/internal/infrastructure/database/redis"
	"github.com/your-org/gamestore-backend/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Load the game catalog
	games, err := catalog.LoadGames()
	if err != nil {
		log.Fatalf("Failed to load game catalog: %v", err)
	}
	log.Printf("🎮 Loaded %d games into the catalog", len(games))

	// Wire up the stores at the composition root so tests and alternate
	// entry points can build their own instances.
	catalogStore := catalog.NewStore(games, cfg.Catalog.PageSize)
	cartService := cart.NewService(cart.NewRedisSnapshots(redisClient.GetClient(), cfg.Cart.KeyPrefix, cfg.Cart.SessionTTL))
	orderGateway := order.NewGateway(cfg.Order)

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, catalogStore, cartService, orderGateway, redisClient.GetClient())

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
