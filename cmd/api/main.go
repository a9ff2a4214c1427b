package main

import (
	"log"

	"github.com/carebridge/careworker-go/internal/api/middleware"
	"github.com/carebridge/careworker-go/internal/api/routes"
	"github.com/carebridge/careworker-go/internal/config"
	"github.com/carebridge/careworker-go/internal/config/db"
	"github.com/carebridge/careworker-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection (enums + migrations)
	db.Init()

	// Initialize object storage for document files
	storage.Init()

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
