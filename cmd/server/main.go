package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/sayan42/vidmesh/backend/internal/router"
	"github.com/sayan42/vidmesh/backend/pkg/config"
	"github.com/sayan42/vidmesh/backend/pkg/storage"
	"github.com/sayan42/vidmesh/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize object storage for video and thumbnail uploads
	ctx := context.Background()
	blobStore, err := storage.NewMinioStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, cfg, blobStore)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
