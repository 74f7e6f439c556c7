package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/sayan42/vidmesh/backend/internal/handlers"
	"github.com/sayan42/vidmesh/backend/internal/middleware"
	"github.com/sayan42/vidmesh/backend/internal/models"
	"github.com/sayan42/vidmesh/backend/internal/repositories"
	"github.com/sayan42/vidmesh/backend/internal/services"
	"github.com/sayan42/vidmesh/backend/pkg/config"
	"github.com/sayan42/vidmesh/backend/pkg/storage"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, cfg *config.Config, blobStore storage.BlobStore) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.LikeEdge{},
		&models.Subscription{},
		&models.Comment{},
		&models.Tweet{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	mgdb := mgClient.Database(cfg.MongoDatabase)
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	subscriptionRepo := repositories.NewPostgresSubscriptionRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	tweetRepo := repositories.NewPostgresTweetRepository(pgdb)
	videoRepo := repositories.NewMongoVideoRepository(mgdb)
	playlistRepo := repositories.NewMongoPlaylistRepository(mgdb)
	historyRepo := repositories.NewMongoWatchHistoryRepository(mgdb)

	// --- Initialize Services ---
	likeService := services.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userRepo)
	historyService := services.NewHistoryService(historyRepo, videoRepo)
	viewService := services.NewViewService(videoRepo)
	playlistService := services.NewPlaylistService(playlistRepo, videoRepo)
	statsService := services.NewStatsService(videoRepo, subscriptionRepo, likeRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile and watch history routes
	userHandler := handlers.NewUserHandler(userRepo, historyService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	// Video routes
	videoHandler := handlers.NewVideoHandler(videoRepo, viewService, historyService, blobStore)
	videoHandler.RegisterVideoRoutes(api)
	log.Println("Video routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Subscription routes
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	subscriptionHandler.RegisterSubscriptionRoutes(api)
	log.Println("Subscription routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, videoRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Tweet routes
	tweetHandler := handlers.NewTweetHandler(tweetRepo)
	tweetHandler.RegisterTweetRoutes(api)
	log.Println("Tweet routes configured.")

	// Playlist routes
	playlistHandler := handlers.NewPlaylistHandler(playlistService)
	playlistHandler.RegisterPlaylistRoutes(api)
	log.Println("Playlist routes configured.")

	// Dashboard routes
	dashboardHandler := handlers.NewDashboardHandler(statsService, videoRepo)
	dashboardHandler.RegisterDashboardRoutes(api)
	log.Println("Dashboard routes configured.")
}
