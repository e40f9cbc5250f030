package main

import (
	"fmt"
	"net/http"
	"os"

	"posada/internal/config"
	"posada/internal/database"
	"posada/internal/handlers"
	"posada/internal/logger"
	"posada/internal/middleware"
	"posada/internal/qr"
	"posada/internal/services"
	"posada/internal/state"
	"posada/internal/store"
	"posada/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title           Posada API
// @version         1.0
// @description     Posada is a point-of-sale backend for small hotels and restaurants: item catalog, payment capture with QR codes, transaction history, and dashboard aggregates.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Load the persisted snapshots into the in-memory state
	snapshots := store.New(dbManager.DB())
	appState, err := state.New(snapshots)
	if err != nil {
		return fmt.Errorf("failed to load state from store: %w", err)
	}

	// Initialize services
	itemService := services.NewItemService(appState, appConfig.DefaultItemImage)
	paymentService := services.NewPaymentService(appState, qr.PNGRenderer{})
	profileService := services.NewProfileService(appState)
	sessionService := services.NewSessionService(appState, appConfig.AdminPasswordHash)
	dashboardService := services.NewDashboardService(appState)
	adminService := services.NewAdminService(appState)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessionService)
	itemHandler := handlers.NewItemHandler(itemService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	profileHandler := handlers.NewProfileHandler(profileService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check and metrics endpoints
	router.GET("/api/health", adminHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Session
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/session", authHandler.Session)

	// Item routes
	items := protected.Group("/items")
	items.POST("", itemHandler.CreateItem)
	items.GET("", itemHandler.ListItems)
	items.GET("/:id", itemHandler.GetItem)
	items.PUT("/:id", itemHandler.UpdateItem)
	items.DELETE("/:id", itemHandler.DeleteItem)
	items.POST("/image", itemHandler.UploadImage)
	items.POST("/:id/payments", paymentHandler.CreatePayment)

	// Payment routes
	protected.GET("/transactions", paymentHandler.ListTransactions)
	protected.GET("/payments/:id/qr", paymentHandler.PaymentQR)

	// Profile routes
	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.SaveProfile)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.GET("/today", dashboardHandler.Today)
	dashboard.GET("/series", dashboardHandler.Series)
	dashboard.GET("/profit", dashboardHandler.Profit)

	// Admin routes
	protected.POST("/admin/reset", adminHandler.Reset)

	log.Infof("Starting Posada backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
