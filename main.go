// File: /main.go
package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"volunteerhub-api/config"
	"volunteerhub-api/database"
	"volunteerhub-api/jobs"
	"volunteerhub-api/middleware"
	"volunteerhub-api/registry"
	"volunteerhub-api/routes"
	"volunteerhub-api/services"
	"volunteerhub-api/statistics"
)

func main() {
	// Load .env when present; real environments set variables directly
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	// Seed database with demo data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.WithError(err).Warn("Failed to seed database")
	}

	// Composition root: the registry and statistics service are built once
	// here and handed to everything that needs them.
	reg := registry.New(db, log)
	if err := reg.Refresh(); err != nil {
		log.WithError(err).Warn("Initial registry load failed, starting with an empty snapshot")
	}

	censusClient := statistics.NewClient(cfg.CensusAPIURL, log)
	statsService := statistics.NewService(censusClient, log)
	emailService := services.NewEmailService(cfg, log)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 30))

	// Setup routes
	routes.SetupRoutes(router, db, cfg, reg, statsService, emailService, log)

	// Keep the snapshot in sync with out-of-process writes
	refreshJob := jobs.NewRegistryRefreshJob(reg, 5*time.Minute, log)
	refreshJob.Start()
	defer refreshJob.Stop()

	// Start server
	log.WithField("port", cfg.Port).Info("Starting VolunteerHub API server")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
