package main

import (
	"log"

	"contact-form-backend/internal/api/routes"
	"contact-form-backend/internal/config"
	"contact-form-backend/internal/database"
	apperrors "contact-form-backend/internal/errors"
	"contact-form-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "contact-form-backend/docs" // This is needed for swag
)

//	@title			Contact Form Backend API
//	@version		1.0
//	@description	Accepts contact form submissions, stores them in the database and the submissions log, and lists them.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5000
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if apperrors.IsConfiguration(err) {
		log.Fatal("Invalid configuration: ", err)
	}
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogFileMaxSizeMB,
		MaxBackups: cfg.LogFileMaxBackups,
		MaxAgeDays: cfg.LogFileMaxAgeDays,
		Text:       cfg.IsDevelopment(),
	})

	if cfg.SecretKey == config.DefaultSecretKey {
		logrus.Warn("SECRET_KEY is the development default, set it before exposing the service")
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	logrus.WithFields(logrus.Fields{
		"submissions_log": cfg.SubmissionsLogPath,
		"notifications":   cfg.NotificationsEnabled(),
	}).Info("Contact form configured")

	// Start server
	port := cfg.Port
	if port == "" {
		port = "5000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
