package main

import (
	"log"
	"os"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/api/routes"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/config"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/logger"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/ibrahimsaleh8/qahwajige-backend/docs" // This is needed for swag
)

//	@title			Qahwajige Backend API
//	@version		1.0
//	@description	Multi-tenant content backend serving the public sites and the admin dashboard: projects, content sections, gallery, packages, ratings and articles.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:4000
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize object storage
	store, err := storage.NewCloudinaryStorage(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize object storage:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, store, logger.New())

	// Start server
	port := cfg.Port
	if port == "" {
		port = "4000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
