package routes

import (
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/api/handlers"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/api/middleware"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/auth"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/config"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/logger"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/repository"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/service"
	"github.com/ibrahimsaleh8/qahwajige-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, store storage.ObjectStorage, log *logger.Logger) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	settingsRepo := repository.NewSiteSettingsRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	featureRepo := repository.NewWhyUsFeatureRepository(db)
	galleryRepo := repository.NewGalleryImageRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	articleRepo := repository.NewArticleRepository(db)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, cfg.IsProduction())
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize services
	guard := service.NewOwnershipGuard(serviceRepo, featureRepo, galleryRepo)
	adminService := service.NewAdminService(adminRepo, authService, cfg.AdminRegistrationSecret, validator)
	projectService := service.NewProjectService(projectRepo, validator)
	settingsService := service.NewSiteSettingsService(projectRepo, settingsRepo, validator)
	sectionService := service.NewSectionService(projectRepo, sectionRepo, validator)
	servicesService := service.NewServicesSectionService(projectRepo, sectionRepo, serviceRepo, guard, validator)
	whyUsService := service.NewWhyUsService(projectRepo, sectionRepo, featureRepo, guard, validator)
	galleryService := service.NewGalleryService(projectRepo, galleryRepo, store, guard, log)
	uploadService := service.NewUploadService(projectRepo, store)
	packageService := service.NewPackageService(projectRepo, packageRepo, validator)
	ratingService := service.NewRatingService(projectRepo, ratingRepo)
	articleService := service.NewArticleService(projectRepo, articleRepo, validator)
	pageService := service.NewPageService(projectRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	adminHandler := handlers.NewAdminHandler(adminService, authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	settingsHandler := handlers.NewSiteSettingsHandler(settingsService)
	sectionHandler := handlers.NewSectionHandler(sectionService)
	servicesHandler := handlers.NewServicesSectionHandler(servicesService)
	whyUsHandler := handlers.NewWhyUsHandler(whyUsService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	packageHandler := handlers.NewPackageHandler(packageService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	articleHandler := handlers.NewArticleHandler(articleService)
	pageHandler := handlers.NewPageHandler(pageService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", adminHandler.Register)
		authGroup.POST("/login", adminHandler.Login)
		authGroup.POST("/logout", adminHandler.Logout)
		authGroup.GET("/me", authMiddleware.RequireAuth(), adminHandler.Me)
	}

	// Public routes addressed by the public project identifier
	public := api.Group("/public")
	{
		public.GET("/:projectId/page", pageHandler.GetPage)
		public.GET("/:projectId/page-with-keywords", pageHandler.GetPageWithKeywords)
		public.GET("/:projectId/metadata", settingsHandler.GetMetadata)
		public.POST("/:projectId/rating", ratingHandler.AddRating)
		public.GET("/articles/:title", articleHandler.GetArticleByTitle)
	}

	// Dashboard routes - all require authentication
	dashboard := api.Group("/dashboard")
	dashboard.Use(authMiddleware.RequireAuth())
	{
		dashboard.POST("/projects", projectHandler.CreateProject)

		project := dashboard.Group("/:projectId")
		{
			project.GET("/main-data", projectHandler.GetMainData)
			project.PUT("/main-data", projectHandler.UpdateMainData)

			project.GET("/keywords", settingsHandler.GetKeywords)
			project.PUT("/keywords", settingsHandler.UpdateKeywords)

			project.GET("/about", sectionHandler.GetAbout)
			project.PUT("/about", sectionHandler.UpsertAbout)

			project.GET("/contact", sectionHandler.GetContact)
			project.PUT("/contact", sectionHandler.UpsertContact)

			project.GET("/services", servicesHandler.GetServicesSection)
			project.PUT("/services", servicesHandler.UpsertServicesSection)
			project.PATCH("/services/:serviceId", servicesHandler.UpdateService)

			project.GET("/why-us", whyUsHandler.GetWhyUs)
			project.PUT("/why-us", whyUsHandler.UpsertWhyUs)
			project.PATCH("/why-us/:featureId", whyUsHandler.UpdateWhyUsFeature)

			project.GET("/gallery", galleryHandler.ListGallery)
			project.POST("/gallery", galleryHandler.AddGalleryImage)
			project.DELETE("/gallery/:imageId", galleryHandler.DeleteGalleryImage)

			project.GET("/packages", packageHandler.ListPackages)
			project.POST("/packages", packageHandler.CreatePackage)
			project.PATCH("/packages/:packageId", packageHandler.UpdatePackage)
			project.DELETE("/packages/:packageId", packageHandler.DeletePackage)

			project.GET("/rating", ratingHandler.GetRatingStats)

			project.GET("/articles", articleHandler.ListArticles)
			project.POST("/articles", articleHandler.CreateArticle)
			project.GET("/articles/:articleId", articleHandler.GetArticle)
			project.PATCH("/articles/:articleId", articleHandler.UpdateArticle)
			project.DELETE("/articles/:articleId", articleHandler.DeleteArticle)

			project.POST("/upload", uploadHandler.Upload)
		}
	}

	return router
}
