package routes

import (
	"html/template"

	"contact-form-backend/internal/api/handlers"
	"contact-form-backend/internal/api/middleware"
	"contact-form-backend/internal/config"
	"contact-form-backend/internal/flash"
	"contact-form-backend/internal/notify"
	"contact-form-backend/internal/repository"
	"contact-form-backend/internal/service"
	"contact-form-backend/internal/submissionlog"
	"contact-form-backend/internal/validation"
	"contact-form-backend/internal/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewSubmissionService wires the submission service to db and the stores named in cfg
func NewSubmissionService(db *gorm.DB, cfg *config.Config) *service.SubmissionService {
	submissionRepo := repository.NewSubmissionRepository(db)
	journal := submissionlog.NewStore(cfg.SubmissionsLogPath)
	notifier := notify.New(notify.Options{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		To:       notify.ParseRecipients(cfg.NotifyTo),
	})

	return service.NewSubmissionService(submissionRepo, journal, notifier, validation.New())
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())

	router.SetHTMLTemplate(template.Must(web.Templates()))

	// Initialize services
	submissionService := NewSubmissionService(db, cfg)
	flashStore := flash.NewStore(cfg.SecretKey, cfg.IsProduction())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(submissionService)
	formHandler := handlers.NewFormHandler(submissionService, flashStore)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTML form
	router.GET("/", formHandler.Index)
	router.POST("/submit", formHandler.Submit)
	router.GET("/success", formHandler.Success)
	router.GET("/submissions", formHandler.List)

	// JSON API
	v1 := router.Group("/api/v1")
	{
		submissions := v1.Group("/submissions")
		{
			submissions.POST("", submissionHandler.CreateSubmission)
			submissions.GET("", submissionHandler.ListSubmissions)
			submissions.GET("/:id", submissionHandler.GetSubmission)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}
