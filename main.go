package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/api"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/config"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/database"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/middleware"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/repository"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/scoring"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/services"

	"gorm.io/gorm"
)

func main() {
	// Load application configuration
	config.LoadConfig()

	// Initialize database connection
	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}

	// Auto-migrate database schema
	runMigrations(db)

	// Initialize Repositories
	resultRepo := repository.NewSectionResultRepository(db)
	userRepo := repository.NewUserRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	bugReportRepo := repository.NewBugReportRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Resolve the report content table (built-in or admin override) before
	// any service sees it; the scoring layer only receives resolved content.
	reportSelector := scoring.NewReportSelector(config.LoadReportContent())

	// Initialize Services
	assessmentService := services.NewAssessmentService(resultRepo)
	reportService := services.NewReportService(resultRepo, reportSelector)
	analyticsService := services.NewAnalyticsService(resultRepo, userRepo)
	seedService := services.NewSeedService(userRepo, assessmentService, nil)
	log.Println("INFO: [Main] Services initialized.")

	// Initialize API Handler with all dependencies
	apiHandler := api.NewAPIHandler(
		userRepo,
		feedbackRepo,
		bugReportRepo,
		assessmentService,
		reportService,
		analyticsService,
		seedService,
	)
	log.Println("INFO: [Main] API Handler initialized.")

	// Create Gin engine
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Register middlewares
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())
	log.Println("INFO: [Main] Middlewares registered.")

	// Register routes
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	// Start the server
	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func runMigrations(db *gorm.DB) {
	log.Println("INFO: [Main] Running database migrations...")
	err := db.AutoMigrate(
		&models.User{},
		&models.SectionResult{},
		&models.Feedback{},
		&models.BugReport{},
	)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	// API route group
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/users", handler.RegisterUserHandler)

		apiGroup.GET("/sections", handler.GetSectionsHandler)
		apiGroup.GET("/sections/:number", handler.GetSectionHandler)
		apiGroup.POST("/sections/:number/submit", handler.SubmitSectionHandler)

		apiGroup.GET("/results/:userID", handler.GetResultsHandler)
		apiGroup.GET("/report/:userID", handler.GetReportHandler)

		apiGroup.POST("/feedback", handler.SubmitFeedbackHandler)
		apiGroup.POST("/bugs", handler.SubmitBugReportHandler)

		// Admin endpoints
		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.GET("/dashboard", handler.DashboardHandler)
			adminGroup.GET("/users", handler.ListUsersHandler)
			adminGroup.GET("/feedback", handler.ListFeedbackHandler)
			adminGroup.GET("/bugs", handler.ListBugReportsHandler)
			adminGroup.POST("/bugs/:id/resolve", handler.ResolveBugReportHandler)
			adminGroup.POST("/seed", handler.SeedHandler)
		}
	}
}
