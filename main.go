package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"rtnsite/api"
	"rtnsite/config"
	"rtnsite/database"
	"rtnsite/middleware"
	"rtnsite/models"
	"rtnsite/repository"
	"rtnsite/services"

	"gorm.io/gorm"
)

func main() {
	// Load application configuration
	config.LoadConfig()

	// Initialize database connection (feedback vote persistence)
	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}
	runMigrations(db)

	// Load content catalogs from the YAML seed files
	kbCatalog, err := repository.LoadKnowledgeBaseCatalog(config.AppConfig.Catalog.KnowledgeBasePath)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to load knowledge base catalog: %v", err)
	}
	resCatalog, err := repository.LoadResourceCatalog(config.AppConfig.Catalog.ResourcesPath)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to load resource catalog: %v", err)
	}

	// Initialize Repositories
	contentRepo := repository.NewContentRepository(kbCatalog)
	resourceRepo := repository.NewResourceRepository(resCatalog)
	feedbackRepo := repository.NewFeedbackRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Initialize Services
	contentService := services.NewContentService()
	articleService := services.NewArticleService(contentRepo)
	catalogService := services.NewCatalogService(resourceRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	log.Println("INFO: [Main] Services initialized.")

	// Initialize API Handler with all dependencies
	apiHandler := api.NewAPIHandler(
		contentRepo,
		resourceRepo,
		feedbackRepo,
		contentService,
		articleService,
		catalogService,
		feedbackService,
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
		&models.FeedbackVote{},
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
		// Initialization endpoint
		apiGroup.GET("/init", handler.InitHandler)

		// Category registry
		apiGroup.GET("/categories", handler.ListCategoriesHandler)

		// Knowledge base endpoints
		kbGroup := apiGroup.Group("/knowledge-base")
		{
			kbGroup.GET("/:category/:slug", handler.GetArticleHandler)
			kbGroup.POST("/:category/:slug/feedback", handler.VoteHandler)
		}

		// Resource catalog endpoints
		resourceGroup := apiGroup.Group("/resources")
		{
			resourceGroup.GET("", handler.ListResourcesHandler)
			resourceGroup.GET("/suggest", handler.SuggestResourcesHandler)
		}

		// FAQ endpoints
		faqGroup := apiGroup.Group("/faqs")
		{
			faqGroup.GET("", handler.ListFAQsHandler)
			faqGroup.GET("/suggest", handler.SuggestFAQsHandler)
		}
	}
}
