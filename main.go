package main

import (
	"log"
	"net/http"
	"strings"

	"soc-archive-api/config"
	"soc-archive-api/database"
	"soc-archive-api/handlers"
	"soc-archive-api/middleware"
	"soc-archive-api/repositories"
	"soc-archive-api/routes"
	"soc-archive-api/services"
	"soc-archive-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.SeedCategories(db); err != nil {
		log.Fatal("failed to seed categories: ", err)
	}

	// Initialize file store
	fileStore, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize repositories
	workRepo := repositories.NewWorkRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	// Initialize services
	workService := services.NewWorkService(workRepo, fileStore, cfg.MaxUploadSize)
	categoryService := services.NewCategoryService(categoryRepo)
	statsService := services.NewStatsService(workRepo)

	// Initialize handlers
	workHandler := handlers.NewWorkHandler(workService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	adminHandler := handlers.NewAdminHandler(workService, statsService)

	// Setup router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadSize

	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.MetricsMiddleware())

	routes.Register(router, workHandler, categoryHandler, adminHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
