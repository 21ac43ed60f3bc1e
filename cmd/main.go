package main

import (
	"log"
	"net/http"
	"time"
	"weblog/database"
	"weblog/internal/auth"
	"weblog/internal/config"
	"weblog/internal/controllers"
	"weblog/internal/middleware"
	"weblog/internal/repository"
	"weblog/internal/seo"
	"weblog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables; a missing .env is fine in containers.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	database.ConnectDatabase(cfg)
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	postRepo := repository.NewPostRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	tagRepo := repository.NewTagRepository(database.DB)
	mediaRepo := repository.NewMediaRepository(database.DB)
	settingRepo := repository.NewSettingRepository(database.DB)

	gate := auth.NewGate(auth.Config{
		APIKey:         cfg.APIKey,
		TOTPSecret:     cfg.TOTPSecret,
		AllowDevBypass: cfg.AllowDevBypass,
	})
	if cfg.AllowDevBypass {
		log.Println("WARNING: development credential bypass is enabled")
	}

	seoGen := seo.NewGenerator(cfg.SiteURL, cfg.SiteName, cfg.SiteDescription)

	// Initialize controllers
	postController := controllers.NewPostController(postRepo, seoGen, cfg.UploadDir)
	categoryController := controllers.NewCategoryController(categoryRepo, seoGen)
	tagController := controllers.NewTagController(tagRepo, seoGen)
	mediaController := controllers.NewMediaController(mediaRepo, postRepo, cfg.UploadDir)
	settingController := controllers.NewSettingController(settingRepo)
	authController := controllers.NewAuthController(gate, cfg.SiteName, cfg.AllowDevBypass)
	sitemapController := controllers.NewSitemapController(postRepo, categoryRepo, tagRepo, seoGen)
	feedController := controllers.NewFeedController(postRepo, seoGen)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": cfg.SiteName + " API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	// Uploaded files are served straight from disk.
	router.Static("/uploads", cfg.UploadDir)

	authMiddleware := middleware.AuthMiddleware(gate)

	routes.RegisterPostRoutes(router, postController, authMiddleware)
	routes.RegisterCategoryRoutes(router, categoryController, authMiddleware)
	routes.RegisterTagRoutes(router, tagController, authMiddleware)
	routes.RegisterMediaRoutes(router, mediaController, authMiddleware)
	routes.RegisterSettingRoutes(router, settingController, authMiddleware)
	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterSitemapRoutes(router, sitemapController, feedController)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
