package main

import (
	"log"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hustlehapa-server/config"
	"hustlehapa-server/database"
	"hustlehapa-server/jobs"
	"hustlehapa-server/middleware"
	"hustlehapa-server/routes"
	"hustlehapa-server/services"
	"hustlehapa-server/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	var st store.Store
	if cfg.Database.URL != "" {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		st = store.NewGormStore(db)
	} else {
		log.Println("⚠️ DB_URL not set, running with in-memory store")
		st = store.NewMemoryStore()
	}

	// One mutex serializes every read-modify-write across the three
	// collections so multi-record updates stay consistent.
	var mu sync.Mutex
	jobService := services.NewJobService(st, &mu)
	applicationService := services.NewApplicationService(st, &mu)
	ratingService := services.NewRatingService(st, &mu)

	if cfg.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.RedirectTrailingSlash = false

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.InputValidationMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.AuditLogMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(cfg, st)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authGroup, routes.NewAuthHandler(cfg, st), authRequired)

		routes.RegisterJobRoutes(api, routes.NewJobHandler(jobService), authRequired)
		routes.RegisterApplicationRoutes(api, routes.NewApplicationHandler(applicationService), authRequired)
		routes.RegisterRatingRoutes(api, routes.NewRatingHandler(ratingService), authRequired)
	}

	reputationJob := jobs.NewReputationJob(ratingService, cfg.Jobs.ReputationSchedule)
	if err := reputationJob.Start(); err != nil {
		log.Fatalf("❌ Failed to start reputation job: %v", err)
	}
	defer reputationJob.Stop()

	log.Printf("🚀 Server starting on port %s", cfg.Server.Port)
	if err := router.Run("0.0.0.0:" + cfg.Server.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
