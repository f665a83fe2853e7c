package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"kos-manager/internal/config"
	"kos-manager/internal/database"
	"kos-manager/internal/handlers"
	"kos-manager/internal/ratelimit"
	"kos-manager/internal/repository"
	"kos-manager/internal/scheduler"
	"kos-manager/internal/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	// Initialize embedded database
	gormDB, err := database.NewGormDB(appConfig.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", appConfig.Database.Path, err)
	}
	defer gormDB.Close()

	if err := gormDB.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Printf("Database ready at %s", appConfig.Database.Path)

	// Repositories share one handle
	db := gormDB.DB()
	kosanRepo := repository.NewKosanRepository(db)
	kamarRepo := repository.NewKamarRepository(db)
	penghuniRepo := repository.NewPenghuniRepository(db)
	pkRepo := repository.NewPenghuniKamarRepository(db)

	// Optional Meilisearch
	var searchClient *search.SearchClient
	var appScheduler *scheduler.Scheduler
	if appConfig.Search.Enabled {
		searchClient = search.NewSearchClient(appConfig.Search.Host, appConfig.Search.APIKey)
		if err := searchClient.InitIndex(); err != nil {
			log.Printf("Warning: Failed to initialize search index: %v", err)
		}

		appScheduler = scheduler.NewScheduler(kosanRepo, searchClient, appConfig)
		if err := appScheduler.Start(); err != nil {
			log.Printf("Warning: Failed to start scheduler: %v", err)
		}
		defer appScheduler.Stop()
	} else {
		log.Println("Search is disabled in configuration")
	}

	// Initialize rate limiter
	rateLimiter := ratelimit.NewRateLimiter(
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)
	log.Printf("Rate limiter initialized: %d req/min, %d req/hour (enabled: %v)",
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)

	kosanHandler := handlers.NewKosanHandler(kosanRepo, kamarRepo, searchClient)
	kamarHandler := handlers.NewKamarHandler(kamarRepo, pkRepo)
	penghuniHandler := handlers.NewPenghuniHandler(penghuniRepo)
	pkHandler := handlers.NewPenghuniKamarHandler(pkRepo)
	adminHandler := handlers.NewAdminHandler(kosanRepo, kamarRepo, penghuniRepo, searchClient, appScheduler, rateLimiter)

	// Setup Gin router
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	limited := rateLimitMiddleware(rateLimiter)

	// Routes
	r.GET("/health", healthCheck)

	r.GET("/api/kosan", kosanHandler.ListKosan)
	r.GET("/api/kosan/:id", kosanHandler.GetKosan)
	r.POST("/api/kosan", limited, kosanHandler.CreateKosan)
	r.PUT("/api/kosan/:id", limited, kosanHandler.UpdateKosan)
	r.DELETE("/api/kosan/:id", limited, kosanHandler.DeleteKosan)

	r.GET("/api/kamar", kamarHandler.ListKamar)
	r.GET("/api/kamar/detail", kamarHandler.ListDetail)
	r.GET("/api/kamar/:id", kamarHandler.GetKamar)
	r.GET("/api/kamar/:id/penghuni", penghuniHandler.GetPenghuniByKamar)
	r.POST("/api/kamar", limited, kamarHandler.CreateKamar)
	r.PUT("/api/kamar/:id", limited, kamarHandler.UpdateKamar)
	r.PUT("/api/kamar/:id/pembayaran", limited, kamarHandler.UpdatePembayaran)
	r.DELETE("/api/kamar/:id", limited, kamarHandler.DeleteKamar)

	r.GET("/api/penghuni", penghuniHandler.ListPenghuni)
	r.GET("/api/penghuni/:id", penghuniHandler.GetPenghuni)
	r.GET("/api/penghuni/:id/riwayat", pkHandler.GetRiwayat)
	r.POST("/api/penghuni", limited, penghuniHandler.CreatePenghuni)
	r.PUT("/api/penghuni/:id", limited, penghuniHandler.UpdatePenghuni)
	r.DELETE("/api/penghuni/:id", limited, penghuniHandler.DeletePenghuni)

	r.GET("/api/penghuni-kamar/:id", pkHandler.GetPenghuniKamar)
	r.POST("/api/penghuni-kamar", limited, pkHandler.CreatePenghuniKamar)
	r.PUT("/api/penghuni-kamar/:id", limited, pkHandler.UpdatePenghuniKamar)
	r.DELETE("/api/penghuni-kamar/:id", limited, pkHandler.DeletePenghuniKamar)

	r.GET("/api/stats", adminHandler.GetStats)
	r.GET("/api/search", adminHandler.SearchKosan)
	r.POST("/api/search/reindex", adminHandler.TriggerReindex)

	log.Printf("Server starting on %s", appConfig.Server.Addr)
	if err := r.Run(appConfig.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

func rateLimitMiddleware(limiter *ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.AllowRequest() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
