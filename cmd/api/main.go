package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"real-estate-marketplace/internal/config"
	"real-estate-marketplace/internal/database"
	"real-estate-marketplace/internal/handlers"
	"real-estate-marketplace/internal/logger"
	"real-estate-marketplace/internal/ratelimit"
	"real-estate-marketplace/internal/scheduler"
	"real-estate-marketplace/internal/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; deployments usually set the environment directly
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/app.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	applyEnvOverrides(cfg)

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Warn().Str("path", configPath).Err(err).Msg("failed to load config, using defaults")
	} else {
		log.Info().Str("path", configPath).Msg("configuration loaded")
	}

	// Database
	var db *database.GormDB
	switch cfg.Database.Type {
	case "postgres":
		log.Info().Msg("using PostgreSQL")
		db, err = database.NewPostgres(cfg.Database.Postgres, cfg.Database.Pool)
	default:
		log.Info().Msg("using MySQL")
		db, err = database.NewMySQL(cfg.Database.MySQL, cfg.Database.Pool)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	// Search index
	searchClient := search.NewSearchClient(cfg.Search.Meilisearch.Host, cfg.Search.Meilisearch.APIKey)
	if err := searchClient.InitIndex(); err != nil {
		log.Warn().Err(err).Msg("failed to initialize search index")
	}

	// Import rate limiter
	importLimiter := ratelimit.NewRateLimiter(
		cfg.Import.RateLimit.RequestsPerMinute,
		cfg.Import.RateLimit.RequestsPerHour,
		cfg.Import.RateLimit.Enabled,
	)

	// Nightly jobs
	appScheduler := scheduler.NewScheduler(db, searchClient, cfg)
	if err := appScheduler.Start(); err != nil {
		log.Warn().Err(err).Msg("failed to start scheduler")
	}
	defer appScheduler.Stop()

	r := gin.Default()
	r.Use(handlers.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	importHandler := handlers.NewImportHandler(db, searchClient, cfg.Import.MaxBatchSize)
	propertyHandler := handlers.NewPropertyHandler(db)
	companyHandler := handlers.NewCompanyHandler(db)
	searchHandler := handlers.NewSearchHandler(db, searchClient)
	adminHandler := handlers.NewAdminHandler(db, importLimiter)

	r.GET("/health", healthCheck)

	r.POST("/api/import/properties", handlers.RateLimit(importLimiter), importHandler.ImportProperties)

	r.GET("/api/properties", propertyHandler.ListProperties)
	r.GET("/api/properties/:id", propertyHandler.GetProperty)
	r.GET("/api/properties/:id/price-history", propertyHandler.GetPriceHistory)

	r.GET("/api/companies", companyHandler.ListCompanies)
	r.GET("/api/companies/:id/properties", companyHandler.GetCompanyProperties)

	r.GET("/api/search", searchHandler.SearchProperties)
	r.GET("/api/search/facets", searchHandler.GetSearchFacets)
	r.POST("/api/search/reindex", searchHandler.ReindexAll)

	admin := r.Group("/api/admin")
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/activity", adminHandler.GetRecentActivity)
		admin.GET("/price-distribution", adminHandler.GetPriceDistribution)
		admin.GET("/changes/recent", adminHandler.GetRecentChanges)
		admin.POST("/cleanup/run", adminHandler.RunCleanup)
		admin.GET("/cleanup/logs", adminHandler.GetPurgeLogs)
		admin.GET("/ratelimit/stats", adminHandler.GetRateLimitStats)
	}

	port := getEnv("PORT", cfg.Server.Port)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

// applyEnvOverrides lets the common deployment variables win over the file
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("DB_TYPE"); v != "" {
		cfg.Database.Type = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.MySQL.Host = v
		cfg.Database.Postgres.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.MySQL.Port = port
			cfg.Database.Postgres.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.MySQL.User = v
		cfg.Database.Postgres.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.MySQL.Password = v
		cfg.Database.Postgres.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.MySQL.Database = v
		cfg.Database.Postgres.Database = v
	}
	if v := os.Getenv("MEILISEARCH_HOST"); v != "" {
		cfg.Search.Meilisearch.Host = v
	}
	if v := os.Getenv("MEILISEARCH_KEY"); v != "" {
		cfg.Search.Meilisearch.APIKey = v
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
