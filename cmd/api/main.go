package main

// @title GeoInsight Service API
// @version 1.0.0
// @description Geospatial analysis service built on OpenStreetMap data. Computes infrastructure and socio-economic metrics for arbitrary bounding boxes, resolves free-text queries to known locations and manages uploaded satellite scenes.
// @description
// @description Main capabilities:
// @description - Infrastructure metrics for an area of interest (road, building and amenity densities)
// @description - Composite socio-economic score derived from the density metrics
// @description - Free-text location resolution with fuzzy matching and directional sub-areas
// @description - Query classification and model-backed insight generation
// @description - Satellite scene upload, listing and per-location statistics

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/geoinsight-service/docs"
	"github.com/geoinsight-service/internal/config"
	httpDelivery "github.com/geoinsight-service/internal/delivery/http"
	"github.com/geoinsight-service/internal/delivery/http/handler"
	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/infrastructure/gemini"
	"github.com/geoinsight-service/internal/infrastructure/overpass"
	"github.com/geoinsight-service/internal/pkg/logger"
	"github.com/geoinsight-service/internal/repository/cache"
	"github.com/geoinsight-service/internal/repository/postgres"
	redisRepo "github.com/geoinsight-service/internal/repository/redis"
	"github.com/geoinsight-service/internal/repository/storage"
	"github.com/geoinsight-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting GeoInsight Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	sceneRepo := postgres.NewSceneRepository(db, log)

	sceneStore, err := storage.NewFileStore(cfg.Storage.MediaRoot, log)
	if err != nil {
		log.Fatal("Failed to initialize scene store", zap.Error(err))
	}

	featureRepo := overpass.NewOverpassClient(&cfg.Overpass, log)
	insightsRepo := gemini.NewGeminiClient(&cfg.Insights, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	registry := usecase.NewLocationRegistry(sceneStore, domain.DefaultAliases, log)
	extractor := usecase.NewCandidateExtractor(log)
	classifier := usecase.NewQueryClassifier()

	resolutionUC := usecase.NewResolutionUseCase(registry, extractor, log)

	analysisUC := usecase.NewAnalysisUseCase(featureRepo, log)
	cachedAnalysis := usecase.NewCachedAnalysis(
		analysisUC,
		cacheRepo,
		log,
		cfg.Cache.MetricsCacheTTL,
	)

	insightsUC := usecase.NewInsightsUseCase(insightsRepo, log)

	queryUC := usecase.NewQueryUseCase(
		resolutionUC,
		classifier,
		cachedAnalysis,
		insightsUC,
		cacheRepo,
		log,
		cfg.Cache.QueryCacheTTL,
	)

	sceneUC := usecase.NewSceneUseCase(sceneStore, sceneRepo, streamRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	analysisHandler := handler.NewAnalysisHandler(cachedAnalysis, log)
	locationHandler := handler.NewLocationHandler(resolutionUC, registry, log)
	queryHandler := handler.NewQueryHandler(queryUC, log)
	sceneHandler := handler.NewSceneHandler(sceneUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		analysisHandler,
		locationHandler,
		queryHandler,
		sceneHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
