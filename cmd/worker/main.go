package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/config"
	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/pkg/logger"
	"github.com/geoinsight-service/internal/repository/cache"
	redisRepo "github.com/geoinsight-service/internal/repository/redis"
	"github.com/geoinsight-service/internal/repository/storage"
	"github.com/geoinsight-service/internal/usecase"
	"github.com/geoinsight-service/internal/worker"
	"github.com/geoinsight-service/internal/worker/registry"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Registry Refresh Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("media_root", cfg.Storage.MediaRoot))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	sceneStore, err := storage.NewFileStore(cfg.Storage.MediaRoot, log)
	if err != nil {
		log.Fatal("Failed to initialize scene store", zap.Error(err))
	}

	// 5. Initialize the registry the worker keeps fresh
	locations := usecase.NewLocationRegistry(sceneStore, domain.DefaultAliases, log)

	// 6. Initialize workers
	registryWorker := registry.NewRegistryWorker(
		streamRepo,
		locations,
		cfg.Worker.ConsumerGroup,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(registryWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
