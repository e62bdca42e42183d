package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/timetable-editor/internal/bootstrap"
	"github.com/timetable-editor/internal/config"
	"github.com/timetable-editor/internal/pkg/logger"
	"github.com/timetable-editor/internal/repository/cache"
	redisRepo "github.com/timetable-editor/internal/repository/redis"
	"github.com/timetable-editor/internal/usecase"
	"github.com/timetable-editor/internal/worker"
	"github.com/timetable-editor/internal/worker/audit"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}
	if !cfg.Redis.Enabled {
		fmt.Println("Worker needs Redis streams. Set REDIS_ENABLED=true to enable.")
		os.Exit(1)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Timetable Consistency Worker")
	log.Info("Configuration loaded",
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Open document store
	openCtx, openCancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := bootstrap.OpenStore(openCtx, cfg, log)
	openCancel()
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close()

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

	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	auditUC := usecase.NewAuditUseCase(store.Timetable, log)

	// 5. Register workers
	workerManager := worker.NewWorkerManager(log).WithShutdownTimeout(cfg.Worker.ShutdownTimeout)
	workerManager.Register(audit.NewConsistencyWorker(
		streamRepo,
		auditUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
