package main

// @title Timetable Editor API
// @version 1.0.0
// @description Редактор расписания линии Karuizawa - Myoko-Kogen. Поезд хранится в коллекции trains,
// @description копии его остановок - в документах станций; запись и удаление поддерживают их согласованными.

// @host localhost:8080
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/timetable-editor/docs"
	"github.com/timetable-editor/internal/bootstrap"
	"github.com/timetable-editor/internal/config"
	httpDelivery "github.com/timetable-editor/internal/delivery/http"
	"github.com/timetable-editor/internal/delivery/http/handler"
	"github.com/timetable-editor/internal/domain/repository"
	"github.com/timetable-editor/internal/pkg/logger"
	"github.com/timetable-editor/internal/repository/cache"
	redisRepo "github.com/timetable-editor/internal/repository/redis"
	"github.com/timetable-editor/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Timetable Editor API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("store_driver", cfg.Store.Driver),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 3. Open document store
	store, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close()

	health := make(map[string]httpDelivery.HealthCheck, len(store.Health)+1)
	for name, check := range store.Health {
		health[name] = check
	}

	// 4. Redis: кеш списка поездов и стрим событий синхронизации
	var (
		cacheRepo  repository.CacheRepository
		streamRepo repository.StreamRepository
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		health["redis"] = redisClient.Health

		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
		log.Info("Redis connected")
	} else {
		log.Warn("Redis disabled: train list cache and sync events are off")
	}

	// 5. Initialize use cases
	syncUC := usecase.NewSyncUseCase(store.Timetable, log)
	rulesUC := usecase.NewRulesUseCase(syncUC, log)
	editorUC := usecase.NewEditorUseCase(syncUC, store.Timetable, cacheRepo, streamRepo, cfg.Cache.TrainListTTL, log)
	auditUC := usecase.NewAuditUseCase(store.Timetable, log)

	// 6. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		health,
		handler.NewTimetableHandler(rulesUC, editorUC, auditUC, log),
		handler.NewRulesHandler(rulesUC, log),
		handler.NewSessionHandler(editorUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
