// Package bootstrap собирает хранилище расписания по конфигурации.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/timetable-editor/internal/config"
	"github.com/timetable-editor/internal/domain/repository"
	"github.com/timetable-editor/internal/repository/cache"
	"github.com/timetable-editor/internal/repository/memory"
	"github.com/timetable-editor/internal/repository/mongodb"
	"github.com/timetable-editor/internal/repository/postgres"
)

// Store - открытое хранилище и его зависимости
type Store struct {
	Timetable repository.TimetableStore
	Health    map[string]func(ctx context.Context) error
	closers   []func() error
	logger    *zap.Logger
}

// Close закрывает соединения в обратном порядке
func (s *Store) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.logger.Error("Failed to close store connection", zap.Error(err))
		}
	}
}

// OpenStore подключает хранилище по STORE_DRIVER, при необходимости
// заполняет справочник станций и оборачивает его кешем каталога.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Store, error) {
	s := &Store{
		Health: make(map[string]func(ctx context.Context) error),
		logger: log,
	}
	stations := memory.LineStations()

	var store repository.TimetableStore
	switch cfg.Store.Driver {
	case config.StoreMongo:
		db, err := mongodb.New(&cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)
		s.Health["mongo"] = db.Health

		if err := db.EnsureIndexes(ctx); err != nil {
			s.Close()
			return nil, err
		}
		if cfg.Store.SeedStations {
			inserted, err := mongodb.SeedStations(ctx, db, stations)
			if err != nil {
				s.Close()
				return nil, err
			}
			log.Info("Stations seeded", zap.Int("inserted", inserted))
		}
		store = mongodb.NewStore(db, log)

	case config.StorePostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)
		s.Health["postgres"] = db.Health

		if err := db.Migrate(ctx); err != nil {
			s.Close()
			return nil, err
		}
		if cfg.Store.SeedStations {
			inserted, err := postgres.SeedStations(ctx, db, stations)
			if err != nil {
				s.Close()
				return nil, err
			}
			log.Info("Stations seeded", zap.Int("inserted", inserted))
		}
		store = postgres.NewStore(db)

	case config.StoreMemory:
		log.Warn("Using in-memory store, data is lost on restart")
		store = memory.NewStore(stations)

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	s.Timetable = cache.WithStationCatalog(store, cfg.Cache.StationCatalogTTL, log)
	log.Info("Store opened", zap.String("driver", cfg.Store.Driver))
	return s, nil
}
