package cache

import (
	"context"
	"time"

	"github.com/bluele/gcache"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
)

const stationCatalogKey = "stations"

// stationCatalog кеширует список станций в памяти процесса.
// Станции не меняются приложением, поэтому кеш сбрасывается только по TTL.
// Записи станций (stop_trains) всегда читаются из хранилища.
type stationCatalog struct {
	repository.StationRepository
	cache  gcache.Cache
	logger *zap.Logger
}

// NewStationCatalog оборачивает StationRepository кешем ListStations
func NewStationCatalog(next repository.StationRepository, ttl time.Duration, logger *zap.Logger) repository.StationRepository {
	builder := gcache.New(1).LRU()
	if ttl > 0 {
		builder = builder.Expiration(ttl)
	}
	return &stationCatalog{
		StationRepository: next,
		cache:             builder.Build(),
		logger:            logger,
	}
}

// ListStations на промахе читает хранилище с контекстом вызова
func (c *stationCatalog) ListStations(ctx context.Context) ([]domain.Station, error) {
	if v, err := c.cache.GetIFPresent(stationCatalogKey); err == nil {
		return copyStations(v.([]domain.Station)), nil
	}

	stations, err := c.StationRepository.ListStations(ctx)
	if err != nil {
		c.logger.Error("Failed to load station catalog", zap.Error(err))
		return nil, err
	}

	if err := c.cache.Set(stationCatalogKey, copyStations(stations)); err != nil {
		c.logger.Warn("Failed to cache station catalog", zap.Error(err))
	}
	return copyStations(stations), nil
}

func copyStations(in []domain.Station) []domain.Station {
	out := make([]domain.Station, len(in))
	copy(out, in)
	return out
}

// catalogStore подменяет StationRepository в TimetableStore
type catalogStore struct {
	repository.TrainRepository
	repository.StationRepository
}

// WithStationCatalog возвращает хранилище, у которого ListStations идет через кеш
func WithStationCatalog(store repository.TimetableStore, ttl time.Duration, logger *zap.Logger) repository.TimetableStore {
	return &catalogStore{
		TrainRepository:   store,
		StationRepository: NewStationCatalog(store, ttl, logger),
	}
}
