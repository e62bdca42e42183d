package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
)

const trainListKey = "timetable:trains:list"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

// GetTrainList получает список поездов из кеша
func (r *cacheRepository) GetTrainList(ctx context.Context) ([]domain.TrainSummary, error) {
	data, err := r.Get(ctx, trainListKey)
	if err != nil || data == nil {
		return nil, err
	}

	var trains []domain.TrainSummary
	if err := json.Unmarshal(data, &trains); err != nil {
		r.logger.Warn("Dropping undecodable train list", zap.Error(err))
		_ = r.Delete(ctx, trainListKey)
		return nil, nil
	}
	return trains, nil
}

// SetTrainList сохраняет список поездов в кеше
func (r *cacheRepository) SetTrainList(ctx context.Context, trains []domain.TrainSummary, ttl time.Duration) error {
	data, err := json.Marshal(trains)
	if err != nil {
		return fmt.Errorf("marshal train list: %w", err)
	}
	return r.Set(ctx, trainListKey, data, ttl)
}

func (r *cacheRepository) InvalidateTrainList(ctx context.Context) error {
	return r.Delete(ctx, trainListKey)
}
