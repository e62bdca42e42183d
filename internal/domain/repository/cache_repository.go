package repository

import (
	"context"
	"time"

	"github.com/timetable-editor/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetTrainList получает список поездов; промах - (nil, nil)
	GetTrainList(ctx context.Context) ([]domain.TrainSummary, error)

	// SetTrainList сохраняет список поездов
	SetTrainList(ctx context.Context, trains []domain.TrainSummary, ttl time.Duration) error

	// InvalidateTrainList сбрасывает список после записи или удаления
	InvalidateTrainList(ctx context.Context) error
}
