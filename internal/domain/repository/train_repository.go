package repository

import (
	"context"

	"github.com/timetable-editor/internal/domain"
)

// TrainRepository определяет методы для работы с записями поездов
type TrainRepository interface {
	// GetTrain возвращает поезд по номеру; отсутствие записи - (nil, nil)
	GetTrain(ctx context.Context, trainID string) (*domain.Train, error)

	// ListTrainIDs возвращает номера и направления всех поездов
	ListTrainIDs(ctx context.Context) ([]domain.TrainSummary, error)

	// PutTrain полностью заменяет запись поезда
	PutTrain(ctx context.Context, train *domain.Train) error

	// DeleteTrain удаляет запись; отсутствие записи не ошибка
	DeleteTrain(ctx context.Context, trainID string) error
}
