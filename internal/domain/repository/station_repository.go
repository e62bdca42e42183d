package repository

import (
	"context"

	"github.com/timetable-editor/internal/domain"
)

// StationRepository определяет методы для работы со станциями и их списками поездов
type StationRepository interface {
	// ListStations возвращает станции по возрастанию Order
	ListStations(ctx context.Context) ([]domain.Station, error)

	// GetStationStops возвращает записи станции; exists=false, если документа станции нет
	GetStationStops(ctx context.Context, stationID string) (entries []domain.StationStopEntry, exists bool, err error)

	// CommitStationStops записывает новые списки записей всех станций одной
	// атомарной операцией: либо все, либо ни одной
	CommitStationStops(ctx context.Context, updates []domain.StationStopsUpdate) error
}

// TimetableStore - хранилище, обслуживающее обе коллекции
type TimetableStore interface {
	TrainRepository
	StationRepository
}
