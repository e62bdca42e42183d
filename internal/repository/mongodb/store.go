package mongodb

import (
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain/repository"
)

type store struct {
	repository.TrainRepository
	repository.StationRepository
}

// NewStore - обе коллекции поверх одного подключения
func NewStore(db *DB, logger *zap.Logger) repository.TimetableStore {
	return &store{
		TrainRepository:   NewTrainRepository(db, logger),
		StationRepository: NewStationRepository(db, logger),
	}
}
