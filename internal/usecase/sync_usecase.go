package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
	"github.com/timetable-editor/internal/pkg/errors"
)

// Фазы записи для деталей SYNC_DIVERGED
const (
	PhaseReadStation    = "read_station"
	PhaseCommitStations = "commit_stations"
)

// SyncResult - итог одной операции синхронизации
type SyncResult struct {
	OperationID     uuid.UUID
	TrainID         string
	Action          domain.SyncAction
	StationsUpdated int
	OccurredAt      time.Time
}

// Event - событие для стрима
func (r SyncResult) Event() domain.TrainSyncedEvent {
	return domain.TrainSyncedEvent{
		OperationID:     r.OperationID,
		TrainID:         r.TrainID,
		Action:          r.Action,
		StationsUpdated: r.StationsUpdated,
		OccurredAt:      r.OccurredAt,
	}
}

// SyncUseCase поддерживает записи поезда в коллекциях trains и stations
// согласованными: на каждой станции остановки ровно одна запись поезда,
// на прочих станциях записей нет.
type SyncUseCase struct {
	store  repository.TimetableStore
	logger *zap.Logger
}

func NewSyncUseCase(store repository.TimetableStore, logger *zap.Logger) *SyncUseCase {
	return &SyncUseCase{store: store, logger: logger}
}

// Stations - станции в каноническом порядке
func (uc *SyncUseCase) Stations(ctx context.Context) ([]domain.Station, error) {
	stations, err := uc.store.ListStations(ctx)
	if err != nil {
		uc.logger.Error("Failed to list stations", zap.Error(err))
		return nil, errors.ErrStoreUnavailable.Wrap(err)
	}
	return domain.SortedCopy(stations), nil
}

// Read восстанавливает поезд: запись поезда плюс его записи на каждой станции.
// Отсутствие записи поезда - не ошибка (found=false).
func (uc *SyncUseCase) Read(ctx context.Context, trainID string) (*domain.Train, bool, error) {
	train, err := uc.store.GetTrain(ctx, trainID)
	if err != nil {
		uc.logger.Error("Failed to read train", zap.String("train_id", trainID), zap.Error(err))
		return nil, false, errors.ErrStoreUnavailable.Wrap(err)
	}
	if train == nil {
		return nil, false, nil
	}

	stations, err := uc.Stations(ctx)
	if err != nil {
		return nil, false, err
	}

	stops := make([]domain.Stop, 0, len(train.Stops))
	for _, st := range domain.TraversalOrder(stations, train.Direction) {
		entries, exists, err := uc.store.GetStationStops(ctx, st.ID)
		if err != nil {
			uc.logger.Error("Failed to read station",
				zap.String("train_id", trainID),
				zap.String("station_id", st.ID),
				zap.Error(err))
			return nil, false, errors.ErrStoreUnavailable.Wrap(err)
		}
		if !exists {
			continue
		}
		for _, e := range entries {
			if e.TrainID == trainID {
				stops = append(stops, e.ToStop(st.ID))
				break
			}
		}
	}
	train.Stops = stops

	return train, true, nil
}

// checkCandidate - инварианты записи, которые проверяются до обращения к хранилищу
func checkCandidate(train *domain.Train, stations []domain.Station) error {
	if train == nil || train.TrainNumber == "" {
		return errors.ErrInvalidTrainID
	}
	if err := train.Connection.Validate(); err != nil {
		return errors.ErrInvalidConnection.Wrap(err)
	}
	if err := domain.ValidateStops(train.Stops); err != nil {
		return invalidTimeError(err)
	}

	known := make(map[string]bool, len(stations))
	for _, st := range stations {
		known[st.ID] = true
	}
	seen := make(map[string]bool, len(train.Stops))
	for _, s := range train.Stops {
		if !known[s.StationID] {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"station_id": s.StationID,
				"reason":     "unknown station",
			})
		}
		if seen[s.StationID] {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"station_id": s.StationID,
				"reason":     "duplicate stop",
			})
		}
		seen[s.StationID] = true
	}
	return nil
}

func invalidTimeError(err error) error {
	var verr *domain.ValidationError
	if stderrors.As(err, &verr) {
		return errors.ErrInvalidTime.WithDetails(map[string]interface{}{
			"station_id": verr.StationID,
			"field":      string(verr.Field),
			"value":      verr.Value,
		})
	}
	return errors.ErrInvalidTime.Wrap(err)
}

func divergedError(trainID, phase, stationID string, cause error) error {
	details := map[string]interface{}{
		"train_id": trainID,
		"phase":    phase,
	}
	if stationID != "" {
		details["station_id"] = stationID
	}
	return errors.ErrSyncDiverged.WithDetails(details).Wrap(cause)
}

// Write заменяет запись поезда целиком, затем перестраивает записи поезда
// на всех станциях и коммитит их одной атомарной операцией.
func (uc *SyncUseCase) Write(ctx context.Context, train *domain.Train) (*SyncResult, error) {
	opID := uuid.New()
	log := uc.logger.With(zap.String("operation_id", opID.String()))

	stations, err := uc.Stations(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkCandidate(train, stations); err != nil {
		return nil, err
	}
	trainID := train.TrainNumber
	log = log.With(zap.String("train_id", trainID))

	if err := uc.store.PutTrain(ctx, train); err != nil {
		log.Error("Train write failed", zap.Error(err))
		return nil, errors.ErrTrainWriteFailed.Wrap(err)
	}

	updates := make([]domain.StationStopsUpdate, 0, len(stations))
	for _, st := range stations {
		entries, exists, err := uc.store.GetStationStops(ctx, st.ID)
		if err != nil {
			log.Error("Station read failed after train write",
				zap.String("station_id", st.ID),
				zap.Error(err))
			return nil, divergedError(trainID, PhaseReadStation, st.ID, err)
		}
		if !exists {
			log.Warn("Station document missing, skipped", zap.String("station_id", st.ID))
			continue
		}

		next := withoutTrain(entries, trainID)
		if stop := train.StopAt(st.ID); stop != nil {
			next = append(next, domain.NewStationStopEntry(train, *stop))
		}
		updates = append(updates, domain.StationStopsUpdate{StationID: st.ID, Entries: next})
	}

	if err := uc.store.CommitStationStops(ctx, updates); err != nil {
		log.Error("Station commit failed after train write", zap.Error(err))
		return nil, divergedError(trainID, PhaseCommitStations, "", err)
	}

	log.Info("Train saved",
		zap.Int("stops", len(train.Stops)),
		zap.Int("stations_updated", len(updates)))

	return &SyncResult{
		OperationID:     opID,
		TrainID:         trainID,
		Action:          domain.SyncActionSaved,
		StationsUpdated: len(updates),
		OccurredAt:      time.Now().UTC(),
	}, nil
}

// Delete удаляет запись поезда и его записи на станциях.
// Повторное удаление не ошибка; станции без записей поезда не переписываются.
func (uc *SyncUseCase) Delete(ctx context.Context, trainID string) (*SyncResult, error) {
	if trainID == "" {
		return nil, errors.ErrInvalidTrainID
	}
	opID := uuid.New()
	log := uc.logger.With(
		zap.String("operation_id", opID.String()),
		zap.String("train_id", trainID))

	stations, err := uc.Stations(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.store.DeleteTrain(ctx, trainID); err != nil {
		log.Error("Train delete failed", zap.Error(err))
		return nil, errors.ErrTrainWriteFailed.Wrap(err)
	}

	var updates []domain.StationStopsUpdate
	for _, st := range stations {
		entries, exists, err := uc.store.GetStationStops(ctx, st.ID)
		if err != nil {
			log.Error("Station read failed after train delete",
				zap.String("station_id", st.ID),
				zap.Error(err))
			return nil, divergedError(trainID, PhaseReadStation, st.ID, err)
		}
		if !exists {
			continue
		}
		next := withoutTrain(entries, trainID)
		if len(next) != len(entries) {
			updates = append(updates, domain.StationStopsUpdate{StationID: st.ID, Entries: next})
		}
	}

	if len(updates) > 0 {
		if err := uc.store.CommitStationStops(ctx, updates); err != nil {
			log.Error("Station commit failed after train delete", zap.Error(err))
			return nil, divergedError(trainID, PhaseCommitStations, "", err)
		}
	}

	log.Info("Train deleted", zap.Int("stations_updated", len(updates)))

	return &SyncResult{
		OperationID:     opID,
		TrainID:         trainID,
		Action:          domain.SyncActionDeleted,
		StationsUpdated: len(updates),
		OccurredAt:      time.Now().UTC(),
	}, nil
}

func withoutTrain(entries []domain.StationStopEntry, trainID string) []domain.StationStopEntry {
	out := make([]domain.StationStopEntry, 0, len(entries)+1)
	for _, e := range entries {
		if e.TrainID != trainID {
			out = append(out, e)
		}
	}
	return out
}
