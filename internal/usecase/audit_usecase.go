package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
	"github.com/timetable-editor/internal/pkg/errors"
)

// AuditUseCase сравнивает запись поезда с записями станций.
// Только отчет: расхождения исправляются повторным сохранением.
type AuditUseCase struct {
	store  repository.TimetableStore
	logger *zap.Logger
}

func NewAuditUseCase(store repository.TimetableStore, logger *zap.Logger) *AuditUseCase {
	return &AuditUseCase{store: store, logger: logger}
}

func (uc *AuditUseCase) Check(ctx context.Context, trainID string) (*domain.ConsistencyReport, error) {
	if trainID == "" {
		return nil, errors.ErrInvalidTrainID
	}

	train, err := uc.store.GetTrain(ctx, trainID)
	if err != nil {
		return nil, errors.ErrStoreUnavailable.Wrap(err)
	}

	stations, err := uc.store.ListStations(ctx)
	if err != nil {
		return nil, errors.ErrStoreUnavailable.Wrap(err)
	}

	entries := make(map[string][]domain.StationStopEntry, len(stations))
	for _, st := range stations {
		list, exists, err := uc.store.GetStationStops(ctx, st.ID)
		if err != nil {
			return nil, errors.ErrStoreUnavailable.Wrap(err)
		}
		if exists {
			entries[st.ID] = list
		}
	}

	report := domain.CompareTrainWithEntries(trainID, train, stations, entries)
	return &report, nil
}

// HandleSyncedEvent проверяет поезд после события синхронизации
func (uc *AuditUseCase) HandleSyncedEvent(ctx context.Context, event *domain.TrainSyncedEvent) (*domain.ConsistencyReport, error) {
	report, err := uc.Check(ctx, event.TrainID)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("operation_id", event.OperationID.String()),
		zap.String("train_id", event.TrainID),
		zap.String("action", string(event.Action)),
	}

	// после удаления запись поезда должна отсутствовать
	if event.Action == domain.SyncActionDeleted && report.TrainExists {
		uc.logger.Warn("Deleted train still has a record", fields...)
	}

	if report.Consistent {
		uc.logger.Debug("Train consistent", fields...)
		return report, nil
	}

	uc.logger.Warn("Train and station entries diverged",
		append(fields,
			zap.Strings("missing", report.MissingEntries),
			zap.Strings("stale", report.StaleEntries),
			zap.Strings("duplicate", report.DuplicateEntries),
			zap.Strings("mismatched", report.MismatchedEntries))...)
	return report, nil
}
