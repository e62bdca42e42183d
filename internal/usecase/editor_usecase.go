package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
	"github.com/timetable-editor/internal/pkg/errors"
	"github.com/timetable-editor/internal/pkg/utils"
	"github.com/timetable-editor/internal/usecase/dto"
)

// session - состояние одного окна редактора
type session struct {
	id       uuid.UUID
	train    *domain.Train
	analysis *domain.IdentifierAnalysis
	rows     []domain.EditorRow
	isNew    bool
	dirty    bool
	busy     bool
}

// EditorUseCase ведет сессии редактора поверх SyncEngine.
// Кеш и стрим необязательны: nil отключает их.
type EditorUseCase struct {
	sync         *SyncUseCase
	trains       repository.TrainRepository
	cache        repository.CacheRepository
	stream       repository.StreamRepository
	trainListTTL time.Duration
	logger       *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

func NewEditorUseCase(
	sync *SyncUseCase,
	trains repository.TrainRepository,
	cache repository.CacheRepository,
	stream repository.StreamRepository,
	trainListTTL time.Duration,
	logger *zap.Logger,
) *EditorUseCase {
	return &EditorUseCase{
		sync:         sync,
		trains:       trains,
		cache:        cache,
		stream:       stream,
		trainListTTL: trainListTTL,
		logger:       logger,
		sessions:     make(map[uuid.UUID]*session),
	}
}

func (s *session) response() *dto.SessionResponse {
	rows := make([]domain.EditorRow, len(s.rows))
	copy(rows, s.rows)
	return &dto.SessionResponse{
		ID:       s.id,
		Dirty:    s.dirty,
		Busy:     s.busy,
		IsNew:    s.isNew,
		Analysis: s.analysis,
		Train:    s.train,
		Rows:     rows,
	}
}

func (uc *EditorUseCase) CreateSession() *dto.SessionResponse {
	s := &session{id: uuid.New(), rows: []domain.EditorRow{}}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	uc.mu.Unlock()

	uc.logger.Debug("Editor session created", zap.String("session_id", s.id.String()))
	return s.response()
}

func (uc *EditorUseCase) GetSession(id uuid.UUID) (*dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return s.response(), nil
}

// MarkDirty отмечает несохраненные изменения в форме. Пока идет операция
// с хранилищем, флаг не меняется: ее завершение сбрасывает dirty.
func (uc *EditorUseCase) MarkDirty(id uuid.UUID, dirty bool) (*dto.SessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	if s.busy {
		return nil, errors.ErrOperationInProgress
	}
	s.dirty = dirty
	return s.response(), nil
}

// acquire занимает сессию на время операции с хранилищем.
// check выполняется под блокировкой до установки busy.
func (uc *EditorUseCase) acquire(id uuid.UUID, check func(*session) error) (*session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	if s.busy {
		return nil, errors.ErrOperationInProgress
	}
	if check != nil {
		if err := check(s); err != nil {
			return nil, err
		}
	}
	s.busy = true
	return s, nil
}

func (uc *EditorUseCase) release(s *session, apply func(*session)) *dto.SessionResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if apply != nil {
		apply(s)
	}
	s.busy = false
	return s.response()
}

func rowContext(train *domain.Train) domain.RowContext {
	return domain.RowContext{
		Direction:   train.Direction,
		Company:     train.Company,
		Origin:      train.Origin,
		Destination: train.Destination,
	}
}

// Load загружает поезд в сессию. Неизвестный номер открывает новый поезд
// с направлением и компанией, выведенными из номера.
func (uc *EditorUseCase) Load(ctx context.Context, id uuid.UUID, req dto.LoadRequest) (*dto.SessionResponse, error) {
	trainID := domain.NormalizeTrainID(req.TrainID)
	if trainID == "" {
		return nil, errors.ErrInvalidTrainID
	}

	s, err := uc.acquire(id, func(s *session) error {
		if s.dirty && !req.ConfirmDiscard {
			return errors.ErrUnsavedChanges
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	train, found, err := uc.sync.Read(ctx, trainID)
	if err != nil {
		uc.release(s, nil)
		return nil, err
	}
	if !found {
		train = domain.NewTrainTemplate(trainID)
	}

	stations, err := uc.sync.Stations(ctx)
	if err != nil {
		uc.release(s, nil)
		return nil, err
	}

	analysis := domain.AnalyzeIdentifier(trainID)
	rows := domain.BuildRows(domain.TraversalOrder(stations, train.Direction), train.Stops, rowContext(train))

	uc.logger.Info("Train loaded",
		zap.String("session_id", id.String()),
		zap.String("train_id", trainID),
		zap.Bool("is_new", !found),
		zap.Int("stops", len(train.Stops)))

	return uc.release(s, func(s *session) {
		s.train = train
		s.analysis = &analysis
		s.rows = rows
		s.isNew = !found
		s.dirty = false
	}), nil
}

// Save собирает поезд из формы и записывает его целиком.
// При ошибке признак несохраненных изменений остается.
func (uc *EditorUseCase) Save(ctx context.Context, id uuid.UUID, req dto.SaveRequest) (*dto.SyncResponse, error) {
	s, err := uc.acquire(id, func(s *session) error {
		if s.train == nil {
			return errors.ErrNoTrainLoaded
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	candidate := &domain.Train{
		TrainNumber:   s.train.TrainNumber,
		Type:          strings.TrimSpace(req.Type),
		Name:          strings.TrimSpace(req.Name),
		OperationInfo: req.OperationInfo,
		Direction:     s.train.Direction,
		Company:       s.train.Company,
		Origin:        req.Origin,
		Destination:   req.Destination,
		Connection:    req.Connection,
	}
	if candidate.Type == "" {
		candidate.Type = domain.DefaultTrainType
	}
	if candidate.OperationInfo == "" {
		candidate.OperationInfo = domain.OperationEveryday
	}
	candidate.Stops = domain.RowsToStops(req.Rows, rowContext(candidate))

	stations, err := uc.sync.Stations(ctx)
	if err != nil {
		uc.release(s, nil)
		return nil, err
	}

	result, err := uc.sync.Write(ctx, candidate)
	if err != nil {
		uc.release(s, nil)
		return nil, err
	}

	rows := domain.BuildRows(domain.TraversalOrder(stations, candidate.Direction), candidate.Stops, rowContext(candidate))

	uc.release(s, func(s *session) {
		s.train = candidate
		s.rows = rows
		s.isNew = false
		s.dirty = false
	})

	uc.afterSync(ctx, result)
	return syncResponse(result), nil
}

// DeleteTrain удаляет загруженный поезд; сессия остается пустой
func (uc *EditorUseCase) DeleteTrain(ctx context.Context, id uuid.UUID) (*dto.SyncResponse, error) {
	s, err := uc.acquire(id, func(s *session) error {
		if s.train == nil {
			return errors.ErrNoTrainLoaded
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := uc.sync.Delete(ctx, s.train.TrainNumber)
	if err != nil {
		uc.release(s, nil)
		return nil, err
	}

	uc.release(s, func(s *session) {
		s.train = nil
		s.analysis = nil
		s.rows = []domain.EditorRow{}
		s.isNew = false
		s.dirty = false
	})

	uc.afterSync(ctx, result)
	return syncResponse(result), nil
}

// afterSync сбрасывает кеш списка и публикует событие.
// Ошибки здесь не отменяют уже выполненную запись.
func (uc *EditorUseCase) afterSync(ctx context.Context, result *SyncResult) {
	if uc.cache != nil {
		if err := uc.cache.InvalidateTrainList(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate train list cache", zap.Error(err))
		}
	}
	if uc.stream != nil {
		event := result.Event()
		if err := uc.stream.PublishToStream(ctx, domain.StreamTrainSynced, &event); err != nil {
			uc.logger.Warn("Failed to publish sync event",
				zap.String("operation_id", result.OperationID.String()),
				zap.Error(err))
		}
	}
}

func syncResponse(r *SyncResult) *dto.SyncResponse {
	return &dto.SyncResponse{
		OperationID:     r.OperationID,
		TrainID:         r.TrainID,
		Action:          r.Action,
		StationsUpdated: r.StationsUpdated,
	}
}

// ListTrains - существующие поезда, отфильтрованные по подстроке номера
func (uc *EditorUseCase) ListTrains(ctx context.Context, filter string) ([]domain.TrainSummary, error) {
	trains, err := uc.loadTrainList(ctx)
	if err != nil {
		return nil, err
	}

	filter = domain.NormalizeTrainID(filter)
	out := make([]domain.TrainSummary, 0, len(trains))
	for _, t := range trains {
		if filter == "" || strings.Contains(strings.ToUpper(t.ID), filter) {
			out = append(out, t)
		}
	}
	utils.SortNatural(out, func(t domain.TrainSummary) string { return t.ID })
	return out, nil
}

func (uc *EditorUseCase) loadTrainList(ctx context.Context) ([]domain.TrainSummary, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetTrainList(ctx)
		if err != nil {
			uc.logger.Warn("Train list cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	trains, err := uc.trains.ListTrainIDs(ctx)
	if err != nil {
		uc.logger.Error("Failed to list trains", zap.Error(err))
		return nil, errors.ErrStoreUnavailable.Wrap(err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetTrainList(ctx, trains, uc.trainListTTL); err != nil {
			uc.logger.Warn("Train list cache write failed", zap.Error(err))
		}
	}
	return trains, nil
}

// GetTrain - поезд, восстановленный из хранилища, без сессии
func (uc *EditorUseCase) GetTrain(ctx context.Context, trainID string) (*dto.TrainResponse, error) {
	trainID = domain.NormalizeTrainID(trainID)
	if trainID == "" {
		return nil, errors.ErrInvalidTrainID
	}
	train, found, err := uc.sync.Read(ctx, trainID)
	if err != nil {
		return nil, err
	}
	return &dto.TrainResponse{Found: found, Train: train}, nil
}
