package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
	"github.com/timetable-editor/internal/worker"
)

const retryDelay = 500 * time.Millisecond

// EventHandler проверяет поезд по событию синхронизации
type EventHandler interface {
	HandleSyncedEvent(ctx context.Context, event *domain.TrainSyncedEvent) (*domain.ConsistencyReport, error)
}

// ConsistencyWorker читает события stream:timetable:synced и сверяет
// запись поезда с записями станций. Расхождения только логируются.
type ConsistencyWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	handler    EventHandler
	maxRetries int
}

func NewConsistencyWorker(
	streamRepo repository.StreamRepository,
	handler EventHandler,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *ConsistencyWorker {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &ConsistencyWorker{
		BaseWorker: worker.NewBaseWorker("timetable-consistency", consumerGroup, logger),
		streamRepo: streamRepo,
		handler:    handler,
		maxRetries: maxRetries,
	}
}

// Start запускает воркер; возвращается после Stop или отмены контекста
func (w *ConsistencyWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting consistency worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamTrainSynced, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamTrainSynced, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream closed")
				return nil
			}
			w.processMessage(ctx, msg)
		}
	}
}

func (w *ConsistencyWorker) processMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	event, err := parseMessage(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping", zap.Error(err))
		// битое сообщение подтверждаем, чтобы не застревало в pending
		w.ack(ctx, msg.ID)
		return
	}

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		_, err = w.handler.HandleSyncedEvent(ctx, event)
		if err == nil {
			break
		}
		logger.Warn("Consistency check failed",
			zap.String("train_id", event.TrainID),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < w.maxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
		}
	}
	if err != nil {
		logger.Error("Giving up on sync event",
			zap.String("train_id", event.TrainID),
			zap.String("operation_id", event.OperationID.String()))
	}

	w.ack(ctx, msg.ID)
}

func (w *ConsistencyWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamTrainSynced, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", messageID), zap.Error(err))
	}
}

func parseMessage(msg domain.StreamMessage) (*domain.TrainSyncedEvent, error) {
	var event domain.TrainSyncedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if !event.IsValid() {
		return nil, fmt.Errorf("invalid event: train_id=%q action=%q", event.TrainID, event.Action)
	}
	return &event, nil
}
