package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
)

const (
	readBatchSize = 10
	readBlock     = time.Second
	retryBackoff  = time.Second
)

type streamRepository struct {
	client redis.Cmdable
	logger *zap.Logger
}

// NewStreamRepository создает новый экземпляр StreamRepository
func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

// CreateConsumerGroup создаёт consumer group; существующая группа не ошибка
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group ready",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeStream читает сообщения группы. Сначала отдаются неподтвержденные
// сообщения этого consumer (после рестарта), затем новые.
func (r *streamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	msgChan := make(chan domain.StreamMessage, readBatchSize)

	go func() {
		defer close(msgChan)
		r.consume(ctx, stream, group, consumer, msgChan)

		r.logger.Info("Stream consumer stopped",
			zap.String("stream", stream),
			zap.String("consumer", consumer))
	}()

	return msgChan, nil
}

// consume - цикл чтения. В режиме истории курсор сдвигается за последнее
// прочитанное pending-сообщение; пустой ответ переключает на ">".
func (r *streamRepository) consume(ctx context.Context, stream, group, consumer string, out chan<- domain.StreamMessage) {
	lastID, history := "0", true

	for ctx.Err() == nil {
		result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{stream, lastID},
			Count:    readBatchSize,
			Block:    readBlock,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				if history {
					lastID, history = ">", false
				}
				continue
			}
			if ctx.Err() != nil {
				return
			}
			r.logger.Error("Failed to read from stream",
				zap.String("stream", stream),
				zap.Error(err))
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
			}
			continue
		}

		read := 0
		for _, s := range result {
			for _, msg := range s.Messages {
				read++
				if history {
					lastID = msg.ID
				}

				data, ok := msg.Values["data"].(string)
				if !ok {
					// без полезной нагрузки обработать нечего, иначе оно навсегда останется в pending
					r.logger.Warn("Message does not contain 'data' field, acknowledged",
						zap.String("message_id", msg.ID))
					_ = r.AckMessage(ctx, stream, group, msg.ID)
					continue
				}

				select {
				case out <- domain.StreamMessage{ID: msg.ID, Data: data}:
				case <-ctx.Done():
					return
				}
			}
		}

		if history && read == 0 {
			lastID, history = ">", false
		}
	}
}

// AckMessage подтверждает обработку сообщения
func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		r.logger.Error("Failed to acknowledge message",
			zap.String("stream", stream),
			zap.String("message_id", messageID),
			zap.Error(err))
		return fmt.Errorf("failed to acknowledge message: %w", err)
	}
	return nil
}

// PublishToStream публикует JSON в поле "data"
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{"data": string(payload)},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", id))
	return nil
}
