package repository

import (
	"context"

	"github.com/timetable-editor/internal/domain"
)

// StreamRepository - журнал событий синхронизации поверх Redis Streams.
// Редактор публикует, воркер аудита читает через consumer group.
type StreamRepository interface {
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup идемпотентна: существующая группа не считается ошибкой
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream закрывает канал при отмене ctx
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	AckMessage(ctx context.Context, stream, group, messageID string) error
}
