package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamTrainSynced = "stream:timetable:synced"
)

type SyncAction string

const (
	SyncActionSaved   SyncAction = "saved"
	SyncActionDeleted SyncAction = "deleted"
)

// TrainSyncedEvent - публикуется после успешной записи или удаления поезда
type TrainSyncedEvent struct {
	OperationID     uuid.UUID  `json:"operation_id"`
	TrainID         string     `json:"train_id"`
	Action          SyncAction `json:"action"`
	StationsUpdated int        `json:"stations_updated"`
	OccurredAt      time.Time  `json:"occurred_at"`
}

// IsValid проверяет обязательные поля события
func (e *TrainSyncedEvent) IsValid() bool {
	if e.OperationID == uuid.Nil || e.TrainID == "" {
		return false
	}
	return e.Action == SyncActionSaved || e.Action == SyncActionDeleted
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
