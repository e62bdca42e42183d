package dto

import (
	"github.com/google/uuid"

	"github.com/timetable-editor/internal/domain"
)

// RowsResponse - строки редактора после изменения
type RowsResponse struct {
	Rows []domain.EditorRow `json:"rows"`
}

// ValidationResponse - результат проверки остановок
type ValidationResponse struct {
	Valid bool `json:"valid"`
}

// SessionResponse - состояние сессии редактора
type SessionResponse struct {
	ID       uuid.UUID                  `json:"id"`
	Dirty    bool                       `json:"dirty"`
	Busy     bool                       `json:"busy"`
	IsNew    bool                       `json:"is_new"`
	Analysis *domain.IdentifierAnalysis `json:"analysis,omitempty"`
	Train    *domain.Train              `json:"train,omitempty"`
	Rows     []domain.EditorRow         `json:"rows"`
}

// SyncResponse - итог записи или удаления
type SyncResponse struct {
	OperationID     uuid.UUID         `json:"operation_id"`
	TrainID         string            `json:"train_id"`
	Action          domain.SyncAction `json:"action"`
	StationsUpdated int               `json:"stations_updated"`
}

// TrainResponse - поезд, восстановленный из хранилища
type TrainResponse struct {
	Found bool          `json:"found"`
	Train *domain.Train `json:"train"`
}
