package dto

import "github.com/timetable-editor/internal/domain"

// ClassifyRequest - роль станции для поезда
type ClassifyRequest struct {
	StationID     string           `json:"station_id" validate:"required"`
	OriginID      string           `json:"origin_id" validate:"required"`
	DestinationID string           `json:"destination_id" validate:"required"`
	Direction     domain.Direction `json:"direction" validate:"omitempty,oneof=up down"`
}

// AutofillRequest - строки редактора в порядке движения
type AutofillRequest struct {
	Direction domain.Direction   `json:"direction" validate:"required"`
	Rows      []domain.EditorRow `json:"rows" validate:"required,min=1,dive"`
}

// ValidateRequest - остановки-кандидаты перед сохранением
type ValidateRequest struct {
	Stops []domain.Stop `json:"stops" validate:"dive"`
}

// SectionRequest - отметить участок по шаблону или по паре станций
type SectionRequest struct {
	TemplateKey   string             `json:"template_key,omitempty"`
	OriginID      string             `json:"origin_id,omitempty" validate:"required_without=TemplateKey"`
	DestinationID string             `json:"destination_id,omitempty" validate:"required_without=TemplateKey"`
	Direction     domain.Direction   `json:"direction" validate:"omitempty,oneof=up down"`
	Company       domain.Company     `json:"company,omitempty"`
	Rows          []domain.EditorRow `json:"rows" validate:"required,min=1,dive"`
}

// LoadRequest - загрузка поезда в сессию
type LoadRequest struct {
	TrainID        string `json:"train_id" validate:"required,max=16"`
	ConfirmDiscard bool   `json:"confirm_discard"`
}

// DirtyRequest - отметка о несохраненных изменениях
type DirtyRequest struct {
	Dirty bool `json:"dirty"`
}

// SaveRequest - полная форма поезда; запись заменяется целиком
type SaveRequest struct {
	Type          string                 `json:"type" validate:"max=32"`
	Name          string                 `json:"name,omitempty" validate:"max=64"`
	OperationInfo domain.OperationInfo   `json:"operation_info" validate:"omitempty,oneof=everyday weekday holiday"`
	Origin        string                 `json:"origin,omitempty"`
	Destination   string                 `json:"destination,omitempty"`
	Connection    *domain.ConnectionInfo `json:"connection,omitempty"`
	Rows          []domain.EditorRow     `json:"rows" validate:"dive"`
}
