package domain

import (
	"errors"
	"strings"
)

type Direction string

const (
	DirectionNone Direction = ""
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Label - текст направления для оператора
func (d Direction) Label() string {
	switch d {
	case DirectionUp:
		return "up (toward Karuizawa)"
	case DirectionDown:
		return "down (toward Nagano)"
	default:
		return "unknown"
	}
}

type Company string

const (
	CompanyNone           Company = ""
	CompanyShinanoRailway Company = "shinano-railway"
	CompanyJRIiyama       Company = "jr-iiyama"
	CompanyUnknown        Company = "unknown"
)

// DisplayName - название компании-оператора
func (c Company) DisplayName() string {
	switch c {
	case CompanyShinanoRailway:
		return "Shinano Railway"
	case CompanyJRIiyama:
		return "JR Iiyama Line"
	default:
		return "unknown"
	}
}

// OperationInfo - дни, по которым курсирует поезд
type OperationInfo string

const (
	OperationEveryday OperationInfo = "everyday"
	OperationWeekday  OperationInfo = "weekday"
	OperationHoliday  OperationInfo = "holiday"
)

const DefaultTrainType = "local"

type Platform struct {
	Arrival   string `json:"arrival,omitempty"`
	Departure string `json:"departure,omitempty"`
}

func (p *Platform) IsZero() bool {
	return p == nil || (p.Arrival == "" && p.Departure == "")
}

func (p *Platform) normalized() Platform {
	if p == nil {
		return Platform{}
	}
	return *p
}

// Stop - остановка поезда на станции
type Stop struct {
	StationID      string    `json:"station_id" validate:"required"`
	Arrival        string    `json:"arrival,omitempty"`
	Departure      string    `json:"departure,omitempty"`
	Platform       *Platform `json:"platform,omitempty"`
	SuccessorTrain string    `json:"successor_train,omitempty"`
}

type ConnectionKind string

const (
	ConnectionDirect   ConnectionKind = "direct"
	ConnectionTransfer ConnectionKind = "transfer"
	ConnectionSwitch   ConnectionKind = "switch"
)

// ConnectionInfo - продолжение поездки после конечной. Один вид на поезд.
type ConnectionInfo struct {
	Kind    ConnectionKind `json:"kind"`
	Station string         `json:"station"`
	Train   string         `json:"train"`
}

var ErrInvalidConnection = errors.New("invalid connection info")

func (c *ConnectionInfo) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Kind {
	case ConnectionDirect, ConnectionTransfer, ConnectionSwitch:
	default:
		return ErrInvalidConnection
	}
	if strings.TrimSpace(c.Station) == "" || strings.TrimSpace(c.Train) == "" {
		return ErrInvalidConnection
	}
	return nil
}

// Train - основная запись поезда. Сохраняется целиком, без частичных обновлений.
type Train struct {
	TrainNumber   string          `json:"train_number"`
	Type          string          `json:"type"`
	Name          string          `json:"name,omitempty"`
	OperationInfo OperationInfo   `json:"operation_info"`
	Direction     Direction       `json:"direction"`
	Company       Company         `json:"company"`
	Origin        string          `json:"origin,omitempty"`
	Destination   string          `json:"destination,omitempty"`
	Connection    *ConnectionInfo `json:"connection,omitempty"`
	Stops         []Stop          `json:"stops"`
}

// StopAt возвращает остановку на станции или nil
func (t *Train) StopAt(stationID string) *Stop {
	if t == nil {
		return nil
	}
	for i := range t.Stops {
		if t.Stops[i].StationID == stationID {
			return &t.Stops[i]
		}
	}
	return nil
}

// NewTrainTemplate - пустая запись для нового номера с выведенными направлением и компанией
func NewTrainTemplate(trainID string) *Train {
	analysis := AnalyzeIdentifier(trainID)
	return &Train{
		TrainNumber:   trainID,
		Type:          DefaultTrainType,
		OperationInfo: OperationEveryday,
		Direction:     analysis.Direction,
		Company:       analysis.Company,
		Stops:         []Stop{},
	}
}

// TrainSummary - элемент списка поездов
type TrainSummary struct {
	ID        string    `json:"id" db:"id"`
	Direction Direction `json:"direction" db:"direction"`
}
