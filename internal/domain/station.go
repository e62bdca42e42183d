package domain

import "sort"

// Идентификаторы станций, для которых действуют особые правила
const (
	StationKaruizawa  = "karuizawa"
	StationKomoro     = "komoro"
	StationNagano     = "nagano"
	StationToyono     = "toyono"
	StationMyokoKogen = "myoko-kogen"
)

// Station - станция линии. Order задает порядок от Karuizawa к Myoko-Kogen.
type Station struct {
	ID     string `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	NameEn string `json:"name_en,omitempty" db:"name_en"`
	Order  int    `json:"order" db:"sort_order"`
}

// StationStopEntry - денормализованная копия остановки поезда,
// хранящаяся в документе станции.
type StationStopEntry struct {
	TrainID        string        `json:"train_id"`
	OperationInfo  OperationInfo `json:"operation_info"`
	Arrival        string        `json:"arrival,omitempty"`
	Departure      string        `json:"departure,omitempty"`
	Platform       *Platform     `json:"platform,omitempty"`
	SuccessorTrain string        `json:"successor_train,omitempty"`
}

// StationStopsUpdate - новый полный список записей для одной станции
type StationStopsUpdate struct {
	StationID string
	Entries   []StationStopEntry
}

// NewStationStopEntry строит запись станции из остановки поезда.
// Пустые поля не переносятся.
func NewStationStopEntry(train *Train, stop Stop) StationStopEntry {
	entry := StationStopEntry{
		TrainID:        train.TrainNumber,
		OperationInfo:  train.OperationInfo,
		Arrival:        stop.Arrival,
		Departure:      stop.Departure,
		SuccessorTrain: stop.SuccessorTrain,
	}
	if !stop.Platform.IsZero() {
		p := *stop.Platform
		entry.Platform = &p
	}
	return entry
}

// ToStop восстанавливает остановку поезда из записи станции
func (e StationStopEntry) ToStop(stationID string) Stop {
	stop := Stop{
		StationID:      stationID,
		Arrival:        e.Arrival,
		Departure:      e.Departure,
		SuccessorTrain: e.SuccessorTrain,
	}
	if !e.Platform.IsZero() {
		p := *e.Platform
		stop.Platform = &p
	}
	return stop
}

// Equal сравнивает записи по значению
func (e StationStopEntry) Equal(other StationStopEntry) bool {
	return e.TrainID == other.TrainID &&
		e.OperationInfo == other.OperationInfo &&
		e.Arrival == other.Arrival &&
		e.Departure == other.Departure &&
		e.SuccessorTrain == other.SuccessorTrain &&
		e.Platform.normalized() == other.Platform.normalized()
}

// SortStations сортирует станции по Order
func SortStations(stations []Station) {
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].Order < stations[j].Order
	})
}

// SortedCopy - отсортированная копия списка станций
func SortedCopy(stations []Station) []Station {
	ordered := make([]Station, len(stations))
	copy(ordered, stations)
	SortStations(ordered)
	return ordered
}

// TraversalOrder возвращает станции в порядке движения поезда:
// down - по возрастанию Order, up - в обратном порядке.
func TraversalOrder(stations []Station, direction Direction) []Station {
	ordered := SortedCopy(stations)
	if direction == DirectionUp {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}
	return ordered
}
