package domain

import "fmt"

type TimeField string

const (
	FieldArrival   TimeField = "arrival"
	FieldDeparture TimeField = "departure"
)

// ValidationError указывает станцию и поле с неверным временем
type ValidationError struct {
	StationID string    `json:"station_id"`
	Field     TimeField `json:"field"`
	Value     string    `json:"value"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s time %q at station %s", e.Field, e.Value, e.StationID)
}

// ValidateStops проверяет формат заполненных времен и возвращает первое нарушение.
// Порядок времен вдоль маршрута не проверяется.
func ValidateStops(stops []Stop) error {
	for _, s := range stops {
		if s.Arrival != "" && !ValidClock(s.Arrival) {
			return &ValidationError{StationID: s.StationID, Field: FieldArrival, Value: s.Arrival}
		}
		if s.Departure != "" && !ValidClock(s.Departure) {
			return &ValidationError{StationID: s.StationID, Field: FieldDeparture, Value: s.Departure}
		}
	}
	return nil
}
