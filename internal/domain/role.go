package domain

type Role string

const (
	RoleOrigin      Role = "origin"
	RoleVia         Role = "via"
	RoleDestination Role = "destination"
)

const (
	DefaultArrivalPlaceholder   = "arrival platform"
	DefaultDeparturePlaceholder = "departure platform"
)

type Placeholders struct {
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
}

type RoleClassification struct {
	Role         Role         `json:"role"`
	Placeholders Placeholders `json:"placeholders"`
}

type placeholderKey struct {
	stationID string
	direction Direction
	role      Role
}

// platformPlaceholders - рекомендуемые номера путей. Пустое значение
// означает стандартный текст. Новые станции добавляются строками таблицы.
var platformPlaceholders = map[placeholderKey]Placeholders{
	{StationKomoro, DirectionUp, RoleVia}:           {Arrival: "1 (recommended)", Departure: "1 (recommended)"},
	{StationKomoro, DirectionUp, RoleDestination}:   {Arrival: "2 (recommended)"},
	{StationKomoro, DirectionUp, RoleOrigin}:        {Departure: "3 (recommended)"},
	{StationKomoro, DirectionDown, RoleVia}:         {Arrival: "3 (recommended)", Departure: "3 (recommended)"},
	{StationKomoro, DirectionDown, RoleDestination}: {Arrival: "3 (recommended)", Departure: "3 (recommended)"},
	{StationKomoro, DirectionDown, RoleOrigin}:      {Departure: "2 (recommended)"},
}

// RoleFor определяет роль станции по выбранным начальной и конечной станциям
func RoleFor(stationID, originID, destinationID string) Role {
	switch stationID {
	case originID:
		return RoleOrigin
	case destinationID:
		return RoleDestination
	default:
		return RoleVia
	}
}

// PlaceholdersFor возвращает подсказки для полей путей
func PlaceholdersFor(stationID string, direction Direction, role Role) Placeholders {
	ph := Placeholders{
		Arrival:   DefaultArrivalPlaceholder,
		Departure: DefaultDeparturePlaceholder,
	}
	rule, ok := platformPlaceholders[placeholderKey{stationID, direction, role}]
	if !ok {
		return ph
	}
	if rule.Arrival != "" {
		ph.Arrival = rule.Arrival
	}
	if rule.Departure != "" {
		ph.Departure = rule.Departure
	}
	return ph
}

// ClassifyRole - роль станции для поезда и подсказки путей
func ClassifyRole(station Station, originID, destinationID string, direction Direction) RoleClassification {
	role := RoleFor(station.ID, originID, destinationID)
	return RoleClassification{
		Role:         role,
		Placeholders: PlaceholdersFor(station.ID, direction, role),
	}
}
