package domain

import (
	"errors"
	"strings"
)

var ErrStationNotInList = errors.New("station is not in the editor list")

// StationExtras - дополнительные поля, которые компания показывает на станции
type StationExtras struct {
	SuccessorTrain bool `json:"successor_train"`
	DualTimes      bool `json:"dual_times"`
}

type companyStationKey struct {
	company   Company
	stationID string
}

var companyStationExtras = map[companyStationKey]StationExtras{
	{CompanyShinanoRailway, StationNagano}: {SuccessorTrain: true},
	{CompanyShinanoRailway, StationKomoro}: {SuccessorTrain: true},
	{CompanyJRIiyama, StationToyono}:       {DualTimes: true},
}

// ExtrasFor - фиксированные правила формы по (компания, станция)
func ExtrasFor(company Company, stationID string) StationExtras {
	return companyStationExtras[companyStationKey{company, stationID}]
}

// FieldSet - какие поля строки редактора применимы
type FieldSet struct {
	Arrival        bool `json:"arrival"`
	Departure      bool `json:"departure"`
	Platform       bool `json:"platform"`
	SuccessorTrain bool `json:"successor_train"`
}

// FieldsFor: у начальной только отправление, у конечной только прибытие,
// у промежуточной отправление. DualTimes добавляет второе время.
func FieldsFor(role Role, extras StationExtras) FieldSet {
	fields := FieldSet{
		Platform:       true,
		SuccessorTrain: extras.SuccessorTrain,
	}
	switch role {
	case RoleOrigin:
		fields.Departure = true
	case RoleDestination:
		fields.Arrival = true
		fields.Departure = extras.DualTimes
	default:
		fields.Departure = true
		fields.Arrival = extras.DualTimes
	}
	return fields
}

// EditorRow - строка редактора: одна станция
type EditorRow struct {
	StationID         string       `json:"station_id" validate:"required"`
	StationName       string       `json:"station_name,omitempty"`
	Checked           bool         `json:"checked"`
	Role              Role         `json:"role,omitempty"`
	Arrival           string       `json:"arrival,omitempty"`
	Departure         string       `json:"departure,omitempty"`
	PlatformArrival   string       `json:"platform_arrival,omitempty"`
	PlatformDeparture string       `json:"platform_departure,omitempty"`
	SuccessorTrain    string       `json:"successor_train,omitempty"`
	Fields            FieldSet     `json:"fields"`
	Placeholders      Placeholders `json:"placeholders"`
}

func (r EditorRow) hasTime() bool {
	return strings.TrimSpace(r.Arrival) != "" || strings.TrimSpace(r.Departure) != ""
}

// RowContext - параметры поезда, влияющие на форму
type RowContext struct {
	Direction   Direction
	Company     Company
	Origin      string
	Destination string
}

// BuildRows строит строки редактора для станций (уже в порядке движения)
// и остановок поезда.
func BuildRows(stations []Station, stops []Stop, ctx RowContext) []EditorRow {
	byStation := make(map[string]Stop, len(stops))
	for _, s := range stops {
		byStation[s.StationID] = s
	}

	rows := make([]EditorRow, 0, len(stations))
	for _, st := range stations {
		row := EditorRow{
			StationID:   st.ID,
			StationName: st.Name,
		}
		if stop, ok := byStation[st.ID]; ok {
			row.Checked = true
			row.Arrival = stop.Arrival
			row.Departure = stop.Departure
			row.SuccessorTrain = stop.SuccessorTrain
			if stop.Platform != nil {
				row.PlatformArrival = stop.Platform.Arrival
				row.PlatformDeparture = stop.Platform.Departure
			}
		}
		rows = append(rows, row)
	}

	ShapeRows(rows, ctx)
	return rows
}

// ResolveTerminals - первая и последняя отмеченные строки
func ResolveTerminals(rows []EditorRow) (origin, destination string) {
	for _, r := range rows {
		if !r.Checked {
			continue
		}
		if origin == "" {
			origin = r.StationID
		}
		destination = r.StationID
	}
	return origin, destination
}

func terminalsFor(rows []EditorRow, ctx RowContext) (string, string) {
	origin, destination := ctx.Origin, ctx.Destination
	if origin == "" || destination == "" {
		first, last := ResolveTerminals(rows)
		if origin == "" {
			origin = first
		}
		if destination == "" {
			destination = last
		}
	}
	return origin, destination
}

// ShapeRows проставляет роли, набор полей и подсказки. Значения не меняются.
func ShapeRows(rows []EditorRow, ctx RowContext) {
	origin, destination := terminalsFor(rows, ctx)
	for i := range rows {
		role := RoleVia
		rows[i].Role = ""
		if rows[i].Checked {
			role = RoleFor(rows[i].StationID, origin, destination)
			rows[i].Role = role
		}
		rows[i].Fields = FieldsFor(role, ExtrasFor(ctx.Company, rows[i].StationID))
		rows[i].Placeholders = PlaceholdersFor(rows[i].StationID, ctx.Direction, role)
	}
}

// RowsToStops собирает остановки из строк. Строка дает остановку, только
// если она отмечена и содержит время. Одно время, введенное не в то поле,
// переносится в поле роли; неприменимые поля отбрасываются.
func RowsToStops(rows []EditorRow, ctx RowContext) []Stop {
	active := make([]EditorRow, 0, len(rows))
	for _, r := range rows {
		if r.Checked && r.hasTime() {
			active = append(active, r)
		}
	}
	ShapeRows(active, ctx)

	stops := make([]Stop, 0, len(active))
	for _, r := range active {
		arrival := strings.TrimSpace(r.Arrival)
		departure := strings.TrimSpace(r.Departure)

		if !r.Fields.Arrival {
			if departure == "" {
				departure = arrival
			}
			arrival = ""
		}
		if !r.Fields.Departure {
			if arrival == "" {
				arrival = departure
			}
			departure = ""
		}

		stop := Stop{
			StationID: r.StationID,
			Arrival:   arrival,
			Departure: departure,
		}
		platform := &Platform{
			Arrival:   strings.TrimSpace(r.PlatformArrival),
			Departure: strings.TrimSpace(r.PlatformDeparture),
		}
		if !platform.IsZero() {
			stop.Platform = platform
		}
		if r.Fields.SuccessorTrain {
			stop.SuccessorTrain = strings.TrimSpace(r.SuccessorTrain)
		}
		stops = append(stops, stop)
	}
	return stops
}

// ApplySection отмечает все строки между начальной и конечной станциями
// включительно, остальные снимает.
func ApplySection(rows []EditorRow, originID, destinationID string) error {
	from, to := -1, -1
	for i, r := range rows {
		if r.StationID == originID {
			from = i
		}
		if r.StationID == destinationID {
			to = i
		}
	}
	if from < 0 || to < 0 {
		return ErrStationNotInList
	}
	if from > to {
		from, to = to, from
	}
	for i := range rows {
		rows[i].Checked = i >= from && i <= to
	}
	return nil
}
