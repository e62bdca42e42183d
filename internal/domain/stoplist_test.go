package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsFor(t *testing.T) {
	none := StationExtras{}
	dual := StationExtras{DualTimes: true}

	assert.Equal(t, FieldSet{Departure: true, Platform: true}, FieldsFor(RoleOrigin, none))
	assert.Equal(t, FieldSet{Arrival: true, Platform: true}, FieldsFor(RoleDestination, none))
	assert.Equal(t, FieldSet{Departure: true, Platform: true}, FieldsFor(RoleVia, none))
	assert.Equal(t, FieldSet{Arrival: true, Departure: true, Platform: true}, FieldsFor(RoleDestination, dual))
	assert.Equal(t, FieldSet{Arrival: true, Departure: true, Platform: true}, FieldsFor(RoleVia, dual))
}

func TestExtrasFor(t *testing.T) {
	assert.True(t, ExtrasFor(CompanyShinanoRailway, StationNagano).SuccessorTrain)
	assert.True(t, ExtrasFor(CompanyShinanoRailway, StationKomoro).SuccessorTrain)
	assert.True(t, ExtrasFor(CompanyJRIiyama, StationToyono).DualTimes)
	assert.Equal(t, StationExtras{}, ExtrasFor(CompanyJRIiyama, StationNagano))
	assert.Equal(t, StationExtras{}, ExtrasFor(CompanyShinanoRailway, StationToyono))
}

func TestBuildRows(t *testing.T) {
	stations := TraversalOrder(lineStations(), DirectionDown)
	stops := []Stop{
		{StationID: "komoro", Departure: "09:00", Platform: &Platform{Departure: "2"}},
		{StationID: "ueda", Departure: "09:13"},
		{StationID: "nagano", Arrival: "09:40", SuccessorTrain: "1613M"},
	}

	rows := BuildRows(stations, stops, RowContext{Direction: DirectionDown, Company: CompanyShinanoRailway})
	require.Len(t, rows, 5)

	assert.False(t, rows[0].Checked)
	assert.Empty(t, rows[0].Role)

	assert.True(t, rows[1].Checked)
	assert.Equal(t, RoleOrigin, rows[1].Role)
	assert.Equal(t, "2", rows[1].PlatformDeparture)
	assert.Equal(t, "2 (recommended)", rows[1].Placeholders.Departure)
	assert.True(t, rows[1].Fields.SuccessorTrain)

	assert.Equal(t, RoleVia, rows[2].Role)

	assert.Equal(t, RoleDestination, rows[3].Role)
	assert.Equal(t, "1613M", rows[3].SuccessorTrain)
	assert.Equal(t, FieldSet{Arrival: true, Platform: true, SuccessorTrain: true}, rows[3].Fields)

	assert.False(t, rows[4].Checked)
}

func TestBuildRows_ExplicitTerminals(t *testing.T) {
	stations := TraversalOrder(lineStations(), DirectionDown)
	stops := []Stop{{StationID: "ueda", Departure: "09:13"}}

	rows := BuildRows(stations, stops, RowContext{Direction: DirectionDown, Origin: "komoro", Destination: "nagano"})

	assert.Equal(t, RoleVia, rows[2].Role)
}

func TestRowsToStops(t *testing.T) {
	ctx := RowContext{Direction: DirectionDown, Company: CompanyShinanoRailway}
	rows := []EditorRow{
		{StationID: "karuizawa", Checked: true, Arrival: "08:40", Departure: "08:45"},
		{StationID: "komoro", Checked: false, Departure: "09:00"},
		{StationID: "ueda", Checked: true},
		{StationID: "shinonoi", Checked: true, Departure: " 09:30 ", PlatformArrival: "1"},
		{StationID: "nagano", Checked: true, Departure: "09:40", SuccessorTrain: "1613M"},
	}

	stops := RowsToStops(rows, ctx)

	assert.Equal(t, []Stop{
		{StationID: "karuizawa", Departure: "08:45"},
		{StationID: "shinonoi", Departure: "09:30", Platform: &Platform{Arrival: "1"}},
		{StationID: "nagano", Arrival: "09:40", SuccessorTrain: "1613M"},
	}, stops)
}

func TestRowsToStops_OriginArrivalMovesToDeparture(t *testing.T) {
	rows := []EditorRow{
		{StationID: "komoro", Checked: true, Arrival: "09:00"},
		{StationID: "ueda", Checked: true, Arrival: "09:13"},
	}

	stops := RowsToStops(rows, RowContext{Direction: DirectionDown, Company: CompanyShinanoRailway})

	assert.Equal(t, []Stop{
		{StationID: "komoro", Departure: "09:00"},
		{StationID: "ueda", Arrival: "09:13"},
	}, stops)
}

func TestRowsToStops_DualTimes(t *testing.T) {
	rows := []EditorRow{
		{StationID: "nagano", Checked: true, Departure: "10:00"},
		{StationID: "toyono", Checked: true, Arrival: "10:15", Departure: "10:20"},
		{StationID: "myoko-kogen", Checked: true, Arrival: "11:00"},
	}

	stops := RowsToStops(rows, RowContext{Direction: DirectionDown, Company: CompanyJRIiyama})

	require.Len(t, stops, 3)
	assert.Equal(t, Stop{StationID: "toyono", Arrival: "10:15", Departure: "10:20"}, stops[1])
}

func TestRowsToStops_SuccessorOnlyWhereApplicable(t *testing.T) {
	rows := []EditorRow{
		{StationID: "ueda", Checked: true, Departure: "09:00", SuccessorTrain: "999M"},
		{StationID: "nagano", Checked: true, Arrival: "09:30", SuccessorTrain: "1613M"},
	}

	stops := RowsToStops(rows, RowContext{Direction: DirectionDown, Company: CompanyJRIiyama})

	assert.Empty(t, stops[0].SuccessorTrain)
	assert.Empty(t, stops[1].SuccessorTrain)
}

func TestApplySection(t *testing.T) {
	rows := BuildRows(TraversalOrder(lineStations(), DirectionUp), nil, RowContext{Direction: DirectionUp})

	require.NoError(t, ApplySection(rows, "nagano", "komoro"))

	var checked []string
	for _, r := range rows {
		if r.Checked {
			checked = append(checked, r.StationID)
		}
	}
	assert.Equal(t, []string{"nagano", "ueda", "komoro"}, checked)

	assert.ErrorIs(t, ApplySection(rows, "nagano", "myoko-kogen"), ErrStationNotInList)
}

func TestResolveTerminals(t *testing.T) {
	rows := []EditorRow{
		{StationID: "a"},
		{StationID: "b", Checked: true},
		{StationID: "c", Checked: true},
		{StationID: "d"},
	}

	origin, destination := ResolveTerminals(rows)
	assert.Equal(t, "b", origin)
	assert.Equal(t, "c", destination)

	origin, destination = ResolveTerminals(nil)
	assert.Empty(t, origin)
	assert.Empty(t, destination)
}
