package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidClock(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"09:05", true},
		{"00:00", true},
		{"23:59", true},
		{"24:10", false},
		{"09:60", false},
		{"9:05", false},
		{"09:5", false},
		{"0905", false},
		{"", false},
		{" 09:05", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidClock(tt.value))
		})
	}
}

func TestParseAndFormatClock(t *testing.T) {
	minutes, ok := ParseClock("09:05")
	require.True(t, ok)
	assert.Equal(t, 545, minutes)

	_, ok = ParseClock("24:00")
	assert.False(t, ok)

	assert.Equal(t, "00:00", FormatClock(1440))
	assert.Equal(t, "23:59", FormatClock(-1))
	assert.Equal(t, "01:02", FormatClock(62))
}

func TestValidateStops(t *testing.T) {
	t.Run("absent fields are not checked", func(t *testing.T) {
		stops := []Stop{
			{StationID: "komoro", Departure: "09:05"},
			{StationID: "ueda", Arrival: "09:20"},
			{StationID: "togura"},
		}
		assert.NoError(t, ValidateStops(stops))
	})

	t.Run("reports first invalid field", func(t *testing.T) {
		stops := []Stop{
			{StationID: "komoro", Departure: "09:05"},
			{StationID: "ueda", Arrival: "24:10", Departure: "09:60"},
			{StationID: "togura", Departure: "xx"},
		}

		err := ValidateStops(stops)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "ueda", verr.StationID)
		assert.Equal(t, FieldArrival, verr.Field)
		assert.Equal(t, "24:10", verr.Value)
	})

	t.Run("departure reported", func(t *testing.T) {
		err := ValidateStops([]Stop{{StationID: "ueda", Departure: "09:60"}})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, FieldDeparture, verr.Field)
	})
}
