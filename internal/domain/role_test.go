package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFor(t *testing.T) {
	assert.Equal(t, RoleOrigin, RoleFor("komoro", "komoro", "nagano"))
	assert.Equal(t, RoleDestination, RoleFor("nagano", "komoro", "nagano"))
	assert.Equal(t, RoleVia, RoleFor("ueda", "komoro", "nagano"))
}

func TestClassifyRole_Komoro(t *testing.T) {
	komoro := Station{ID: StationKomoro, Name: "小諸", Order: 6}

	tests := []struct {
		name        string
		origin      string
		destination string
		direction   Direction
		role        Role
		arrival     string
		departure   string
	}{
		{"up via", "nagano", "karuizawa", DirectionUp, RoleVia, "1 (recommended)", "1 (recommended)"},
		{"up destination", "nagano", "komoro", DirectionUp, RoleDestination, "2 (recommended)", DefaultDeparturePlaceholder},
		{"up origin", "komoro", "karuizawa", DirectionUp, RoleOrigin, DefaultArrivalPlaceholder, "3 (recommended)"},
		{"down via", "karuizawa", "nagano", DirectionDown, RoleVia, "3 (recommended)", "3 (recommended)"},
		{"down destination", "karuizawa", "komoro", DirectionDown, RoleDestination, "3 (recommended)", "3 (recommended)"},
		{"down origin", "komoro", "nagano", DirectionDown, RoleOrigin, DefaultArrivalPlaceholder, "2 (recommended)"},
		{"unknown direction", "komoro", "nagano", DirectionNone, RoleOrigin, DefaultArrivalPlaceholder, DefaultDeparturePlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRole(komoro, tt.origin, tt.destination, tt.direction)
			assert.Equal(t, tt.role, got.Role)
			assert.Equal(t, tt.arrival, got.Placeholders.Arrival)
			assert.Equal(t, tt.departure, got.Placeholders.Departure)
		})
	}
}

func TestClassifyRole_DefaultPlaceholders(t *testing.T) {
	got := ClassifyRole(Station{ID: "ueda"}, "karuizawa", "nagano", DirectionDown)

	assert.Equal(t, RoleVia, got.Role)
	assert.Equal(t, Placeholders{Arrival: DefaultArrivalPlaceholder, Departure: DefaultDeparturePlaceholder}, got.Placeholders)
}
