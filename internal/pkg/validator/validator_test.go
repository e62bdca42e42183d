package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timetable-editor/internal/pkg/validator"
)

type timeHolder struct {
	Time string `validate:"omitempty,hhmm"`
}

func TestValidate_HHMM(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"09:05", true},
		{"00:00", true},
		{"23:59", true},
		{"", true},
		{"24:10", false},
		{"09:60", false},
		{"9:05", false},
		{"09:5", false},
		{"ab:cd", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validator.Validate(&timeHolder{Time: tt.value})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
