package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareTrainWithEntries(t *testing.T) {
	stations := lineStations()
	train := &Train{
		TrainNumber:   "1611M",
		OperationInfo: OperationEveryday,
		Stops: []Stop{
			{StationID: "karuizawa", Departure: "09:00"},
			{StationID: "komoro", Departure: "09:20"},
			{StationID: "ueda", Arrival: "09:35"},
		},
	}

	t.Run("consistent", func(t *testing.T) {
		entries := map[string][]StationStopEntry{
			"karuizawa": {{TrainID: "1611M", OperationInfo: OperationEveryday, Departure: "09:00"}},
			"komoro": {
				{TrainID: "100M", Departure: "08:00"},
				{TrainID: "1611M", OperationInfo: OperationEveryday, Departure: "09:20"},
			},
			"ueda": {{TrainID: "1611M", OperationInfo: OperationEveryday, Arrival: "09:35"}},
		}

		report := CompareTrainWithEntries("1611M", train, stations, entries)
		assert.True(t, report.Consistent)
		assert.True(t, report.TrainExists)
	})

	t.Run("divergence", func(t *testing.T) {
		entries := map[string][]StationStopEntry{
			"karuizawa": {
				{TrainID: "1611M", OperationInfo: OperationEveryday, Departure: "09:00"},
				{TrainID: "1611M", OperationInfo: OperationEveryday, Departure: "09:00"},
			},
			"ueda":   {{TrainID: "1611M", OperationInfo: OperationEveryday, Arrival: "09:36"}},
			"nagano": {{TrainID: "1611M", Arrival: "10:00"}},
		}

		report := CompareTrainWithEntries("1611M", train, stations, entries)
		assert.False(t, report.Consistent)
		assert.Equal(t, []string{"karuizawa"}, report.DuplicateEntries)
		assert.Equal(t, []string{"komoro"}, report.MissingEntries)
		assert.Equal(t, []string{"ueda"}, report.MismatchedEntries)
		assert.Equal(t, []string{"nagano"}, report.StaleEntries)
	})

	t.Run("train absent", func(t *testing.T) {
		entries := map[string][]StationStopEntry{
			"komoro": {{TrainID: "1611M"}},
		}

		report := CompareTrainWithEntries("1611M", nil, stations, entries)
		assert.False(t, report.TrainExists)
		assert.False(t, report.Consistent)
		assert.Equal(t, []string{"komoro"}, report.StaleEntries)
	})
}
