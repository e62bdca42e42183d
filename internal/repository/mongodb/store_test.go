package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/config"
	"github.com/timetable-editor/internal/domain"
)

// setupTestDB подключается к MongoDB (replica set) из MONGO_TEST_URI
func setupTestDB(t *testing.T) *DB {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping MongoDB integration tests")
	}

	db, err := New(&config.MongoConfig{
		URI:         uri,
		DBName:      "timetable_test_" + uuid.NewString()[:8],
		MaxPoolSize: 5,
		Timeout:     5 * time.Second,
	}, zap.NewNop())
	if err != nil {
		t.Skipf("MongoDB not available for integration tests: %v", err)
	}

	t.Cleanup(func() {
		_ = db.db.Drop(context.Background())
		_ = db.Close()
	})
	return db
}

func TestStore_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.EnsureIndexes(ctx))
	stations := []domain.Station{
		{ID: "karuizawa", Name: "軽井沢", Order: 1},
		{ID: "komoro", Name: "小諸", Order: 6},
	}
	created, err := SeedStations(ctx, db, stations)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = SeedStations(ctx, db, stations)
	require.NoError(t, err)
	assert.Zero(t, created)

	store := NewStore(db, zap.NewNop())

	listed, err := store.ListStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, stations, listed)

	t.Run("train replace and delete", func(t *testing.T) {
		train := &domain.Train{TrainNumber: "1611M", Type: "local", Direction: domain.DirectionDown, Stops: []domain.Stop{}}
		require.NoError(t, store.PutTrain(ctx, train))

		got, err := store.GetTrain(ctx, "1611M")
		require.NoError(t, err)
		assert.Equal(t, train, got)

		require.NoError(t, store.DeleteTrain(ctx, "1611M"))
		require.NoError(t, store.DeleteTrain(ctx, "1611M"))

		got, err = store.GetTrain(ctx, "1611M")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("commit aborts as a whole", func(t *testing.T) {
		err := store.CommitStationStops(ctx, []domain.StationStopsUpdate{
			{StationID: "komoro", Entries: []domain.StationStopEntry{{TrainID: "1611M", Departure: "09:20"}}},
			{StationID: "atlantis", Entries: []domain.StationStopEntry{{TrainID: "1611M"}}},
		})
		require.Error(t, err)

		entries, exists, err := store.GetStationStops(ctx, "komoro")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Empty(t, entries)
	})

	t.Run("commit applies", func(t *testing.T) {
		require.NoError(t, store.CommitStationStops(ctx, []domain.StationStopsUpdate{
			{StationID: "komoro", Entries: []domain.StationStopEntry{{TrainID: "1611M", OperationInfo: domain.OperationEveryday, Departure: "09:20"}}},
		}))

		entries, _, err := store.GetStationStops(ctx, "komoro")
		require.NoError(t, err)
		assert.Equal(t, []domain.StationStopEntry{{TrainID: "1611M", OperationInfo: domain.OperationEveryday, Departure: "09:20"}}, entries)
	})
}
