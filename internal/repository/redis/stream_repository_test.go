package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	redisRepo "github.com/timetable-editor/internal/repository/redis"
)

const testStream = "test:stream:timetable:synced"

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testStream)
		client.Close()
	})
	return client
}

func newEvent(trainID string) *domain.TrainSyncedEvent {
	return &domain.TrainSyncedEvent{
		OperationID:     uuid.New(),
		TrainID:         trainID,
		Action:          domain.SyncActionSaved,
		StationsUpdated: 29,
		OccurredAt:      time.Now().UTC().Truncate(time.Second),
	}
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))

	groups, err := client.XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// повторное создание не ошибка
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))
}

func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	event := newEvent("1611M")
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{testStream, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	data, ok := messages[0].Messages[0].Values["data"].(string)
	require.True(t, ok)

	var received domain.TrainSyncedEvent
	require.NoError(t, json.Unmarshal([]byte(data), &received))
	assert.Equal(t, event.OperationID, received.OperationID)
	assert.Equal(t, "1611M", received.TrainID)
	assert.Equal(t, 29, received.StationsUpdated)
}

func TestStreamRepository_ConsumeAndAck(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-consume-group"))
	require.NoError(t, repo.PublishToStream(ctx, testStream, newEvent("228D")))

	msgChan, err := repo.ConsumeStream(ctx, testStream, "test-consume-group", "test-consumer")
	require.NoError(t, err)

	select {
	case msg := <-msgChan:
		var received domain.TrainSyncedEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Data), &received))
		assert.Equal(t, "228D", received.TrainID)

		require.NoError(t, repo.AckMessage(ctx, testStream, "test-consume-group", msg.ID))

		pending, err := client.XPending(ctx, testStream, "test-consume-group").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), pending.Count)
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for message")
	}
}

func TestStreamRepository_RedeliversPending(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-pending-group"))
	require.NoError(t, repo.PublishToStream(ctx, testStream, newEvent("1611M")))

	// читаем без ACK, как упавший consumer
	_, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    "test-pending-group",
		Consumer: "test-consumer",
		Streams:  []string{testStream, ">"},
		Count:    1,
	}).Result()
	require.NoError(t, err)

	msgChan, err := repo.ConsumeStream(ctx, testStream, "test-pending-group", "test-consumer")
	require.NoError(t, err)

	select {
	case msg := <-msgChan:
		assert.Contains(t, msg.Data, "1611M")
	case <-time.After(3 * time.Second):
		t.Fatal("Pending message was not redelivered")
	}
}

func TestStreamRepository_ConsumeStream_ContextCancellation(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-cancel-group"))

	msgChan, err := repo.ConsumeStream(ctx, testStream, "test-cancel-group", "test-consumer")
	require.NoError(t, err)

	time.AfterFunc(100*time.Millisecond, cancel)

	select {
	case _, ok := <-msgChan:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for channel to close")
	}
}
