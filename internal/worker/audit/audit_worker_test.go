package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/worker/audit"
)

type mockStreamRepository struct {
	mock.Mock
}

func (m *mockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *mockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *mockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *mockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

type mockEventHandler struct {
	mock.Mock
}

func (m *mockEventHandler) HandleSyncedEvent(ctx context.Context, event *domain.TrainSyncedEvent) (*domain.ConsistencyReport, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsistencyReport), args.Error(1)
}

const group = "test-group"

func eventMessage(t *testing.T, id, trainID string) domain.StreamMessage {
	t.Helper()
	raw, err := json.Marshal(domain.TrainSyncedEvent{
		OperationID: uuid.New(),
		TrainID:     trainID,
		Action:      domain.SyncActionSaved,
		OccurredAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(raw)}
}

func feed(messages ...domain.StreamMessage) <-chan domain.StreamMessage {
	ch := make(chan domain.StreamMessage, len(messages))
	for _, m := range messages {
		ch <- m
	}
	close(ch)
	return ch
}

func TestConsistencyWorker_Name(t *testing.T) {
	w := audit.NewConsistencyWorker(&mockStreamRepository{}, &mockEventHandler{}, group, 3, zap.NewNop())
	assert.Equal(t, "timetable-consistency", w.Name())
	assert.Equal(t, group, w.ConsumerGroup())
}

func TestConsistencyWorker_ProcessesAndAcks(t *testing.T) {
	stream := &mockStreamRepository{}
	handler := &mockEventHandler{}

	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamTrainSynced, group).Return(nil)
	stream.On("ConsumeStream", mock.Anything, domain.StreamTrainSynced, group, mock.Anything).
		Return(feed(eventMessage(t, "1-0", "1611M"), domain.StreamMessage{ID: "2-0", Data: "{broken"}), nil)
	stream.On("AckMessage", mock.Anything, domain.StreamTrainSynced, group, mock.Anything).Return(nil)

	handler.On("HandleSyncedEvent", mock.Anything, mock.MatchedBy(func(e *domain.TrainSyncedEvent) bool {
		return e.TrainID == "1611M"
	})).Return(&domain.ConsistencyReport{TrainID: "1611M", Consistent: true}, nil).Once()

	w := audit.NewConsistencyWorker(stream, handler, group, 3, zap.NewNop())
	require.NoError(t, w.Start(context.Background()))

	handler.AssertExpectations(t)
	stream.AssertCalled(t, "AckMessage", mock.Anything, domain.StreamTrainSynced, group, "1-0")
	stream.AssertCalled(t, "AckMessage", mock.Anything, domain.StreamTrainSynced, group, "2-0")
}

func TestConsistencyWorker_RetriesThenAcks(t *testing.T) {
	stream := &mockStreamRepository{}
	handler := &mockEventHandler{}

	stream.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	stream.On("ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(feed(eventMessage(t, "1-0", "1611M")), nil)
	stream.On("AckMessage", mock.Anything, mock.Anything, mock.Anything, "1-0").Return(nil).Once()
	handler.On("HandleSyncedEvent", mock.Anything, mock.Anything).Return(nil, errors.New("store unavailable"))

	w := audit.NewConsistencyWorker(stream, handler, group, 2, zap.NewNop())
	require.NoError(t, w.Start(context.Background()))

	handler.AssertNumberOfCalls(t, "HandleSyncedEvent", 2)
	stream.AssertExpectations(t)
}

func TestConsistencyWorker_ConsumerGroupFailure(t *testing.T) {
	stream := &mockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	w := audit.NewConsistencyWorker(stream, &mockEventHandler{}, group, 1, zap.NewNop())
	assert.Error(t, w.Start(context.Background()))
	stream.AssertNotCalled(t, "ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConsistencyWorker_Stop(t *testing.T) {
	stream := &mockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	stream.On("ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return((<-chan domain.StreamMessage)(make(chan domain.StreamMessage)), nil)

	w := audit.NewConsistencyWorker(stream, &mockEventHandler{}, group, 1, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.True(t, w.IsStopped())
}
