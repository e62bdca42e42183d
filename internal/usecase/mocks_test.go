package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/timetable-editor/internal/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListStations(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *mockStore) GetStationStops(ctx context.Context, stationID string) ([]domain.StationStopEntry, bool, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.StationStopEntry), args.Bool(1), args.Error(2)
}

func (m *mockStore) CommitStationStops(ctx context.Context, updates []domain.StationStopsUpdate) error {
	return m.Called(ctx, updates).Error(0)
}

func (m *mockStore) GetTrain(ctx context.Context, trainID string) (*domain.Train, error) {
	args := m.Called(ctx, trainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Train), args.Error(1)
}

func (m *mockStore) ListTrainIDs(ctx context.Context) ([]domain.TrainSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainSummary), args.Error(1)
}

func (m *mockStore) PutTrain(ctx context.Context, train *domain.Train) error {
	return m.Called(ctx, train).Error(0)
}

func (m *mockStore) DeleteTrain(ctx context.Context, trainID string) error {
	return m.Called(ctx, trainID).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) GetTrainList(ctx context.Context) ([]domain.TrainSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainSummary), args.Error(1)
}

func (m *mockCache) SetTrainList(ctx context.Context, trains []domain.TrainSummary, ttl time.Duration) error {
	return m.Called(ctx, trains, ttl).Error(0)
}

func (m *mockCache) InvalidateTrainList(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockStream struct {
	mock.Mock
}

func (m *mockStream) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *mockStream) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *mockStream) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *mockStream) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}
