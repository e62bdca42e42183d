package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
)

// Store - хранилище в памяти процесса с той же семантикой, что и документные
// хранилища: запись поезда заменяется целиком, списки станций коммитятся атомарно.
type Store struct {
	mu           sync.RWMutex
	stations     []domain.Station
	stationStops map[string][]domain.StationStopEntry
	trains       map[string]*domain.Train
}

var _ repository.TimetableStore = (*Store)(nil)

// NewStore создает хранилище с документами для переданных станций
func NewStore(stations []domain.Station) *Store {
	s := &Store{
		stations:     domain.SortedCopy(stations),
		stationStops: make(map[string][]domain.StationStopEntry, len(stations)),
		trains:       make(map[string]*domain.Train),
	}
	for _, st := range stations {
		s.stationStops[st.ID] = []domain.StationStopEntry{}
	}
	return s
}

// NewSeededStore - хранилище со станциями линии
func NewSeededStore() *Store {
	return NewStore(LineStations())
}

func (s *Store) ListStations(ctx context.Context) ([]domain.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Station, len(s.stations))
	copy(out, s.stations)
	return out, nil
}

func (s *Store) GetStationStops(ctx context.Context, stationID string) ([]domain.StationStopEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.stationStops[stationID]
	if !ok {
		return nil, false, nil
	}
	return cloneEntries(entries), true, nil
}

func (s *Store) CommitStationStops(ctx context.Context, updates []domain.StationStopsUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// сначала проверяем все обновления, чтобы не применить часть
	for _, u := range updates {
		if _, ok := s.stationStops[u.StationID]; !ok {
			return fmt.Errorf("station document %s not found", u.StationID)
		}
	}
	for _, u := range updates {
		s.stationStops[u.StationID] = cloneEntries(u.Entries)
	}
	return nil
}

func (s *Store) GetTrain(ctx context.Context, trainID string) (*domain.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	train, ok := s.trains[trainID]
	if !ok {
		return nil, nil
	}
	return cloneTrain(train), nil
}

func (s *Store) ListTrainIDs(ctx context.Context) ([]domain.TrainSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TrainSummary, 0, len(s.trains))
	for id, t := range s.trains {
		out = append(out, domain.TrainSummary{ID: id, Direction: t.Direction})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) PutTrain(ctx context.Context, train *domain.Train) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.trains[train.TrainNumber] = cloneTrain(train)
	return nil
}

func (s *Store) DeleteTrain(ctx context.Context, trainID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.trains, trainID)
	return nil
}

func cloneEntries(in []domain.StationStopEntry) []domain.StationStopEntry {
	out := make([]domain.StationStopEntry, len(in))
	for i, e := range in {
		out[i] = e
		if e.Platform != nil {
			p := *e.Platform
			out[i].Platform = &p
		}
	}
	return out
}

func cloneTrain(in *domain.Train) *domain.Train {
	out := *in
	if in.Connection != nil {
		c := *in.Connection
		out.Connection = &c
	}
	out.Stops = make([]domain.Stop, len(in.Stops))
	for i, st := range in.Stops {
		out.Stops[i] = st
		if st.Platform != nil {
			p := *st.Platform
			out.Stops[i].Platform = &p
		}
	}
	return &out
}
