package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
)

// store хранит документы поездов и списки станций в JSONB
type store struct {
	db     *DB
	logger *zap.Logger
}

func NewStore(db *DB) repository.TimetableStore {
	return &store{db: db, logger: db.logger}
}

func (s *store) ListStations(ctx context.Context) ([]domain.Station, error) {
	var stations []domain.Station
	err := s.db.SelectContext(ctx, &stations,
		`SELECT id, name, name_en, sort_order FROM stations ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	return stations, nil
}

func (s *store) GetStationStops(ctx context.Context, stationID string) ([]domain.StationStopEntry, bool, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, `SELECT stop_trains FROM stations WHERE id = $1`, stationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get station %s: %w", stationID, err)
	}

	entries := []domain.StationStopEntry{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, true, fmt.Errorf("decode stop_trains of %s: %w", stationID, err)
	}
	return entries, true, nil
}

// CommitStationStops обновляет все станции в одной транзакции
func (s *store) CommitStationStops(ctx context.Context, updates []domain.StationStopsUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range updates {
		entries := u.Entries
		if entries == nil {
			entries = []domain.StationStopEntry{}
		}
		data, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("encode stop_trains of %s: %w", u.StationID, err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE stations SET stop_trains = $2::jsonb WHERE id = $1`, u.StationID, string(data))
		if err != nil {
			return fmt.Errorf("update station %s: %w", u.StationID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("station %s not found", u.StationID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit station stops: %w", err)
	}
	return nil
}

func (s *store) GetTrain(ctx context.Context, trainID string) (*domain.Train, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, `SELECT document FROM trains WHERE id = $1`, trainID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get train %s: %w", trainID, err)
	}

	var train domain.Train
	if err := json.Unmarshal(raw, &train); err != nil {
		return nil, fmt.Errorf("decode train %s: %w", trainID, err)
	}
	return &train, nil
}

func (s *store) ListTrainIDs(ctx context.Context) ([]domain.TrainSummary, error) {
	var out []domain.TrainSummary
	if err := s.db.SelectContext(ctx, &out, `SELECT id, direction FROM trains`); err != nil {
		return nil, fmt.Errorf("list trains: %w", err)
	}
	return out, nil
}

func (s *store) PutTrain(ctx context.Context, train *domain.Train) error {
	data, err := json.Marshal(train)
	if err != nil {
		return fmt.Errorf("encode train %s: %w", train.TrainNumber, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trains (id, direction, document, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (id) DO UPDATE
		SET direction = EXCLUDED.direction,
		    document = EXCLUDED.document,
		    updated_at = now()`,
		train.TrainNumber, string(train.Direction), string(data))
	if err != nil {
		return fmt.Errorf("put train %s: %w", train.TrainNumber, err)
	}
	return nil
}

func (s *store) DeleteTrain(ctx context.Context, trainID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM trains WHERE id = $1`, trainID); err != nil {
		return fmt.Errorf("delete train %s: %w", trainID, err)
	}
	return nil
}

// SeedStations добавляет отсутствующие станции, существующие не меняются
func SeedStations(ctx context.Context, db *DB, stations []domain.Station) (int, error) {
	created := 0
	for _, st := range stations {
		res, err := db.ExecContext(ctx, `
			INSERT INTO stations (id, name, name_en, sort_order)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			st.ID, st.Name, st.NameEn, st.Order)
		if err != nil {
			return created, fmt.Errorf("seed station %s: %w", st.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			created++
		}
	}
	return created, nil
}
