package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
)

type stationRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStationRepository(db *DB, logger *zap.Logger) repository.StationRepository {
	return &stationRepository{db: db, logger: logger}
}

func (r *stationRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetProjection(bson.M{stopTrainsField: 0})

	cursor, err := r.db.stations().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find stations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []stationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}

	stations := make([]domain.Station, 0, len(docs))
	for _, d := range docs {
		stations = append(stations, d.toDomain())
	}
	return stations, nil
}

func (r *stationRepository) GetStationStops(ctx context.Context, stationID string) ([]domain.StationStopEntry, bool, error) {
	var doc stationDocument
	err := r.db.stations().FindOne(ctx, bson.M{"_id": stationID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get station %s: %w", stationID, err)
	}
	return doc.entries(), true, nil
}

// CommitStationStops заменяет stop_trains всех станций в одной транзакции
func (r *stationRepository) CommitStationStops(ctx context.Context, updates []domain.StationStopsUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	err := r.db.withTransaction(ctx, func(sc mongo.SessionContext) error {
		for _, u := range updates {
			res, err := r.db.stations().UpdateByID(sc, u.StationID, bson.M{
				"$set": bson.M{stopTrainsField: newEntryDocuments(u.Entries)},
			})
			if err != nil {
				return fmt.Errorf("update station %s: %w", u.StationID, err)
			}
			if res.MatchedCount == 0 {
				return fmt.Errorf("station document %s not found", u.StationID)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Station commit aborted",
			zap.Int("stations", len(updates)),
			zap.Error(err))
		return err
	}

	r.logger.Debug("Station commit applied", zap.Int("stations", len(updates)))
	return nil
}

// SeedStations создает отсутствующие документы станций, не трогая существующие
func SeedStations(ctx context.Context, db *DB, stations []domain.Station) (int, error) {
	created := 0
	for _, s := range stations {
		res, err := db.stations().UpdateByID(ctx, s.ID, bson.M{
			"$setOnInsert": bson.M{
				"name":          s.Name,
				"name_en":       s.NameEn,
				"order":         s.Order,
				stopTrainsField: bson.A{},
			},
		}, options.Update().SetUpsert(true))
		if err != nil {
			return created, fmt.Errorf("seed station %s: %w", s.ID, err)
		}
		if res.UpsertedCount > 0 {
			created++
		}
	}
	return created, nil
}
