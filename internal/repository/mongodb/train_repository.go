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

type trainRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTrainRepository(db *DB, logger *zap.Logger) repository.TrainRepository {
	return &trainRepository{db: db, logger: logger}
}

func (r *trainRepository) GetTrain(ctx context.Context, trainID string) (*domain.Train, error) {
	var doc trainDocument
	err := r.db.trains().FindOne(ctx, bson.M{"_id": trainID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get train %s: %w", trainID, err)
	}
	return doc.toDomain(), nil
}

func (r *trainRepository) ListTrainIDs(ctx context.Context) ([]domain.TrainSummary, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "direction": 1})

	cursor, err := r.db.trains().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find trains: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID        string `bson:"_id"`
		Direction string `bson:"direction"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode trains: %w", err)
	}

	out := make([]domain.TrainSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.TrainSummary{ID: d.ID, Direction: domain.Direction(d.Direction)})
	}
	return out, nil
}

// PutTrain заменяет документ целиком (upsert)
func (r *trainRepository) PutTrain(ctx context.Context, train *domain.Train) error {
	doc := newTrainDocument(train)
	_, err := r.db.trains().ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put train %s: %w", train.TrainNumber, err)
	}
	return nil
}

func (r *trainRepository) DeleteTrain(ctx context.Context, trainID string) error {
	if _, err := r.db.trains().DeleteOne(ctx, bson.M{"_id": trainID}); err != nil {
		return fmt.Errorf("delete train %s: %w", trainID, err)
	}
	return nil
}
