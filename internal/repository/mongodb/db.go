package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/config"
)

// DB - подключение к MongoDB. Транзакции требуют replica set.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func New(cfg *config.MongoConfig, logger *zap.Logger) (*DB, error) {
	opts := options.Client().ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetWriteConcern(writeconcern.Majority()).
		SetReadConcern(readconcern.Majority()).
		SetReadPreference(readpref.Primary())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("MongoDB connected", zap.String("database", cfg.DBName))

	return &DB{
		client: client,
		db:     client.Database(cfg.DBName),
		logger: logger,
	}, nil
}

func (d *DB) Close() error {
	d.logger.Info("Closing MongoDB connection")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

func (d *DB) Health(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) trains() *mongo.Collection {
	return d.db.Collection(trainsCollection)
}

func (d *DB) stations() *mongo.Collection {
	return d.db.Collection(stationsCollection)
}

// EnsureIndexes создает индексы, нужные для выборок по станциям
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.stations().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order", Value: 1}},
			Options: options.Index().SetName("station_order_idx"),
		},
		{
			Keys:    bson.D{{Key: stopTrainsField + ".trainId", Value: 1}},
			Options: options.Index().SetName("stop_trains_train_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create station indexes: %w", err)
	}

	_, err = d.trains().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "direction", Value: 1}},
		Options: options.Index().SetName("train_direction_idx"),
	})
	if err != nil {
		return fmt.Errorf("failed to create train indexes: %w", err)
	}

	d.logger.Info("MongoDB indexes ensured")
	return nil
}

// withTransaction выполняет fn в транзакции сессии; при ошибке ничего не применяется
func (d *DB) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := d.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	txOpts := options.Transaction().
		SetWriteConcern(writeconcern.Majority()).
		SetReadConcern(readconcern.Snapshot())

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	}, txOpts)
	return err
}
