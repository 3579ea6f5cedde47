package bootstrap

import (
	"context"

	"book-courier/internal/infra/db"
	"book-courier/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewMongoClient,
		NewDatabase,
	),
)

func NewMongoClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	defer cancel()

	client, cleanup, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	logger.Info("MongoDB connection established",
		zap.String("database", cfg.Mongo.Database),
		zap.Bool("transactions", cfg.Mongo.Transactions))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if cleanup != nil {
				cleanup(ctx)
			}
			return nil
		},
	})

	return client, nil
}

func NewDatabase(client *mongo.Client, cfg config.Config) (*mongo.Database, error) {
	database := client.Database(cfg.Mongo.Database)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	defer cancel()
	if err := db.EnsureIndexes(ctx, database); err != nil {
		return nil, err
	}
	return database, nil
}
