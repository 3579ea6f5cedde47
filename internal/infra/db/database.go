package db

import (
	"context"
	"fmt"

	"book-courier/internal/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection          = "users"
	BooksCollection          = "books"
	OrdersCollection         = "orders"
	SellerRequestsCollection = "sellerRequests"
)

func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, func(context.Context), error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	cleanup := func(ctx context.Context) {
		_ = client.Disconnect(ctx)
	}

	return client, cleanup, nil
}

// EnsureIndexes creates the unique indexes the write paths rely on:
// one order per transaction id, one account and one promotion request per email.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_transaction_id")},
			{Keys: bson.D{{Key: "customer", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("customer_created_at")},
			{Keys: bson.D{{Key: "seller.email", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("seller_created_at")},
		},
		BooksCollection: {
			{Keys: bson.D{{Key: "seller.email", Value: 1}}, Options: options.Index().SetName("seller_email")},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}}, Options: options.Index().SetName("status_category")},
		},
		SellerRequestsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
	}

	for coll, models := range specs {
		if _, err := database.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
