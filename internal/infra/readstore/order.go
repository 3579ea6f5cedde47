package readstore

import (
	"context"

	"book-courier/internal/infra"
	"book-courier/internal/infra/db"
	"book-courier/internal/infra/document"
	"book-courier/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderReadStore struct {
	coll *mongo.Collection
}

func NewOrderReadStore(database *mongo.Database) *OrderReadStore {
	return &OrderReadStore{coll: database.Collection(db.OrdersCollection)}
}

func (r *OrderReadStore) List(ctx context.Context, filter queries.OrderFilter) ([]*queries.OrderView, error) {
	doc := bson.M{}
	if filter.Customer != "" {
		doc["customer"] = filter.Customer
	}
	if filter.SellerEmail != "" {
		doc["seller.email"] = filter.SellerEmail
	}

	cur, err := r.coll.Find(ctx, doc, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, infra.ClassifyMongoErr("failed to list orders", err)
	}

	var docs []document.OrderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.ClassifyMongoErr("failed to decode orders", err)
	}

	views := make([]*queries.OrderView, len(docs))
	for i, d := range docs {
		views[i] = d.ToView()
	}
	return views, nil
}
