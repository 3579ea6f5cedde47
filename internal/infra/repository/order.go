package repository

import (
	"context"
	"time"

	"book-courier/internal/domain/order"
	"book-courier/internal/infra"
	"book-courier/internal/infra/db"
	"book-courier/internal/infra/document"
	"book-courier/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(database *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: database.Collection(db.OrdersCollection)}
}

// Create relies on the unique transactionId index; a concurrent duplicate surfaces as KindDuplicateKey.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (string, error) {
	res, err := r.coll.InsertOne(ctx, document.FromOrder(o))
	if err != nil {
		return "", infra.ClassifyMongoErr("failed to insert order", err)
	}
	return document.InsertedID(res.InsertedID), nil
}

func (r *OrderRepository) FindByTransactionID(ctx context.Context, transactionID string) (*shared.OrderSnapshot, error) {
	var doc document.OrderDoc
	if err := r.coll.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&doc); err != nil {
		return nil, infra.ClassifyMongoErr("failed to find order by transaction id", err)
	}
	return doc.ToSnapshot(), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status, now time.Time) error {
	oid, err := document.ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status.String(), "updatedAt": now}},
	)
	if err != nil {
		return infra.ClassifyMongoErr("failed to update order status", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := document.ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return infra.ClassifyMongoErr("failed to delete order", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}
