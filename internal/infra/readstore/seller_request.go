package readstore

import (
	"context"

	"book-courier/internal/infra"
	"book-courier/internal/infra/db"
	"book-courier/internal/infra/document"
	"book-courier/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SellerRequestReadStore struct {
	coll *mongo.Collection
}

func NewSellerRequestReadStore(database *mongo.Database) *SellerRequestReadStore {
	return &SellerRequestReadStore{coll: database.Collection(db.SellerRequestsCollection)}
}

func (r *SellerRequestReadStore) ListWithRoles(ctx context.Context) ([]*queries.SellerRequestView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.UsersCollection},
			{Key: "localField", Value: "email"},
			{Key: "foreignField", Value: "email"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "email", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "name", Value: "$user.name"},
			{Key: "image", Value: "$user.image"},
			{Key: "role", Value: "$user.role"},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, infra.ClassifyMongoErr("failed to list seller requests", err)
	}

	var rows []document.SellerRequestRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, infra.ClassifyMongoErr("failed to decode seller requests", err)
	}

	views := make([]*queries.SellerRequestView, len(rows))
	for i, row := range rows {
		views[i] = row.ToView()
	}
	return views, nil
}

func (r *SellerRequestReadStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, infra.ClassifyMongoErr("failed to count seller requests", err)
	}
	return n > 0, nil
}
