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

type UserReadStore struct {
	coll *mongo.Collection
}

func NewUserReadStore(database *mongo.Database) *UserReadStore {
	return &UserReadStore{coll: database.Collection(db.UsersCollection)}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	var doc document.UserDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		return nil, infra.ClassifyMongoErr("failed to find user by email", err)
	}
	return doc.ToView(), nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, infra.ClassifyMongoErr("failed to list users", err)
	}

	var docs []document.UserDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.ClassifyMongoErr("failed to decode users", err)
	}

	views := make([]*queries.UserView, len(docs))
	for i, d := range docs {
		views[i] = d.ToView()
	}
	return views, nil
}
