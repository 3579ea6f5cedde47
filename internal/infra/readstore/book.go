package readstore

import (
	"context"
	"regexp"

	"book-courier/internal/infra"
	"book-courier/internal/infra/db"
	"book-courier/internal/infra/document"
	"book-courier/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookReadStore struct {
	coll *mongo.Collection
}

func NewBookReadStore(database *mongo.Database) *BookReadStore {
	return &BookReadStore{coll: database.Collection(db.BooksCollection)}
}

func (r *BookReadStore) List(ctx context.Context, filter queries.BookFilter) ([]*queries.BookView, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, bookFilterDoc(filter), opts)
	if err != nil {
		return nil, infra.ClassifyMongoErr("failed to list books", err)
	}

	var docs []document.BookDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.ClassifyMongoErr("failed to decode books", err)
	}

	views := make([]*queries.BookView, len(docs))
	for i, d := range docs {
		views[i] = d.ToView()
	}
	return views, nil
}

func (r *BookReadStore) FindByID(ctx context.Context, id string) (*queries.BookView, error) {
	oid, err := document.ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc document.BookDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, infra.ClassifyMongoErr("failed to find book", err)
	}
	return doc.ToView(), nil
}

func bookFilterDoc(f queries.BookFilter) bson.M {
	doc := bson.M{}
	if f.SellerEmail != "" {
		doc["seller.email"] = f.SellerEmail
	}
	if f.Status != "" {
		doc["status"] = f.Status
	}
	if f.Category != "" {
		doc["category"] = f.Category
	}
	if f.Search != "" {
		doc["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	return doc
}
