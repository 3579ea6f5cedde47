package repository

import (
	"context"
	"errors"
	"time"

	"book-courier/internal/domain/book"
	"book-courier/internal/infra"
	"book-courier/internal/infra/db"
	"book-courier/internal/infra/document"
	"book-courier/internal/pkg/money"
	"book-courier/internal/pkg/patch"
	"book-courier/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(database *mongo.Database) *BookRepository {
	return &BookRepository{coll: database.Collection(db.BooksCollection)}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) (string, error) {
	res, err := r.coll.InsertOne(ctx, document.FromBook(b))
	if err != nil {
		return "", infra.ClassifyMongoErr("failed to insert book", err)
	}
	return document.InsertedID(res.InsertedID), nil
}

func (r *BookRepository) Update(ctx context.Context, id string, p book.Patch, now time.Time) error {
	oid, err := document.ParseID(id)
	if err != nil {
		return err
	}

	set := bson.M{"updatedAt": now}
	patch.Set(set, "title", p.Title)
	patch.Set(set, "description", p.Description)
	patch.Set(set, "image", p.Image)
	patch.Set(set, "category", p.Category)
	patch.Set(set, "author", p.Author)
	patch.Set(set, "quantity", p.Quantity)
	patch.Set(set, "status", p.Status)
	if p.Price != nil {
		set["price"] = money.ToFloat(*p.Price)
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return infra.ClassifyMongoErr("failed to update book", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "book not found", nil)
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*shared.BookSnapshot, error) {
	oid, err := document.ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc document.BookDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, infra.ClassifyMongoErr("failed to find book", err)
	}
	return doc.ToSnapshot(), nil
}

// DecrementStock is a single conditional update so concurrent buyers can never drive quantity below zero.
func (r *BookRepository) DecrementStock(ctx context.Context, id, paymentStatus string, now time.Time) (bool, error) {
	oid, err := document.ParseID(id)
	if err != nil {
		return false, err
	}

	filter := bson.M{"_id": oid, "quantity": bson.M{"$gte": 1}}
	update := bson.M{
		"$inc": bson.M{"quantity": -1},
		"$set": bson.M{"paymentStatus": paymentStatus, "updatedAt": now},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(bson.M{"_id": 1})

	err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, infra.ClassifyMongoErr("failed to decrement book stock", err)
	}
	return true, nil
}

func (r *BookRepository) RestoreStock(ctx context.Context, id string, now time.Time) error {
	oid, err := document.ParseID(id)
	if err != nil {
		return err
	}

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"quantity": 1}, "$set": bson.M{"updatedAt": now}},
	)
	if err != nil {
		return infra.ClassifyMongoErr("failed to restore book stock", err)
	}
	return nil
}
