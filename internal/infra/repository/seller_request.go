package repository

import (
	"context"

	"book-courier/internal/domain/sellerrequest"
	"book-courier/internal/infra"
	"book-courier/internal/infra/db"
	"book-courier/internal/infra/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SellerRequestRepository struct {
	coll *mongo.Collection
}

func NewSellerRequestRepository(database *mongo.Database) *SellerRequestRepository {
	return &SellerRequestRepository{coll: database.Collection(db.SellerRequestsCollection)}
}

// Create relies on the unique email index; a second request surfaces as KindDuplicateKey.
func (r *SellerRequestRepository) Create(ctx context.Context, req *sellerrequest.SellerRequest) error {
	doc := document.SellerRequestDoc{
		Email:     req.Email().Value(),
		CreatedAt: req.CreatedAt(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return infra.ClassifyMongoErr("failed to insert seller request", err)
	}
	return nil
}

func (r *SellerRequestRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return false, infra.ClassifyMongoErr("failed to delete seller request", err)
	}
	return res.DeletedCount > 0, nil
}
