package repository

import (
	"context"
	"strings"
	"time"

	"book-courier/internal/domain/user"
	"book-courier/internal/infra"
	"book-courier/internal/infra/db"
	"book-courier/internal/infra/document"
	"book-courier/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{coll: database.Collection(db.UsersCollection)}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	var doc document.UserDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		return nil, infra.ClassifyMongoErr("failed to find user", err)
	}
	return doc.ToSnapshot(), nil
}

func (r *UserRepository) Upsert(ctx context.Context, u *user.User) (bool, error) {
	set := bson.M{
		"lastLoggedIn": u.LastLoggedIn(),
		"updatedAt":    u.UpdatedAt(),
	}
	if u.Name() != "" {
		set["name"] = u.Name()
	}
	if u.Image() != "" {
		set["image"] = u.Image()
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"email":     u.Email().Value(),
			"role":      u.Role().String(),
			"createdAt": u.CreatedAt(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": u.Email().Value()}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, infra.ClassifyMongoErr("failed to upsert user", err)
	}
	return res.UpsertedCount > 0, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email string, p user.Profile, now time.Time) error {
	set := bson.M{"updatedAt": now}
	if p.Name != nil {
		set["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Image != nil {
		set["image"] = strings.TrimSpace(*p.Image)
	}
	return r.updateOne(ctx, email, set, "failed to update user profile")
}

func (r *UserRepository) UpdateRole(ctx context.Context, email string, role user.Role, now time.Time) error {
	return r.updateOne(ctx, email, bson.M{"role": role.String(), "updatedAt": now}, "failed to update user role")
}

func (r *UserRepository) updateOne(ctx context.Context, email string, set bson.M, msg string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return infra.ClassifyMongoErr(msg, err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}
