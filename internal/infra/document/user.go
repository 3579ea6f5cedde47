package document

import (
	"time"

	"book-courier/internal/domain/user"
	"book-courier/internal/usecase/queries"
	"book-courier/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name,omitempty"`
	Image        string             `bson:"image,omitempty"`
	Role         string             `bson:"role"`
	LastLoggedIn time.Time          `bson:"lastLoggedIn,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty"`
}

func (d UserDoc) ToView() *queries.UserView {
	return &queries.UserView{
		Email:        d.Email,
		Name:         d.Name,
		Image:        d.Image,
		Role:         d.Role,
		LastLoggedIn: d.LastLoggedIn,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (d UserDoc) ToSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		Email: d.Email,
		Name:  d.Name,
		Image: d.Image,
		Role:  user.ParseRole(d.Role),
	}
}

type SellerRequestDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// SellerRequestRow is a request joined with its requester's account.
type SellerRequestRow struct {
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"createdAt"`
	Name      string    `bson:"name,omitempty"`
	Image     string    `bson:"image,omitempty"`
	Role      string    `bson:"role,omitempty"`
}

func (r SellerRequestRow) ToView() *queries.SellerRequestView {
	return &queries.SellerRequestView{
		Email:     r.Email,
		Name:      r.Name,
		Image:     r.Image,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
}
