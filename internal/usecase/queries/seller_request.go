package queries

import (
	"context"

	"book-courier/internal/domain/sellerrequest"
	"book-courier/internal/domain/user"
)

type SellerRequestQueries interface {
	List(ctx context.Context) ([]*SellerRequestView, error)
	IsPending(ctx context.Context, email string) (bool, error)
}

type SellerRequestReadStore interface {
	// ListWithRoles returns every request joined with the requester's stored role and profile.
	ListWithRoles(ctx context.Context) ([]*SellerRequestView, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type sellerRequestQueriesImpl struct {
	readStore SellerRequestReadStore
}

func NewSellerRequestQueries(readStore SellerRequestReadStore) SellerRequestQueries {
	return &sellerRequestQueriesImpl{readStore: readStore}
}

func (q *sellerRequestQueriesImpl) List(ctx context.Context) ([]*SellerRequestView, error) {
	views, err := q.readStore.ListWithRoles(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		role := user.ParseRole(v.Role)
		v.Role = role.String()
		v.Status = string(sellerrequest.DeriveStatus(role))
	}
	return views, nil
}

func (q *sellerRequestQueriesImpl) IsPending(ctx context.Context, email string) (bool, error) {
	return q.readStore.ExistsByEmail(ctx, user.NormalizeEmail(email))
}
