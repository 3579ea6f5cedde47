package queries

import (
	"context"

	"book-courier/internal/domain/user"
	"book-courier/internal/pkg/errs"
)

var ErrOrderAccess = errs.Classified("orders belong to another account", errs.ErrForbidden)

type OrderQueries interface {
	// ListByCustomer is self-scoped: actorEmail must match the requested customer.
	ListByCustomer(ctx context.Context, customerEmail, actorEmail string) ([]*OrderView, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*OrderView, error)
}

type OrderReadStore interface {
	List(ctx context.Context, filter OrderFilter) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) ListByCustomer(ctx context.Context, customerEmail, actorEmail string) ([]*OrderView, error) {
	customer := user.NormalizeEmail(customerEmail)
	if customer == "" || customer != user.NormalizeEmail(actorEmail) {
		return nil, ErrOrderAccess
	}
	return q.readStore.List(ctx, OrderFilter{Customer: customer})
}

func (q *orderQueriesImpl) ListBySeller(ctx context.Context, sellerEmail string) ([]*OrderView, error) {
	return q.readStore.List(ctx, OrderFilter{SellerEmail: user.NormalizeEmail(sellerEmail)})
}
