package queries

import (
	"context"
	"strings"

	"book-courier/internal/domain/user"
	"book-courier/internal/infra"
	"book-courier/internal/pkg/errs"
)

var ErrBookNotFound = errs.Classified("book not found", errs.ErrNotFound)

type BookQueries interface {
	List(ctx context.Context, filter BookFilter) ([]*BookView, error)
	GetByID(ctx context.Context, id string) (*BookView, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*BookView, error)
}

type BookReadStore interface {
	List(ctx context.Context, filter BookFilter) ([]*BookView, error)
	FindByID(ctx context.Context, id string) (*BookView, error)
}

type bookQueriesImpl struct {
	readStore BookReadStore
}

func NewBookQueries(readStore BookReadStore) BookQueries {
	return &bookQueriesImpl{readStore: readStore}
}

func (q *bookQueriesImpl) List(ctx context.Context, filter BookFilter) ([]*BookView, error) {
	filter.SellerEmail = user.NormalizeEmail(filter.SellerEmail)
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Limit = ValidateLimit(filter.Limit)
	return q.readStore.List(ctx, filter)
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id string) (*BookView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindInvalidID) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookQueriesImpl) ListBySeller(ctx context.Context, sellerEmail string) ([]*BookView, error) {
	return q.List(ctx, BookFilter{SellerEmail: sellerEmail, Limit: MaxListLimit})
}
