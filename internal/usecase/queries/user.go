package queries

import (
	"context"

	"book-courier/internal/domain/user"
	"book-courier/internal/infra"
	"book-courier/internal/pkg/errs"
)

var ErrUserNotFound = errs.Classified("user not found", errs.ErrNotFound)

type UserQueries interface {
	GetByEmail(ctx context.Context, email string) (*UserView, error)
	// GetRole returns the stored role, normalized. Unknown users yield ErrUserNotFound.
	GetRole(ctx context.Context, email string) (user.Role, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByEmail(ctx context.Context, email string) (*UserView, error) {
	view, err := q.readStore.FindByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	view.Role = user.ParseRole(view.Role).String()
	return view, nil
}

func (q *userQueriesImpl) GetRole(ctx context.Context, email string) (user.Role, error) {
	view, err := q.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role(view.Role), nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	views, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Role = user.ParseRole(v.Role).String()
	}
	return views, nil
}
