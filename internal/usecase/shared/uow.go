package shared

import (
	"context"
	"time"

	"book-courier/internal/domain/book"
	"book-courier/internal/domain/order"
	"book-courier/internal/domain/sellerrequest"
	"book-courier/internal/domain/user"
)

type UnitOfWork interface {
	// Within runs fn as one unit of work. With a transactional store the driver
	// retries fn on transient conflicts, so fn must not keep state between attempts.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Books() BookRepository
	Orders() OrderRepository
	Users() UserRepository
	SellerRequests() SellerRequestRepository
	// Transactional reports whether returning an error from fn discards writes
	// made through this Tx. When false, callers compensate themselves.
	Transactional() bool
}

type BookRepository interface {
	Create(ctx context.Context, b *book.Book) (string, error)
	Update(ctx context.Context, id string, p book.Patch, now time.Time) error
	FindByID(ctx context.Context, id string) (*BookSnapshot, error)
	// DecrementStock takes one copy only while quantity >= 1; false means nothing was left.
	DecrementStock(ctx context.Context, id, paymentStatus string, now time.Time) (bool, error)
	RestoreStock(ctx context.Context, id string, now time.Time) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (string, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*OrderSnapshot, error)
	UpdateStatus(ctx context.Context, id string, status order.Status, now time.Time) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	// Upsert inserts a new account or refreshes the login of an existing one; the role is only set on insert.
	Upsert(ctx context.Context, u *user.User) (bool, error)
	UpdateProfile(ctx context.Context, email string, p user.Profile, now time.Time) error
	UpdateRole(ctx context.Context, email string, role user.Role, now time.Time) error
}

type SellerRequestRepository interface {
	Create(ctx context.Context, r *sellerrequest.SellerRequest) error
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}
