package commands

import (
	"context"
	"time"

	"book-courier/internal/pkg/errs"
)

// Checkout session metadata keys shared by session creation and confirmation.
const (
	MetadataBookID   = "bookId"
	MetadataCustomer = "customer"

	PaymentStatusPaid = "paid"
)

type CheckoutLineItem struct {
	Name        string
	Description string
	Image       string
	UnitAmount  int64 // minor units
	Quantity    int64
}

type CheckoutSessionParams struct {
	LineItem      CheckoutLineItem
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

type CheckoutSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	PaymentIntentID string
	CustomerEmail   string
	AmountTotal     int64 // minor units
	Currency        string
	Metadata        map[string]string
}

func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// TransactionID is the idempotency key for order creation.
func (s *CheckoutSession) TransactionID() string {
	if s.PaymentIntentID != "" {
		return s.PaymentIntentID
	}
	return s.ID
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

var ErrLockHeld = errs.New("lock held by another owner")

type ConfirmationLocker interface {
	// Acquire returns ErrLockHeld when another caller owns key.
	Acquire(ctx context.Context, key string) (release func(context.Context), err error)
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventSellerPromoted     = "seller.promoted"
)

type Event struct {
	Type       string
	Key        string
	OccurredAt time.Time
	Payload    any
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

type CheckoutMetrics interface {
	CheckoutSessionCreated(ok bool)
	PaymentConfirmed(result string)
}

type PromotionMetrics interface {
	PromotionTransition(action string)
}
