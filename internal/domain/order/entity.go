package order

import (
	"strings"
	"time"

	"book-courier/internal/domain/book"

	"github.com/shopspring/decimal"
)

const (
	// Each confirmed checkout session buys exactly one copy.
	UnitQuantity = 1

	fallbackTitle    = "Unknown Book"
	fallbackCategory = "N/A"
)

type Order struct {
	bookID        string
	title         string
	image         string
	category      string
	transactionID string
	customer      string
	seller        book.Seller
	status        Status
	quantity      int
	price         decimal.Decimal
	createdAt     time.Time
	updatedAt     time.Time
}

type Params struct {
	BookID        string
	Title         string
	Image         string
	Category      string
	TransactionID string
	Customer      string
	Seller        book.Seller
	Price         decimal.Decimal
}

// NewOrder builds a pending order from a verified payment and the purchased book snapshot.
func NewOrder(p Params, now time.Time) (*Order, error) {
	if strings.TrimSpace(p.TransactionID) == "" {
		return nil, ErrTransactionIDRequired
	}
	if strings.TrimSpace(p.BookID) == "" {
		return nil, ErrBookIDRequired
	}
	if strings.TrimSpace(p.Customer) == "" {
		return nil, ErrCustomerRequired
	}
	if p.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = fallbackTitle
	}
	category := strings.TrimSpace(p.Category)
	if category == "" {
		category = fallbackCategory
	}

	return &Order{
		bookID:        p.BookID,
		title:         title,
		image:         p.Image,
		category:      category,
		transactionID: p.TransactionID,
		customer:      strings.ToLower(strings.TrimSpace(p.Customer)),
		seller:        p.Seller,
		status:        StatusPending,
		quantity:      UnitQuantity,
		price:         p.Price,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (o *Order) BookID() string         { return o.bookID }
func (o *Order) Title() string          { return o.title }
func (o *Order) Image() string          { return o.image }
func (o *Order) Category() string       { return o.category }
func (o *Order) TransactionID() string  { return o.transactionID }
func (o *Order) Customer() string       { return o.customer }
func (o *Order) Seller() book.Seller    { return o.seller }
func (o *Order) Status() Status         { return o.status }
func (o *Order) Quantity() int          { return o.quantity }
func (o *Order) Price() decimal.Decimal { return o.price }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
