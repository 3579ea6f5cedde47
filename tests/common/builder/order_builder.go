//go:build unit || e2e

package builder

import (
	"time"

	"book-courier/internal/domain/book"
	"book-courier/internal/domain/order"
	"book-courier/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID            string
	BookID        string
	Title         string
	Image         string
	Category      string
	TransactionID string
	Customer      string
	Seller        book.Seller
	Status        string
	Price         decimal.Decimal
	Now           time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            "65b000000000000000000001",
		BookID:        "65a000000000000000000001",
		Title:         "The Go Programming Language",
		Image:         "https://example.com/gopl.png",
		Category:      "Programming",
		TransactionID: "pi_test_123",
		Customer:      "reader@example.com",
		Seller: book.Seller{
			Name:  "Test Seller",
			Email: "seller@example.com",
		},
		Status: "pending",
		Price:  decimal.RequireFromString("35.50"),
		Now:    time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) WithCustomer(email string) *OrderBuilder {
	o.Customer = email
	return o
}

func (o *OrderBuilder) WithStatus(status string) *OrderBuilder {
	o.Status = status
	return o
}

func (o *OrderBuilder) Params() order.Params {
	return order.Params{
		BookID:        o.BookID,
		Title:         o.Title,
		Image:         o.Image,
		Category:      o.Category,
		TransactionID: o.TransactionID,
		Customer:      o.Customer,
		Seller:        o.Seller,
		Price:         o.Price,
	}
}

// Build methods
func (o *OrderBuilder) BuildDomain() (*order.Order, error) {
	return order.NewOrder(o.Params(), o.Now)
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:            o.ID,
		BookID:        o.BookID,
		Title:         o.Title,
		Image:         o.Image,
		Category:      o.Category,
		TransactionID: o.TransactionID,
		Customer:      o.Customer,
		Seller: queries.SellerView{
			Name:  o.Seller.Name,
			Email: o.Seller.Email,
			Image: o.Seller.Image,
		},
		Status:    o.Status,
		Quantity:  order.UnitQuantity,
		Price:     o.Price,
		CreatedAt: o.Now,
		UpdatedAt: o.Now,
	}
}
