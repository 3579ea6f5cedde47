//go:build unit || e2e

package builder

import (
	"time"

	"book-courier/internal/domain/book"
	"book-courier/internal/usecase/queries"
	"book-courier/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type BookBuilder struct {
	ID          string
	Title       string
	Description string
	Image       string
	Category    string
	Author      string
	Price       decimal.Decimal
	Quantity    int
	Status      string
	Seller      book.Seller
	Now         time.Time
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID:          "65a000000000000000000001",
		Title:       "The Go Programming Language",
		Description: "A classic introduction",
		Image:       "https://example.com/gopl.png",
		Category:    "Programming",
		Author:      "Donovan & Kernighan",
		Price:       decimal.RequireFromString("35.50"),
		Quantity:    3,
		Status:      "published",
		Seller: book.Seller{
			Name:  "Test Seller",
			Email: "seller@example.com",
			Image: "https://example.com/seller.png",
		},
		Now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) WithID(id string) *BookBuilder {
	b.ID = id
	return b
}

func (b *BookBuilder) WithQuantity(n int) *BookBuilder {
	b.Quantity = n
	return b
}

func (b *BookBuilder) WithPrice(price string) *BookBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *BookBuilder) WithSellerEmail(email string) *BookBuilder {
	b.Seller.Email = email
	return b
}

func (b *BookBuilder) Params() book.Params {
	return book.Params{
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		Category:    b.Category,
		Author:      b.Author,
		Price:       b.Price,
		Quantity:    b.Quantity,
		Status:      b.Status,
	}
}

// Build methods
func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	return book.NewBook(b.Params(), b.Seller, b.Now)
}

func (b *BookBuilder) BuildSnapshot() *shared.BookSnapshot {
	return &shared.BookSnapshot{
		ID:       b.ID,
		Title:    b.Title,
		Image:    b.Image,
		Category: b.Category,
		Price:    b.Price,
		Quantity: b.Quantity,
		Seller:   b.Seller,
	}
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		Category:    b.Category,
		Author:      b.Author,
		Price:       b.Price,
		Quantity:    b.Quantity,
		Status:      b.Status,
		Seller: queries.SellerView{
			Name:  b.Seller.Name,
			Email: b.Seller.Email,
			Image: b.Seller.Image,
		},
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}
