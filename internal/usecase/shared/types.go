package shared

import (
	"book-courier/internal/domain/book"
	"book-courier/internal/domain/user"

	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type BookSnapshot struct {
	ID       string
	Title    string
	Image    string
	Category string
	Price    decimal.Decimal
	Quantity int
	Seller   book.Seller
}

type OrderSnapshot struct {
	ID            string
	BookID        string
	TransactionID string
	Customer      string
	Status        string
}

type UserSnapshot struct {
	Email string
	Name  string
	Image string
	Role  user.Role
}
