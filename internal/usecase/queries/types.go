package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// SellerView is the owner snapshot carried by books and orders
type SellerView struct {
	Name  string
	Email string
	Image string
}

// BookView represents read-optimized book data
type BookView struct {
	ID            string
	Title         string
	Description   string
	Image         string
	Category      string
	Author        string
	Price         decimal.Decimal
	Quantity      int
	Status        string
	PaymentStatus string
	Seller        SellerView
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BookFilter struct {
	SellerEmail string
	Status      string
	Category    string
	Search      string
	Limit       int
}

// OrderView represents read-optimized order data
type OrderView struct {
	ID            string
	BookID        string
	Title         string
	Image         string
	Category      string
	TransactionID string
	Customer      string
	Seller        SellerView
	Status        string
	Quantity      int
	Price         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderFilter struct {
	Customer    string
	SellerEmail string
}

// UserView represents read-optimized user data
type UserView struct {
	Email        string
	Name         string
	Image        string
	Role         string
	LastLoggedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SellerRequestView joins a promotion request with the requester's current account
type SellerRequestView struct {
	Email     string
	Name      string
	Image     string
	Role      string
	Status    string
	CreatedAt time.Time
}
