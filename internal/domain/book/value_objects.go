package book

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title must be at most 200 characters")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidStatus   = errors.New("invalid book status")
	ErrSellerRequired  = errors.New("seller email is required")
)

const MaxTitleLength = 200

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrTitleRequired
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string {
	return t.value
}

type Price struct {
	value decimal.Decimal
}

func NewPrice(d decimal.Decimal) (Price, error) {
	if !d.IsPositive() {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: d.Round(2)}, nil
}

func (p Price) Decimal() decimal.Decimal {
	return p.value
}

type Quantity struct {
	value int
}

func NewQuantity(n int) (Quantity, error) {
	if n < 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: n}, nil
}

func (q Quantity) Int() int {
	return q.value
}
