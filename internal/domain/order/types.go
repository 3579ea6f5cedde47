package order

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrTransactionIDRequired = errors.New("transaction id is required")
	ErrBookIDRequired        = errors.New("book id is required")
	ErrCustomerRequired      = errors.New("customer email is required")
	ErrInvalidPrice          = errors.New("order price must not be negative")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
