package request

import (
	"book-courier/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CheckoutCustomer struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type CreateCheckoutSessionRequest struct {
	BookID      string           `json:"bookId" binding:"required"`
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Price       decimal.Decimal  `json:"price"`
	Quantity    int              `json:"quantity" binding:"omitempty,min=1"`
	Customer    CheckoutCustomer `json:"customer"`
}

func (r *CreateCheckoutSessionRequest) ToCommand() commands.CreateSessionRequest {
	return commands.CreateSessionRequest{
		BookID:        r.BookID,
		Title:         r.Title,
		Description:   r.Description,
		Image:         r.Image,
		Price:         r.Price,
		Quantity:      r.Quantity,
		CustomerEmail: r.Customer.Email,
	}
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
