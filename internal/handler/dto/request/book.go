package request

import (
	"book-courier/internal/domain/book"

	"github.com/shopspring/decimal"
)

type CreateBookRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" binding:"min=0"`
	Status      string          `json:"status" binding:"omitempty,oneof=draft published"`
}

func (r *CreateBookRequest) ToDomain() book.Params {
	return book.Params{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
		Author:      r.Author,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Status:      r.Status,
	}
}

// UpdateBookRequest is a partial update; absent fields keep their stored values.
type UpdateBookRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=200"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	Category    *string          `json:"category"`
	Author      *string          `json:"author"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity" binding:"omitempty,min=0"`
	Status      *string          `json:"status" binding:"omitempty,oneof=draft published"`
}

func (r *UpdateBookRequest) ToDomain() book.Patch {
	return book.Patch{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
		Author:      r.Author,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Status:      r.Status,
	}
}
