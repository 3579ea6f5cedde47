package response

import (
	"time"

	"book-courier/internal/pkg/money"
	"book-courier/internal/usecase/queries"
)

type SellerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type BookResponse struct {
	ID            string         `json:"_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	Category      string         `json:"category"`
	Author        string         `json:"author"`
	Price         float64        `json:"price"`
	Quantity      int            `json:"quantity"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus,omitempty"`
	Seller        SellerResponse `json:"seller"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		Image:         v.Image,
		Category:      v.Category,
		Author:        v.Author,
		Price:         money.ToFloat(v.Price),
		Quantity:      v.Quantity,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		Seller:        SellerResponse(v.Seller),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromBookList(views []*queries.BookView) []*BookResponse {
	res := make([]*BookResponse, len(views))
	for i, v := range views {
		res[i] = FromBookView(v)
	}
	return res
}

type CreateBookResponse struct {
	InsertedID string `json:"insertedId"`
}
