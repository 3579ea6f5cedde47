package response

import (
	"time"

	"book-courier/internal/pkg/money"
	"book-courier/internal/usecase/queries"
)

type OrderResponse struct {
	ID            string         `json:"_id"`
	BookID        string         `json:"bookId"`
	Title         string         `json:"title"`
	Image         string         `json:"image"`
	Category      string         `json:"category"`
	TransactionID string         `json:"transactionId"`
	Customer      string         `json:"customer"`
	Seller        SellerResponse `json:"seller"`
	Status        string         `json:"status"`
	Quantity      int            `json:"quantity"`
	Price         float64        `json:"price"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func FromOrderList(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = &OrderResponse{
			ID:            v.ID,
			BookID:        v.BookID,
			Title:         v.Title,
			Image:         v.Image,
			Category:      v.Category,
			TransactionID: v.TransactionID,
			Customer:      v.Customer,
			Seller:        SellerResponse(v.Seller),
			Status:        v.Status,
			Quantity:      v.Quantity,
			Price:         money.ToFloat(v.Price),
			CreatedAt:     v.CreatedAt,
		}
	}
	return res
}
