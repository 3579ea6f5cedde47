package document

import (
	"time"

	"book-courier/internal/domain/order"
	"book-courier/internal/pkg/money"
	"book-courier/internal/usecase/queries"
	"book-courier/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	BookID        string             `bson:"bookId"`
	Title         string             `bson:"title"`
	Image         string             `bson:"image"`
	Category      string             `bson:"category"`
	TransactionID string             `bson:"transactionId"`
	Customer      string             `bson:"customer"`
	Seller        SellerDoc          `bson:"seller"`
	Status        string             `bson:"status"`
	Quantity      int                `bson:"quantity"`
	Price         float64            `bson:"price"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty"`
}

func FromOrder(o *order.Order) OrderDoc {
	return OrderDoc{
		BookID:        o.BookID(),
		Title:         o.Title(),
		Image:         o.Image(),
		Category:      o.Category(),
		TransactionID: o.TransactionID(),
		Customer:      o.Customer(),
		Seller:        FromSeller(o.Seller()),
		Status:        o.Status().String(),
		Quantity:      o.Quantity(),
		Price:         money.ToFloat(o.Price()),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func (d OrderDoc) ToView() *queries.OrderView {
	return &queries.OrderView{
		ID:            d.ID.Hex(),
		BookID:        d.BookID,
		Title:         d.Title,
		Image:         d.Image,
		Category:      d.Category,
		TransactionID: d.TransactionID,
		Customer:      d.Customer,
		Seller:        d.Seller.ToView(),
		Status:        d.Status,
		Quantity:      d.Quantity,
		Price:         money.FromFloat(d.Price),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (d OrderDoc) ToSnapshot() *shared.OrderSnapshot {
	return &shared.OrderSnapshot{
		ID:            d.ID.Hex(),
		BookID:        d.BookID,
		TransactionID: d.TransactionID,
		Customer:      d.Customer,
		Status:        d.Status,
	}
}
