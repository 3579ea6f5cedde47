package document

import (
	"time"

	"book-courier/internal/domain/book"
	"book-courier/internal/pkg/money"
	"book-courier/internal/usecase/queries"
	"book-courier/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SellerDoc struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
	Image string `bson:"image,omitempty"`
}

type BookDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description,omitempty"`
	Image         string             `bson:"image,omitempty"`
	Category      string             `bson:"category,omitempty"`
	Author        string             `bson:"author,omitempty"`
	Price         float64            `bson:"price"`
	Quantity      int                `bson:"quantity"`
	Status        string             `bson:"status"`
	PaymentStatus string             `bson:"paymentStatus,omitempty"`
	Seller        SellerDoc          `bson:"seller"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func FromBook(b *book.Book) BookDoc {
	return BookDoc{
		Title:       b.Title().String(),
		Description: b.Description(),
		Image:       b.Image(),
		Category:    b.Category(),
		Author:      b.Author(),
		Price:       money.ToFloat(b.Price().Decimal()),
		Quantity:    b.Quantity().Int(),
		Status:      b.Status().String(),
		Seller:      FromSeller(b.Seller()),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func FromSeller(s book.Seller) SellerDoc {
	return SellerDoc{Name: s.Name, Email: s.Email, Image: s.Image}
}

func (d SellerDoc) ToDomain() book.Seller {
	return book.Seller{Name: d.Name, Email: d.Email, Image: d.Image}
}

func (d SellerDoc) ToView() queries.SellerView {
	return queries.SellerView{Name: d.Name, Email: d.Email, Image: d.Image}
}

func (d BookDoc) ToView() *queries.BookView {
	return &queries.BookView{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		Image:         d.Image,
		Category:      d.Category,
		Author:        d.Author,
		Price:         money.FromFloat(d.Price),
		Quantity:      d.Quantity,
		Status:        d.Status,
		PaymentStatus: d.PaymentStatus,
		Seller:        d.Seller.ToView(),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (d BookDoc) ToSnapshot() *shared.BookSnapshot {
	return &shared.BookSnapshot{
		ID:       d.ID.Hex(),
		Title:    d.Title,
		Image:    d.Image,
		Category: d.Category,
		Price:    money.FromFloat(d.Price),
		Quantity: d.Quantity,
		Seller:   d.Seller.ToDomain(),
	}
}
