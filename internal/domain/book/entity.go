package book

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	title       Title
	description string
	image       string
	category    string
	author      string
	price       Price
	quantity    Quantity
	status      Status
	seller      Seller
	createdAt   time.Time
	updatedAt   time.Time
}

type Params struct {
	Title       string
	Description string
	Image       string
	Category    string
	Author      string
	Price       decimal.Decimal
	Quantity    int
	Status      string
}

func NewBook(p Params, seller Seller, now time.Time) (*Book, error) {
	title, err := NewTitle(p.Title)
	if err != nil {
		return nil, err
	}
	price, err := NewPrice(p.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := NewQuantity(p.Quantity)
	if err != nil {
		return nil, err
	}
	status, err := NewStatus(p.Status)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(seller.Email) == "" {
		return nil, ErrSellerRequired
	}

	return &Book{
		title:       title,
		description: strings.TrimSpace(p.Description),
		image:       strings.TrimSpace(p.Image),
		category:    strings.TrimSpace(p.Category),
		author:      strings.TrimSpace(p.Author),
		price:       price,
		quantity:    quantity,
		status:      status,
		seller:      seller,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (b *Book) Title() Title         { return b.title }
func (b *Book) Description() string  { return b.description }
func (b *Book) Image() string        { return b.image }
func (b *Book) Category() string     { return b.category }
func (b *Book) Author() string       { return b.author }
func (b *Book) Price() Price         { return b.price }
func (b *Book) Quantity() Quantity   { return b.quantity }
func (b *Book) Status() Status       { return b.status }
func (b *Book) Seller() Seller       { return b.seller }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }

// Patch is a partial inventory edit; nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Image       *string
	Category    *string
	Author      *string
	Price       *decimal.Decimal
	Quantity    *int
	Status      *string
}

// Normalize validates the patch and returns it with canonical values.
func (p Patch) Normalize() (Patch, error) {
	out := p
	if p.Title != nil {
		title, err := NewTitle(*p.Title)
		if err != nil {
			return Patch{}, err
		}
		v := title.String()
		out.Title = &v
	}
	if p.Price != nil {
		price, err := NewPrice(*p.Price)
		if err != nil {
			return Patch{}, err
		}
		v := price.Decimal()
		out.Price = &v
	}
	if p.Quantity != nil {
		if _, err := NewQuantity(*p.Quantity); err != nil {
			return Patch{}, err
		}
	}
	if p.Status != nil {
		status, err := NewStatus(*p.Status)
		if err != nil {
			return Patch{}, err
		}
		v := status.String()
		out.Status = &v
	}
	return out, nil
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Image == nil && p.Category == nil &&
		p.Author == nil && p.Price == nil && p.Quantity == nil && p.Status == nil
}
