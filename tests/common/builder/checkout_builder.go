//go:build unit || e2e

package builder

import (
	"book-courier/internal/usecase/commands"
)

type CheckoutSessionBuilder struct {
	ID              string
	PaymentStatus   string
	PaymentIntentID string
	CustomerEmail   string
	AmountTotal     int64
	BookID          string
	Customer        string
}

func NewCheckoutSessionBuilder() *CheckoutSessionBuilder {
	return &CheckoutSessionBuilder{
		ID:              "cs_test_123",
		PaymentStatus:   commands.PaymentStatusPaid,
		PaymentIntentID: "pi_test_123",
		CustomerEmail:   "reader@example.com",
		AmountTotal:     3550,
		BookID:          "65a000000000000000000001",
		Customer:        "reader@example.com",
	}
}

func (s *CheckoutSessionBuilder) With(mutate func(*CheckoutSessionBuilder)) *CheckoutSessionBuilder {
	mutate(s)
	return s
}

func (s *CheckoutSessionBuilder) Unpaid() *CheckoutSessionBuilder {
	s.PaymentStatus = "unpaid"
	return s
}

func (s *CheckoutSessionBuilder) WithoutPaymentIntent() *CheckoutSessionBuilder {
	s.PaymentIntentID = ""
	return s
}

func (s *CheckoutSessionBuilder) Build() *commands.CheckoutSession {
	metadata := map[string]string{commands.MetadataBookID: s.BookID}
	if s.Customer != "" {
		metadata[commands.MetadataCustomer] = s.Customer
	}
	return &commands.CheckoutSession{
		ID:              s.ID,
		URL:             "https://checkout.stripe.com/c/pay/" + s.ID,
		PaymentStatus:   s.PaymentStatus,
		PaymentIntentID: s.PaymentIntentID,
		CustomerEmail:   s.CustomerEmail,
		AmountTotal:     s.AmountTotal,
		Currency:        "usd",
		Metadata:        metadata,
	}
}
