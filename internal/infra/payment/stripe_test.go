//go:build unit

package payment

import (
	"testing"

	"book-courier/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestBuildSessionParams(t *testing.T) {
	p := commands.CheckoutSessionParams{
		LineItem: commands.CheckoutLineItem{
			Name:        "The Go Programming Language",
			Description: "Donovan & Kernighan",
			Image:       "https://example.com/gopl.jpg",
			UnitAmount:  1999,
			Quantity:    1,
		},
		CustomerEmail: "reader@example.com",
		Metadata: map[string]string{
			commands.MetadataBookID:   "665f1c2e8a1b2c3d4e5f6a7b",
			commands.MetadataCustomer: "reader@example.com",
		},
		SuccessURL: "http://localhost:5173/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "http://localhost:5173/book/665f1c2e8a1b2c3d4e5f6a7b",
	}

	params := buildSessionParams("usd", p)

	assert.Equal(t, string(stripe.CheckoutSessionModePayment), stripe.StringValue(params.Mode))
	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, int64(1), stripe.Int64Value(item.Quantity))
	assert.Equal(t, "usd", stripe.StringValue(item.PriceData.Currency))
	assert.Equal(t, int64(1999), stripe.Int64Value(item.PriceData.UnitAmount))
	assert.Equal(t, "The Go Programming Language", stripe.StringValue(item.PriceData.ProductData.Name))
	assert.Equal(t, "Donovan & Kernighan", stripe.StringValue(item.PriceData.ProductData.Description))
	require.Len(t, item.PriceData.ProductData.Images, 1)
	assert.Equal(t, "https://example.com/gopl.jpg", stripe.StringValue(item.PriceData.ProductData.Images[0]))
	assert.Equal(t, "reader@example.com", stripe.StringValue(params.CustomerEmail))
	assert.Equal(t, p.SuccessURL, stripe.StringValue(params.SuccessURL))
	assert.Equal(t, p.CancelURL, stripe.StringValue(params.CancelURL))
	if diff := cmp.Diff(p.Metadata, params.Metadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSessionParams_OptionalFieldsOmitted(t *testing.T) {
	params := buildSessionParams("eur", commands.CheckoutSessionParams{
		LineItem: commands.CheckoutLineItem{Name: "Untitled", UnitAmount: 500, Quantity: 2},
	})

	product := params.LineItems[0].PriceData.ProductData
	assert.Nil(t, product.Description)
	assert.Empty(t, product.Images)
	assert.Equal(t, "eur", stripe.StringValue(params.LineItems[0].PriceData.Currency))
	assert.Equal(t, int64(2), stripe.Int64Value(params.LineItems[0].Quantity))
}

func TestToCheckoutSession(t *testing.T) {
	tests := []struct {
		name    string
		session *stripe.CheckoutSession
		want    *commands.CheckoutSession
	}{
		{
			name: "paid session with payment intent",
			session: &stripe.CheckoutSession{
				ID:            "cs_test_1",
				URL:           "https://checkout.stripe.com/c/pay/cs_test_1",
				PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
				PaymentIntent: &stripe.PaymentIntent{ID: "pi_123"},
				CustomerEmail: "reader@example.com",
				AmountTotal:   1999,
				Currency:      stripe.CurrencyUSD,
				Metadata:      map[string]string{"bookId": "b1"},
			},
			want: &commands.CheckoutSession{
				ID:              "cs_test_1",
				URL:             "https://checkout.stripe.com/c/pay/cs_test_1",
				PaymentStatus:   "paid",
				PaymentIntentID: "pi_123",
				CustomerEmail:   "reader@example.com",
				AmountTotal:     1999,
				Currency:        "usd",
				Metadata:        map[string]string{"bookId": "b1"},
			},
		},
		{
			name: "unpaid session falls back to customer details",
			session: &stripe.CheckoutSession{
				ID:              "cs_test_2",
				PaymentStatus:   stripe.CheckoutSessionPaymentStatusUnpaid,
				CustomerDetails: &stripe.CheckoutSessionCustomerDetails{Email: "details@example.com"},
			},
			want: &commands.CheckoutSession{
				ID:            "cs_test_2",
				PaymentStatus: "unpaid",
				CustomerEmail: "details@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toCheckoutSession(tt.session)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("session mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
