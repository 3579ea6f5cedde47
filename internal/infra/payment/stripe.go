package payment

import (
	"context"

	"book-courier/internal/pkg/config"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway creates and retrieves hosted checkout sessions.
type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	return &StripeGateway{
		api:      client.New(cfg.SecretKey, nil),
		currency: cfg.Currency,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSession, error) {
	params := buildSessionParams(g.currency, p)
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: create checkout session")
	}
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, errs.Wrapf(err, "stripe: retrieve checkout session %s", sessionID)
	}
	return toCheckoutSession(s), nil
}

func buildSessionParams(currency string, p commands.CheckoutSessionParams) *stripe.CheckoutSessionParams {
	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(p.LineItem.Name),
	}
	if p.LineItem.Description != "" {
		product.Description = stripe.String(p.LineItem.Description)
	}
	if p.LineItem.Image != "" {
		product.Images = []*string{stripe.String(p.LineItem.Image)}
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(currency),
					ProductData: product,
					UnitAmount:  stripe.Int64(p.LineItem.UnitAmount),
				},
				Quantity: stripe.Int64(p.LineItem.Quantity),
			},
		},
		CustomerEmail: stripe.String(p.CustomerEmail),
		SuccessURL:    stripe.String(p.SuccessURL),
		CancelURL:     stripe.String(p.CancelURL),
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}

func toCheckoutSession(s *stripe.CheckoutSession) *commands.CheckoutSession {
	out := &commands.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		CustomerEmail: s.CustomerEmail,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	return out
}
