// Package payment starts payments with external providers.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// Intent is a payment started with a provider.
type Intent struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

// Request describes the amount to collect for an order.
type Request struct {
	OrderNumber string
	Email       string
	Amount      decimal.Decimal
	Currency    string
}

// Gateway starts a payment for an order.
type Gateway interface {
	CreateIntent(ctx context.Context, req Request) (*Intent, error)
}

// StripeGateway creates Stripe PaymentIntents.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway using secretKey.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent creates a PaymentIntent for the amount in minor units.
func (g *StripeGateway) CreateIntent(ctx context.Context, req Request) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(MinorUnits(req.Amount)),
		Currency:     stripe.String(strings.ToLower(req.Currency)),
		ReceiptEmail: stripe.String(req.Email),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("order_number", req.OrderNumber)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}
	return &Intent{Reference: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// MinorUnits converts an amount to cents.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// OfflineGateway issues a local reference for providers settled outside the API,
// and stands in for Stripe when no secret key is configured.
type OfflineGateway struct{}

func (OfflineGateway) CreateIntent(_ context.Context, req Request) (*Intent, error) {
	return &Intent{Reference: "offline_" + uuid.NewString()}, nil
}
