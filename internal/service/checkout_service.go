package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "gallery/internal/errors"
	"gallery/internal/events"
	"gallery/internal/model"
	"gallery/internal/payment"
	"gallery/internal/repository"
)

// AddressInput is a postal address submitted at checkout.
type AddressInput struct {
	FirstName    string `json:"firstName" validate:"required,min=2,max=100"`
	LastName     string `json:"lastName" validate:"required,min=2,max=100"`
	Company      string `json:"company" validate:"max=255"`
	AddressLine1 string `json:"addressLine1" validate:"required,min=5,max=255"`
	AddressLine2 string `json:"addressLine2" validate:"max=255"`
	City         string `json:"city" validate:"required,min=2,max=100"`
	State        string `json:"state" validate:"max=100"`
	PostalCode   string `json:"postalCode" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"max=30"`
}

func (a AddressInput) toModel() model.Address {
	return model.Address{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Company:      a.Company,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Phone:        a.Phone,
	}
}

// CheckoutInput is a checkout form submission.
type CheckoutInput struct {
	Email           string               `json:"email" validate:"required,email"`
	Items           []CartItemInput      `json:"items" validate:"required,min=1,dive"`
	ShippingAddress AddressInput         `json:"shippingAddress"`
	BillingAddress  *AddressInput        `json:"billingAddress" validate:"omitempty"`
	PaymentMethod   model.PaymentMethod  `json:"paymentMethod" validate:"required,oneof=STRIPE MPESA PESAPAL BANK_TRANSFER"`
	ShippingMethod  model.ShippingMethod `json:"shippingMethod" validate:"required,oneof=STANDARD EXPRESS OVERNIGHT PICKUP WHITE_GLOVE"`
	PromoCode       string               `json:"promoCode" validate:"max=50"`
	Notes           string               `json:"notes" validate:"max=500"`
	CartID          string               `json:"cartId" validate:"omitempty,uuid"`
}

// CheckoutResult is a placed order plus what the client needs to pay for it.
type CheckoutResult struct {
	Order        *model.Order `json:"order"`
	ClientSecret string       `json:"clientSecret,omitempty"`
}

// CheckoutService places orders.
type CheckoutService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
}

type checkoutService struct {
	artworks repository.ArtworkRepository
	orders   repository.OrderRepository
	carts    CartRepository
	gateway  payment.Gateway
	events   events.Emitter
	logger   *zap.Logger
	now      func() time.Time
}

// NewCheckoutService creates a new checkout service. A nil now defaults to time.Now.
func NewCheckoutService(
	artworks repository.ArtworkRepository,
	orders repository.OrderRepository,
	carts CartRepository,
	gateway payment.Gateway,
	emitter events.Emitter,
	logger *zap.Logger,
	now func() time.Time,
) CheckoutService {
	if now == nil {
		now = time.Now
	}
	return &checkoutService{
		artworks: artworks,
		orders:   orders,
		carts:    carts,
		gateway:  gateway,
		events:   emitter,
		logger:   logger,
		now:      now,
	}
}

// NewOrderNumber returns an order number of the form ORD-XXXXXXXX.
func NewOrderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Checkout prices the items against current artwork data, starts the payment for
// Stripe orders and stores the order with its items.
func (s *checkoutService) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if len(in.Items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	ids := make([]uuid.UUID, 0, len(in.Items))
	verr := &apperrors.ValidationError{}
	for _, item := range in.Items {
		id, err := uuid.Parse(item.ArtworkID)
		if err != nil {
			verr.Add("items.artworkId", "must be a valid id")
			continue
		}
		ids = append(ids, id)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	artworks, err := s.artworks.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("load checkout artworks failed", zap.Error(err))
		return nil, apperrors.Backend("create order", err)
	}
	byID := make(map[uuid.UUID]model.Artwork, len(artworks))
	for _, a := range artworks {
		byID[a.ID] = a
	}

	lines := make([]PriceLine, 0, len(in.Items))
	for i, item := range in.Items {
		artwork, ok := byID[ids[i]]
		if !ok {
			return nil, apperrors.NotFound("artwork")
		}
		if !artwork.Available {
			return nil, apperrors.ErrArtworkUnavailable
		}
		lines = append(lines, PriceLine{Artwork: artwork, Quantity: item.Quantity, ReservationType: item.ReservationType})
	}

	now := s.now()
	quote, err := Price(lines, in.ShippingMethod, in.PromoCode, now)
	if err != nil {
		return nil, err
	}

	shipping := in.ShippingAddress.toModel()
	billing := shipping
	if in.BillingAddress != nil {
		billing = in.BillingAddress.toModel()
	}
	order := &model.Order{
		OrderNumber:     NewOrderNumber(),
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		CustomerName:    strings.TrimSpace(shipping.FirstName + " " + shipping.LastName),
		Status:          model.OrderPending,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   model.PaymentPending,
		ShippingMethod:  in.ShippingMethod,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Currency:        "USD",
		Subtotal:        quote.Subtotal,
		ShippingCost:    quote.ShippingCost,
		DiscountAmount:  quote.DiscountAmount,
		DiscountCode:    quote.DiscountCode,
		TotalAmount:     quote.Total,
		AmountDue:       quote.AmountDue,
		Notes:           in.Notes,
	}
	for _, line := range quote.Items {
		order.Items = append(order.Items, model.OrderItem{
			ArtworkID:            line.ArtworkID,
			Quantity:             line.Quantity,
			UnitPrice:            line.UnitPrice,
			TotalPrice:           line.LineTotal,
			ReservationType:      line.ReservationType,
			ReservationExpiresAt: line.ReservationExpiresAt,
		})
	}

	result := &CheckoutResult{Order: order}
	if in.PaymentMethod == model.PaymentStripe {
		intent, err := s.gateway.CreateIntent(ctx, payment.Request{
			OrderNumber: order.OrderNumber,
			Email:       order.Email,
			Amount:      order.AmountDue,
			Currency:    order.Currency,
		})
		if err != nil {
			s.logger.Error("create payment intent failed", zap.String("order_number", order.OrderNumber), zap.Error(err))
			return nil, apperrors.Backend("start payment", err)
		}
		order.PaymentReference = intent.Reference
		order.PaymentStatus = model.PaymentProcessing
		result.ClientSecret = intent.ClientSecret
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("create order failed", zap.String("order_number", order.OrderNumber), zap.Error(err))
		return nil, apperrors.Backend("create order", err)
	}

	s.logger.Info("order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.String("total", order.TotalAmount.StringFixed(2)),
	)
	s.events.Emit(ctx, events.New(events.TopicOrderCreated, map[string]interface{}{
		"orderNumber":   order.OrderNumber,
		"email":         order.Email,
		"totalAmount":   order.TotalAmount,
		"amountDue":     order.AmountDue,
		"paymentMethod": order.PaymentMethod,
	}))

	if in.CartID != "" {
		if cartID, err := uuid.Parse(in.CartID); err == nil {
			if err := s.carts.Delete(ctx, cartID); err != nil {
				s.logger.Warn("clear cart after checkout failed", zap.String("cart_id", in.CartID), zap.Error(err))
			}
		}
	}
	return result, nil
}
