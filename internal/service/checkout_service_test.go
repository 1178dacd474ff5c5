package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "gallery/internal/errors"
	"gallery/internal/events"
	"gallery/internal/model"
	"gallery/internal/payment"
	"gallery/internal/testutil"
)

type checkoutFixture struct {
	svc      CheckoutService
	orders   *fakeOrders
	carts    *testutil.MemCarts
	gateway  *MockGateway
	bus      *testutil.MockBus
	sketch   model.Artwork
	panorama model.Artwork
	sold     model.Artwork
}

func newCheckoutFixture() *checkoutFixture {
	artist := testutil.NewArtist("Amani Otieno")
	f := &checkoutFixture{
		orders:   newFakeOrders(),
		carts:    testutil.NewMemCarts(),
		gateway:  new(MockGateway),
		bus:      testutil.NewMockBus(),
		sketch:   testutil.NewArtwork("Sketch", artist, 200),
		panorama: testutil.NewArtwork("Panorama", artist, 1500),
		sold:     testutil.NewArtwork("Sold Out", artist, 300, testutil.Unavailable()),
	}
	artworks := newFakeArtworks(f.sketch, f.panorama, f.sold)
	f.svc = NewCheckoutService(artworks, f.orders, f.carts, f.gateway, f.bus, testutil.Logger(), testutil.NewClock().Now)
	return f
}

func checkoutInput(method model.PaymentMethod, items ...CartItemInput) CheckoutInput {
	return CheckoutInput{
		Email: "Buyer@Example.com ",
		Items: items,
		ShippingAddress: AddressInput{
			FirstName:    "Neema",
			LastName:     "Achieng",
			AddressLine1: "12 Beach Road",
			City:         "Diani",
			PostalCode:   "80401",
			Country:      "Kenya",
		},
		PaymentMethod:  method,
		ShippingMethod: model.ShippingStandard,
	}
}

func TestCheckoutService_BankTransfer(t *testing.T) {
	f := newCheckoutFixture()
	cartID := uuid.New()
	require.NoError(t, f.carts.Save(context.Background(), &model.Cart{ID: cartID, Items: []model.CartItem{{ArtworkID: f.sketch.ID, Quantity: 1}}}))

	in := checkoutInput(model.PaymentBankTransfer, CartItemInput{ArtworkID: f.sketch.ID.String(), Quantity: 1})
	in.CartID = cartID.String()
	in.PromoCode = "GALLERY10"

	res, err := f.svc.Checkout(context.Background(), in)

	require.NoError(t, err)
	order := res.Order
	assert.Empty(t, res.ClientSecret)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Len(t, order.OrderNumber, 12)
	assert.Equal(t, "buyer@example.com", order.Email)
	assert.Equal(t, "Neema Achieng", order.CustomerName)
	assert.Equal(t, order.ShippingAddress, order.BillingAddress)
	assert.Equal(t, model.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "GALLERY10", order.DiscountCode)
	assert.True(t, dec("230").Equal(order.TotalAmount))
	require.Len(t, order.Items, 1)
	assert.True(t, dec("200").Equal(order.Items[0].TotalPrice))

	assert.Len(t, f.orders.Rows(), 1)
	assert.Equal(t, []string{events.TopicOrderCreated}, f.bus.Topics())
	cart, err := f.carts.Load(context.Background(), cartID)
	require.NoError(t, err)
	assert.Nil(t, cart)
	f.gateway.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything)
}

func TestCheckoutService_StripeChargesAmountDue(t *testing.T) {
	f := newCheckoutFixture()
	f.gateway.On("CreateIntent", mock.Anything, mock.MatchedBy(func(req payment.Request) bool {
		return req.Amount.Equal(dec("150")) && req.Currency == "USD" && strings.HasPrefix(req.OrderNumber, "ORD-")
	})).Return(&payment.Intent{Reference: "pi_123", ClientSecret: "pi_123_secret"}, nil)

	in := checkoutInput(model.PaymentStripe, CartItemInput{ArtworkID: f.panorama.ID.String(), Quantity: 1, ReservationType: model.ReservationDeposit})
	res, err := f.svc.Checkout(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", res.ClientSecret)
	assert.Equal(t, "pi_123", res.Order.PaymentReference)
	assert.Equal(t, model.PaymentProcessing, res.Order.PaymentStatus)
	assert.True(t, dec("1500").Equal(res.Order.TotalAmount))
	require.NotNil(t, res.Order.Items[0].ReservationExpiresAt)
	f.gateway.AssertExpectations(t)
}

func TestCheckoutService_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *checkoutFixture) CheckoutInput
		check func(t *testing.T, err error)
	}{
		{
			name: "no items",
			setup: func(f *checkoutFixture) CheckoutInput {
				return checkoutInput(model.PaymentBankTransfer)
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, apperrors.ErrEmptyCart) },
		},
		{
			name: "unknown artwork",
			setup: func(f *checkoutFixture) CheckoutInput {
				return checkoutInput(model.PaymentBankTransfer, CartItemInput{ArtworkID: uuid.NewString(), Quantity: 1})
			},
			check: func(t *testing.T, err error) {
				var nf *apperrors.NotFoundError
				assert.ErrorAs(t, err, &nf)
			},
		},
		{
			name: "sold artwork",
			setup: func(f *checkoutFixture) CheckoutInput {
				return checkoutInput(model.PaymentBankTransfer, CartItemInput{ArtworkID: f.sold.ID.String(), Quantity: 1})
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, apperrors.ErrArtworkUnavailable) },
		},
		{
			name: "bad promo",
			setup: func(f *checkoutFixture) CheckoutInput {
				in := checkoutInput(model.PaymentBankTransfer, CartItemInput{ArtworkID: f.sketch.ID.String(), Quantity: 1})
				in.PromoCode = "HALFOFF"
				return in
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, apperrors.ErrInvalidPromoCode) },
		},
		{
			name: "payment provider down",
			setup: func(f *checkoutFixture) CheckoutInput {
				f.gateway.On("CreateIntent", mock.Anything, mock.Anything).Return(nil, errors.New("stripe: timeout"))
				return checkoutInput(model.PaymentStripe, CartItemInput{ArtworkID: f.sketch.ID.String(), Quantity: 1})
			},
			check: func(t *testing.T, err error) {
				var berr *apperrors.BackendError
				require.ErrorAs(t, err, &berr)
				assert.Equal(t, "start payment", berr.Op)
			},
		},
		{
			name: "order store fails",
			setup: func(f *checkoutFixture) CheckoutInput {
				f.orders.CreateErr = errors.New("deadlock")
				return checkoutInput(model.PaymentBankTransfer, CartItemInput{ArtworkID: f.sketch.ID.String(), Quantity: 1})
			},
			check: func(t *testing.T, err error) {
				var berr *apperrors.BackendError
				require.ErrorAs(t, err, &berr)
				assert.Equal(t, "create order", berr.Op)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture()
			_, err := f.svc.Checkout(context.Background(), tt.setup(f))
			require.Error(t, err)
			tt.check(t, err)
			assert.Empty(t, f.bus.Events())
		})
	}
}

func TestNewOrderNumber(t *testing.T) {
	a, b := NewOrderNumber(), NewOrderNumber()
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, a)
	assert.NotEqual(t, a, b)
}
