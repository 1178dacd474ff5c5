package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gallery/internal/errors"
	"gallery/internal/model"
	"gallery/internal/testutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPrice(t *testing.T) {
	artist := testutil.NewArtist("Amani Otieno")
	cheap := testutil.NewArtwork("Sketch", artist, 200)
	dear := testutil.NewArtwork("Panorama", artist, 1500)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		lines     []PriceLine
		shipping  model.ShippingMethod
		promo     string
		subtotal  string
		shipCost  string
		discount  string
		total     string
		amountDue string
	}{
		{
			name:     "empty cart",
			shipping: model.ShippingStandard,
			subtotal: "0", shipCost: "0", discount: "0", total: "0", amountDue: "0",
		},
		{
			name:     "flat shipping under threshold",
			lines:    []PriceLine{{Artwork: cheap, Quantity: 2}},
			shipping: model.ShippingStandard,
			subtotal: "400", shipCost: "50", discount: "0", total: "450", amountDue: "450",
		},
		{
			name:     "free shipping over threshold",
			lines:    []PriceLine{{Artwork: dear, Quantity: 1}},
			shipping: model.ShippingExpress,
			subtotal: "1500", shipCost: "0", discount: "0", total: "1500", amountDue: "1500",
		},
		{
			name:     "pickup ships free",
			lines:    []PriceLine{{Artwork: cheap, Quantity: 1}},
			shipping: model.ShippingPickup,
			subtotal: "200", shipCost: "0", discount: "0", total: "200", amountDue: "200",
		},
		{
			name:     "promo code is case-insensitive",
			lines:    []PriceLine{{Artwork: cheap, Quantity: 1}},
			shipping: model.ShippingStandard,
			promo:    "gallery10",
			subtotal: "200", shipCost: "50", discount: "20", total: "230", amountDue: "230",
		},
		{
			name: "deposit defers ninety percent",
			lines: []PriceLine{
				{Artwork: dear, Quantity: 1, ReservationType: model.ReservationDeposit},
				{Artwork: cheap, Quantity: 1},
			},
			shipping: model.ShippingStandard,
			subtotal: "1700", shipCost: "0", discount: "0", total: "1700", amountDue: "350",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Price(tt.lines, tt.shipping, tt.promo, now)

			require.NoError(t, err)
			assert.True(t, dec(tt.subtotal).Equal(q.Subtotal), "subtotal %s", q.Subtotal)
			assert.True(t, dec(tt.shipCost).Equal(q.ShippingCost), "shipping %s", q.ShippingCost)
			assert.True(t, dec(tt.discount).Equal(q.DiscountAmount), "discount %s", q.DiscountAmount)
			assert.True(t, dec(tt.total).Equal(q.Total), "total %s", q.Total)
			assert.True(t, dec(tt.amountDue).Equal(q.AmountDue), "amount due %s", q.AmountDue)
			assert.Len(t, q.Items, len(tt.lines))
		})
	}
}

func TestPrice_DepositLineHoldsReservation(t *testing.T) {
	artist := testutil.NewArtist("Amani Otieno")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lines := []PriceLine{{Artwork: testutil.NewArtwork("Panorama", artist, 1500), ReservationType: model.ReservationDeposit}}

	q, err := Price(lines, model.ShippingStandard, "", now)

	require.NoError(t, err)
	item := q.Items[0]
	assert.Equal(t, 1, item.Quantity)
	assert.True(t, dec("150").Equal(item.DueNow))
	require.NotNil(t, item.ReservationExpiresAt)
	assert.Equal(t, now.Add(ReservationHold), *item.ReservationExpiresAt)
	assert.Equal(t, "Amani Otieno", item.ArtistName)
}

func TestPrice_InvalidPromo(t *testing.T) {
	artist := testutil.NewArtist("Amani Otieno")
	lines := []PriceLine{{Artwork: testutil.NewArtwork("Sketch", artist, 200), Quantity: 1}}

	_, err := Price(lines, model.ShippingStandard, "FREESTUFF", time.Now())

	assert.ErrorIs(t, err, apperrors.ErrInvalidPromoCode)
}
