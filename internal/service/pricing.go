package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "gallery/internal/errors"
	"gallery/internal/model"
)

// Pricing rules of the storefront.
var (
	FreeShippingThreshold = decimal.NewFromInt(1000)
	FlatShippingCost      = decimal.NewFromInt(50)
	PromoDiscountRate     = decimal.RequireFromString("0.10")
	DepositRate           = decimal.RequireFromString("0.10")
)

const (
	// PromoCode is the only accepted discount code, matched case-insensitively.
	PromoCode = "GALLERY10"
	// ReservationHold is how long a deposit keeps an artwork reserved.
	ReservationHold = 7 * 24 * time.Hour
)

// PriceLine is one artwork to price.
type PriceLine struct {
	Artwork         model.Artwork
	Quantity        int
	ReservationType model.ReservationType
}

// QuoteLine is a priced line.
type QuoteLine struct {
	ArtworkID            uuid.UUID             `json:"artworkId"`
	Title                string                `json:"title"`
	Slug                 string                `json:"slug"`
	Image                string                `json:"image"`
	ArtistName           string                `json:"artistName,omitempty"`
	Quantity             int                   `json:"quantity"`
	UnitPrice            decimal.Decimal       `json:"unitPrice"`
	LineTotal            decimal.Decimal       `json:"lineTotal"`
	ReservationType      model.ReservationType `json:"reservationType"`
	DueNow               decimal.Decimal       `json:"dueNow"`
	ReservationExpiresAt *time.Time            `json:"reservationExpiresAt,omitempty"`
}

// Quote is the price breakdown of a cart or order.
type Quote struct {
	Items          []QuoteLine     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	DiscountCode   string          `json:"discountCode,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Total          decimal.Decimal `json:"total"`
	AmountDue      decimal.Decimal `json:"amountDue"`
}

// Price computes the quote for lines. Shipping is free above the threshold or for
// pickup. Deposit lines are due at DepositRate now and are held for ReservationHold.
func Price(lines []PriceLine, shipping model.ShippingMethod, promo string, now time.Time) (Quote, error) {
	q := Quote{Items: make([]QuoteLine, 0, len(lines))}
	subtotal := decimal.Zero
	deferred := decimal.Zero

	for _, l := range lines {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}
		reservation := l.ReservationType
		if reservation == "" {
			reservation = model.ReservationFullPayment
		}
		lineTotal := l.Artwork.Price.Mul(decimal.NewFromInt(int64(qty)))
		line := QuoteLine{
			ArtworkID:       l.Artwork.ID,
			Title:           l.Artwork.Title,
			Slug:            l.Artwork.Slug,
			Image:           l.Artwork.Image,
			Quantity:        qty,
			UnitPrice:       l.Artwork.Price,
			LineTotal:       lineTotal,
			ReservationType: reservation,
			DueNow:          lineTotal,
		}
		if l.Artwork.Artist != nil {
			line.ArtistName = l.Artwork.Artist.Name
		}
		if reservation == model.ReservationDeposit {
			line.DueNow = cents(lineTotal.Mul(DepositRate))
			deferred = deferred.Add(lineTotal.Sub(line.DueNow))
			expires := now.Add(ReservationHold)
			line.ReservationExpiresAt = &expires
		}
		subtotal = subtotal.Add(lineTotal)
		q.Items = append(q.Items, line)
	}

	q.Subtotal = cents(subtotal)
	q.ShippingCost = decimal.Zero
	if len(lines) > 0 && shipping != model.ShippingPickup && !subtotal.GreaterThan(FreeShippingThreshold) {
		q.ShippingCost = FlatShippingCost
	}

	q.DiscountAmount = decimal.Zero
	if code := strings.TrimSpace(promo); code != "" {
		if !strings.EqualFold(code, PromoCode) {
			return Quote{}, apperrors.ErrInvalidPromoCode
		}
		q.DiscountCode = PromoCode
		q.DiscountAmount = cents(subtotal.Mul(PromoDiscountRate))
	}

	q.Total = q.Subtotal.Add(q.ShippingCost).Sub(q.DiscountAmount)
	q.AmountDue = cents(q.Total.Sub(deferred))
	return q, nil
}

func cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
