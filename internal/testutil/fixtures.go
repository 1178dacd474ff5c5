package testutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gallery/internal/model"
)

var fixtureEpoch = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func slugify(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}

// NewArtist returns an Artist with sensible defaults, suitable for test fixtures.
// Override individual fields after creation as needed.
func NewArtist(name string, opts ...func(*model.Artist)) model.Artist {
	a := model.Artist{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slugify(name),
		Bio:       "Bio of " + name,
		Country:   "Kenya",
		CreatedAt: fixtureEpoch,
		UpdatedAt: fixtureEpoch,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithCountry sets the artist's country.
func WithCountry(country string) func(*model.Artist) {
	return func(a *model.Artist) { a.Country = country }
}

// WithFeaturedArtist marks the artist featured.
func WithFeaturedArtist() func(*model.Artist) {
	return func(a *model.Artist) { a.Featured = true }
}

// NewArtwork returns an available Artwork by artist with the given price.
func NewArtwork(title string, artist model.Artist, price int64, opts ...func(*model.Artwork)) model.Artwork {
	artistCopy := artist
	w := model.Artwork{
		ID:          uuid.New(),
		Title:       title,
		Slug:        slugify(title),
		Description: "Description of " + title,
		Medium:      "Oil on canvas",
		Year:        2020,
		Price:       decimal.NewFromInt(price),
		Currency:    "USD",
		Category:    model.CategoryPainting,
		Available:   true,
		ArtistID:    artist.ID,
		Artist:      &artistCopy,
		CreatedAt:   fixtureEpoch,
		UpdatedAt:   fixtureEpoch,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// WithCategory sets the artwork category.
func WithCategory(c model.ArtworkCategory) func(*model.Artwork) {
	return func(w *model.Artwork) { w.Category = c }
}

// Unavailable marks the artwork sold.
func Unavailable() func(*model.Artwork) {
	return func(w *model.Artwork) { w.Available = false }
}

// CreatedAt sets the artwork's creation time.
func CreatedAt(t time.Time) func(*model.Artwork) {
	return func(w *model.Artwork) { w.CreatedAt = t }
}

// NewExhibition returns an exhibition running from start to end.
func NewExhibition(title string, start, end time.Time, status model.ExhibitionStatus) model.Exhibition {
	return model.Exhibition{
		ID:          uuid.New(),
		Title:       title,
		Slug:        slugify(title),
		Description: "About " + title,
		StartDate:   start,
		EndDate:     end,
		Location:    "Diani Beach",
		Status:      status,
		CreatedAt:   fixtureEpoch,
		UpdatedAt:   fixtureEpoch,
	}
}

// NewOrder returns a pending order for email.
func NewOrder(n int, email string, total int64) model.Order {
	return model.Order{
		ID:            uuid.New(),
		OrderNumber:   fmt.Sprintf("ORD-%08d", n),
		Email:         email,
		CustomerName:  "Customer " + email,
		Status:        model.OrderPending,
		PaymentMethod: model.PaymentBankTransfer,
		PaymentStatus: model.PaymentPending,
		TotalAmount:   decimal.NewFromInt(total),
		CreatedAt:     fixtureEpoch.Add(time.Duration(n) * time.Hour),
	}
}

// NewMessage returns a contact message.
func NewMessage(name, subject string) model.ContactMessage {
	return model.ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     slugify(name) + "@example.com",
		Subject:   subject,
		Message:   "I would like to know more about the collection.",
		CreatedAt: fixtureEpoch,
	}
}
