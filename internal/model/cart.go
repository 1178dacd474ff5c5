package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is an artwork placed in a shopping cart.
type CartItem struct {
	ArtworkID       uuid.UUID       `json:"artworkId"`
	Quantity        int             `json:"quantity"`
	ReservationType ReservationType `json:"reservationType"`
}

// Cart is a visitor's shopping cart. Carts live in Redis, not in the database.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
