package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"gallery/internal/model"
)

// CartTTL is how long an untouched cart survives.
const CartTTL = 7 * 24 * time.Hour

// CartStore keeps shopping carts in redis. Carts are the only copy of their data,
// so unlike Client it reports redis failures.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a cart store on the same redis connection as c.
func NewCartStore(c *Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = CartTTL
	}
	return &CartStore{client: c.client, ttl: ttl}
}

func cartKey(id uuid.UUID) string {
	return "cart:" + id.String()
}

// Load returns the cart or nil when it does not exist.
func (s *CartStore) Load(ctx context.Context, id uuid.UUID) (*model.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var cart model.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

// Save stores the cart and restarts its TTL.
func (s *CartStore) Save(ctx context.Context, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Delete removes the cart.
func (s *CartStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(id)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
