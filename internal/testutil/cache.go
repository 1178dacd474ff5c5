package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"gallery/internal/cache"
	"gallery/internal/model"
)

var _ cache.Cache = (*MemCache)(nil)

// MemCache is an in-memory cache.Cache that ignores TTLs.
type MemCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemCache returns an empty MemCache.
func NewMemCache() *MemCache {
	return &MemCache{data: make(map[string][]byte)}
}

func (c *MemCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *MemCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *MemCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Has reports whether key is cached.
func (c *MemCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

// MemCarts keeps carts in a map.
type MemCarts struct {
	mu    sync.Mutex
	carts map[uuid.UUID]model.Cart
}

// NewMemCarts returns an empty cart store.
func NewMemCarts() *MemCarts {
	return &MemCarts{carts: make(map[uuid.UUID]model.Cart)}
}

func (s *MemCarts) Load(_ context.Context, id uuid.UUID) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[id]
	if !ok {
		return nil, nil
	}
	cart.Items = append([]model.CartItem(nil), cart.Items...)
	return &cart, nil
}

func (s *MemCarts) Save(_ context.Context, cart *model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *cart
	stored.Items = append([]model.CartItem(nil), cart.Items...)
	s.carts[cart.ID] = stored
	return nil
}

func (s *MemCarts) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}
