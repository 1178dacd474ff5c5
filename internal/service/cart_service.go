package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "gallery/internal/errors"
	"gallery/internal/model"
	"gallery/internal/repository"
)

// CartRepository persists carts.
type CartRepository interface {
	Load(ctx context.Context, id uuid.UUID) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartView is a cart with live prices.
type CartView struct {
	ID        uuid.UUID `json:"id"`
	Quote     Quote     `json:"quote"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartItemInput is an artwork to put in the cart.
type CartItemInput struct {
	ArtworkID       string                `json:"artworkId" validate:"required,uuid"`
	Quantity        int                   `json:"quantity" validate:"required,min=1,max=10"`
	ReservationType model.ReservationType `json:"reservationType" validate:"omitempty,oneof=DEPOSIT FULL_PAYMENT"`
}

// CartService manages shopping carts.
type CartService interface {
	Get(ctx context.Context, id uuid.UUID, shipping model.ShippingMethod, promo string) (*CartView, error)
	AddItem(ctx context.Context, id uuid.UUID, in CartItemInput) (*CartView, error)
	RemoveItem(ctx context.Context, id, artworkID uuid.UUID) (*CartView, error)
	Clear(ctx context.Context, id uuid.UUID) error
}

type cartService struct {
	carts    CartRepository
	artworks repository.ArtworkRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewCartService creates a new cart service. A nil now defaults to time.Now.
func NewCartService(carts CartRepository, artworks repository.ArtworkRepository, logger *zap.Logger, now func() time.Time) CartService {
	if now == nil {
		now = time.Now
	}
	return &cartService{carts: carts, artworks: artworks, logger: logger, now: now}
}

func (s *cartService) load(ctx context.Context, id uuid.UUID) (*model.Cart, error) {
	cart, err := s.carts.Load(ctx, id)
	if err != nil {
		s.logger.Error("load cart failed", zap.String("cart_id", id.String()), zap.Error(err))
		return nil, apperrors.Backend("fetch cart", err)
	}
	if cart == nil {
		cart = &model.Cart{ID: id, Items: []model.CartItem{}}
	}
	return cart, nil
}

func (s *cartService) save(ctx context.Context, cart *model.Cart) error {
	cart.UpdatedAt = s.now().UTC()
	if err := s.carts.Save(ctx, cart); err != nil {
		s.logger.Error("save cart failed", zap.String("cart_id", cart.ID.String()), zap.Error(err))
		return apperrors.Backend("update cart", err)
	}
	return nil
}

// Get returns the cart priced for shipping and promo. A missing cart is empty.
func (s *cartService) Get(ctx context.Context, id uuid.UUID, shipping model.ShippingMethod, promo string) (*CartView, error) {
	cart, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart, shipping, promo)
}

// AddItem puts an available artwork in the cart, replacing an existing line for it.
func (s *cartService) AddItem(ctx context.Context, id uuid.UUID, in CartItemInput) (*CartView, error) {
	artworkID, err := uuid.Parse(in.ArtworkID)
	if err != nil {
		verr := &apperrors.ValidationError{}
		verr.Add("artworkId", "must be a valid id")
		return nil, verr
	}
	artwork, err := s.artworks.FindByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("artwork")
		}
		return nil, apperrors.Backend("fetch artwork", err)
	}
	if !artwork.Available {
		return nil, apperrors.ErrArtworkUnavailable
	}

	cart, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	item := model.CartItem{ArtworkID: artworkID, Quantity: in.Quantity, ReservationType: in.ReservationType}
	if item.ReservationType == "" {
		item.ReservationType = model.ReservationFullPayment
	}
	replaced := false
	for i := range cart.Items {
		if cart.Items[i].ArtworkID == artworkID {
			cart.Items[i] = item
			replaced = true
		}
	}
	if !replaced {
		cart.Items = append(cart.Items, item)
	}
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart, model.ShippingStandard, "")
}

// RemoveItem drops an artwork from the cart.
func (s *cartService) RemoveItem(ctx context.Context, id, artworkID uuid.UUID) (*CartView, error) {
	cart, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ArtworkID != artworkID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart.Items) {
		return nil, apperrors.NotFound("cart item")
	}
	cart.Items = kept
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return s.view(ctx, cart, model.ShippingStandard, "")
}

// Clear deletes the cart.
func (s *cartService) Clear(ctx context.Context, id uuid.UUID) error {
	if err := s.carts.Delete(ctx, id); err != nil {
		s.logger.Error("clear cart failed", zap.String("cart_id", id.String()), zap.Error(err))
		return apperrors.Backend("clear cart", err)
	}
	return nil
}

// view prices the cart against current artwork data. Lines whose artwork has
// been removed are left out.
func (s *cartService) view(ctx context.Context, cart *model.Cart, shipping model.ShippingMethod, promo string) (*CartView, error) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ArtworkID)
	}
	artworks, err := s.artworks.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("load cart artworks failed", zap.Error(err))
		return nil, apperrors.Backend("fetch cart", err)
	}
	byID := make(map[uuid.UUID]model.Artwork, len(artworks))
	for _, a := range artworks {
		byID[a.ID] = a
	}

	lines := make([]PriceLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		artwork, ok := byID[item.ArtworkID]
		if !ok {
			continue
		}
		lines = append(lines, PriceLine{Artwork: artwork, Quantity: item.Quantity, ReservationType: item.ReservationType})
	}
	if shipping == "" {
		shipping = model.ShippingStandard
	}
	quote, err := Price(lines, shipping, promo, s.now())
	if err != nil {
		return nil, err
	}
	return &CartView{ID: cart.ID, Quote: quote, UpdatedAt: cart.UpdatedAt}, nil
}
