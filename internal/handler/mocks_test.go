package handler_test

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"gallery/internal/listquery"
	"gallery/internal/model"
	"gallery/internal/router"
	"gallery/internal/service"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListArtworks(ctx context.Context, raw url.Values) (listquery.Result[model.Artwork], error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(listquery.Result[model.Artwork]), args.Error(1)
}

func (m *MockCatalogService) GetArtwork(ctx context.Context, slug string) (*model.Artwork, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artwork), args.Error(1)
}

func (m *MockCatalogService) ListArtists(ctx context.Context, raw url.Values) (listquery.Result[model.Artist], error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(listquery.Result[model.Artist]), args.Error(1)
}

func (m *MockCatalogService) GetArtist(ctx context.Context, slug string) (*model.Artist, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockCatalogService) ListArtistArtworks(ctx context.Context, slug string, raw url.Values) (listquery.Result[model.Artwork], error) {
	args := m.Called(ctx, slug, raw)
	return args.Get(0).(listquery.Result[model.Artwork]), args.Error(1)
}

func (m *MockCatalogService) ListExhibitions(ctx context.Context, raw url.Values) (listquery.Result[model.Exhibition], error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(listquery.Result[model.Exhibition]), args.Error(1)
}

func (m *MockCatalogService) GetExhibition(ctx context.Context, slug string) (*model.Exhibition, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exhibition), args.Error(1)
}

// MockContactService is a mock implementation of ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

// MockNewsletterService is a mock implementation of NewsletterService.
type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, in service.SubscribeInput) (*model.NewsletterSubscription, bool, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.NewsletterSubscription), args.Bool(1), args.Error(2)
}

func (m *MockNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, id uuid.UUID, shipping model.ShippingMethod, promo string) (*service.CartView, error) {
	args := m.Called(ctx, id, shipping, promo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, id uuid.UUID, in service.CartItemInput) (*service.CartView, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, id, artworkID uuid.UUID) (*service.CartView, error) {
	args := m.Called(ctx, id, artworkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, in service.CheckoutInput) (*service.CheckoutResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutResult), args.Error(1)
}

// newContext builds an echo context for method and target with an optional JSON body.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = router.NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

var (
	_ service.CatalogService    = (*MockCatalogService)(nil)
	_ service.ContactService    = (*MockContactService)(nil)
	_ service.NewsletterService = (*MockNewsletterService)(nil)
	_ service.CartService       = (*MockCartService)(nil)
	_ service.CheckoutService   = (*MockCheckoutService)(nil)
)
