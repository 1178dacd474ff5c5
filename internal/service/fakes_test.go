package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gallery/internal/model"
	"gallery/internal/payment"
	"gallery/internal/repository"
	"gallery/internal/testutil"
)

// fakeArtworks is an in-memory ArtworkRepository.
type fakeArtworks struct {
	*testutil.MemStore[model.Artwork]
}

func newFakeArtworks(rows ...model.Artwork) *fakeArtworks {
	return &fakeArtworks{MemStore: testutil.ArtworkStore(rows...)}
}

func (f *fakeArtworks) find(match func(model.Artwork) bool) (*model.Artwork, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	for _, w := range f.Rows() {
		if match(w) {
			return &w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeArtworks) FindBySlug(_ context.Context, slug string) (*model.Artwork, error) {
	return f.find(func(w model.Artwork) bool { return w.Slug == slug })
}

func (f *fakeArtworks) FindByID(_ context.Context, id uuid.UUID) (*model.Artwork, error) {
	return f.find(func(w model.Artwork) bool { return w.ID == id })
}

func (f *fakeArtworks) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Artwork, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []model.Artwork{}
	for _, w := range f.Rows() {
		if want[w.ID] {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeArtworks) IncrementViews(_ context.Context, slug string) (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	n := f.Update(func(w model.Artwork) (model.Artwork, bool) {
		if w.Slug != slug {
			return w, false
		}
		w.Views++
		return w, true
	})
	return n > 0, nil
}

func (f *fakeArtworks) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if f.Err != nil {
		return f.Err
	}
	n := f.Update(func(w model.Artwork) (model.Artwork, bool) {
		if w.ID != id {
			return w, false
		}
		if v, ok := fields["featured"]; ok {
			w.Featured = v.(bool)
		}
		if v, ok := fields["available"]; ok {
			w.Available = v.(bool)
		}
		if v, ok := fields["price"]; ok {
			w.Price = v.(decimal.Decimal)
		}
		return w, true
	})
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (f *fakeArtworks) Create(_ context.Context, artwork *model.Artwork) error {
	f.Add(*artwork)
	return nil
}

// fakeArtists is an in-memory ArtistRepository that counts slug lookups.
type fakeArtists struct {
	*testutil.MemStore[model.Artist]
	mu      sync.Mutex
	lookups int
}

func newFakeArtists(catalog []model.Artwork, rows ...model.Artist) *fakeArtists {
	return &fakeArtists{MemStore: testutil.ArtistStore(catalog, rows...)}
}

func (f *fakeArtists) FindBySlug(_ context.Context, slug string) (*model.Artist, error) {
	f.mu.Lock()
	f.lookups++
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for _, a := range f.Rows() {
		if a.Slug == slug {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeArtists) Create(_ context.Context, artist *model.Artist) error {
	f.Add(*artist)
	return nil
}

func (f *fakeArtists) Lookups() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups
}

type fakeExhibitions struct {
	*testutil.MemStore[model.Exhibition]
}

func (f *fakeExhibitions) FindBySlug(_ context.Context, slug string) (*model.Exhibition, error) {
	for _, e := range f.Rows() {
		if e.Slug == slug {
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeExhibitions) Create(_ context.Context, e *model.Exhibition) error {
	f.Add(*e)
	return nil
}

type fakeOrders struct {
	*testutil.MemStore[model.Order]
	CreateErr error
}

func newFakeOrders(rows ...model.Order) *fakeOrders {
	return &fakeOrders{MemStore: testutil.NewMemStore[model.Order](testutil.OrderField, nil, rows...)}
}

func (f *fakeOrders) Create(_ context.Context, order *model.Order) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.Add(*order)
	return nil
}

func (f *fakeOrders) Revenue(context.Context) (decimal.Decimal, error) {
	if f.Err != nil {
		return decimal.Zero, f.Err
	}
	sum := decimal.Zero
	for _, o := range f.Rows() {
		if o.Status != model.OrderCancelled && o.Status != model.OrderRefunded {
			sum = sum.Add(o.TotalAmount)
		}
	}
	return sum, nil
}

type fakeMessages struct {
	*testutil.MemStore[model.ContactMessage]
	CreateErr error
}

func newFakeMessages(rows ...model.ContactMessage) *fakeMessages {
	return &fakeMessages{MemStore: testutil.NewMemStore[model.ContactMessage](testutil.MessageField, nil, rows...)}
}

func (f *fakeMessages) Create(_ context.Context, msg *model.ContactMessage) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	f.Add(*msg)
	return nil
}

// MockNewsletterRepository is a mock implementation of NewsletterRepository.
type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterRepository) Create(ctx context.Context, sub *model.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockNewsletterRepository) Update(ctx context.Context, sub *model.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Counts(ctx context.Context) (repository.Counts, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.Counts), args.Error(1)
}

// MockGateway is a mock implementation of payment.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, req payment.Request) (*payment.Intent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}

var (
	_ repository.ArtworkRepository        = (*fakeArtworks)(nil)
	_ repository.ArtistRepository         = (*fakeArtists)(nil)
	_ repository.ExhibitionRepository     = (*fakeExhibitions)(nil)
	_ repository.OrderRepository          = (*fakeOrders)(nil)
	_ repository.ContactMessageRepository = (*fakeMessages)(nil)
	_ repository.NewsletterRepository     = (*MockNewsletterRepository)(nil)
	_ repository.StatsRepository          = (*MockStatsRepository)(nil)
	_ payment.Gateway                     = (*MockGateway)(nil)
)
