package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gallery/internal/cache"
	apperrors "gallery/internal/errors"
	"gallery/internal/listquery"
	"gallery/internal/model"
	"gallery/internal/repository"
)

// Dashboard is the admin overview.
type Dashboard struct {
	repository.Counts
	Revenue decimal.Decimal `json:"revenue"`
}

// ArtworkPatch is a partial artwork update. Nil fields are left unchanged.
type ArtworkPatch struct {
	Featured  *bool            `json:"featured"`
	Available *bool            `json:"available"`
	Price     *decimal.Decimal `json:"price"`
}

// AdminService backs the staff-only endpoints.
type AdminService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	ListOrders(ctx context.Context, raw url.Values) (listquery.Result[model.Order], error)
	ListMessages(ctx context.Context, raw url.Values) (listquery.Result[model.ContactMessage], error)
	UpdateArtwork(ctx context.Context, id uuid.UUID, patch ArtworkPatch) (*model.Artwork, error)
}

type adminService struct {
	stats    repository.StatsRepository
	orders   repository.OrderRepository
	messages repository.ContactMessageRepository
	artworks repository.ArtworkRepository
	cache    cache.Cache
	logger   *zap.Logger
	now      func() time.Time
}

// NewAdminService creates a new admin service. A nil now defaults to time.Now.
func NewAdminService(
	stats repository.StatsRepository,
	orders repository.OrderRepository,
	messages repository.ContactMessageRepository,
	artworks repository.ArtworkRepository,
	cache cache.Cache,
	logger *zap.Logger,
	now func() time.Time,
) AdminService {
	if now == nil {
		now = time.Now
	}
	return &adminService{
		stats:    stats,
		orders:   orders,
		messages: messages,
		artworks: artworks,
		cache:    cache,
		logger:   logger,
		now:      now,
	}
}

// Dashboard returns catalog, order and audience counts plus booked revenue.
func (s *adminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	counts, err := s.stats.Counts(ctx)
	if err != nil {
		s.logger.Error("dashboard counts failed", zap.Error(err))
		return nil, apperrors.Backend("fetch dashboard", err)
	}
	revenue, err := s.orders.Revenue(ctx)
	if err != nil {
		s.logger.Error("dashboard revenue failed", zap.Error(err))
		return nil, apperrors.Backend("fetch dashboard", err)
	}
	return &Dashboard{Counts: counts, Revenue: revenue}, nil
}

func (s *adminService) ListOrders(ctx context.Context, raw url.Values) (listquery.Result[model.Order], error) {
	return runList[model.Order](ctx, s.logger, s.orders, OrderSchema(), raw, s.now())
}

func (s *adminService) ListMessages(ctx context.Context, raw url.Values) (listquery.Result[model.ContactMessage], error) {
	return runList[model.ContactMessage](ctx, s.logger, s.messages, MessageSchema(), raw, s.now())
}

// UpdateArtwork applies patch and drops the cached detail of the artwork's artist,
// whose available count may have changed.
func (s *adminService) UpdateArtwork(ctx context.Context, id uuid.UUID, patch ArtworkPatch) (*model.Artwork, error) {
	fields := make(map[string]interface{}, 3)
	if patch.Featured != nil {
		fields["featured"] = *patch.Featured
	}
	if patch.Available != nil {
		fields["available"] = *patch.Available
	}
	if patch.Price != nil {
		if !patch.Price.IsPositive() {
			return nil, apperrors.ErrInvalidPrice
		}
		fields["price"] = *patch.Price
	}
	if len(fields) == 0 {
		verr := &apperrors.ValidationError{}
		verr.Add("body", "must set at least one of featured, available, price")
		return nil, verr
	}

	if err := s.artworks.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("artwork")
		}
		s.logger.Error("update artwork failed", zap.String("artwork_id", id.String()), zap.Error(err))
		return nil, apperrors.Backend("update artwork", err)
	}

	artwork, err := s.artworks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("artwork")
		}
		return nil, apperrors.Backend("fetch artwork", err)
	}
	if artwork.Artist != nil && s.cache != nil {
		if err := s.cache.Delete(ctx, artistCacheKey(artwork.Artist.Slug)); err != nil {
			s.logger.Warn("invalidate artist cache failed", zap.String("slug", artwork.Artist.Slug), zap.Error(err))
		}
	}
	s.logger.Info("artwork updated", zap.String("artwork_id", id.String()), zap.Int("fields", len(fields)))
	return artwork, nil
}
