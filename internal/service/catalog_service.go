package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gallery/internal/cache"
	apperrors "gallery/internal/errors"
	"gallery/internal/listquery"
	"gallery/internal/model"
	"gallery/internal/repository"
)

// DetailCacheTTL is how long artist and exhibition detail lookups stay cached.
const DetailCacheTTL = 5 * time.Minute

// CatalogService serves the public artwork, artist and exhibition catalog.
type CatalogService interface {
	ListArtworks(ctx context.Context, raw url.Values) (listquery.Result[model.Artwork], error)
	GetArtwork(ctx context.Context, slug string) (*model.Artwork, error)
	ListArtists(ctx context.Context, raw url.Values) (listquery.Result[model.Artist], error)
	GetArtist(ctx context.Context, slug string) (*model.Artist, error)
	ListArtistArtworks(ctx context.Context, slug string, raw url.Values) (listquery.Result[model.Artwork], error)
	ListExhibitions(ctx context.Context, raw url.Values) (listquery.Result[model.Exhibition], error)
	GetExhibition(ctx context.Context, slug string) (*model.Exhibition, error)
}

type catalogService struct {
	artworks    repository.ArtworkRepository
	artists     repository.ArtistRepository
	exhibitions repository.ExhibitionRepository
	cache       cache.Cache
	logger      *zap.Logger
	now         func() time.Time
}

// NewCatalogService creates a new catalog service. A nil now defaults to time.Now.
func NewCatalogService(
	artworks repository.ArtworkRepository,
	artists repository.ArtistRepository,
	exhibitions repository.ExhibitionRepository,
	cache cache.Cache,
	logger *zap.Logger,
	now func() time.Time,
) CatalogService {
	if now == nil {
		now = time.Now
	}
	return &catalogService{
		artworks:    artworks,
		artists:     artists,
		exhibitions: exhibitions,
		cache:       cache,
		logger:      logger,
		now:         now,
	}
}

func artistCacheKey(slug string) string     { return "artist:" + slug }
func exhibitionCacheKey(slug string) string { return "exhibition:" + slug }

// ListArtworks lists artworks.
func (s *catalogService) ListArtworks(ctx context.Context, raw url.Values) (listquery.Result[model.Artwork], error) {
	now := s.now()
	return runList[model.Artwork](ctx, s.logger, s.artworks, ArtworkSchema(now), raw, now)
}

// GetArtwork increments the view counter and returns the artwork with the new count.
func (s *catalogService) GetArtwork(ctx context.Context, slug string) (*model.Artwork, error) {
	found, err := s.artworks.IncrementViews(ctx, slug)
	if err != nil {
		s.logger.Error("increment artwork views failed", zap.String("slug", slug), zap.Error(err))
		return nil, apperrors.Backend("fetch artwork", err)
	}
	if !found {
		return nil, apperrors.NotFound("artwork")
	}

	artwork, err := s.artworks.FindBySlug(ctx, slug)
	if err != nil {
		return nil, s.lookupError("artwork", err)
	}
	return artwork, nil
}

// ListArtists lists artists with their available artwork counts.
func (s *catalogService) ListArtists(ctx context.Context, raw url.Values) (listquery.Result[model.Artist], error) {
	return runList[model.Artist](ctx, s.logger, s.artists, ArtistSchema(), raw, s.now())
}

// GetArtist returns an artist, reading through the cache.
func (s *catalogService) GetArtist(ctx context.Context, slug string) (*model.Artist, error) {
	var cached model.Artist
	if cache.GetJSON(ctx, s.cache, artistCacheKey(slug), &cached) {
		return &cached, nil
	}

	artist, err := s.artists.FindBySlug(ctx, slug)
	if err != nil {
		return nil, s.lookupError("artist", err)
	}
	cache.SetJSON(ctx, s.cache, artistCacheKey(slug), artist, DetailCacheTTL)
	return artist, nil
}

// ListArtistArtworks lists the artworks of one artist.
func (s *catalogService) ListArtistArtworks(ctx context.Context, slug string, raw url.Values) (listquery.Result[model.Artwork], error) {
	now := s.now()
	schema := ArtistArtworkSchema(now, uuid.Nil)
	// Reject bad parameters before looking the artist up.
	if _, err := listquery.Coerce(schema, raw); err != nil {
		return listquery.Result[model.Artwork]{}, err
	}

	artist, err := s.GetArtist(ctx, slug)
	if err != nil {
		return listquery.Result[model.Artwork]{}, err
	}
	return runList[model.Artwork](ctx, s.logger, s.artworks, ArtistArtworkSchema(now, artist.ID), raw, now)
}

// ListExhibitions lists exhibitions.
func (s *catalogService) ListExhibitions(ctx context.Context, raw url.Values) (listquery.Result[model.Exhibition], error) {
	return runList[model.Exhibition](ctx, s.logger, s.exhibitions, ExhibitionSchema(), raw, s.now())
}

// GetExhibition returns an exhibition with its artists, reading through the cache.
func (s *catalogService) GetExhibition(ctx context.Context, slug string) (*model.Exhibition, error) {
	var cached model.Exhibition
	if cache.GetJSON(ctx, s.cache, exhibitionCacheKey(slug), &cached) {
		return &cached, nil
	}

	exhibition, err := s.exhibitions.FindBySlug(ctx, slug)
	if err != nil {
		return nil, s.lookupError("exhibition", err)
	}
	cache.SetJSON(ctx, s.cache, exhibitionCacheKey(slug), exhibition, DetailCacheTTL)
	return exhibition, nil
}

func (s *catalogService) lookupError(resource string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(resource)
	}
	s.logger.Error("lookup failed", zap.String("resource", resource), zap.Error(err))
	return apperrors.Backend("fetch "+resource, err)
}
