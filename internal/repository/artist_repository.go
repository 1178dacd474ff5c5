package repository

import (
	"context"

	"gorm.io/gorm"

	"gallery/internal/listquery"
	"gallery/internal/model"
)

// ArtistRepository defines artist persistence operations.
type ArtistRepository interface {
	listquery.Store[model.Artist]
	FindBySlug(ctx context.Context, slug string) (*model.Artist, error)
	Create(ctx context.Context, artist *model.Artist) error
}

type artistRepository struct {
	*listStore[model.Artist]
	db *gorm.DB
}

// NewArtistRepository creates a new artist repository.
func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{
		listStore: newListStore[model.Artist](db, ArtistMapping),
		db:        db,
	}
}

// Create creates a new artist.
func (r *artistRepository) Create(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

// FindBySlug finds an artist by slug, including the available artwork count.
func (r *artistRepository) FindBySlug(ctx context.Context, slug string) (*model.Artist, error) {
	var artist model.Artist
	if err := r.db.WithContext(ctx).Model(&model.Artist{}).
		Select(ArtistMapping.Selects()).
		Where("artists.slug = ?", slug).
		First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}
