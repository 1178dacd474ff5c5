package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gallery/internal/listquery"
	"gallery/internal/model"
)

// ArtworkRepository defines artwork persistence operations.
type ArtworkRepository interface {
	listquery.Store[model.Artwork]
	FindBySlug(ctx context.Context, slug string) (*model.Artwork, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Artwork, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Artwork, error)
	IncrementViews(ctx context.Context, slug string) (bool, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Create(ctx context.Context, artwork *model.Artwork) error
}

type artworkRepository struct {
	*listStore[model.Artwork]
	db *gorm.DB
}

// NewArtworkRepository creates a new artwork repository.
func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepository{
		listStore: newListStore[model.Artwork](db, ArtworkMapping, "Artist"),
		db:        db,
	}
}

// Create creates a new artwork.
func (r *artworkRepository) Create(ctx context.Context, artwork *model.Artwork) error {
	return r.db.WithContext(ctx).Create(artwork).Error
}

// FindBySlug finds an artwork by slug with its artist.
func (r *artworkRepository) FindBySlug(ctx context.Context, slug string) (*model.Artwork, error) {
	var artwork model.Artwork
	if err := r.db.WithContext(ctx).Preload("Artist").Where("slug = ?", slug).First(&artwork).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

// FindByID finds an artwork by ID.
func (r *artworkRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Artwork, error) {
	var artwork model.Artwork
	if err := r.db.WithContext(ctx).Preload("Artist").Where("id = ?", id).First(&artwork).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

// FindByIDs loads the artworks with the given IDs. Missing IDs are simply absent.
func (r *artworkRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Artwork, error) {
	var artworks []model.Artwork
	if len(ids) == 0 {
		return artworks, nil
	}
	if err := r.db.WithContext(ctx).Preload("Artist").Where("id IN ?", ids).Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

// IncrementViews bumps the view counter in a single statement. It reports false when
// no artwork has the slug.
func (r *artworkRepository) IncrementViews(ctx context.Context, slug string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Artwork{}).
		Where("slug = ?", slug).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateFields updates the given columns of an artwork.
func (r *artworkRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Artwork{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
