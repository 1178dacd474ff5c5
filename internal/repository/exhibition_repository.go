package repository

import (
	"context"

	"gorm.io/gorm"

	"gallery/internal/listquery"
	"gallery/internal/model"
)

// ExhibitionRepository defines exhibition persistence operations.
type ExhibitionRepository interface {
	listquery.Store[model.Exhibition]
	FindBySlug(ctx context.Context, slug string) (*model.Exhibition, error)
	Create(ctx context.Context, exhibition *model.Exhibition) error
}

type exhibitionRepository struct {
	*listStore[model.Exhibition]
	db *gorm.DB
}

// NewExhibitionRepository creates a new exhibition repository.
func NewExhibitionRepository(db *gorm.DB) ExhibitionRepository {
	return &exhibitionRepository{
		listStore: newListStore[model.Exhibition](db, ExhibitionMapping, "Artists"),
		db:        db,
	}
}

// Create creates a new exhibition with its artist and artwork links.
func (r *exhibitionRepository) Create(ctx context.Context, exhibition *model.Exhibition) error {
	return r.db.WithContext(ctx).Create(exhibition).Error
}

// FindBySlug finds an exhibition by slug with its artists and counts.
func (r *exhibitionRepository) FindBySlug(ctx context.Context, slug string) (*model.Exhibition, error) {
	var exhibition model.Exhibition
	if err := r.db.WithContext(ctx).Model(&model.Exhibition{}).
		Select(ExhibitionMapping.Selects()).
		Preload("Artists").
		Where("exhibitions.slug = ?", slug).
		First(&exhibition).Error; err != nil {
		return nil, err
	}
	return &exhibition, nil
}
