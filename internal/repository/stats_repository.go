package repository

import (
	"context"

	"gorm.io/gorm"

	"gallery/internal/model"
)

// Counts are the headline numbers of the admin dashboard.
type Counts struct {
	Artworks          int64 `json:"artworks"`
	AvailableArtworks int64 `json:"availableArtworks"`
	FeaturedAvailable int64 `json:"featuredAvailable"`
	Artists           int64 `json:"artists"`
	Exhibitions       int64 `json:"exhibitions"`
	Orders            int64 `json:"orders"`
	PendingOrders     int64 `json:"pendingOrders"`
	Messages          int64 `json:"messages"`
	Subscribers       int64 `json:"subscribers"`
}

// StatsRepository computes dashboard counts.
type StatsRepository interface {
	Counts(ctx context.Context) (Counts, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// Counts runs one COUNT per figure.
func (r *statsRepository) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	db := r.db.WithContext(ctx)
	queries := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&c.Artworks, db.Model(&model.Artwork{})},
		{&c.AvailableArtworks, db.Model(&model.Artwork{}).Where("available = ?", true)},
		{&c.FeaturedAvailable, db.Model(&model.Artwork{}).Where("available = ? AND featured = ?", true, true)},
		{&c.Artists, db.Model(&model.Artist{})},
		{&c.Exhibitions, db.Model(&model.Exhibition{})},
		{&c.Orders, db.Model(&model.Order{})},
		{&c.PendingOrders, db.Model(&model.Order{}).Where("status = ?", model.OrderPending)},
		{&c.Messages, db.Model(&model.ContactMessage{})},
		{&c.Subscribers, db.Model(&model.NewsletterSubscription{}).Where("status = ?", model.SubscriptionActive)},
	}
	for _, q := range queries {
		if err := q.query.Count(q.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}
