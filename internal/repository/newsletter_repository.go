package repository

import (
	"context"

	"gorm.io/gorm"

	"gallery/internal/model"
)

// NewsletterRepository defines newsletter subscription persistence operations.
type NewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	Create(ctx context.Context, sub *model.NewsletterSubscription) error
	Update(ctx context.Context, sub *model.NewsletterSubscription) error
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository.
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

// FindByEmail finds a subscription by email address.
func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	var sub model.NewsletterSubscription
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create creates a new subscription.
func (r *newsletterRepository) Create(ctx context.Context, sub *model.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// Update saves every field of an existing subscription.
func (r *newsletterRepository) Update(ctx context.Context, sub *model.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}
