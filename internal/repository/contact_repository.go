package repository

import (
	"context"

	"gorm.io/gorm"

	"gallery/internal/listquery"
	"gallery/internal/model"
)

// ContactMessageRepository defines contact message persistence operations.
type ContactMessageRepository interface {
	listquery.Store[model.ContactMessage]
	Create(ctx context.Context, msg *model.ContactMessage) error
}

type contactMessageRepository struct {
	*listStore[model.ContactMessage]
	db *gorm.DB
}

// NewContactMessageRepository creates a new contact message repository.
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{
		listStore: newListStore[model.ContactMessage](db, ContactMessageMapping),
		db:        db,
	}
}

// Create stores a contact form submission.
func (r *contactMessageRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
