package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionStatus represents the state of a newsletter subscription.
type SubscriptionStatus string

const (
	SubscriptionActive       SubscriptionStatus = "ACTIVE"
	SubscriptionUnsubscribed SubscriptionStatus = "UNSUBSCRIBED"
)

// NewsletterPreferences selects which mailings a subscriber receives.
type NewsletterPreferences struct {
	Exhibitions      bool `json:"exhibitions" gorm:"not null"`
	NewArtworks      bool `json:"newArtworks" gorm:"not null"`
	ArtistSpotlights bool `json:"artistSpotlights" gorm:"not null"`
	Events           bool `json:"events" gorm:"not null"`
}

// DefaultNewsletterPreferences opts a subscriber into everything.
func DefaultNewsletterPreferences() NewsletterPreferences {
	return NewsletterPreferences{Exhibitions: true, NewArtworks: true, ArtistSpotlights: true, Events: true}
}

// NewsletterSubscription is one email address on the mailing list.
type NewsletterSubscription struct {
	ID             uuid.UUID             `json:"id" gorm:"type:char(36);primaryKey"`
	Email          string                `json:"email" gorm:"size:255;not null;uniqueIndex"`
	FirstName      string                `json:"firstName,omitempty" gorm:"size:100"`
	LastName       string                `json:"lastName,omitempty" gorm:"size:100"`
	Status         SubscriptionStatus    `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Preferences    NewsletterPreferences `json:"preferences" gorm:"embedded;embeddedPrefix:pref_"`
	SubscribedAt   time.Time             `json:"subscribedAt"`
	UnsubscribedAt *time.Time            `json:"unsubscribedAt,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *NewsletterSubscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
