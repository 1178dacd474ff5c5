package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExhibitionStatus represents the lifecycle state of an exhibition.
type ExhibitionStatus string

const (
	ExhibitionUpcoming  ExhibitionStatus = "UPCOMING"
	ExhibitionCurrent   ExhibitionStatus = "CURRENT"
	ExhibitionPast      ExhibitionStatus = "PAST"
	ExhibitionCancelled ExhibitionStatus = "CANCELLED"
)

// Exhibition represents a show held at the gallery.
type Exhibition struct {
	ID                   uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	Title                string              `json:"title" gorm:"size:255;not null"`
	Slug                 string              `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description          string              `json:"description" gorm:"type:text"`
	Image                string              `json:"image" gorm:"size:512"`
	StartDate            time.Time           `json:"startDate" gorm:"not null;index"`
	EndDate              time.Time           `json:"endDate" gorm:"not null;index"`
	Location             string              `json:"location" gorm:"size:255"`
	Curator              string              `json:"curator,omitempty" gorm:"size:255"`
	Status               ExhibitionStatus    `json:"status" gorm:"type:varchar(20);not null;index"`
	Featured             bool                `json:"featured" gorm:"not null;index"`
	RegistrationRequired bool                `json:"registrationRequired" gorm:"not null"`
	RegistrationFee      decimal.NullDecimal `json:"registrationFee" gorm:"type:decimal(12,2)"`
	MaxAttendees         *int                `json:"maxAttendees,omitempty"`
	CreatedAt            time.Time           `json:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt"`
	DeletedAt            gorm.DeletedAt      `json:"-" gorm:"index"`

	// Counts computed by the list query.
	ArtworkCount      int64 `json:"artworkCount" gorm:"->;-:migration"`
	RegistrationCount int64 `json:"registrationCount" gorm:"->;-:migration"`

	// Relations
	Artists       []Artist                 `json:"artists,omitempty" gorm:"many2many:exhibition_artists"`
	Artworks      []Artwork                `json:"-" gorm:"many2many:exhibition_artworks"`
	Registrations []ExhibitionRegistration `json:"-" gorm:"foreignKey:ExhibitionID"`
}

// BeforeCreate sets UUID and enforces that the exhibition ends after it starts.
func (e *Exhibition) BeforeCreate(tx *gorm.DB) error {
	if !e.EndDate.After(e.StartDate) {
		return errors.New("exhibition end date must be after start date")
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ExhibitionRegistration is a visitor's sign-up for an exhibition.
type ExhibitionRegistration struct {
	ID            uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	ExhibitionID  uuid.UUID     `json:"exhibitionId" gorm:"type:char(36);not null;index"`
	Name          string        `json:"name" gorm:"size:255;not null"`
	Email         string        `json:"email" gorm:"size:255;not null"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (r *ExhibitionRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
