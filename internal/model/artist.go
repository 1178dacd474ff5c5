package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artist represents an artist represented by the gallery.
type Artist struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null;index"`
	Slug      string         `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Email     string         `json:"-" gorm:"size:255"`
	Bio       string         `json:"bio" gorm:"type:text"`
	Country   string         `json:"country" gorm:"size:100;index"`
	City      string         `json:"city,omitempty" gorm:"size:100"`
	Website   string         `json:"website,omitempty" gorm:"size:255"`
	Instagram string         `json:"instagram,omitempty" gorm:"size:100"`
	Image     string         `json:"image" gorm:"size:512"`
	Featured  bool           `json:"featured" gorm:"not null;index"`
	Verified  bool           `json:"verified" gorm:"not null;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// ArtworkCount is the number of the artist's available artworks, computed by the query.
	ArtworkCount int64 `json:"artworkCount" gorm:"->;-:migration"`

	// Relations
	Artworks []Artwork `json:"artworks,omitempty" gorm:"foreignKey:ArtistID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
