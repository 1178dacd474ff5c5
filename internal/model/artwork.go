package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ArtworkCategory classifies an artwork.
type ArtworkCategory string

const (
	CategoryPainting    ArtworkCategory = "PAINTING"
	CategorySculpture   ArtworkCategory = "SCULPTURE"
	CategoryPhotography ArtworkCategory = "PHOTOGRAPHY"
	CategoryMixedMedia  ArtworkCategory = "MIXED_MEDIA"
	CategoryDigital     ArtworkCategory = "DIGITAL"
	CategoryPrint       ArtworkCategory = "PRINT"
	CategoryTextile     ArtworkCategory = "TEXTILE"
	CategoryCeramic     ArtworkCategory = "CERAMIC"
	CategoryJewelry     ArtworkCategory = "JEWELRY"
	CategoryOther       ArtworkCategory = "OTHER"
)

// ArtworkCategories lists every category in display order.
var ArtworkCategories = []ArtworkCategory{
	CategoryPainting, CategorySculpture, CategoryPhotography, CategoryMixedMedia, CategoryDigital,
	CategoryPrint, CategoryTextile, CategoryCeramic, CategoryJewelry, CategoryOther,
}

// Artwork represents a piece offered by the gallery.
type Artwork struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null;index"`
	Slug        string          `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description string          `json:"description" gorm:"type:text"`
	Medium      string          `json:"medium" gorm:"size:255"`
	Dimensions  string          `json:"dimensions" gorm:"size:100"`
	Year        int             `json:"year" gorm:"index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null;index"`
	Currency    string          `json:"currency" gorm:"size:3;not null;default:'USD'"`
	Image       string          `json:"image" gorm:"size:512"`
	Category    ArtworkCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	Style       string          `json:"style,omitempty" gorm:"size:100"`
	Available   bool            `json:"available" gorm:"not null;index"`
	Featured    bool            `json:"featured" gorm:"not null;index"`
	Views       int64           `json:"views" gorm:"not null;default:0"`
	ArtistID    uuid.UUID       `json:"artistId" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
}

// BeforeCreate sets UUID and rejects non-positive prices.
func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if !a.Price.IsPositive() {
		return errors.New("artwork price must be greater than 0")
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
