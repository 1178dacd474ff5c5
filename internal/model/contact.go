package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null;index"`
	Email          string    `json:"email" gorm:"size:255;not null;index"`
	Phone          string    `json:"phone,omitempty" gorm:"size:30"`
	Subject        string    `json:"subject" gorm:"size:255;not null"`
	Message        string    `json:"message" gorm:"type:text;not null"`
	ArtworkInquiry string    `json:"artworkInquiry,omitempty" gorm:"size:255"`
	CreatedAt      time.Time `json:"createdAt" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
