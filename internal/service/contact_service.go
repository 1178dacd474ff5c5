package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "gallery/internal/errors"
	"gallery/internal/events"
	"gallery/internal/model"
	"gallery/internal/repository"
)

// ContactInput is a contact form submission.
type ContactInput struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"max=30"`
	Subject        string `json:"subject" validate:"required,min=5,max=200"`
	Message        string `json:"message" validate:"required,min=20,max=2000"`
	ArtworkInquiry string `json:"artworkInquiry" validate:"max=255"`
}

// ContactService stores contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error)
}

type contactService struct {
	messages repository.ContactMessageRepository
	events   events.Emitter
	logger   *zap.Logger
}

// NewContactService creates a new contact service.
func NewContactService(messages repository.ContactMessageRepository, emitter events.Emitter, logger *zap.Logger) ContactService {
	return &contactService{messages: messages, events: emitter, logger: logger}
}

// Submit stores the message and notifies the gallery staff.
func (s *contactService) Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:          strings.TrimSpace(in.Phone),
		Subject:        strings.TrimSpace(in.Subject),
		Message:        strings.TrimSpace(in.Message),
		ArtworkInquiry: strings.TrimSpace(in.ArtworkInquiry),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		s.logger.Error("store contact message failed", zap.Error(err))
		return nil, apperrors.Backend("send message", err)
	}

	s.events.Emit(ctx, events.New(events.TopicContactSubmitted, map[string]interface{}{
		"id":             msg.ID,
		"name":           msg.Name,
		"email":          msg.Email,
		"subject":        msg.Subject,
		"artworkInquiry": msg.ArtworkInquiry,
	}))
	return msg, nil
}
