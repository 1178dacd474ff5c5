package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "gallery/internal/errors"
	"gallery/internal/events"
	"gallery/internal/model"
	"gallery/internal/repository"
)

// PreferencesInput selects mailings. Omitted fields default to true.
type PreferencesInput struct {
	Exhibitions      *bool `json:"exhibitions"`
	NewArtworks      *bool `json:"newArtworks"`
	ArtistSpotlights *bool `json:"artistSpotlights"`
	Events           *bool `json:"events"`
}

func (p *PreferencesInput) toModel() model.NewsletterPreferences {
	prefs := model.DefaultNewsletterPreferences()
	if p == nil {
		return prefs
	}
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&prefs.Exhibitions, p.Exhibitions)
	set(&prefs.NewArtworks, p.NewArtworks)
	set(&prefs.ArtistSpotlights, p.ArtistSpotlights)
	set(&prefs.Events, p.Events)
	return prefs
}

// SubscribeInput is a newsletter sign-up.
type SubscribeInput struct {
	Email       string            `json:"email" validate:"required,email"`
	FirstName   string            `json:"firstName" validate:"omitempty,min=2,max=100"`
	LastName    string            `json:"lastName" validate:"omitempty,min=2,max=100"`
	Preferences *PreferencesInput `json:"preferences"`
}

// NewsletterService manages newsletter subscriptions.
type NewsletterService interface {
	// Subscribe creates or reactivates a subscription. reactivated is true when a
	// previously unsubscribed address signed up again.
	Subscribe(ctx context.Context, in SubscribeInput) (sub *model.NewsletterSubscription, reactivated bool, err error)
	Unsubscribe(ctx context.Context, email string) error
}

type newsletterService struct {
	subs   repository.NewsletterRepository
	events events.Emitter
	logger *zap.Logger
	now    func() time.Time
}

// NewNewsletterService creates a new newsletter service. A nil now defaults to time.Now.
func NewNewsletterService(subs repository.NewsletterRepository, emitter events.Emitter, logger *zap.Logger, now func() time.Time) NewsletterService {
	if now == nil {
		now = time.Now
	}
	return &newsletterService{subs: subs, events: emitter, logger: logger, now: now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe signs an address up.
func (s *newsletterService) Subscribe(ctx context.Context, in SubscribeInput) (*model.NewsletterSubscription, bool, error) {
	email := normalizeEmail(in.Email)
	now := s.now().UTC()

	existing, err := s.subs.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Status == model.SubscriptionActive {
			return nil, false, apperrors.ErrAlreadySubscribed
		}
		existing.Status = model.SubscriptionActive
		existing.SubscribedAt = now
		existing.UnsubscribedAt = nil
		existing.Preferences = in.Preferences.toModel()
		if in.FirstName != "" {
			existing.FirstName = in.FirstName
		}
		if in.LastName != "" {
			existing.LastName = in.LastName
		}
		if err := s.subs.Update(ctx, existing); err != nil {
			s.logger.Error("reactivate subscription failed", zap.Error(err))
			return nil, false, apperrors.Backend("subscribe", err)
		}
		s.emit(ctx, existing, true)
		return existing, true, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := &model.NewsletterSubscription{
			Email:        email,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Status:       model.SubscriptionActive,
			Preferences:  in.Preferences.toModel(),
			SubscribedAt: now,
		}
		if err := s.subs.Create(ctx, sub); err != nil {
			s.logger.Error("create subscription failed", zap.Error(err))
			return nil, false, apperrors.Backend("subscribe", err)
		}
		s.emit(ctx, sub, false)
		return sub, false, nil

	default:
		s.logger.Error("find subscription failed", zap.Error(err))
		return nil, false, apperrors.Backend("subscribe", err)
	}
}

// Unsubscribe deactivates the subscription of email.
func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	sub, err := s.subs.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("subscription")
		}
		return apperrors.Backend("unsubscribe", err)
	}
	if sub.Status == model.SubscriptionUnsubscribed {
		return nil
	}
	now := s.now().UTC()
	sub.Status = model.SubscriptionUnsubscribed
	sub.UnsubscribedAt = &now
	if err := s.subs.Update(ctx, sub); err != nil {
		s.logger.Error("unsubscribe failed", zap.Error(err))
		return apperrors.Backend("unsubscribe", err)
	}
	return nil
}

func (s *newsletterService) emit(ctx context.Context, sub *model.NewsletterSubscription, reactivated bool) {
	s.events.Emit(ctx, events.New(events.TopicNewsletterSubscribed, map[string]interface{}{
		"email":       sub.Email,
		"firstName":   sub.FirstName,
		"preferences": sub.Preferences,
		"reactivated": reactivated,
	}))
}
