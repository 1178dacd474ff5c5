package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gallery/internal/errors"
	"gallery/internal/events"
	"gallery/internal/testutil"
)

func TestContactService_Submit(t *testing.T) {
	messages := newFakeMessages()
	bus := testutil.NewMockBus()
	svc := NewContactService(messages, bus, testutil.Logger())

	msg, err := svc.Submit(context.Background(), ContactInput{
		Name:           "  Neema Achieng ",
		Email:          "Neema@Example.com",
		Subject:        "Commission enquiry",
		Message:        "I would love to commission a coastal piece for our lobby.",
		ArtworkInquiry: "harbour-dusk",
	})

	require.NoError(t, err)
	assert.Equal(t, "Neema Achieng", msg.Name)
	assert.Equal(t, "neema@example.com", msg.Email)
	assert.Len(t, messages.Rows(), 1)

	evts := bus.Events()
	require.Len(t, evts, 1)
	assert.Equal(t, events.TopicContactSubmitted, evts[0].Topic)
}

func TestContactService_SubmitStoreError(t *testing.T) {
	messages := newFakeMessages()
	messages.CreateErr = errors.New("disk full")
	bus := testutil.NewMockBus()
	svc := NewContactService(messages, bus, testutil.Logger())

	_, err := svc.Submit(context.Background(), ContactInput{Name: "Neema", Email: "n@example.com", Subject: "Hello there", Message: "A message that is long enough."})

	var berr *apperrors.BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "Failed to send message", apperrors.MapErrorToHTTP(err).Message)
	assert.Empty(t, bus.Events())
}
