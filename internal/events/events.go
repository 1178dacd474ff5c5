// Package events publishes domain notifications (new orders, contact messages,
// newsletter sign-ups) to the message broker.
package events

import (
	"context"
	"time"
)

const (
	TopicContactSubmitted     = "contact.submitted"
	TopicNewsletterSubscribed = "newsletter.subscribed"
	TopicOrderCreated         = "order.created"
)

// Event is one notification. Payload is marshalled to JSON.
type Event struct {
	Topic      string      `json:"topic"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// New builds an event stamped with the current time.
func New(topic string, payload interface{}) Event {
	return Event{Topic: topic, OccurredAt: time.Now().UTC(), Payload: payload}
}

// Publisher delivers an event synchronously.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Emitter hands an event off without waiting for delivery.
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// NoopPublisher discards every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }
