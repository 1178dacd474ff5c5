package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
	closed bool
}

func (p *recordingPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDispatcher(pub, zap.NewNop(), 10)

	for _, topic := range []string{TopicOrderCreated, TopicContactSubmitted, TopicNewsletterSubscribed} {
		d.Emit(context.Background(), New(topic, map[string]string{"k": "v"}))
	}
	require.NoError(t, d.Close())

	require.Len(t, pub.events, 3)
	assert.Equal(t, TopicOrderCreated, pub.events[0].Topic)
	assert.Equal(t, TopicContactSubmitted, pub.events[1].Topic)
	assert.Equal(t, TopicNewsletterSubscribed, pub.events[2].Topic)
	assert.True(t, pub.closed)
}

func TestDispatcher_PublishErrorsAreSwallowed(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	d := NewDispatcher(pub, zap.NewNop(), 1)

	d.Emit(context.Background(), New(TopicOrderCreated, nil))
	require.NoError(t, d.Close())
	assert.Len(t, pub.events, 1)
}

func TestDispatcher_EmitAfterCloseIsDropped(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewDispatcher(pub, zap.NewNop(), 1)
	require.NoError(t, d.Close())

	d.Emit(context.Background(), New(TopicOrderCreated, nil))
	assert.Empty(t, pub.events)
	assert.NoError(t, d.Close())
}
