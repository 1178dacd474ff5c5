package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Dispatcher publishes events from a background worker so request handlers never
// wait on the broker.
type Dispatcher struct {
	publisher Publisher
	logger    *zap.Logger
	queue     chan Event
	mu        sync.RWMutex
	closed    bool
	done      chan struct{}
}

// NewDispatcher starts the worker. Call Close to drain it.
func NewDispatcher(publisher Publisher, logger *zap.Logger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 100
	}
	d := &Dispatcher{
		publisher: publisher,
		logger:    logger,
		queue:     make(chan Event, buffer),
		done:      make(chan struct{}),
	}
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for event := range d.queue {
		d.publish(context.Background(), event)
	}
}

func (d *Dispatcher) publish(ctx context.Context, event Event) {
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Warn("event publish failed", zap.String("topic", event.Topic), zap.Error(err))
	}
}

// Emit queues event. When the queue is full the event is published inline.
func (d *Dispatcher) Emit(ctx context.Context, event Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("event dropped after shutdown", zap.String("topic", event.Topic))
		return
	}
	select {
	case d.queue <- event:
	default:
		d.publish(context.WithoutCancel(ctx), event)
	}
}

// Close stops accepting events, waits for the queue to drain and closes the publisher.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
	return d.publisher.Close()
}
