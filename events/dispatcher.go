package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/miocluster/geocluster/interfaces"
)

// Handler reacts to one published event.
type Handler func(ctx context.Context, event interfaces.Event) error

// Dispatcher routes a published event to the handler subscribed to its
// type. The cluster index only ever has one handler per event type (see
// events/registry.go's ReloadHandler), so unlike the teacher's
// trail/engagement dispatcher there is no handler slice, goroutine
// fan-out, or error aggregation across multiple subscribers — Subscribe
// replaces any prior handler for a type, and Publish runs it inline.
type Dispatcher struct {
	handlers map[string]Handler
	mutex    sync.RWMutex
}

// NewDispatcher creates a new event dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

// Subscribe registers handler for eventType, replacing any prior one.
func (d *Dispatcher) Subscribe(eventType string, handler Handler) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.handlers[eventType] = handler
}

// Publish runs the handler subscribed to event's type, if one is
// registered. A reload proceeds regardless of whether anything is
// listening, so an unsubscribed event type is not an error.
func (d *Dispatcher) Publish(ctx context.Context, event interfaces.Event) error {
	d.mutex.RLock()
	handler, ok := d.handlers[event.Type()]
	d.mutex.RUnlock()

	if !ok {
		return nil
	}
	if err := handler(ctx, event); err != nil {
		return fmt.Errorf("handler error for event %s: %w", event.Type(), err)
	}
	return nil
}
