package events

import (
	"github.com/miocluster/geocluster/events/handlers"
	"github.com/miocluster/geocluster/events/types"
)

// EventRegistry configures and manages all event handlers
type EventRegistry struct {
	dispatcher    *Dispatcher
	reloadHandler *handlers.ReloadHandler
}

// NewEventRegistry creates a new event registry with all handlers wired.
// tileCacheVersion is the counter the reload handler increments on each
// rebuild; no HTTP handler reads it.
func NewEventRegistry(tileCacheVersion *int) *EventRegistry {
	dispatcher := NewDispatcher()

	reloadHandler := handlers.NewReloadHandler(tileCacheVersion)

	registry := &EventRegistry{
		dispatcher:    dispatcher,
		reloadHandler: reloadHandler,
	}

	registry.registerHandlers()

	return registry
}

// GetDispatcher returns the event dispatcher
func (r *EventRegistry) GetDispatcher() *Dispatcher {
	return r.dispatcher
}

// registerHandlers registers all event handlers with the dispatcher
func (r *EventRegistry) registerHandlers() {
	r.dispatcher.Subscribe(types.IndexRebuiltEvent, r.reloadHandler.HandleIndexRebuilt)
	r.dispatcher.Subscribe(types.IndexReloadFailed, r.reloadHandler.HandleIndexReloadFailed)
}
