package interfaces

import "context"

// EventPublisher decouples the reload orchestrator from the concrete
// events.Dispatcher, mirroring the teacher's interfaces.SyncService/
// CacheService split between orchestration logic and wiring.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
