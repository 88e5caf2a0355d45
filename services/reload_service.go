package services

import (
	"context"
	"fmt"
	"log"

	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/events/types"
	"github.com/miocluster/geocluster/interfaces"
)

// ReloadService fetches the current point set from a PointSource and
// rebuilds the cluster index against it, publishing the outcome as an
// event so the tile cache version (and anything else listening) knows to
// invalidate. Grounded on the teacher's SyncService, which drives trail
// MVT regeneration from the same kind of "something upstream changed"
// trigger.
type ReloadService struct {
	source    interfaces.PointSource
	index     interfaces.ClusterIndex
	publisher interfaces.EventPublisher
}

// NewReloadService creates a reload orchestrator wiring a point source,
// the cluster index it feeds, and the event publisher it reports to.
func NewReloadService(source interfaces.PointSource, index interfaces.ClusterIndex, publisher interfaces.EventPublisher) *ReloadService {
	return &ReloadService{source: source, index: index, publisher: publisher}
}

// Reload fetches the full point set and rebuilds the index synchronously.
// Callers that want this off the request path should run it in a
// goroutine, the way the teacher's hook handlers dispatch sync work.
func (s *ReloadService) Reload(ctx context.Context) error {
	points, err := s.source.LoadPoints(ctx)
	if err != nil {
		s.publish(ctx, types.NewIndexReloadFailure(fmt.Sprintf("loading points: %v", err)))
		return fmt.Errorf("failed to load points: %w", err)
	}

	s.index.Load(points)

	clusterCount := 0
	world := entities.BoundingBox{West: -180, South: -90, East: 180, North: 90}
	if features, cerr := s.index.GetClusters(world, 0); cerr == nil {
		clusterCount = len(features)
	}

	s.publish(ctx, types.NewIndexRebuilt(len(points), clusterCount))
	return nil
}

func (s *ReloadService) publish(ctx context.Context, event interfaces.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish event %s: %v", event.Type(), err)
	}
}
