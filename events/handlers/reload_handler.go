package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/miocluster/geocluster/events/types"
	"github.com/miocluster/geocluster/interfaces"
)

// ReloadHandler observes index lifecycle events, the way the teacher's
// CacheHandler observes trail mutations to log and invalidate downstream
// caches. The actual index rebuild is driven synchronously by
// services.ReloadService; this handler only reacts to its outcome.
type ReloadHandler struct {
	tileCacheVersion *int
}

// NewReloadHandler creates a new reload handler backed by a tile cache
// version counter owned by the caller. The HTTP handlers do not read it.
func NewReloadHandler(tileCacheVersion *int) *ReloadHandler {
	return &ReloadHandler{tileCacheVersion: tileCacheVersion}
}

// HandleIndexRebuilt bumps the tile cache version whenever the cluster
// index finishes rebuilding against a new point set.
func (h *ReloadHandler) HandleIndexRebuilt(ctx context.Context, event interfaces.Event) error {
	rebuilt, ok := event.(*types.IndexRebuilt)
	if !ok {
		return fmt.Errorf("invalid event type for reload handler: %T", event)
	}

	*h.tileCacheVersion++
	log.Printf("Cluster index rebuilt: %d points, %d clusters, tile cache version now %d",
		rebuilt.PointCount, rebuilt.ClusterCount, *h.tileCacheVersion)

	return nil
}

// HandleIndexReloadFailed logs a failed reload attempt; the index keeps
// serving its previous snapshot.
func (h *ReloadHandler) HandleIndexReloadFailed(ctx context.Context, event interfaces.Event) error {
	failure, ok := event.(*types.IndexReloadFailure)
	if !ok {
		return fmt.Errorf("invalid event type for reload handler: %T", event)
	}

	log.Printf("Cluster index reload failed: %s", failure.Reason)

	return nil
}
