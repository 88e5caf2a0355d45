// Package types defines the cluster index's lifecycle events: a point set
// was fetched, the index finished rebuilding against it, or that rebuild
// failed. Unlike the teacher's trail/engagement events, there is exactly
// one aggregate here (the cluster index itself), so these events carry no
// aggregate id and no generic Data() payload — each type exposes its own
// fields directly.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Event types for index reloads.
const (
	PointsLoadedEvent = "points.loaded"
	IndexRebuiltEvent = "index.rebuilt"
	IndexReloadFailed = "index.reload_failed"
)

// occurrence is the bookkeeping every index lifecycle event carries: an id
// for log correlation and the time it happened.
type occurrence struct {
	id         string
	eventType  string
	occurredAt time.Time
}

func newOccurrence(eventType string) occurrence {
	return occurrence{id: uuid.New().String(), eventType: eventType, occurredAt: time.Now()}
}

// Type satisfies interfaces.Event.
func (o occurrence) Type() string { return o.eventType }

// PointsLoaded marks that a fresh point set was fetched from a PointSource
// and is ready to feed into cluster.Index.Load.
type PointsLoaded struct {
	occurrence
	SourceName string
	PointCount int
}

// IndexRebuilt marks that the cluster index finished rebuilding against a
// newly loaded point set, invalidating any tile/bbox response caches.
type IndexRebuilt struct {
	occurrence
	PointCount   int
	ClusterCount int
}

// IndexReloadFailure marks that a reload attempt failed and the index kept
// serving its previous snapshot.
type IndexReloadFailure struct {
	occurrence
	Reason string
}

// NewPointsLoaded creates a new points-loaded event.
func NewPointsLoaded(sourceName string, pointCount int) *PointsLoaded {
	return &PointsLoaded{
		occurrence: newOccurrence(PointsLoadedEvent),
		SourceName: sourceName,
		PointCount: pointCount,
	}
}

// NewIndexRebuilt creates a new index-rebuilt event.
func NewIndexRebuilt(pointCount, clusterCount int) *IndexRebuilt {
	return &IndexRebuilt{
		occurrence:   newOccurrence(IndexRebuiltEvent),
		PointCount:   pointCount,
		ClusterCount: clusterCount,
	}
}

// NewIndexReloadFailure creates a new index-reload-failure event.
func NewIndexReloadFailure(reason string) *IndexReloadFailure {
	return &IndexReloadFailure{
		occurrence: newOccurrence(IndexReloadFailed),
		Reason:     reason,
	}
}
