package interfaces

import (
	"context"

	"github.com/miocluster/geocluster/entities"
)

// PointSource loads the raw input point set the cluster index is built
// from. Implementations adapt a concrete backend (PocketBase collection,
// PostGIS table, GPX file) into the abstract point list spec.md §1
// requires of callers.
type PointSource interface {
	LoadPoints(ctx context.Context) ([]entities.Point, error)
}
