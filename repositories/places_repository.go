// Package repositories adapts PocketBase-backed collections into the
// domain's narrow interfaces, the way the teacher's repositories package
// adapts trail engagement data.
package repositories

import (
	"context"
	"fmt"

	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/interfaces"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
)

// PlacesRepository loads clustering input points from the "places"
// PocketBase collection, the persisted store records are created against
// through the regular PocketBase API and admin UI.
type PlacesRepository struct {
	app core.App
}

// NewPlacesRepository creates a point source reading the "places" collection.
func NewPlacesRepository(app core.App) *PlacesRepository {
	return &PlacesRepository{app: app}
}

// placeRow is the narrow column projection LoadPoints queries, skipping the
// rest of the "places" schema a full record hydration would otherwise pay
// for on every reload.
type placeRow struct {
	RowID   int     `db:"rowid"`
	Lon     float64 `db:"lon"`
	Lat     float64 `db:"lat"`
	Payload string  `db:"payload"`
}

// LoadPoints returns one point per "places" row, queried directly through
// dbx rather than hydrated core.Record instances, the way the teacher's
// heavier read paths drop to raw SQL for bulk loads. Ids are assigned by
// row order rather than carried from the record id, since cluster ids are
// packed as uint32 row indices/values (spec §4.6), not PocketBase's string
// record ids.
func (r *PlacesRepository) LoadPoints(ctx context.Context) ([]entities.Point, error) {
	var rows []placeRow
	var query *dbx.SelectQuery = r.app.DB().
		Select("rowid", "lon", "lat", "payload").
		From("places").
		OrderBy("rowid ASC")
	if err := query.All(&rows); err != nil {
		return nil, fmt.Errorf("failed to load places rows: %w", err)
	}

	points := make([]entities.Point, 0, len(rows))
	for i, row := range rows {
		id := uint32(i)
		points = append(points, entities.Point{
			X:       row.Lon,
			Y:       row.Lat,
			ID:      &id,
			Payload: row.Payload,
		})
	}

	return points, nil
}

var _ interfaces.PointSource = (*PlacesRepository)(nil)
