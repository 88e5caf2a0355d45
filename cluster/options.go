package cluster

import (
	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/geo"
)

// Options configures a clustering Index. It mirrors spec §6's option
// table; defaults match config.Load()'s IndexConfig defaults.
type Options struct {
	MinZoom          int
	MaxZoom          int
	MinPoints        int
	Radius           float64
	Extent           float64
	NodeSize         int
	CoordinateSystem config.CoordinateSystem

	// CartesianRange is required when CoordinateSystem is
	// CoordinateSystemCartesian; ignored otherwise.
	CartesianRange geo.DataRange

	// Reducer, if set, accumulates merged per-cluster metadata as
	// described in SPEC_FULL.md §3.
	Reducer entities.PropertyReducer
}

// DefaultOptions returns spec §6's default option values.
func DefaultOptions() Options {
	return Options{
		MinZoom:          0,
		MaxZoom:          16,
		MinPoints:        2,
		Radius:           40,
		Extent:           512,
		NodeSize:         64,
		CoordinateSystem: config.CoordinateSystemLatLng,
	}
}

// FromConfig builds Options from a loaded IndexConfig.
func FromConfig(cfg config.IndexConfig) Options {
	return Options{
		MinZoom:          cfg.MinZoom,
		MaxZoom:          cfg.MaxZoom,
		MinPoints:        cfg.MinPoints,
		Radius:           cfg.Radius,
		Extent:           cfg.Extent,
		NodeSize:         cfg.NodeSize,
		CoordinateSystem: cfg.CoordinateSystem,
	}
}

func (o Options) projection() geo.Projection {
	if o.CoordinateSystem == config.CoordinateSystemCartesian {
		return geo.NewCartesianProjection(o.CartesianRange)
	}
	return geo.MercatorProjection{}
}
