// Package validation validates clustering index configuration and query
// inputs, accumulating failures the same way the teacher's validators do:
// a small *Validator struct per concern returning a MultiValidationError.
package validation

import (
	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/internal/clusterid"
)

// OptionsValidator validates clustering index configuration.
type OptionsValidator struct{}

// NewOptionsValidator creates a new options validator.
func NewOptionsValidator() *OptionsValidator {
	return &OptionsValidator{}
}

// ValidateIndexConfig validates an IndexConfig against spec §6's bounds,
// including the codec's 5-bit zoom-width ceiling (max_zoom <= 30).
func (v *OptionsValidator) ValidateIndexConfig(cfg config.IndexConfig) *entities.MultiValidationError {
	errors := entities.NewMultiValidationError()

	if cfg.MinZoom < 0 || cfg.MinZoom > clusterid.MaxZoom {
		errors.Add("min_zoom", "min_zoom must be between 0 and 30")
	}
	if cfg.MaxZoom < 0 || cfg.MaxZoom > clusterid.MaxZoom {
		errors.Add("max_zoom", "max_zoom must be between 0 and 30 (5-bit cluster-id zoom field)")
	}
	if cfg.MinZoom > cfg.MaxZoom {
		errors.Add("min_zoom", "min_zoom must be <= max_zoom")
	}
	if cfg.MinPoints < 2 {
		errors.Add("min_points", "min_points must be >= 2")
	}
	if cfg.Radius <= 0 {
		errors.Add("radius", "radius must be > 0")
	}
	if cfg.Extent <= 0 {
		errors.Add("extent", "extent must be > 0")
	}
	if cfg.NodeSize <= 0 {
		errors.Add("node_size", "node_size must be > 0")
	}
	switch cfg.CoordinateSystem {
	case config.CoordinateSystemLatLng, config.CoordinateSystemCartesian:
	default:
		errors.Add("coordinate_system", "coordinate_system must be \"latlng\" or \"cartesian\"")
	}

	return errors
}

// BBoxValidator validates query-layer bounding boxes.
type BBoxValidator struct{}

// NewBBoxValidator creates a new bbox validator.
func NewBBoxValidator() *BBoxValidator {
	return &BBoxValidator{}
}

// ValidateBBox checks that a bounding box's north is not below its south.
// East/west are intentionally unconstrained here — spec §4.5 normalizes
// longitude (including antimeridian-crossing queries) rather than
// rejecting it.
func (v *BBoxValidator) ValidateBBox(bbox entities.BoundingBox) *entities.MultiValidationError {
	errors := entities.NewMultiValidationError()

	if bbox.North < bbox.South {
		errors.Add("bbox", "north must be >= south")
	}

	return errors
}

// ValidateTile checks that a tile's x/y fall within [0, 2^z).
func (v *BBoxValidator) ValidateTile(tile entities.Tile) *entities.MultiValidationError {
	errors := entities.NewMultiValidationError()

	if tile.Z < 0 {
		errors.Add("z", "z must be >= 0")
	}
	z2 := 1 << uint(tile.Z)
	if tile.X < 0 || tile.X >= z2 {
		errors.Add("x", "x must be in [0, 2^z)")
	}
	if tile.Y < 0 || tile.Y >= z2 {
		errors.Add("y", "y must be in [0, 2^z)")
	}

	return errors
}
