package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/geo"
)

func TestDefaultOptionsMatchSpecDefaults(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 0, opts.MinZoom)
	assert.Equal(t, 16, opts.MaxZoom)
	assert.Equal(t, 2, opts.MinPoints)
	assert.Equal(t, 40.0, opts.Radius)
	assert.Equal(t, 512.0, opts.Extent)
	assert.Equal(t, 64, opts.NodeSize)
	assert.Equal(t, config.CoordinateSystemLatLng, opts.CoordinateSystem)
}

func TestFromConfigCopiesFields(t *testing.T) {
	cfg := config.IndexConfig{
		MinZoom: 1, MaxZoom: 12, MinPoints: 3,
		Radius: 50, Extent: 256, NodeSize: 32,
		CoordinateSystem: config.CoordinateSystemCartesian,
	}

	opts := FromConfig(cfg)
	assert.Equal(t, 1, opts.MinZoom)
	assert.Equal(t, 12, opts.MaxZoom)
	assert.Equal(t, 3, opts.MinPoints)
	assert.Equal(t, 50.0, opts.Radius)
	assert.Equal(t, 256.0, opts.Extent)
	assert.Equal(t, 32, opts.NodeSize)
	assert.Equal(t, config.CoordinateSystemCartesian, opts.CoordinateSystem)
}

func TestProjectionSelectsMercatorByDefault(t *testing.T) {
	opts := DefaultOptions()
	_, ok := opts.projection().(geo.MercatorProjection)
	assert.True(t, ok)
}

func TestProjectionSelectsCartesianWhenConfigured(t *testing.T) {
	opts := DefaultOptions()
	opts.CoordinateSystem = config.CoordinateSystemCartesian
	opts.CartesianRange = geo.DataRange{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	_, ok := opts.projection().(geo.CartesianProjection)
	assert.True(t, ok)
}
