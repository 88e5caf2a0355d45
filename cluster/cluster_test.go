package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/geo"
)

func pointsAround(coords [][2]float64) []entities.Point {
	points := make([]entities.Point, len(coords))
	for i, c := range coords {
		points[i] = entities.Point{X: c[0], Y: c[1]}
	}
	return points
}

// TestThreeClosePointsClusterInWashingtonDC mirrors the spec's DC-area
// scenario: three points about 1.4 km apart must merge into a
// single cluster at low zoom and separate back out at high zoom.
func TestThreeClosePointsClusterInWashingtonDC(t *testing.T) {
	idx := New(DefaultOptions())
	idx.Load(pointsAround([][2]float64{
		{-77.0369, 38.9072},
		{-77.0269, 38.9172},
		{-77.0469, 38.8972},
	}))

	features, err := idx.GetClusters(entities.BoundingBox{West: -78, South: 38, East: -76, North: 39}, 2)
	require.Nil(t, err)
	require.Len(t, features, 1)
	assert.True(t, features[0].IsCluster())
	assert.Equal(t, 3, features[0].Cluster.PointCount)

	leafFeatures, err := idx.GetClusters(entities.BoundingBox{West: -78, South: 38, East: -76, North: 39}, 16)
	require.Nil(t, err)
	assert.Len(t, leafFeatures, 3)
	for _, f := range leafFeatures {
		assert.False(t, f.IsCluster())
	}
}

// TestMinPointsAboveGroupSizeNeverClusters checks that raising min_points
// past the number of nearby points leaves every point a standalone leaf
// at every zoom.
func TestMinPointsAboveGroupSizeNeverClusters(t *testing.T) {
	opts := DefaultOptions()
	opts.MinPoints = 5
	idx := New(opts)
	idx.Load(pointsAround([][2]float64{
		{-77.0369, 38.9072},
		{-77.0365, 38.9074},
		{-77.0372, 38.9070},
	}))

	for z := opts.MinZoom; z <= opts.MaxZoom; z++ {
		features, err := idx.GetClusters(entities.BoundingBox{West: -180, South: -85, East: 180, North: 85}, z)
		require.Nil(t, err)
		require.Len(t, features, 3, "zoom %d", z)
		for _, f := range features {
			assert.False(t, f.IsCluster(), "zoom %d", z)
		}
	}
}

// TestAntimeridianQueryIsSymmetric checks that a bbox crossing the
// antimeridian returns the same features as querying each half
// separately and concatenating, for points clustered near it.
func TestAntimeridianQueryIsSymmetric(t *testing.T) {
	idx := New(DefaultOptions())
	idx.Load(pointsAround([][2]float64{
		{-178.999, 10.0},
		{-178.998, 10.001},
		{178.999, 10.0},
		{178.998, 10.001},
	}))

	wrapping, err := idx.GetClusters(entities.BoundingBox{West: 170, South: 0, East: -170, North: 20}, 0)
	require.Nil(t, err)

	west, errW := idx.GetClusters(entities.BoundingBox{West: 170, South: 0, East: 180, North: 20}, 0)
	require.Nil(t, errW)
	east, errE := idx.GetClusters(entities.BoundingBox{West: -180, South: 0, East: -170, North: 20}, 0)
	require.Nil(t, errE)

	assert.Equal(t, len(west)+len(east), len(wrapping))
}

// TestCartesianThreePointCentroid checks that three points sharing a
// cartesian range cluster into a feature sited at their weighted
// centroid rather than a lng/lat projection.
func TestCartesianThreePointCentroid(t *testing.T) {
	opts := DefaultOptions()
	opts.CoordinateSystem = config.CoordinateSystemCartesian
	opts.Radius = 200
	opts.CartesianRange = geo.DataRange{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	idx := New(opts)
	idx.Load(pointsAround([][2]float64{
		{10, 10},
		{20, 10},
		{15, 20},
	}))

	features, err := idx.GetClusters(entities.BoundingBox{West: 0, South: 0, East: 100, North: 100}, 0)
	require.Nil(t, err)
	require.Len(t, features, 1)
	require.True(t, features[0].IsCluster())
	assert.Equal(t, 3, features[0].Cluster.PointCount)
	assert.InDelta(t, 15, features[0].X, 1e-6)
	assert.InDelta(t, 40.0/3.0, features[0].Y, 1e-6)
}

func TestGetTileReturnsTileNotFoundWhenEmpty(t *testing.T) {
	idx := New(DefaultOptions())
	idx.Load(pointsAround([][2]float64{{-77, 38}}))

	_, err := idx.GetTile(10, 0, 0)
	require.NotNil(t, err)
	assert.Equal(t, entities.TileNotFound, err.Kind)
}

func TestGetChildrenAndExpansionZoom(t *testing.T) {
	idx := New(DefaultOptions())
	idx.Load(pointsAround([][2]float64{
		{-77.0369, 38.9072},
		{-77.0365, 38.9074},
		{-77.0372, 38.9070},
	}))

	top, err := idx.GetClusters(entities.BoundingBox{West: -180, South: -85, East: 180, North: 85}, 0)
	require.Nil(t, err)
	require.Len(t, top, 1)
	require.True(t, top[0].IsCluster())

	clusterID := top[0].Cluster.ClusterID
	children, childErr := idx.GetChildren(clusterID)
	require.Nil(t, childErr)
	assert.NotEmpty(t, children)

	expansionZoom := idx.GetClusterExpansionZoom(clusterID)
	assert.GreaterOrEqual(t, expansionZoom, 0)
	assert.LessOrEqual(t, expansionZoom, idx.opts.MaxZoom+1)
}

func TestGetLeavesReturnsAllOriginalPoints(t *testing.T) {
	coords := [][2]float64{
		{-77.0369, 38.9072},
		{-77.0365, 38.9074},
		{-77.0372, 38.9070},
		{-77.0370, 38.9071},
	}
	idx := New(DefaultOptions())
	idx.Load(pointsAround(coords))

	top, err := idx.GetClusters(entities.BoundingBox{West: -180, South: -85, East: 180, North: 85}, 0)
	require.Nil(t, err)
	require.Len(t, top, 1)
	require.True(t, top[0].IsCluster())

	leaves := idx.GetLeaves(top[0].Cluster.ClusterID, 100, 0)
	assert.Len(t, leaves, len(coords))
	for _, l := range leaves {
		assert.False(t, l.IsCluster())
	}
}

func TestGetLeavesRespectsLimitAndOffset(t *testing.T) {
	coords := [][2]float64{
		{-77.0369, 38.9072},
		{-77.0365, 38.9074},
		{-77.0372, 38.9070},
		{-77.0370, 38.9071},
	}
	idx := New(DefaultOptions())
	idx.Load(pointsAround(coords))

	top, err := idx.GetClusters(entities.BoundingBox{West: -180, South: -85, East: 180, North: 85}, 0)
	require.Nil(t, err)
	require.Len(t, top, 1)

	all := idx.GetLeaves(top[0].Cluster.ClusterID, 100, 0)
	paged := idx.GetLeaves(top[0].Cluster.ClusterID, 2, 1)
	require.Len(t, paged, 2)
	assert.Equal(t, all[1], paged[0])
	assert.Equal(t, all[2], paged[1])
}

func TestTreeAtUnknownZoomReturnsTreeNotFound(t *testing.T) {
	idx := New(DefaultOptions())
	idx.Load(pointsAround([][2]float64{{-77, 38}}))

	lvl, err := idx.treeAt(999)
	require.Nil(t, lvl)
	require.NotNil(t, err)
	assert.Equal(t, entities.TreeNotFound, err.Kind)
}
