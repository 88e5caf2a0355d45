package clusterid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Decode's returned zoom is the raw packed field, one more than the zoom
// passed to Encode (it names the tree originRow indexes into: the
// higher-zoom store a cluster was formed from). See clusterid.go's Decode
// doc comment and cluster.GetClusterExpansionZoom, which subtracts 1 when
// it wants the formation zoom itself.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	const numInput = 1000

	cases := []struct {
		originRow, originZoom int
	}{
		{0, 0},
		{1, 5},
		{12345, 16},
		{999999, 30},
	}

	for _, c := range cases {
		id := Encode(c.originRow, c.originZoom, numInput)
		assert.GreaterOrEqual(t, id, numInput, "cluster ids must never collide with leaf idOrIndex space")

		row, zoom := Decode(id, numInput)
		assert.Equal(t, c.originRow, row)
		assert.Equal(t, c.originZoom+1, zoom)
	}
}

func TestIsCluster(t *testing.T) {
	const numInput = 50
	assert.False(t, IsCluster(0, numInput))
	assert.False(t, IsCluster(numInput-1, numInput))
	assert.True(t, IsCluster(numInput, numInput))
	assert.True(t, IsCluster(Encode(3, 4, numInput), numInput))
}

func TestMaxZoomFitsFiveBits(t *testing.T) {
	id := Encode(7, MaxZoom, 0)
	_, zoom := Decode(id, 0)
	assert.Equal(t, MaxZoom+1, zoom)
}
