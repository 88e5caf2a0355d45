// Package clusterid implements the cluster-identifier codec: packing
// (origin_zoom, origin_row) into a single integer >= the input point
// count, and unpacking it back. Five bits are reserved for the zoom field,
// which caps max_zoom at 30.
package clusterid

// MaxZoom is the largest zoom level the 5-bit zoom field can encode.
const MaxZoom = 30

// zoomBits is the width of the zoom field packed into the low bits of a
// cluster id.
const zoomBits = 5

// Encode packs (originZoom, originRow) into a cluster id that is always
// >= numInput, so it never collides with a leaf row's idOrIndex.
func Encode(originRow, originZoom, numInput int) int {
	return ((originRow << zoomBits) + (originZoom + 1)) + numInput
}

// Decode unpacks a cluster id back into its origin row and zoom. The
// returned originZoom is the raw packed field (one more than the zoom
// level passed to Encode) — it identifies the tree that originRow indexes
// into, i.e. the store that was being read when the cluster was formed.
// Callers that want the zoom level the cluster was *formed at* subtract 1
// (see cluster.GetClusterExpansionZoom).
func Decode(clusterID, numInput int) (originRow, originZoom int) {
	shifted := clusterID - numInput
	originRow = shifted >> zoomBits
	originZoom = shifted & ((1 << zoomBits) - 1)
	return originRow, originZoom
}

// IsCluster reports whether id could only have been produced by Encode,
// i.e. it does not collide with a leaf's idOrIndex space.
func IsCluster(id, numInput int) bool {
	return id >= numInput
}
