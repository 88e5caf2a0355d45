package entities

// Point is the caller-facing input to the clustering index: an opaque
// (X, Y) in caller coordinates, an optional caller-supplied ID, and an
// optional opaque payload that the index keeps by reference, keyed by the
// point's id. If ID is nil, the loader assigns a sequential
// id (0..N-1) the way the reference implementation's kdbush/supercluster
// pairing does for callers that don't track their own ids.
type Point struct {
	X, Y    float64
	ID      *uint32
	Payload interface{}
}

// BoundingBox is a query-layer bbox: west/south/east/north in caller
// coordinates (longitude/latitude in Mercator mode, raw x/y in Cartesian
// mode).
type BoundingBox struct {
	West, South, East, North float64
}

// Tile identifies a single z/x/y map tile. X and Y are in [0, 2^Z).
type Tile struct {
	Z, X, Y int
}
