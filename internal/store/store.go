// Package store implements the flat, column-major point store described by
// the clustering index's data model: one row per entity (input point or
// synthesized cluster) with a fixed stride. Caller payloads are not held
// here; cluster.Index keeps them keyed by a leaf row's idOrIndex.
package store

// Stride is the fixed number of float64 slots per row:
// [nx, ny, zoomProcessed, idOrIndex, parentID, weight].
const Stride = 6

// Field offsets within a row.
const (
	OffsetNX            = 0
	OffsetNY            = 1
	OffsetZoomProcessed = 2
	OffsetIDOrIndex     = 3
	OffsetParentID      = 4
	OffsetWeight        = 5
)

// NoParent is the sentinel parentID for a row with no parent yet.
const NoParent = -1

// Store is an append-only-during-build, read-only-after, flat row buffer.
type Store struct {
	Data []float64
}

// New allocates a store with capacity for n rows.
func New(n int) *Store {
	return &Store{Data: make([]float64, 0, n*Stride)}
}

// NewFromRows wraps an already-built flat buffer (e.g. one assembled
// incrementally during clustering) without copying.
func NewFromRows(rows []float64) *Store {
	return &Store{Data: rows}
}

// Len returns the number of rows in the store.
func (s *Store) Len() int {
	return len(s.Data) / Stride
}

// AppendRow appends one row's worth of fields.
func (s *Store) AppendRow(nx, ny, zoomProcessed, idOrIndex, parentID, weight float64) {
	s.Data = append(s.Data, nx, ny, zoomProcessed, idOrIndex, parentID, weight)
}

// Row returns the six fields of the row at index i.
func (s *Store) Row(i int) (nx, ny, zoomProcessed, idOrIndex, parentID, weight float64) {
	k := i * Stride
	return s.Data[k+OffsetNX], s.Data[k+OffsetNY], s.Data[k+OffsetZoomProcessed],
		s.Data[k+OffsetIDOrIndex], s.Data[k+OffsetParentID], s.Data[k+OffsetWeight]
}

// NX returns the normalized x of row i.
func (s *Store) NX(i int) float64 { return s.Data[i*Stride+OffsetNX] }

// NY returns the normalized y of row i.
func (s *Store) NY(i int) float64 { return s.Data[i*Stride+OffsetNY] }

// ZoomProcessed returns the lowest zoom at which row i has been visited.
func (s *Store) ZoomProcessed(i int) float64 { return s.Data[i*Stride+OffsetZoomProcessed] }

// SetZoomProcessed stamps row i's zoomProcessed field.
func (s *Store) SetZoomProcessed(i int, z float64) { s.Data[i*Stride+OffsetZoomProcessed] = z }

// IDOrIndex returns row i's idOrIndex field.
func (s *Store) IDOrIndex(i int) float64 { return s.Data[i*Stride+OffsetIDOrIndex] }

// ParentID returns row i's parentID field.
func (s *Store) ParentID(i int) float64 { return s.Data[i*Stride+OffsetParentID] }

// SetParentID sets row i's parentID field.
func (s *Store) SetParentID(i int, p float64) { s.Data[i*Stride+OffsetParentID] = p }

// Weight returns row i's weight field.
func (s *Store) Weight(i int) float64 { return s.Data[i*Stride+OffsetWeight] }

// TotalWeight sums the weight column across all rows; callers use this to
// assert the invariant that every zoom level's store covers all input
// points exactly once.
func (s *Store) TotalWeight() float64 {
	var total float64
	for i := 0; i < s.Len(); i++ {
		total += s.Weight(i)
	}
	return total
}
