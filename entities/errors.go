package entities

// ClusterErrorKind is one of the three error families spec §7 defines.
type ClusterErrorKind string

const (
	// TreeNotFound signals an internal invariant violation or a query
	// against a zoom outside [min_zoom, max_zoom+1]. Recoverable only by
	// re-loading with different options.
	TreeNotFound ClusterErrorKind = "tree_not_found"

	// ClusterNotFound signals a cluster id that does not decode to a
	// populated row, or no children satisfying the parent-id filter.
	ClusterNotFound ClusterErrorKind = "cluster_not_found"

	// TileNotFound signals a tile query that yielded zero features.
	TileNotFound ClusterErrorKind = "tile_not_found"
)

// ClusterError is the typed error family the query layer surfaces: a
// small closed set of kinds callers can switch on rather than a generic
// wrapped error.
type ClusterError struct {
	Kind    ClusterErrorKind
	Message string
}

func (e *ClusterError) Error() string {
	return e.Message
}

func newError(kind ClusterErrorKind, message string) *ClusterError {
	return &ClusterError{Kind: kind, Message: message}
}

// NewTreeNotFoundError builds a TreeNotFound ClusterError.
func NewTreeNotFoundError(message string) *ClusterError {
	return newError(TreeNotFound, message)
}

// NewClusterNotFoundError builds a ClusterNotFound ClusterError.
func NewClusterNotFoundError(message string) *ClusterError {
	return newError(ClusterNotFound, message)
}

// NewTileNotFoundError builds a TileNotFound ClusterError.
func NewTileNotFoundError(message string) *ClusterError {
	return newError(TileNotFound, message)
}
