package entities

import (
	"math"
	"strconv"
)

// Feature is a query-layer result: either a materialized cluster or an
// original input point, denormalized back into caller coordinates.
type Feature struct {
	// X, Y are the denormalized position: a cluster's weighted centroid,
	// or the original input point's coordinates.
	X, Y float64

	// ID is the caller-supplied (or synthesized) input point id when this
	// feature is a leaf, and unset (nil) when it is a cluster.
	ID *uint32

	// Payload is the caller's original payload when this feature is a
	// leaf (weight == 1).
	Payload interface{}

	// Cluster is set when this feature represents an aggregated cluster
	// rather than a single input point.
	Cluster *ClusterProperties
}

// IsCluster reports whether this feature represents an aggregated
// cluster rather than a single input point.
func (f Feature) IsCluster() bool {
	return f.Cluster != nil
}

// ClusterProperties is the synthesized metadata attached to a
// materialized cluster feature (spec §4.7).
type ClusterProperties struct {
	ClusterID            int
	PointCount           int
	PointCountAbbreviated string
	// Merged is the optional reduced metadata accumulated across the
	// cluster's absorbed points, present only when a PropertyReducer was
	// configured (see PropertyReducer).
	Merged interface{}
}

// PropertyReducer lets callers carry merged per-point metadata up the
// cluster tree, the way the reference implementation's optional
// map/reduce callbacks do: Map converts one input point's payload into
// the accumulator type T, and Reduce combines two accumulators (a seed's
// and an absorbed neighbor's) into one, incrementally, as clusters form.
type PropertyReducer interface {
	Map(payload interface{}) interface{}
	Reduce(a, b interface{}) interface{}
}

// AbbreviatePointCount formats a cluster's point count the way spec §4.7
// describes: "12k" once the count reaches ten thousand, "1.2k" below
// that but at or above a thousand, and the plain integer otherwise. Only
// the thousands branch rounds (per spec §4.7's explicit ".round()"); the
// ten-thousands branch matches original_source's unrounded `count /
// 1000.0`, so e.g. 12734 renders as "12.734k", not "13k".
func AbbreviatePointCount(count int) string {
	switch {
	case count >= 10000:
		return strconv.FormatFloat(float64(count)/1000, 'f', -1, 64) + "k"
	case count >= 1000:
		tenths := int(math.Round(float64(count) / 100))
		whole, frac := tenths/10, tenths%10
		if frac == 0 {
			return strconv.Itoa(whole) + "k"
		}
		return strconv.Itoa(whole) + "." + strconv.Itoa(frac) + "k"
	default:
		return strconv.Itoa(count)
	}
}
