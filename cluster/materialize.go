package cluster

import (
	"github.com/miocluster/geocluster/entities"
)

// materialize turns store row i at the given level into the caller-facing
// Feature, per spec §4.7. A weight of 1 is an original input point; any
// higher weight is a synthesized cluster.
func (idx *Index) materialize(lvl *level, i int) entities.Feature {
	s := lvl.tree.Store
	nx := s.NX(i)
	ny := s.NY(i)
	x := idx.proj.FromNX(nx)
	y := idx.proj.FromNY(ny)
	weight := s.Weight(i)

	if weight <= 1 {
		idOrIndex := uint32(s.IDOrIndex(i))
		return entities.Feature{X: x, Y: y, ID: &idOrIndex, Payload: idx.payloadByID[idOrIndex]}
	}

	clusterID := int(s.IDOrIndex(i))
	props := &entities.ClusterProperties{
		ClusterID:             clusterID,
		PointCount:            int(weight),
		PointCountAbbreviated: entities.AbbreviatePointCount(int(weight)),
	}
	if idx.opts.Reducer != nil && lvl.meta != nil {
		props.Merged = lvl.meta[i]
	}
	return entities.Feature{X: x, Y: y, Cluster: props}
}
