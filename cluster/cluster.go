// Package cluster implements the hierarchical clusterer and query layer:
// the bottom-up agglomeration pass that builds one point-store + KD-tree
// per zoom level (spec §4.4), and the bbox/tile/children/leaves/expansion-
// zoom query surface built on top of it (spec §4.5, §4.7).
package cluster

import (
	"math"

	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/geo"
	"github.com/miocluster/geocluster/internal/clusterid"
	"github.com/miocluster/geocluster/internal/kdtree"
	"github.com/miocluster/geocluster/internal/store"
)

// level bundles one zoom level's point store, KD-tree, and (when a
// PropertyReducer is configured) parallel reduced-metadata vector.
type level struct {
	tree *kdtree.Tree
	meta []interface{}
}

// Index is a built, immutable clustering index. The zero value is not
// usable; construct with New and populate with Load.
type Index struct {
	opts        Options
	proj        geo.Projection
	numInput    int
	levels      map[int]*level
	payloadByID map[uint32]interface{}
}

// New creates an unloaded Index with the given options. Call Load to
// populate it.
func New(opts Options) *Index {
	return &Index{opts: opts, proj: opts.projection()}
}

// Load populates the index from an iterator of input points, building
// the full zoom hierarchy from max_zoom+1 down to min_zoom. A re-load
// replaces all prior state; the index is immutable between loads and safe
// for concurrent read-only querying once Load returns.
func (idx *Index) Load(points []entities.Point) {
	idx.numInput = len(points)
	idx.levels = make(map[int]*level, idx.opts.MaxZoom-idx.opts.MinZoom+2)
	idx.payloadByID = make(map[uint32]interface{}, len(points))

	seedStore := store.New(len(points))
	var seedMeta []interface{}
	if idx.opts.Reducer != nil {
		seedMeta = make([]interface{}, len(points))
	}

	nextSeqID := uint32(0)
	for i, p := range points {
		nx := idx.proj.ToNX(p.X)
		ny := idx.proj.ToNY(p.Y)
		var idVal uint32
		if p.ID != nil {
			idVal = *p.ID
		} else {
			idVal = nextSeqID
			nextSeqID++
		}
		seedStore.AppendRow(nx, ny, math.Inf(1), float64(idVal), store.NoParent, 1)
		idx.payloadByID[idVal] = p.Payload
		if idx.opts.Reducer != nil {
			seedMeta[i] = idx.opts.Reducer.Map(p.Payload)
		}
	}

	seedZoom := idx.opts.MaxZoom + 1
	idx.levels[seedZoom] = &level{
		tree: kdtree.Build(seedStore, idx.opts.NodeSize),
		meta: seedMeta,
	}

	for z := idx.opts.MaxZoom; z >= idx.opts.MinZoom; z-- {
		higher := idx.levels[z+1]
		nextStore, nextMeta := idx.clusterZoom(higher, z)
		idx.levels[z] = &level{
			tree: kdtree.Build(nextStore, idx.opts.NodeSize),
			meta: nextMeta,
		}
	}
}

// clusterZoom runs one pass of spec §4.4 step 2: for each seed row in the
// higher zoom's store not yet processed at z, either merge it with its
// qualifying within(r) neighbors into a new cluster row, or carry it (and
// any already-clustered neighbors) forward unmerged.
func (idx *Index) clusterZoom(higher *level, z int) (*store.Store, []interface{}) {
	r := idx.opts.Radius / (idx.opts.Extent * math.Pow(2, float64(z)))
	higherStore := higher.tree.Store
	n := higherStore.Len()

	next := store.New(n)
	var nextMeta []interface{}
	if idx.opts.Reducer != nil {
		nextMeta = make([]interface{}, 0, n)
	}

	for i := 0; i < n; i++ {
		if higherStore.ZoomProcessed(i) <= float64(z) {
			continue
		}
		higherStore.SetZoomProcessed(i, float64(z))

		nx := higherStore.NX(i)
		ny := higherStore.NY(i)
		weightOrigin := higherStore.Weight(i)

		neighbors := higher.tree.Within(nx, ny, r)

		totalWeight := weightOrigin
		for _, nb := range neighbors {
			if higherStore.ZoomProcessed(nb) > float64(z) {
				totalWeight += higherStore.Weight(nb)
			}
		}

		if totalWeight > weightOrigin && totalWeight >= float64(idx.opts.MinPoints) {
			wx := nx * weightOrigin
			wy := ny * weightOrigin
			var merged interface{}
			if idx.opts.Reducer != nil {
				merged = higher.meta[i]
			}

			clusterID := clusterid.Encode(i, z, idx.numInput)

			for _, nb := range neighbors {
				if higherStore.ZoomProcessed(nb) <= float64(z) {
					continue
				}
				higherStore.SetZoomProcessed(nb, float64(z))
				w := higherStore.Weight(nb)
				wx += higherStore.NX(nb) * w
				wy += higherStore.NY(nb) * w
				higherStore.SetParentID(nb, float64(clusterID))
				if idx.opts.Reducer != nil {
					merged = idx.opts.Reducer.Reduce(merged, higher.meta[nb])
				}
			}

			higherStore.SetParentID(i, float64(clusterID))

			next.AppendRow(wx/totalWeight, wy/totalWeight, math.Inf(1), float64(clusterID), store.NoParent, totalWeight)
			if idx.opts.Reducer != nil {
				nextMeta = append(nextMeta, merged)
			}
		} else {
			next.AppendRow(nx, ny, math.Inf(1), higherStore.IDOrIndex(i), store.NoParent, weightOrigin)
			if idx.opts.Reducer != nil {
				nextMeta = append(nextMeta, higher.meta[i])
			}

			if weightOrigin > 1 {
				for _, nb := range neighbors {
					if higherStore.ZoomProcessed(nb) <= float64(z) {
						continue
					}
					higherStore.SetZoomProcessed(nb, float64(z))
					nnx, nny, _, nid, npar, nw := higherStore.Row(nb)
					next.AppendRow(nnx, nny, math.Inf(1), nid, npar, nw)
					if idx.opts.Reducer != nil {
						nextMeta = append(nextMeta, higher.meta[nb])
					}
				}
			}
		}
	}

	return next, nextMeta
}

// limitZoom clamps z to [min_zoom, max_zoom+1], the valid tree range.
func (idx *Index) limitZoom(z int) int {
	if z < idx.opts.MinZoom {
		return idx.opts.MinZoom
	}
	if z > idx.opts.MaxZoom+1 {
		return idx.opts.MaxZoom + 1
	}
	return z
}

func (idx *Index) treeAt(z int) (*level, *entities.ClusterError) {
	lvl, ok := idx.levels[z]
	if !ok {
		return nil, entities.NewTreeNotFoundError("no tree at the requested zoom level")
	}
	return lvl, nil
}
