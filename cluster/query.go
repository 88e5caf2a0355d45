package cluster

import (
	"math"

	"github.com/miocluster/geocluster/config"
	"github.com/miocluster/geocluster/entities"
	"github.com/miocluster/geocluster/internal/clusterid"
)

// GetClusters returns every cluster or point whose location falls inside
// bbox at zoom z, per spec §4.5. Mercator mode handles longitude
// normalization and antimeridian wraparound; Cartesian mode projects the
// box directly through the configured range.
func (idx *Index) GetClusters(bbox entities.BoundingBox, z int) ([]entities.Feature, *entities.ClusterError) {
	if idx.opts.CoordinateSystem == config.CoordinateSystemCartesian {
		return idx.getClustersCartesian(bbox, z)
	}
	return idx.getClustersMercator(bbox, z)
}

func (idx *Index) getClustersMercator(bbox entities.BoundingBox, z int) ([]entities.Feature, *entities.ClusterError) {
	w, s, e, n := bbox.West, bbox.South, bbox.East, bbox.North

	if e-w >= 360 {
		w, e = -180, 180
	} else {
		w = normalizeLongitude(w)
		// An east edge of exactly 180 is kept as is: normalizing would wrap
		// it to -180 and turn a [w..180] half-world query into a crossing one.
		if e != 180 {
			e = normalizeLongitude(e)
		}
	}
	s = clampLatitude(s)
	n = clampLatitude(n)

	if w > e {
		west, errW := idx.getClustersMercator(entities.BoundingBox{West: w, South: s, East: 180, North: n}, z)
		if errW != nil {
			return nil, errW
		}
		east, errE := idx.getClustersMercator(entities.BoundingBox{West: -180, South: s, East: e, North: n}, z)
		if errE != nil {
			return nil, errE
		}
		return append(west, east...), nil
	}

	lvl, err := idx.treeAt(idx.limitZoom(z))
	if err != nil {
		return nil, err
	}

	minX := idx.proj.ToNX(w)
	maxX := idx.proj.ToNX(e)
	minY := idx.proj.ToNY(n)
	maxY := idx.proj.ToNY(s)

	rows := lvl.tree.Range(minX, minY, maxX, maxY)
	features := make([]entities.Feature, 0, len(rows))
	for _, i := range rows {
		features = append(features, idx.materialize(lvl, i))
	}
	return features, nil
}

func (idx *Index) getClustersCartesian(bbox entities.BoundingBox, z int) ([]entities.Feature, *entities.ClusterError) {
	lvl, err := idx.treeAt(idx.limitZoom(z))
	if err != nil {
		return nil, err
	}

	minX := idx.proj.ToNX(bbox.West)
	maxX := idx.proj.ToNX(bbox.East)
	minY := idx.proj.ToNY(bbox.South)
	maxY := idx.proj.ToNY(bbox.North)
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	rows := lvl.tree.Range(minX, minY, maxX, maxY)
	features := make([]entities.Feature, 0, len(rows))
	for _, i := range rows {
		features = append(features, idx.materialize(lvl, i))
	}
	return features, nil
}

// normalizeLongitude wraps a longitude into [-180, 180).
func normalizeLongitude(lng float64) float64 {
	return math.Mod(math.Mod(lng+180, 360)+360, 360) - 180
}

// clampLatitude clamps a latitude into [-90, 90].
func clampLatitude(lat float64) float64 {
	if lat < -90 {
		return -90
	}
	if lat > 90 {
		return 90
	}
	return lat
}

// GetTile returns the features intersecting tile (z, x, y), in tile-pixel
// coordinates, including the wrap-band padding at the tile's left/right
// world edges (spec §4.5).
func (idx *Index) GetTile(z, x, y int) ([]entities.Feature, *entities.ClusterError) {
	zoom := idx.limitZoom(z)
	lvl, err := idx.treeAt(zoom)
	if err != nil {
		return nil, err
	}

	z2 := math.Exp2(float64(z))
	p := idx.opts.Radius / idx.opts.Extent
	fx, fy := float64(x), float64(y)
	top := (fy - p) / z2
	bottom := (fy + 1 + p) / z2

	var features []entities.Feature

	rows := lvl.tree.Range((fx-p)/z2, top, (fx+1+p)/z2, bottom)
	features = append(features, idx.materializeTile(lvl, rows, fx, fy, z2)...)

	if x == 0 {
		rows := lvl.tree.Range(1-p/z2, top, 1, bottom)
		features = append(features, idx.materializeTile(lvl, rows, z2, fy, z2)...)
	}
	if x == int(z2)-1 {
		rows := lvl.tree.Range(0, top, p/z2, bottom)
		features = append(features, idx.materializeTile(lvl, rows, -1, fy, z2)...)
	}

	if len(features) == 0 {
		return nil, entities.NewTileNotFoundError("no features in requested tile")
	}
	return features, nil
}

// materializeTile renders rows as tile-pixel-space features, shifting x by
// tileX (which may be the real tile x, or a +z2/-1 wrap offset).
func (idx *Index) materializeTile(lvl *level, rows []int, tileX, tileY, z2 float64) []entities.Feature {
	s := lvl.tree.Store
	features := make([]entities.Feature, 0, len(rows))
	for _, i := range rows {
		nx := s.NX(i)
		ny := s.NY(i)
		px := math.Round(idx.opts.Extent * (nx*z2 - tileX))
		py := math.Round(idx.opts.Extent * (ny*z2 - tileY))

		f := idx.materialize(lvl, i)
		f.X, f.Y = px, py
		features = append(features, f)
	}
	return features
}

// GetChildren returns the immediate children of the cluster identified by
// clusterID: either materialized sub-clusters or original input points
// (spec §4.5).
func (idx *Index) GetChildren(clusterID int) ([]entities.Feature, *entities.ClusterError) {
	originRow, originZoom := clusterid.Decode(clusterID, idx.numInput)

	lvl, err := idx.treeAt(originZoom)
	if err != nil {
		return nil, err
	}
	s := lvl.tree.Store
	if originRow >= s.Len() {
		return nil, entities.NewClusterNotFoundError("cluster id does not resolve to a row in its origin tree")
	}

	r := idx.opts.Radius / (idx.opts.Extent * math.Pow(2, float64(originZoom)-1))
	nx := s.NX(originRow)
	ny := s.NY(originRow)

	neighbors := lvl.tree.Within(nx, ny, r)

	var children []entities.Feature
	for _, i := range neighbors {
		if int(s.ParentID(i)) != clusterID {
			continue
		}
		children = append(children, idx.materialize(lvl, i))
	}

	if len(children) == 0 {
		return nil, entities.NewClusterNotFoundError("cluster has no children")
	}
	return children, nil
}

// GetLeaves returns up to limit original input points (skipping the first
// offset) reachable by depth-first descent from clusterID, using the
// whole-cluster-skip optimization described in spec §4.5.
func (idx *Index) GetLeaves(clusterID, limit, offset int) []entities.Feature {
	var leaves []entities.Feature
	idx.appendLeaves(&leaves, clusterID, limit, offset, 0)
	return leaves
}

func (idx *Index) appendLeaves(result *[]entities.Feature, clusterID, limit, offset, skipped int) int {
	children, err := idx.GetChildren(clusterID)
	if err != nil {
		return skipped
	}

	for _, child := range children {
		if child.IsCluster() {
			pointCount := child.Cluster.PointCount
			if skipped+pointCount <= offset {
				skipped += pointCount
			} else {
				skipped = idx.appendLeaves(result, child.Cluster.ClusterID, limit, offset, skipped)
			}
		} else if skipped < offset {
			skipped++
		} else {
			*result = append(*result, child)
		}

		if len(*result) == limit {
			break
		}
	}

	return skipped
}

// GetClusterExpansionZoom returns the zoom level at which clusterID stops
// being a single nested cluster chain and actually expands into more than
// one child (or a leaf), per spec §4.5.
func (idx *Index) GetClusterExpansionZoom(clusterID int) int {
	_, originZoom := clusterid.Decode(clusterID, idx.numInput)
	expansionZoom := originZoom - 1

	for expansionZoom <= idx.opts.MaxZoom {
		children, err := idx.GetChildren(clusterID)
		if err != nil {
			break
		}

		expansionZoom++

		if len(children) != 1 {
			break
		}
		if !children[0].IsCluster() {
			break
		}
		clusterID = children[0].Cluster.ClusterID
	}

	return expansionZoom
}
