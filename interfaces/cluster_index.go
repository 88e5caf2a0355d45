package interfaces

import "github.com/miocluster/geocluster/entities"

// ClusterIndex is the query surface services and HTTP handlers depend on,
// narrowed to what they actually call rather than the concrete *cluster.Index
// type, so handlers can be tested against a fake.
type ClusterIndex interface {
	Load(points []entities.Point)
	GetClusters(bbox entities.BoundingBox, z int) ([]entities.Feature, *entities.ClusterError)
	GetTile(z, x, y int) ([]entities.Feature, *entities.ClusterError)
	GetChildren(clusterID int) ([]entities.Feature, *entities.ClusterError)
	GetLeaves(clusterID, limit, offset int) []entities.Feature
	GetClusterExpansionZoom(clusterID int) int
}
