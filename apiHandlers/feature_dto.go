package apiHandlers

import "github.com/miocluster/geocluster/entities"

// featureDTO is the JSON wire shape for a query-layer Feature: either a
// materialized cluster (Cluster set) or an original input point (ID set).
type featureDTO struct {
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	ID      *uint32     `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	Cluster *clusterDTO `json:"cluster,omitempty"`
}

type clusterDTO struct {
	ClusterID             int         `json:"cluster_id"`
	PointCount            int         `json:"point_count"`
	PointCountAbbreviated string      `json:"point_count_abbreviated"`
	Merged                interface{} `json:"merged,omitempty"`
}

func toDTO(f entities.Feature) featureDTO {
	dto := featureDTO{X: f.X, Y: f.Y, ID: f.ID, Payload: f.Payload}
	if f.Cluster != nil {
		dto.Cluster = &clusterDTO{
			ClusterID:             f.Cluster.ClusterID,
			PointCount:            f.Cluster.PointCount,
			PointCountAbbreviated: f.Cluster.PointCountAbbreviated,
			Merged:                f.Cluster.Merged,
		}
	}
	return dto
}

func toDTOs(features []entities.Feature) []featureDTO {
	dtos := make([]featureDTO, 0, len(features))
	for _, f := range features {
		dtos = append(dtos, toDTO(f))
	}
	return dtos
}
