package apiHandlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/miocluster/geocluster/entities"
)

func TestToDTOLeafOmitsCluster(t *testing.T) {
	id := uint32(7)
	f := entities.Feature{X: 1, Y: 2, ID: &id, Payload: "note"}

	dto := toDTO(f)
	assert.Equal(t, 1.0, dto.X)
	assert.Equal(t, 2.0, dto.Y)
	assert.Equal(t, &id, dto.ID)
	assert.Equal(t, "note", dto.Payload)
	assert.Nil(t, dto.Cluster)
}

func TestToDTOClusterCopiesProperties(t *testing.T) {
	f := entities.Feature{
		X: 5, Y: 6,
		Cluster: &entities.ClusterProperties{
			ClusterID:             123,
			PointCount:            42,
			PointCountAbbreviated: "42",
		},
	}

	dto := toDTO(f)
	assert.Nil(t, dto.ID)
	assert.NotNil(t, dto.Cluster)
	assert.Equal(t, 123, dto.Cluster.ClusterID)
	assert.Equal(t, 42, dto.Cluster.PointCount)
	assert.Equal(t, "42", dto.Cluster.PointCountAbbreviated)
}

func TestToDTOsPreservesOrderAndLength(t *testing.T) {
	idA, idB := uint32(1), uint32(2)
	features := []entities.Feature{
		{X: 0, Y: 0, ID: &idA},
		{X: 1, Y: 1, ID: &idB},
	}

	dtos := toDTOs(features)
	assert.Len(t, dtos, 2)
	assert.Equal(t, &idA, dtos[0].ID)
	assert.Equal(t, &idB, dtos[1].ID)
}

func TestToDTOsEmptyInputYieldsEmptySlice(t *testing.T) {
	dtos := toDTOs(nil)
	assert.NotNil(t, dtos)
	assert.Empty(t, dtos)
}

func TestStatusForClusterError(t *testing.T) {
	assert.Equal(t, 400, statusForClusterError(entities.NewTreeNotFoundError("x")))
	assert.Equal(t, 404, statusForClusterError(entities.NewClusterNotFoundError("x")))
	assert.Equal(t, 404, statusForClusterError(entities.NewTileNotFoundError("x")))
}
