package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRowAndAccessors(t *testing.T) {
	s := New(2)
	s.AppendRow(0.1, 0.2, 16, 5, NoParent, 1)
	s.AppendRow(0.3, 0.4, 15, 100, 5, 3)

	require.Equal(t, 2, s.Len())

	assert.Equal(t, 0.1, s.NX(0))
	assert.Equal(t, 0.2, s.NY(0))
	assert.Equal(t, 16.0, s.ZoomProcessed(0))
	assert.Equal(t, 5.0, s.IDOrIndex(0))
	assert.Equal(t, float64(NoParent), s.ParentID(0))
	assert.Equal(t, 1.0, s.Weight(0))

	nx, ny, zp, id, parent, w := s.Row(1)
	assert.Equal(t, 0.3, nx)
	assert.Equal(t, 0.4, ny)
	assert.Equal(t, 15.0, zp)
	assert.Equal(t, 100.0, id)
	assert.Equal(t, 5.0, parent)
	assert.Equal(t, 3.0, w)
}

func TestSetters(t *testing.T) {
	s := New(1)
	s.AppendRow(0, 0, 10, 0, NoParent, 1)

	s.SetZoomProcessed(0, 3)
	s.SetParentID(0, 42)

	assert.Equal(t, 3.0, s.ZoomProcessed(0))
	assert.Equal(t, 42.0, s.ParentID(0))
}

func TestTotalWeight(t *testing.T) {
	s := New(3)
	s.AppendRow(0, 0, 0, 0, NoParent, 1)
	s.AppendRow(0, 0, 0, 1, NoParent, 4)
	s.AppendRow(0, 0, 0, 2, NoParent, 2)

	assert.Equal(t, 7.0, s.TotalWeight())
}

func TestNewFromRowsWrapsWithoutCopy(t *testing.T) {
	rows := []float64{0.5, 0.5, 0, 0, NoParent, 1}
	s := NewFromRows(rows)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 0.5, s.NX(0))
}

func TestEmptyStore(t *testing.T) {
	s := New(0)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0.0, s.TotalWeight())
}
