package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellVerticesAreUnitLength(t *testing.T) {
	cell := CellFromCellID(CellIDFromFacePosLevel(0, 0, 0, 0))
	for k := 0; k < 4; k++ {
		v := cell.Vertex(k)
		assert.True(t, isUnitLength(v))
	}
}

func TestCellContainsItsOwnVertex(t *testing.T) {
	id := CellIDFromPoint(PointFromLatLng(LatLngFromDegrees(10, 10))).Parent(5)
	cell := CellFromCellID(id)
	// The cell should contain at least one of its own corner vertices.
	assert.True(t, cell.ContainsPoint(cell.Vertex(0)))
}

func TestCellRectBoundContainsAllVertices(t *testing.T) {
	cell := CellFromCellID(CellIDFromFacePosLevel(1, 0, 0, 4))
	bound := cell.RectBound()
	for k := 0; k < 4; k++ {
		assert.True(t, bound.Contains(cell.Vertex(k)))
	}
}

func TestCellCapBoundContainsAllVertices(t *testing.T) {
	cell := CellFromCellID(CellIDFromFacePosLevel(1, 0, 0, 4))
	bound := cell.CapBound()
	for k := 0; k < 4; k++ {
		assert.True(t, bound.ContainsPoint(cell.Vertex(k)))
	}
}

func TestNewLoopFromCellIsValid(t *testing.T) {
	cell := CellFromCellID(CellIDFromFacePosLevel(3, 0, 0, 6))
	loop := NewLoopFromCell(cell)
	assert.True(t, loop.IsValid())
	assert.Equal(t, 4, loop.NumVertices())
}
