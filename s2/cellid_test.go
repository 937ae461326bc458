package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellIDFromPointIsValidAndLeaf(t *testing.T) {
	p := PointFromLatLng(LatLngFromDegrees(12, 34))
	id := CellIDFromPoint(p)
	assert.True(t, id.IsValid())
	assert.True(t, id.IsLeaf())
	assert.Equal(t, maxLevel, id.Level())
}

func TestCellIDParentContainsChild(t *testing.T) {
	p := PointFromLatLng(LatLngFromDegrees(-20, 100))
	leaf := CellIDFromPoint(p)
	parent := leaf.Parent(10)
	require.True(t, parent.IsValid())
	assert.True(t, parent.Contains(leaf))
	assert.False(t, leaf.Contains(parent))
}

func TestCellIDRangeMinMaxBracketItself(t *testing.T) {
	leaf := CellIDFromPoint(PointFromLatLng(LatLngFromDegrees(0, 0)))
	parent := leaf.Parent(5)
	assert.True(t, uint64(parent.RangeMin()) <= uint64(leaf))
	assert.True(t, uint64(leaf) <= uint64(parent.RangeMax()))
}

func TestCellIDChildBeginEndBracketChildren(t *testing.T) {
	root := CellIDFromFacePosLevel(2, 0, 0, 3)
	begin := root.ChildBegin()
	end := root.ChildEnd()
	assert.True(t, begin.Less(end))
	assert.Equal(t, root.Level()+1, begin.Level())
}

func TestCellIDIntersectsSelf(t *testing.T) {
	id := CellIDFromPoint(PointFromLatLng(LatLngFromDegrees(45, 45)))
	assert.True(t, id.Intersects(id))
}

func TestCellIDFaceMatchesConstructedFace(t *testing.T) {
	for face := 0; face < 6; face++ {
		id := CellIDFromFacePosLevel(face, 0, 0, 0)
		assert.Equal(t, face, id.Face())
	}
}
