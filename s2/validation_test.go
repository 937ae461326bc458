package s2

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnitLength(t *testing.T) {
	assert.True(t, isUnitLength(PointFromCoords(1, 0, 0)))
	assert.False(t, isUnitLength(Point{Vector: r3.Vector{X: 2, Y: 0, Z: 0}}))
}

func TestFindValidationErrorRejectsNonUnitLengthVertex(t *testing.T) {
	// Build a loop whose vertex slice is assembled directly (bypassing
	// PointFromCoords's normalization) so one vertex is not unit length.
	l := &Loop{vertices: []Point{
		{Vector: r3.Vector{X: 2, Y: 0, Z: 0}},
		PointFromLatLng(LatLngFromDegrees(0, 1)),
		PointFromLatLng(LatLngFromDegrees(1, 1)),
	}}
	err := l.FindValidationError()
	require.NotNil(t, err)
	assert.Equal(t, ErrNotUnitLength, err.Kind)
}

func TestFindValidationErrorAcceptsWellFormedLoop(t *testing.T) {
	loop := makeLoop("0:0, 0:1, 1:1, 1:0")
	assert.Nil(t, loop.FindValidationError())
	assert.True(t, loop.IsValid())
}

func TestFindValidationErrorAcceptsSentinelLoops(t *testing.T) {
	assert.True(t, EmptyLoop().IsValid())
	assert.True(t, FullLoop().IsValid())
}

func TestNonAdjacent(t *testing.T) {
	n := 5
	assert.False(t, nonAdjacent(0, 0, n))
	assert.False(t, nonAdjacent(0, 1, n))
	assert.False(t, nonAdjacent(0, n-1, n))
	assert.True(t, nonAdjacent(0, 2, n))
}
