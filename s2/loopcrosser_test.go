package s2

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreBoundariesCrossingDetectsCrossingBoundaries(t *testing.T) {
	a := makeLoop("0:0, 0:2, 2:2, 2:0")
	b := makeLoop("1:1, 1:3, 3:3, 3:1")

	var p IntersectsWedgeProcessor
	crosser := NewLoopCrosser(a, b)
	crossed := crosser.AreBoundariesCrossing(&p)
	assert.True(t, crossed, "overlapping squares' boundaries should cross")
}

func TestAreBoundariesCrossingFalseForNestedLoops(t *testing.T) {
	outer := makeLoop("0:0, 0:10, 10:10, 10:0")
	inner := makeLoop("3:3, 3:4, 4:4, 4:3")

	var p IntersectsWedgeProcessor
	crosser := NewLoopCrosser(outer, inner)
	crossed := crosser.AreBoundariesCrossing(&p)
	assert.False(t, crossed)
	require.True(t, outer.ContainsLoop(inner))
}

func TestAreBoundariesCrossingUsesIndexedPathForLargeLoops(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	a := RegularLoop(center, s1.Angle(10)*s1.Degree, edgeQueryMinEdges+5)
	b := RegularLoop(center, s1.Angle(10)*s1.Degree, edgeQueryMinEdges+5)
	require.GreaterOrEqual(t, len(a.vertices), edgeQueryMinEdges)
	require.GreaterOrEqual(t, len(b.vertices), edgeQueryMinEdges)

	var p IntersectsWedgeProcessor
	crosser := NewLoopCrosser(a, b)
	// Identical regular loops share every vertex; their boundaries should
	// not be reported as properly crossing.
	crossed := crosser.AreBoundariesCrossing(&p)
	assert.False(t, crossed)
}
