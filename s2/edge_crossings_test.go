package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleCrossingDetectsActualCrossing(t *testing.T) {
	a := PointFromLatLng(LatLngFromDegrees(0, -1))
	b := PointFromLatLng(LatLngFromDegrees(0, 1))
	c := PointFromLatLng(LatLngFromDegrees(-1, 0))
	d := PointFromLatLng(LatLngFromDegrees(1, 0))
	assert.True(t, SimpleCrossing(a, b, c, d))
}

func TestSimpleCrossingRejectsNonCrossingEdges(t *testing.T) {
	a := PointFromLatLng(LatLngFromDegrees(0, -1))
	b := PointFromLatLng(LatLngFromDegrees(0, 1))
	c := PointFromLatLng(LatLngFromDegrees(10, -1))
	d := PointFromLatLng(LatLngFromDegrees(10, 1))
	assert.False(t, SimpleCrossing(a, b, c, d))
}

func TestEdgeCrosserMatchesSimpleCrossingAlongAChain(t *testing.T) {
	a := PointFromLatLng(LatLngFromDegrees(0, -1))
	b := PointFromLatLng(LatLngFromDegrees(0, 1))
	crosser := NewEdgeCrosser(a, b)

	points := []Point{
		PointFromLatLng(LatLngFromDegrees(-1, 0)),
		PointFromLatLng(LatLngFromDegrees(1, 0)),
		PointFromLatLng(LatLngFromDegrees(10, 0)),
	}
	crosser.RestartAt(points[0])
	for i := 1; i < len(points); i++ {
		got := crosser.RobustCrossing(points[i]) > 0
		want := SimpleCrossing(a, b, points[i-1], points[i])
		assert.Equal(t, want, got)
	}
}

func TestVertexCrossingSharedEndpoint(t *testing.T) {
	a := PointFromLatLng(LatLngFromDegrees(0, 0))
	b := PointFromLatLng(LatLngFromDegrees(0, 10))
	c := PointFromLatLng(LatLngFromDegrees(0, 0))
	d := PointFromLatLng(LatLngFromDegrees(10, 5))
	// Shares vertex a == c; crossing iff b,a,d turns CCW (or b==d).
	want := b == d || RobustSign(a, b, d) == CounterClockwise
	assert.Equal(t, want, VertexCrossing(a, b, c, d))
}
