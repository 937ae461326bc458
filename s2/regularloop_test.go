package s2

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularLoopHasRequestedVertexCountAndIsValid(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	loop := RegularLoop(center, s1.Angle(10)*s1.Degree, 8)

	require.Equal(t, 8, loop.NumVertices())
	assert.True(t, loop.IsValid())
}

func TestRegularLoopVerticesAreAllAtTheRequestedRadius(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(-10, 25))
	radius := s1.Angle(3) * s1.Degree
	loop := RegularLoop(center, radius, 12)

	for i := 0; i < loop.NumVertices(); i++ {
		d := center.Distance(loop.Vertex(i))
		assert.InDelta(t, float64(radius), float64(d), 1e-9)
	}
}

func TestRegularLoopContainsItsCenter(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(40, 40))
	loop := RegularLoop(center, s1.Angle(5)*s1.Degree, 20)
	assert.True(t, loop.Contains(center))
}

func TestRegularLoopPanicsOnTooFewVertices(t *testing.T) {
	assert.Panics(t, func() {
		RegularLoop(PointFromLatLng(LatLngFromDegrees(0, 0)), s1.Angle(1)*s1.Degree, 2)
	})
}

func TestRegularLoopForFrameUsesGivenAxes(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	f := frameFromCenter(center)
	loop := RegularLoopForFrame(f.x, f.y, f.z, s1.Angle(2)*s1.Degree, 16)
	assert.Equal(t, 16, loop.NumVertices())

	// The first vertex should lie in the plane spanned by x and z, i.e.
	// its projection onto y should be (near) zero.
	v0 := loop.Vertex(0)
	assert.InDelta(t, 0, v0.Dot(f.y), 1e-9)
}
