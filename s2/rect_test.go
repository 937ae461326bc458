package s2

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
)

func TestEmptyAndFullRect(t *testing.T) {
	assert.True(t, EmptyRect().IsEmpty())
	assert.True(t, FullRect().IsFull())
	assert.False(t, EmptyRect().Contains(PointFromCoords(1, 0, 0)))
	assert.True(t, FullRect().Contains(PointFromCoords(1, 0, 0)))
}

func TestRectFromLatLngIsAPoint(t *testing.T) {
	ll := LatLngFromDegrees(10, 20)
	r := RectFromLatLng(ll)
	assert.True(t, r.IsPoint())
	assert.True(t, r.ContainsLatLng(ll))
}

func TestRectAddPointGrowsBound(t *testing.T) {
	r := RectFromLatLng(LatLngFromDegrees(0, 0))
	r = r.AddPoint(PointFromLatLng(LatLngFromDegrees(10, 10)))
	assert.True(t, r.ContainsLatLng(LatLngFromDegrees(0, 0)))
	assert.True(t, r.Contains(PointFromLatLng(LatLngFromDegrees(10, 10))))
	assert.False(t, r.ContainsLatLng(LatLngFromDegrees(20, 20)))
}

func TestRectUnionContainsBoth(t *testing.T) {
	a := RectFromLatLng(LatLngFromDegrees(0, 0))
	b := RectFromLatLng(LatLngFromDegrees(5, 5))
	u := a.Union(b)
	assert.True(t, u.ContainsRect(a))
	assert.True(t, u.ContainsRect(b))
}

func TestRectExpandedGrowsInBothDirections(t *testing.T) {
	r := RectFromLatLng(LatLngFromDegrees(0, 0))
	margin := LatLng{Lat: s1.Angle(1) * s1.Degree, Lng: s1.Angle(1) * s1.Degree}
	expanded := r.Expanded(margin)
	assert.True(t, expanded.ContainsRect(r))
	assert.True(t, expanded.ContainsLatLng(LatLngFromDegrees(0.5, 0.5)))
}

func TestRectCapBoundContainsRectPoints(t *testing.T) {
	r := RectFromLatLng(LatLngFromDegrees(0, 0)).AddPoint(PointFromLatLng(LatLngFromDegrees(10, 10)))
	cap := r.CapBound()
	assert.True(t, cap.ContainsPoint(PointFromLatLng(LatLngFromDegrees(0, 0))))
	assert.True(t, cap.ContainsPoint(PointFromLatLng(LatLngFromDegrees(10, 10))))
}
