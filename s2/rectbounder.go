package s2

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// RectBounder computes a conservative bounding rectangle for a chain of
// edges on the sphere, one AddPoint call per vertex. Latitude and longitude
// extremes of a geodesic edge can occur strictly between its endpoints (an
// edge that passes near a pole bulges north or south of both its
// endpoints' latitudes), so RectBounder tracks that instead of just
// unioning each vertex's LatLng the way a naive bound would.
type RectBounder struct {
	hasPoint bool
	last     Point
	bound    Rect
}

// NewRectBounder returns a bounder with no points added yet.
func NewRectBounder() *RectBounder {
	return &RectBounder{bound: EmptyRect()}
}

// AddPoint adds another vertex to the edge chain.
func (rb *RectBounder) AddPoint(p Point) {
	ll := LatLngFromPoint(p)
	ptRect := Rect{
		Lat: r1.Interval{Lo: ll.Lat.Radians(), Hi: ll.Lat.Radians()},
		Lng: s1.Interval{Lo: ll.Lng.Radians(), Hi: ll.Lng.Radians()},
	}
	if !rb.hasPoint {
		rb.bound = ptRect
		rb.hasPoint = true
		rb.last = p
		return
	}
	rb.bound = rb.bound.Union(ptRect)

	// An edge whose great-circle plane passes near the z-axis can bulge
	// to a latitude more extreme than either endpoint's.
	normal := rb.last.PointCross(p)
	if normal.Z != 0 {
		if maxLat, ok := extremeLatitudeOnEdge(rb.last, p, normal.Vector, 1); ok {
			rb.bound.Lat.Hi = math.Max(rb.bound.Lat.Hi, maxLat)
		}
		if minLat, ok := extremeLatitudeOnEdge(rb.last, p, normal.Vector, -1); ok {
			rb.bound.Lat.Lo = math.Min(rb.bound.Lat.Lo, minLat)
		}
	}

	rb.last = p
}

// extremeLatitudeOnEdge returns the most extreme latitude (north if sign
// is +1, south if sign is -1) attained on the geodesic edge from a to b,
// whose plane has the given (unnormalized) normal vector, and whether that
// extreme point actually lies on the edge rather than beyond its
// endpoints.
func extremeLatitudeOnEdge(a, b Point, normal r3.Vector, sign float64) (float64, bool) {
	axis := r3.Vector{X: 0, Y: 0, Z: sign}
	extreme := normal.Cross(axis).Cross(normal)
	if extreme.Norm2() == 0 {
		return 0, false
	}
	ep := Point{extreme.Normalize()}
	if sign < 0 {
		ep = Point{ep.Mul(-1)}
	}
	if OrderedCCW(a, ep, b, Point{normal.Normalize()}) {
		return latitude(ep).Radians(), true
	}
	return 0, false
}

// Bound returns the accumulated bounding rectangle.
func (rb *RectBounder) Bound() Rect {
	return rb.bound
}
