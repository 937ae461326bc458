package s2

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// LatLng represents a point on the unit sphere as latitude-longitude
// coordinates, both in radians. Most of this package works directly with
// Point (a unit vector) instead; LatLng exists for the boundary between
// this package and callers that think in terms of geographic coordinates.
type LatLng struct {
	Lat, Lng s1.Angle
}

// LatLngFromDegrees returns a LatLng for the given coordinates in degrees.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{s1.Angle(lat) * s1.Degree, s1.Angle(lng) * s1.Degree}
}

// IsValid reports whether the LatLng is within the valid latitude and
// longitude ranges.
func (l LatLng) IsValid() bool {
	return math.Abs(l.Lat.Radians()) <= math.Pi/2 && math.Abs(l.Lng.Radians()) <= math.Pi
}

// PointFromLatLng converts a LatLng to a Point.
func PointFromLatLng(l LatLng) Point {
	phi := l.Lat.Radians()
	theta := l.Lng.Radians()
	cosphi := math.Cos(phi)
	return Point{
		Vector: r3.Vector{X: cosphi * math.Cos(theta), Y: cosphi * math.Sin(theta), Z: math.Sin(phi)},
	}
}

// LatLngFromPoint returns the LatLng corresponding to p.
func LatLngFromPoint(p Point) LatLng {
	return LatLng{latitude(p), longitude(p)}
}

// latitude returns the latitude of p in radians.
func latitude(p Point) s1.Angle {
	return s1.Angle(math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y))) * s1.Radian
}

// longitude returns the longitude of p in radians.
func longitude(p Point) s1.Angle {
	return s1.Angle(math.Atan2(p.Y, p.X)) * s1.Radian
}

// Distance returns the angle between two LatLngs.
func (l LatLng) Distance(o LatLng) s1.Angle {
	return PointFromLatLng(l).Distance(PointFromLatLng(o))
}

func (l LatLng) String() string {
	return fmt.Sprintf("(%.10g, %.10g)", l.Lat.Degrees(), l.Lng.Degrees())
}
