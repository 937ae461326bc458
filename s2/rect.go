package s2

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Rect represents a closed latitude-longitude rectangle. It is used as a
// cheap bounding region for loops: computing whether two rectangles can
// possibly intersect is far cheaper than testing every edge pair, so most
// loop-vs-loop and loop-vs-point queries check the bounds first and only
// fall through to exact geometry when the bounds fail to resolve the
// question outright.
//
// The rectangle bounds latitude with a plain interval (which cannot wrap)
// and longitude with an interval that can wrap around the antimeridian; a
// rectangle whose longitude interval is full covers every longitude,
// including exactly at a pole.
type Rect struct {
	Lat r1.Interval
	Lng s1.Interval
}

// EmptyRect returns the empty rectangle, which contains no points.
func EmptyRect() Rect {
	return Rect{r1.EmptyInterval(), s1.EmptyInterval()}
}

// FullRect returns the full rectangle, which contains every point.
func FullRect() Rect {
	return Rect{r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2}, s1.FullInterval()}
}

// RectFromLatLng returns a rectangle containing a single point.
func RectFromLatLng(ll LatLng) Rect {
	return Rect{
		Lat: r1.Interval{Lo: ll.Lat.Radians(), Hi: ll.Lat.Radians()},
		Lng: s1.Interval{Lo: ll.Lng.Radians(), Hi: ll.Lng.Radians()},
	}
}

// IsValid reports whether the rectangle is well-formed.
func (r Rect) IsValid() bool {
	return math.Abs(r.Lat.Lo) <= math.Pi/2 && math.Abs(r.Lat.Hi) <= math.Pi/2 &&
		r.Lng.IsValid() &&
		(r.Lat.IsEmpty() == r.Lng.IsEmpty())
}

// IsEmpty reports whether the rectangle is empty.
func (r Rect) IsEmpty() bool {
	return r.Lat.IsEmpty()
}

// IsFull reports whether the rectangle covers the whole sphere.
func (r Rect) IsFull() bool {
	return r.Lat == FullRect().Lat && r.Lng.IsFull()
}

// IsPoint reports whether the rectangle is a single point.
func (r Rect) IsPoint() bool {
	return r.Lat.Lo == r.Lat.Hi && r.Lng.Lo == r.Lng.Hi
}

// Center returns the rectangle's center point.
func (r Rect) Center() LatLng {
	return LatLng{s1.Angle(r.Lat.Center()), s1.Angle(r.Lng.Center())}
}

// ContainsLatLng reports whether the rectangle contains ll.
func (r Rect) ContainsLatLng(ll LatLng) bool {
	return r.Lat.Contains(ll.Lat.Radians()) && r.Lng.Contains(ll.Lng.Radians())
}

// Contains reports whether the rectangle contains the point p.
func (r Rect) Contains(p Point) bool {
	return r.ContainsLatLng(LatLngFromPoint(p))
}

// ContainsRect reports whether this rectangle contains the other.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Lat.ContainsInterval(other.Lat) && r.Lng.ContainsInterval(other.Lng)
}

// Intersects reports whether this rectangle and the other share any point.
func (r Rect) Intersects(other Rect) bool {
	return r.Lat.Intersects(other.Lat) && r.Lng.Intersects(other.Lng)
}

// Union returns the smallest rectangle containing both this and the other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Lat: r.Lat.Union(other.Lat),
		Lng: r.Lng.Union(other.Lng),
	}
}

// AddPoint returns the smallest rectangle containing this rectangle and p.
func (r Rect) AddPoint(p Point) Rect {
	ll := LatLngFromPoint(p)
	return Rect{
		Lat: r.Lat.AddPoint(ll.Lat.Radians()),
		Lng: r.Lng.AddPoint(ll.Lng.Radians()),
	}
}

// Expanded returns a rectangle expanded by margin in each direction.
// Negative margins shrink the rectangle; a shrunk rectangle can become
// empty if the margins exceed the rectangle's extent.
func (r Rect) Expanded(margin LatLng) Rect {
	lat := r.Lat.Expanded(margin.Lat.Radians())
	lng := r.Lng.Expanded(margin.Lng.Radians())
	if lat.IsEmpty() || lng.IsEmpty() {
		return EmptyRect()
	}
	lat = lat.Intersection(FullRect().Lat)
	if lat.IsEmpty() {
		return EmptyRect()
	}
	return Rect{lat, lng}
}

// CapBound returns a bounding cap for the rectangle. This mirrors the
// approach used by RectBounder in reverse: rather than exact, it is a
// conservative approximation good enough for a first-pass region check.
func (r Rect) CapBound() Cap {
	if r.IsEmpty() {
		return EmptyCap()
	}
	var poleZ, poleAngle float64
	if r.Lat.Lo+r.Lat.Hi < 0 {
		poleZ = -1
		poleAngle = math.Pi/2 + r.Lat.Hi
	} else {
		poleZ = 1
		poleAngle = math.Pi/2 - r.Lat.Lo
	}
	poleCap := CapFromCenterAngle(Point{r3.Vector{X: 0, Y: 0, Z: poleZ}}, s1.Angle(poleAngle))

	if math.Remainder(r.Lng.Hi-r.Lng.Lo, 2*math.Pi) >= 0 && r.Lng.Hi-r.Lng.Lo < 2*math.Pi {
		midCap := CapFromPoint(PointFromLatLng(r.Center()))
		midCap = midCap.AddPoint(PointFromLatLng(LatLng{s1.Angle(r.Lat.Lo), s1.Angle(r.Lng.Lo)}))
		midCap = midCap.AddPoint(PointFromLatLng(LatLng{s1.Angle(r.Lat.Lo), s1.Angle(r.Lng.Hi)}))
		midCap = midCap.AddPoint(PointFromLatLng(LatLng{s1.Angle(r.Lat.Hi), s1.Angle(r.Lng.Lo)}))
		midCap = midCap.AddPoint(PointFromLatLng(LatLng{s1.Angle(r.Lat.Hi), s1.Angle(r.Lng.Hi)}))
		if midCap.height < poleCap.height {
			return midCap
		}
	}
	return poleCap
}
