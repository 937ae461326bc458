/*
Copyright 2014 Google Inc. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package s2

import (
	"encoding/binary"
	"math"

	"github.com/dgryski/go-farm"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Point represents a point on the unit sphere as a normalized 3D vector.
// Fields should be treated as read-only; use one of the factory functions.
type Point struct {
	r3.Vector
}

// PointFromCoords creates a new normalized point from coordinates. If the
// coordinates cannot be normalized (all zero) the origin point is returned.
func PointFromCoords(x, y, z float64) Point {
	if x == 0 && y == 0 && z == 0 {
		return OriginPoint()
	}
	return Point{r3.Vector{X: x, Y: y, Z: z}.Normalize()}
}

// OriginPoint returns a fixed reference point used as the starting point
// for all edge-crossing-based containment tests. It is deliberately chosen
// to avoid the poles and any low-level cell boundary.
func OriginPoint() Point {
	return Point{r3.Vector{X: -0.0099994664350250197, Y: 0.0025924542609324121, Z: 0.99994664350250195}}
}

// emptyVertex returns the canonical vertex of the empty loop. Its z
// coordinate is non-negative, distinguishing it from fullVertex.
func emptyVertex() Point {
	return Point{r3.Vector{X: 0, Y: 0, Z: 1}}
}

// fullVertex returns the canonical vertex of the full loop: the antipode
// of emptyVertex.
func fullVertex() Point {
	return Point{r3.Vector{X: 0, Y: 0, Z: -1}}
}

// PointCross returns a point orthogonal to both p and op that varies
// continuously as p and op vary continuously, including when p == op or
// p == -op. Used instead of the raw cross product for numerical stability.
func (p Point) PointCross(op Point) Point {
	x := p.Add(op.Vector).Cross(op.Sub(p.Vector))
	if x == (r3.Vector{}) {
		return Point{p.Ortho()}
	}
	return Point{x}
}

// OrderedCCW reports whether the edges OA, OB and OC are encountered in
// that order while sweeping counterclockwise around O. Equivalently,
// whether B lies in the inclusive range of angles that starts at A and
// extends CCW to C.
func OrderedCCW(a, b, c, o Point) bool {
	sum := 0
	if RobustSign(b, o, a) != Clockwise {
		sum++
	}
	if RobustSign(c, o, b) != Clockwise {
		sum++
	}
	if RobustSign(a, o, c) == CounterClockwise {
		sum++
	}
	return sum >= 2
}

// Distance returns the angle between two points.
func (p Point) Distance(b Point) s1.Angle {
	return p.Vector.Angle(b.Vector)
}

// ApproxEqual reports whether two points are close enough to be considered
// equal for the purposes of loop boundary comparisons.
func (p Point) ApproxEqual(other Point) bool {
	return p.Vector.Angle(other.Vector) <= s1.Angle(epsilon)
}

// ApproxEqualWithin reports whether the two points are within maxError
// radians of each other.
func (p Point) ApproxEqualWithin(other Point, maxError float64) bool {
	return p.Vector.Angle(other.Vector) <= s1.Angle(maxError)
}

// fingerprint returns a fast, well-distributed 64-bit hash of p's
// coordinates, for use as a bucket key in FindVertex's lookup map once a
// loop is queried often enough to justify building one. Farm's hash is
// used elsewhere in this codebase's lineage for exactly this kind of
// high-volume key sharding, so vertex lookup follows the same convention
// rather than relying on Go's built-in (and unexported) struct hashing.
func (p Point) fingerprint() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(p.X))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(p.Y))
	binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(p.Z))
	return farm.Fingerprint64(buf[:])
}

// LessThan provides an arbitrary but well-defined total order on points,
// used to pick a canonical first vertex when computing a turning angle.
func (p Point) LessThan(op r3.Vector) bool {
	if p.X != op.X {
		return p.X < op.X
	}
	if p.Y != op.Y {
		return p.Y < op.Y
	}
	return p.Z < op.Z
}

// DistanceToEdge returns the great-circle distance from p to the edge (a,b),
// measured to the nearest point on the edge (including its endpoints).
func (p Point) DistanceToEdge(a, b Point) s1.Angle {
	if a == b {
		return p.Distance(a)
	}
	normal := a.PointCross(b)
	// Project p onto the great circle through a and b, then clamp to the
	// edge if the projection falls outside it.
	c := Point{normal.Cross(p.Vector).Cross(normal.Vector).Normalize()}
	if RobustSign(a, b, c) != RobustSign(a, b, p) {
		// The projection lies on the edge's great circle but on the wrong
		// side of the sphere to be "between" a and b; use the nearer
		// endpoint instead.
		return minAngle(p.Distance(a), p.Distance(b))
	}
	// c lies on the great circle; determine whether it falls between a
	// and b, and clamp it to whichever endpoint it has passed.
	if OrderedCCW(a, c, b, Point{normal.Normalize()}) {
		return p.Distance(c)
	}
	return minAngle(p.Distance(a), p.Distance(b))
}

func minAngle(a, b s1.Angle) s1.Angle {
	if a < b {
		return a
	}
	return b
}

// PointArea returns the area of the spherical triangle ABC using
// l'Huilier's theorem, falling back to Girard's formula for large
// triangles where l'Huilier's method loses precision.
func PointArea(a, b, c Point) float64 {
	sa := float64(b.Angle(c.Vector))
	sb := float64(c.Angle(a.Vector))
	sc := float64(a.Angle(b.Vector))
	s := 0.5 * (sa + sb + sc)
	if s >= 3e-4 {
		dmin := s - math.Max(sa, math.Max(sb, sc))
		if dmin < 1e-2*s*s*s*s*s {
			area := GirardArea(a, b, c)
			if dmin < s*0.1*area {
				return area
			}
		}
	}
	return 4 * math.Atan(math.Sqrt(math.Max(0.0, math.Tan(0.5*s)*math.Tan(0.5*(s-sa))*
		math.Tan(0.5*(s-sb))*math.Tan(0.5*(s-sc)))))
}

// GirardArea returns the area of the triangle ABC using Girard's formula.
// Faster than PointArea but less accurate for small triangles.
func GirardArea(a, b, c Point) float64 {
	ab := a.PointCross(b)
	bc := b.PointCross(c)
	ac := a.PointCross(c)
	area := float64(ab.Angle(ac.Vector) - ab.Angle(bc.Vector) + bc.Angle(ac.Vector))
	if area < 0 {
		area = 0
	}
	return area
}

// SignedArea returns a positive value for CCW triangles and negative for CW.
func SignedArea(a, b, c Point) float64 {
	return float64(RobustSign(a, b, c)) * PointArea(a, b, c)
}

// TrueCentroid returns the true (mass) centroid of triangle ABC multiplied
// by its signed area. Unnormalized, so that centroids of adjacent triangles
// can be summed directly.
func TrueCentroid(a, b, c Point) Point {
	ra := 1.0
	if sa := float64(b.Distance(c)); sa != 0 {
		ra = sa / math.Sin(sa)
	}
	rb := 1.0
	if sb := float64(c.Distance(a)); sb != 0 {
		rb = sb / math.Sin(sb)
	}
	rc := 1.0
	if sc := float64(a.Distance(b)); sc != 0 {
		rc = sc / math.Sin(sc)
	}

	x := r3.Vector{X: a.X, Y: b.X - a.X, Z: c.X - a.X}
	y := r3.Vector{X: a.Y, Y: b.Y - a.Y, Z: c.Y - a.Y}
	z := r3.Vector{X: a.Z, Y: b.Z - a.Z, Z: c.Z - a.Z}
	r := r3.Vector{X: ra, Y: rb - ra, Z: rc - ra}

	return Point{r3.Vector{
		X: y.Cross(z).Dot(r),
		Y: z.Cross(x).Dot(r),
		Z: x.Cross(y).Dot(r),
	}.Mul(0.5)}
}

// Angle returns the interior angle at vertex B of triangle ABC, in [0, pi].
func Angle(a, b, c Point) s1.Angle {
	return a.PointCross(b).Angle(c.PointCross(b).Vector)
}

// TurnAngle returns the exterior angle at vertex B of triangle ABC: positive
// if ABC turns left (CCW), negative if it turns right. This is the
// geodesic curvature contributed by vertex B.
func TurnAngle(a, b, c Point) s1.Angle {
	angle := a.PointCross(b).Angle(b.PointCross(c).Vector)
	if RobustSign(a, b, c) == CounterClockwise {
		return angle
	}
	return -angle
}
