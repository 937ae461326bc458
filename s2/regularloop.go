package s2

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"github.com/goedderz/s2geometry/x"
)

// RegularLoop constructs a loop with the given number of vertices, centered
// at center, with each vertex exactly radius away from center. Vertices are
// placed at equal angular spacing, giving a regular spherical polygon
// (approximating a spherical cap's boundary for large numVertices).
//
// numVertices must be at least 3; radius must be in (0, pi).
func RegularLoop(center Point, radius s1.Angle, numVertices int) *Loop {
	return regularLoopForFrame(frameFromCenter(center), radius, numVertices)
}

// RegularLoopForFrame is like RegularLoop but places the loop relative to
// an explicit orthonormal frame, so the caller controls the orientation of
// the first vertex instead of it being picked arbitrarily from center.
func RegularLoopForFrame(fx, fy, fz r3.Vector, radius s1.Angle, numVertices int) *Loop {
	return regularLoopForFrame(frame{x: fx, y: fy, z: fz}, radius, numVertices)
}

// frame is a right-handed orthonormal basis (x, y, z) with z pointing at
// the frame's "center" direction, used to place regular-loop vertices in
// the plane perpendicular to z.
type frame struct {
	x, y, z r3.Vector
}

// frameFromCenter builds an arbitrary orthonormal frame whose z axis is
// center. x and y are unspecified beyond being perpendicular to z and to
// each other, following r3.Vector.Ortho's convention of picking a
// deterministic perpendicular vector rather than an arbitrary one, so the
// same center always yields the same frame.
func frameFromCenter(center Point) frame {
	z := center.Vector
	x := z.Ortho()
	y := z.Cross(x)
	return frame{x: x, y: y, z: z}
}

func regularLoopForFrame(f frame, radius s1.Angle, numVertices int) *Loop {
	x.AssertTruef(numVertices >= 3, "RegularLoop requires at least 3 vertices, got %d", numVertices)

	r := float64(radius)
	planeRadius := math.Sin(r)
	planeDistance := math.Cos(r)

	vertices := make([]Point, numVertices)
	for i := 0; i < numVertices; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numVertices)
		p := f.z.Mul(planeDistance).
			Add(f.x.Mul(planeRadius * math.Cos(angle))).
			Add(f.y.Mul(planeRadius * math.Sin(angle)))
		vertices[i] = Point{p.Normalize()}
	}
	return NewLoopFromPoints(vertices)
}
