package s2

import "github.com/goedderz/s2geometry/x"

// IsValid reports whether l satisfies every structural invariant a loop
// must hold: unit-length vertices, enough of them (unless it is the empty
// or full sentinel), no duplicate adjacent vertices, and no crossing
// between non-adjacent edges. Use FindValidationError to get the reason a
// loop failed.
func (l *Loop) IsValid() bool {
	return l.FindValidationError() == nil
}

// FindValidationError returns the first structural problem found with l,
// or nil if l is well-formed. Checks run cheapest-first so that a loop
// with many problems reports the one a caller is most likely to want
// fixed before anything else is even attempted: there is no point
// testing for self-intersection on a loop that does not even have
// unit-length vertices.
func (l *Loop) FindValidationError() *ValidationError {
	x.AssertTruef(l.subregion.ContainsRect(l.bound),
		"loop's subregion bound %v does not contain its bound %v", l.subregion, l.bound)
	for i, v := range l.vertices {
		if !isUnitLength(v) {
			return newValidationError(ErrNotUnitLength, i, "vertex %d is not unit length", i)
		}
	}
	if len(l.vertices) < 3 {
		if l.isEmptyOrFull() {
			return nil
		}
		return newValidationError(ErrNotEnoughVertices, -1,
			"non-empty, non-full loops must have at least 3 vertices, got %d", len(l.vertices))
	}
	for i := 0; i < len(l.vertices); i++ {
		if l.vertex(i) == l.vertex(i+1) {
			return newValidationError(ErrDuplicateVertices, i, "edge %d is degenerate (duplicate vertex)", i)
		}
	}
	if i, j, ok := l.findSelfIntersection(); ok {
		return newValidationError(ErrSelfIntersection, i, "edges %d and %d cross", i, j)
	}
	return nil
}

func isUnitLength(p Point) bool {
	n2 := p.Vector.Dot(p.Vector)
	return n2 > 1-1e-6 && n2 < 1+1e-6
}

// findSelfIntersection reports the first pair of non-adjacent edges that
// cross, scanning edges within each indexed cell so that the common case
// of a large, mostly-straight loop does not pay a full O(N^2) edge-pair
// cost just to validate it. Shared endpoints between adjacent edges are
// excluded by construction: the loop only considers the two edges'
// indices genuinely non-adjacent, cyclically.
func (l *Loop) findSelfIntersection() (i, j int, crossing bool) {
	n := len(l.vertices)
	l.ensureIndex()
	it := l.index.Iterator()
	for !it.Done() {
		edges := it.Edges()
		for x := 0; x < len(edges); x++ {
			for y := x + 1; y < len(edges); y++ {
				ei, ej := edges[x], edges[y]
				if !nonAdjacent(ei, ej, n) {
					continue
				}
				if SimpleCrossing(l.vertex(ei), l.vertex(ei+1), l.vertex(ej), l.vertex(ej+1)) {
					if ei < ej {
						return ei, ej, true
					}
					return ej, ei, true
				}
			}
		}
		it.Next()
	}
	return 0, 0, false
}

func nonAdjacent(i, j, n int) bool {
	if i == j {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}
	return d != 1 && d != n-1
}
