package s2

// EdgeCrosser computes whether a fixed edge AB crosses a sequence of query
// edges. It is stateful: callers walk a chain of query points sharing
// endpoints with the previous query, which lets the crosser reuse most of
// the work from the previous call instead of recomputing it from scratch.
// This is the workhorse underneath point-in-loop containment (walking the
// edges of a loop against a fixed ray from the origin to the query point)
// and loop-vs-loop boundary crossing counts.
type EdgeCrosser struct {
	a, b    Point
	aCrossB Point
	c       Point
	acb     Direction
}

// NewEdgeCrosser returns a crosser for the fixed edge AB. Call RestartAt (or
// ChainCrossing) before the first RobustCrossing call to establish the
// initial query point.
func NewEdgeCrosser(a, b Point) *EdgeCrosser {
	return &EdgeCrosser{
		a:       a,
		b:       b,
		aCrossB: a.PointCross(b),
	}
}

// RestartAt sets the current query point to c, without testing for a
// crossing. The next call to RobustCrossing or ChainCrossingSign tests the
// edge from c to the point passed to that call.
func (e *EdgeCrosser) RestartAt(c Point) {
	e.c = c
	e.acb = RobustSign(e.a, e.b, e.c)
}

// RobustCrossing reports whether the edge AB crosses the edge from the
// current query point to d. It returns:
//
//	 1 if the edges cross
//	 0 if the current point or d coincides with (or is antipodal to) A or B
//	-1 if the edges do not cross
//
// After the call the current query point advances to d, regardless of the
// return value, so that the next call tests the next edge in the chain.
func (e *EdgeCrosser) RobustCrossing(d Point) int {
	bda := RobustSign(e.a, e.b, d)
	if e.acb == Indeterminate {
		e.acb = RobustSign(e.a, e.b, e.c)
	}
	result := -1
	if e.acb == Indeterminate || bda == Indeterminate {
		result = 0
	} else if e.acb != bda {
		cbd := RobustSign(e.c, e.b, d)
		dac := RobustSign(d, e.a, e.c)
		if cbd == bda && dac == bda {
			result = 1
		}
	}
	e.c = d
	e.acb = bda
	return result
}

// EdgeOrVertexCrossing reports whether the edge AB crosses the edge from
// the current query point to d, where shared vertices between the two
// edges count as a crossing only if the two edges genuinely cross at that
// vertex (used when a loop boundary may touch the query ray at a vertex).
func (e *EdgeCrosser) EdgeOrVertexCrossing(d Point) bool {
	c := e.c
	crossing := e.RobustCrossing(d)
	if crossing < 0 {
		return false
	}
	if crossing > 0 {
		return true
	}
	return VertexCrossing(e.a, e.b, c, d)
}

// SimpleCrossing reports whether edge AB crosses edge CD, computed from
// scratch without the stateful chaining that EdgeCrosser provides. Used for
// one-off crossing tests where a chain of queries does not apply.
func SimpleCrossing(a, b, c, d Point) bool {
	acb := RobustSign(a, b, c)
	bda := RobustSign(a, b, d)
	if acb == bda {
		return false
	}
	cbd := RobustSign(c, b, d)
	dac := RobustSign(d, a, c)
	return cbd == bda && dac == bda
}

// VertexCrossing reports whether the edge AB crosses the edge CD at a
// shared vertex, given that the two edges are already known to share at
// least one endpoint. This resolves the ambiguous case where two edges
// touch but do not properly cross: a touch counts as a crossing only if it
// changes which side of the boundary a point infinitesimally close to the
// shared vertex would fall on.
func VertexCrossing(a, b, c, d Point) bool {
	switch {
	case a == c:
		return b == d || RobustSign(a, b, d) == CounterClockwise
	case b == d:
		return RobustSign(a, b, c) == CounterClockwise
	case a == d:
		return b == c || RobustSign(a, b, c) == CounterClockwise
	case b == c:
		return RobustSign(a, b, d) == CounterClockwise
	}
	return false
}
