package s2

// LoopCrosser walks the boundaries of two loops looking for edge
// crossings, restricting attention to edges whose indexed cells overlap
// so that the cost of the walk scales with how much of the two loops'
// geometry is actually near each other rather than with the product of
// their vertex counts. Below edgeQueryMinEdges it falls back to a direct
// double loop over every edge pair, since building and merge-walking the
// indexes costs more than it saves for small loops.
type LoopCrosser struct {
	a, b *Loop
}

// NewLoopCrosser returns a crosser for the boundaries of a and b.
func NewLoopCrosser(a, b *Loop) *LoopCrosser {
	return &LoopCrosser{a: a, b: b}
}

// AreBoundariesCrossing reports whether the boundaries of a and b have a
// proper edge crossing. At every vertex the two boundaries touch without
// crossing, it hands the pair of wedges meeting there to processor; if
// processor returns true the walk stops early because the caller has
// already learned everything it needs from that wedge.
func (c *LoopCrosser) AreBoundariesCrossing(processor WedgeProcessor) bool {
	if len(c.a.vertices) >= edgeQueryMinEdges && len(c.b.vertices) >= edgeQueryMinEdges {
		return c.areBoundariesCrossingIndexed(processor)
	}
	return c.areBoundariesCrossingBruteForce(processor)
}

func (c *LoopCrosser) areBoundariesCrossingBruteForce(processor WedgeProcessor) bool {
	a, b := c.a, c.b
	na, nb := len(a.vertices), len(b.vertices)
	for j := 0; j < nb; j++ {
		crosser := NewEdgeCrosser(b.vertex(j), b.vertex(j+1))
		crosser.RestartAt(a.vertex(0))
		for i := 0; i < na; i++ {
			crossing := crosser.RobustCrossing(a.vertex(i + 1))
			if crossing < 0 {
				continue
			}
			if crossing > 0 {
				return true
			}
			if a.vertex(i+1) == b.vertex(j+1) &&
				processor.ProcessWedge(a.vertex(i), a.vertex(i+1), a.vertex(i+2), b.vertex(j), b.vertex(j+2)) {
				return false
			}
		}
	}
	return false
}

// areBoundariesCrossingIndexed performs the same walk as the brute-force
// version, but uses each loop's ShapeIndex plus a RangeIterator merge-join
// to visit only the edge pairs whose indexed cells overlap.
func (c *LoopCrosser) areBoundariesCrossingIndexed(processor WedgeProcessor) bool {
	a, b := c.a, c.b
	a.ensureIndex()
	b.ensureIndex()

	ra := NewRangeIterator(a.index)
	rb := NewRangeIterator(b.index)

	for !ra.Done() && !rb.Done() {
		if ra.RangeMax() < rb.RangeMin() {
			ra.Next()
			continue
		}
		if rb.RangeMax() < ra.RangeMin() {
			rb.Next()
			continue
		}

		for _, ai := range ra.Edges() {
			crosser := NewEdgeCrosser(a.vertex(ai), a.vertex(ai+1))
			crosser.RestartAt(b.vertex(0))
			for _, bj := range rb.Edges() {
				crosser.RestartAt(b.vertex(bj))
				crossing := crosser.RobustCrossing(b.vertex(bj + 1))
				if crossing < 0 {
					continue
				}
				if crossing > 0 {
					return true
				}
				if a.vertex(ai+1) == b.vertex(bj+1) &&
					processor.ProcessWedge(a.vertex(ai), a.vertex(ai+1), a.vertex(ai+2), b.vertex(bj), b.vertex(bj+2)) {
					return false
				}
			}
		}

		if ra.RangeMax() < rb.RangeMax() {
			ra.Next()
		} else {
			rb.Next()
		}
	}
	return false
}
