package s2

import "sort"

// CellRelation describes how a query cell relates to the cells actually
// present in a ShapeIndex: Indexed means the query cell is itself indexed
// (or is contained by an indexed cell), Subdivided means the index has
// finer cells underneath it, and Disjoint means the index has nothing
// there at all.
type CellRelation int

const (
	Indexed CellRelation = iota
	Subdivided
	Disjoint
)

// shapeIndexCell stores the edges of the indexed loop that fall within one
// CellID's spatial range, along with whether that cell's center lies inside
// the loop. A point query landing in this cell recomputes containment by
// crossing only from the cell's center to the query point against this
// cell's own edges, using containsCenter as the crossing-parity seed,
// instead of restarting the count from the loop's global origin.
type shapeIndexCell struct {
	id             CellID
	edges          []int
	containsCenter bool
}

// ShapeIndex maps a loop's edges into a sparse grid of CellIDs so that
// point-containment and loop-vs-loop queries can restrict their attention
// to a handful of nearby edges instead of scanning every edge in the loop.
// It is built lazily: a freshly constructed Loop answers a handful of
// queries by brute force and only pays the indexing cost once a caller has
// shown it intends to make repeated queries (see maxUnindexedContainsCalls
// in s2.go and the Loop.index field).
type ShapeIndex struct {
	cells []*shapeIndexCell
}

// indexCellLevel is the subdivision level used to bucket loop edges. It is
// fixed rather than adaptive (unlike the real S2 ShapeIndex, which
// subdivides further wherever edge density demands it): adaptive
// subdivision is unnecessary here because Loop callers never index more
// than a single loop's edges at once, so a fixed level keeps the
// implementation simple without materially hurting query cost for the
// loop sizes this package targets.
const indexCellLevel = 8

// BuildShapeIndex constructs an index over the edges of a closed vertex
// chain: edge i runs from vertices[i] to vertices[(i+1)%len(vertices)].
// originInside is the containment parity used to seed crossing counts (see
// Loop.originInside); it lets each bucket's containsCenter be computed once,
// up front, so that a later point query can be answered from that one
// bucket's edges alone instead of walking the whole chain.
func BuildShapeIndex(vertices []Point, originInside bool) *ShapeIndex {
	buckets := make(map[CellID][]int)
	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		for _, id := range coverEdge(a, b) {
			buckets[id] = append(buckets[id], i)
		}
	}

	ids := make([]CellID, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	idx := &ShapeIndex{cells: make([]*shapeIndexCell, 0, len(ids))}
	for _, id := range ids {
		edges := buckets[id]
		sort.Ints(edges)
		center := CellFromCellID(id).CenterPoint()
		idx.cells = append(idx.cells, &shapeIndexCell{
			id:             id,
			edges:          edges,
			containsCenter: containsUsingAllEdges(vertices, originInside, center),
		})
	}
	return idx
}

// containsUsingAllEdges reports whether p lies inside the closed vertex
// chain, by counting edge crossings from OriginPoint to p across the whole
// chain. This is the same parity test Loop.Contains falls back to when it
// isn't indexed; BuildShapeIndex pays for it once per bucket at index-build
// time so that Contains can later answer from a single bucket's edges.
func containsUsingAllEdges(vertices []Point, originInside bool, p Point) bool {
	inside := originInside
	origin := OriginPoint()
	crosser := NewEdgeCrosser(origin, p)
	n := len(vertices)
	crosser.RestartAt(vertices[0])
	for i := 1; i <= n; i++ {
		inside = inside != crosser.EdgeOrVertexCrossing(vertices[i%n])
	}
	return inside
}

// coverEdge returns the set of indexCellLevel CellIDs that an edge from a
// to b passes through, approximated by sampling the edge rather than
// performing exact face-edge clipping. The cover holds the cells of the
// sampled points only, so a cell that the edge clips between two samples
// is not included.
func coverEdge(a, b Point) []CellID {
	const samples = 4
	seen := make(map[CellID]bool)
	var ids []CellID
	add := func(p Point) {
		id := CellIDFromPoint(p).Parent(indexCellLevel)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	add(a)
	add(b)
	for i := 1; i < samples; i++ {
		t := float64(i) / float64(samples)
		mid := Point{a.Mul(1 - t).Add(b.Mul(t)).Normalize()}
		add(mid)
	}
	return ids
}

// Iterator walks the non-empty cells of a ShapeIndex in CellID order.
type Iterator struct {
	idx *ShapeIndex
	pos int
}

// Iterator returns a new iterator positioned before the first cell.
func (s *ShapeIndex) Iterator() *Iterator {
	return &Iterator{idx: s, pos: 0}
}

// Done reports whether the iterator has advanced past the last cell.
func (it *Iterator) Done() bool {
	return it.pos >= len(it.idx.cells)
}

// CellID returns the CellID of the current cell, or SentinelCellID if Done.
func (it *Iterator) CellID() CellID {
	if it.Done() {
		return SentinelCellID()
	}
	return it.idx.cells[it.pos].id
}

// Edges returns the loop edge indices stored in the current cell.
func (it *Iterator) Edges() []int {
	if it.Done() {
		return nil
	}
	return it.idx.cells[it.pos].edges
}

// ContainsCenter reports whether the current cell's center lies inside the
// indexed loop, precomputed at build time so that a query landing in this
// cell can be answered from containsCenter plus this cell's own edges
// instead of walking the whole vertex chain.
func (it *Iterator) ContainsCenter() bool {
	if it.Done() {
		return false
	}
	return it.idx.cells[it.pos].containsCenter
}

// Next advances the iterator to the next cell.
func (it *Iterator) Next() {
	it.pos++
}

// Reset moves the iterator back to the first cell.
func (it *Iterator) Reset() {
	it.pos = 0
}

// Seek advances the iterator to the first cell whose ID is >= target.
func (it *Iterator) Seek(target CellID) {
	it.pos = sort.Search(len(it.idx.cells), func(i int) bool {
		return !it.idx.cells[i].id.Less(target)
	})
}

// LocatePoint positions the iterator at the cell containing p, if any, and
// reports the cell relation: Indexed if such a cell exists, Disjoint
// otherwise (a ShapeIndex built at a single fixed level never returns
// Subdivided for a point query).
func (it *Iterator) LocatePoint(p Point) CellRelation {
	target := CellIDFromPoint(p).Parent(indexCellLevel)
	it.Seek(target)
	if !it.Done() && it.CellID() == target {
		return Indexed
	}
	return Disjoint
}

// LocateCellID positions the iterator relative to target and reports how
// target relates to the indexed cells: Indexed if an indexed cell
// contains (or equals) target, Subdivided if target contains indexed
// cells beneath it, or Disjoint otherwise.
func (it *Iterator) LocateCellID(target CellID) CellRelation {
	it.Seek(target.RangeMin())
	if !it.Done() && it.CellID().Contains(target) {
		return Indexed
	}
	if !it.Done() && target.Contains(it.CellID()) {
		return Subdivided
	}
	if it.pos > 0 {
		prev := it.idx.cells[it.pos-1]
		if prev.id.Contains(target) {
			it.pos--
			return Indexed
		}
	}
	return Disjoint
}
