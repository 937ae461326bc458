package s2

import "github.com/golang/geo/r3"

// Cell is a quadrilateral region bounded by four geodesics, corresponding
// to one node of the CellID quadtree. Loop uses Cell only as a bounding
// region to test against during spatial-index queries; it does not rely on
// Cell for anything requiring exact S2 cube-face projection fidelity.
type Cell struct {
	id          CellID
	face        int
	level       int
	uv          [2][2]float64
}

// CellFromCellID constructs the Cell identified by id.
func CellFromCellID(id CellID) Cell {
	face := id.Face()
	level := id.Level()
	lo, hi := cellIDUVRange(id)
	return Cell{id: id, face: face, level: level, uv: [2][2]float64{{lo[0], hi[0]}, {lo[1], hi[1]}}}
}

// cellIDUVRange recovers an approximate (u,v) bounding square for id from
// its face coordinates. Because this package's CellID uses a simplified
// Z-order layout rather than the real S2 Hilbert-curve index, the range is
// derived directly from the interleaved bits rather than by walking a
// canonical traversal table.
func cellIDUVRange(id CellID) (lo, hi [2]float64) {
	// Reconstruct the raw (i,j) grid coordinates for id's range by
	// de-interleaving its position bits.
	pos := (uint64(id) &^ (uint64(7) << posBits)) &^ id.lsb()
	i, j := deinterleaveZOrder(pos)
	size := uint32(1) << uint(maxLevel-id.Level())
	iLo, jLo := i&^(size-1), j&^(size-1)
	lo = [2]float64{stToUV(iLo, maxSize), stToUV(jLo, maxSize)}
	hi = [2]float64{stToUV(iLo+size, maxSize), stToUV(jLo+size, maxSize)}
	return lo, hi
}

func deinterleaveZOrder(pos uint64) (i, j uint32) {
	return uint32(compactBits(pos >> 1)), uint32(compactBits(pos))
}

func compactBits(x uint64) uint64 {
	x &= 0x5555555555555555
	x = (x | (x >> 1)) & 0x3333333333333333
	x = (x | (x >> 2)) & 0x0F0F0F0F0F0F0F0F
	x = (x | (x >> 4)) & 0x00FF00FF00FF00FF
	x = (x | (x >> 8)) & 0x0000FFFF0000FFFF
	x = (x | (x >> 16)) & 0x00000000FFFFFFFF
	return x
}

func stToUV(s uint32, max uint32) float64 {
	return 2*float64(s)/float64(max) - 1
}

// ID returns the cell's CellID.
func (c Cell) ID() CellID {
	return c.id
}

// Level returns the cell's subdivision level.
func (c Cell) Level() int {
	return c.level
}

// Vertex returns the k-th vertex of the cell (k in [0,4)) in CCW order.
func (c Cell) Vertex(k int) Point {
	uIdx := ((k + 1) >> 1) & 1
	vIdx := (k >> 1) & 1
	u, v := c.uv[0][uIdx], c.uv[1][vIdx]
	return Point{faceUVToXYZ(c.face, u, v).Normalize()}
}

// CenterPoint returns the cell's center, used to seed localized containment
// queries against a ShapeIndex bucket keyed on this cell.
func (c Cell) CenterPoint() Point {
	u := (c.uv[0][0] + c.uv[0][1]) / 2
	v := (c.uv[1][0] + c.uv[1][1]) / 2
	return Point{faceUVToXYZ(c.face, u, v).Normalize()}
}

// Edge returns the directed edge normal for the k-th edge of the cell,
// i.e. the cross product of its two endpoints, not renormalized.
func (c Cell) Edge(k int) Point {
	a := c.Vertex(k)
	b := c.Vertex((k + 1) & 3)
	return a.PointCross(b)
}

// ContainsPoint reports whether the cell contains p.
func (c Cell) ContainsPoint(p Point) bool {
	face, u, v := xyzToFaceUV(p.Vector)
	if face != c.face {
		return false
	}
	return u >= c.uv[0][0] && u <= c.uv[0][1] && v >= c.uv[1][0] && v <= c.uv[1][1]
}

// RectBound returns a bounding latitude-longitude rectangle for the cell.
func (c Cell) RectBound() Rect {
	r := EmptyRect()
	for k := 0; k < 4; k++ {
		r = r.AddPoint(c.Vertex(k))
	}
	return r
}

// CapBound returns a bounding cap for the cell.
func (c Cell) CapBound() Cap {
	cap := CapFromPoint(c.Vertex(0))
	for k := 1; k < 4; k++ {
		cap = cap.AddPoint(c.Vertex(k))
	}
	return cap
}

func faceUVToXYZ(face int, u, v float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: 1, Y: u, Z: v}
	case 1:
		return r3.Vector{X: -u, Y: 1, Z: v}
	case 2:
		return r3.Vector{X: -u, Y: -v, Z: 1}
	case 3:
		return r3.Vector{X: -1, Y: -u, Z: v}
	case 4:
		return r3.Vector{X: u, Y: -1, Z: v}
	default:
		return r3.Vector{X: u, Y: v, Z: -1}
	}
}
