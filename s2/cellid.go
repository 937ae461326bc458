package s2

import (
	"math"
	"math/bits"

	"github.com/golang/geo/r3"
)

// CellID uniquely identifies a cell in one of six cube faces subdivided by
// a quadtree. The 64-bit ID packs a 3-bit face number, a variable-depth
// position within that face, and a trailing sentinel bit (the "level bit"
// or lsb) marking the finest subdivision level the ID identifies. This
// package treats CellID as a coarse spatial key: loops use it only to ask
// "does my index have anything near this ID" via ShapeIndex, not to derive
// exact cell geometry, so the bit layout below only needs to preserve
// hierarchical containment (a cell's ID range strictly contains the ID
// ranges of all of its descendants), not the exact Hilbert-curve traversal
// order that the real S2 library uses to keep spatially-near cells
// numerically close as well as hierarchically nested.
//
// Within each face this implementation interleaves the X/Y quadtree
// coordinates in Z-order (Morton order) rather than along a Hilbert curve.
// Z-order preserves every containment property Loop's spatial index relies
// on; it sacrifices only the "nearby IDs are nearby on the sphere" locality
// property, which nothing in this package's Loop algorithms depends on.
type CellID uint64

const (
	faceBits  = 3
	numFaces  = 6
	maxLevel  = 30
	posBits   = 2*maxLevel + 1
	maxSize   = 1 << maxLevel
	wrapOffset = uint64(numFaces) << posBits
)

// SentinelCellID is a value larger than any valid cell ID, used as an
// end-of-range marker by RangeIterator.
func SentinelCellID() CellID {
	return CellID(math.MaxUint64)
}

// CellIDFromFacePosLevel constructs a canonical CellID for the given face,
// raw (x, y) coordinates at maxLevel resolution, and the target level.
func CellIDFromFacePosLevel(face int, i, j uint32, level int) CellID {
	pos := interleaveZOrder(i, j)
	id := (uint64(face) << posBits) + (pos | 1)
	return CellID(id).Parent(level)
}

// CellIDFromPoint returns the leaf CellID containing p.
func CellIDFromPoint(p Point) CellID {
	face, u, v := xyzToFaceUV(p.Vector)
	i := uvToST(u)
	j := uvToST(v)
	return CellIDFromFacePosLevel(face, i, j, maxLevel)
}

// CellIDFromLatLng returns the leaf CellID containing ll.
func CellIDFromLatLng(ll LatLng) CellID {
	return CellIDFromPoint(PointFromLatLng(ll))
}

func interleaveZOrder(i, j uint32) uint64 {
	return spreadBits(i)<<1 | spreadBits(j)
}

// spreadBits spreads the low maxLevel bits of v so that each occupies every
// other bit position, ready to be interleaved with another spread value.
func spreadBits(v uint32) uint64 {
	x := uint64(v) & ((1 << maxLevel) - 1)
	x = (x | (x << 16)) & 0x0000FFFF0000FFFF
	x = (x | (x << 8)) & 0x00FF00FF00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F0F0F0F0F
	x = (x | (x << 2)) & 0x3333333333333333
	x = (x | (x << 1)) & 0x5555555555555555
	return x
}

// Face returns the cube face, in [0,6), that contains the cell.
func (id CellID) Face() int {
	return int(uint64(id) >> posBits)
}

// Level returns the subdivision level, in [0,30], of the cell.
func (id CellID) Level() int {
	if id == 0 {
		return -1
	}
	return maxLevel - bits.TrailingZeros64(uint64(id))/2
}

// IsValid reports whether id represents a valid cell or face.
func (id CellID) IsValid() bool {
	return id.Face() < numFaces && (uint64(id)&lsbMask(id) != 0)
}

func lsbMask(id CellID) uint64 {
	return uint64(id) & (^uint64(id) + 1)
}

// IsLeaf reports whether id is at the maximum subdivision level.
func (id CellID) IsLeaf() bool {
	return uint64(id)&1 != 0
}

// lsb returns the position of id's lowest-numbered trailing 1 bit, which
// marks its subdivision level.
func (id CellID) lsb() uint64 {
	return uint64(id) & (^uint64(id) + 1)
}

// Parent returns the ancestor of id at the given level.
func (id CellID) Parent(level int) CellID {
	lsb := lsbForLevel(level)
	return CellID((uint64(id) & -lsb) | lsb)
}

func lsbForLevel(level int) uint64 {
	return uint64(1) << uint(2*(maxLevel-level))
}

// ChildBegin returns the first child of id at the next level.
func (id CellID) ChildBegin() CellID {
	old := id.lsb()
	return CellID(uint64(id) - old + old>>2)
}

// ChildEnd returns the CellID immediately following the last child of id
// at the next level.
func (id CellID) ChildEnd() CellID {
	old := id.lsb()
	return CellID(uint64(id) + old + old>>2)
}

// RangeMin returns the smallest CellID that is a descendant of id.
func (id CellID) RangeMin() CellID {
	return CellID(uint64(id) - (id.lsb() - 1))
}

// RangeMax returns the largest CellID that is a descendant of id.
func (id CellID) RangeMax() CellID {
	return CellID(uint64(id) + (id.lsb() - 1))
}

// Contains reports whether id contains other, i.e. other is a descendant.
func (id CellID) Contains(other CellID) bool {
	return uint64(id.RangeMin()) <= uint64(other) && uint64(other) <= uint64(id.RangeMax())
}

// Intersects reports whether the cell ranges of id and other overlap.
func (id CellID) Intersects(other CellID) bool {
	return uint64(id.RangeMin()) <= uint64(other.RangeMax()) && uint64(other.RangeMin()) <= uint64(id.RangeMax())
}

// Less reports whether id sorts before other, by plain uint64 comparison.
// A cell's ID lies inside its own [RangeMin, RangeMax] span, so it sorts
// after some of its descendants and before others.
func (id CellID) Less(other CellID) bool {
	return uint64(id) < uint64(other)
}

func xyzToFaceUV(v r3.Vector) (face int, u, v2 float64) {
	abs := r3.Vector{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
	face = 0
	m := abs.X
	if abs.Y > m {
		face, m = 1, abs.Y
	}
	if abs.Z > m {
		face = 2
	}
	switch face {
	case 0:
		if v.X < 0 {
			face = 3
		}
		u, v2 = v.Y/v.X, v.Z/math.Abs(v.X)
	case 1:
		if v.Y < 0 {
			face = 4
		}
		u, v2 = -v.X/v.Y, v.Z/math.Abs(v.Y)
	default:
		if v.Z < 0 {
			face = 5
		}
		u, v2 = -v.X/v.Z, -v.Y/v.Z
	}
	return face, u, v2
}

// uvToST maps a face coordinate in (-1,1) to a uint32 raster coordinate in
// [0, maxSize), using the identity transform: this package does not need
// the real S2 library's tangent-warping "quadratic" projection, since
// nothing here relies on cells having near-uniform area across a face.
func uvToST(u float64) uint32 {
	s := 0.5 * (u + 1)
	i := uint32(clampFloat(s*maxSize, 0, maxSize-1))
	return i
}
