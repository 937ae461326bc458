package s2

// RangeIterator wraps an Iterator to expose the CellID range
// [rangeMin, rangeMax] spanned by the current indexed cell, rather than
// just the cell itself. Two RangeIterators over two different loops' index
// are stepped together by the merge-join in LoopCrosser: at each step the
// one with the smaller rangeMax advances, so the pair always considers
// overlapping (or adjacent) cell ranges without either loop's iterator
// ever needing to know about the other loop's cell boundaries.
type RangeIterator struct {
	it *Iterator
}

// NewRangeIterator returns a RangeIterator over idx, positioned at the
// first cell.
func NewRangeIterator(idx *ShapeIndex) *RangeIterator {
	return &RangeIterator{it: idx.Iterator()}
}

// CellID returns the current cell's ID, or SentinelCellID if done.
func (r *RangeIterator) CellID() CellID {
	return r.it.CellID()
}

// Edges returns the current cell's loop edge indices.
func (r *RangeIterator) Edges() []int {
	return r.it.Edges()
}

// Done reports whether the iterator has advanced past the last cell.
func (r *RangeIterator) Done() bool {
	return r.it.Done()
}

// RangeMin returns the smallest CellID in the leaf-cell range spanned by
// the current indexed cell.
func (r *RangeIterator) RangeMin() CellID {
	if r.Done() {
		return SentinelCellID()
	}
	return r.CellID().RangeMin()
}

// RangeMax returns the largest CellID in the leaf-cell range spanned by
// the current indexed cell.
func (r *RangeIterator) RangeMax() CellID {
	if r.Done() {
		return SentinelCellID()
	}
	return r.CellID().RangeMax()
}

// Next advances to the next indexed cell.
func (r *RangeIterator) Next() {
	r.it.Next()
}

// SeekTo advances this iterator to the first cell whose range could
// overlap other's current cell, i.e. whose rangeMax is at least other's
// rangeMin.
func (r *RangeIterator) SeekTo(other *RangeIterator) {
	r.it.Seek(other.RangeMin())
	// Seek can stop at a cell that starts after other's range; back up one
	// step if the preceding cell's range still reaches into it.
	if !r.Done() && r.RangeMin() > other.RangeMin() {
		r.it.pos--
		if r.it.pos >= 0 && r.RangeMax() < other.RangeMin() {
			r.it.pos++
		}
	}
}

// SeekBeyond advances this iterator to the first cell whose range starts
// after other's current cell ends.
func (r *RangeIterator) SeekBeyond(other *RangeIterator) {
	r.it.Seek(other.RangeMax())
	if !r.Done() && r.RangeMin() <= other.RangeMax() {
		r.it.pos++
	}
}
