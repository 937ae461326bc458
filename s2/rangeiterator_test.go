package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeIteratorRangeBracketsCellID(t *testing.T) {
	vertices := parsePoints("0:0, 0:1, 1:1, 1:0")
	idx := BuildShapeIndex(vertices, false)
	r := NewRangeIterator(idx)
	require.False(t, r.Done())
	assert.True(t, r.RangeMin() <= r.CellID())
	assert.True(t, r.CellID() <= r.RangeMax())
}

func TestRangeIteratorSeekToAlignsWithOther(t *testing.T) {
	va := parsePoints("0:0, 0:1, 1:1, 1:0")
	vb := parsePoints("0.5:0.5, 0.5:1.5, 1.5:1.5, 1.5:0.5")
	ra := NewRangeIterator(BuildShapeIndex(va, false))
	rb := NewRangeIterator(BuildShapeIndex(vb, false))

	ra.SeekTo(rb)
	if !ra.Done() {
		assert.True(t, ra.RangeMax() >= rb.RangeMin())
	}
}

func TestRangeIteratorSeekBeyondAdvancesPastOther(t *testing.T) {
	va := parsePoints("0:0, 0:1, 1:1, 1:0")
	ra := NewRangeIterator(BuildShapeIndex(va, false))
	rb := NewRangeIterator(BuildShapeIndex(va, false))

	ra.SeekBeyond(rb)
	if !ra.Done() {
		assert.True(t, ra.RangeMin() > rb.RangeMax())
	}
}
