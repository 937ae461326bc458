package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobustSignBasicOrientation(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0)
	c := PointFromCoords(0, 0, 1)
	assert.Equal(t, CounterClockwise, RobustSign(a, b, c))
	assert.Equal(t, Clockwise, RobustSign(a, c, b))
}

func TestRobustSignIsAntisymmetricUnderSwap(t *testing.T) {
	a := PointFromCoords(1, 0.2, 0.1)
	b := PointFromCoords(0.3, 1, 0.2)
	c := PointFromCoords(0.1, 0.3, 1)
	assert.Equal(t, -RobustSign(a, b, c), RobustSign(b, a, c))
}

func TestRobustSignOnCollinearPointsIsNeverIndeterminate(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	b := PointFromCoords(0, 1, 0)
	c := PointFromCoords(1, 1, 0)
	assert.NotEqual(t, Indeterminate, RobustSign(a, b, c))
}

func TestRobustSignIsIndeterminateForRepeatedPoint(t *testing.T) {
	a := PointFromCoords(1, 0, 0)
	assert.Equal(t, Indeterminate, RobustSign(a, a, PointFromCoords(0, 1, 0)))
}

func TestOrderedCCWWithinWedge(t *testing.T) {
	o := PointFromCoords(0, 0, 1)
	a := PointFromCoords(1, 0, 0.1)
	b := PointFromCoords(0.7, 0.7, 0.1)
	c := PointFromCoords(0, 1, 0.1)
	assert.True(t, OrderedCCW(a, b, c, o))
	assert.False(t, OrderedCCW(a, c, b, o))
}

func TestKahanAccumulatorMatchesPlainSumOnWellConditionedInput(t *testing.T) {
	var acc kahanAccumulator
	var plain float64
	for i := 0; i < 1000; i++ {
		acc.add(0.001)
		plain += 0.001
	}
	assert.InDelta(t, plain, acc.value(), 1e-9)
}

func TestKahanAccumulatorOfExactBinaryFractionsIsExact(t *testing.T) {
	var acc kahanAccumulator
	for i := 0; i < 100; i++ {
		acc.add(0.5)
	}
	// 0.5 and every partial sum up to 50 are exactly representable in
	// float64, so this has no rounding to compensate for either way; it
	// pins down that the accumulator doesn't itself introduce error.
	assert.Equal(t, 50.0, acc.value())
}
