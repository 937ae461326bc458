package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsWedgeProcessorFlagsNonContainedWedge(t *testing.T) {
	center := PointFromCoords(0, 0, 1)
	a0, a2 := wedgePoint(0), wedgePoint(30)
	b0, b2 := wedgePoint(10), wedgePoint(200)

	var p ContainsWedgeProcessor
	stop := p.ProcessWedge(a0, center, a2, b0, b2)
	assert.Equal(t, p.DoesntContain, stop)
}

func TestContainsOrCrossesProcessorReportsOverlapAsCrossing(t *testing.T) {
	center := PointFromCoords(0, 0, 1)
	a0, a2 := wedgePoint(0), wedgePoint(100)
	b0, b2 := wedgePoint(50), wedgePoint(150)

	var p ContainsOrCrossesProcessor
	p.ProcessWedge(a0, center, a2, b0, b2)
	rel := GetWedgeRelation(a0, center, a2, b0, b2)
	if rel == WedgeProperlyOverlaps {
		assert.Equal(t, -1, p.CrossesOrMayContain())
	}
}

func TestContainsOrCrossesProcessorDefaultAllowsContainment(t *testing.T) {
	var p ContainsOrCrossesProcessor
	assert.Equal(t, 1, p.CrossesOrMayContain())
}
