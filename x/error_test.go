package x

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorfProducesErrorWithFormattedMessage(t *testing.T) {
	err := Errorf("vertex %d is invalid", 3)
	assert.EqualError(t, err, "vertex 3 is invalid")
}

func TestWrapPreservesNilAndMessage(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	inner := Errorf("underlying failure")
	wrapped := Wrap(inner, "decode loop")
	assert.Contains(t, wrapped.Error(), "decode loop")
	assert.Contains(t, wrapped.Error(), "underlying failure")
}

func TestCheckPanicsOnNonNilError(t *testing.T) {
	assert.NotPanics(t, func() { Check(nil) })
	assert.Panics(t, func() { Check(Errorf("boom")) })
}

func TestAssertTrueAndAssertTruef(t *testing.T) {
	assert.NotPanics(t, func() { AssertTrue(true) })
	assert.Panics(t, func() { AssertTrue(false) })

	assert.NotPanics(t, func() { AssertTruef(true, "unused %d", 1) })
	assert.PanicsWithValue(t, "need at least 3, got 2", func() {
		AssertTruef(false, "need at least %d, got %d", 3, 2)
	})
}
