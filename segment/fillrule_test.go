package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillRuleEvenOdd(t *testing.T) {
	top, fill := EvenOdd.Apply(ShapeCount{Subj: 1}, ShapeCount{Subj: 0})

	assert.Equal(t, ShapeCount{Subj: 1}, top)
	assert.Equal(t, SubjAbove, fill)
}

func TestFillRuleEvenOddNegativeIsOdd(t *testing.T) {
	_, fill := EvenOdd.Apply(ShapeCount{Subj: -1}, ShapeCount{Subj: 0})

	assert.Equal(t, SubjAbove, fill)
}

func TestFillRuleNonZero(t *testing.T) {
	top, fill := NonZero.Apply(ShapeCount{Subj: 2}, ShapeCount{Subj: 1})

	assert.Equal(t, ShapeCount{Subj: 3}, top)
	assert.Equal(t, SubjBelow|SubjAbove, fill)
}

func TestFillRulePositive(t *testing.T) {
	_, fill := Positive.Apply(ShapeCount{Subj: -1}, ShapeCount{Subj: 1})

	assert.Equal(t, SubjBelow, fill)
}

func TestFillRuleNegative(t *testing.T) {
	_, fill := Negative.Apply(ShapeCount{Subj: -2}, ShapeCount{Subj: 1})

	assert.Equal(t, SubjAbove, fill)
}

func TestFillRuleClipBits(t *testing.T) {
	_, fill := NonZero.Apply(ShapeCount{Clip: 1}, ShapeCount{Clip: 0})

	assert.Equal(t, ClipAbove, fill)
}

func TestFillRuleStringPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { _ = FillRule(99).String() })
}
