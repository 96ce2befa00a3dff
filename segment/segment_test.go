package segment

import (
	"testing"

	"github.com/kestrel-geo/overlay2d/point"
	"github.com/stretchr/testify/assert"
)

func TestNewXSegmentNormalizes(t *testing.T) {
	a := point.New[int32](5, 5)
	b := point.New[int32](0, 0)
	s := NewXSegment(a, b)
	assert.Equal(t, b, s.A)
	assert.Equal(t, a, s.B)
}

func TestNewXSegmentPanicsOnDegenerate(t *testing.T) {
	p := point.New[int32](1, 1)
	assert.Panics(t, func() {
		NewXSegment(p, p)
	})
}

func TestXSegmentCompare(t *testing.T) {
	a := NewXSegment(point.New[int32](0, 0), point.New[int32](1, 1))
	b := NewXSegment(point.New[int32](0, 0), point.New[int32](2, 2))
	assert.Negative(t, a.Compare(b))
	assert.True(t, a.Less(b))
	assert.Equal(t, 0, a.Compare(a))
}

func TestXSegmentIsVerticalHorizontalIsoAxis(t *testing.T) {
	vertical := NewXSegment(point.New[int32](0, 0), point.New[int32](0, 5))
	horizontal := NewXSegment(point.New[int32](0, 0), point.New[int32](5, 0))
	diagonal := NewXSegment(point.New[int32](0, 0), point.New[int32](5, 5))
	generic := NewXSegment(point.New[int32](0, 0), point.New[int32](5, 3))

	assert.True(t, vertical.IsVertical())
	assert.True(t, vertical.IsIsoAxis())
	assert.True(t, horizontal.IsHorizontal())
	assert.True(t, horizontal.IsIsoAxis())
	assert.True(t, diagonal.IsIsoAxis())
	assert.False(t, generic.IsIsoAxis())
}

func TestNewSegmentNegatesCountOnSwap(t *testing.T) {
	a := point.New[int32](5, 5)
	b := point.New[int32](0, 0)
	s := NewSegment(a, b, ShapeCount{Subj: 1, Clip: -1})
	assert.Equal(t, ShapeCount{Subj: -1, Clip: 1}, s.Count)
	assert.Equal(t, b, s.A)
	assert.Equal(t, a, s.B)
}

func TestShapeCountAddIsEmpty(t *testing.T) {
	c := ShapeCount{Subj: 1, Clip: -1}
	assert.True(t, c.Add(ShapeCount{Subj: -1, Clip: 1}).IsEmpty())
	assert.False(t, c.IsEmpty())
}
