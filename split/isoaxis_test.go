package split

import (
	"testing"

	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/stretchr/testify/assert"
)

func TestIsoAxisIntersectVertHoriz(t *testing.T) {
	v := segment.NewXSegment(point.New[int32](2, 0), point.New[int32](2, 4))
	h := segment.NewXSegment(point.New[int32](0, 2), point.New[int32](4, 2))

	p, ok := isoAxisIntersect(v, h)

	assert.True(t, ok)
	assert.Equal(t, point.New[int32](2, 2), p)
}

func TestIsoAxisIntersectVertDiag(t *testing.T) {
	v := segment.NewXSegment(point.New[int32](3, 0), point.New[int32](3, 10))
	d := segment.NewXSegment(point.New[int32](0, 0), point.New[int32](6, 6))

	p, ok := isoAxisIntersect(v, d)

	assert.True(t, ok)
	assert.Equal(t, point.New[int32](3, 3), p)
}

func TestIsoAxisIntersectHorizDiag(t *testing.T) {
	h := segment.NewXSegment(point.New[int32](0, 3), point.New[int32](10, 3))
	d := segment.NewXSegment(point.New[int32](0, 6), point.New[int32](6, 0))

	p, ok := isoAxisIntersect(h, d)

	assert.True(t, ok)
	assert.Equal(t, point.New[int32](3, 3), p)
}

func TestIsoAxisIntersectDiagDiag(t *testing.T) {
	a := segment.NewXSegment(point.New[int32](0, 0), point.New[int32](6, 6))
	b := segment.NewXSegment(point.New[int32](0, 6), point.New[int32](6, 0))

	p, ok := isoAxisIntersect(a, b)

	assert.True(t, ok)
	assert.Equal(t, point.New[int32](3, 3), p)
}

func TestIsoAxisIntersectDiagDiagOddParity(t *testing.T) {
	a := segment.NewXSegment(point.New[int32](0, 0), point.New[int32](5, 5))
	b := segment.NewXSegment(point.New[int32](0, 5), point.New[int32](4, 1))

	_, ok := isoAxisIntersect(a, b)

	assert.False(t, ok)
}

func TestIsoAxisIntersectParallelVerticalFallsBack(t *testing.T) {
	a := segment.NewXSegment(point.New[int32](0, 0), point.New[int32](0, 4))
	b := segment.NewXSegment(point.New[int32](1, 0), point.New[int32](1, 4))

	_, ok := isoAxisIntersect(a, b)

	assert.False(t, ok)
}

func TestIsoAxisIntersectOutOfBoundsIsFalse(t *testing.T) {
	v := segment.NewXSegment(point.New[int32](2, 10), point.New[int32](2, 14))
	h := segment.NewXSegment(point.New[int32](0, 2), point.New[int32](4, 2))

	_, ok := isoAxisIntersect(v, h)

	assert.False(t, ok)
}

func TestIsoAxisIntersectNonIsoAxisFallsBack(t *testing.T) {
	a := segment.NewXSegment(point.New[int32](0, 0), point.New[int32](5, 2))
	b := segment.NewXSegment(point.New[int32](0, 2), point.New[int32](5, 0))

	_, ok := isoAxisIntersect(a, b)

	assert.False(t, ok)
}
