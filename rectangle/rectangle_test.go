package rectangle

import (
	"testing"

	"github.com/kestrel-geo/overlay2d/point"
	"github.com/stretchr/testify/assert"
)

func TestNewNormalizes(t *testing.T) {
	r := New(point.New[int32](10, 10), point.New[int32](0, 0))
	assert.Equal(t, point.New[int32](0, 0), r.Min())
	assert.Equal(t, point.New[int32](10, 10), r.Max())
}

func TestWidthHeight(t *testing.T) {
	r := New(point.New[int32](0, 0), point.New[int32](4, 7))
	assert.Equal(t, int32(4), r.Width())
	assert.Equal(t, int32(7), r.Height())
}

func TestContainsPoint(t *testing.T) {
	r := New(point.New[int32](0, 0), point.New[int32](10, 10))
	assert.True(t, r.ContainsPoint(point.New[int32](5, 5)))
	assert.True(t, r.ContainsPoint(point.New[int32](0, 0)))
	assert.False(t, r.ContainsPoint(point.New[int32](11, 5)))
}

func TestOverlaps(t *testing.T) {
	a := New(point.New[int32](0, 0), point.New[int32](5, 5))
	b := New(point.New[int32](5, 5), point.New[int32](10, 10))
	c := New(point.New[int32](6, 6), point.New[int32](10, 10))
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestUnion(t *testing.T) {
	a := New(point.New[int32](0, 0), point.New[int32](5, 5))
	b := New(point.New[int32](3, -2), point.New[int32](8, 4))
	u := a.Union(b)
	assert.Equal(t, point.New[int32](0, -2), u.Min())
	assert.Equal(t, point.New[int32](8, 5), u.Max())
}

func TestBounds(t *testing.T) {
	pts := []point.Point[int32]{
		point.New[int32](1, 1),
		point.New[int32](-3, 5),
		point.New[int32](2, -4),
	}
	b := Bounds(pts)
	assert.Equal(t, point.New[int32](-3, -4), b.Min())
	assert.Equal(t, point.New[int32](2, 5), b.Max())
}

func TestBoundsPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		Bounds([]point.Point[int32]{})
	})
}

func TestString(t *testing.T) {
	r := New(point.New[int32](0, 0), point.New[int32](1, 1))
	assert.Equal(t, "(0,0)-(1,1)", r.String())
}
