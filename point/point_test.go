package point

import (
	"encoding/json"
	"testing"

	"github.com/kestrel-geo/overlay2d/types"
	"github.com/stretchr/testify/assert"
)

func TestNewAndAccessors(t *testing.T) {
	p := New[int32](3, 4)
	assert.Equal(t, int32(3), p.X())
	assert.Equal(t, int32(4), p.Y())
}

func TestAddSub(t *testing.T) {
	p := New[int32](3, 4)
	q := New[int32](1, 2)
	assert.Equal(t, New[int32](4, 6), p.Add(q))
	assert.Equal(t, New[int32](2, 2), p.Sub(q))
}

func TestEq(t *testing.T) {
	assert.True(t, New[int32](1, 1).Eq(New[int32](1, 1)))
	assert.False(t, New[int32](1, 1).Eq(New[int32](1, 2)))
}

func TestCompare(t *testing.T) {
	tests := map[string]struct {
		a, b     Point[int32]
		expected int
	}{
		"equal":          {New[int32](1, 1), New[int32](1, 1), 0},
		"x differs":      {New[int32](1, 5), New[int32](2, 0), -1},
		"x equal y less": {New[int32](1, 1), New[int32](1, 2), -1},
		"greater":        {New[int32](5, 0), New[int32](1, 0), 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Compare(tc.b))
		})
	}
}

func TestLess(t *testing.T) {
	assert.True(t, New[int32](1, 1).Less(New[int32](1, 2)))
	assert.False(t, New[int32](1, 2).Less(New[int32](1, 1)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(3,4)", New[int32](3, 4).String())
}

func TestAs64As32(t *testing.T) {
	p := New[int32](3, -4)
	widened := As64(p)
	assert.Equal(t, New[int64](3, -4), widened)
	assert.Equal(t, p, As32(widened))
}

func TestJSONRoundTrip(t *testing.T) {
	p := New[int32](3, -4)
	b, err := json.Marshal(p)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"x":3,"y":-4}`, string(b))

	var q Point[int32]
	assert.NoError(t, json.Unmarshal(b, &q))
	assert.Equal(t, p, q)
}

func TestOrientation(t *testing.T) {
	tests := map[string]struct {
		p, q, r  Point[int32]
		expected types.PointOrientation
	}{
		"counterclockwise": {New[int32](0, 0), New[int32](1, 0), New[int32](1, 1), types.PointsCounterClockwise},
		"clockwise":         {New[int32](0, 0), New[int32](0, 1), New[int32](1, 1), types.PointsClockwise},
		"collinear":         {New[int32](0, 0), New[int32](1, 1), New[int32](2, 2), types.PointsCollinear},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Orientation(tc.p, tc.q, tc.r))
		})
	}
}
