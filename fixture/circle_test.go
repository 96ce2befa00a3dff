package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-geo/overlay2d/point"
)

func TestCircleRadiusOneIsADiamond(t *testing.T) {
	ring := Circle(point.New[int32](0, 0), 1)
	require.Len(t, ring, 4)
	assert.Equal(t, point.New[int32](0, 1), ring[0])
	assert.Equal(t, point.New[int32](1, 0), ring[1])
	assert.Equal(t, point.New[int32](0, -1), ring[2])
	assert.Equal(t, point.New[int32](-1, 0), ring[3])
}

func TestCircleNonPositiveRadiusIsEmpty(t *testing.T) {
	assert.Empty(t, Circle(point.New[int32](0, 0), 0))
	assert.Empty(t, Circle(point.New[int32](0, 0), -5))
}

func TestCircleLargerRadiusHasNoAdjacentDuplicatePoints(t *testing.T) {
	ring := Circle(point.New[int32](10, 10), 8)
	require.NotEmpty(t, ring)
	for i := range ring {
		next := ring[(i+1)%len(ring)]
		assert.False(t, ring[i].Eq(next), "adjacent points %s and %s must differ", ring[i], next)
	}
}
