package fill

import (
	"testing"

	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/stretchr/testify/assert"
)

// TestSortClockwiseOrdersRightHalfPlaneBySlope exercises sortClockwise directly against a
// shared start point with a steep-down, a flat, a shallow-up, and a vertical-up direction, all
// restricted to the dx>=0 half-plane fill.Apply actually feeds it. The expected order is
// ascending slope: steepest-downward first, vertical-up last.
func TestSortClockwiseOrdersRightHalfPlaneBySlope(t *testing.T) {
	steepDown := segment.NewSegment(point.New[int32](0, 0), point.New[int32](1, -4), segment.ShapeCount{})
	flat := segment.NewSegment(point.New[int32](0, 0), point.New[int32](4, 0), segment.ShapeCount{})
	shallowUp := segment.NewSegment(point.New[int32](0, 0), point.New[int32](4, 1), segment.ShapeCount{})
	verticalUp := segment.NewSegment(point.New[int32](0, 0), point.New[int32](0, 4), segment.ShapeCount{})

	group := []segment.Segment{verticalUp, flat, steepDown, shallowUp}
	sortClockwise(group)

	assert.Equal(t, []segment.Segment{steepDown, flat, shallowUp, verticalUp}, group)
}
