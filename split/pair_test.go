package split

import (
	"testing"

	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(ax, ay, bx, by int32) segment.Segment {
	return segment.NewSegment(point.New(ax, ay), point.New(bx, by), segment.ShapeCount{Subj: 1})
}

func TestSegmentPairMarksPureCrossing(t *testing.T) {
	buf := []segment.Segment{
		seg(0, 0, 4, 4),
		seg(0, 4, 4, 0),
	}

	marks, round := segmentPairMarks(0, 1, buf, 0)

	require.Len(t, marks, 2)
	assert.False(t, round)
	assert.Equal(t, point.New[int32](2, 2), marks[0].Point)
	assert.Equal(t, point.New[int32](2, 2), marks[1].Point)
}

func TestSegmentPairMarksTargetEndOnlyMarksOther(t *testing.T) {
	buf := []segment.Segment{
		seg(2, 2, 2, 6),
		seg(0, 0, 4, 4),
	}

	marks, _ := segmentPairMarks(0, 1, buf, 0)

	require.Len(t, marks, 1)
	assert.Equal(t, 1, marks[0].SegmentIndex)
	assert.Equal(t, point.New[int32](2, 2), marks[0].Point)
}

func TestSegmentPairMarksOverlay(t *testing.T) {
	buf := []segment.Segment{
		seg(0, 0, 4, 4),
		seg(2, 2, 6, 6),
	}

	marks, _ := segmentPairMarks(0, 1, buf, 0)

	require.Len(t, marks, 2)
	points := []point.Point[int32]{marks[0].Point, marks[1].Point}
	assert.Contains(t, points, point.New[int32](4, 4))
	assert.Contains(t, points, point.New[int32](2, 2))
}

func TestSegmentPairMarksNoneReturnsNil(t *testing.T) {
	buf := []segment.Segment{
		seg(0, 0, 1, 1),
		seg(5, 6, 6, 8),
	}

	marks, round := segmentPairMarks(0, 1, buf, 0)

	assert.Nil(t, marks)
	assert.False(t, round)
}

func TestSegmentPairMarksUsesIsoAxisFastPath(t *testing.T) {
	buf := []segment.Segment{
		seg(2, 0, 2, 4),
		seg(0, 2, 4, 2),
	}

	marks, round := segmentPairMarks(0, 1, buf, 0)

	require.Len(t, marks, 2)
	assert.False(t, round)
	assert.Equal(t, point.New[int32](2, 2), marks[0].Point)
}
