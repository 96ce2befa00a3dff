package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeDriverFindsCrossing(t *testing.T) {
	segs := sortedSegments(
		seg(0, 0, 4, 4),
		seg(0, 4, 4, 0),
	)

	marks, round := treeDriver(segs, 0)

	require.Len(t, marks, 2)
	assert.False(t, round)
}

func TestTreeDriverExpiresSegmentsBehindSweep(t *testing.T) {
	segs := sortedSegments(
		seg(0, 0, 1, 0),
		seg(10, 5, 11, 5),
	)

	marks, _ := treeDriver(segs, 0)

	assert.Empty(t, marks)
}

func TestTreeDriverNoMarksWhenNoneIntersect(t *testing.T) {
	segs := sortedSegments(
		seg(0, 0, 1, 1),
		seg(5, 6, 6, 8),
	)

	marks, _ := treeDriver(segs, 0)

	assert.Empty(t, marks)
}
