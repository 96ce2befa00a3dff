package extract

import (
	"context"
	"testing"

	"github.com/kestrel-geo/overlay2d/fill"
	"github.com/kestrel-geo/overlay2d/graph"
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledSeg(ax, ay, bx, by int32, f segment.SegmentFill) fill.Filled {
	return fill.Filled{
		Segment: segment.NewSegment(point.New(ax, ay), point.New(bx, by), segment.ShapeCount{}),
		Fill:    f,
	}
}

func squareGraph(t *testing.T) graph.Graph {
	t.Helper()
	segs := []fill.Filled{
		filledSeg(0, 0, 0, 4, segment.SubjBelow),
		filledSeg(0, 0, 4, 0, segment.SubjAbove),
		filledSeg(0, 4, 4, 4, segment.SubjBelow),
		filledSeg(4, 0, 4, 4, segment.SubjAbove),
	}
	g, err := graph.Build(context.Background(), segs, func(segment.SegmentFill) bool { return true }, solver.New())
	require.NoError(t, err)
	return g
}

func TestShapesExtractsSingleSquareWithNoHoles(t *testing.T) {
	g := squareGraph(t)

	shapes, err := Shapes(context.Background(), g, segment.Union)

	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Empty(t, shapes[0].Holes)
	assert.ElementsMatch(t, shapes[0].Outer, []point.Point[int32]{
		point.New[int32](0, 0), point.New[int32](0, 4),
		point.New[int32](4, 4), point.New[int32](4, 0),
	})
	assert.True(t, signedArea(shapes[0].Outer) > 0)
}

func TestShapesReturnsNoneWhenRuleExcludesEverything(t *testing.T) {
	g := squareGraph(t)

	// Intersection with an all-SubjOnly fill (no clip bits ever set) excludes every link.
	shapes, err := Shapes(context.Background(), g, segment.Intersection)

	require.NoError(t, err)
	assert.Empty(t, shapes)
}
