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

func clippedFilled(ax, ay, bx, by int32, dir int32) fill.Filled {
	return fill.Filled{
		Segment: segment.NewSegment(point.New(ax, ay), point.New(bx, by), segment.ShapeCount{Clip: dir}),
		Fill:    segment.SubjAbove | segment.SubjBelow | segment.ClipAbove,
	}
}

func TestLinesWalksConnectedRunInOrder(t *testing.T) {
	segs := []fill.Filled{
		clippedFilled(0, 0, 1, 1, segment.StringForwardClip),
		clippedFilled(1, 1, 2, 2, segment.StringForwardClip),
	}

	g, err := graph.Build(context.Background(), segs, func(segment.SegmentFill) bool { return true }, solver.New())
	require.NoError(t, err)

	r := segment.ClipRule{}
	lines, err := Lines(context.Background(), g, r)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, []point.Point[int32]{
		point.New[int32](0, 0), point.New[int32](1, 1), point.New[int32](2, 2),
	}, lines[0])
}

func TestLinesReturnsNoneWhenNoLinkCarriesClipBits(t *testing.T) {
	segs := []fill.Filled{
		{
			Segment: segment.NewSegment(point.New[int32](0, 0), point.New[int32](1, 1), segment.ShapeCount{}),
			Fill:    segment.SubjAbove,
		},
	}

	g, err := graph.Build(context.Background(), segs, func(segment.SegmentFill) bool { return true }, solver.New())
	require.NoError(t, err)

	lines, err := Lines(context.Background(), g, segment.ClipRule{})

	require.NoError(t, err)
	assert.Empty(t, lines)
}
