package split

import (
	"slices"

	"github.com/kestrel-geo/overlay2d/segment"
)

// sortedSegments returns segs sorted by XSegment, the invariant every driver assumes its input
// buffer already satisfies.
func sortedSegments(segs ...segment.Segment) []segment.Segment {
	out := slices.Clone(segs)
	slices.SortFunc(out, func(a, b segment.Segment) int { return a.XSegment.Compare(b.XSegment) })
	return out
}
