// Package fill implements the Filler: the stage that annotates a clean, sorted segment batch
// with each segment's 4-bit SegmentFill according to a selected FillRule (spec.md §4.3).
//
// The sweep keeps a scan line of active segments ordered by "is-under-segment",
// grouping incoming segments that share a start point and querying the scan line for the
// region-below winding count before applying the rule and inserting the processed group back
// in under its own running count.
package fill

import (
	"context"

	"github.com/kestrel-geo/overlay2d/debug"
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

// Filled pairs a segment with the SegmentFill the sweep computed for it.
type Filled struct {
	segment.Segment
	Fill segment.SegmentFill
}

// entry is what the scan line stores for each active segment: the running ShapeCount of the
// region immediately below it, fixed at the x-position it was inserted under (spec.md §9:
// "insert fresh entries at each sweep step", never mutate a stored entry in place).
type entry struct {
	xseg segment.XSegment
	bot  segment.ShapeCount
}

// Apply sweeps segs (already sorted by XSegment, the Splitter's postcondition) and returns one
// Filled record per input segment, in the same order as the scan line consumed them (grouped by
// shared start point, ordered by ascending angle within each group, lowest edge first).
func Apply(ctx context.Context, segs []segment.Segment, rule segment.FillRule, cfg solver.Solver) ([]Filled, error) {
	out := make([]Filled, 0, len(segs))

	var active scanlineOf
	if cfg.ResolveStrategy(len(segs)) == solver.List {
		active = newListScanLine()
	} else {
		active = newTreeScanLine()
	}
	debug.Printf("fill: %d segments, rule=%s", len(segs), rule)

	i := 0
	for i < len(segs) {
		j := i + 1
		for j < len(segs) && segs[j].XSegment.A.Eq(segs[i].XSegment.A) {
			j++
		}
		group := segs[i:j]
		sortClockwise(group)

		bot, _ := active.queryBelow(group[0].XSegment.A)

		for _, s := range group {
			top, segFill := rule.Apply(s.Count, bot)
			out = append(out, Filled{Segment: s, Fill: segFill})
			bot = top
			if !s.XSegment.IsVertical() {
				active.insert(s.XSegment, bot)
			}
		}

		i = j
	}

	return out, nil
}

// scanlineOf is the Filler's view of a scan line: query-by-point and insert-under-count,
// instead of the generic key/value [scanline.ScanLine] contract, because the Filler's ordering
// key is a whole XSegment (compared via the "is-under-segment" comparator) while the value
// carried is the region-below ShapeCount, and expired entries must be skipped transparently on
// every query.
type scanlineOf interface {
	queryBelow(p point.Point[int32]) (segment.ShapeCount, bool)
	insert(xseg segment.XSegment, bot segment.ShapeCount)
}
