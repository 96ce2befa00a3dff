// Package split implements the Splitter: see mark.go for the package doc comment.
package split

import (
	"context"
	"slices"

	"github.com/kestrel-geo/overlay2d/debug"
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

// Apply subdivides segments until no two distinct segments share an interior point, using the
// driver cfg.ResolveStrategy selects and escalating the snap radius across cfg.Precision's
// schedule whenever a pass reports it had to round an intersection onto an existing vertex
// (spec.md §4.2, §7).
//
// The returned batch is sorted by XSegment, has every co-located pair merged (their
// ShapeCounts summed) and every resulting empty-count segment dropped, matching the invariant
// the Merger/Sorter and Filler stages both depend on.
func Apply(ctx context.Context, segments []segment.Segment, cfg solver.Solver) ([]segment.Segment, error) {
	buf := slices.Clone(segments)
	if err := sortByXSegment(ctx, buf, cfg); err != nil {
		return nil, err
	}
	buf = mergeColocated(buf)

	strategy := cfg.ResolveStrategy(len(buf))
	debug.Printf("split: %d segments, strategy=%s", len(buf), strategy)

	for iteration := uint(0); iteration < uint(cfg.Precision.MaxIterations()); iteration++ {
		radius := cfg.Precision.Radius(iteration)

		var marks []Mark
		var needsAnotherPass bool

		switch strategy {
		case solver.List:
			marks, needsAnotherPass = listDriver(buf, radius)
		case solver.Tree:
			marks, needsAnotherPass = treeDriver(buf, radius)
		default:
			marks, needsAnotherPass = fragDriver(ctx, buf, radius, cfg)
		}

		debug.Printf("split: iteration %d, radius=%d, marks=%d, needsAnotherPass=%t", iteration, radius, len(marks), needsAnotherPass)

		if len(marks) == 0 {
			return buf, nil
		}

		buf = applyMarks(buf, marks)
		if err := sortByXSegment(ctx, buf, cfg); err != nil {
			return nil, err
		}
		buf = mergeColocated(buf)

		if !needsAnotherPass {
			return buf, nil
		}
	}

	return buf, nil
}

func sortByXSegment(ctx context.Context, buf []segment.Segment, cfg solver.Solver) error {
	return solver.Sort(ctx, buf, func(a, b segment.Segment) int { return a.XSegment.Compare(b.XSegment) }, cfg)
}

// applyMarks subdivides every marked segment at its recorded point(s), preserving each
// sub-segment's ShapeCount (a segment's winding contribution doesn't change when it's cut,
// spec.md §4.2) and dropping any mark that lands exactly on an existing endpoint.
func applyMarks(buf []segment.Segment, marks []Mark) []segment.Segment {
	bySegment := make(map[int][]Mark, len(marks))
	for _, m := range marks {
		bySegment[m.SegmentIndex] = append(bySegment[m.SegmentIndex], m)
	}

	out := make([]segment.Segment, 0, len(buf)+len(marks))
	for i, s := range buf {
		cuts := bySegment[i]
		if len(cuts) == 0 {
			out = append(out, s)
			continue
		}

		points := make([]point.Point[int32], 0, len(cuts)+2)
		points = append(points, s.XSegment.A, s.XSegment.B)
		for _, m := range cuts {
			points = append(points, m.Point)
		}
		slices.SortFunc(points, func(a, b point.Point[int32]) int { return a.Compare(b) })
		points = slices.CompactFunc(points, func(a, b point.Point[int32]) bool { return a.Eq(b) })

		for k := 0; k+1 < len(points); k++ {
			a, b := points[k], points[k+1]
			out = append(out, segment.NewSegment(a, b, s.Count))
		}
	}
	return out
}

// mergeColocated collapses adjacent co-located segments (identical XSegment, buf already
// sorted by XSegment) by summing their ShapeCounts, and drops any merge result whose count is
// empty on both sides — a segment two shapes traverse in opposite directions cancels out and
// contributes nothing to the arrangement (spec.md §4.2, §3).
func mergeColocated(buf []segment.Segment) []segment.Segment {
	out := buf[:0]
	for _, s := range buf {
		if n := len(out); n > 0 && out[n-1].XSegment.Eq(s.XSegment) {
			out[n-1].Count = out[n-1].Count.Add(s.Count)
			continue
		}
		out = append(out, s)
	}

	kept := out[:0]
	for _, s := range out {
		if !s.Count.IsEmpty() {
			kept = append(kept, s)
		}
	}
	return kept
}
