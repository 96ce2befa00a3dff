// Package split implements the Splitter: the stage that subdivides a segment batch until no
// two distinct segments share an interior point (spec.md §4.2). Three interchangeable
// drivers — List, Tree, Frag — share the segment intersection kernel (package segment), the
// snap-radius policy (package solver), and the apply step in this package.
package split

import "github.com/kestrel-geo/overlay2d/point"

// Mark is a pending subdivision: segment at SegmentIndex must be split at Point. Marks are
// produced by driver passes and consumed by the apply step (spec.md §4.2, GLOSSARY).
type Mark struct {
	SegmentIndex int
	Point        point.Point[int32]
}

// dedupMarks removes exact duplicate (SegmentIndex, Point) marks, which the Fragment driver
// can produce when a segment pair shares more than one bin.
func dedupMarks(marks []Mark) []Mark {
	if len(marks) < 2 {
		return marks
	}
	seen := make(map[Mark]bool, len(marks))
	out := marks[:0]
	for _, m := range marks {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
