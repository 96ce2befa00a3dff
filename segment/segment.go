// Package segment defines the arrangement kernel's segment model: XSegment (an
// order-normalized endpoint pair), ShapeCount (per-side winding contribution), SegmentFill
// (the four-bit fill annotation), and the segment intersection kernel that the Splitter
// (package split) and Filler (package fill) both depend on.
package segment

import (
	"fmt"

	"github.com/kestrel-geo/overlay2d/point"
)

// XSegment is an ordered pair of points with the invariant A < B under point.Point's total
// order (x then y). Total order on XSegment itself is lexicographic on (A, B).
type XSegment struct {
	A, B point.Point[int32]
}

// NewXSegment builds an XSegment from two endpoints, swapping them if necessary so A < B.
// NewXSegment panics on a zero-length segment: upstream invariants forbid degenerate
// segments from reaching the kernel (spec's "segment constructor... rejecting the
// zero-length degenerate case").
func NewXSegment(a, b point.Point[int32]) XSegment {
	if a.Eq(b) {
		panic(fmt.Errorf("segment: degenerate zero-length segment at %s", a))
	}
	if b.Less(a) {
		a, b = b, a
	}
	return XSegment{A: a, B: b}
}

// Compare orders two XSegments lexicographically on (A, B), returning -1, 0, or +1.
func (s XSegment) Compare(other XSegment) int {
	if c := s.A.Compare(other.A); c != 0 {
		return c
	}
	return s.B.Compare(other.B)
}

// Less reports whether s sorts strictly before other.
func (s XSegment) Less(other XSegment) bool {
	return s.Compare(other) < 0
}

// Eq reports whether s and other have identical endpoints.
func (s XSegment) Eq(other XSegment) bool {
	return s.A.Eq(other.A) && s.B.Eq(other.B)
}

// IsVertical reports whether the segment runs parallel to the y-axis.
func (s XSegment) IsVertical() bool {
	return s.A.X() == s.B.X()
}

// IsHorizontal reports whether the segment runs parallel to the x-axis.
func (s XSegment) IsHorizontal() bool {
	return s.A.Y() == s.B.Y()
}

// IsIsoAxis reports whether the segment is horizontal, vertical, or diagonal at slope ±1 —
// the population the Splitter's iso-axis fast path handles in closed form without rounding.
func (s XSegment) IsIsoAxis() bool {
	dx := int64(s.B.X()) - int64(s.A.X())
	dy := int64(s.B.Y()) - int64(s.A.Y())
	return dx == 0 || dy == 0 || dx == dy || dx == -dy
}

// String returns "(ax,ay)-(bx,by)".
func (s XSegment) String() string {
	return fmt.Sprintf("%s-%s", s.A, s.B)
}

// Segment pairs an XSegment with the ShapeCount it contributes to the arrangement. Two
// Segments are co-located when their XSegments are equal (spec.md §3).
type Segment struct {
	XSegment
	Count ShapeCount
}

// NewSegment builds a Segment from two endpoints and a count, normalizing endpoint order.
// When the endpoints had to be swapped to satisfy A < B, the count's winding contribution is
// negated to preserve the segment's original orientation (a segment traversed b->a contributes
// the opposite winding of one traversed a->b).
func NewSegment(a, b point.Point[int32], count ShapeCount) Segment {
	if b.Less(a) {
		return Segment{XSegment: XSegment{A: b, B: a}, Count: count.Negate()}
	}
	return Segment{XSegment: XSegment{A: a, B: b}, Count: count}
}

// String returns the segment's endpoints followed by its count, e.g. "(0,0)-(1,1) {1,0}".
func (s Segment) String() string {
	return fmt.Sprintf("%s %s", s.XSegment, s.Count)
}
