package split

import (
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
)

// isoAxisIntersect computes the exact crossing point of two iso-axis segments (horizontal,
// vertical, or diagonal at slope ±1) in closed form, with no rounding and no call into the
// general kernel. It reports ok=false whenever the pair isn't both iso-axis, is parallel, or
// doesn't actually cross within both segments' bounds — callers fall back to
// [segment.Intersect] in that case.
//
// This is the Splitter's fast path (spec.md §4.2): most real-world arrangements are built from
// axis-aligned or 45-degree edges, and those pairs never need the snap-radius machinery at all.
func isoAxisIntersect(a, b segment.XSegment) (point.Point[int32], bool) {
	if !a.IsIsoAxis() || !b.IsIsoAxis() {
		return point.Point[int32]{}, false
	}

	aVert, aHoriz := a.IsVertical(), a.IsHorizontal()
	bVert, bHoriz := b.IsVertical(), b.IsHorizontal()

	switch {
	case aVert && bHoriz:
		return vertHorizPoint(a, b)
	case aHoriz && bVert:
		return vertHorizPoint(b, a)
	case aVert && bVert, aHoriz && bHoriz:
		// Parallel axis-aligned segments never cross at an interior point worth a fast path;
		// collinear overlaps are rare enough to leave to the general kernel.
		return point.Point[int32]{}, false
	case aVert:
		return vertDiagPoint(a, b)
	case bVert:
		return vertDiagPoint(b, a)
	case aHoriz:
		return horizDiagPoint(a, b)
	case bHoriz:
		return horizDiagPoint(b, a)
	default:
		return diagDiagPoint(a, b)
	}
}

// vertHorizPoint intersects vertical v with horizontal h at their trivial shared coordinate,
// accepting only if that point lies within both segments' bounds.
func vertHorizPoint(v, h segment.XSegment) (point.Point[int32], bool) {
	x, y := v.A.X(), h.A.Y()
	if y < v.A.Y() || y > v.B.Y() {
		return point.Point[int32]{}, false
	}
	if x < h.A.X() || x > h.B.X() {
		return point.Point[int32]{}, false
	}
	return point.New(x, y), true
}

// vertDiagPoint intersects vertical v with diagonal d (slope ±1) at d's exact y for v's x.
func vertDiagPoint(v, d segment.XSegment) (point.Point[int32], bool) {
	x := v.A.X()
	if x < d.A.X() || x > d.B.X() {
		return point.Point[int32]{}, false
	}
	dx := int64(x) - int64(d.A.X())
	slope := diagSlope(d)
	y := int64(d.A.Y()) + slope*dx
	if y < int64(v.A.Y()) || y > int64(v.B.Y()) {
		return point.Point[int32]{}, false
	}
	return point.New(x, int32(y)), true
}

// horizDiagPoint intersects horizontal h with diagonal d (slope ±1) at d's exact x for h's y.
func horizDiagPoint(h, d segment.XSegment) (point.Point[int32], bool) {
	y := h.A.Y()
	slope := diagSlope(d)
	dy := int64(y) - int64(d.A.Y())
	// dy must be an exact multiple of slope (±1), which it always is since slope is ±1.
	x := int64(d.A.X()) + slope*dy
	if x < int64(h.A.X()) || x > int64(h.B.X()) {
		return point.Point[int32]{}, false
	}
	if x < int64(d.A.X()) || x > int64(d.B.X()) {
		return point.Point[int32]{}, false
	}
	return point.New(int32(x), y), true
}

// diagDiagPoint intersects two non-parallel diagonals (one +1, one -1 slope) by solving the
// pair of exact linear equations y-slope1*x = k1, y-slope2*x = k2. The solution is only an
// integer point when k1-k2 is even; an odd difference means the two lattice diagonals cross
// strictly between lattice points, so there is no valid crossing to report.
func diagDiagPoint(a, b segment.XSegment) (point.Point[int32], bool) {
	sa, sb := diagSlope(a), diagSlope(b)
	if sa == sb {
		return point.Point[int32]{}, false
	}
	ka := int64(a.A.Y()) - sa*int64(a.A.X())
	kb := int64(b.A.Y()) - sb*int64(b.A.X())
	// y = sa*x + ka = sb*x + kb  =>  x*(sa-sb) = kb-ka
	diff := kb - ka
	denom := sa - sb
	if diff%denom != 0 {
		return point.Point[int32]{}, false
	}
	x := diff / denom
	y := sa*x + ka
	if x < int64(a.A.X()) || x > int64(a.B.X()) || x < int64(b.A.X()) || x > int64(b.B.X()) {
		return point.Point[int32]{}, false
	}
	if y < int64(minI(a.A.Y(), a.B.Y())) || y > int64(maxI(a.A.Y(), a.B.Y())) {
		return point.Point[int32]{}, false
	}
	if y < int64(minI(b.A.Y(), b.B.Y())) || y > int64(maxI(b.A.Y(), b.B.Y())) {
		return point.Point[int32]{}, false
	}
	return point.New(int32(x), int32(y)), true
}

// diagSlope returns +1 or -1 for a diagonal segment, derived from its endpoint displacement.
func diagSlope(s segment.XSegment) int64 {
	if s.B.Y() >= s.A.Y() {
		return 1
	}
	return -1
}

func minI(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
