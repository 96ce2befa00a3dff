package fill

import (
	"sort"

	"github.com/kestrel-geo/overlay2d/numeric"
	"github.com/kestrel-geo/overlay2d/segment"
)

// sortClockwise orders a group of segments that share a start point by the angle of their
// direction vector. Exact integer comparison, no atan2: fill.Apply only ever calls this on
// direction vectors anchored at a segment's XSegment.A endpoint, and the A<B invariant
// restricts every such vector to the closed right half-plane (dx>0, any dy; or dx==0 with
// dy>0 for a vertical-up edge) — a span of exactly 180 degrees, never a full circle. Within a
// span that narrow, ascending angle is a single cross-product comparison with no wraparound
// to worry about, except the dx==0 vertical-up edge, which has no symmetric dx==0,dy<0
// counterpart to compare against and must be special-cased as the largest angle (sorts last).
// The ordering only needs to be internally consistent — the Filler applies the FillRule to a
// group in this order and must visit the segment with the smallest winding region first,
// whichever direction that is.
func sortClockwise(group []segment.Segment) {
	sort.SliceStable(group, func(i, j int) bool {
		iDX, iDY := direction(group[i])
		jDX, jDY := direction(group[j])

		iVert, jVert := iDX == 0, jDX == 0
		switch {
		case iVert && jVert:
			return false
		case iVert:
			return false
		case jVert:
			return true
		default:
			return numeric.CrossSign(0, 0, iDX, iDY, jDX, jDY) > 0
		}
	})
}

func direction(s segment.Segment) (dx, dy int64) {
	return int64(s.XSegment.B.X()) - int64(s.XSegment.A.X()),
		int64(s.XSegment.B.Y()) - int64(s.XSegment.A.Y())
}
