package fill

import (
	"github.com/kestrel-geo/overlay2d/numeric"
	"github.com/kestrel-geo/overlay2d/segment"
)

// yAtX estimates the y-coordinate of xseg directly above or below x, rounding half up. The
// Splitter's postcondition guarantees no two surviving segments cross in their interior
// (spec.md §4.2's invariant), so this need only be self-consistent across repeated calls for
// the same xseg, not exact to the bit: it exists purely to order the Filler's scan line and
// decide which active entry sits directly below a query point.
func yAtX(xseg segment.XSegment, x int32) int64 {
	if xseg.IsVertical() {
		return int64(xseg.A.Y())
	}

	dx := int64(xseg.B.X()) - int64(xseg.A.X())
	dy := int64(xseg.B.Y()) - int64(xseg.A.Y())
	offset := int64(x) - int64(xseg.A.X())

	hi, lo := numeric.Mul128(dy, offset)
	return int64(xseg.A.Y()) + numeric.DivRoundHalfUp128(hi, lo, dx)
}
