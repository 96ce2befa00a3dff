package segment

import (
	"fmt"

	"github.com/kestrel-geo/overlay2d/numeric"
	"github.com/kestrel-geo/overlay2d/point"
)

// Classification describes how two XSegments meet, per the intersection kernel (spec.md §4.1).
type Classification uint8

const (
	// None means the segments do not intersect in the closed domain.
	None Classification = iota

	// Pure means the interiors of both segments cross at a single point.
	Pure

	// TargetEnd means the intersection point is one of the target segment's own endpoints,
	// lying on the interior of the other segment.
	TargetEnd

	// OtherEnd is the symmetric case: the intersection point is one of the other segment's
	// endpoints, lying on the interior of the target segment.
	OtherEnd

	// Overlay means the two segments are collinear and overlap on a sub-segment of positive
	// length; Result.OverlayMask then carries which endpoints lie strictly inside the
	// opposing segment.
	Overlay
)

func (c Classification) String() string {
	switch c {
	case None:
		return "None"
	case Pure:
		return "Pure"
	case TargetEnd:
		return "TargetEnd"
	case OtherEnd:
		return "OtherEnd"
	case Overlay:
		return "Overlay"
	default:
		panic(fmt.Errorf("segment: unsupported Classification: %d", c))
	}
}

// Overlap sub-mask bits, set in Result.OverlayMask when Class == Overlay, marking which
// endpoints of the pair lie strictly inside the opposing segment (spec.md §4.1).
const (
	OverlayTargetAInOther uint8 = 1 << iota
	OverlayTargetBInOther
	OverlayOtherAInTarget
	OverlayOtherBInTarget
)

// Result is the outcome of classifying one pair of XSegments against each other.
type Result struct {
	Class Classification

	// Point is the intersection point, valid when Class is Pure, TargetEnd, or OtherEnd.
	Point point.Point[int32]

	// IsRound reports whether Point was produced by rounding division (or snapped to an
	// endpoint) rather than recovered exactly.
	IsRound bool

	// OverlayMask is valid when Class == Overlay; see the OverlayTarget*/OverlayOther* bits.
	OverlayMask uint8
}

// Intersect classifies how target and other meet, using snapRadius (a squared-distance
// threshold) to decide whether a rounded crossing point snaps onto a nearby endpoint
// (spec.md §4.1).
func Intersect(target, other XSegment, snapRadius int64) Result {
	// T.a/T.b relative to O's supporting line, O.a/O.b relative to T's supporting line.
	ta := crossSign(other.A, other.B, target.A)
	tb := crossSign(other.A, other.B, target.B)
	oa := crossSign(target.A, target.B, other.A)
	ob := crossSign(target.A, target.B, other.B)

	switch {
	case ta == 0 && tb == 0:
		return classifyCollinear(target, other)

	case ta == 0 && onSegmentInterior(target.A, other.A, other.B):
		return Result{Class: TargetEnd, Point: target.A}

	case tb == 0 && onSegmentInterior(target.B, other.A, other.B):
		return Result{Class: TargetEnd, Point: target.B}

	case oa == 0 && onSegmentInterior(other.A, target.A, target.B):
		return Result{Class: OtherEnd, Point: other.A}

	case ob == 0 && onSegmentInterior(other.B, target.A, target.B):
		return Result{Class: OtherEnd, Point: other.B}

	case ta*tb < 0 && oa*ob < 0:
		return classifyCrossing(target, other, snapRadius)

	default:
		return Result{Class: None}
	}
}

// classifyCrossing computes the proper interior crossing point of target and other, which
// Intersect has already established cross each other's supporting lines. It shifts the
// coordinate frame to target.A to keep intermediate products small, solves the 2x2 linear
// system with 128-bit multiplication, and rounds half-up (spec.md §4.1, §6).
func classifyCrossing(target, other XSegment, snapRadius int64) Result {
	d1x, d1y := int64(target.B.X())-int64(target.A.X()), int64(target.B.Y())-int64(target.A.Y())
	d2x, d2y := int64(other.B.X())-int64(other.A.X()), int64(other.B.Y())-int64(other.A.Y())
	oax, oay := int64(other.A.X())-int64(target.A.X()), int64(other.A.Y())-int64(target.A.Y())

	// denom and tNum are cross products of coordinate differences already bounded by the
	// documented input range (spec.md §6: "fits in 63 bits"), so plain int64 arithmetic is
	// exact here; only the final px/py products need 128-bit widening.
	denom := d1x*d2y - d1y*d2x
	tNum := oax*d2y - oay*d2x

	hiX, loX := numeric.Mul128(d1x, tNum)
	qx := divRoundHalfUp(hiX, loX, denom)
	px := int64(target.A.X()) + qx

	hiY, loY := numeric.Mul128(d1y, tNum)
	qy := divRoundHalfUp(hiY, loY, denom)
	py := int64(target.A.Y()) + qy

	p := point.New(int32(px), int32(py))

	if crossSign(target.A, target.B, p) == 0 && crossSign(other.A, other.B, p) == 0 {
		return Result{Class: Pure, Point: p, IsRound: false}
	}

	if snapped, class, ok := snapToEndpoint(p, target, other, snapRadius); ok {
		return Result{Class: class, Point: snapped, IsRound: true}
	}
	return Result{Class: Pure, Point: p, IsRound: true}
}

// snapToEndpoint finds the nearest of target's and other's own endpoints to p that lies
// within snapRadius (a squared distance), if any, and reports which side it belongs to.
func snapToEndpoint(p point.Point[int32], target, other XSegment, snapRadius int64) (point.Point[int32], Classification, bool) {
	candidates := [...]struct {
		p     point.Point[int32]
		class Classification
	}{
		{target.A, TargetEnd},
		{target.B, TargetEnd},
		{other.A, OtherEnd},
		{other.B, OtherEnd},
	}

	best := -1
	var bestDist int64
	for i, c := range candidates {
		d := squaredDistance(p, c.p)
		if d <= snapRadius && (best == -1 || d < bestDist) {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return point.Point[int32]{}, None, false
	}
	return candidates[best].p, candidates[best].class, true
}

// classifyCollinear handles the case where target's two endpoints both lie on other's
// supporting line (and, symmetrically, other's endpoints lie on target's), deciding the
// overlap sub-mask via a dot-product containment test (spec.md §4.1).
func classifyCollinear(target, other XSegment) Result {
	var mask uint8
	if strictlyInside(target.A, other.A, other.B) {
		mask |= OverlayTargetAInOther
	}
	if strictlyInside(target.B, other.A, other.B) {
		mask |= OverlayTargetBInOther
	}
	if strictlyInside(other.A, target.A, target.B) {
		mask |= OverlayOtherAInTarget
	}
	if strictlyInside(other.B, target.A, target.B) {
		mask |= OverlayOtherBInTarget
	}
	if mask == 0 {
		// Collinear but disjoint, or touching only at a shared endpoint: no split needed.
		return Result{Class: None}
	}
	return Result{Class: Overlay, OverlayMask: mask}
}

func crossSign(a, b, c point.Point[int32]) int {
	return numeric.CrossSign(int64(a.X()), int64(a.Y()), int64(b.X()), int64(b.Y()), int64(c.X()), int64(c.Y()))
}

func dotSign(a, b, c point.Point[int32]) int {
	return numeric.DotSign(int64(a.X()), int64(a.Y()), int64(b.X()), int64(b.Y()), int64(c.X()), int64(c.Y()))
}

// strictlyInside reports whether p projects strictly between a and b along the a->b
// direction (spec.md §4.1's overlap-submask dot-product test).
func strictlyInside(p, a, b point.Point[int32]) bool {
	return dotSign(a, b, p) > 0 && dotSign(b, a, p) > 0
}

// onSegmentInterior reports whether p lies within the closed bounding box of [a,b] but is
// not equal to either endpoint. Combined with a zero cross-product test, this identifies a
// genuine endpoint-touches-interior intersection rather than two segments merely sharing a
// vertex (which needs no split).
func onSegmentInterior(p, a, b point.Point[int32]) bool {
	return withinBounds(p, a, b) && !p.Eq(a) && !p.Eq(b)
}

func withinBounds(p, a, b point.Point[int32]) bool {
	minX, maxX := a.X(), b.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y(), b.Y()
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return minX <= p.X() && p.X() <= maxX && minY <= p.Y() && p.Y() <= maxY
}

func squaredDistance(a, b point.Point[int32]) int64 {
	dx := int64(a.X()) - int64(b.X())
	dy := int64(a.Y()) - int64(b.Y())
	return dx*dx + dy*dy
}

// divRoundHalfUp divides the signed 128-bit value (hi, lo) by divisor, rounding half-up on
// the magnitude, accepting a divisor of either sign (numeric.DivRoundHalfUp128 requires a
// positive divisor).
func divRoundHalfUp(hi, lo uint64, divisor int64) int64 {
	if divisor < 0 {
		hi, lo = numeric.Neg128(hi, lo)
		divisor = -divisor
	}
	return numeric.DivRoundHalfUp128(hi, lo, divisor)
}
