package numeric

import (
	"math/bits"

	"github.com/kestrel-geo/overlay2d/types"
)

// Int is the constraint satisfied by the kernel's wire-width and widened-intermediate
// coordinate types (see spec.md §3: "All intermediate arithmetic uses 64-bit or 128-bit
// integers; final coordinates round back to 32-bit").
type Int interface {
	int32 | int64
}

// Mul128 returns the signed 128-bit product of a and b as (hi, lo) two's-complement limbs,
// where the full value is hi<<64 | lo. This is the "xyB × dx"-style widening multiply spec.md
// §6 calls for.
func Mul128(a, b int64) (hi, lo uint64) {
	// unsigned widening multiply, then patch the sign.
	ua, ub := uint64(a), uint64(b)
	hi, lo = bits.Mul64(ua, ub)
	if a < 0 {
		hi -= ub
	}
	if b < 0 {
		hi -= ua
	}
	return hi, lo
}

// Add128 adds two signed 128-bit values given as (hi, lo) limbs.
func Add128(aHi, aLo, bHi, bLo uint64) (hi, lo uint64) {
	var carry uint64
	lo, carry = bits.Add64(aLo, bLo, 0)
	hi, _ = bits.Add64(aHi, bHi, carry)
	return hi, lo
}

// Neg128 negates a signed 128-bit value given as (hi, lo) limbs.
func Neg128(hi, lo uint64) (nHi, nLo uint64) {
	nLo = -lo
	nHi = ^hi
	if lo == 0 {
		nHi++
	}
	return nHi, nLo
}

// isNeg128 reports whether the 128-bit two's-complement value (hi, lo) is negative.
func isNeg128(hi uint64) bool {
	return hi>>63 == 1
}

// DivRoundHalfUp128 divides the signed 128-bit value (hi, lo) by the positive int64 divisor,
// rounding ties away from zero (round-half-up on the magnitude), per spec.md §4.1 and §6:
// "Division rounds to nearest (ties up)". divisor must be > 0; the dividend must fit in the
// divisor's range once rounded, i.e. the true quotient must fit in an int64 — this holds
// under the documented coordinate bounds (spec.md §6), so overflow here is a programmer error
// (spec.md §7's NumericOverflow: "treated as a programmer error and reported as a
// panic-equivalent abort").
func DivRoundHalfUp128(hi, lo uint64, divisor int64) int64 {
	if divisor <= 0 {
		panic("numeric: DivRoundHalfUp128 requires a positive divisor")
	}

	neg := isNeg128(hi)
	if neg {
		hi, lo = Neg128(hi, lo)
	}

	d := uint64(divisor)
	q, r := bits.Div64(hi, lo, d)

	// round half up on the magnitude: if the remainder is at least half the divisor,
	// bump the quotient away from zero.
	if 2*r >= d {
		q++
	}

	if neg {
		return -int64(q)
	}
	return int64(q)
}

// CrossSign returns the sign of the cross product (b-a) x (c-a) for three points given as
// raw coordinate pairs, using exact 128-bit intermediate arithmetic so it never overflows
// under the documented coordinate bounds. It is the integer analogue of
// point/orientation.go's floating-point Orientation predicate, and underlies the segment
// intersection kernel's clockwise/collinear classification (spec.md §4.1).
//
// Returns -1, 0, or +1 for clockwise, collinear, and counterclockwise respectively, matching
// [types.PointOrientation]'s encoding via [SignToOrientation].
func CrossSign(ax, ay, bx, by, cx, cy int64) int {
	abx, aby := bx-ax, by-ay
	acx, acy := cx-ax, cy-ay

	hi1, lo1 := Mul128(abx, acy)
	hi2, lo2 := Mul128(aby, acx)
	nHi2, nLo2 := Neg128(hi2, lo2)
	hi, lo := Add128(hi1, lo1, nHi2, nLo2)

	if hi == 0 && lo == 0 {
		return 0
	}
	if isNeg128(hi) {
		return -1
	}
	return 1
}

// SignToOrientation converts a CrossSign result (-1, 0, +1) into a [types.PointOrientation],
// matching the convention that a positive cross product is counterclockwise (spec.md's
// "positive CCW" winding-count convention in the GLOSSARY).
func SignToOrientation(sign int) types.PointOrientation {
	switch {
	case sign == 0:
		return types.PointsCollinear
	case sign > 0:
		return types.PointsCounterClockwise
	default:
		return types.PointsClockwise
	}
}

// DotSign returns the sign of the dot product (b-a)·(c-a), used by the intersection kernel's
// collinear-overlap test (spec.md §4.1: "a dot-product test between their direction and
// their displacement vectors decides the overlap sub-mask").
func DotSign(ax, ay, bx, by, cx, cy int64) int {
	abx, aby := bx-ax, by-ay
	acx, acy := cx-ax, cy-ay

	hi1, lo1 := Mul128(abx, acx)
	hi2, lo2 := Mul128(aby, acy)
	hi, lo := Add128(hi1, lo1, hi2, lo2)

	if hi == 0 && lo == 0 {
		return 0
	}
	if isNeg128(hi) {
		return -1
	}
	return 1
}
