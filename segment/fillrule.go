package segment

import "fmt"

// FillRule selects how the Filler turns a running winding count into SegmentFill bits
// (spec.md §4.3).
type FillRule uint8

const (
	// EvenOdd sets a side's fill bit when that side's winding count is odd.
	EvenOdd FillRule = iota

	// NonZero sets a side's fill bit when that side's winding count is non-zero.
	NonZero

	// Positive sets a side's fill bit when that side's winding count is strictly positive.
	Positive

	// Negative sets a side's fill bit when that side's winding count is strictly negative.
	Negative
)

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		panic(fmt.Errorf("segment: unsupported FillRule: %d", r))
	}
}

// Apply computes the region ShapeCount above a segment (top) and that segment's SegmentFill,
// given the region ShapeCount below it (bot) and the segment's own winding contribution
// (this). top is always bot+this; the rule only decides which fill bits top and bot's signs
// or parity set (spec.md §4.3).
func (r FillRule) Apply(this, bot ShapeCount) (top ShapeCount, fill SegmentFill) {
	top = bot.Add(this)

	var satisfies func(n int32) bool
	switch r {
	case EvenOdd:
		satisfies = func(n int32) bool { return n%2 != 0 }
	case NonZero:
		satisfies = func(n int32) bool { return n != 0 }
	case Positive:
		satisfies = func(n int32) bool { return n > 0 }
	case Negative:
		satisfies = func(n int32) bool { return n < 0 }
	default:
		panic(fmt.Errorf("segment: unsupported FillRule: %d", r))
	}

	if satisfies(bot.Subj) {
		fill |= SubjBelow
	}
	if satisfies(top.Subj) {
		fill |= SubjAbove
	}
	if satisfies(bot.Clip) {
		fill |= ClipBelow
	}
	if satisfies(top.Clip) {
		fill |= ClipAbove
	}
	return top, fill
}
