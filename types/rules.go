package types

import "fmt"

// FillRule selects the predicate that maps an accumulated winding count to an in/out
// decision for a polygon's interior. It is supplied to the Filler (see package fill) and
// consumed independently for the subject side and the clip side of a [ShapeCount]-like pair.
type FillRule uint8

// Valid values for FillRule.
const (
	// EvenOdd treats a point as inside when the winding count is odd.
	EvenOdd FillRule = iota

	// NonZero treats a point as inside when the winding count is non-zero.
	NonZero

	// Positive treats a point as inside when the winding count is strictly positive.
	Positive

	// Negative treats a point as inside when the winding count is strictly negative.
	Negative
)

// String returns the name of the FillRule constant.
//
// Panics if r is not one of the defined constants.
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
		panic(fmt.Errorf("unsupported FillRule: %d", r))
	}
}

// OverlayRule selects which side of the arrangement a closed-polygon Boolean operation keeps.
type OverlayRule uint8

// Valid values for OverlayRule.
const (
	// Subject keeps the subject shapes unmodified by the clip shapes.
	Subject OverlayRule = iota

	// Clip keeps the clip shapes unmodified by the subject shapes.
	Clip

	// Union keeps everything covered by subject or clip.
	Union

	// Intersect keeps only what's covered by both subject and clip.
	Intersect

	// Difference keeps subject minus clip.
	Difference

	// InverseDifference keeps clip minus subject.
	InverseDifference

	// Xor keeps what's covered by exactly one of subject or clip.
	Xor

	// Identity produces the triple (subject, subject∩clip, clip\subject). See SPEC_FULL.md's
	// Design Notes for why this reading was chosen over leaving Identity unimplemented.
	Identity
)

// String returns the name of the OverlayRule constant.
//
// Panics if r is not one of the defined constants.
func (r OverlayRule) String() string {
	switch r {
	case Subject:
		return "Subject"
	case Clip:
		return "Clip"
	case Union:
		return "Union"
	case Intersect:
		return "Intersect"
	case Difference:
		return "Difference"
	case InverseDifference:
		return "InverseDifference"
	case Xor:
		return "Xor"
	case Identity:
		return "Identity"
	default:
		panic(fmt.Errorf("unsupported OverlayRule: %d", r))
	}
}

// ClipRule selects which links of a string-clip arrangement survive the inclusion filter.
// It is the product of two independent booleans, matching spec.md §4.5 and §6.
type ClipRule struct {
	// Invert, when true, keeps the portions of the string lines OUTSIDE the subject instead
	// of inside.
	Invert bool

	// BoundaryIncluded, when true, keeps string-line segments that lie exactly on the
	// subject's boundary.
	BoundaryIncluded bool
}

// StringRule selects the output shape of a string-clip operation that slices a subject
// into polygonal pieces along a set of string lines, rather than emitting line fragments.
type StringRule uint8

// Valid values for StringRule. Slice is currently the only supported rule (see spec.md §6).
const (
	// Slice cuts the subject into polygon fragments along the string lines.
	Slice StringRule = iota
)

// String returns the name of the StringRule constant.
//
// Panics if r is not one of the defined constants.
func (r StringRule) String() string {
	switch r {
	case Slice:
		return "Slice"
	default:
		panic(fmt.Errorf("unsupported StringRule: %d", r))
	}
}
