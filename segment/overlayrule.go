package segment

import "fmt"

// OverlayRule selects which side of each filled link the Grapher's inclusion filter keeps for
// a closed-polygon boolean operation (spec.md §4.4, §4.5).
type OverlayRule uint8

const (
	// Union keeps boundaries between filled-above and unfilled-below, on either side.
	Union OverlayRule = iota

	// Intersection keeps boundaries where both subject and clip agree on fill.
	Intersection

	// Difference keeps clip-interior boundaries only on the subject side (subj minus clip).
	Difference

	// Xor keeps boundaries where exactly one of subject/clip is filled.
	Xor
)

func (r OverlayRule) String() string {
	switch r {
	case Union:
		return "Union"
	case Intersection:
		return "Intersection"
	case Difference:
		return "Difference"
	case Xor:
		return "Xor"
	default:
		panic(fmt.Errorf("segment: unsupported OverlayRule: %d", r))
	}
}

// Includes reports whether a link with the given SegmentFill belongs in the output of a
// closed-polygon boolean operation under r (spec.md §4.4's "inclusion filter" and §4.5).
// A link is kept when its two sides disagree on membership in the operation's result region;
// that disagreement is exactly what makes the link a boundary of the result.
func (r OverlayRule) Includes(fill SegmentFill) bool {
	subjAbove, subjBelow := fill.Has(SubjAbove), fill.Has(SubjBelow)
	clipAbove, clipBelow := fill.Has(ClipAbove), fill.Has(ClipBelow)

	memberAbove := r.member(subjAbove, clipAbove)
	memberBelow := r.member(subjBelow, clipBelow)
	return memberAbove != memberBelow
}

func (r OverlayRule) member(subj, clip bool) bool {
	switch r {
	case Union:
		return subj || clip
	case Intersection:
		return subj && clip
	case Difference:
		return subj && !clip
	case Xor:
		return subj != clip
	default:
		panic(fmt.Errorf("segment: unsupported OverlayRule: %d", r))
	}
}
