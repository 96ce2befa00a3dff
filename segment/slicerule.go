package segment

// SliceRule selects which links belong to a slice (cut) extraction's output. Grounded on
// iOverlay's StringRule::Slice (original_source iOverlay/src/string/slice.rs): a string line
// drawn through a shape divides it into pieces only where the line runs through the shape's
// filled interior; a Boolean OverlayRule never keeps such a link, since both its sides agree on
// subject fill, but a slice needs exactly that link to trace each piece's boundary separately.
type SliceRule struct{}

// Includes reports whether a link with the given SegmentFill belongs in a slice's output: a
// subject boundary edge (the two sides disagree on fill) always qualifies, and a cut-line
// fragment (ClipAbove or ClipBelow set) additionally qualifies when both sides are filled
// subject interior, which is exactly where it divides one piece from another.
func (SliceRule) Includes(fill SegmentFill) bool {
	above, below := fill.Has(SubjAbove), fill.Has(SubjBelow)
	if above != below {
		return true
	}
	if !fill.Has(ClipAbove) && !fill.Has(ClipBelow) {
		return false
	}
	return above && below
}
