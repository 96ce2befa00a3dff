package segment

// ClipRule selects which portions of a clip polyline the string-clipping inclusion filter
// keeps, relative to the subject shape's fill (spec.md §4.5).
type ClipRule struct {
	// Invert keeps the portions outside the subject instead of inside.
	Invert bool

	// BoundaryIncluded keeps portions that run exactly along the subject's boundary. Without
	// it, a clip line segment lying exactly on the subject's edge is dropped.
	BoundaryIncluded bool
}

// Includes reports whether a link with the given SegmentFill belongs in the output of a
// string-clipping operation under r. Only links carrying a clip contribution (ClipAbove or
// ClipBelow set) are eligible at all; spec.md §4.5: "selects links whose clip bits are set and
// whose subject-side fill count matches the requested ClipRule".
func (r ClipRule) Includes(fill SegmentFill) bool {
	if !fill.Has(ClipAbove) && !fill.Has(ClipBelow) {
		return false
	}

	above, below := fill.Has(SubjAbove), fill.Has(SubjBelow)
	if r.Invert {
		above, below = !above, !below
	}

	if above != below {
		// The link runs exactly along the subject's boundary: one side is inside, one out.
		return r.BoundaryIncluded
	}
	// Both sides agree: the link is either fully interior (above == below == true, keep) or
	// fully exterior (above == below == false, drop).
	return above
}
