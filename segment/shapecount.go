package segment

import "fmt"

// String-line direction bits packed into ShapeCount.Clip when a Segment was contributed by a
// string line rather than a closed polygon (spec.md §4.5). StringForwardClip marks a fragment
// whose original a < b; StringBackClip marks one whose original a > b (reversed by
// NewSegment/NewXSegment's A<B normalization). The two bits are mutually exclusive per segment
// but accumulate across merged co-located fragments like any other ShapeCount field.
const (
	StringForwardClip int32 = 1
	StringBackClip    int32 = 2
)

// ShapeCount is the per-side winding contribution a segment adds to the arrangement: Subj for
// the subject shape set, Clip for the clip shape set (or, in string mode, the direction bits
// above). Addition is componentwise (spec.md §3).
type ShapeCount struct {
	Subj, Clip int32
}

// Add returns the componentwise sum of c and other, the merge rule the Splitter's apply step
// and the Filler's scan line both use when co-located segments coincide.
func (c ShapeCount) Add(other ShapeCount) ShapeCount {
	return ShapeCount{Subj: c.Subj + other.Subj, Clip: c.Clip + other.Clip}
}

// Negate returns the componentwise negation of c, used when a segment's endpoints are
// swapped to satisfy XSegment's A<B invariant.
func (c ShapeCount) Negate() ShapeCount {
	return ShapeCount{Subj: -c.Subj, Clip: -c.Clip}
}

// IsEmpty reports whether both fields are zero. An empty count after merging means the
// segment contributes nothing to the arrangement and is dropped (spec.md §4.2 apply step).
func (c ShapeCount) IsEmpty() bool {
	return c.Subj == 0 && c.Clip == 0
}

// String returns "{subj,clip}".
func (c ShapeCount) String() string {
	return fmt.Sprintf("{%d,%d}", c.Subj, c.Clip)
}
