package overlay2d

import (
	"context"

	"github.com/kestrel-geo/overlay2d/extract"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

// Identity partitions a and b into the triple SPEC_FULL.md's Design Notes define:
// (a, a∩b, b\a) — a itself (not a\b), the part the two shapes share, and the part of b outside
// a. It composes three independent [Boolean]-family calls rather than adding a fourth overlay
// rule, since each region is already exactly one existing rule's result (aOnly: [Simplify] of a
// alone; aAndB: [segment.Intersection] of a and b; bOnly: [segment.Difference] of b minus a).
func Identity(ctx context.Context, a, b []Contour, fillRule segment.FillRule, opts ...solver.Option) (aOnly, aAndB, bOnly []extract.Shape, err error) {
	aOnly, err = Simplify(ctx, a, fillRule, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	aAndB, err = Boolean(ctx, a, b, fillRule, segment.Intersection, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	bOnly, err = Boolean(ctx, b, a, fillRule, segment.Difference, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return aOnly, aAndB, bOnly, nil
}
