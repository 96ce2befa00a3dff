package overlay2d

import (
	"context"

	"github.com/kestrel-geo/overlay2d/extract"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

// Boolean computes the closed-polygon Boolean operation overlayRule selects between subject
// and clip, resolving each side's fill per fillRule, and returns the result as nested
// outer/hole shapes.
func Boolean(ctx context.Context, subject, clip []Contour, fillRule segment.FillRule, overlayRule segment.OverlayRule, opts ...solver.Option) ([]extract.Shape, error) {
	cfg := solver.New(opts...)

	segs := contoursToSegments(subject, segment.ShapeCount{Subj: 1})
	segs = append(segs, contoursToSegments(clip, segment.ShapeCount{Clip: 1})...)

	g, err := runPipeline(ctx, segs, fillRule, overlayRule, cfg)
	if err != nil {
		return nil, err
	}

	return extract.Shapes(ctx, g, overlayRule)
}

// Simplify resolves self-intersections and overlaps within a single contour set, returning its
// outer/hole shapes under fillRule. It is [Boolean] against an empty clip set with
// [segment.Union]: with the clip filled nowhere, Union keeps exactly the subject's own boundary
// under fillRule (Difference and Xor would keep the same boundary; Intersection would keep
// nothing).
func Simplify(ctx context.Context, contours []Contour, fillRule segment.FillRule, opts ...solver.Option) ([]extract.Shape, error) {
	return Boolean(ctx, contours, nil, fillRule, segment.Union, opts...)
}
