package overlay2d

import (
	"context"

	"github.com/kestrel-geo/overlay2d/extract"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

// Slice divides subject along lines, resolving subject's fill per fillRule, and returns one
// shape per resulting piece. Unlike [Boolean], which only keeps a link where its two sides
// disagree on membership, Slice keeps a cut line's fragments even where both sides are filled
// subject interior ([segment.SliceRule]), which is what lets a single interior cut line
// physically separate one shape into two.
func Slice(ctx context.Context, subject []Contour, lines []Polyline, fillRule segment.FillRule, opts ...solver.Option) ([]extract.Shape, error) {
	cfg := solver.New(opts...)

	segs := contoursToSegments(subject, segment.ShapeCount{Subj: 1})
	segs = append(segs, polylinesToSegments(lines)...)

	rule := segment.SliceRule{}
	g, err := runPipeline(ctx, segs, fillRule, rule, cfg)
	if err != nil {
		return nil, err
	}

	return extract.Shapes(ctx, g, rule)
}
