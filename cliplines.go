package overlay2d

import (
	"context"

	"github.com/kestrel-geo/overlay2d/extract"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

// ClipLines clips lines against subject's fill (resolved per fillRule), keeping the portions
// clipRule selects, and returns the surviving open polylines.
func ClipLines(ctx context.Context, subject []Contour, lines []Polyline, fillRule segment.FillRule, clipRule segment.ClipRule, opts ...solver.Option) ([]Polyline, error) {
	cfg := solver.New(opts...)

	segs := contoursToSegments(subject, segment.ShapeCount{Subj: 1})
	segs = append(segs, polylinesToSegments(lines)...)

	g, err := runPipeline(ctx, segs, fillRule, clipRule, cfg)
	if err != nil {
		return nil, err
	}

	return extract.Lines(ctx, g, clipRule)
}
