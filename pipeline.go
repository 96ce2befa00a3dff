package overlay2d

import (
	"context"

	"github.com/kestrel-geo/overlay2d/fill"
	"github.com/kestrel-geo/overlay2d/graph"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
	"github.com/kestrel-geo/overlay2d/split"
)

// includer is satisfied by [segment.OverlayRule], [segment.ClipRule], and [segment.SliceRule]
// alike; it is the inclusion policy graph.Build filters the Filler's output through before the
// extract package walks the result.
type includer interface {
	Includes(segment.SegmentFill) bool
}

// runPipeline runs the Splitter, Filler, and Grapher stages in sequence: segs is split until no
// two distinct segments cross, the result is annotated with fillRule's SegmentFill, and the
// graph is built keeping only the links rule.Includes accepts.
func runPipeline(ctx context.Context, segs []segment.Segment, fillRule segment.FillRule, rule includer, cfg solver.Solver) (graph.Graph, error) {
	clean, err := split.Apply(ctx, segs, cfg)
	if err != nil {
		return graph.Graph{}, err
	}

	filled, err := fill.Apply(ctx, clean, fillRule, cfg)
	if err != nil {
		return graph.Graph{}, err
	}

	return graph.Build(ctx, filled, rule.Includes, cfg)
}

// contoursToSegments converts a batch of contours into segments, crediting each with count as
// its per-contour winding contribution.
func contoursToSegments(contours []Contour, count segment.ShapeCount) []segment.Segment {
	var segs []segment.Segment
	for _, c := range contours {
		segs = append(segs, ringSegments(c, count)...)
	}
	return segs
}

func polylinesToSegments(lines []Polyline) []segment.Segment {
	var segs []segment.Segment
	for _, l := range lines {
		segs = append(segs, polylineSegments(l)...)
	}
	return segs
}
