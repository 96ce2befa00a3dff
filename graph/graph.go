// Package graph implements the Grapher: it turns a filtered set of filled segments into a
// planar graph of OverlayNodes (distinct endpoint locations) and OverlayLinks (the surviving
// segments themselves), ready for the extract package's cycle and run walks (spec.md §4.4).
package graph

import (
	"context"

	"github.com/kestrel-geo/overlay2d/debug"
	"github.com/kestrel-geo/overlay2d/fill"
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

// OverlayLink is a directed record referencing its two endpoint nodes by index into the
// owning Graph's Nodes slice, carrying the SegmentFill the Filler computed for it.
type OverlayLink struct {
	AID, BID       uint32
	APoint, BPoint point.Point[int32]
	Fill           segment.SegmentFill

	// Count is the originating segment's ShapeCount, carried through past the Filler so that
	// string-mode extraction (package extract) can still read the StringForwardClip /
	// StringBackClip direction bit the fill computation itself does not need.
	Count segment.ShapeCount
}

// OverlayNode is a distinct endpoint location together with the indices of every OverlayLink
// incident on it, into the owning Graph's Links slice. A degree-2 node (len(Incident) == 2) is
// a plain pass-through point; anything else is a branch point a traversal must choose among —
// the spec's two-variant node ("pass-through" vs "crossing") is represented here as one slice
// rather than a tagged union, since Go callers only ever need len(Incident) to tell them apart.
type OverlayNode struct {
	Point    point.Point[int32]
	Incident []uint32
}

// Graph owns its nodes and links in two parallel slices indexed by uint32, rather than a
// pointer graph, the same slice/index preference the teacher's polytree.go shows for contour
// arrays (SPEC_FULL.md §4.4).
type Graph struct {
	Nodes []OverlayNode
	Links []OverlayLink
}

// end is the Grapher's per-link record of its b-endpoint, used only to drive the dual-cursor
// merge in Build.
type end struct {
	linkIdx int
	point   point.Point[int32]
}

// Build filters filled (already sorted by start point A, the Filler's postcondition) through
// include, then constructs the graph by the dual-cursor merge spec.md §4.4 describes: ends are
// sorted by b-point, and two cursors — one over links in their existing a-sorted order, one
// over ends in b-sorted order — always consume whichever cursor's current point is smaller,
// both when the points coincide. Each consumed group becomes one new node.
func Build(ctx context.Context, filled []fill.Filled, include func(segment.SegmentFill) bool, cfg solver.Solver) (Graph, error) {
	links := make([]OverlayLink, 0, len(filled))
	for _, f := range filled {
		if !include(f.Fill) {
			continue
		}
		links = append(links, OverlayLink{
			APoint: f.XSegment.A,
			BPoint: f.XSegment.B,
			Fill:   f.Fill,
			Count:  f.Segment.Count,
		})
	}

	ends := make([]end, len(links))
	for i, l := range links {
		ends[i] = end{linkIdx: i, point: l.BPoint}
	}
	if err := solver.Sort(ctx, ends, func(a, b end) int { return a.point.Compare(b.point) }, cfg); err != nil {
		return Graph{}, err
	}

	nodes := make([]OverlayNode, 0, len(links))
	li, ei := 0, 0
	for li < len(links) || ei < len(ends) {
		cur := nextCursor(links, ends, li, ei)

		nodeID := uint32(len(nodes))
		var incident []uint32

		for li < len(links) && links[li].APoint.Eq(cur) {
			links[li].AID = nodeID
			incident = append(incident, uint32(li))
			li++
		}
		for ei < len(ends) && ends[ei].point.Eq(cur) {
			links[ends[ei].linkIdx].BID = nodeID
			incident = append(incident, uint32(ends[ei].linkIdx))
			ei++
		}

		nodes = append(nodes, OverlayNode{Point: cur, Incident: incident})
	}

	debug.Printf("graph: %d links kept, %d nodes", len(links), len(nodes))
	return Graph{Nodes: nodes, Links: links}, nil
}

// nextCursor returns whichever of the current link's a-point or the current end's b-point
// sorts first, the value Build's next consumption group is centered on.
func nextCursor(links []OverlayLink, ends []end, li, ei int) point.Point[int32] {
	switch {
	case li >= len(links):
		return ends[ei].point
	case ei >= len(ends):
		return links[li].APoint
	case links[li].APoint.Less(ends[ei].point):
		return links[li].APoint
	default:
		return ends[ei].point
	}
}
