package extract

import (
	"context"

	"github.com/kestrel-geo/overlay2d/graph"
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
)

// Lines walks g's connected runs under rule's string-clip inclusion filter and emits one open
// polyline per run, grounded on iOverlay's string.rs traversal-cursor idiom (walk a run end to
// end, respecting the fragment's original direction where the walk has a choice of which end
// to start from).
func Lines(ctx context.Context, g graph.Graph, rule segment.ClipRule) ([][]point.Point[int32], error) {
	var kept []int
	for i, l := range g.Links {
		if rule.Includes(l.Fill) {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}

	adjacency := make(map[uint32][]int, len(kept)*2)
	for _, li := range kept {
		l := g.Links[li]
		adjacency[l.AID] = append(adjacency[l.AID], li)
		adjacency[l.BID] = append(adjacency[l.BID], li)
	}

	visited := make(map[int]bool, len(kept))
	var lines [][]point.Point[int32]
	for _, li := range kept {
		if visited[li] {
			continue
		}
		lines = append(lines, walkRun(g, adjacency, visited, li))
	}

	return lines, nil
}

// walkRun walks the connected run containing the link at start, beginning at whichever
// endpoint has the lower degree (a genuine open end of the run) and, for a tie, the endpoint
// consistent with start's own StringForwardClip/StringBackClip direction bit.
func walkRun(g graph.Graph, adjacency map[uint32][]int, visited map[int]bool, start int) []point.Point[int32] {
	l := g.Links[start]
	aDeg, bDeg := len(adjacency[l.AID]), len(adjacency[l.BID])

	node := l.AID
	switch {
	case bDeg < aDeg:
		node = l.BID
	case aDeg == bDeg && l.Count.Clip&segment.StringBackClip != 0:
		node = l.BID
	}

	var pts []point.Point[int32]
	first := true
	for {
		next := -1
		for _, li := range adjacency[node] {
			if !visited[li] {
				next = li
				break
			}
		}
		if next < 0 {
			break
		}
		visited[next] = true

		l := g.Links[next]
		var from, to point.Point[int32]
		var toNode uint32
		if node == l.AID {
			from, to, toNode = l.APoint, l.BPoint, l.BID
		} else {
			from, to, toNode = l.BPoint, l.APoint, l.AID
		}
		if first {
			pts = append(pts, from)
			first = false
		}
		pts = append(pts, to)
		node = toNode
	}
	return pts
}
