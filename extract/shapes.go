// Package extract walks the Grapher's OverlayNode/OverlayLink graph to produce the kernel's
// two output shapes: closed polygon boundaries (Shapes) and open polylines (Lines), per
// spec.md §4.5. Both are external to the core per spec.md but live in this module so the
// overlay2d package is end-to-end runnable.
package extract

import (
	"context"

	"github.com/kestrel-geo/overlay2d/graph"
	"github.com/kestrel-geo/overlay2d/numeric"
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
)

// Shape is an outer contour (wound CCW) with zero or more holes (wound CW), per spec.md §6's
// output format.
type Shape struct {
	Outer []point.Point[int32]
	Holes [][]point.Point[int32]
}

// dart is one directed traversal of a graph link.
type dart struct {
	linkIdx int
	fwd     bool // true: walk APoint -> BPoint; false: BPoint -> APoint
}

// Rule reports whether a link's SegmentFill belongs in a face walk's output. [segment.OverlayRule]
// and [segment.SliceRule] both implement it; Shapes is agnostic to which inclusion policy drives
// the walk.
type Rule interface {
	Includes(segment.SegmentFill) bool
}

// Shapes walks g's closed cycles under rule's inclusion filter and nests the resulting faces
// into outer/hole shapes, grounded on geom2d.PolyTree's booleanOperationTraversal (cycle walk)
// and findParentPolygon/contour.findLowestLeftmost (hole nesting), generalized from
// Martínez entry/exit flags to the 4-bit SegmentFill and the Rule interface above.
func Shapes(ctx context.Context, g graph.Graph, rule Rule) ([]Shape, error) {
	var kept []int
	for i, l := range g.Links {
		if rule.Includes(l.Fill) {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}

	incident := incidentDarts(g, kept)

	visited := make(map[dart]bool, len(kept)*2)
	var faces [][]point.Point[int32]
	for _, li := range kept {
		for _, fwd := range [2]bool{true, false} {
			start := dart{li, fwd}
			if visited[start] {
				continue
			}
			faces = append(faces, walkFace(g, incident, visited, start))
		}
	}

	return nestFaces(faces), nil
}

// incidentDarts groups the darts leaving each node (restricted to kept links) and sorts them
// into counterclockwise (ascending-angle) cyclic order around the node, the order a face walk needs to "take the next
// edge" consistently at a branch point (spec.md §4.5/G3: "traversal logic must recover
// clockwise order when extracting shapes").
func incidentDarts(g graph.Graph, kept []int) map[uint32][]dart {
	m := make(map[uint32][]dart)
	for _, li := range kept {
		l := g.Links[li]
		m[l.AID] = append(m[l.AID], dart{li, true})
		m[l.BID] = append(m[l.BID], dart{li, false})
	}
	for node, darts := range m {
		pt := g.Nodes[node].Point
		sortClockwise(g, pt, darts)
	}
	return m
}

// sortClockwise orders darts leaving pt by ascending angle from the positive x-axis, splitting
// directions into upper and lower half-planes and comparing within a half-plane by cross
// product (no floats).
func sortClockwise(g graph.Graph, pt point.Point[int32], darts []dart) {
	dx := make([]int64, len(darts))
	dy := make([]int64, len(darts))
	for i, d := range darts {
		dx[i], dy[i] = dartDirection(g, pt, d)
	}
	for i := 1; i < len(darts); i++ {
		for j := i; j > 0 && angleLess(dx[j], dy[j], dx[j-1], dy[j-1]); j-- {
			darts[j], darts[j-1] = darts[j-1], darts[j]
			dx[j], dx[j-1] = dx[j-1], dx[j]
			dy[j], dy[j-1] = dy[j-1], dy[j]
		}
	}
}

func dartDirection(g graph.Graph, from point.Point[int32], d dart) (dx, dy int64) {
	l := g.Links[d.linkIdx]
	to := l.BPoint
	if !d.fwd {
		to = l.APoint
	}
	return int64(to.X()) - int64(from.X()), int64(to.Y()) - int64(from.Y())
}

func angleHalf(dx, dy int64) int {
	if dy > 0 || (dy == 0 && dx > 0) {
		return 0
	}
	return 1
}

func angleLess(adx, ady, bdx, bdy int64) bool {
	ha, hb := angleHalf(adx, ady), angleHalf(bdx, bdy)
	if ha != hb {
		return ha < hb
	}
	return numeric.CrossSign(0, 0, adx, ady, bdx, bdy) > 0
}

// walkFace traces one face boundary starting at start, at each node taking the dart that
// follows the reverse of the arriving dart in the node's ascending-angle order, and returns the
// sequence of points visited (one per consumed dart's origin).
func walkFace(g graph.Graph, incident map[uint32][]dart, visited map[dart]bool, start dart) []point.Point[int32] {
	var pts []point.Point[int32]
	cur := start
	for {
		visited[cur] = true
		l := g.Links[cur.linkIdx]

		var fromPt point.Point[int32]
		var toNode uint32
		if cur.fwd {
			fromPt, toNode = l.APoint, l.BID
		} else {
			fromPt, toNode = l.BPoint, l.AID
		}
		pts = append(pts, fromPt)

		arrival := dart{cur.linkIdx, !cur.fwd}
		next := nextClockwise(incident[toNode], arrival)
		if next == start {
			break
		}
		cur = next
	}
	return pts
}

func nextClockwise(darts []dart, after dart) dart {
	for i, d := range darts {
		if d == after {
			return darts[(i+1)%len(darts)]
		}
	}
	panic("extract: dart not found in its own node's incident list")
}

// nestFaces classifies each traced face by signed area (positive: CCW outer; negative: CW
// hole or the unbounded exterior face) and nests each hole into the smallest outer containing
// it, mirroring findParentPolygon's nearest-parent selection. A hole contained by no outer is
// the unbounded exterior face traced by the walk and is dropped, not reported.
func nestFaces(faces [][]point.Point[int32]) []Shape {
	var outers []Shape
	var holes [][]point.Point[int32]

	for _, f := range faces {
		if len(f) < 3 {
			continue
		}
		switch area := signedArea(f); {
		case area > 0:
			outers = append(outers, Shape{Outer: f})
		case area < 0:
			holes = append(holes, f)
		}
	}

	for _, h := range holes {
		// A CW face that is just the reverse walk of some outer isn't a hole: it's that
		// outer's own complementary (unbounded, or otherwise already-counted) face, produced
		// by the same algorithm tracing both sides of a shared boundary. Skip it rather than
		// nesting it into the very shape it complements.
		if isComplementOfAny(h, outers) {
			continue
		}

		parent := findContainingOuter(outers, representativePoint(h))
		if parent < 0 {
			continue
		}
		outers[parent].Holes = append(outers[parent].Holes, h)
	}

	return outers
}

// isComplementOfAny reports whether h is the exact reverse traversal of some outer's boundary
// (same cyclic point sequence, opposite direction), which happens whenever h and that outer
// trace the two faces of the very same simple loop rather than distinct shapes.
func isComplementOfAny(h []point.Point[int32], outers []Shape) bool {
	for _, o := range outers {
		if isComplementOf(h, o.Outer) {
			return true
		}
	}
	return false
}

func isComplementOf(h, o []point.Point[int32]) bool {
	if len(h) != len(o) {
		return false
	}
	start := -1
	for i, p := range o {
		if p.Eq(h[0]) {
			start = i
			break
		}
	}
	if start < 0 {
		return false
	}
	n := len(o)
	for i := 0; i < n; i++ {
		oi := (start - i + n) % n
		if !h[i].Eq(o[oi]) {
			return false
		}
	}
	return true
}

func findContainingOuter(outers []Shape, p point.Point[int32]) int {
	best := -1
	var bestArea int64
	for i, s := range outers {
		if !pointInPolygon(s.Outer, p) {
			continue
		}
		area := absArea(s.Outer)
		if best < 0 || area < bestArea {
			best, bestArea = i, area
		}
	}
	return best
}

// representativePoint returns the vertex centroid of poly, a point reliably inside most
// practical hole shapes without the cost of a proper interior-point search. Concave holes
// whose centroid happens to fall outside the polygon will be nested incorrectly; this is a
// documented simplification, not a silent one.
func representativePoint(poly []point.Point[int32]) point.Point[int32] {
	var sx, sy int64
	for _, p := range poly {
		sx += int64(p.X())
		sy += int64(p.Y())
	}
	n := int64(len(poly))
	return point.New(int32(sx/n), int32(sy/n))
}

// signedArea returns twice the polygon's signed area (shoelace formula): positive for a CCW
// winding, negative for CW.
func signedArea(poly []point.Point[int32]) int64 {
	var sum int64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += int64(poly[i].X())*int64(poly[j].Y()) - int64(poly[j].X())*int64(poly[i].Y())
	}
	return sum
}

func absArea(poly []point.Point[int32]) int64 {
	a := signedArea(poly)
	if a < 0 {
		return -a
	}
	return a
}

// pointInPolygon is the standard even-odd ray-casting test, using exact integer
// cross-multiplication in place of the usual floating-point x-intercept division. Coordinate
// products stay within int64 under the kernel's documented coordinate bounds (spec.md §6).
func pointInPolygon(poly []point.Point[int32], p point.Point[int32]) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (int64(pi.Y()) > int64(p.Y())) == (int64(pj.Y()) > int64(p.Y())) {
			continue
		}
		dx := int64(pj.X()) - int64(pi.X())
		dy := int64(pj.Y()) - int64(pi.Y())
		t := int64(p.Y()) - int64(pi.Y())
		lhs := dx * t
		rhs := (int64(p.X()) - int64(pi.X())) * dy
		if dy > 0 {
			if lhs > rhs {
				inside = !inside
			}
		} else {
			if lhs < rhs {
				inside = !inside
			}
		}
	}
	return inside
}
