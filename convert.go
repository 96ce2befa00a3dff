package overlay2d

import (
	"math"

	"github.com/kestrel-geo/overlay2d/numeric"
	"github.com/kestrel-geo/overlay2d/options"
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
)

// FloatPoint is a float64 coordinate pair, the wire shape [FromFloat64Contour] and
// [FromFloat64Polyline] adapt into the kernel's integer [point.Point], grounded on the
// teacher's float64 point.Point type (the "float-to-integer coordinate adapter" spec.md lists
// as an external collaborator, since the kernel itself is integer-only).
type FloatPoint struct {
	X, Y float64
}

// FromFloat64Contour rounds each float64 vertex to the nearest integer, snapping a vertex
// already within opts' epsilon of a whole number before rounding (via
// [numeric.SnapToEpsilon]) so coordinates that are whole numbers up to float rounding noise
// land exactly where the caller meant, rather than one unit off.
func FromFloat64Contour(pts []FloatPoint, opts ...options.GeometryOptionsFunc) Contour {
	return fromFloat64(pts, opts...)
}

// FromFloat64Polyline is [FromFloat64Contour] under a different name for open polylines; the
// conversion itself doesn't distinguish contours from polylines.
func FromFloat64Polyline(pts []FloatPoint, opts ...options.GeometryOptionsFunc) Polyline {
	return fromFloat64(pts, opts...)
}

func fromFloat64(pts []FloatPoint, optFns ...options.GeometryOptionsFunc) []point.Point[int32] {
	cfg := options.ApplyGeometryOptions(options.GeometryOptions{}, optFns...)
	out := make([]point.Point[int32], len(pts))
	for i, p := range pts {
		x := numeric.SnapToEpsilon(p.X, cfg.Epsilon)
		y := numeric.SnapToEpsilon(p.Y, cfg.Epsilon)
		out[i] = point.New(int32(math.Round(x)), int32(math.Round(y)))
	}
	return out
}

// ToFloat64Contour widens an integer contour back to float64, dividing by scale when scale is
// non-zero. The scale is this function's own argument; [solver.Solver]'s OutputScale is not
// consulted.
func ToFloat64Contour(c Contour, scale float64) []FloatPoint {
	return toFloat64(c, scale)
}

// ToFloat64Polyline is [ToFloat64Contour] under a different name for open polylines.
func ToFloat64Polyline(p Polyline, scale float64) []FloatPoint {
	return toFloat64(p, scale)
}

func toFloat64(pts []point.Point[int32], scale float64) []FloatPoint {
	out := make([]FloatPoint, len(pts))
	for i, p := range pts {
		x, y := float64(p.X()), float64(p.Y())
		if scale != 0 {
			x /= scale
			y /= scale
		}
		out[i] = FloatPoint{X: x, Y: y}
	}
	return out
}

// ringSegments converts a closed contour into one segment per edge (including the closing
// edge from the last vertex back to the first), each carrying count as its winding
// contribution in the vertex order given. A degenerate (zero-length) edge is silently dropped
// per spec.md's InvalidInput handling; [segment.NewSegment] itself does not check for equal
// endpoints, so the check is made here.
func ringSegments(c Contour, count segment.ShapeCount) []segment.Segment {
	if len(c) < 2 {
		return nil
	}
	segs := make([]segment.Segment, 0, len(c))
	for i := range c {
		a, b := c[i], c[(i+1)%len(c)]
		if a.Eq(b) {
			continue
		}
		segs = append(segs, segment.NewSegment(a, b, count))
	}
	return segs
}

// polylineSegments converts an open polyline into one segment per edge, each carrying a
// StringForwardClip or StringBackClip direction bit in its ShapeCount.Clip field recording
// which way the edge originally ran. This does not use [segment.NewSegment]'s normal
// swap-and-negate behavior: that negation is correct for a signed polygon winding contribution
// but would corrupt a direction bit (Negate(StringForwardClip) == -1, not StringBackClip), so
// the endpoints are ordered by hand before construction and the direction bit is chosen to
// match, guaranteeing [segment.NewSegment] never needs to swap.
func polylineSegments(p Polyline) []segment.Segment {
	if len(p) < 2 {
		return nil
	}
	segs := make([]segment.Segment, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		if a.Eq(b) {
			continue
		}
		clipBit := segment.StringForwardClip
		if b.Less(a) {
			clipBit = segment.StringBackClip
			a, b = b, a
		}
		segs = append(segs, segment.NewSegment(a, b, segment.ShapeCount{Clip: clipBit}))
	}
	return segs
}
