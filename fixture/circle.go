package fixture

import "github.com/kestrel-geo/overlay2d/point"

// Circle tessellates a circle of the given center and radius into a closed, clockwise contour
// using Bresenham's circle algorithm, adapted from the teacher's `circle.Circle.Bresenham`
// method: the teacher's version yields octant-reflected points to a rasterizer callback in no
// particular perimeter order, which is fine for pixel plotting but not for a polygon contour. To
// get a genuinely simple, non-self-intersecting ring, the first octant's samples (from the top
// of the circle down to the 45-degree point) are computed once and then walked around all four
// quadrants in perimeter order via the standard sign/swap reflections, instead of reflecting
// into all eight octants per sample as the teacher's callback does.
func Circle(center point.Point[int32], radius int32) []point.Point[int32] {
	if radius <= 0 {
		return nil
	}

	// quadrant1 holds one perimeter-ordered walk of the first quadrant, from (0,radius) at the
	// top down to (radius,0), inclusive of both endpoints.
	var quadrant1 []point.Point[int32]
	x, y := int32(0), radius
	p := 1 - radius
	for x <= y {
		quadrant1 = append(quadrant1, point.New(x, y))
		if x < y {
			quadrant1 = append(quadrant1, point.New(y, x))
		}
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
	}
	// The loop above appends the octant1/octant2 pair out of perimeter order near the 45-degree
	// crossover; resort by descending y then ascending x to recover strict top-to-right order.
	quadrant1 = sortQuadrant(quadrant1)

	ring := make([]point.Point[int32], 0, len(quadrant1)*4)
	ring = append(ring, translate(quadrant1, center, 1, 1)...)
	ring = append(ring, translate(reversed(quadrant1), center, 1, -1)[1:]...)
	ring = append(ring, translate(quadrant1, center, -1, -1)[1:]...)
	ring = append(ring, translate(reversed(quadrant1), center, -1, 1)[1:]...)

	// The ring as built closes back on its own first point; drop that duplicate.
	return ring[:len(ring)-1]
}

func sortQuadrant(pts []point.Point[int32]) []point.Point[int32] {
	out := make([]point.Point[int32], len(pts))
	copy(out, pts)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && (out[j].Y() > out[j-1].Y() || (out[j].Y() == out[j-1].Y() && out[j].X() < out[j-1].X())); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func reversed(pts []point.Point[int32]) []point.Point[int32] {
	out := make([]point.Point[int32], len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func translate(pts []point.Point[int32], center point.Point[int32], sx, sy int32) []point.Point[int32] {
	out := make([]point.Point[int32], len(pts))
	for i, p := range pts {
		out[i] = point.New(center.X()+sx*p.X(), center.Y()+sy*p.Y())
	}
	return out
}
