// Package rectangle provides axis-aligned integer bounding boxes. No other package of the
// module imports it: the Fragment driver (package split) and package fixture compute their
// own extents.
//
// Unlike the teacher's float64-only rectangle package, Rectangle here is generic over
// [numeric.Int] for the same reason package point is: bounding boxes are computed directly
// over kernel coordinates and must never round.
package rectangle

import (
	"fmt"

	"github.com/kestrel-geo/overlay2d/numeric"
	"github.com/kestrel-geo/overlay2d/point"
)

// Rectangle is an axis-aligned bounding box defined by its min (bottom-left) and max
// (top-right) corners.
type Rectangle[T numeric.Int] struct {
	min point.Point[T]
	max point.Point[T]
}

// New constructs a Rectangle from two opposite corners, normalizing so Min <= Max on both axes.
func New[T numeric.Int](a, b point.Point[T]) Rectangle[T] {
	minX, maxX := a.X(), b.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y(), b.Y()
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rectangle[T]{min: point.New(minX, minY), max: point.New(maxX, maxY)}
}

// Min returns the rectangle's bottom-left corner.
func (r Rectangle[T]) Min() point.Point[T] { return r.min }

// Max returns the rectangle's top-right corner.
func (r Rectangle[T]) Max() point.Point[T] { return r.max }

// Width returns the rectangle's extent along x.
func (r Rectangle[T]) Width() T { return r.max.X() - r.min.X() }

// Height returns the rectangle's extent along y.
func (r Rectangle[T]) Height() T { return r.max.Y() - r.min.Y() }

// ContainsPoint reports whether p lies within the closed rectangle.
func (r Rectangle[T]) ContainsPoint(p point.Point[T]) bool {
	return r.min.X() <= p.X() && p.X() <= r.max.X() && r.min.Y() <= p.Y() && p.Y() <= r.max.Y()
}

// Overlaps reports whether r and other share at least one point (closed-interval overlap on
// both axes). The Splitter's drivers do not call it; they compare y-ranges directly.
func (r Rectangle[T]) Overlaps(other Rectangle[T]) bool {
	return r.min.X() <= other.max.X() && other.min.X() <= r.max.X() &&
		r.min.Y() <= other.max.Y() && other.min.Y() <= r.max.Y()
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rectangle[T]) Union(other Rectangle[T]) Rectangle[T] {
	minX, maxX := r.min.X(), r.max.X()
	if other.min.X() < minX {
		minX = other.min.X()
	}
	if other.max.X() > maxX {
		maxX = other.max.X()
	}
	minY, maxY := r.min.Y(), r.max.Y()
	if other.min.Y() < minY {
		minY = other.min.Y()
	}
	if other.max.Y() > maxY {
		maxY = other.max.Y()
	}
	return Rectangle[T]{min: point.New(minX, minY), max: point.New(maxX, maxY)}
}

// Bounds computes the smallest Rectangle enclosing every point in pts. Bounds panics if pts
// is empty, since an empty bounding box has no useful representation.
func Bounds[T numeric.Int](pts []point.Point[T]) Rectangle[T] {
	if len(pts) == 0 {
		panic("rectangle: Bounds requires at least one point")
	}
	r := Rectangle[T]{min: pts[0], max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Union(Rectangle[T]{min: p, max: p})
	}
	return r
}

// String returns a human-readable "(minX,minY)-(maxX,maxY)" representation.
func (r Rectangle[T]) String() string {
	return fmt.Sprintf("%s-%s", r.min, r.max)
}
