// Package point defines [Point], the foundational coordinate type of the overlay2d kernel.
//
// # Overview
//
// Point represents a 2-D coordinate over a generic integer type: either the wire width
// (int32, spec.md §3) used for input/output coordinates, or the widened intermediate width
// (int64) the kernel uses internally to keep cross-point arithmetic (package numeric) from
// overflowing. Unlike the teacher's later float64-only refactor, this package keeps the
// original generic shape because the kernel genuinely needs both widths from one type.
//
// # Key Features
//
//   - Total order: Point implements the (x, y) lexicographic order spec.md §3 requires of
//     [Point] and, transitively, of XSegment (package segment).
//   - Widening: As64 lifts an int32 point to int64 ahead of any arithmetic that could
//     otherwise overflow 32-bit intermediates.
//
// # Notes
//
//   - Point carries no epsilon and no floating point; all comparisons are exact integer
//     comparisons, per spec.md's Non-goals ("No floating-point arithmetic in the kernel").
package point

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/kestrel-geo/overlay2d/numeric"
)

// Point is a pair of coordinates (x, y) over a signed integer type satisfying [numeric.Int].
type Point[T numeric.Int] struct {
	x T
	y T
}

// New constructs a Point from raw x, y coordinates.
func New[T numeric.Int](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// X returns the point's x-coordinate.
func (p Point[T]) X() T { return p.x }

// Y returns the point's y-coordinate.
func (p Point[T]) Y() T { return p.y }

// Add returns p translated by q, treating q as a displacement vector.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the displacement vector from q to p.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{x: p.x - q.x, y: p.y - q.y}
}

// Eq reports whether p and q have identical coordinates. There is no epsilon variant:
// kernel coordinates are exact integers (spec.md Non-goals).
func (p Point[T]) Eq(q Point[T]) bool {
	return p.x == q.x && p.y == q.y
}

// Compare implements the total order on points required by spec.md §3: x first, then y.
// It returns a negative number, zero, or a positive number as p is less than, equal to, or
// greater than q, matching the convention of [cmp.Compare] and [slices.SortFunc].
func (p Point[T]) Compare(q Point[T]) int {
	if c := cmp.Compare(p.x, q.x); c != 0 {
		return c
	}
	return cmp.Compare(p.y, q.y)
}

// Less reports whether p sorts strictly before q under [Point.Compare].
func (p Point[T]) Less(q Point[T]) bool {
	return p.Compare(q) < 0
}

// String returns a human-readable "(x,y)" representation of the point.
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.x, p.y)
}

// As64 widens an int32 point to int64, the width package numeric's cross-point arithmetic
// requires to stay overflow-free under the coordinate bounds documented in spec.md §6.
func As64(p Point[int32]) Point[int64] {
	return Point[int64]{x: int64(p.x), y: int64(p.y)}
}

// As32 narrows an int64 point back to int32. Callers must ensure p is within int32 range;
// this is only ever used on coordinates that started as int32 and were widened by [As64],
// or on intersection results already clamped to the input's coordinate bounds.
func As32(p Point[int64]) Point[int32] {
	return Point[int32]{x: int32(p.x), y: int32(p.y)}
}

// MarshalJSON serializes Point as a {"x":...,"y":...} object.
func (p Point[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X T `json:"x"`
		Y T `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes a {"x":...,"y":...} object into p.
func (p *Point[T]) UnmarshalJSON(data []byte) error {
	var temp struct {
		X T `json:"x"`
		Y T `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x, p.y = temp.X, temp.Y
	return nil
}
