package point

import (
	"github.com/kestrel-geo/overlay2d/numeric"
	"github.com/kestrel-geo/overlay2d/types"
)

// Orientation determines the relative orientation of three points p, q, r using exact integer
// arithmetic (package numeric), never floating point, per spec.md's Non-goals. It is the
// integer analogue of the teacher's float64 Orientation predicate in the pre-refactor point
// package, generalized to widen through int64 so products never overflow.
//
// Returns [types.PointsCollinear], [types.PointsClockwise], or [types.PointsCounterClockwise].
func Orientation[T numeric.Int](p, q, r Point[T]) types.PointOrientation {
	sign := numeric.CrossSign(int64(p.x), int64(p.y), int64(q.x), int64(q.y), int64(r.x), int64(r.y))
	return numeric.SignToOrientation(sign)
}
