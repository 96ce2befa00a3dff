package fixture

import (
	"math"
	"math/rand/v2"

	"github.com/google/btree"

	"github.com/kestrel-geo/overlay2d/point"
)

// Bounds describes the coordinate range a random batch is drawn from, mirroring the teacher's
// `genlinesegments` minx/maxx/miny/maxy flags.
type Bounds struct {
	MinX, MaxX int32
	MinY, MaxY int32
}

func (b Bounds) randomPoint() point.Point[int32] {
	x := b.MinX + rand.Int32N(b.MaxX-b.MinX+1)
	y := b.MinY + rand.Int32N(b.MaxY-b.MinY+1)
	return point.New(x, y)
}

// RandomSegments generates n random, non-degenerate two-point segments within bounds, the same
// batch shape the teacher's `genlinesegments` command produces, adapted to this kernel's
// [point.Point] type.
func RandomSegments(n int, bounds Bounds) [][2]point.Point[int32] {
	out := make([][2]point.Point[int32], n)
	for i := range out {
		for {
			a, b := bounds.randomPoint(), bounds.randomPoint()
			if !a.Eq(b) {
				out[i] = [2]point.Point[int32]{a, b}
				break
			}
		}
	}
	return out
}

// RandomContour generates a single random simple-ish polygon with the given number of vertices
// by sampling points at evenly spaced angles around a center (with randomized radius per
// vertex), which keeps the contour non-self-intersecting without the cost of a proper
// simple-polygon sampler. sides must be at least 3.
func RandomContour(center point.Point[int32], avgRadius int32, sides int) []point.Point[int32] {
	if sides < 3 {
		sides = 3
	}
	pts := make([]point.Point[int32], sides)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		jitter := int32(0)
		if avgRadius > 1 {
			jitter = rand.Int32N(avgRadius/2+1) - avgRadius/4
		}
		r := avgRadius + jitter
		if r < 1 {
			r = 1
		}
		dx := int32(math.Round(float64(r) * math.Cos(angle)))
		dy := int32(math.Round(float64(r) * math.Sin(angle)))
		pts[i] = point.New(center.X()+dx, center.Y()+dy)
	}
	return pts
}

// RandomBatch generates count random contours of the given vertex count, scattered across
// bounds, suitable as a subject or clip layer in a stress run. Centers are drawn from an
// ordered set backed by [btree.BTreeG], the same generic ordered-collection API the teacher's
// `sweepline_statusstructure.go` builds its plain (non-red-black) status structure on, here
// repurposed to reject a center already used elsewhere in the batch so two contours never land
// fully coincident, which would otherwise make the batch a degenerate stress case.
func RandomBatch(count int, sides int, bounds Bounds) [][]point.Point[int32] {
	radius := bounds.MaxX - bounds.MinX
	if span := bounds.MaxY - bounds.MinY; span < radius {
		radius = span
	}
	radius /= 4
	if radius < 1 {
		radius = 1
	}

	used := btree.NewG[point.Point[int32]](2, point.Point[int32].Less)
	out := make([][]point.Point[int32], count)
	for i := range out {
		center := bounds.randomPoint()
		for attempts := 0; used.Has(center) && attempts < 64; attempts++ {
			center = bounds.randomPoint()
		}
		used.ReplaceOrInsert(center)
		out[i] = RandomContour(center, radius, sides)
	}
	return out
}
