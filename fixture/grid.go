// Package fixture generates deterministic and random test geometry for the arrangement
// kernel: regular grids of square contours, circle tessellations via Bresenham's algorithm, and
// random contour/polyline batches, the kind of stress input spec.md §8 and
// `original_source/iOverlay/tests/overlay_tests.rs`'s grid-vs-grid scenarios exercise. This is
// the "test harnesses" external collaborator spec.md's Out-of-scope list names; it lives here
// so the module is end-to-end runnable from `cmd/genbatch`.
package fixture

import (
	"github.com/kestrel-geo/overlay2d/point"
)

// Grid generates a regular grid of count*count square contours, each pitch units wide, spaced
// pitch units apart starting at origin. Each square is wound counter-clockwise, the orientation
// the kernel's output shapes use (spec.md §6).
func Grid(origin point.Point[int32], count, pitch int32) [][]point.Point[int32] {
	squares := make([][]point.Point[int32], 0, int(count)*int(count))
	for row := int32(0); row < count; row++ {
		for col := int32(0); col < count; col++ {
			x := origin.X() + col*pitch
			y := origin.Y() + row*pitch
			squares = append(squares, []point.Point[int32]{
				point.New(x, y),
				point.New(x+pitch, y),
				point.New(x+pitch, y+pitch),
				point.New(x, y+pitch),
			})
		}
	}
	return squares
}

// GridLines generates a set of open polylines forming a regular count*count lattice of
// horizontal and vertical cut lines spanning the same footprint as Grid, useful as the string
// input to a Slice/ClipLines stress test.
func GridLines(origin point.Point[int32], count, pitch int32) [][]point.Point[int32] {
	span := count * pitch
	var lines [][]point.Point[int32]
	for i := int32(0); i <= count; i++ {
		x := origin.X() + i*pitch
		lines = append(lines, []point.Point[int32]{
			point.New(x, origin.Y()),
			point.New(x, origin.Y()+span),
		})
	}
	for i := int32(0); i <= count; i++ {
		y := origin.Y() + i*pitch
		lines = append(lines, []point.Point[int32]{
			point.New(origin.X(), y),
			point.New(origin.X()+span, y),
		})
	}
	return lines
}
