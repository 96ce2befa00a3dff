// Package overlay2d provides a two-dimensional Boolean and string-clipping arrangement kernel
// over bounded 32-bit integer coordinates.
//
// The package is built around the Splitter/Filler/Grapher pipeline (packages split, fill, and
// graph): a batch of subject and clip contours or polylines is reduced to a set of
// non-crossing segments (split.Apply), each segment is annotated with the winding state of the
// region on either side of it (fill.Apply), the annotated segments are assembled into a planar
// graph (graph.Build), and the graph is walked into closed shapes or open polylines (package
// extract) under whichever inclusion rule the caller selected.
//
// # Coordinate System
//
// overlay2d assumes a standard Cartesian coordinate system: the x-axis increases to the right,
// the y-axis increases upward, and orientation (clockwise/counterclockwise) is judged
// accordingly. Input and output coordinates are exact 32-bit integers; there is no
// floating-point arithmetic anywhere in the kernel. Callers working in float64 should use
// [FromFloat64Contour] / [FromFloat64Polyline] to adapt coordinates in, and
// [ToFloat64Contour] / [ToFloat64Polyline] to adapt results back out, optionally dividing by
// a scale factor passed to those functions.
//
// # Core Operations
//
//   - [Boolean]: closed-polygon Union/Intersection/Difference/Xor between a subject and clip
//     contour set.
//   - [ClipLines]: clips a set of open polylines against a subject shape's fill.
//   - [Slice]: divides a subject shape along a set of cut lines, keeping both the boundary and
//     the interior cut fragments.
//   - [Simplify]: resolves self-intersections and overlaps within a single contour set.
//   - [Identity]: the three-way split of two shapes into (A only, A∩B, B only).
//
// # Acknowledgments
//
// overlay2d's Splitter/Filler/Grapher pipeline design and its snap-radius escalation policy
// are grounded on iOverlay's float/i_overlay crate; its package layout, functional-options
// configuration shape, and ambient logging/error conventions follow
// github.com/mikenye/geom2d.
package overlay2d

import (
	"github.com/kestrel-geo/overlay2d/point"
)

// Contour is a closed ring of vertices, wound either clockwise or counterclockwise. The last
// vertex is implicitly connected back to the first; callers must not repeat the first vertex
// at the end.
type Contour = []point.Point[int32]

// Polyline is an open path of vertices. Unlike [Contour], consecutive polyline vertices form
// edges but the last vertex is not connected back to the first.
type Polyline = []point.Point[int32]
