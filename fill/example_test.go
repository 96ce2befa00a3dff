package fill_test

import (
	"context"
	"fmt"

	"github.com/kestrel-geo/overlay2d/fill"
	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
	"github.com/kestrel-geo/overlay2d/solver"
)

func ExampleApply() {
	segs := []segment.Segment{
		segment.NewSegment(point.New[int32](0, 0), point.New[int32](4, 0), segment.ShapeCount{Subj: 1}),
		segment.NewSegment(point.New[int32](0, 4), point.New[int32](4, 4), segment.ShapeCount{Subj: -1}),
	}

	out, err := fill.Apply(context.Background(), segs, segment.EvenOdd, solver.New())
	if err != nil {
		panic(err)
	}

	for _, f := range out {
		fmt.Println(f.XSegment, f.Fill)
	}

	// Output:
	// (0,0)-(4,0) SubjAbove
	// (0,4)-(4,4) SubjBelow
}
