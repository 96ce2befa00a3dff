package segment_test

import (
	"fmt"

	"github.com/kestrel-geo/overlay2d/point"
	"github.com/kestrel-geo/overlay2d/segment"
)

func ExampleIntersect() {
	target := segment.NewXSegment(point.New[int32](0, 0), point.New[int32](4, 4))
	other := segment.NewXSegment(point.New[int32](0, 4), point.New[int32](4, 0))

	result := segment.Intersect(target, other, 0)
	fmt.Println(result.Class, result.Point)

	// Output:
	// Pure (2,2)
}

func ExampleShapeCount_Add() {
	a := segment.ShapeCount{Subj: 1, Clip: 0}
	b := segment.ShapeCount{Subj: -1, Clip: 2}
	fmt.Println(a.Add(b))

	// Output:
	// {0,2}
}
