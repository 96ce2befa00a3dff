package point_test

import (
	"fmt"

	"github.com/kestrel-geo/overlay2d/point"
)

func ExampleNew() {
	p32 := point.New[int32](10, 20)
	fmt.Printf("int32 Point: %s, type %T\n", p32, p32)

	p64 := point.New[int64](10, 20)
	fmt.Printf("int64 Point: %s, type %T\n", p64, p64)

	// Output:
	// int32 Point: (10,20), type point.Point[int32]
	// int64 Point: (10,20), type point.Point[int64]
}

func ExamplePoint_Compare() {
	a := point.New[int32](1, 5)
	b := point.New[int32](1, 9)
	c := point.New[int32](2, 0)

	fmt.Println(a.Compare(b) < 0) // a.x == b.x, a.y < b.y
	fmt.Println(b.Compare(c) < 0) // b.x < c.x regardless of y

	// Output:
	// true
	// true
}

func ExampleOrientation() {
	a := point.New[int32](0, 0)
	b := point.New[int32](1, 0)
	c := point.New[int32](1, 1)

	fmt.Println(point.Orientation(a, b, c))

	// Output:
	// PointsCounterClockwise
}
