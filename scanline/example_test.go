package scanline_test

import (
	"cmp"
	"fmt"

	"github.com/kestrel-geo/overlay2d/scanline"
)

func ExampleList_FirstLessOrEqual() {
	s := scanline.NewList[int, string](cmp.Compare[int])
	s.Insert(1, "below")
	s.Insert(10, "above")

	v, ok := s.FirstLessOrEqual(7)
	fmt.Println(v, ok)

	// Output:
	// below true
}
