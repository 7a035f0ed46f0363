package splinter_test

import (
	"fmt"

	"github.com/TomTonic/splinter"
)

func Example() {
	s := splinter.New()
	s.InsertAll(1, 2, 3, 100, 70000)

	fmt.Println(s.Cardinality())
	fmt.Println(s.Contains(100))

	buf := s.Encode()
	decoded, err := splinter.Decode(buf)
	if err != nil {
		panic(err)
	}
	fmt.Println(decoded.Equal(s))

	// Output:
	// 5
	// true
	// true
}

func ExampleSplinter_Union() {
	a := splinter.FromSlice([]uint32{1, 2, 3})
	b := splinter.FromSlice([]uint32{3, 4, 5})
	fmt.Println(a.Union(b).Cardinality())
	// Output: 5
}
