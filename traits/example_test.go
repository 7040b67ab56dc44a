package traits_test

import (
	"fmt"

	"github.com/hasbyte1/go-typekit/traits"
)

func ExampleIsEqualityComparable() {
	fmt.Println(
		traits.IsEqualityComparable[int](),
		traits.IsEqualityComparable[[]int](),
		traits.IsEqualityComparable[struct{ fn func() }](),
	)
	// Output: true false false
}

func ExampleIsComparable() {
	fmt.Println(traits.IsComparable[string](), traits.IsComparable[bool]())
	// Output: true false
}

func ExampleCompare() {
	c, err := traits.Compare(2, 10)
	fmt.Println(c, err)
	// Output: -1 <nil>
}
