package rowset_test

import (
	"fmt"
	"slices"

	"github.com/rogpeppe/rowset"
	"github.com/rogpeppe/rowset/tuple"
)

func ExampleFromRows3() {
	s, err := rowset.FromRows3[int, string, bool](slices.Values([]rowset.Row{
		{1, "a", true},
		{2, "b", false},
	}))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, x := range s.All() {
		n, str, ok := x.T()
		fmt.Println(n, str, ok)
	}
	// Output:
	// 1 a true
	// 2 b false
}

func ExampleFromRows2_error() {
	_, err := rowset.FromRows2[int, int](slices.Values([]rowset.Row{
		{1, 2},
		{"3", 4},
	}))
	fmt.Println(err)
	// Output:
	// rowset: row 1: cannot use "3" (type string) at index 0 as int
}

func ExampleFromValues() {
	s := rowset.FromValues(slices.Values([]string{"x", "y"}))
	for r := range s.Rows() {
		fmt.Println(r)
	}
	// Output:
	// [x]
	// [y]
}

func ExampleFromTuples2() {
	s := rowset.FromTuples2(slices.Values([]tuple.T2[string, int]{
		tuple.MkT2("one", 1),
		tuple.MkT2("two", 2),
	}))
	fmt.Println(s.Len(), s.At(1).A0)
	// Output:
	// 2 two
}
