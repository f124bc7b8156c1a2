package rowset

import (
	"reflect"
	"testing"
	"unsafe"

	qt "github.com/frankban/quicktest"
)

var nilableTests = []struct {
	typ  reflect.Type
	want bool
}{
	{reflect.TypeFor[int](), false},
	{reflect.TypeFor[string](), false},
	{reflect.TypeFor[struct{}](), false},
	{reflect.TypeFor[[2]int](), false},
	{reflect.TypeFor[*int](), true},
	{reflect.TypeFor[[]int](), true},
	{reflect.TypeFor[map[int]int](), true},
	{reflect.TypeFor[chan int](), true},
	{reflect.TypeFor[func()](), true},
	{reflect.TypeFor[error](), true},
	{reflect.TypeFor[any](), true},
	{reflect.TypeFor[unsafe.Pointer](), true},
}

func TestNilable(t *testing.T) {
	for _, test := range nilableTests {
		t.Run(test.typ.String(), func(t *testing.T) {
			qt.New(t).Assert(nilable(test.typ), qt.Equals, test.want)
		})
	}
}

func TestAt(t *testing.T) {
	c := qt.New(t)
	r := Row{1, "a"}

	n, err := at[int](r, 3, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 1)

	s, err := at[string](r, 3, 1)
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "a")

	_, err = at[string](r, 3, 2)
	c.Assert(err, qt.DeepEquals, error(&IndexError{Row: 3, Index: 2, Len: 2}))

	_, err = at[string](r, 3, 0)
	c.Assert(err, qt.ErrorMatches, `rowset: row 3: cannot use 1 \(type int\) at index 0 as string`)
}

func TestSingle(t *testing.T) {
	c := qt.New(t)
	var got []Row
	for r := range single(Row{1, 2}) {
		got = append(got, r)
	}
	c.Assert(got, qt.DeepEquals, []Row{{1, 2}})
}

var caseNameTests = []struct {
	testName string
	vals     []any
	want     string
}{{
	testName: "empty",
	vals:     nil,
	want:     "",
}, {
	testName: "single",
	vals:     []any{1},
	want:     "1",
}, {
	testName: "mixed",
	vals:     []any{1, "a", true},
	want:     "1,a,true",
}, {
	testName: "nil-value",
	vals:     []any{nil, 1.5},
	want:     "<nil>,1.5",
}}

func TestCaseName(t *testing.T) {
	for _, test := range caseNameTests {
		t.Run(test.testName, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(caseName(test.vals), qt.Equals, test.want)
		})
	}
}
