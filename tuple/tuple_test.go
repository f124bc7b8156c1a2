package tuple_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/rowset/tuple"
)

func TestMkT(t *testing.T) {
	c := qt.New(t)
	x := tuple.MkT3(1, "a", true)
	c.Assert(x, qt.Equals, tuple.T3[int, string, bool]{A0: 1, A1: "a", A2: true})

	n, s, ok := x.T()
	c.Assert(n, qt.Equals, 1)
	c.Assert(s, qt.Equals, "a")
	c.Assert(ok, qt.IsTrue)

	c.Assert(tuple.MkT1("x").T(), qt.Equals, "x")
}

func TestSlice(t *testing.T) {
	c := qt.New(t)
	x := tuple.MkT10(0, 1, 2, 3, 4, 5, 6, 7, 8, "nine")
	c.Assert(x.Slice(), qt.DeepEquals, []any{0, 1, 2, 3, 4, 5, 6, 7, 8, "nine"})

	// Each call returns a new slice.
	s := x.Slice()
	s[0] = 100
	c.Assert(x.Slice()[0], qt.Equals, any(0))
	c.Assert(x.A0, qt.Equals, 0)
}

func TestZero(t *testing.T) {
	c := qt.New(t)
	var x tuple.T2[*int, error]
	c.Assert(x.Slice(), qt.DeepEquals, []any{(*int)(nil), nil})
}
