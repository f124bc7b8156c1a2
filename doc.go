// Package rowset converts test data into typed, fixed-arity row sets
// suitable for driving table-driven tests.
//
// A row set of arity N (Set1 through Set10) holds an ordered list of
// entries, each of which is a [tuple.T1] through [tuple.T10]. Sets can be
// built from:
//
//	FromValues(seq)          a sequence of plain values (arity 1 only)
//	FromTuplesN(seq)         a sequence of tuples
//	FromRowsN[T1, ...](seq)  a sequence of loosely typed rows
//	FromTupleN(x)            a single tuple
//	FromRowN[T1, ...](row)   a single loosely typed row
//
// Conversion from rows checks each row position by position. The value
// at index i must have the i'th type (a nil value is accepted for types
// that can be nil). The first row that is too short yields an
// [*IndexError]; the first value of the wrong type yields a [*CastError].
// Either error aborts the conversion, and positions are checked in
// increasing order, so the error reported for a row is always the one at
// its lowest failing index.
//
// For example:
//
//	cases, err := rowset.FromRows3[int, string, bool](slices.Values([]rowset.Row{
//		{1, "a", true},
//		{2, "b", false},
//	}))
//	...
//	cases.Run(t, func(t *testing.T, n int, s string, ok bool) {
//		...
//	})
package rowset

//go:generate go run github.com/rogpeppe/rowset/cmd/aritygen set -o set_gen.go
//go:generate go run github.com/rogpeppe/rowset/cmd/aritygen from -o from_gen.go
