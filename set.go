package rowset

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/rogpeppe/rowset/tuple"
)

// entry is implemented by all the tuple types.
type entry interface {
	Slice() []any
}

// set holds the entries common to all the SetN types.
type set[T entry] struct {
	items []T
}

func (s *set[T]) add(x T) {
	s.items = append(s.items, x)
}

// Len returns the number of entries in the set.
func (s *set[T]) Len() int {
	return len(s.items)
}

// At returns the i'th entry of the set.
// It panics if i is out of range.
func (s *set[T]) At(i int) T {
	return s.items[i]
}

// All returns an iterator over the index and value of
// each entry, in order.
func (s *set[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// Tuples returns a copy of the entries of the set.
func (s *set[T]) Tuples() []T {
	return slices.Clone(s.items)
}

// Rows returns an iterator over the entries of the set
// as untyped rows. Each row is newly allocated.
func (s *set[T]) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, x := range s.items {
			if !yield(Row(x.Slice())) {
				return
			}
		}
	}
}

func (s *set[T]) run(t *testing.T, f func(t *testing.T, x T)) {
	for _, x := range s.items {
		t.Run(caseName(x.Slice()), func(t *testing.T) {
			f(t, x)
		})
	}
}

// caseName returns the subtest name for an entry
// holding the given values.
func caseName(vals []any) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// FromValues returns a set holding each value produced by seq, in order.
func FromValues[T any](seq iter.Seq[T]) *Set1[T] {
	s := new(Set1[T])
	for x := range seq {
		s.add(tuple.MkT1(x))
	}
	return s
}
