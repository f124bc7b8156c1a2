package rowset

import (
	"iter"
	"reflect"
)

// Row holds the loosely typed values of a single test case.
// Its arity is its length.
type Row []any

// at returns the value at index i of r narrowed to T.
// row is the index of r in its source sequence and
// is only used for error reporting.
func at[T any](r Row, row, i int) (T, error) {
	var zero T
	if i >= len(r) {
		return zero, &IndexError{
			Row:   row,
			Index: i,
			Len:   len(r),
		}
	}
	v := r[i]
	if x, ok := v.(T); ok {
		return x, nil
	}
	t := reflect.TypeFor[T]()
	if v == nil && nilable(t) {
		return zero, nil
	}
	return zero, &CastError{
		Row:   row,
		Index: i,
		Value: v,
		Type:  t,
	}
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// fromRows converts each row produced by seq with conv,
// stopping at the first error.
func fromRows[T any](seq iter.Seq[Row], conv func(r Row, row int) (T, error)) ([]T, error) {
	var items []T
	n := 0
	for r := range seq {
		x, err := conv(r, n)
		if err != nil {
			return nil, err
		}
		items = append(items, x)
		n++
	}
	return items, nil
}

func single(r Row) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		yield(r)
	}
}
