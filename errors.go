package rowset

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCast is matched by every *CastError.
	ErrInvalidCast = errors.New("invalid cast")
)

// IndexError is returned when a row holds fewer values than
// the arity of the set it is converted to.
type IndexError struct {
	// Row holds the index of the row within the source sequence.
	Row int
	// Index holds the first position that is missing from the row.
	Index int
	// Len holds the length of the row.
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("rowset: row %d: index %d out of range [0:%d]", e.Row, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CastError is returned when a value in a row does not have
// the type declared for its position.
type CastError struct {
	// Row holds the index of the row within the source sequence.
	Row int
	// Index holds the position of the value within the row.
	Index int
	// Value holds the offending value.
	Value any
	// Type holds the type that Value could not be converted to.
	Type reflect.Type
}

func (e *CastError) Error() string {
	return fmt.Sprintf("rowset: row %d: cannot use %#v (type %T) at index %d as %v", e.Row, e.Value, e.Value, e.Index, e.Type)
}

func (e *CastError) Unwrap() error {
	return ErrInvalidCast
}
