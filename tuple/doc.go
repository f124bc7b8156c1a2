// Package tuple is a collection of generic struct types
// that hold a specific number of values, from T1 up to T10.
//
// The value at position i of a tuple is held in field Ai.
// The row sets in package rowset store their entries as tuples.
package tuple

//go:generate go run github.com/rogpeppe/rowset/cmd/aritygen tuple -o tuple_gen.go
