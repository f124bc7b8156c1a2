// Package gen renders the per-arity source files of the tuple and
// rowset packages from a single set of templates, so that every arity
// behaves identically.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

// MaxArity is the largest arity that can be generated.
const MaxArity = 10

// TuplePath is the import path of the tuple package.
const TuplePath = "github.com/rogpeppe/rowset/tuple"

// Kind names a generated file.
type Kind string

const (
	// KindTuple generates the tuple types.
	KindTuple Kind = "tuple"
	// KindSet generates the SetN types.
	KindSet Kind = "set"
	// KindFrom generates the FromXxxN conversion functions.
	KindFrom Kind = "from"
)

// Kinds holds all the known kinds.
var Kinds = []Kind{KindTuple, KindSet, KindFrom}

func (k Kind) defaultPackage() string {
	if k == KindTuple {
		return "tuple"
	}
	return "rowset"
}

// Params holds the parameters for Generate.
type Params struct {
	Kind Kind
	// Package holds the package name of the generated file.
	// If it's empty, the usual package for Kind is used.
	Package string
	// Max holds the largest arity to generate.
	// Arities from 1 to Max are generated.
	Max int
}

type data struct {
	Package   string
	TuplePath string
	Arities   []int
}

// Generate returns the gofmt-formatted source of the file
// described by p.
func Generate(p Params) ([]byte, error) {
	tmpl, ok := templates[p.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.Max < 1 || p.Max > MaxArity {
		return nil, fmt.Errorf("arity %d out of range [1, %d]", p.Max, MaxArity)
	}
	d := data{
		Package:   p.Package,
		TuplePath: TuplePath,
	}
	if d.Package == "" {
		d.Package = p.Kind.defaultPackage()
	}
	for n := 1; n <= p.Max; n++ {
		d.Arities = append(d.Arities, n)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("cannot execute %s template: %v", p.Kind, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format generated %s code: %v", p.Kind, err)
	}
	return src, nil
}

var funcs = template.FuncMap{
	"names":  names,
	"pairs":  pairs,
	"seq":    seq,
	"add":    func(a, b int) int { return a + b },
	"plural": plural,
}

// names returns a comma-separated list of n identifiers
// made from prefix followed by from, from+1, etc.
func names(prefix string, from, n int) string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(from+i)
	}
	return strings.Join(ids, ", ")
}

// pairs is like names but returns a parameter list
// with a name and a type for each item.
func pairs(name string, nameFrom int, typ string, typFrom, n int) string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = name + strconv.Itoa(nameFrom+i) + " " + typ + strconv.Itoa(typFrom+i)
	}
	return strings.Join(ids, ", ")
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

var templates = map[Kind]*template.Template{
	KindTuple: template.Must(template.New("tuple").Funcs(funcs).Parse(tupleTemplate)),
	KindSet:   template.Must(template.New("set").Funcs(funcs).Parse(setTemplate)),
	KindFrom:  template.Must(template.New("from").Funcs(funcs).Parse(fromTemplate)),
}

const header = `// Code generated by aritygen; DO NOT EDIT.

package {{.Package}}
`

const tupleTemplate = header + `
{{range .Arities}}
// T{{.}} holds {{.}} value{{plural .}}.
type T{{.}}[{{names "A" 0 .}} any] struct {
{{- range seq .}}
	A{{.}} A{{.}}
{{- end}}
}

// MkT{{.}} returns a T{{.}} holding the given value{{plural .}}.
func MkT{{.}}[{{names "A" 0 .}} any]({{pairs "a" 0 "A" 0 .}}) T{{.}}[{{names "A" 0 .}}] {
	return T{{.}}[{{names "A" 0 .}}]{ {{- names "a" 0 .}}}
}

// T returns the value{{plural .}} held in t.
func (t T{{.}}[{{names "A" 0 .}}]) T() {{if eq . 1}}A0{{else}}({{names "A" 0 .}}){{end}} {
	return {{names "t.A" 0 .}}
}

// Slice returns the value{{plural .}} held in t as a new slice.
func (t T{{.}}[{{names "A" 0 .}}]) Slice() []any {
	return []any{ {{- names "t.A" 0 .}}}
}
{{end}}`

const setTemplate = header + `
import (
	"testing"

	"{{.TuplePath}}"
)
{{range .Arities}}
// Set{{.}} is an ordered set of test cases holding {{.}} value{{plural .}} each.
// The zero value is an empty set ready to use.
type Set{{.}}[{{names "T" 1 .}} any] struct {
	set[tuple.T{{.}}[{{names "T" 1 .}}]]
}

// Add appends an entry holding the given value{{plural .}}.
func (s *Set{{.}}[{{names "T" 1 .}}]) Add({{pairs "v" 1 "T" 1 .}}) {
	s.add(tuple.MkT{{.}}({{names "v" 1 .}}))
}

// AddTuple appends x to s.
func (s *Set{{.}}[{{names "T" 1 .}}]) AddTuple(x tuple.T{{.}}[{{names "T" 1 .}}]) {
	s.add(x)
}

// Run runs f as a subtest of t for each entry of s, in order.
// Each subtest is named after the values of its entry.
func (s *Set{{.}}[{{names "T" 1 .}}]) Run(t *testing.T, f func(t *testing.T, {{pairs "v" 1 "T" 1 .}})) {
	s.run(t, func(t *testing.T, x tuple.T{{.}}[{{names "T" 1 .}}]) {
		f(t, {{names "x.A" 0 .}})
	})
}
{{end}}`

const fromTemplate = header + `
import (
	"iter"
	"slices"

	"{{.TuplePath}}"
)
{{range .Arities}}
// FromTuples{{.}} returns a set holding each tuple produced by seq, in order.
func FromTuples{{.}}[{{names "T" 1 .}} any](seq iter.Seq[tuple.T{{.}}[{{names "T" 1 .}}]]) *Set{{.}}[{{names "T" 1 .}}] {
	s := new(Set{{.}}[{{names "T" 1 .}}])
	s.items = slices.Collect(seq)
	return s
}

// FromTuple{{.}} returns a set holding x as its only entry.
func FromTuple{{.}}[{{names "T" 1 .}} any](x tuple.T{{.}}[{{names "T" 1 .}}]) *Set{{.}}[{{names "T" 1 .}}] {
	s := new(Set{{.}}[{{names "T" 1 .}}])
	s.add(x)
	return s
}

// FromRows{{.}} returns a set holding an entry for each row produced by seq, in order.
// Each row must hold at least {{.}} value{{plural .}}, and the value at index i
// must be of type T(i+1). The first row that does not satisfy this
// stops the conversion with an *IndexError or a *CastError.
func FromRows{{.}}[{{names "T" 1 .}} any](seq iter.Seq[Row]) (*Set{{.}}[{{names "T" 1 .}}], error) {
	items, err := fromRows(seq, row{{.}}[{{names "T" 1 .}}])
	if err != nil {
		return nil, err
	}
	s := new(Set{{.}}[{{names "T" 1 .}}])
	s.items = items
	return s, nil
}

// FromRow{{.}} is like FromRows{{.}} but converts the single row r.
func FromRow{{.}}[{{names "T" 1 .}} any](r Row) (*Set{{.}}[{{names "T" 1 .}}], error) {
	return FromRows{{.}}[{{names "T" 1 .}}](single(r))
}

func row{{.}}[{{names "T" 1 .}} any](r Row, n int) (x tuple.T{{.}}[{{names "T" 1 .}}], err error) {
{{- range $i := seq .}}
	if x.A{{$i}}, err = at[T{{add $i 1}}](r, n, {{$i}}); err != nil {
		return x, err
	}
{{- end}}
	return x, nil
}
{{end}}`
