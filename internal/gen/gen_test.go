package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

var checkedInFiles = []struct {
	kind Kind
	path string
}{{
	kind: KindTuple,
	path: "../../tuple/tuple_gen.go",
}, {
	kind: KindSet,
	path: "../../set_gen.go",
}, {
	kind: KindFrom,
	path: "../../from_gen.go",
}}

func TestCheckedInFilesUpToDate(t *testing.T) {
	for _, test := range checkedInFiles {
		t.Run(string(test.kind), func(t *testing.T) {
			c := qt.New(t)
			want, err := os.ReadFile(filepath.FromSlash(test.path))
			c.Assert(err, qt.IsNil)
			got, err := Generate(Params{
				Kind: test.kind,
				Max:  MaxArity,
			})
			c.Assert(err, qt.IsNil)
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				c.Fatalf("%s is out of date; run go generate (-want +got):\n%s", test.path, diff)
			}
		})
	}
}

var declTests = []struct {
	kind      Kind
	max       int
	wantPkg   string
	wantDecls []string
}{{
	kind:      KindTuple,
	max:       2,
	wantPkg:   "tuple",
	wantDecls: []string{"T1", "MkT1", "T", "Slice", "T2", "MkT2", "T", "Slice"},
}, {
	kind:      KindSet,
	max:       1,
	wantPkg:   "rowset",
	wantDecls: []string{"Set1", "Add", "AddTuple", "Run"},
}, {
	kind:    KindFrom,
	max:     2,
	wantPkg: "rowset",
	wantDecls: []string{
		"FromTuples1", "FromTuple1", "FromRows1", "FromRow1", "row1",
		"FromTuples2", "FromTuple2", "FromRows2", "FromRow2", "row2",
	},
}}

func TestGenerateDecls(t *testing.T) {
	for _, test := range declTests {
		t.Run(string(test.kind), func(t *testing.T) {
			c := qt.New(t)
			src, err := Generate(Params{
				Kind: test.kind,
				Max:  test.max,
			})
			c.Assert(err, qt.IsNil)
			f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
			c.Assert(err, qt.IsNil)
			c.Assert(f.Name.Name, qt.Equals, test.wantPkg)
			c.Assert(ast.IsGenerated(f), qt.IsTrue)
			c.Assert(declNames(f), qt.DeepEquals, test.wantDecls)
		})
	}
}

func declNames(f *ast.File) []string {
	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			names = append(names, d.Name.Name)
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if s, ok := s.(*ast.TypeSpec); ok {
					names = append(names, s.Name.Name)
				}
			}
		}
	}
	return names
}

func TestGeneratePackageOverride(t *testing.T) {
	c := qt.New(t)
	src, err := Generate(Params{
		Kind:    KindTuple,
		Package: "other",
		Max:     1,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(string(src), qt.Contains, "\npackage other\n")
}

func TestGenerateRowChecksInOrder(t *testing.T) {
	c := qt.New(t)
	src, err := Generate(Params{
		Kind: KindFrom,
		Max:  3,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(string(src), qt.Contains, `func row3[T1, T2, T3 any](r Row, n int) (x tuple.T3[T1, T2, T3], err error) {
	if x.A0, err = at[T1](r, n, 0); err != nil {
		return x, err
	}
	if x.A1, err = at[T2](r, n, 1); err != nil {
		return x, err
	}
	if x.A2, err = at[T3](r, n, 2); err != nil {
		return x, err
	}
	return x, nil
}
`)
}

var errorTests = []struct {
	testName    string
	params      Params
	expectError string
}{{
	testName:    "unknown-kind",
	params:      Params{Kind: "bogus", Max: 2},
	expectError: `unknown kind "bogus"`,
}, {
	testName:    "zero-arity",
	params:      Params{Kind: KindSet, Max: 0},
	expectError: `arity 0 out of range \[1, 10\]`,
}, {
	testName:    "too-large",
	params:      Params{Kind: KindTuple, Max: 11},
	expectError: `arity 11 out of range \[1, 10\]`,
}, {
	testName:    "bad-package",
	params:      Params{Kind: KindTuple, Package: "a b", Max: 1},
	expectError: `cannot format generated tuple code: .*`,
}}

func TestGenerateErrors(t *testing.T) {
	for _, test := range errorTests {
		t.Run(test.testName, func(t *testing.T) {
			c := qt.New(t)
			src, err := Generate(test.params)
			c.Assert(err, qt.ErrorMatches, test.expectError)
			c.Assert(src, qt.IsNil)
		})
	}
}

func TestNames(t *testing.T) {
	c := qt.New(t)
	c.Assert(names("T", 1, 3), qt.Equals, "T1, T2, T3")
	c.Assert(names("x.A", 0, 1), qt.Equals, "x.A0")
	c.Assert(pairs("v", 1, "T", 1, 2), qt.Equals, "v1 T1, v2 T2")
	c.Assert(seq(3), qt.DeepEquals, []int{0, 1, 2})
	c.Assert(plural(1), qt.Equals, "")
	c.Assert(plural(2), qt.Equals, "s")
}
