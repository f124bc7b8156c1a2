package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	qt "github.com/frankban/quicktest"
)

// execute runs aritygen with the given arguments.
func execute(args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCommandStructure(t *testing.T) {
	c := qt.New(t)
	root := newRootCmd()
	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	c.Assert(names, qt.DeepEquals, []string{"from", "set", "tuple", "version"})
	for _, name := range []string{"output", "max", "package", "log-level"} {
		c.Assert(root.PersistentFlags().Lookup(name), qt.Not(qt.IsNil), qt.Commentf("flag %s", name))
	}
}

func TestGenerateToStdout(t *testing.T) {
	c := qt.New(t)
	stdout, stderr, err := execute("tuple", "--max", "2")
	c.Assert(err, qt.IsNil)
	c.Assert(stderr, qt.Equals, "")
	c.Assert(stdout, qt.Contains, "package tuple\n")
	c.Assert(stdout, qt.Contains, "type T2[A0, A1 any] struct {")
	c.Assert(stdout, qt.Not(qt.Contains), "type T3[")
}

func TestGenerateToFile(t *testing.T) {
	c := qt.New(t)
	out := filepath.Join(c.TempDir(), "set_gen.go")
	stdout, stderr, err := execute("set", "-o", out, "--package", "cases", "--log-level", "info")
	c.Assert(err, qt.IsNil)
	c.Assert(stdout, qt.Equals, "")
	c.Assert(stderr, qt.Contains, "wrote generated code")
	c.Assert(stderr, qt.Contains, out)

	data, err := os.ReadFile(out)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, "package cases\n")
	c.Assert(string(data), qt.Contains, "type Set10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {")
}

func TestGenerateFromEnvironment(t *testing.T) {
	c := qt.New(t)
	c.Setenv("ARITYGEN_MAX", "1")
	c.Setenv("ARITYGEN_LOG_LEVEL", "debug")
	stdout, stderr, err := execute("from")
	c.Assert(err, qt.IsNil)
	c.Assert(stdout, qt.Contains, "func FromRows1[T1 any]")
	c.Assert(stdout, qt.Not(qt.Contains), "FromRows2")
	c.Assert(stderr, qt.Contains, "generating")
}

func TestFlagOverridesEnvironment(t *testing.T) {
	c := qt.New(t)
	c.Setenv("ARITYGEN_MAX", "1")
	stdout, _, err := execute("from", "--max", "2")
	c.Assert(err, qt.IsNil)
	c.Assert(stdout, qt.Contains, "func FromRows2[T1, T2 any]")
}

var generateErrorTests = []struct {
	testName    string
	args        []string
	expectError string
}{{
	testName:    "arity-out-of-range",
	args:        []string{"tuple", "--max", "11"},
	expectError: `arity 11 out of range \[1, 10\]`,
}, {
	testName:    "bad-log-level",
	args:        []string{"set", "--log-level", "loud"},
	expectError: `invalid log level "loud"`,
}, {
	testName:    "extra-argument",
	args:        []string{"set", "extra"},
	expectError: `unknown command "extra" for "aritygen set"`,
}, {
	testName:    "unwritable-output",
	args:        []string{"set", "-o", filepath.Join("nonexistent", "dir", "x.go")},
	expectError: `cannot write generated code: .*`,
}}

func TestGenerateErrors(t *testing.T) {
	for _, test := range generateErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			c := qt.New(t)
			_, _, err := execute(test.args...)
			c.Assert(err, qt.ErrorMatches, test.expectError)
		})
	}
}

func TestVersion(t *testing.T) {
	c := qt.New(t)
	c.Patch(&Version, "1.2.3")
	c.Patch(&Commit, "abc123")
	stdout, _, err := execute("version")
	c.Assert(err, qt.IsNil)
	c.Assert(stdout, qt.Equals, "aritygen version 1.2.3\n  Commit: abc123\n  Go version: "+runtime.Version()+"\n")
}
