// Command aritygen generates the per-arity source files of the
// tuple and rowset packages. It is run through go:generate.
package main

import "github.com/rogpeppe/rowset/cmd/aritygen/cmd"

func main() {
	cmd.Execute()
}
