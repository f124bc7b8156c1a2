package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run:   runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "aritygen version %s\n", Version)
	fmt.Fprintf(w, "  Commit: %s\n", Commit)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
}
