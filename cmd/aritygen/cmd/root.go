package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rogpeppe/rowset/internal/gen"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// envPrefix is the prefix of the environment variables
// that can be used instead of flags, e.g. ARITYGEN_MAX.
const envPrefix = "aritygen"

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "aritygen",
		Short: "Generate per-arity tuple and row set code",
		Long: `aritygen renders the source files that hold one declaration per arity
in the tuple and rowset packages. All arities come from the same template.

Flags may also be set through environment variables, for example
ARITYGEN_MAX=4 or ARITYGEN_LOG_LEVEL=debug.`,
		Version:      Version,
		SilenceUsage: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringP("output", "o", "", "Write to this file instead of stdout")
	flags.Int("max", gen.MaxArity, "Largest arity to generate")
	flags.String("package", "", "Package name of the generated file (default depends on kind)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	for _, kind := range gen.Kinds {
		rootCmd.AddCommand(newGenerateCmd(kind, v))
	}
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
