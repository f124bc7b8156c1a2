package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rogpeppe/rowset/internal/gen"
	"github.com/rogpeppe/rowset/internal/logger"
)

var kindDescriptions = map[gen.Kind]string{
	gen.KindTuple: "the tuple.TN types",
	gen.KindSet:   "the rowset.SetN types",
	gen.KindFrom:  "the rowset.FromXxxN conversion functions",
}

func newGenerateCmd(kind gen.Kind, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind),
		Short: "Generate " + kindDescriptions[kind],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return runGenerate(cmd, kind, v)
		},
	}
}

func runGenerate(cmd *cobra.Command, kind gen.Kind, v *viper.Viper) error {
	log, err := logger.New(v.GetString("log-level"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Sync()

	p := gen.Params{
		Kind:    kind,
		Package: v.GetString("package"),
		Max:     v.GetInt("max"),
	}
	log.Debugw("generating", "kind", p.Kind, "package", p.Package, "max", p.Max)
	src, err := gen.Generate(p)
	if err != nil {
		return err
	}
	out := v.GetString("output")
	if out == "" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(out, src, 0o666); err != nil {
		return fmt.Errorf("cannot write generated code: %v", err)
	}
	log.Infow("wrote generated code", "kind", p.Kind, "file", out, "bytes", len(src))
	return nil
}
