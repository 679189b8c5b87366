package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	rx "github.com/abs0luty/pretty-regex/pkg/prettyregex"
)

// logger is the CLI's logger; a no-op unless --verbose is set.
var logger = zap.NewNop()

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "prettyregex",
		Short: "Build, inspect and generate readable regular expressions",
		Long: `prettyregex composes regular expressions from named pieces.

The CLI exposes a catalog of ready-made patterns and generates Go files
declaring compiled patterns from a YAML manifest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l
			rx.SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newMatchCmd(),
		newGenerateCmd(),
	)
	return root
}
