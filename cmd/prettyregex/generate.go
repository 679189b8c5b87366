package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abs0luty/pretty-regex/internal/catalog"
	"github.com/abs0luty/pretty-regex/internal/config"
	rx "github.com/abs0luty/pretty-regex/pkg/prettyregex"
)

func newGenerateCmd() *cobra.Command {
	var (
		manifest string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go code from a pattern manifest",
		Long: `Generate a Go file declaring each pattern of a YAML manifest as a
source constant and a compiled *regexp.Regexp, and optionally a test file
checking the recorded inputs.

With --watch the file is regenerated whenever the manifest changes, until
the command is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generateFromManifest(manifest); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated from %s\n", manifest)
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchAndGenerate(ctx, cmd, manifest)
		},
	}

	cmd.Flags().StringVarP(&manifest, "config", "c", "prettyregex.yaml", "manifest file path")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate when the manifest changes")
	return cmd
}

// generateFromManifest loads the manifest at path and writes its output.
func generateFromManifest(path string) error {
	m, err := config.Load(path)
	if err != nil {
		return err
	}

	opts, err := m.Options(catalogLookup)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	if err := rx.Generate(opts); err != nil {
		return err
	}

	logger.Info("generated", zap.String("manifest", path), zap.String("output", opts.OutputFile))
	return nil
}

func catalogLookup(name string) (rx.Expr, bool) {
	e, ok := catalog.Lookup(name)
	return e.Pattern, ok
}

func watchAndGenerate(ctx context.Context, cmd *cobra.Command, path string) error {
	w, err := newManifestWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", path)
	return w.Run(ctx, func() {
		if err := generateFromManifest(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "regenerate: %v\n", err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "regenerated from %s\n", path)
	})
}
