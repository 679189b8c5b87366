package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	rx "github.com/abs0luty/pretty-regex/pkg/prettyregex"
	"github.com/abs0luty/pretty-regex/stream"
)

var errNoMatch = errors.New("some inputs did not match")

func newMatchCmd() *cobra.Command {
	var (
		strict bool
		posix  bool
		file   string
	)

	cmd := &cobra.Command{
		Use:   "match NAME [INPUT...]",
		Short: "Match inputs against a catalog pattern",
		Long: `Match each input against a catalog pattern and print the leftmost
match. With --file the lines of a file ("-" for stdin) are scanned instead
and matching lines are printed with their line number.

With --strict the command fails if any input does not match, or if no line
of the file matches.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return cobra.MinimumNArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0])
			if err != nil {
				return err
			}

			compile := rx.Compile
			if posix {
				compile = rx.CompilePOSIX
			}
			re, err := compile(e.Pattern)
			if err != nil {
				return fmt.Errorf("pattern %s: %w", e.Name, err)
			}

			var failed int
			if file != "" {
				failed, err = matchFile(cmd, re, file)
				if err != nil {
					return err
				}
			} else {
				failed = matchInputs(cmd.OutOrStdout(), re, args[1:])
			}

			logger.Debug("matched inputs",
				zap.String("pattern", re.String()),
				zap.Int("failed", failed),
			)
			if strict && failed > 0 {
				return errNoMatch
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any input does not match")
	cmd.Flags().BoolVar(&posix, "posix", false, "use leftmost-longest matching")
	cmd.Flags().StringVarP(&file, "file", "f", "", `scan the lines of a file ("-" for stdin)`)
	return cmd
}

// matchInputs prints the leftmost match of re in each input and returns the
// number of inputs without one.
func matchInputs(out io.Writer, re *regexp.Regexp, inputs []string) int {
	failed := 0
	for _, in := range inputs {
		loc := re.FindStringIndex(in)
		if loc == nil {
			failed++
			fmt.Fprintf(out, "%q\tno match\n", in)
			continue
		}
		fmt.Fprintf(out, "%q\tmatch %q at %d\n", in, in[loc[0]:loc[1]], loc[0])
	}
	return failed
}

// matchFile prints every matching line of path. It reports one failure when
// no line matches.
func matchFile(cmd *cobra.Command, re *regexp.Regexp, path string) (int, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	out := cmd.OutOrStdout()
	lines := 0
	err := stream.FindLines(r, re, stream.DefaultConfig(), func(m stream.Match) bool {
		lines++
		fmt.Fprintf(out, "%d:%d\t%s\n", m.Line, m.Start+1, m.Text[m.Start:m.End])
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if lines == 0 {
		return 1, nil
	}
	return 0, nil
}
