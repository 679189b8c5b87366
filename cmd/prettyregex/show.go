package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abs0luty/pretty-regex/internal/catalog"
	rx "github.com/abs0luty/pretty-regex/pkg/prettyregex"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a catalog pattern and its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0])
			if err != nil {
				return err
			}

			a := rx.Analyze(e.Pattern)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:     %s\n", e.Name)
			fmt.Fprintf(out, "about:    %s\n", e.Description)
			fmt.Fprintf(out, "pattern:  %s\n", e.Pattern)
			fmt.Fprintf(out, "labels:   %s\n", strings.Join(a.Labels, ", "))
			fmt.Fprintf(out, "nodes:    %d (depth %d, %d inserted groups)\n", a.Nodes, a.Depth, a.Groups)
			if len(a.Captures) > 0 {
				names := make([]string, len(a.Captures))
				for i, c := range a.Captures {
					if c == "" {
						c = "-"
					}
					names[i] = fmt.Sprintf("%d:%s", i+1, c)
				}
				fmt.Fprintf(out, "captures: %s\n", strings.Join(names, " "))
			}
			return nil
		},
	}
}

func lookup(name string) (catalog.Entry, error) {
	e, ok := catalog.Lookup(name)
	if !ok {
		return catalog.Entry{}, fmt.Errorf("unknown pattern %q (available: %s)", name, strings.Join(catalog.Names(), ", "))
	}
	return e, nil
}
