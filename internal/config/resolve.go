package config

import (
	"fmt"

	rx "github.com/abs0luty/pretty-regex/pkg/prettyregex"
)

// Lookup resolves a catalog example name to its pattern.
type Lookup func(name string) (rx.Expr, bool)

// Options turns m into generation options, resolving examples with lookup.
func (m *Manifest) Options(lookup Lookup) (rx.Options, error) {
	opts := rx.Options{
		Package:          m.Package,
		OutputFile:       m.Output,
		POSIX:            m.POSIX,
		GenerateTestFile: m.TestFile,
		Patterns:         make([]rx.Definition, 0, len(m.Patterns)),
	}

	for i, p := range m.Patterns {
		var expr rx.Expr
		switch p.Source() {
		case "example":
			e, ok := lookup(p.Example)
			if !ok {
				return rx.Options{}, FieldError{
					Field:   fmt.Sprintf("patterns[%d].example", i),
					Message: fmt.Sprintf("unknown example %q", p.Example),
				}
			}
			expr = e
		case "literal":
			expr = rx.Just(p.Literal)
		case "raw":
			expr = rx.Nonescaped(p.Raw)
		default:
			return rx.Options{}, FieldError{Field: fmt.Sprintf("patterns[%d]", i), Message: "no pattern source"}
		}

		opts.Patterns = append(opts.Patterns, rx.Definition{
			Name:    p.Name,
			Pattern: expr,
			Inputs:  p.Inputs,
		})
	}
	return opts, nil
}
