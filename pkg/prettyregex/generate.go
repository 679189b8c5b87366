package prettyregex

import (
	"fmt"
	"regexp"

	"github.com/abs0luty/pretty-regex/internal/codegen"
)

// Definition names a pattern to declare in generated code.
type Definition struct {
	// Name is the exported identifier of the compiled variable; the source
	// constant is Name + "Pattern"
	Name string

	// Pattern is the expression to lower
	Pattern Expr

	// Inputs are recorded with their match outcome in the generated test file
	Inputs []string
}

// Options configures code generation.
type Options struct {
	// Package is the Go package name for the generated code
	Package string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Patterns are declared in order
	Patterns []Definition

	// POSIX compiles the declared variables with leftmost-longest semantics
	POSIX bool

	// GenerateTestFile writes <output>_test.go with one table test per
	// pattern that has Inputs
	GenerateTestFile bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if len(o.Patterns) == 0 {
		return fmt.Errorf("no patterns to generate")
	}

	declared := make(map[string]string)
	for i, d := range o.Patterns {
		if !codegen.IsExportedIdentifier(d.Name) {
			return fmt.Errorf("pattern %d: name %q is not an exported Go identifier", i, d.Name)
		}
		if d.Pattern == nil {
			return fmt.Errorf("pattern %s: no expression", d.Name)
		}
		for _, id := range []string{d.Name, codegen.ConstName(d.Name)} {
			if prev, ok := declared[id]; ok {
				return fmt.Errorf("pattern %s: identifier %s already declared by %s", d.Name, id, prev)
			}
			declared[id] = d.Name
		}
	}
	return nil
}

// Generate writes a Go file declaring every pattern in opts as a source
// constant and a compiled *regexp.Regexp. Each pattern is compiled first;
// an engine error aborts generation before anything is written.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	compile := regexp.Compile
	if opts.POSIX {
		compile = regexp.CompilePOSIX
	}

	entries := make([]codegen.Entry, 0, len(opts.Patterns))
	for _, d := range opts.Patterns {
		src := d.Pattern.String()
		re, err := compile(src)
		if err != nil {
			return fmt.Errorf("pattern %s: %w", d.Name, err)
		}

		entry := codegen.Entry{Name: d.Name, Pattern: src}
		for _, in := range d.Inputs {
			entry.Expectations = append(entry.Expectations, codegen.Expectation{
				Input: in,
				Match: re.MatchString(in),
			})
		}
		entries = append(entries, entry)
	}

	g := codegen.New(codegen.Config{
		Package:          opts.Package,
		OutputFile:       opts.OutputFile,
		Entries:          entries,
		POSIX:            opts.POSIX,
		GenerateTestFile: opts.GenerateTestFile,
	})
	if err := g.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
