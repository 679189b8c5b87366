// Package config loads the YAML manifest that drives code generation.
//
// A manifest names the package and output file and lists the patterns to
// declare. Each pattern is either a catalog entry, a literal string that is
// escaped, or raw regex source inserted verbatim:
//
//	package: patterns
//	output: patterns_gen.go
//	test_file: true
//	patterns:
//	  - name: ZipPlus4
//	    example: zip
//	    inputs: ["12345", "12345-6789", "1234"]
//	  - name: Dot
//	    literal: "."
//
// The PRETTYREGEX_OUTPUT environment variable overrides the output path.
// Relative output paths are resolved against the manifest's directory.
package config

// Manifest is the top-level manifest document.
type Manifest struct {
	// Package is the Go package name of the generated file
	Package string `yaml:"package"`

	// Output is the generated file path; defaults to <package>_gen.go
	Output string `yaml:"output"`

	// POSIX compiles the declared variables with leftmost-longest semantics
	POSIX bool `yaml:"posix"`

	// TestFile also writes a table test per pattern that has inputs
	TestFile bool `yaml:"test_file"`

	Patterns []PatternDecl `yaml:"patterns"`
}

// PatternDecl declares one pattern. Exactly one of Example, Literal and Raw
// must be set.
type PatternDecl struct {
	Name    string   `yaml:"name"`
	Example string   `yaml:"example"`
	Literal string   `yaml:"literal"`
	Raw     string   `yaml:"raw"`
	Inputs  []string `yaml:"inputs"`
}

// Source reports which field defines the pattern: "example", "literal",
// "raw", or "" when none is set.
func (p PatternDecl) Source() string {
	switch {
	case p.Example != "":
		return "example"
	case p.Literal != "":
		return "literal"
	case p.Raw != "":
		return "raw"
	}
	return ""
}

func (p PatternDecl) sourceCount() int {
	n := 0
	for _, s := range []string{p.Example, p.Literal, p.Raw} {
		if s != "" {
			n++
		}
	}
	return n
}
