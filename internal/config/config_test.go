package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	rx "github.com/abs0luty/pretty-regex/pkg/prettyregex"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeManifest(t, `
package: patterns
posix: true
test_file: true
patterns:
  - name: ZipPlus4
    example: zip
    inputs: ["12345", "1234"]
  - name: Dot
    literal: "."
  - name: Digits
    raw: '\d+'
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load manifest: %v", err)
	}

	if m.Package != "patterns" {
		t.Errorf("package = %q, want %q", m.Package, "patterns")
	}
	if want := filepath.Join(filepath.Dir(path), "patterns_gen.go"); m.Output != want {
		t.Errorf("output = %q, want %q", m.Output, want)
	}
	if !m.POSIX || !m.TestFile {
		t.Errorf("posix = %v, test_file = %v, want both true", m.POSIX, m.TestFile)
	}
	if len(m.Patterns) != 3 {
		t.Fatalf("got %d patterns, want 3", len(m.Patterns))
	}

	sources := []string{"example", "literal", "raw"}
	for i, p := range m.Patterns {
		if got := p.Source(); got != sources[i] {
			t.Errorf("patterns[%d].Source() = %q, want %q", i, got, sources[i])
		}
	}
	if got := m.Patterns[0].Inputs; len(got) != 2 || got[1] != "1234" {
		t.Errorf("inputs = %v", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeManifest(t, `
package: patterns
output: ignored.go
patterns:
  - name: Dot
    literal: "."
`)
	out := filepath.Join(t.TempDir(), "override.go")
	t.Setenv(EnvOutput, out)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load manifest: %v", err)
	}
	if m.Output != out {
		t.Errorf("output = %q, want %q", m.Output, out)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty document", "", "package: must not be empty"},
		{"bad yaml", "package: [", "failed to parse"},
		{"unknown field", "package: p\npaterns: []\n", "field paterns not found"},
		{"no patterns", "package: p\n", "at least one pattern"},
		{"bad package", "package: 9p\npatterns:\n  - name: A\n    raw: a\n", "not a valid package name"},
		{"test output", "package: p\noutput: p_test.go\npatterns:\n  - name: A\n    raw: a\n", "non-test .go file"},
		{"unexported name", "package: p\npatterns:\n  - name: a\n    raw: a\n", "not an exported Go identifier"},
		{"duplicate name", "package: p\npatterns:\n  - name: A\n    raw: a\n  - name: A\n    raw: b\n", "already declared by patterns[0]"},
		{"constant name collision", "package: p\npatterns:\n  - name: Zip\n    raw: a\n  - name: ZipPattern\n    raw: b\n", "identifier ZipPattern already declared by patterns[0]"},
		{"constant name collision reversed", "package: p\npatterns:\n  - name: ZipPattern\n    raw: a\n  - name: Zip\n    raw: b\n", "identifier ZipPattern already declared by patterns[0]"},
		{"no source", "package: p\npatterns:\n  - name: A\n", "one of example, literal or raw is required"},
		{"two sources", "package: p\npatterns:\n  - name: A\n    raw: a\n    literal: a\n", "only one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	err := Validate(&Manifest{Patterns: []PatternDecl{{Name: "x"}}})

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %T is not a ValidationError", err)
	}

	fields := make(map[string]bool)
	for _, fe := range verr.Errors {
		fields[fe.Field] = true
	}
	for _, want := range []string{"package", "output", "patterns[0].name", "patterns[0]"} {
		if !fields[want] {
			t.Errorf("missing error for %s in %v", want, verr)
		}
	}
	if !strings.HasPrefix(verr.Error(), "4 errors:") {
		t.Errorf("Error() = %q", verr.Error())
	}
}

func TestValidate_IdentifierCollision(t *testing.T) {
	m := &Manifest{
		Package: "p",
		Output:  "p_gen.go",
		Patterns: []PatternDecl{
			{Name: "Zip", Raw: "a"},
			{Name: "Date", Raw: "b"},
			{Name: "ZipPattern", Raw: "c"},
		},
	}

	var verr ValidationError
	if !errors.As(Validate(m), &verr) {
		t.Fatal("expected a ValidationError")
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "patterns[2].name" {
		t.Errorf("errors = %v, want one error on patterns[2].name", verr.Errors)
	}
}

func TestApplyDefaults(t *testing.T) {
	m := &Manifest{Package: "words"}
	ApplyDefaults(m)
	if m.Output != "words_gen.go" {
		t.Errorf("output = %q, want %q", m.Output, "words_gen.go")
	}

	m = &Manifest{Package: "words", Output: "custom.go"}
	ApplyDefaults(m)
	if m.Output != "custom.go" {
		t.Errorf("explicit output overwritten: %q", m.Output)
	}
}

func TestOptions(t *testing.T) {
	m := &Manifest{
		Package:  "patterns",
		Output:   "patterns_gen.go",
		TestFile: true,
		Patterns: []PatternDecl{
			{Name: "Pets", Example: "pets", Inputs: []string{"cats"}},
			{Name: "Dot", Literal: "."},
			{Name: "Digits", Raw: `\d+`},
		},
	}
	lookup := func(name string) (rx.Expr, bool) {
		if name == "pets" {
			return rx.OneOf(rx.Just("cat"), rx.Just("dog")).Then(rx.Just("s").Optional()), true
		}
		return nil, false
	}

	opts, err := m.Options(lookup)
	if err != nil {
		t.Fatalf("Options() = %v", err)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("options do not validate: %v", err)
	}
	if !opts.GenerateTestFile || opts.Package != "patterns" {
		t.Errorf("options = %+v", opts)
	}

	want := []string{`(?:cat|dog)s?`, `\.`, `\d+`}
	for i, d := range opts.Patterns {
		if got := d.Pattern.String(); got != want[i] {
			t.Errorf("%s = %q, want %q", d.Name, got, want[i])
		}
	}
	if len(opts.Patterns[0].Inputs) != 1 {
		t.Errorf("inputs not carried over: %v", opts.Patterns[0].Inputs)
	}

	m.Patterns = append(m.Patterns, PatternDecl{Name: "Birds", Example: "birds"})
	_, err = m.Options(lookup)
	var fe FieldError
	if !errors.As(err, &fe) || fe.Field != "patterns[3].example" {
		t.Errorf("error = %v, want unknown example field error", err)
	}
}
