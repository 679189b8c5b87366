package config

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/abs0luty/pretty-regex/internal/codegen"
)

// FieldError is a validation error for one manifest field.
type FieldError struct {
	// Field is the dotted path to the field (e.g. "patterns[0].name")
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in a manifest.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "manifest validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  - %s", err.Error())
	}
	return sb.String()
}

// Validate checks m and returns a ValidationError listing every problem,
// or nil.
func Validate(m *Manifest) error {
	var errs []FieldError

	switch {
	case m.Package == "":
		errs = append(errs, FieldError{Field: "package", Message: "must not be empty"})
	case !token.IsIdentifier(m.Package):
		errs = append(errs, FieldError{Field: "package", Message: fmt.Sprintf("%q is not a valid package name", m.Package)})
	}

	if m.Output == "" {
		errs = append(errs, FieldError{Field: "output", Message: "must not be empty"})
	} else if !strings.HasSuffix(m.Output, codegen.GoSuffix) || strings.HasSuffix(m.Output, codegen.TestSuffix) {
		errs = append(errs, FieldError{Field: "output", Message: "must be a non-test .go file"})
	}

	if len(m.Patterns) == 0 {
		errs = append(errs, FieldError{Field: "patterns", Message: "at least one pattern is required"})
	}

	// seen maps each generated identifier to the pattern that declares it.
	seen := make(map[string]int)
	for i, p := range m.Patterns {
		field := fmt.Sprintf("patterns[%d]", i)

		if !codegen.IsExportedIdentifier(p.Name) {
			errs = append(errs, FieldError{Field: field + ".name", Message: fmt.Sprintf("%q is not an exported Go identifier", p.Name)})
		} else if id, prev, ok := declared(seen, p.Name); ok {
			errs = append(errs, FieldError{Field: field + ".name", Message: fmt.Sprintf("identifier %s already declared by patterns[%d]", id, prev)})
		} else {
			seen[p.Name] = i
			seen[codegen.ConstName(p.Name)] = i
		}

		switch p.sourceCount() {
		case 0:
			errs = append(errs, FieldError{Field: field, Message: "one of example, literal or raw is required"})
		case 1:
		default:
			errs = append(errs, FieldError{Field: field, Message: "only one of example, literal or raw may be set"})
		}
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// declared reports the first identifier generated for name that an earlier
// pattern already declares.
func declared(seen map[string]int, name string) (string, int, bool) {
	for _, id := range []string{name, codegen.ConstName(name)} {
		if prev, ok := seen[id]; ok {
			return id, prev, true
		}
	}
	return "", 0, false
}
