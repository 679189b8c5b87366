// Package codegen writes Go source files declaring lowered patterns.
package codegen

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Identifier parts used in generated code
const (
	PatternSuffix = "Pattern"
	TestPrefix    = "Test"
	TestSuffix    = "_test.go"
	GoSuffix      = ".go"
)

// ConstName returns the name of the string constant holding name's source.
func ConstName(name string) string {
	return name + PatternSuffix
}

// TestName returns the name of the generated test function for name.
func TestName(name string) string {
	return TestPrefix + UpperFirst(name)
}

// TestFilePath returns the path of the test file paired with path.
func TestFilePath(path string) string {
	return strings.TrimSuffix(path, GoSuffix) + TestSuffix
}

// IsExportedIdentifier reports whether name can be used as an exported Go
// identifier in generated code.
func IsExportedIdentifier(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
