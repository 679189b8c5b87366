package prettyregex

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/abs0luty/pretty-regex/internal/codegen"
	"github.com/abs0luty/pretty-regex/internal/ir"
	"github.com/abs0luty/pretty-regex/internal/lower"
)

// ContractError is the panic value of a constructor called with operands
// that cannot form a pattern. Use errors.Is with ErrInvalidArity or
// ErrInvalidBound to tell the cases apart.
type ContractError = ir.ContractError

var (
	// ErrInvalidArity reports OneOf called without alternatives.
	ErrInvalidArity = ir.ErrInvalidArity
	// ErrInvalidBound reports a negative or inverted repetition or range.
	ErrInvalidBound = ir.ErrInvalidBound
)

// Compile lowers e and compiles it with the leftmost-first engine of the
// regexp package. Engine errors are returned unchanged.
func Compile(e Expr) (*regexp.Regexp, error) {
	return regexp.Compile(e.String())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// Use it where a malformed pattern is a programming error.
func MustCompile(e Expr) *regexp.Regexp {
	return regexp.MustCompile(e.String())
}

// CompilePOSIX is like Compile but uses leftmost-longest matching, so
// alternation order no longer decides between overlapping branches.
func CompilePOSIX(e Expr) (*regexp.Regexp, error) {
	return regexp.CompilePOSIX(e.String())
}

// MustCompilePOSIX is like CompilePOSIX but panics on failure.
func MustCompilePOSIX(e Expr) *regexp.Regexp {
	return regexp.MustCompilePOSIX(e.String())
}

// Escape returns text with all regex metacharacters escaped, exactly as Just
// lowers it.
func Escape(text string) string {
	return lower.Escape(text)
}

// SetLogger installs l as the logger of lowering and code generation.
// Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	lower.SetLogger(l)
	codegen.SetLogger(l)
}
