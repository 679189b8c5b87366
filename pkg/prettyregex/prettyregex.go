// Package prettyregex builds regular expressions from small named pieces
// instead of raw regex syntax.
//
// A pattern is an immutable tree. Every combinator returns a new value, so
// patterns can be shared, reused and lowered concurrently:
//
//	zip := prettyregex.Digit().Repeats(5).
//		Then(prettyregex.Just("-").Then(prettyregex.Digit().Repeats(4)).Optional())
//
//	zip.String() // \d{5}(?:-\d{4})?
//
//	re := prettyregex.MustCompile(zip)
//	re.MatchString("12345-6789") // true
//
// Lowering inserts non-capturing groups only where operator precedence
// requires them and escapes literal text, so the output always means
// exactly what the tree says.
package prettyregex

import (
	"github.com/abs0luty/pretty-regex/internal/ir"
	"github.com/abs0luty/pretty-regex/internal/lower"
)

// Expr is any pattern value: Pattern, Class, Anchor or Quantifier.
type Expr interface {
	// String returns the lowered regex source.
	String() string
	node() ir.Node
}

// Pattern is a regular expression under construction.
// The zero value matches the empty string.
type Pattern struct {
	n ir.Node
}

// Class is a pattern matching exactly one character. It can be negated.
type Class struct {
	Pattern
}

// Anchor is a zero-width assertion.
type Anchor struct {
	Pattern
}

// Quantifier is a pattern ending in a repetition. It can be made lazy.
type Quantifier struct {
	Pattern
}

func (p Pattern) node() ir.Node {
	if p.n == nil {
		return ir.NewLiteral("")
	}
	return p.n
}

// String returns the regex source for p.
func (p Pattern) String() string {
	return lower.Lower(p.node())
}

// Then matches p immediately followed by next.
func (p Pattern) Then(next Expr) Pattern {
	return Pattern{ir.NewConcat(p.node(), next.node())}
}

// Or matches p or other, preferring p.
func (p Pattern) Or(other Expr) Pattern {
	return Pattern{ir.NewAlternate(p.node(), other.node())}
}

// Repeats matches p exactly n times. It panics with ErrInvalidBound if n
// is negative.
func (p Pattern) Repeats(n int) Quantifier {
	return Quantifier{Pattern{ir.NewExact(p.node(), n)}}
}

// RepeatsBetween matches p at least least and at most most times. It panics
// with ErrInvalidBound for negative bounds or least > most.
func (p Pattern) RepeatsBetween(least, most int) Quantifier {
	return Quantifier{Pattern{ir.NewRepeat(p.node(), least, most)}}
}

// RepeatsAtLeast matches p n or more times.
func (p Pattern) RepeatsAtLeast(n int) Quantifier {
	return Quantifier{Pattern{ir.NewAtLeast(p.node(), n)}}
}

// OneOrMore matches p one or more times.
func (p Pattern) OneOrMore() Quantifier {
	return p.RepeatsAtLeast(1)
}

// ZeroOrMore matches p any number of times.
func (p Pattern) ZeroOrMore() Quantifier {
	return p.RepeatsAtLeast(0)
}

// Optional matches p zero or one times.
func (p Pattern) Optional() Quantifier {
	return Quantifier{Pattern{ir.NewOptional(p.node())}}
}

// Capture wraps p in a capturing group.
func (p Pattern) Capture() Pattern {
	return Pattern{ir.NewGroup(p.node(), "")}
}

// NamedCapture wraps p in a capturing group called name.
func (p Pattern) NamedCapture(name string) Pattern {
	return Pattern{ir.NewGroup(p.node(), name)}
}

// Not matches any single character c does not match.
func (c Class) Not() Class {
	return Class{Pattern{ir.Negate(c.node())}}
}

// Not returns the opposite assertion. Only word boundaries have one; other
// anchors are returned unchanged.
func (a Anchor) Not() Anchor {
	return Anchor{Pattern{ir.Negate(a.node())}}
}

// Lazy makes the quantifier prefer as few repetitions as possible.
func (q Quantifier) Lazy() Pattern {
	return Pattern{ir.MakeLazy(q.node())}
}

// Not returns the negation of a Class or Anchor.
func Not[T interface{ Not() T }](x T) T {
	return x.Not()
}

// Concat matches exprs in sequence. With no arguments it matches the empty
// string.
func Concat(exprs ...Expr) Pattern {
	return Pattern{ir.NewConcat(nodes(exprs)...)}
}

// OneOf matches any one of exprs, preferring earlier ones. A single
// argument is returned as is; OneOf panics with ErrInvalidArity when called
// without arguments.
func OneOf(exprs ...Expr) Pattern {
	return Pattern{ir.NewAlternate(nodes(exprs)...)}
}

func nodes(exprs []Expr) []ir.Node {
	ns := make([]ir.Node, len(exprs))
	for i, e := range exprs {
		ns[i] = e.node()
	}
	return ns
}
