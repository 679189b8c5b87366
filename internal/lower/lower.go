// Package lower renders a pattern tree into regex source accepted by Go's
// regexp package, inserting non-capturing groups only where precedence
// requires them.
package lower

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/abs0luty/pretty-regex/internal/ir"
)

// position is where a node sits relative to its parent. Grouping decisions
// depend on it rather than on the output text.
type position uint8

const (
	posRoot position = iota
	posConcat
	posAlternate
	posQuantified
	posGroup
)

type lowerer struct {
	b      strings.Builder
	groups int
}

// Lower returns the regex source for n. It is total and deterministic: the
// same tree always produces the same string.
func Lower(n ir.Node) string {
	l := &lowerer{}
	l.lower(n, posRoot)
	out := l.b.String()

	Logger().Debug("lowered pattern",
		zap.String("pattern", out),
		zap.Int("groups", l.groups),
	)
	return out
}

// insertedGroups lowers n and reports how many non-capturing groups the
// lowering added.
func insertedGroups(n ir.Node) int {
	l := &lowerer{}
	l.lower(n, posRoot)
	return l.groups
}

func (l *lowerer) lower(n ir.Node, pos position) {
	if needsGroup(n, pos) {
		l.groups++
		l.b.WriteString("(?:")
		l.lower(n, posGroup)
		l.b.WriteByte(')')
		return
	}

	switch n := n.(type) {
	case ir.Literal:
		writeEscaped(&l.b, n.Text)
	case ir.Raw:
		l.b.WriteString(n.Text)
	case ir.Class:
		writeClass(&l.b, n)
	case ir.Anchor:
		l.b.WriteString(anchorTokens[n.Tag])
	case ir.Concat:
		for _, c := range n.Children {
			l.lower(c, posConcat)
		}
	case ir.Alternate:
		for i, c := range n.Children {
			if i > 0 {
				l.b.WriteByte('|')
			}
			l.lower(c, posAlternate)
		}
	case ir.Repeat:
		l.lower(n.Child, posQuantified)
		writeBounds(&l.b, n.Min, n.Max)
		if n.Lazy {
			l.b.WriteByte('?')
		}
	case ir.Optional:
		l.lower(n.Child, posQuantified)
		l.b.WriteByte('?')
		if n.Lazy {
			l.b.WriteByte('?')
		}
	case ir.Group:
		l.b.WriteByte('(')
		if n.Name != "" {
			l.b.WriteString("?P<")
			l.b.WriteString(n.Name)
			l.b.WriteByte('>')
		}
		l.lower(n.Child, posGroup)
		l.b.WriteByte(')')
	}
}

// needsGroup reports whether n must be wrapped in (?:...) at pos so that no
// neighbouring quantifier or alternation bar binds to only part of it.
func needsGroup(n ir.Node, pos position) bool {
	switch pos {
	case posConcat, posAlternate:
		switch n.Kind() {
		case ir.KindAlternate, ir.KindRaw:
			return true
		}
		return false
	case posQuantified:
		return !isAtomic(n)
	}
	return false
}

// isAtomic reports whether a quantifier suffix applies to all of n's output.
func isAtomic(n ir.Node) bool {
	switch n := n.(type) {
	case ir.Literal:
		return utf8.RuneCountInString(n.Text) == 1
	case ir.Class, ir.Group:
		return true
	}
	return false
}

func writeBounds(b *strings.Builder, least, most int) {
	switch {
	case least == most:
		b.WriteByte('{')
		b.WriteString(strconv.Itoa(least))
		b.WriteByte('}')
	case most == ir.Unbounded && least == 0:
		b.WriteByte('*')
	case most == ir.Unbounded && least == 1:
		b.WriteByte('+')
	case most == ir.Unbounded:
		b.WriteByte('{')
		b.WriteString(strconv.Itoa(least))
		b.WriteString(",}")
	default:
		b.WriteByte('{')
		b.WriteString(strconv.Itoa(least))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(most))
		b.WriteByte('}')
	}
}
