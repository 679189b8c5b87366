package lower

import (
	"strings"
	"unicode/utf8"

	"github.com/abs0luty/pretty-regex/internal/ir"
)

// literalSpecial holds every byte that must be backslash-escaped outside a
// bracket expression.
const literalSpecial = `\.*+?()[]{}^$|/`

// setSpecial holds every byte that must be escaped inside [...].
const setSpecial = `\]-[^`

var classTokens = [...][2]string{
	ir.ClassDigit:             {`\d`, `\D`},
	ir.ClassWord:              {`\w`, `\W`},
	ir.ClassWhitespace:        {`\s`, `\S`},
	ir.ClassAny:               {`.`, `\n`},
	ir.ClassASCIIAlphabetic:   {`[a-zA-Z]`, `[^a-zA-Z]`},
	ir.ClassASCIIAlphanumeric: {`[a-zA-Z0-9]`, `[^a-zA-Z0-9]`},
	ir.ClassASCIILowercase:    {`[a-z]`, `[^a-z]`},
	ir.ClassASCIIUppercase:    {`[A-Z]`, `[^A-Z]`},
}

var anchorTokens = [...]string{
	ir.AnchorStart:           `^`,
	ir.AnchorEnd:             `$`,
	ir.AnchorTextStart:       `\A`,
	ir.AnchorTextEnd:         `\z`,
	ir.AnchorWordBoundary:    `\b`,
	ir.AnchorNotWordBoundary: `\B`,
}

// Classes with no members: an empty set matches nothing, its complement
// matches any character including newline.
const (
	emptySet    = `[^\x00-\x{10FFFF}]`
	universeSet = `[\x00-\x{10FFFF}]`
)

// Escape returns text with every regex metacharacter backslash-escaped.
// Bytes that are not valid UTF-8 become \x{FFFD}.
func Escape(text string) string {
	var b strings.Builder
	writeEscaped(&b, text)
	return b.String()
}

// invalidByte stands for a byte that is not valid UTF-8. The regexp engine
// reads such a byte in the input as U+FFFD, so this is the closest match; it
// also matches a real U+FFFD.
const invalidByte = `\x{FFFD}`

func writeEscaped(b *strings.Builder, text string) {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(invalidByte)
			continue
		case r < utf8.RuneSelf && strings.IndexByte(literalSpecial, byte(r)) >= 0:
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
}

func writeSetMember(b *strings.Builder, r rune) {
	if r < 0x80 && strings.IndexByte(setSpecial, byte(r)) >= 0 {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

func writeClass(b *strings.Builder, c ir.Class) {
	neg := 0
	if c.Negated {
		neg = 1
	}

	switch c.Tag {
	case ir.ClassUnicode:
		if c.Negated {
			b.WriteString(`\P{`)
		} else {
			b.WriteString(`\p{`)
		}
		b.WriteString(string(c.Category))
		b.WriteByte('}')
	case ir.ClassSet:
		if len(c.Set) == 0 {
			if c.Negated {
				b.WriteString(universeSet)
			} else {
				b.WriteString(emptySet)
			}
			return
		}
		b.WriteByte('[')
		if c.Negated {
			b.WriteByte('^')
		}
		for _, r := range c.Set {
			writeSetMember(b, r)
		}
		b.WriteByte(']')
	case ir.ClassRange:
		b.WriteByte('[')
		if c.Negated {
			b.WriteByte('^')
		}
		writeSetMember(b, c.Lo)
		b.WriteByte('-')
		writeSetMember(b, c.Hi)
		b.WriteByte(']')
	default:
		b.WriteString(classTokens[c.Tag][neg])
	}
}
