// Package replace parses replacement templates and applies them with
// patterns built by prettyregex.
package replace

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the kind of a template segment.
type Kind int

const (
	// KindText is literal text.
	KindText Kind = iota
	// KindWhole refers to the entire match ($0, ${0}).
	KindWhole
	// KindIndex refers to a capture group by number ($1, ${12}).
	KindIndex
	// KindName refers to a capture group by name ($year, ${year}).
	KindName
)

// Segment is one piece of a parsed template.
type Segment struct {
	Kind  Kind
	Text  string // KindText
	Index int    // KindIndex, 1-based
	Name  string // KindName
}

// Template is a parsed replacement template.
type Template struct {
	Source   string
	Segments []Segment
}

// Parse splits template into segments.
//
//   - $0, ${0}: the whole match
//   - $1 .. $99, ${n}: a group by number
//   - $name, ${name}: a group by name
//   - $$: a literal dollar sign
//
// A $ that starts none of these is kept as text. Adjacent text is merged
// into one segment. An unterminated or malformed ${...} is an error.
func Parse(template string) (*Template, error) {
	p := &parser{src: template}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &Template{Source: template, Segments: p.segs}, nil
}

type parser struct {
	src  string
	pos  int
	text strings.Builder
	segs []Segment
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c != '$' || p.pos+1 == len(p.src) {
			p.text.WriteByte(c)
			p.pos++
			continue
		}

		start := p.pos
		next := p.src[p.pos+1]
		switch {
		case next == '$':
			p.text.WriteByte('$')
			p.pos += 2
		case next == '{':
			seg, err := p.braced()
			if err != nil {
				return fmt.Errorf("at position %d: %w", start, err)
			}
			p.emit(seg)
		case next == '0':
			p.pos += 2
			p.emit(Segment{Kind: KindWhole})
		case isDigit(next):
			p.emit(p.index())
		case isNameStart(next):
			p.emit(p.name())
		default:
			p.text.WriteByte('$')
			p.pos++
		}
	}
	p.flush()
	return nil
}

func (p *parser) flush() {
	if p.text.Len() > 0 {
		p.segs = append(p.segs, Segment{Kind: KindText, Text: p.text.String()})
		p.text.Reset()
	}
}

func (p *parser) emit(seg Segment) {
	p.flush()
	p.segs = append(p.segs, seg)
}

// braced consumes ${...}.
func (p *parser) braced() (Segment, error) {
	end := strings.IndexByte(p.src[p.pos:], '}')
	if end < 0 {
		return Segment{}, fmt.Errorf("unclosed ${")
	}
	body := p.src[p.pos+2 : p.pos+end]
	p.pos += end + 1

	switch {
	case body == "":
		return Segment{}, fmt.Errorf("empty ${}")
	case isDigit(body[0]):
		n, err := strconv.Atoi(body)
		if err != nil || n < 0 {
			return Segment{}, fmt.Errorf("invalid group number ${%s}", body)
		}
		if n == 0 {
			return Segment{Kind: KindWhole}, nil
		}
		return Segment{Kind: KindIndex, Index: n}, nil
	case isName(body):
		return Segment{Kind: KindName, Name: body}, nil
	}
	return Segment{}, fmt.Errorf("invalid group name ${%s}", body)
}

// index consumes $N or $NN.
func (p *parser) index() Segment {
	n := int(p.src[p.pos+1] - '0')
	p.pos += 2
	if p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		n = n*10 + int(p.src[p.pos]-'0')
		p.pos++
	}
	return Segment{Kind: KindIndex, Index: n}
}

// name consumes $name.
func (p *parser) name() Segment {
	start := p.pos + 1
	p.pos = start + 1
	for p.pos < len(p.src) && isNameContinue(p.src[p.pos]) {
		p.pos++
	}
	return Segment{Kind: KindName, Name: p.src[start:p.pos]}
}

// Expand returns the template in the ${...} form accepted by
// regexp.Regexp.Expand, with dollar signs in text doubled.
func (t *Template) Expand() string {
	var sb strings.Builder
	for _, s := range t.Segments {
		switch s.Kind {
		case KindText:
			sb.WriteString(strings.ReplaceAll(s.Text, "$", "$$"))
		case KindWhole:
			sb.WriteString("${0}")
		case KindIndex:
			fmt.Fprintf(&sb, "${%d}", s.Index)
		case KindName:
			fmt.Fprintf(&sb, "${%s}", s.Name)
		}
	}
	return sb.String()
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Group names are ASCII, matching what the regexp engine accepts.
func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isName(s string) bool {
	if s == "" || !isNameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameContinue(s[i]) {
			return false
		}
	}
	return true
}
