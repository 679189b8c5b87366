package replace

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/abs0luty/pretty-regex/internal/lower"
	rx "github.com/abs0luty/pretty-regex/pkg/prettyregex"
)

// Replacer applies a checked template to the matches of a pattern.
type Replacer struct {
	re       *regexp.Regexp
	template *Template
	expand   string
}

// New parses template, checks its group references against e and compiles
// e. Groups are taken from the pattern tree; when the tree holds raw source
// the compiled pattern's group table is used instead.
func New(e rx.Expr, template string) (*Replacer, error) {
	tmpl, err := Parse(template)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	re, err := rx.Compile(e)
	if err != nil {
		return nil, err
	}

	analysis := rx.Analyze(e)
	captures := analysis.Captures
	if slices.Contains(analysis.Labels, lower.LabelRaw) {
		captures = re.SubexpNames()[1:]
	}

	segs, err := tmpl.Resolve(captures)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", template, err)
	}

	resolved := &Template{Source: template, Segments: segs}
	return &Replacer{re: re, template: tmpl, expand: resolved.Expand()}, nil
}

// MustNew is like New but panics on error.
func MustNew(e rx.Expr, template string) *Replacer {
	r, err := New(e, template)
	if err != nil {
		panic(err)
	}
	return r
}

// ReplaceAllString replaces every match in src.
func (r *Replacer) ReplaceAllString(src string) string {
	return r.re.ReplaceAllString(src, r.expand)
}

// ReplaceFirstString replaces the leftmost match in src only.
func (r *Replacer) ReplaceFirstString(src string) string {
	m := r.re.FindStringSubmatchIndex(src)
	if m == nil {
		return src
	}
	dst := make([]byte, 0, len(src))
	dst = append(dst, src[:m[0]]...)
	dst = r.re.ExpandString(dst, r.expand, src, m)
	dst = append(dst, src[m[1]:]...)
	return string(dst)
}

// Regexp returns the compiled pattern.
func (r *Replacer) Regexp() *regexp.Regexp { return r.re }

// Template returns the template as parsed, names unresolved.
func (r *Replacer) Template() *Template { return r.template }

// String returns the template in the form passed to the engine.
func (r *Replacer) String() string { return r.expand }
