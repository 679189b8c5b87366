// Package catalog holds ready-made named patterns used by the CLI, the
// examples and the manifest's "example" references.
package catalog

import (
	"sort"

	rx "github.com/abs0luty/pretty-regex/pkg/prettyregex"
)

// Entry is a named pattern with sample inputs.
type Entry struct {
	Name        string
	Description string
	Pattern     rx.Expr
	Inputs      []string
}

var entries = map[string]Entry{}

func register(e Entry) {
	if _, ok := entries[e.Name]; ok {
		panic("catalog: duplicate entry " + e.Name)
	}
	entries[e.Name] = e
}

func init() {
	register(Entry{
		Name:        "zip",
		Description: "US ZIP code with optional +4 suffix",
		Pattern:     rx.Digit().Repeats(5).Then(rx.Just("-").Then(rx.Digit().Repeats(4)).Optional()),
		Inputs:      []string{"12345", "12345-6789", "1234"},
	})
	register(Entry{
		Name:        "date",
		Description: "whole-line YYYY-MM-DD date",
		Pattern: rx.Beginning().
			Then(rx.Digit().Repeats(4)).
			Then(rx.Just("-").Then(rx.Digit().Repeats(2)).Repeats(2)).
			Then(rx.Ending()),
		Inputs: []string{"2024-01-31", "2024-01-31x", "2024-1-31"},
	})
	register(Entry{
		Name:        "regexp",
		Description: "spellings of regex and regexp, singular and plural",
		Pattern: rx.Just("rege").Then(
			rx.Just("x").Then(rx.Just("es").Optional()).
				Or(rx.Just("xp").Then(rx.Just("s").Optional())),
		),
		Inputs: []string{"regex", "regexes", "regexp", "regexps", "rege"},
	})
	register(Entry{
		Name:        "pets",
		Description: "cat or dog, optionally plural",
		Pattern:     rx.OneOf(rx.Just("cat"), rx.Just("dog")).Then(rx.Just("s").Optional()),
		Inputs:      []string{"cats", "dog", "bird"},
	})
	register(Entry{
		Name:        "version",
		Description: "semantic version with named captures",
		Pattern: rx.Concat(
			rx.Just("v").Optional(),
			rx.Digit().OneOrMore().NamedCapture("major"),
			rx.Just("."),
			rx.Digit().OneOrMore().NamedCapture("minor"),
			rx.Just("."),
			rx.Digit().OneOrMore().NamedCapture("patch"),
		),
		Inputs: []string{"v1.2.3", "10.0.1", "1.2"},
	})
	register(Entry{
		Name:        "hexcolor",
		Description: "CSS hex color, short or long form",
		Pattern: rx.Just("#").Then(
			rx.OneOf(rx.WithinRange('0', '9'), rx.WithinRange('a', 'f'), rx.WithinRange('A', 'F')).
				RepeatsBetween(3, 6),
		),
		Inputs: []string{"#fff", "#C0FFEE", "#zz0"},
	})
	register(Entry{
		Name:        "identifier",
		Description: "ASCII identifier: letter or underscore, then word characters",
		Pattern: rx.WordBoundary().
			Then(rx.OneOf(rx.ASCIIAlphabetic(), rx.Just("_"))).
			Then(rx.Word().ZeroOrMore()).
			Then(rx.WordBoundary()),
		Inputs: []string{"snake_case", "_tmp", "9lives"},
	})
	register(Entry{
		Name:        "tag",
		Description: "shortest angle-bracketed tag",
		Pattern:     rx.Just("<").Then(rx.Without('>').OneOrMore().Lazy()).Then(rx.Just(">")),
		Inputs:      []string{"<b>bold</b>", "no tags"},
	})
}

// Lookup returns the entry called name.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[name]
	return e, ok
}

// Names returns every entry name, sorted.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every entry sorted by name.
func All() []Entry {
	all := make([]Entry, 0, len(entries))
	for _, name := range Names() {
		all = append(all, entries[name])
	}
	return all
}
