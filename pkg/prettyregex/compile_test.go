package prettyregex

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"testing"
)

// fullMatch anchors e on both sides of the text.
func fullMatch(t *testing.T, e Expr) *regexp.Regexp {
	t.Helper()
	re, err := Compile(Concat(TextBeginning(), e, TextEnding()))
	if err != nil {
		t.Fatalf("compile %s: %v", e, err)
	}
	return re
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name    string
		expr    Expr
		pattern string
		match   []string
		reject  []string
	}{
		{
			name:    "zip plus four",
			expr:    Digit().Repeats(5).Then(Just("-").Then(Digit().Repeats(4)).Optional()),
			pattern: `\d{5}(?:-\d{4})?`,
			match:   []string{"12345", "12345-6789"},
			reject:  []string{"1234", "12345-678", "123456789"},
		},
		{
			name: "anchored date",
			expr: Beginning().
				Then(Digit().Repeats(4)).
				Then(Just("-").Then(Digit().Repeats(2)).Repeats(2)).
				Then(Ending()),
			pattern: `^\d{4}(?:-\d{2}){2}$`,
			match:   []string{"1234-56-78"},
			reject:  []string{"1234-56-78x", "x1234-56-78", "1234-56", "1234-5678"},
		},
		{
			name: "regexp spellings",
			expr: Just("rege").Then(
				Just("x").Then(Just("es").Optional()).
					Or(Just("xp").Then(Just("s").Optional())),
			),
			pattern: `rege(?:x(?:es)?|xps?)`,
			match:   []string{"regex", "regexes", "regexp", "regexps"},
			reject:  []string{"regexx", "rege", "regexe"},
		},
		{
			name:    "escaped dot",
			expr:    Literal("."),
			pattern: `\.`,
			match:   []string{"."},
			reject:  []string{"a", "", ".."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.pattern {
				t.Errorf("String() = %q, want %q", got, tt.pattern)
			}

			re := fullMatch(t, tt.expr)
			for _, in := range tt.match {
				if !re.MatchString(in) {
					t.Errorf("%s should match %q", re, in)
				}
			}
			for _, in := range tt.reject {
				if re.MatchString(in) {
					t.Errorf("%s should not match %q", re, in)
				}
			}
		})
	}
}

func TestAnchoredDateRejectsTrailingCharacter(t *testing.T) {
	date := Beginning().
		Then(Digit().Repeats(4)).
		Then(Just("-").Then(Digit().Repeats(2)).Repeats(2)).
		Then(Ending())

	re := MustCompile(date)
	if !re.MatchString("1234-56-78") {
		t.Errorf("%s should match", re)
	}
	if re.MatchString("1234-56-789") {
		t.Errorf("%s should reject a trailing digit", re)
	}
}

func TestCompileReturnsEngineError(t *testing.T) {
	_, err := Compile(Nonescaped(`(unclosed`))
	if err == nil {
		t.Fatal("expected compile error")
	}

	var synErr *syntax.Error
	if !errors.As(err, &synErr) {
		t.Fatalf("error %T is not a *syntax.Error", err)
	}
	if synErr.Code != syntax.ErrMissingParen {
		t.Errorf("code = %v, want %v", synErr.Code, syntax.ErrMissingParen)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on an invalid pattern")
		}
	}()
	MustCompile(Nonescaped(`[`))
}

func TestRepeatCountBeyondEngineLimit(t *testing.T) {
	if _, err := Compile(Digit().Repeats(5000)); err == nil {
		t.Error("expected the engine to reject a repeat count over its limit")
	}
}

func TestAlternationPreference(t *testing.T) {
	short, long := Just("ab"), Just("abc")

	re := MustCompile(OneOf(short, long))
	if got := re.FindString("abcd"); got != "ab" {
		t.Errorf("leftmost-first FindString() = %q, want %q", got, "ab")
	}

	re = MustCompile(OneOf(long, short))
	if got := re.FindString("abcd"); got != "abc" {
		t.Errorf("leftmost-first FindString() = %q, want %q", got, "abc")
	}

	re = MustCompilePOSIX(OneOf(short, long))
	if got := re.FindString("abcd"); got != "abc" {
		t.Errorf("leftmost-longest FindString() = %q, want %q", got, "abc")
	}

	if _, err := CompilePOSIX(OneOf(short, long)); err != nil {
		t.Errorf("CompilePOSIX: %v", err)
	}
}

func TestRepeatsZero(t *testing.T) {
	re := fullMatch(t, Just("abc").Repeats(0))
	if !re.MatchString("") {
		t.Error("Repeats(0) should match the empty string")
	}
	if re.MatchString("abc") {
		t.Error("Repeats(0) should not match its operand")
	}
}

func TestCaptures(t *testing.T) {
	date := Digit().Repeats(2).NamedCapture("month").
		Then(Just("-")).
		Then(Digit().Repeats(2).NamedCapture("day"))

	re := MustCompile(date)
	m := re.FindStringSubmatch("08-05")
	if m == nil {
		t.Fatal("no match")
	}
	if got := m[re.SubexpIndex("month")]; got != "08" {
		t.Errorf("month = %q, want %q", got, "08")
	}
	if got := m[re.SubexpIndex("day")]; got != "05" {
		t.Errorf("day = %q, want %q", got, "05")
	}
}

func TestLazy(t *testing.T) {
	re := MustCompile(Just("<").Then(Any().OneOrMore().Lazy()).Then(Just(">")))
	if got := re.FindString("<a><b>"); got != "<a>" {
		t.Errorf("FindString() = %q, want %q", got, "<a>")
	}

	re = MustCompile(Just("<").Then(Any().OneOrMore()).Then(Just(">")))
	if got := re.FindString("<a><b>"); got != "<a><b>" {
		t.Errorf("greedy FindString() = %q, want %q", got, "<a><b>")
	}
}

func TestClassesMatch(t *testing.T) {
	tests := []struct {
		name   string
		class  Expr
		match  []string
		reject []string
	}{
		{"any", Any(), []string{"a", "."}, []string{"\n"}},
		{"digit", Digit(), []string{"1", "7"}, []string{"a"}},
		{"word", Word(), []string{"a", "2", "_"}, []string{"?"}},
		{"whitespace", Whitespace(), []string{"\n", " "}, []string{"a"}},
		{"ascii alphabetic", ASCIIAlphabetic(), []string{"a", "B"}, []string{"1", " "}},
		{"ascii alphanumeric", ASCIIAlphanumeric(), []string{"a", "Z", "7"}, []string{" "}},
		{"ascii lowercase", ASCIILowercase(), []string{"a", "b"}, []string{"ю", "A", "!"}},
		{"alphabetic", Alphabetic(), []string{"a", "ю", "A"}, []string{"5", "!"}},
		{"alphanumeric", Alphanumeric(), []string{"a", "ю", "5"}, []string{"!"}},
		{"lowercase", Lowercase(), []string{"a", "ю"}, []string{"A", "!", " "}},
		{"within", Within('a', 'b'), []string{"a", "b"}, []string{"c"}},
		{"without", Without('a', 'b'), []string{"c"}, []string{"a", "b"}},
		{"within range", WithinRange('a', 'z'), []string{"a", "q"}, []string{"Z"}},
		{"without range", WithoutRange('a', 'z'), []string{"Z"}, []string{"a"}},
		{"not digit", Not(Digit()), []string{"a"}, []string{"1"}},
		{"empty set", Within(), nil, []string{"a", "\n"}},
		{"empty negated set", Without(), []string{"a", "\n"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := fullMatch(t, tt.class)
			for _, in := range tt.match {
				if !re.MatchString(in) {
					t.Errorf("%s should match %q", re, in)
				}
			}
			for _, in := range tt.reject {
				if re.MatchString(in) {
					t.Errorf("%s should not match %q", re, in)
				}
			}
		})
	}
}

func TestWordBoundary(t *testing.T) {
	re := MustCompile(WordBoundary().Then(Just("cat")).Then(WordBoundary()))
	if !re.MatchString("a cat sat") {
		t.Error("should match a standalone word")
	}
	if re.MatchString("concatenate") {
		t.Error("should not match inside a word")
	}

	re = MustCompile(Not(WordBoundary()).Then(Just("cat")))
	if !re.MatchString("concatenate") {
		t.Error("negated boundary should match inside a word")
	}
}
