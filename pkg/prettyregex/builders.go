package prettyregex

import "github.com/abs0luty/pretty-regex/internal/ir"

// Category is a Unicode general category or script name, as accepted by
// \p{...}.
type Category = ir.Category

// Unicode general categories.
const (
	Letter          = ir.CategoryLetter
	LowercaseLetter = ir.CategoryLowercaseLetter
	UppercaseLetter = ir.CategoryUppercaseLetter
	TitlecaseLetter = ir.CategoryTitlecaseLetter
	Mark            = ir.CategoryMark
	Number          = ir.CategoryNumber
	DecimalNumber   = ir.CategoryDecimalNumber
	Punctuation     = ir.CategoryPunctuation
	Symbol          = ir.CategorySymbol
	Separator       = ir.CategorySeparator
	Other           = ir.CategoryOther
)

// Just matches text exactly. Regex metacharacters in text are escaped.
// The regexp engine cannot match raw bytes, so each byte of text that is not
// valid UTF-8 matches any invalid byte or U+FFFD.
func Just(text string) Pattern {
	return Pattern{ir.NewLiteral(text)}
}

// Literal is an alias for Just.
func Literal(text string) Pattern {
	return Just(text)
}

// Nonescaped inserts text as regex source without escaping it. The result
// is only validated when the pattern is compiled.
func Nonescaped(text string) Pattern {
	return Pattern{ir.NewRaw(text)}
}

func class(tag ir.ClassTag) Class {
	return Class{Pattern{ir.NewClass(tag)}}
}

func anchor(tag ir.AnchorTag) Anchor {
	return Anchor{Pattern{ir.NewAnchor(tag)}}
}

// Any matches any character except newline (.).
func Any() Class { return class(ir.ClassAny) }

// Digit matches an ASCII digit (\d).
func Digit() Class { return class(ir.ClassDigit) }

// Word matches an ASCII letter, digit or underscore (\w).
func Word() Class { return class(ir.ClassWord) }

// Whitespace matches ASCII whitespace (\s).
func Whitespace() Class { return class(ir.ClassWhitespace) }

// ASCIIAlphabetic matches a-z and A-Z.
func ASCIIAlphabetic() Class { return class(ir.ClassASCIIAlphabetic) }

// ASCIIAlphanumeric matches a-z, A-Z and 0-9.
func ASCIIAlphanumeric() Class { return class(ir.ClassASCIIAlphanumeric) }

// ASCIILowercase matches a-z.
func ASCIILowercase() Class { return class(ir.ClassASCIILowercase) }

// ASCIIUppercase matches A-Z.
func ASCIIUppercase() Class { return class(ir.ClassASCIIUppercase) }

// Unicode matches a character in the given category or script.
func Unicode(cat Category) Class {
	return Class{Pattern{ir.NewCategory(cat)}}
}

// Alphabetic matches any Unicode letter.
func Alphabetic() Class { return Unicode(Letter) }

// Lowercase matches any Unicode lowercase letter.
func Lowercase() Class { return Unicode(LowercaseLetter) }

// Uppercase matches any Unicode uppercase letter.
func Uppercase() Class { return Unicode(UppercaseLetter) }

// Alphanumeric matches any Unicode letter or number.
func Alphanumeric() Pattern {
	return OneOf(Unicode(Letter), Unicode(Number))
}

// Within matches any one of chars.
func Within(chars ...rune) Class {
	return Class{Pattern{ir.NewSet(false, chars...)}}
}

// Without matches any character except chars.
func Without(chars ...rune) Class {
	return Class{Pattern{ir.NewSet(true, chars...)}}
}

// WithinRange matches characters from lo to hi inclusive. It panics with
// ErrInvalidBound when lo > hi.
func WithinRange(lo, hi rune) Class {
	return Class{Pattern{ir.NewRange(lo, hi, false)}}
}

// WithoutRange matches characters outside lo to hi inclusive.
func WithoutRange(lo, hi rune) Class {
	return Class{Pattern{ir.NewRange(lo, hi, true)}}
}

// Beginning matches at the start of the text, or of a line in multi-line
// mode (^).
func Beginning() Anchor { return anchor(ir.AnchorStart) }

// Ending matches at the end of the text, or of a line in multi-line mode ($).
func Ending() Anchor { return anchor(ir.AnchorEnd) }

// TextBeginning matches at the start of the text in any mode (\A).
func TextBeginning() Anchor { return anchor(ir.AnchorTextStart) }

// TextEnding matches at the end of the text in any mode (\z).
func TextEnding() Anchor { return anchor(ir.AnchorTextEnd) }

// WordBoundary matches between a word and a non-word character (\b).
func WordBoundary() Anchor { return anchor(ir.AnchorWordBoundary) }
