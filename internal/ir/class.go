package ir

// ClassTag identifies a character class.
type ClassTag uint8

const (
	ClassDigit ClassTag = iota
	ClassWord
	ClassWhitespace
	ClassAny
	ClassASCIIAlphabetic
	ClassASCIIAlphanumeric
	ClassASCIILowercase
	ClassASCIIUppercase
	ClassUnicode
	ClassSet
	ClassRange
)

// Category is a Unicode general category or script name accepted by \p{...}.
type Category string

const (
	CategoryLetter          Category = "L"
	CategoryLowercaseLetter Category = "Ll"
	CategoryUppercaseLetter Category = "Lu"
	CategoryTitlecaseLetter Category = "Lt"
	CategoryMark            Category = "M"
	CategoryNumber          Category = "N"
	CategoryDecimalNumber   Category = "Nd"
	CategoryPunctuation     Category = "P"
	CategorySymbol          Category = "S"
	CategorySeparator       Category = "Z"
	CategoryOther           Category = "C"
)

// Class matches a single character. Category is set for ClassUnicode, Set
// for ClassSet, Lo and Hi for ClassRange.
type Class struct {
	Tag      ClassTag
	Category Category
	Set      []rune
	Lo, Hi   rune
	Negated  bool
}

// AnchorTag identifies a zero-width assertion.
type AnchorTag uint8

const (
	AnchorStart AnchorTag = iota
	AnchorEnd
	AnchorTextStart
	AnchorTextEnd
	AnchorWordBoundary
	AnchorNotWordBoundary
)

// Anchor is a zero-width assertion.
type Anchor struct {
	Tag AnchorTag
}

// NewClass returns one of the fixed classes. Use NewCategory, NewSet and
// NewRange for the parameterised ones.
func NewClass(tag ClassTag) Node {
	return Class{Tag: tag}
}

// NewCategory returns a class matching characters of a Unicode category.
func NewCategory(cat Category) Node {
	return Class{Tag: ClassUnicode, Category: cat}
}

// NewSet returns a class matching any of runes, or none of them if negated.
func NewSet(negated bool, runes ...rune) Node {
	set := make([]rune, len(runes))
	copy(set, runes)
	return Class{Tag: ClassSet, Set: set, Negated: negated}
}

// NewRange returns a class matching characters in lo..hi inclusive.
// It panics with ErrInvalidBound when lo > hi.
func NewRange(lo, hi rune, negated bool) Node {
	if lo > hi {
		panic(contractf("range", ErrInvalidBound, "lo %q is greater than hi %q", lo, hi))
	}
	return Class{Tag: ClassRange, Lo: lo, Hi: hi, Negated: negated}
}

// NewAnchor returns a zero-width assertion.
func NewAnchor(tag AnchorTag) Node {
	return Anchor{Tag: tag}
}

// Negate returns the complement of a class or word-boundary anchor. Other
// nodes have no single-character complement and are returned unchanged.
func Negate(n Node) Node {
	switch n := n.(type) {
	case Class:
		n.Negated = !n.Negated
		return n
	case Anchor:
		switch n.Tag {
		case AnchorWordBoundary:
			return Anchor{Tag: AnchorNotWordBoundary}
		case AnchorNotWordBoundary:
			return Anchor{Tag: AnchorWordBoundary}
		}
	}
	return n
}
