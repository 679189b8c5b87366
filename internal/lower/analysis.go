package lower

import (
	"sort"
	"unicode/utf8"

	"github.com/abs0luty/pretty-regex/internal/ir"
)

// Feature labels reported by Analyze.
const (
	LabelAlternation      = "Alternation"
	LabelAnchored         = "Anchored"
	LabelCaptures         = "Captures"
	LabelCharClass        = "CharClass"
	LabelMultibyte        = "Multibyte"
	LabelNonCapturing     = "NonCapturing"
	LabelQuantifiers      = "Quantifiers"
	LabelRaw              = "Raw"
	LabelUnicodeCharClass = "UnicodeCharClass"
	LabelWordBoundary     = "WordBoundary"
	LabelSimple           = "Simple"
)

// AnalysisResult describes the structure of a pattern tree.
type AnalysisResult struct {
	// Labels are derived from the tree structure (sorted alphabetically)
	Labels []string `json:"labels"`

	// Captures holds one entry per capturing group in the order the engine
	// numbers them; unnamed groups have an empty name.
	Captures []string `json:"captures"`

	Nodes  int `json:"nodes"`
	Depth  int `json:"depth"`
	Groups int `json:"groups"` // non-capturing groups inserted by lowering
}

// CaptureIndex returns the 1-based index of the group named name, or 0.
func (r AnalysisResult) CaptureIndex(name string) int {
	for i, c := range r.Captures {
		if c == name {
			return i + 1
		}
	}
	return 0
}

// Analyze walks n and reports its structural features without lowering
// it to text, except to count the groups lowering would insert.
func Analyze(n ir.Node) AnalysisResult {
	var res AnalysisResult
	found := make(map[string]bool)

	ir.Walk(n, func(n ir.Node, depth int) bool {
		res.Nodes++
		if depth+1 > res.Depth {
			res.Depth = depth + 1
		}

		switch n := n.(type) {
		case ir.Literal:
			if hasMultibyte(n.Text) {
				found[LabelMultibyte] = true
			}
		case ir.Raw:
			found[LabelRaw] = true
		case ir.Class:
			found[LabelCharClass] = true
			switch n.Tag {
			case ir.ClassUnicode:
				found[LabelUnicodeCharClass] = true
			case ir.ClassSet:
				for _, r := range n.Set {
					if r >= utf8.RuneSelf {
						found[LabelMultibyte] = true
						break
					}
				}
			case ir.ClassRange:
				if n.Hi >= utf8.RuneSelf {
					found[LabelMultibyte] = true
				}
			}
		case ir.Anchor:
			switch n.Tag {
			case ir.AnchorWordBoundary, ir.AnchorNotWordBoundary:
				found[LabelWordBoundary] = true
			default:
				found[LabelAnchored] = true
			}
		case ir.Alternate:
			found[LabelAlternation] = true
		case ir.Repeat, ir.Optional:
			found[LabelQuantifiers] = true
		case ir.Group:
			found[LabelCaptures] = true
			res.Captures = append(res.Captures, n.Name)
		}
		return true
	})

	res.Groups = insertedGroups(n)
	if res.Groups > 0 {
		found[LabelNonCapturing] = true
	}

	for label := range found {
		res.Labels = append(res.Labels, label)
	}
	if len(res.Labels) == 0 {
		res.Labels = append(res.Labels, LabelSimple)
	}
	sort.Strings(res.Labels)

	return res
}

func hasMultibyte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
