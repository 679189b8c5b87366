package prettyregex

import (
	"github.com/abs0luty/pretty-regex/internal/lower"
)

// AnalysisResult describes the structure of a pattern.
type AnalysisResult = lower.AnalysisResult

// Analyze reports the structural features of e, sorted feature labels
// included, without compiling it.
//
// Example:
//
//	result := prettyregex.Analyze(prettyregex.Digit().Repeats(2).NamedCapture("day"))
//	fmt.Println(result.Labels)   // [Captures CharClass Quantifiers]
//	fmt.Println(result.Captures) // [day]
func Analyze(e Expr) AnalysisResult {
	return lower.Analyze(e.node())
}
