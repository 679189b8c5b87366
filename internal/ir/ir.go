// Package ir defines the immutable pattern tree that the builder assembles
// and the lowering engine renders into regex source.
package ir

import "fmt"

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindRaw
	KindClass
	KindAnchor
	KindConcat
	KindAlternate
	KindRepeat
	KindOptional
	KindGroup
)

var kindNames = [...]string{
	KindLiteral:   "Literal",
	KindRaw:       "Raw",
	KindClass:     "Class",
	KindAnchor:    "Anchor",
	KindConcat:    "Concat",
	KindAlternate: "Alternate",
	KindRepeat:    "Repeat",
	KindOptional:  "Optional",
	KindGroup:     "Group",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is one vertex of a pattern tree. Nodes are values: once built they
// are never mutated, so a tree can be lowered any number of times and read
// from any number of goroutines.
type Node interface {
	Kind() Kind
	sealed()
}

// Literal matches Text exactly. Escaping happens at lowering time.
type Literal struct {
	Text string
}

// Raw is regex source inserted without escaping.
type Raw struct {
	Text string
}

// Concat matches Children in sequence. A Concat never holds another Concat.
type Concat struct {
	Children []Node
}

// Alternate matches any one of Children, preferring earlier ones.
// It always has at least two children.
type Alternate struct {
	Children []Node
}

// Unbounded marks a Repeat without an upper bound.
const Unbounded = -1

// Repeat matches Child between Min and Max times (Max may be Unbounded).
type Repeat struct {
	Child Node
	Min   int
	Max   int
	Lazy  bool
}

// Exact reports whether the repetition has a single count.
func (r Repeat) Exact() bool { return r.Min == r.Max }

// Optional matches Child zero or one times.
type Optional struct {
	Child Node
	Lazy  bool
}

// Group is a capturing group, optionally named.
type Group struct {
	Child Node
	Name  string
}

func (Literal) Kind() Kind   { return KindLiteral }
func (Raw) Kind() Kind       { return KindRaw }
func (Class) Kind() Kind     { return KindClass }
func (Anchor) Kind() Kind    { return KindAnchor }
func (Concat) Kind() Kind    { return KindConcat }
func (Alternate) Kind() Kind { return KindAlternate }
func (Repeat) Kind() Kind    { return KindRepeat }
func (Optional) Kind() Kind  { return KindOptional }
func (Group) Kind() Kind     { return KindGroup }

func (Literal) sealed()   {}
func (Raw) sealed()       {}
func (Class) sealed()     {}
func (Anchor) sealed()    {}
func (Concat) sealed()    {}
func (Alternate) sealed() {}
func (Repeat) sealed()    {}
func (Optional) sealed()  {}
func (Group) sealed()     {}

// Children returns the direct children of n in order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case Concat:
		return n.Children
	case Alternate:
		return n.Children
	case Repeat:
		return []Node{n.Child}
	case Optional:
		return []Node{n.Child}
	case Group:
		return []Node{n.Child}
	}
	return nil
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range Children(n) {
		walk(c, depth+1, fn)
	}
}
