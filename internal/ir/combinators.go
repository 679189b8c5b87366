package ir

// NewLiteral returns a node matching text exactly. Any text is accepted.
func NewLiteral(text string) Node {
	return Literal{Text: text}
}

// NewRaw returns a node holding regex source that is emitted verbatim.
func NewRaw(text string) Node {
	return Raw{Text: text}
}

// NewConcat returns nodes in sequence. Concat operands are spliced in so the
// result never nests a Concat directly. With no operands it returns the
// empty literal; with one it returns that operand.
func NewConcat(nodes ...Node) Node {
	var children []Node
	for _, n := range nodes {
		if c, ok := n.(Concat); ok {
			children = append(children, c.Children...)
			continue
		}
		children = append(children, n)
	}

	switch len(children) {
	case 0:
		return Literal{}
	case 1:
		return children[0]
	}
	return Concat{Children: children}
}

// NewAlternate returns a node matching any one of nodes, in the given order
// of preference. Nested alternations are kept as they are. A single operand
// collapses to itself; it panics with ErrInvalidArity when nodes is empty.
func NewAlternate(nodes ...Node) Node {
	switch len(nodes) {
	case 0:
		panic(contractf("alternate", ErrInvalidArity, "need at least 2 alternatives, got 0"))
	case 1:
		return nodes[0]
	}

	children := make([]Node, len(nodes))
	copy(children, nodes)
	return Alternate{Children: children}
}

// NewRepeat returns child repeated between least and most times inclusive.
// It panics with ErrInvalidBound for negative bounds or least > most; use
// NewAtLeast for an open upper bound.
func NewRepeat(child Node, least, most int) Node {
	if least < 0 {
		panic(contractf("repeat", ErrInvalidBound, "negative minimum %d", least))
	}
	if most < 0 {
		panic(contractf("repeat", ErrInvalidBound, "negative maximum %d", most))
	}
	if least > most {
		panic(contractf("repeat", ErrInvalidBound, "minimum %d is greater than maximum %d", least, most))
	}
	return Repeat{Child: child, Min: least, Max: most}
}

// NewAtLeast returns child repeated least or more times.
func NewAtLeast(child Node, least int) Node {
	if least < 0 {
		panic(contractf("repeat", ErrInvalidBound, "negative minimum %d", least))
	}
	return Repeat{Child: child, Min: least, Max: Unbounded}
}

// NewExact returns child repeated exactly n times.
func NewExact(child Node, n int) Node {
	if n < 0 {
		panic(contractf("repeat", ErrInvalidBound, "negative count %d", n))
	}
	return Repeat{Child: child, Min: n, Max: n}
}

// NewOptional returns child matched zero or one times.
func NewOptional(child Node) Node {
	return Optional{Child: child}
}

// NewGroup returns a capturing group around child. An empty name makes the
// group unnamed.
func NewGroup(child Node, name string) Node {
	return Group{Child: child, Name: name}
}

// MakeLazy returns a quantifier that prefers fewer repetitions. Nodes that
// are not quantifiers are returned unchanged.
func MakeLazy(n Node) Node {
	switch n := n.(type) {
	case Repeat:
		n.Lazy = true
		return n
	case Optional:
		n.Lazy = true
		return n
	}
	return n
}
