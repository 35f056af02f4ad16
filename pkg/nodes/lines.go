package nodes

// FromLine reports the first source line of the node's own block. For
// decorated definitions this is the "def"/"class" line, past the decorator
// span; a synthesized Arguments node reports its owning definition's line.
func FromLine(n Node) int {
	switch t := n.(type) {
	case *Arguments:
		if t.parent != nil {
			return FromLine(t.parent)
		}

		return 0
	case *FunctionDef:
		return defFromLine(t.pos, t.Decorators)
	case *AsyncFunctionDef:
		return defFromLine(t.pos, t.Decorators)
	case *ClassDef:
		return defFromLine(t.pos, t.Decorators)
	}

	if p := n.Pos(); p != nil {
		return p.Line
	}

	return 0
}

// ToLine reports the last source line of the node's span, found by
// following the last-child chain to the deepest trailing node.
func ToLine(n Node) int {
	for {
		last := LastChild(n)
		if last == nil {
			return FromLine(n)
		}

		n = last
	}
}

// defFromLine adjusts a definition's start line past its decorators. The
// raw position of a decorated definition may point at the first decorator,
// depending on the source grammar.
func defFromLine(pos *Position, decorators Node) int {
	line := 0
	if pos != nil {
		line = pos.Line
	}

	d, ok := decorators.(*Decorators)
	if !ok || len(d.Nodes) == 0 {
		return line
	}

	if last := ToLine(d.Nodes[len(d.Nodes)-1]); line <= last {
		return last + 1
	}

	return line
}
