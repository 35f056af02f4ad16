package nodes

// BlockRange reports the inclusive first/last source line of the block the
// queried line falls into within n. Simple statements report their own
// span; compound statements partition their lines between the header, the
// body and the alternate branch.
func BlockRange(n Node, line int) (int, int) {
	switch t := n.(type) {
	case *Module:
		return FromLine(t), ToLine(t)
	case *FunctionDef, *AsyncFunctionDef, *ClassDef:
		return FromLine(n), ToLine(n)
	case *If:
		if line == FromLine(t.Body[0]) {
			return line, line
		}

		if line <= ToLine(t.Body[len(t.Body)-1]) {
			return line, ToLine(t.Body[len(t.Body)-1])
		}

		return elsedBlockRange(n, line, t.OrElse, FromLine(t.Body[0])-1)
	case *While:
		return elsedBlockRange(n, line, t.OrElse, 0)
	case *For:
		return elsedBlockRange(n, line, t.OrElse, 0)
	case *AsyncFor:
		return elsedBlockRange(n, line, t.OrElse, 0)
	case *TryExcept:
		return tryExceptBlockRange(t, line)
	case *TryFinally:
		return tryFinallyBlockRange(t, line)
	default:
		return line, ToLine(n)
	}
}

// elsedBlockRange is the shared body/alternate-branch partition rule: the
// header line is its own block, lines before the alternate branch end just
// before it begins, lines inside it extend to its last line. last, when
// positive, overrides the fallback end of a branchless block.
func elsedBlockRange(n Node, line int, orelse []Node, last int) (int, int) {
	if line == FromLine(n) {
		return line, line
	}

	if len(orelse) > 0 {
		if line >= FromLine(orelse[0]) {
			return line, ToLine(orelse[len(orelse)-1])
		}

		return line, FromLine(orelse[0]) - 1
	}

	if last > 0 {
		return line, last
	}

	return line, ToLine(n)
}

func tryExceptBlockRange(t *TryExcept, line int) (int, int) {
	last := 0

	for _, h := range t.Handlers {
		handler, ok := h.(*ExceptHandler)
		if !ok {
			continue
		}

		if handler.Type != Empty && line == FromLine(handler.Type) {
			return line, line
		}

		if len(handler.Body) > 0 &&
			FromLine(handler.Body[0]) <= line && line <= ToLine(handler.Body[len(handler.Body)-1]) {
			return line, ToLine(handler.Body[len(handler.Body)-1])
		}

		if last == 0 && len(handler.Body) > 0 {
			last = FromLine(handler.Body[0]) - 1
		}
	}

	return elsedBlockRange(t, line, t.OrElse, last)
}

func tryFinallyBlockRange(t *TryFinally, line int) (int, int) {
	// The collapsed "try/except/finally" form nests a TryExcept as the
	// whole body, sharing the try line.
	if len(t.Body) == 1 {
		if inner, ok := t.Body[0].(*TryExcept); ok &&
			FromLine(inner) == FromLine(t) && line > FromLine(t) && line <= ToLine(inner) {
			return BlockRange(inner, line)
		}
	}

	return elsedBlockRange(t, line, t.FinalBody, 0)
}
