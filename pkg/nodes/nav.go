package nodes

// IsStatement reports whether the kind is a statement-level construct. A
// module counts as its own statement.
func IsStatement(k Kind) bool {
	switch k {
	case KindModule, KindFunctionDef, KindAsyncFunctionDef, KindClassDef,
		KindIf, KindFor, KindAsyncFor, KindWhile, KindWith, KindAsyncWith,
		KindTryExcept, KindTryFinally, KindRaise, KindReturn, KindAssert,
		KindAssign, KindAugAssign, KindDelete, KindExpr, KindGlobal,
		KindNonlocal, KindImport, KindImportFrom, KindPass, KindBreak,
		KindContinue, KindPrint:
		return true
	default:
		return false
	}
}

// Statement walks parent links to the nearest enclosing statement,
// starting at n itself. It returns nil for a detached expression.
func Statement(n Node) Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if IsStatement(cur.Kind()) {
			return cur
		}
	}

	return nil
}
