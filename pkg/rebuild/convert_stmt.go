package rebuild

import (
	"fmt"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
	"github.com/Sumatoshi-tech/pytree/pkg/rawtree"
)

// expressionStmt unwraps the statement wrapper: assignments and
// augmented assignments become statements of their own, anything else is
// wrapped in an Expr node.
func (r *Rebuilder) expressionStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	inner := raw.NamedChildren("comment")
	if len(inner) != 1 {
		return nil, fmt.Errorf("%w: expression statement with %d children", ErrStructure, len(inner))
	}

	child := inner[0]

	switch child.Kind {
	case "assignment", "augmented_assignment":
		return r.convert(child, nodes.Load)
	}

	value, err := r.expr(child)
	if err != nil {
		return nil, err
	}

	stmt := nodes.NewExpr(pos(raw))
	stmt.PostInit(value)

	return stmt, nil
}

// assignStmt flattens an assignment chain (a = b = value) into one
// Assign with multiple targets. Annotated assignments are from a later
// dialect than the canonical node set covers.
func (r *Rebuilder) assignStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	var (
		targets []nodes.Node
		value   nodes.Node
	)

	for cur := raw; ; {
		if cur.ChildByField("type") != nil {
			return nil, &nodes.NotSupportedError{Capability: "annotated assignment"}
		}

		left, err := requireField(cur, "left")
		if err != nil {
			return nil, err
		}

		target, err := r.convert(left, nodes.Store)
		if err != nil {
			return nil, err
		}

		targets = append(targets, target)

		right, err := requireField(cur, "right")
		if err != nil {
			return nil, err
		}

		if right.Kind == "assignment" {
			cur = right
			continue
		}

		value, err = r.expr(right)
		if err != nil {
			return nil, err
		}

		break
	}

	stmt := nodes.NewAssign(pos(raw))
	stmt.PostInit(targets, value)

	return stmt, nil
}

func (r *Rebuilder) augAssignStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	opTok, err := requireField(raw, "operator")
	if err != nil {
		return nil, err
	}

	op, err := augmentedOp(opTok.Text)
	if err != nil {
		return nil, err
	}

	left, err := requireField(raw, "left")
	if err != nil {
		return nil, err
	}

	target, err := r.convert(left, nodes.Store)
	if err != nil {
		return nil, err
	}

	right, err := requireField(raw, "right")
	if err != nil {
		return nil, err
	}

	value, err := r.expr(right)
	if err != nil {
		return nil, err
	}

	stmt := nodes.NewAugAssign(op, raw.StartLine, raw.StartCol)
	stmt.PostInit(target, value)

	return stmt, nil
}

func (r *Rebuilder) assertStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	inner := raw.NamedChildren("comment")
	if len(inner) == 0 || len(inner) > 2 {
		return nil, fmt.Errorf("%w: assert statement with %d children", ErrStructure, len(inner))
	}

	test, err := r.expr(inner[0])
	if err != nil {
		return nil, err
	}

	fail := nodes.Empty
	if len(inner) == 2 {
		fail, err = r.expr(inner[1])
		if err != nil {
			return nil, err
		}
	}

	stmt := nodes.NewAssert(pos(raw))
	stmt.PostInit(test, fail)

	return stmt, nil
}

func (r *Rebuilder) breakStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	return nodes.NewBreak(pos(raw)), nil
}

func (r *Rebuilder) continueStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	return nodes.NewContinue(pos(raw)), nil
}

func (r *Rebuilder) passStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	return nodes.NewPass(pos(raw)), nil
}

// deleteStmt converts "del a, b": a bare target list flattens into the
// statement's targets instead of forming a tuple.
func (r *Rebuilder) deleteStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	inner := raw.NamedChildren("comment")

	var rawTargets []*rawtree.Node
	if len(inner) == 1 && inner[0].Kind == "expression_list" {
		rawTargets = inner[0].NamedChildren("comment")
	} else {
		rawTargets = inner
	}

	targets, err := r.exprs(rawTargets, nodes.Del)
	if err != nil {
		return nil, err
	}

	stmt := nodes.NewDelete(pos(raw))
	stmt.PostInit(targets)

	return stmt, nil
}

func (r *Rebuilder) returnStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	inner := raw.NamedChildren("comment")

	value := nodes.Node(nodes.Empty)

	if len(inner) > 0 {
		var err error

		value, err = r.expr(inner[0])
		if err != nil {
			return nil, err
		}
	}

	stmt := nodes.NewReturn(pos(raw))
	stmt.PostInit(value)

	return stmt, nil
}

// raiseStmt converts "raise", "raise exc" and "raise exc from cause".
func (r *Rebuilder) raiseStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	exc, cause := nodes.Node(nodes.Empty), nodes.Node(nodes.Empty)
	afterFrom := false

	for _, c := range raw.Children {
		if c.Kind == "from" {
			afterFrom = true
			continue
		}

		if !c.Named || c.Kind == "comment" {
			continue
		}

		converted, err := r.expr(c)
		if err != nil {
			return nil, err
		}

		if afterFrom {
			cause = converted
		} else {
			exc = converted
		}
	}

	stmt := nodes.NewRaise(pos(raw))
	stmt.PostInit(exc, cause)

	return stmt, nil
}

func identifierNames(raw *rawtree.Node) []string {
	var names []string

	for _, c := range raw.NamedChildren("comment") {
		if c.Kind == "identifier" {
			names = append(names, c.Text)
		}
	}

	return names
}

func (r *Rebuilder) globalStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	names := identifierNames(raw)
	r.declareGlobal(names)

	return nodes.NewGlobal(names, raw.StartLine, raw.StartCol), nil
}

func (r *Rebuilder) nonlocalStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	return nodes.NewNonlocal(identifierNames(raw), raw.StartLine, raw.StartCol), nil
}

// printStmt converts the legacy print statement, including the chevron
// destination form and the trailing-comma newline suppression.
func (r *Rebuilder) printStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	dest := nodes.Node(nodes.Empty)

	var values []nodes.Node

	for _, c := range raw.NamedChildren("comment") {
		if c.Kind == "chevron" {
			inner := c.NamedChildren("comment")
			if len(inner) != 1 {
				return nil, fmt.Errorf("%w: chevron with %d children", ErrStructure, len(inner))
			}

			converted, err := r.expr(inner[0])
			if err != nil {
				return nil, err
			}

			dest = converted

			continue
		}

		converted, err := r.expr(c)
		if err != nil {
			return nil, err
		}

		values = append(values, converted)
	}

	stmt := nodes.NewPrint(!trailingComma(raw), raw.StartLine, raw.StartCol)
	stmt.PostInit(dest, values)

	return stmt, nil
}

func importAlias(raw *rawtree.Node) (nodes.Alias, error) {
	switch raw.Kind {
	case "dotted_name", "identifier":
		return nodes.Alias{Name: raw.Text}, nil
	case "aliased_import":
		name, err := requireField(raw, "name")
		if err != nil {
			return nodes.Alias{}, err
		}

		alias, err := requireField(raw, "alias")
		if err != nil {
			return nodes.Alias{}, err
		}

		return nodes.Alias{Name: name.Text, AsName: alias.Text}, nil
	}

	return nodes.Alias{}, fmt.Errorf("%w for import entry %q", ErrNoConversion, raw.Kind)
}

func (r *Rebuilder) importStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	var names []nodes.Alias

	for _, c := range raw.NamedChildren("comment") {
		alias, err := importAlias(c)
		if err != nil {
			return nil, err
		}

		names = append(names, alias)
	}

	return nodes.NewImport(names, raw.StartLine, raw.StartCol), nil
}

// importFromStmt handles both ordinary and __future__ from-imports. The
// relative level is the number of leading dots in the module reference.
func (r *Rebuilder) importFromStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	modname := ""
	level := 0

	if raw.Kind == "future_import_statement" {
		modname = "__future__"
	} else {
		ref, err := requireField(raw, "module_name")
		if err != nil {
			return nil, err
		}

		switch ref.Kind {
		case "relative_import":
			if prefix := ref.FirstOfKind("import_prefix"); prefix != nil {
				level = len(prefix.Text)
			}

			if dotted := ref.FirstOfKind("dotted_name"); dotted != nil {
				modname = dotted.Text
			}
		case "dotted_name", "identifier":
			modname = ref.Text
		default:
			return nil, fmt.Errorf("%w for module reference %q", ErrNoConversion, ref.Kind)
		}
	}

	var names []nodes.Alias

	if raw.FirstOfKind("wildcard_import") != nil {
		names = []nodes.Alias{{Name: "*"}}
	} else {
		for _, c := range raw.ChildrenByField("name") {
			alias, err := importAlias(c)
			if err != nil {
				return nil, err
			}

			names = append(names, alias)
		}
	}

	return nodes.NewImportFrom(modname, names, level, raw.StartLine, raw.StartCol), nil
}

func (r *Rebuilder) ifStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	cond, err := requireField(raw, "condition")
	if err != nil {
		return nil, err
	}

	test, err := r.expr(cond)
	if err != nil {
		return nil, err
	}

	body, err := r.body(raw.ChildByField("consequence"))
	if err != nil {
		return nil, err
	}

	orelse, err := r.elseChain(raw.ChildrenByField("alternative"))
	if err != nil {
		return nil, err
	}

	stmt := nodes.NewIf(pos(raw))
	stmt.PostInit(test, body, orelse)

	return stmt, nil
}

// elseChain folds a sequence of elif/else clauses into the nested
// orelse shape of the canonical tree: each elif becomes an If statement
// holding the remainder.
func (r *Rebuilder) elseChain(alts []*rawtree.Node) ([]nodes.Node, error) {
	if len(alts) == 0 {
		return nil, nil
	}

	head := alts[0]

	if head.Kind == "else_clause" {
		return r.body(head.ChildByField("body"))
	}

	if head.Kind != "elif_clause" {
		return nil, fmt.Errorf("%w for alternative %q", ErrNoConversion, head.Kind)
	}

	cond, err := requireField(head, "condition")
	if err != nil {
		return nil, err
	}

	test, err := r.expr(cond)
	if err != nil {
		return nil, err
	}

	body, err := r.body(head.ChildByField("consequence"))
	if err != nil {
		return nil, err
	}

	orelse, err := r.elseChain(alts[1:])
	if err != nil {
		return nil, err
	}

	stmt := nodes.NewIf(pos(head))
	stmt.PostInit(test, body, orelse)

	return []nodes.Node{stmt}, nil
}

func (r *Rebuilder) elseBody(raw *rawtree.Node) ([]nodes.Node, error) {
	alt := raw.FirstOfKind("else_clause")
	if alt == nil {
		return nil, nil
	}

	return r.body(alt.ChildByField("body"))
}

func (r *Rebuilder) whileStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	cond, err := requireField(raw, "condition")
	if err != nil {
		return nil, err
	}

	test, err := r.expr(cond)
	if err != nil {
		return nil, err
	}

	body, err := r.body(raw.ChildByField("body"))
	if err != nil {
		return nil, err
	}

	orelse, err := r.elseBody(raw)
	if err != nil {
		return nil, err
	}

	stmt := nodes.NewWhile(pos(raw))
	stmt.PostInit(test, body, orelse)

	return stmt, nil
}

func (r *Rebuilder) forStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	left, err := requireField(raw, "left")
	if err != nil {
		return nil, err
	}

	target, err := r.convert(left, nodes.Store)
	if err != nil {
		return nil, err
	}

	right, err := requireField(raw, "right")
	if err != nil {
		return nil, err
	}

	iter, err := r.expr(right)
	if err != nil {
		return nil, err
	}

	body, err := r.body(raw.ChildByField("body"))
	if err != nil {
		return nil, err
	}

	orelse, err := r.elseBody(raw)
	if err != nil {
		return nil, err
	}

	if isAsync(raw) {
		stmt := nodes.NewAsyncFor(pos(raw))
		stmt.PostInit(target, iter, body, orelse)

		return stmt, nil
	}

	stmt := nodes.NewFor(pos(raw))
	stmt.PostInit(target, iter, body, orelse)

	return stmt, nil
}

// tryStmt decomposes the unified try construct into the two canonical
// shapes: a finally clause wraps everything in a TryFinally whose body
// holds the TryExcept when handlers exist.
func (r *Rebuilder) tryStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	body, err := r.body(raw.ChildByField("body"))
	if err != nil {
		return nil, err
	}

	var handlers []nodes.Node

	for _, c := range raw.Children {
		if c.Kind != "except_clause" {
			continue
		}

		handler, err := r.exceptHandler(c)
		if err != nil {
			return nil, err
		}

		handlers = append(handlers, handler)
	}

	orelse, err := r.elseBody(raw)
	if err != nil {
		return nil, err
	}

	var finalbody []nodes.Node

	if fin := raw.FirstOfKind("finally_clause"); fin != nil {
		finalbody, err = r.body(fin.FirstOfKind("block"))
		if err != nil {
			return nil, err
		}
	}

	if finalbody != nil {
		inner := body

		if len(handlers) > 0 {
			te := nodes.NewTryExcept(pos(raw))
			te.PostInit(body, handlers, orelse)
			inner = []nodes.Node{te}
		}

		stmt := nodes.NewTryFinally(pos(raw))
		stmt.PostInit(inner, finalbody)

		return stmt, nil
	}

	if len(handlers) == 0 {
		return nil, fmt.Errorf("%w: try statement without handlers or finally", ErrStructure)
	}

	stmt := nodes.NewTryExcept(pos(raw))
	stmt.PostInit(body, handlers, orelse)

	return stmt, nil
}

func (r *Rebuilder) exceptHandler(raw *rawtree.Node) (nodes.Node, error) {
	typ, name := nodes.Node(nodes.Empty), nodes.Node(nodes.Empty)

	var body []nodes.Node

	exprs := 0

	for _, c := range raw.NamedChildren("comment") {
		if c.Kind == "block" {
			converted, err := r.body(c)
			if err != nil {
				return nil, err
			}

			body = converted

			continue
		}

		// except E as e arrives as one as_pattern child carrying both
		// the exception type and the bound alias.
		if c.Kind == "as_pattern" {
			value, target, err := r.asPattern(c)
			if err != nil {
				return nil, err
			}

			typ, name = value, target
			exprs += 2

			continue
		}

		converted, err := r.convert(c, handlerCtx(exprs))
		if err != nil {
			return nil, err
		}

		if exprs == 0 {
			typ = converted
		} else {
			name = converted
		}

		exprs++
	}

	stmt := nodes.NewExceptHandler(pos(raw))
	stmt.PostInit(typ, name, body)

	return stmt, nil
}

// handlerCtx gives the exception type a read context and the bound alias
// a write context.
func handlerCtx(seen int) nodes.Context {
	if seen == 0 {
		return nodes.Load
	}

	return nodes.Store
}

func (r *Rebuilder) withStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	var items []nodes.Node

	clause := raw.FirstOfKind("with_clause")
	if clause == nil {
		return nil, fmt.Errorf("%w: with statement without clause", ErrStructure)
	}

	for _, c := range clause.NamedChildren("comment") {
		if c.Kind != "with_item" {
			continue
		}

		item, err := r.withItem(c)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	body, err := r.body(raw.ChildByField("body"))
	if err != nil {
		return nil, err
	}

	if isAsync(raw) {
		stmt := nodes.NewAsyncWith(pos(raw))
		stmt.PostInit(items, body)

		return stmt, nil
	}

	stmt := nodes.NewWith(pos(raw))
	stmt.PostInit(items, body)

	return stmt, nil
}

func (r *Rebuilder) withItem(raw *rawtree.Node) (nodes.Node, error) {
	value, err := requireField(raw, "value")
	if err != nil {
		return nil, err
	}

	contextExpr, optional := nodes.Node(nodes.Empty), nodes.Node(nodes.Empty)

	itemPos := pos(value)

	if value.Kind == "as_pattern" {
		inner := value.NamedChildren("comment")
		if len(inner) > 0 {
			itemPos = pos(inner[0])
		}

		contextExpr, optional, err = r.asPattern(value)
	} else {
		contextExpr, err = r.expr(value)
	}

	if err != nil {
		return nil, err
	}

	item := nodes.NewWithItem(itemPos)
	item.PostInit(contextExpr, optional)

	return item, nil
}

// asPattern splits an as_pattern into its converted value expression and
// the bound alias target. The value converts in Load context and the
// target in Store context; the target is Empty when no alias is present.
func (r *Rebuilder) asPattern(raw *rawtree.Node) (nodes.Node, nodes.Node, error) {
	inner := raw.NamedChildren("comment")
	if len(inner) == 0 {
		return nil, nil, fmt.Errorf("%w: empty as pattern", ErrStructure)
	}

	value, err := r.expr(inner[0])
	if err != nil {
		return nil, nil, err
	}

	target := nodes.Node(nodes.Empty)

	if alias := raw.ChildByField("alias"); alias != nil {
		aliasRaw := alias

		if alias.Kind == "as_pattern_target" {
			aliasInner := alias.NamedChildren("comment")
			if len(aliasInner) != 1 {
				return nil, nil, fmt.Errorf("%w: as pattern target with %d children", ErrStructure, len(aliasInner))
			}

			aliasRaw = aliasInner[0]
		}

		target, err = r.convert(aliasRaw, nodes.Store)
		if err != nil {
			return nil, nil, err
		}
	}

	return value, target, nil
}
