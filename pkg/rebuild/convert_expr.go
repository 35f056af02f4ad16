package rebuild

import (
	"fmt"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
	"github.com/Sumatoshi-tech/pytree/pkg/rawtree"
)

// identifier re-classifies a name by its syntactic context. The
// not-implemented singleton becomes a constant, but only in read
// context: binding or deleting it must stay visible as a name operation.
func (r *Rebuilder) identifier(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error) {
	switch ctx {
	case nodes.Del:
		return nodes.NewDelName(raw.Text, raw.StartLine, raw.StartCol), nil
	case nodes.Store:
		return nodes.NewAssignName(raw.Text, raw.StartLine, raw.StartCol), nil
	}

	if raw.Text == "NotImplemented" {
		return nodes.NewNameConstant(nodes.NotImplemented, raw.StartLine, raw.StartCol), nil
	}

	return nodes.NewName(raw.Text, raw.StartLine, raw.StartCol), nil
}

// singleton converts the true/false/none literal kinds; in write or
// delete context they degrade to name operations like any identifier.
func (r *Rebuilder) singleton(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error) {
	switch ctx {
	case nodes.Del:
		return nodes.NewDelName(raw.Text, raw.StartLine, raw.StartCol), nil
	case nodes.Store:
		return nodes.NewAssignName(raw.Text, raw.StartLine, raw.StartCol), nil
	}

	var value any

	switch raw.Kind {
	case "true":
		value = true
	case "false":
		value = false
	case "none":
		value = nil
	}

	return nodes.NewNameConstant(value, raw.StartLine, raw.StartCol), nil
}

func (r *Rebuilder) ellipsis(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	return nodes.NewEllipsis(pos(raw)), nil
}

func (r *Rebuilder) number(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	value, err := parseNumber(raw.Text)
	if err != nil {
		return nil, err
	}

	return nodes.NewConst(value, raw.Text, raw.StartLine, raw.StartCol), nil
}

func (r *Rebuilder) namedExpr(_ *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	return nil, &nodes.NotSupportedError{Capability: "assignment expression"}
}

func (r *Rebuilder) stringLiteral(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	if raw.FirstOfKind("interpolation") != nil {
		return nil, &nodes.NotSupportedError{Capability: "formatted string literal"}
	}

	value, err := parseString(raw.Text)
	if err != nil {
		return nil, err
	}

	return nodes.NewConst(value, raw.Text, raw.StartLine, raw.StartCol), nil
}

// concatenatedString folds adjacent literals into one constant, keeping
// the bytes/text distinction.
func (r *Rebuilder) concatenatedString(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	var (
		text    string
		data    []byte
		isBytes bool
	)

	for i, part := range raw.NamedChildren("comment") {
		converted, err := r.stringLiteral(part, nodes.Load)
		if err != nil {
			return nil, err
		}

		konst, ok := converted.(*nodes.Const)
		if !ok {
			return nil, fmt.Errorf("%w: non-literal in concatenated string", ErrStructure)
		}

		switch v := konst.Value.(type) {
		case string:
			if isBytes {
				return nil, fmt.Errorf("%w: cannot mix bytes and text literals", ErrStructure)
			}

			text += v
		case []byte:
			if i > 0 && !isBytes {
				return nil, fmt.Errorf("%w: cannot mix bytes and text literals", ErrStructure)
			}

			isBytes = true
			data = append(data, v...)
		}
	}

	if isBytes {
		return nodes.NewConst(data, raw.Text, raw.StartLine, raw.StartCol), nil
	}

	return nodes.NewConst(text, raw.Text, raw.StartLine, raw.StartCol), nil
}

func (r *Rebuilder) attribute(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error) {
	object, err := requireField(raw, "object")
	if err != nil {
		return nil, err
	}

	attr, err := requireField(raw, "attribute")
	if err != nil {
		return nil, err
	}

	expr, err := r.expr(object)
	if err != nil {
		return nil, err
	}

	switch ctx {
	case nodes.Del:
		n := nodes.NewDelAttr(attr.Text, raw.StartLine, raw.StartCol)
		n.PostInit(expr)

		return n, nil
	case nodes.Store:
		n := nodes.NewAssignAttr(attr.Text, raw.StartLine, raw.StartCol)
		n.PostInit(expr)

		return n, nil
	}

	n := nodes.NewAttribute(attr.Text, raw.StartLine, raw.StartCol)
	n.PostInit(expr)

	return n, nil
}

// subscript wraps its index the way the canonical tree expects: a slice
// stays a Slice, a plain expression becomes an Index, and multiple
// subscripts form an ExtSlice of dimensions.
func (r *Rebuilder) subscript(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	value, err := requireField(raw, "value")
	if err != nil {
		return nil, err
	}

	converted, err := r.expr(value)
	if err != nil {
		return nil, err
	}

	subs := raw.ChildrenByField("subscript")
	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: subscript without index", ErrStructure)
	}

	var index nodes.Node

	if len(subs) == 1 {
		index, err = r.dimension(subs[0])
		if err != nil {
			return nil, err
		}
	} else {
		dims := make([]nodes.Node, 0, len(subs))

		for _, sub := range subs {
			dim, err := r.dimension(sub)
			if err != nil {
				return nil, err
			}

			dims = append(dims, dim)
		}

		ext := nodes.NewExtSlice(pos(raw))
		ext.PostInit(dims)
		index = ext
	}

	n := nodes.NewSubscript(pos(raw))
	n.PostInit(converted, index)

	return n, nil
}

func (r *Rebuilder) dimension(raw *rawtree.Node) (nodes.Node, error) {
	if raw.Kind == "slice" {
		return r.sliceExpr(raw, nodes.Load)
	}

	value, err := r.expr(raw)
	if err != nil {
		return nil, err
	}

	idx := nodes.NewIndex(pos(raw))
	idx.PostInit(value)

	return idx, nil
}

// sliceExpr assigns the expressions between the colon tokens to the
// lower/upper/step slots.
func (r *Rebuilder) sliceExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	parts := [3]nodes.Node{nodes.Empty, nodes.Empty, nodes.Empty}
	slot := 0

	for _, c := range raw.Children {
		if c.Kind == ":" {
			slot++
			continue
		}

		if !c.Named || c.Kind == "comment" {
			continue
		}

		if slot > 2 {
			return nil, fmt.Errorf("%w: slice with too many sections", ErrStructure)
		}

		converted, err := r.expr(c)
		if err != nil {
			return nil, err
		}

		parts[slot] = converted
	}

	n := nodes.NewSlice(pos(raw))
	n.PostInit(parts[0], parts[1], parts[2])

	return n, nil
}

// call converts a call site into the uniform shape: splat arguments
// become starred entries in the positional list, mapping splats become
// nameless keyword entries. Raw trees carrying the legacy separate
// starargs/kwargs fields are synthesized into the same entries.
func (r *Rebuilder) call(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	fn, err := requireField(raw, "function")
	if err != nil {
		return nil, err
	}

	fnNode, err := r.expr(fn)
	if err != nil {
		return nil, err
	}

	var args, keywords []nodes.Node

	appendStar := func(c *rawtree.Node, inner *rawtree.Node) error {
		value, err := r.expr(inner)
		if err != nil {
			return err
		}

		star := nodes.NewStarred(nodes.Load, c.StartLine, c.StartCol)
		star.PostInit(value)
		args = append(args, star)

		return nil
	}

	appendSplat := func(c *rawtree.Node, inner *rawtree.Node) error {
		value, err := r.expr(inner)
		if err != nil {
			return err
		}

		kw := nodes.NewKeyword("", c.StartLine, c.StartCol)
		kw.PostInit(value)
		keywords = append(keywords, kw)

		return nil
	}

	arguments := raw.ChildByField("arguments")
	if arguments == nil {
		return nil, fmt.Errorf("%w: call without arguments field", ErrStructure)
	}

	argChildren := arguments.NamedChildren("comment")
	if arguments.Kind == "generator_expression" {
		// A sole generator argument appears without an argument list.
		argChildren = []*rawtree.Node{arguments}
	}

	for _, c := range argChildren {
		switch {
		case c.Field == "starargs":
			if err := appendStar(c, c); err != nil {
				return nil, err
			}
		case c.Field == "kwargs":
			if err := appendSplat(c, c); err != nil {
				return nil, err
			}
		case c.Kind == "list_splat":
			if err := appendStar(c, splatChild(c)); err != nil {
				return nil, err
			}
		case c.Kind == "dictionary_splat":
			if err := appendSplat(c, splatChild(c)); err != nil {
				return nil, err
			}
		case c.Kind == "keyword_argument":
			kw, err := r.keywordArgument(c)
			if err != nil {
				return nil, err
			}

			keywords = append(keywords, kw)
		default:
			converted, err := r.expr(c)
			if err != nil {
				return nil, err
			}

			args = append(args, converted)
		}
	}

	n := nodes.NewCall(pos(raw))
	n.PostInit(fnNode, args, keywords)

	return n, nil
}

// splatChild unwraps a splat node to the expression it spreads; a splat
// used as a legacy field has no wrapper to unwrap.
func splatChild(raw *rawtree.Node) *rawtree.Node {
	inner := raw.NamedChildren("comment")
	if len(inner) == 1 {
		return inner[0]
	}

	return raw
}

func (r *Rebuilder) keywordArgument(raw *rawtree.Node) (nodes.Node, error) {
	name, err := requireField(raw, "name")
	if err != nil {
		return nil, err
	}

	value, err := requireField(raw, "value")
	if err != nil {
		return nil, err
	}

	converted, err := r.expr(value)
	if err != nil {
		return nil, err
	}

	kw := nodes.NewKeyword(name.Text, raw.StartLine, raw.StartCol)
	kw.PostInit(converted)

	return kw, nil
}

func (r *Rebuilder) binaryExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	opTok, err := requireField(raw, "operator")
	if err != nil {
		return nil, err
	}

	op, err := binaryOp(opTok.Text)
	if err != nil {
		return nil, err
	}

	left, right, err := r.leftRight(raw)
	if err != nil {
		return nil, err
	}

	n := nodes.NewBinOp(op, raw.StartLine, raw.StartCol)
	n.PostInit(left, right)

	return n, nil
}

func (r *Rebuilder) booleanExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	opTok, err := requireField(raw, "operator")
	if err != nil {
		return nil, err
	}

	op, err := boolOp(opTok.Text)
	if err != nil {
		return nil, err
	}

	left, right, err := r.leftRight(raw)
	if err != nil {
		return nil, err
	}

	// Chained "a and b and c" nests in the raw tree; the canonical node
	// holds a flat value list, so same-operator operands are folded in.
	values := []nodes.Node{left}
	if inner, ok := right.(*nodes.BoolOp); ok && inner.Op == op {
		values = append(values, inner.Values...)
	} else {
		values = append(values, right)
	}

	n := nodes.NewBoolOp(op, raw.StartLine, raw.StartCol)
	n.PostInit(values)

	return n, nil
}

func (r *Rebuilder) leftRight(raw *rawtree.Node) (left, right nodes.Node, err error) {
	leftRaw, err := requireField(raw, "left")
	if err != nil {
		return nil, nil, err
	}

	rightRaw, err := requireField(raw, "right")
	if err != nil {
		return nil, nil, err
	}

	left, err = r.expr(leftRaw)
	if err != nil {
		return nil, nil, err
	}

	right, err = r.expr(rightRaw)
	if err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

func (r *Rebuilder) notExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	arg, err := requireField(raw, "argument")
	if err != nil {
		return nil, err
	}

	operand, err := r.expr(arg)
	if err != nil {
		return nil, err
	}

	n := nodes.NewUnaryOp("not", raw.StartLine, raw.StartCol)
	n.PostInit(operand)

	return n, nil
}

func (r *Rebuilder) unaryExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	opTok, err := requireField(raw, "operator")
	if err != nil {
		return nil, err
	}

	op, err := unaryOp(opTok.Text)
	if err != nil {
		return nil, err
	}

	arg, err := requireField(raw, "argument")
	if err != nil {
		return nil, err
	}

	operand, err := r.expr(arg)
	if err != nil {
		return nil, err
	}

	n := nodes.NewUnaryOp(op, raw.StartLine, raw.StartCol)
	n.PostInit(operand)

	return n, nil
}

func (r *Rebuilder) comparisonExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	var (
		tokens   []string
		operands []*rawtree.Node
	)

	for _, c := range raw.Children {
		if c.Field == "operators" {
			tokens = append(tokens, c.Text)
			continue
		}

		if c.Named && c.Kind != "comment" {
			operands = append(operands, c)
		}
	}

	ops, err := pairCompareTokens(tokens)
	if err != nil {
		return nil, err
	}

	if len(operands) < 2 || len(ops) != len(operands)-1 {
		return nil, fmt.Errorf("%w: comparison with %d operands and %d operators",
			ErrStructure, len(operands), len(ops))
	}

	left, err := r.expr(operands[0])
	if err != nil {
		return nil, err
	}

	comparators, err := r.exprs(operands[1:], nodes.Load)
	if err != nil {
		return nil, err
	}

	n := nodes.NewCompare(ops, raw.StartLine, raw.StartCol)
	n.PostInit(left, comparators)

	return n, nil
}

// conditionalExpr converts "a if b else c"; the raw children arrive in
// source order: consequence, condition, alternative.
func (r *Rebuilder) conditionalExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	inner := raw.NamedChildren("comment")
	if len(inner) != 3 {
		return nil, fmt.Errorf("%w: conditional expression with %d children", ErrStructure, len(inner))
	}

	body, err := r.expr(inner[0])
	if err != nil {
		return nil, err
	}

	test, err := r.expr(inner[1])
	if err != nil {
		return nil, err
	}

	orelse, err := r.expr(inner[2])
	if err != nil {
		return nil, err
	}

	n := nodes.NewIfExp(pos(raw))
	n.PostInit(test, body, orelse)

	return n, nil
}

func (r *Rebuilder) parenthesized(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error) {
	inner := raw.NamedChildren("comment")
	if len(inner) != 1 {
		return nil, fmt.Errorf("%w: parenthesized expression with %d children", ErrStructure, len(inner))
	}

	return r.convert(inner[0], ctx)
}

func (r *Rebuilder) awaitExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	inner := raw.NamedChildren("comment")
	if len(inner) != 1 {
		return nil, fmt.Errorf("%w: await with %d children", ErrStructure, len(inner))
	}

	value, err := r.expr(inner[0])
	if err != nil {
		return nil, err
	}

	n := nodes.NewAwait(pos(raw))
	n.PostInit(value)

	return n, nil
}

func (r *Rebuilder) yieldExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	value, err := r.exprOrEmpty(firstNamed(raw))
	if err != nil {
		return nil, err
	}

	if raw.FirstOfKind("from") != nil {
		n := nodes.NewYieldFrom(pos(raw))
		n.PostInit(value)

		return n, nil
	}

	n := nodes.NewYield(pos(raw))
	n.PostInit(value)

	return n, nil
}

func firstNamed(raw *rawtree.Node) *rawtree.Node {
	inner := raw.NamedChildren("comment")
	if len(inner) == 0 {
		return nil
	}

	return inner[0]
}

func (r *Rebuilder) tupleExpr(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error) {
	elts, err := r.exprs(raw.NamedChildren("comment"), ctx)
	if err != nil {
		return nil, err
	}

	n := nodes.NewTuple(pos(raw))
	n.PostInit(elts)

	return n, nil
}

func (r *Rebuilder) listExpr(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error) {
	elts, err := r.exprs(raw.NamedChildren("comment"), ctx)
	if err != nil {
		return nil, err
	}

	n := nodes.NewList(pos(raw))
	n.PostInit(elts)

	return n, nil
}

func (r *Rebuilder) setExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	elts, err := r.exprs(raw.NamedChildren("comment"), nodes.Load)
	if err != nil {
		return nil, err
	}

	n := nodes.NewSet(pos(raw))
	n.PostInit(elts)

	return n, nil
}

// dictExpr converts entries in order; a "**mapping" entry contributes a
// DictUnpack marker key paired with the spread expression.
func (r *Rebuilder) dictExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	var keys, values []nodes.Node

	for _, c := range raw.NamedChildren("comment") {
		switch c.Kind {
		case "pair":
			keyRaw, err := requireField(c, "key")
			if err != nil {
				return nil, err
			}

			valueRaw, err := requireField(c, "value")
			if err != nil {
				return nil, err
			}

			key, err := r.expr(keyRaw)
			if err != nil {
				return nil, err
			}

			value, err := r.expr(valueRaw)
			if err != nil {
				return nil, err
			}

			keys = append(keys, key)
			values = append(values, value)
		case "dictionary_splat":
			value, err := r.expr(splatChild(c))
			if err != nil {
				return nil, err
			}

			keys = append(keys, nodes.NewDictUnpack(pos(c)))
			values = append(values, value)
		default:
			return nil, fmt.Errorf("%w for dictionary entry %q", ErrNoConversion, c.Kind)
		}
	}

	n := nodes.NewDict(pos(raw))
	n.PostInit(keys, values)

	return n, nil
}

func (r *Rebuilder) starred(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error) {
	inner := raw.NamedChildren("comment")
	if len(inner) != 1 {
		return nil, fmt.Errorf("%w: splat with %d children", ErrStructure, len(inner))
	}

	value, err := r.convert(inner[0], ctx)
	if err != nil {
		return nil, err
	}

	n := nodes.NewStarred(ctx, raw.StartLine, raw.StartCol)
	n.PostInit(value)

	return n, nil
}
