package rebuild

import (
	"fmt"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
	"github.com/Sumatoshi-tech/pytree/pkg/rawtree"
)

func (r *Rebuilder) functionDefStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	return r.functionDef(raw, nodes.Empty)
}

func (r *Rebuilder) classDefStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	return r.classDef(raw, nodes.Empty)
}

// decoratedStmt converts the decorator list and hands it to the wrapped
// definition; the canonical tree hangs decorators off the definition
// node itself.
func (r *Rebuilder) decoratedStmt(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	var exprs []nodes.Node

	var first *rawtree.Node

	for _, c := range raw.Children {
		if c.Kind != "decorator" {
			continue
		}

		if first == nil {
			first = c
		}

		inner := firstNamed(c)
		if inner == nil {
			return nil, fmt.Errorf("%w: decorator without expression", ErrStructure)
		}

		converted, err := r.expr(inner)
		if err != nil {
			return nil, err
		}

		exprs = append(exprs, converted)
	}

	if first == nil {
		return nil, fmt.Errorf("%w: decorated definition without decorators", ErrStructure)
	}

	decorators := nodes.NewDecorators(first.StartLine, first.StartCol)
	decorators.PostInit(exprs)

	def, err := requireField(raw, "definition")
	if err != nil {
		return nil, err
	}

	switch def.Kind {
	case "function_definition":
		return r.functionDef(def, decorators)
	case "class_definition":
		return r.classDef(def, decorators)
	}

	return nil, fmt.Errorf("%w for decorated %q", ErrNoConversion, def.Kind)
}

func (r *Rebuilder) functionDef(raw *rawtree.Node, decorators nodes.Node) (nodes.Node, error) {
	name, err := requireField(raw, "name")
	if err != nil {
		return nil, err
	}

	params, err := requireField(raw, "parameters")
	if err != nil {
		return nil, err
	}

	args, err := r.arguments(params)
	if err != nil {
		return nil, err
	}

	returns, err := r.typeExpr(raw.ChildByField("return_type"))
	if err != nil {
		return nil, err
	}

	r.pushFunction()
	body, err := r.body(raw.ChildByField("body"))
	r.popFunction()

	if err != nil {
		return nil, err
	}

	doc, body := docstring(body)

	if isAsync(raw) {
		def := nodes.NewAsyncFunctionDef(name.Text, doc, raw.StartLine, raw.StartCol)
		def.PostInit(decorators, args, returns, body)

		return def, nil
	}

	def := nodes.NewFunctionDef(name.Text, doc, raw.StartLine, raw.StartCol)
	def.PostInit(decorators, args, returns, body)

	return def, nil
}

func (r *Rebuilder) classDef(raw *rawtree.Node, decorators nodes.Node) (nodes.Node, error) {
	name, err := requireField(raw, "name")
	if err != nil {
		return nil, err
	}

	var bases, keywords []nodes.Node

	if supers := raw.ChildByField("superclasses"); supers != nil {
		for _, c := range supers.NamedChildren("comment") {
			switch c.Kind {
			case "keyword_argument":
				kw, err := r.keywordArgument(c)
				if err != nil {
					return nil, err
				}

				keywords = append(keywords, kw)
			case "dictionary_splat":
				value, err := r.expr(splatChild(c))
				if err != nil {
					return nil, err
				}

				kw := nodes.NewKeyword("", c.StartLine, c.StartCol)
				kw.PostInit(value)
				keywords = append(keywords, kw)
			case "list_splat":
				value, err := r.expr(splatChild(c))
				if err != nil {
					return nil, err
				}

				star := nodes.NewStarred(nodes.Load, c.StartLine, c.StartCol)
				star.PostInit(value)
				bases = append(bases, star)
			default:
				base, err := r.expr(c)
				if err != nil {
					return nil, err
				}

				bases = append(bases, base)
			}
		}
	}

	body, err := r.body(raw.ChildByField("body"))
	if err != nil {
		return nil, err
	}

	doc, body := docstring(body)

	def := nodes.NewClassDef(name.Text, doc, raw.StartLine, raw.StartCol)
	def.PostInit(decorators, bases, keywords, body)

	return def, nil
}

func (r *Rebuilder) lambdaExpr(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	args := nodes.NewArguments()

	if params := raw.ChildByField("parameters"); params != nil {
		built, err := r.arguments(params)
		if err != nil {
			return nil, err
		}

		args = built
	} else {
		args.PostInit(nil, nil, nodes.Empty, nil, nodes.Empty)
	}

	bodyRaw, err := requireField(raw, "body")
	if err != nil {
		return nil, err
	}

	body, err := r.expr(bodyRaw)
	if err != nil {
		return nil, err
	}

	l := nodes.NewLambda(pos(raw))
	l.PostInit(args, body)

	return l, nil
}

// paramEntry pairs a raw parameter with its attached default, before
// defaults are re-derived through right alignment.
type paramEntry struct {
	raw *rawtree.Node
	def *rawtree.Node
}

// arguments assembles the canonical Arguments node from a raw parameter
// list. A "/" separator shifts everything before it into the
// positional-only group; a bare "*" (or a named variadic) starts the
// keyword-only group.
func (r *Rebuilder) arguments(raw *rawtree.Node) (*nodes.Arguments, error) {
	var (
		posOnly, positional, kwOnly []paramEntry
		vararg, kwarg               nodes.Node = nodes.Empty, nodes.Empty
	)

	seenStar := false

	current := func() *[]paramEntry {
		if seenStar {
			return &kwOnly
		}

		return &positional
	}

	for _, c := range raw.Children {
		switch c.Kind {
		case "comment":
		case "positional_separator":
			posOnly = positional
			positional = nil
		case "keyword_separator":
			seenStar = true
		case "list_splat_pattern":
			seenStar = true

			if inner := firstNamed(c); inner != nil {
				param, err := r.variadicParam(c, nodes.Empty)
				if err != nil {
					return nil, err
				}

				vararg = param
			}
		case "dictionary_splat_pattern":
			param, err := r.variadicParam(c, nodes.Empty)
			if err != nil {
				return nil, err
			}

			kwarg = param
		case "typed_parameter":
			inner := firstNamed(c)
			if inner == nil {
				return nil, fmt.Errorf("%w: typed parameter without target", ErrStructure)
			}

			annotation, err := r.typeExpr(c.ChildByField("type"))
			if err != nil {
				return nil, err
			}

			switch inner.Kind {
			case "list_splat_pattern":
				seenStar = true

				param, err := r.variadicParam(inner, annotation)
				if err != nil {
					return nil, err
				}

				vararg = param
			case "dictionary_splat_pattern":
				param, err := r.variadicParam(inner, annotation)
				if err != nil {
					return nil, err
				}

				kwarg = param
			default:
				group := current()
				*group = append(*group, paramEntry{raw: c})
			}
		case "identifier", "default_parameter", "typed_default_parameter", "tuple_pattern":
			group := current()
			*group = append(*group, paramEntry{raw: c, def: c.ChildByField("value")})
		default:
			if c.Named {
				return nil, fmt.Errorf("%w for parameter %q", ErrNoConversion, c.Kind)
			}
		}
	}

	posOnlyParams, err := r.buildParams(posOnly)
	if err != nil {
		return nil, err
	}

	positionalParams, err := r.buildParams(positional)
	if err != nil {
		return nil, err
	}

	kwOnlyParams, err := r.buildParams(kwOnly)
	if err != nil {
		return nil, err
	}

	args := nodes.NewArguments()
	args.PostInit(posOnlyParams, positionalParams, vararg, kwOnlyParams, kwarg)

	return args, nil
}

// buildParams converts one parameter group. Defaults are re-paired with
// their parameters by right-aligning the default list against the full
// group; a longer default list than parameter list is a structural
// error, never a silent truncation.
func (r *Rebuilder) buildParams(group []paramEntry) ([]nodes.Node, error) {
	var defaults []nodes.Node

	for _, e := range group {
		if e.def == nil {
			continue
		}

		converted, err := r.expr(e.def)
		if err != nil {
			return nil, err
		}

		defaults = append(defaults, converted)
	}

	aligned, err := alignDefaults(len(group), defaults)
	if err != nil {
		return nil, err
	}

	var out []nodes.Node

	for i, e := range group {
		params, err := r.oneParam(e.raw, aligned[i])
		if err != nil {
			return nil, err
		}

		out = append(out, params...)
	}

	return out, nil
}

// alignDefaults pads a possibly-shorter default list from the left with
// Empty so that every parameter slot gets a value.
func alignDefaults(count int, defaults []nodes.Node) ([]nodes.Node, error) {
	if len(defaults) > count {
		return nil, fmt.Errorf("%w: %d defaults for %d parameters", ErrStructure, len(defaults), count)
	}

	out := make([]nodes.Node, count)
	pad := count - len(defaults)

	for i := range out {
		if i < pad {
			out[i] = nodes.Empty
		} else {
			out[i] = defaults[i-pad]
		}
	}

	return out, nil
}

// oneParam converts a single raw parameter to Parameter nodes. A legacy
// nested tuple parameter is flattened into one Parameter per bound name,
// all sharing the default.
func (r *Rebuilder) oneParam(raw *rawtree.Node, def nodes.Node) ([]nodes.Node, error) {
	switch raw.Kind {
	case "identifier":
		return []nodes.Node{newParam(raw, raw.Text, def, nodes.Empty)}, nil
	case "typed_parameter":
		inner := firstNamed(raw)
		if inner == nil || inner.Kind != "identifier" {
			return nil, fmt.Errorf("%w: typed parameter without name", ErrStructure)
		}

		annotation, err := r.typeExpr(raw.ChildByField("type"))
		if err != nil {
			return nil, err
		}

		return []nodes.Node{newParam(raw, inner.Text, def, annotation)}, nil
	case "default_parameter", "typed_default_parameter":
		name, err := requireField(raw, "name")
		if err != nil {
			return nil, err
		}

		if name.Kind == "tuple_pattern" {
			return r.oneParam(name, def)
		}

		annotation, err := r.typeExpr(raw.ChildByField("type"))
		if err != nil {
			return nil, err
		}

		return []nodes.Node{newParam(raw, name.Text, def, annotation)}, nil
	case "tuple_pattern":
		var out []nodes.Node

		for _, c := range raw.NamedChildren("comment") {
			flattened, err := r.oneParam(c, def)
			if err != nil {
				return nil, err
			}

			out = append(out, flattened...)
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w for parameter %q", ErrNoConversion, raw.Kind)
}

// variadicParam builds the Parameter for a "*args" or "**kwargs" splat.
func (r *Rebuilder) variadicParam(raw *rawtree.Node, annotation nodes.Node) (nodes.Node, error) {
	inner := firstNamed(raw)
	if inner == nil || inner.Kind != "identifier" {
		return nil, fmt.Errorf("%w: variadic parameter without name", ErrStructure)
	}

	return newParam(raw, inner.Text, nodes.Empty, annotation), nil
}

func newParam(raw *rawtree.Node, name string, def, annotation nodes.Node) nodes.Node {
	param := nodes.NewParameter(name, raw.StartLine, raw.StartCol)
	param.PostInit(def, annotation)

	return param
}

// generators converts the trailing clause list of a comprehension: each
// for-in clause opens a generator, the if clauses that follow attach to
// it as filters.
func (r *Rebuilder) generators(raw *rawtree.Node) ([]nodes.Node, error) {
	type genParts struct {
		clause *rawtree.Node
		ifs    []*rawtree.Node
	}

	var parts []*genParts

	for _, c := range raw.NamedChildren("comment") {
		switch c.Kind {
		case "for_in_clause":
			parts = append(parts, &genParts{clause: c})
		case "if_clause":
			if len(parts) == 0 {
				return nil, fmt.Errorf("%w: filter clause before any generator", ErrStructure)
			}

			last := parts[len(parts)-1]
			last.ifs = append(last.ifs, c)
		}
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: comprehension without generators", ErrStructure)
	}

	out := make([]nodes.Node, 0, len(parts))

	for _, part := range parts {
		left, err := requireField(part.clause, "left")
		if err != nil {
			return nil, err
		}

		target, err := r.convert(left, nodes.Store)
		if err != nil {
			return nil, err
		}

		right, err := requireField(part.clause, "right")
		if err != nil {
			return nil, err
		}

		iter, err := r.expr(right)
		if err != nil {
			return nil, err
		}

		var ifs []nodes.Node

		for _, ifClause := range part.ifs {
			cond := firstNamed(ifClause)
			if cond == nil {
				return nil, fmt.Errorf("%w: filter clause without condition", ErrStructure)
			}

			converted, err := r.expr(cond)
			if err != nil {
				return nil, err
			}

			ifs = append(ifs, converted)
		}

		gen := nodes.NewComprehension(isAsync(part.clause))
		gen.PostInit(target, iter, ifs)
		out = append(out, gen)
	}

	return out, nil
}

func (r *Rebuilder) listComp(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	elt, gens, err := r.comprehensionParts(raw)
	if err != nil {
		return nil, err
	}

	n := nodes.NewListComp(pos(raw))
	n.PostInit(elt, gens)

	return n, nil
}

func (r *Rebuilder) setComp(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	elt, gens, err := r.comprehensionParts(raw)
	if err != nil {
		return nil, err
	}

	n := nodes.NewSetComp(pos(raw))
	n.PostInit(elt, gens)

	return n, nil
}

func (r *Rebuilder) generatorExp(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	elt, gens, err := r.comprehensionParts(raw)
	if err != nil {
		return nil, err
	}

	n := nodes.NewGeneratorExp(pos(raw))
	n.PostInit(elt, gens)

	return n, nil
}

func (r *Rebuilder) comprehensionParts(raw *rawtree.Node) (nodes.Node, []nodes.Node, error) {
	body, err := requireField(raw, "body")
	if err != nil {
		return nil, nil, err
	}

	elt, err := r.expr(body)
	if err != nil {
		return nil, nil, err
	}

	gens, err := r.generators(raw)
	if err != nil {
		return nil, nil, err
	}

	return elt, gens, nil
}

// dictComp keys ride in a pair node under the body field.
func (r *Rebuilder) dictComp(raw *rawtree.Node, _ nodes.Context) (nodes.Node, error) {
	body, err := requireField(raw, "body")
	if err != nil {
		return nil, err
	}

	keyRaw, err := requireField(body, "key")
	if err != nil {
		return nil, err
	}

	valueRaw, err := requireField(body, "value")
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

	gens, err := r.generators(raw)
	if err != nil {
		return nil, err
	}

	n := nodes.NewDictComp(pos(raw))
	n.PostInit(key, value, gens)

	return n, nil
}
