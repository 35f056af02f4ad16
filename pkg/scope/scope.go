// Package scope resolves lexical scoping questions over parent links of a
// built tree: which enclosing node introduces a given node's scope, which
// frame holds it, and which statement binds it.
//
// Resolution is read-only and never mutates the tree. The hairy part is a
// set of positional special cases evaluated before the plain parent walk:
// parameter defaults and annotations, return annotations and the first
// iterable of a comprehension all evaluate in the scope enclosing the
// construct that syntactically contains them.
package scope

import "github.com/Sumatoshi-tech/pytree/pkg/nodes"

// Of reports the scope of n under the default (modern) dialect. A node
// that is itself scope-introducing is its own scope. It returns nil for a
// detached node whose scope cannot be determined.
func Of(n nodes.Node) nodes.Node { return OfDialect(n, nodes.Py3) }

// Introduces reports whether a node kind opens a lexical scope of its
// own under the default dialect.
func Introduces(k nodes.Kind) bool {
	switch k {
	case nodes.KindModule, nodes.KindFunctionDef, nodes.KindAsyncFunctionDef,
		nodes.KindClassDef, nodes.KindLambda, nodes.KindGeneratorExp,
		nodes.KindListComp, nodes.KindSetComp, nodes.KindDictComp:
		return true
	}

	return false
}

// OfDialect is Of with explicit dialect rules: under the legacy dialect
// list comprehensions do not introduce a scope and leak into their
// enclosing one.
func OfDialect(n nodes.Node, d nodes.Dialect) nodes.Node {
	if n == nil {
		return nil
	}

	switch n.(type) {
	case *nodes.Module, *nodes.FunctionDef, *nodes.AsyncFunctionDef,
		*nodes.ClassDef, *nodes.Lambda, *nodes.GeneratorExp,
		*nodes.DictComp, *nodes.SetComp:
		return n
	case *nodes.ListComp:
		if d == nodes.Py3 {
			return n
		}
	case *nodes.Decorators:
		// Decorator expressions execute in the scope surrounding the
		// decorated definition.
		if def := n.Parent(); def != nil {
			return OfDialect(def.Parent(), d)
		}

		return nil
	}

	parent := n.Parent()
	if parent == nil {
		return nil
	}

	if s := byParent(parent, n, d); s != nil {
		return s
	}

	return OfDialect(parent, d)
}

// byParent applies the positional special cases keyed on the parent's
// kind. It returns nil when no special case applies.
func byParent(parent, n nodes.Node, d nodes.Dialect) nodes.Node {
	switch p := parent.(type) {
	case *nodes.Parameter:
		if n == p.Default || n == p.Annotation {
			return pastOwningFunction(p, d)
		}
	case *nodes.Arguments:
		// Raw trees may hang defaults and annotations directly off the
		// parameter list rather than wrapping them in Parameters.
		for _, held := range append(p.PositionalAndKeyword(), p.KwOnlyArgs...) {
			param, ok := held.(*nodes.Parameter)
			if !ok {
				continue
			}

			if n == param.Default || n == param.Annotation {
				return enclosingOf(p, d)
			}
		}

		for _, held := range []nodes.Node{p.Vararg, p.Kwarg} {
			if param, ok := held.(*nodes.Parameter); ok && n == param.Annotation {
				return enclosingOf(p, d)
			}
		}
	case *nodes.FunctionDef:
		if n == p.Returns {
			return OfDialect(p.Parent(), d)
		}
	case *nodes.AsyncFunctionDef:
		if n == p.Returns {
			return OfDialect(p.Parent(), d)
		}
	case *nodes.Comprehension:
		return byComprehension(p, n, d)
	}

	return nil
}

// byComprehension scopes a node held by a generator clause. The first
// clause's iterable is evaluated eagerly in the scope enclosing the whole
// comprehension; everything else belongs to the comprehension's scope,
// except that legacy-dialect list comprehensions leak outward entirely.
func byComprehension(clause *nodes.Comprehension, n nodes.Node, d nodes.Dialect) nodes.Node {
	owner := clause.Parent()
	if owner == nil {
		return nil
	}

	if first := firstGenerator(owner); first == clause && n == clause.Iter {
		return OfDialect(owner.Parent(), d)
	}

	if d == nodes.Py2 {
		if _, ok := owner.(*nodes.ListComp); ok {
			return OfDialect(owner.Parent(), d)
		}
	}

	return OfDialect(owner, d)
}

func firstGenerator(owner nodes.Node) nodes.Node {
	var gens []nodes.Node

	switch t := owner.(type) {
	case *nodes.ListComp:
		gens = t.Generators
	case *nodes.SetComp:
		gens = t.Generators
	case *nodes.GeneratorExp:
		gens = t.Generators
	case *nodes.DictComp:
		gens = t.Generators
	}

	if len(gens) == 0 {
		return nil
	}

	return gens[0]
}

// pastOwningFunction resolves a parameter's default or annotation: skip
// the Arguments node and the function that owns it.
func pastOwningFunction(param *nodes.Parameter, d nodes.Dialect) nodes.Node {
	args := param.Parent()
	if args == nil {
		return nil
	}

	arguments, ok := args.(*nodes.Arguments)
	if !ok {
		return nil
	}

	return enclosingOf(arguments, d)
}

func enclosingOf(args *nodes.Arguments, d nodes.Dialect) nodes.Node {
	fn := args.Parent()
	if fn == nil {
		return nil
	}

	return OfDialect(fn.Parent(), d)
}

// Frame reports the nearest enclosing frame of n: a module, function or
// class definition, or lambda, counting n itself.
func Frame(n nodes.Node) nodes.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		switch cur.(type) {
		case *nodes.Module, *nodes.FunctionDef, *nodes.AsyncFunctionDef,
			*nodes.ClassDef, *nodes.Lambda:
			return cur
		}
	}

	return nil
}

// AssignType reports the node that introduces n as a name binding: the
// assignment, loop, with statement or except handler that gives the name
// its value. Binding targets delegate to their parent; any other node is
// its own assign type.
func AssignType(n nodes.Node) nodes.Node {
	switch n.(type) {
	case *nodes.AssignName, *nodes.DelName, *nodes.AssignAttr,
		*nodes.DelAttr, *nodes.Starred, *nodes.WithItem,
		*nodes.Parameter, *nodes.List, *nodes.Set, *nodes.Tuple,
		*nodes.Dict:
		if p := n.Parent(); p != nil {
			return AssignType(p)
		}
	}

	return n
}
