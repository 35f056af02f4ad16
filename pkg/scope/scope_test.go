package scope

import (
	"testing"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
)

// makeModule builds:
//
//	def test(a=b):    (line 1)
//	    return a      (line 2)
func makeModule() (*nodes.Module, *nodes.FunctionDef, *nodes.Name) {
	defaultRef := nodes.NewName("b", 1, 11)

	p := nodes.NewParameter("a", 1, 9)
	p.PostInit(defaultRef, nodes.Empty)

	args := nodes.NewArguments()
	args.PostInit(nil, []nodes.Node{p}, nodes.Empty, nil, nodes.Empty)

	ret := nodes.NewReturn(2, 4)
	ret.PostInit(nodes.NewName("a", 2, 11))

	f := nodes.NewFunctionDef("test", "", 1, 0)
	f.PostInit(nodes.Empty, args, nodes.Empty, []nodes.Node{ret})

	m := nodes.NewModule("mod", "", "", false, nil)
	m.PostInit([]nodes.Node{f})

	return m, f, defaultRef
}

func TestOfDefaultEvaluatesOutside(t *testing.T) {
	t.Parallel()

	m, f, defaultRef := makeModule()

	if got := Of(defaultRef); got != m {
		t.Errorf("Of(default ref) = %v, want module", got)
	}

	body := f.Body[0].(*nodes.Return)
	if got := Of(body.Value); got != f {
		t.Errorf("Of(body ref) = %v, want function", got)
	}
}

func TestOfScopeIntroducersAreTheirOwn(t *testing.T) {
	t.Parallel()

	m, f, _ := makeModule()

	if got := Of(m); got != m {
		t.Errorf("Of(module) = %v, want itself", got)
	}

	if got := Of(f); got != f {
		t.Errorf("Of(def) = %v, want itself", got)
	}
}

func TestOfReturnsAnnotation(t *testing.T) {
	t.Parallel()

	returns := nodes.NewName("int", 1, 15)

	args := nodes.NewArguments()
	args.PostInit(nil, nil, nodes.Empty, nil, nodes.Empty)

	f := nodes.NewFunctionDef("f", "", 1, 0)
	f.PostInit(nodes.Empty, args, returns, []nodes.Node{nodes.NewPass(2, 4)})

	m := nodes.NewModule("mod", "", "", false, nil)
	m.PostInit([]nodes.Node{f})

	if got := Of(returns); got != m {
		t.Errorf("Of(return annotation) = %v, want module", got)
	}
}

func TestOfDecorators(t *testing.T) {
	t.Parallel()

	ref := nodes.NewName("deco", 1, 1)
	deco := nodes.NewDecorators(1, 0)
	deco.PostInit([]nodes.Node{ref})

	args := nodes.NewArguments()
	args.PostInit(nil, nil, nodes.Empty, nil, nodes.Empty)

	f := nodes.NewFunctionDef("f", "", 2, 0)
	f.PostInit(deco, args, nodes.Empty, []nodes.Node{nodes.NewPass(3, 4)})

	m := nodes.NewModule("mod", "", "", false, nil)
	m.PostInit([]nodes.Node{f})

	if got := Of(ref); got != m {
		t.Errorf("Of(decorator expr) = %v, want enclosing module", got)
	}
}

// makeComp builds "[x for x in src]" inside a module.
func makeComp() (*nodes.Module, *nodes.ListComp, *nodes.Comprehension) {
	target := nodes.NewAssignName("x", 1, 7)
	iter := nodes.NewName("src", 1, 16)

	clause := nodes.NewComprehension(false)
	clause.PostInit(target, iter, nil)

	comp := nodes.NewListComp(1, 0)
	comp.PostInit(nodes.NewName("x", 1, 1), []nodes.Node{clause})

	m := nodes.NewModule("mod", "", "", false, nil)

	expr := nodes.NewExpr(1, 0)
	expr.PostInit(comp)
	m.PostInit([]nodes.Node{expr})

	return m, comp, clause
}

func TestOfComprehensionFirstIter(t *testing.T) {
	t.Parallel()

	m, comp, clause := makeComp()

	if got := Of(clause.Iter); got != m {
		t.Errorf("Of(first iterable) = %v, want module", got)
	}

	if got := Of(clause.Target); got != comp {
		t.Errorf("Of(target) = %v, want the comprehension", got)
	}
}

func TestOfListCompDialects(t *testing.T) {
	t.Parallel()

	_, comp, clause := makeComp()

	if got := OfDialect(clause.Target, nodes.Py3); got != comp {
		t.Errorf("modern target scope = %v, want the comprehension", got)
	}

	m2, _, clause2 := makeComp()
	if got := OfDialect(clause2.Target, nodes.Py2); got != m2 {
		t.Errorf("legacy list comprehension should leak, got %v", got)
	}
}

func TestIntroduces(t *testing.T) {
	t.Parallel()

	for _, k := range []nodes.Kind{
		nodes.KindModule, nodes.KindFunctionDef, nodes.KindClassDef,
		nodes.KindLambda, nodes.KindGeneratorExp, nodes.KindListComp,
	} {
		if !Introduces(k) {
			t.Errorf("Introduces(%s) = false", k)
		}
	}

	for _, k := range []nodes.Kind{nodes.KindIf, nodes.KindName, nodes.KindAssign} {
		if Introduces(k) {
			t.Errorf("Introduces(%s) = true", k)
		}
	}
}

func TestFrame(t *testing.T) {
	t.Parallel()

	m, f, _ := makeModule()

	body := f.Body[0].(*nodes.Return)

	if got := Frame(body.Value); got != f {
		t.Errorf("Frame(ref) = %v, want function", got)
	}

	if got := Frame(f); got != f {
		t.Errorf("Frame(def) = %v, want itself", got)
	}

	if got := Frame(m); got != m {
		t.Errorf("Frame(module) = %v, want itself", got)
	}
}

func TestFrameSkipsComprehension(t *testing.T) {
	t.Parallel()

	m, _, clause := makeComp()

	if got := Frame(clause.Target); got != m {
		t.Errorf("Frame(comp target) = %v, want module", got)
	}
}

func TestAssignType(t *testing.T) {
	t.Parallel()

	target := nodes.NewAssignName("x", 1, 0)
	a := nodes.NewAssign(1, 0)
	a.PostInit([]nodes.Node{target}, nodes.NewConst(int64(1), "1", 1, 4))

	if got := AssignType(target); got != a {
		t.Errorf("AssignType(target) = %v, want the assignment", got)
	}

	if got := AssignType(a.Value); got != a.Value {
		t.Errorf("AssignType(value) = %v, want itself", got)
	}
}

func TestAssignTypeTupleTarget(t *testing.T) {
	t.Parallel()

	x := nodes.NewAssignName("x", 1, 0)
	y := nodes.NewAssignName("y", 1, 3)

	tup := nodes.NewTuple(1, 0)
	tup.PostInit([]nodes.Node{x, y})

	a := nodes.NewAssign(1, 0)
	a.PostInit([]nodes.Node{tup}, nodes.NewName("pair", 1, 7))

	if got := AssignType(x); got != a {
		t.Errorf("AssignType(nested target) = %v, want the assignment", got)
	}
}
