package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
)

// These tests run real source through the bundled grammar, so they cover
// the parser, the raw layer, and the rebuilder together.

func buildSource(t *testing.T, code string) *nodes.Module {
	t.Helper()

	m, err := New().BuildString(context.Background(), code, "mod", "")
	if err != nil {
		t.Fatalf("BuildString: %v", err)
	}

	return m
}

func TestBuildStringFunction(t *testing.T) {
	t.Parallel()

	m := buildSource(t, `
@wraps
def greet(name, punct="!", *rest, **extra):
    """Say hello."""
    return name + punct
`)

	fn, ok := m.Body[0].(*nodes.FunctionDef)
	if !ok {
		t.Fatalf("statement is %T, want FunctionDef", m.Body[0])
	}

	if fn.Name != "greet" || fn.Doc != "Say hello." {
		t.Errorf("function = (%q, %q)", fn.Name, fn.Doc)
	}

	if fn.Decorators == nodes.Empty {
		t.Error("decorator list should be attached")
	}

	args := fn.Args.(*nodes.Arguments)
	if len(args.Args) != 2 {
		t.Fatalf("positional parameters = %d, want 2", len(args.Args))
	}

	if v, ok := args.Vararg.(*nodes.Parameter); !ok || v.Name != "rest" {
		t.Errorf("vararg = %v, want rest", args.Vararg)
	}

	if k, ok := args.Kwarg.(*nodes.Parameter); !ok || k.Name != "extra" {
		t.Errorf("kwarg = %v, want extra", args.Kwarg)
	}

	if _, ok := fn.Body[0].(*nodes.Return); !ok {
		t.Errorf("function body = %T, want Return", fn.Body[0])
	}
}

func TestBuildStringClass(t *testing.T) {
	t.Parallel()

	m := buildSource(t, `
class Greeter(Base, metaclass=Meta):
    """A greeter."""

    def greet(self):
        pass
`)

	cls, ok := m.Body[0].(*nodes.ClassDef)
	if !ok {
		t.Fatalf("statement is %T, want ClassDef", m.Body[0])
	}

	if cls.Name != "Greeter" || cls.Doc != "A greeter." {
		t.Errorf("class = (%q, %q)", cls.Name, cls.Doc)
	}

	if len(cls.Bases) != 1 || cls.Bases[0].(*nodes.Name).Name != "Base" {
		t.Errorf("bases = %v", cls.Bases)
	}

	if len(cls.Keywords) != 1 || cls.Keywords[0].(*nodes.Keyword).Arg != "metaclass" {
		t.Errorf("keywords = %v", cls.Keywords)
	}

	method, ok := cls.Body[0].(*nodes.FunctionDef)
	if !ok || method.Name != "greet" {
		t.Errorf("class body = %v", cls.Body[0])
	}
}

func TestBuildStringExceptHandlers(t *testing.T) {
	t.Parallel()

	m := buildSource(t, `
try:
    risky()
except ValueError as exc:
    handle(exc)
except Exception:
    pass
else:
    done()
`)

	tryStmt, ok := m.Body[0].(*nodes.TryExcept)
	if !ok {
		t.Fatalf("statement is %T, want TryExcept", m.Body[0])
	}

	if len(tryStmt.Handlers) != 2 {
		t.Fatalf("handlers = %d, want 2", len(tryStmt.Handlers))
	}

	aliased := tryStmt.Handlers[0].(*nodes.ExceptHandler)
	if aliased.Type.(*nodes.Name).Name != "ValueError" {
		t.Errorf("first handler type = %v", aliased.Type)
	}

	if bound, ok := aliased.Name.(*nodes.AssignName); !ok || bound.Name != "exc" {
		t.Errorf("first handler alias = %v, want exc", aliased.Name)
	}

	bare := tryStmt.Handlers[1].(*nodes.ExceptHandler)
	if bare.Name != nodes.Empty {
		t.Errorf("second handler alias = %v, want none", bare.Name)
	}

	if len(tryStmt.OrElse) != 1 {
		t.Errorf("orelse = %d statements, want 1", len(tryStmt.OrElse))
	}
}

func TestBuildStringWithAlias(t *testing.T) {
	t.Parallel()

	m := buildSource(t, `
with open(path) as fh:
    fh.read()
`)

	with, ok := m.Body[0].(*nodes.With)
	if !ok {
		t.Fatalf("statement is %T, want With", m.Body[0])
	}

	item := with.Items[0].(*nodes.WithItem)
	if _, ok := item.ContextExpr.(*nodes.Call); !ok {
		t.Errorf("context expression = %T, want Call", item.ContextExpr)
	}

	if v, ok := item.OptionalVars.(*nodes.AssignName); !ok || v.Name != "fh" {
		t.Errorf("optional vars = %v, want fh", item.OptionalVars)
	}
}

func TestBuildStringComprehensions(t *testing.T) {
	t.Parallel()

	m := buildSource(t, `
squares = [x * x for x in range(10) if x % 2]
pairs = {k: v for k, v in items}
`)

	comp, ok := m.Body[0].(*nodes.Assign).Value.(*nodes.ListComp)
	if !ok {
		t.Fatalf("first value is %T, want ListComp", m.Body[0].(*nodes.Assign).Value)
	}

	gen := comp.Generators[0].(*nodes.Comprehension)
	if gen.Target.(*nodes.AssignName).Name != "x" {
		t.Errorf("comprehension target = %v", gen.Target)
	}

	if len(gen.Ifs) != 1 {
		t.Errorf("comprehension conditions = %d, want 1", len(gen.Ifs))
	}

	dict, ok := m.Body[1].(*nodes.Assign).Value.(*nodes.DictComp)
	if !ok {
		t.Fatalf("second value is %T, want DictComp", m.Body[1].(*nodes.Assign).Value)
	}

	if dict.Key.(*nodes.Name).Name != "k" || dict.Value.(*nodes.Name).Name != "v" {
		t.Errorf("dict comprehension = (%v, %v)", dict.Key, dict.Value)
	}
}

func TestBuildStringCallSplats(t *testing.T) {
	t.Parallel()

	m := buildSource(t, "f(a, *args, k=1, **kw)\n")

	call := m.Body[0].(*nodes.Expr).Value.(*nodes.Call)

	if len(call.Args) != 2 {
		t.Fatalf("positional args = %d, want 2", len(call.Args))
	}

	if star, ok := call.Args[1].(*nodes.Starred); !ok || star.Value.(*nodes.Name).Name != "args" {
		t.Errorf("splat argument = %v, want *args", call.Args[1])
	}

	if len(call.Keywords) != 2 {
		t.Fatalf("keywords = %d, want 2", len(call.Keywords))
	}

	if kw := call.Keywords[1].(*nodes.Keyword); kw.Arg != "" {
		t.Errorf("mapping splat keyword arg = %q, want empty", kw.Arg)
	}
}

func TestBuildStringFutureImports(t *testing.T) {
	t.Parallel()

	m := buildSource(t, `
from __future__ import division, print_function
import os
from __future__ import annotations
`)

	got := m.FutureImports()
	if len(got) != 2 || got[0] != "division" || got[1] != "print_function" {
		t.Errorf("FutureImports = %v, want the leading pair only", got)
	}
}

func TestBuildStringSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := New().BuildString(context.Background(), "def broken(:\n    pass\n", "mod", "")

	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want SyntaxError", err)
	}
}
