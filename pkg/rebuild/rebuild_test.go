package rebuild

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
	"github.com/Sumatoshi-tech/pytree/pkg/rawtree"
)

// Raw trees are built by hand in the shapes the grammar layer produces,
// which keeps conversion testable without the C grammar.

func raw(kind string, children ...*rawtree.Node) *rawtree.Node {
	return &rawtree.Node{Kind: kind, Named: true, Children: children}
}

func rawAt(kind string, line int, children ...*rawtree.Node) *rawtree.Node {
	n := raw(kind, children...)
	n.StartLine = line

	return n
}

func leaf(kind, text string) *rawtree.Node {
	return &rawtree.Node{Kind: kind, Text: text, Named: true}
}

func tok(text string) *rawtree.Node {
	return &rawtree.Node{Kind: text, Text: text}
}

func fielded(name string, n *rawtree.Node) *rawtree.Node {
	n.Field = name

	return n
}

func exprStmt(inner *rawtree.Node) *rawtree.Node {
	return raw("expression_statement", inner)
}

func rebuild(t *testing.T, root *rawtree.Node) *nodes.Module {
	t.Helper()

	m, err := New().Rebuild(root, "mod", "/tmp/mod.py", false)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	return m
}

func TestRebuildSimpleAssign(t *testing.T) {
	t.Parallel()

	root := raw("module",
		exprStmt(raw("assignment",
			fielded("left", leaf("identifier", "x")),
			fielded("right", leaf("integer", "1")),
		)))

	m := rebuild(t, root)

	if m.Name != "mod" || m.Path != "/tmp/mod.py" || m.Package {
		t.Errorf("module metadata = (%q, %q, %v)", m.Name, m.Path, m.Package)
	}

	if len(m.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(m.Body))
	}

	assign, ok := m.Body[0].(*nodes.Assign)
	if !ok {
		t.Fatalf("statement = %T, want *Assign", m.Body[0])
	}

	target, ok := assign.Targets[0].(*nodes.AssignName)
	if !ok || target.Name != "x" {
		t.Errorf("target = %v", assign.Targets[0])
	}

	value, ok := assign.Value.(*nodes.Const)
	if !ok || value.Value != int64(1) {
		t.Errorf("value = %v", assign.Value)
	}
}

func TestRebuildChainedAssign(t *testing.T) {
	t.Parallel()

	root := raw("module",
		exprStmt(raw("assignment",
			fielded("left", leaf("identifier", "x")),
			fielded("right", raw("assignment",
				fielded("left", leaf("identifier", "y")),
				fielded("right", leaf("integer", "1")),
			)),
		)))

	assign := rebuild(t, root).Body[0].(*nodes.Assign)

	if len(assign.Targets) != 2 {
		t.Fatalf("targets = %d, want 2 (chain flattened)", len(assign.Targets))
	}

	names := []string{
		assign.Targets[0].(*nodes.AssignName).Name,
		assign.Targets[1].(*nodes.AssignName).Name,
	}
	if !reflect.DeepEqual(names, []string{"x", "y"}) {
		t.Errorf("target order = %v", names)
	}

	if assign.Value.(*nodes.Const).Value != int64(1) {
		t.Errorf("chain value = %v", assign.Value)
	}
}

func TestRebuildAnnotatedAssignNotSupported(t *testing.T) {
	t.Parallel()

	root := raw("module",
		exprStmt(raw("assignment",
			fielded("left", leaf("identifier", "x")),
			fielded("type", leaf("type", "int")),
			fielded("right", leaf("integer", "1")),
		)))

	_, err := New().Rebuild(root, "mod", "", false)

	var nse *nodes.NotSupportedError
	if !errors.As(err, &nse) {
		t.Fatalf("error = %v, want NotSupportedError", err)
	}
}

func TestRebuildModuleDocstring(t *testing.T) {
	t.Parallel()

	root := raw("module",
		exprStmt(leaf("string", `"the docstring"`)),
		raw("pass_statement"))

	m := rebuild(t, root)

	if m.Doc != "the docstring" {
		t.Errorf("doc = %q", m.Doc)
	}

	if len(m.Body) != 1 || m.Body[0].Kind() != nodes.KindPass {
		t.Errorf("docstring should leave only the pass statement: %v", m.Body)
	}
}

func TestRebuildFunctionDef(t *testing.T) {
	t.Parallel()

	// def f(a, b=1):
	//     "doc"
	//     pass
	root := raw("module",
		rawAt("function_definition", 1,
			fielded("name", leaf("identifier", "f")),
			fielded("parameters", raw("parameters",
				leaf("identifier", "a"),
				raw("default_parameter",
					fielded("name", leaf("identifier", "b")),
					fielded("value", leaf("integer", "1")),
				),
			)),
			fielded("body", raw("block",
				exprStmt(leaf("string", `"doc"`)),
				rawAt("pass_statement", 3),
			)),
		))

	def, ok := rebuild(t, root).Body[0].(*nodes.FunctionDef)
	if !ok {
		t.Fatalf("statement is not a FunctionDef")
	}

	if def.Name != "f" || def.Doc != "doc" {
		t.Errorf("def metadata = (%q, %q)", def.Name, def.Doc)
	}

	if got := def.Args.(*nodes.Arguments).FormatArgs(); got != "a, b=1" {
		t.Errorf("FormatArgs = %q", got)
	}

	if len(def.Body) != 1 || def.Body[0].Kind() != nodes.KindPass {
		t.Errorf("docstring should be stripped from the body: %v", def.Body)
	}
}

func TestRebuildParameterGroups(t *testing.T) {
	t.Parallel()

	// def f(p, /, a, *rest, k=1, **extra): pass
	root := raw("module",
		raw("function_definition",
			fielded("name", leaf("identifier", "f")),
			fielded("parameters", raw("parameters",
				leaf("identifier", "p"),
				raw("positional_separator"),
				leaf("identifier", "a"),
				raw("list_splat_pattern", leaf("identifier", "rest")),
				raw("default_parameter",
					fielded("name", leaf("identifier", "k")),
					fielded("value", leaf("integer", "1")),
				),
				raw("dictionary_splat_pattern", leaf("identifier", "extra")),
			)),
			fielded("body", raw("block", raw("pass_statement"))),
		))

	def := rebuild(t, root).Body[0].(*nodes.FunctionDef)

	if got := def.Args.(*nodes.Arguments).FormatArgs(); got != "p, /, a, *rest, k=1, **extra" {
		t.Errorf("FormatArgs = %q", got)
	}
}

func TestRebuildDefaultsMismatch(t *testing.T) {
	t.Parallel()

	// A default list longer than the parameter group cannot come from real
	// source; it must fail loudly rather than mis-align.
	_, err := alignDefaults(1, []nodes.Node{nodes.Empty, nodes.Empty})
	if !errors.Is(err, ErrStructure) {
		t.Errorf("error = %v, want ErrStructure", err)
	}

	aligned, err := alignDefaults(3, []nodes.Node{nodes.NewName("d", 1, 0)})
	if err != nil {
		t.Fatalf("alignDefaults: %v", err)
	}

	if aligned[0] != nodes.Empty || aligned[1] != nodes.Empty || aligned[2] == nodes.Empty {
		t.Errorf("defaults should right-align: %v", aligned)
	}
}

func TestRebuildTryFinallyDecomposition(t *testing.T) {
	t.Parallel()

	// try: ... except E: ... finally: ...
	root := raw("module",
		rawAt("try_statement", 1,
			fielded("body", raw("block", rawAt("pass_statement", 2))),
			rawAt("except_clause", 3,
				leaf("identifier", "E"),
				raw("block", rawAt("pass_statement", 4)),
			),
			raw("finally_clause",
				raw("block", rawAt("pass_statement", 6)),
			),
		))

	outer, ok := rebuild(t, root).Body[0].(*nodes.TryFinally)
	if !ok {
		t.Fatalf("statement is not a TryFinally")
	}

	if outer.Pos().Line != 1 {
		t.Errorf("TryFinally line = %d, want 1", outer.Pos().Line)
	}

	inner, ok := outer.Body[0].(*nodes.TryExcept)
	if !ok {
		t.Fatalf("TryFinally body is not a nested TryExcept")
	}

	if inner.Pos().Line != 1 {
		t.Errorf("nested TryExcept should share the try line, got %d", inner.Pos().Line)
	}

	handler := inner.Handlers[0].(*nodes.ExceptHandler)
	if handler.Type.(*nodes.Name).Name != "E" {
		t.Errorf("handler type = %v", handler.Type)
	}

	if len(outer.FinalBody) != 1 {
		t.Errorf("final body length = %d, want 1", len(outer.FinalBody))
	}
}

func TestRebuildTryWithoutHandlersOrFinally(t *testing.T) {
	t.Parallel()

	root := raw("module",
		raw("try_statement",
			fielded("body", raw("block", raw("pass_statement"))),
		))

	if _, err := New().Rebuild(root, "mod", "", false); !errors.Is(err, ErrStructure) {
		t.Errorf("error = %v, want ErrStructure", err)
	}
}

func TestRebuildElifChain(t *testing.T) {
	t.Parallel()

	// if a: pass
	// elif b: pass
	// else: pass
	root := raw("module",
		rawAt("if_statement", 1,
			fielded("condition", leaf("identifier", "a")),
			fielded("consequence", raw("block", raw("pass_statement"))),
			fielded("alternative", rawAt("elif_clause", 3,
				fielded("condition", leaf("identifier", "b")),
				fielded("consequence", raw("block", raw("pass_statement"))),
			)),
			fielded("alternative", raw("else_clause",
				fielded("body", raw("block", raw("pass_statement"))),
			)),
		))

	top := rebuild(t, root).Body[0].(*nodes.If)

	if top.Test.(*nodes.Name).Name != "a" {
		t.Errorf("outer test = %v", top.Test)
	}

	nested, ok := top.OrElse[0].(*nodes.If)
	if !ok {
		t.Fatalf("elif should nest as an If in orelse, got %T", top.OrElse[0])
	}

	if nested.Pos().Line != 3 {
		t.Errorf("nested If line = %d, want the elif line 3", nested.Pos().Line)
	}

	if len(nested.OrElse) != 1 || nested.OrElse[0].Kind() != nodes.KindPass {
		t.Errorf("else body should land on the innermost If: %v", nested.OrElse)
	}
}

func TestRebuildRelativeImport(t *testing.T) {
	t.Parallel()

	// from ..pkg import name as alias
	root := raw("module",
		raw("import_from_statement",
			fielded("module_name", raw("relative_import",
				leaf("import_prefix", ".."),
				leaf("dotted_name", "pkg"),
			)),
			fielded("name", raw("aliased_import",
				fielded("name", leaf("dotted_name", "name")),
				fielded("alias", leaf("identifier", "alias")),
			)),
		))

	imp := rebuild(t, root).Body[0].(*nodes.ImportFrom)

	if imp.Modname != "pkg" || imp.Level != 2 {
		t.Errorf("import = (%q, level %d), want (pkg, 2)", imp.Modname, imp.Level)
	}

	want := []nodes.Alias{{Name: "name", AsName: "alias"}}
	if !reflect.DeepEqual(imp.Names, want) {
		t.Errorf("names = %v, want %v", imp.Names, want)
	}
}

func TestRebuildWildcardImport(t *testing.T) {
	t.Parallel()

	root := raw("module",
		raw("import_from_statement",
			fielded("module_name", leaf("dotted_name", "os")),
			raw("wildcard_import"),
		))

	imp := rebuild(t, root).Body[0].(*nodes.ImportFrom)
	if len(imp.Names) != 1 || imp.Names[0].Name != "*" {
		t.Errorf("names = %v, want the wildcard", imp.Names)
	}
}

func TestRebuildCallSplats(t *testing.T) {
	t.Parallel()

	// f(a, *args, k=1, **kw)
	root := raw("module",
		exprStmt(raw("call",
			fielded("function", leaf("identifier", "f")),
			fielded("arguments", raw("argument_list",
				leaf("identifier", "a"),
				raw("list_splat", leaf("identifier", "args")),
				raw("keyword_argument",
					fielded("name", leaf("identifier", "k")),
					fielded("value", leaf("integer", "1")),
				),
				raw("dictionary_splat", leaf("identifier", "kw")),
			)),
		)))

	call := rebuild(t, root).Body[0].(*nodes.Expr).Value.(*nodes.Call)

	if len(call.Args) != 2 {
		t.Fatalf("positional args = %d, want 2", len(call.Args))
	}

	star, ok := call.Args[1].(*nodes.Starred)
	if !ok || star.Value.(*nodes.Name).Name != "args" {
		t.Errorf("splat argument = %v, want *args", call.Args[1])
	}

	if len(call.Keywords) != 2 {
		t.Fatalf("keywords = %d, want 2", len(call.Keywords))
	}

	if kw := call.Keywords[0].(*nodes.Keyword); kw.Arg != "k" {
		t.Errorf("keyword = %q, want k", kw.Arg)
	}

	// The ** splat is a keyword without a name.
	if kw := call.Keywords[1].(*nodes.Keyword); kw.Arg != "" {
		t.Errorf("mapping splat keyword arg = %q, want empty", kw.Arg)
	}
}

func TestRebuildLegacySplatFields(t *testing.T) {
	t.Parallel()

	// Raw trees carrying the older starargs/kwargs fields synthesize the
	// same starred/keyword entries as splat children do.
	root := raw("module",
		exprStmt(raw("call",
			fielded("function", leaf("identifier", "f")),
			fielded("arguments", raw("argument_list",
				fielded("starargs", leaf("identifier", "args")),
				fielded("kwargs", leaf("identifier", "kw")),
			)),
		)))

	call := rebuild(t, root).Body[0].(*nodes.Expr).Value.(*nodes.Call)

	if _, ok := call.Args[0].(*nodes.Starred); !ok {
		t.Errorf("starargs field should synthesize a Starred, got %T", call.Args[0])
	}

	if kw := call.Keywords[0].(*nodes.Keyword); kw.Arg != "" {
		t.Errorf("kwargs field should synthesize an unnamed Keyword")
	}
}

func TestRebuildBoolOpFlattens(t *testing.T) {
	t.Parallel()

	// a and b and c nests rightward in the raw tree.
	root := raw("module",
		exprStmt(raw("boolean_operator",
			fielded("left", leaf("identifier", "a")),
			fielded("operator", tok("and")),
			fielded("right", raw("boolean_operator",
				fielded("left", leaf("identifier", "b")),
				fielded("operator", tok("and")),
				fielded("right", leaf("identifier", "c")),
			)),
		)))

	boolOp := rebuild(t, root).Body[0].(*nodes.Expr).Value.(*nodes.BoolOp)

	if boolOp.Op != "and" || len(boolOp.Values) != 3 {
		t.Errorf("BoolOp = (%q, %d values), want flat and over 3", boolOp.Op, len(boolOp.Values))
	}
}

func TestRebuildCompareChain(t *testing.T) {
	t.Parallel()

	// a < b not in c
	root := raw("module",
		exprStmt(raw("comparison_operator",
			leaf("identifier", "a"),
			fielded("operators", tok("<")),
			leaf("identifier", "b"),
			fielded("operators", tok("not")),
			fielded("operators", tok("in")),
			leaf("identifier", "c"),
		)))

	cmp := rebuild(t, root).Body[0].(*nodes.Expr).Value.(*nodes.Compare)

	if !reflect.DeepEqual(cmp.Ops, []string{"<", "not in"}) {
		t.Errorf("ops = %v", cmp.Ops)
	}

	if len(cmp.Comparators) != 2 {
		t.Errorf("comparators = %d, want 2", len(cmp.Comparators))
	}
}

func TestRebuildConditionalOrder(t *testing.T) {
	t.Parallel()

	// "a if b else c" arrives as consequence, condition, alternative.
	root := raw("module",
		exprStmt(raw("conditional_expression",
			leaf("identifier", "a"),
			leaf("identifier", "b"),
			leaf("identifier", "c"),
		)))

	ifExp := rebuild(t, root).Body[0].(*nodes.Expr).Value.(*nodes.IfExp)

	if ifExp.Test.(*nodes.Name).Name != "b" {
		t.Errorf("test = %v, want b", ifExp.Test)
	}

	if ifExp.Body.(*nodes.Name).Name != "a" || ifExp.OrElse.(*nodes.Name).Name != "c" {
		t.Errorf("branches = (%v, %v), want (a, c)", ifExp.Body, ifExp.OrElse)
	}
}

func TestRebuildNotImplementedName(t *testing.T) {
	t.Parallel()

	root := raw("module",
		exprStmt(leaf("identifier", "NotImplemented")))

	value := rebuild(t, root).Body[0].(*nodes.Expr).Value

	nc, ok := value.(*nodes.NameConstant)
	if !ok || nc.Value != nodes.NotImplemented {
		t.Errorf("NotImplemented read = %v, want NameConstant", value)
	}
}

func TestRebuildYieldFrom(t *testing.T) {
	t.Parallel()

	root := raw("module",
		exprStmt(raw("yield",
			tok("from"),
			leaf("identifier", "gen"),
		)))

	value := rebuild(t, root).Body[0].(*nodes.Expr).Value
	if _, ok := value.(*nodes.YieldFrom); !ok {
		t.Errorf("yield from = %T, want *YieldFrom", value)
	}
}

func TestRebuildListComp(t *testing.T) {
	t.Parallel()

	// [x for x in src if x]
	root := raw("module",
		exprStmt(raw("list_comprehension",
			fielded("body", leaf("identifier", "x")),
			raw("for_in_clause",
				fielded("left", leaf("identifier", "x")),
				fielded("right", leaf("identifier", "src")),
			),
			raw("if_clause", leaf("identifier", "x")),
		)))

	comp := rebuild(t, root).Body[0].(*nodes.Expr).Value.(*nodes.ListComp)

	if len(comp.Generators) != 1 {
		t.Fatalf("generators = %d, want 1", len(comp.Generators))
	}

	gen := comp.Generators[0].(*nodes.Comprehension)

	if _, ok := gen.Target.(*nodes.AssignName); !ok {
		t.Errorf("target = %T, want a write-context name", gen.Target)
	}

	if gen.Iter.(*nodes.Name).Name != "src" {
		t.Errorf("iter = %v", gen.Iter)
	}

	if len(gen.Ifs) != 1 {
		t.Errorf("ifs = %d, want 1", len(gen.Ifs))
	}
}

func TestRebuildDecorated(t *testing.T) {
	t.Parallel()

	root := raw("module",
		raw("decorated_definition",
			rawAt("decorator", 1, leaf("identifier", "deco")),
			fielded("definition", rawAt("function_definition", 2,
				fielded("name", leaf("identifier", "f")),
				fielded("parameters", raw("parameters")),
				fielded("body", raw("block", raw("pass_statement"))),
			)),
		))

	def := rebuild(t, root).Body[0].(*nodes.FunctionDef)

	deco, ok := def.Decorators.(*nodes.Decorators)
	if !ok || len(deco.Nodes) != 1 {
		t.Fatalf("decorators = %v", def.Decorators)
	}

	if deco.Pos().Line != 1 {
		t.Errorf("decorators line = %d, want 1", deco.Pos().Line)
	}

	if deco.Nodes[0].(*nodes.Name).Name != "deco" {
		t.Errorf("decorator expr = %v", deco.Nodes[0])
	}
}

func TestRebuildUnknownKind(t *testing.T) {
	t.Parallel()

	root := raw("module", exprStmt(leaf("walrus_operator", "x := 1")))

	if _, err := New().Rebuild(root, "mod", "", false); !errors.Is(err, ErrNoConversion) {
		t.Errorf("error = %v, want ErrNoConversion", err)
	}
}

func TestRebuildRejectsNonModuleRoot(t *testing.T) {
	t.Parallel()

	if _, err := New().Rebuild(raw("block"), "mod", "", false); !errors.Is(err, ErrNoConversion) {
		t.Errorf("error = %v, want ErrNoConversion", err)
	}
}

func TestRebuildGlobalStatement(t *testing.T) {
	t.Parallel()

	// def f():
	//     global x, y
	root := raw("module",
		rawAt("function_definition", 1,
			fielded("name", leaf("identifier", "f")),
			fielded("parameters", raw("parameters")),
			fielded("body", raw("block",
				raw("global_statement",
					leaf("identifier", "x"),
					leaf("identifier", "y"),
				),
			)),
		))

	def, ok := rebuild(t, root).Body[0].(*nodes.FunctionDef)
	if !ok {
		t.Fatalf("statement is not a FunctionDef")
	}

	g, ok := def.Body[0].(*nodes.Global)
	if !ok {
		t.Fatalf("body statement is not a Global")
	}

	if len(g.Names) != 2 || g.Names[0] != "x" || g.Names[1] != "y" {
		t.Errorf("Names = %v, want [x y]", g.Names)
	}
}

func TestGlobalDeclarationFrames(t *testing.T) {
	t.Parallel()

	r := New()

	if r.DeclaredGlobal("x") {
		t.Error("DeclaredGlobal outside any function = true")
	}

	r.pushFunction()
	r.declareGlobal([]string{"x"})

	if !r.DeclaredGlobal("x") {
		t.Error("DeclaredGlobal after declaration = false")
	}

	// A nested function gets its own frame.
	r.pushFunction()

	if r.DeclaredGlobal("x") {
		t.Error("inner frame sees the outer declaration")
	}

	r.popFunction()

	if !r.DeclaredGlobal("x") {
		t.Error("outer declaration lost after leaving the inner frame")
	}

	r.popFunction()
}

func TestRebuildExceptHandlerAlias(t *testing.T) {
	t.Parallel()

	// try: pass
	// except ValueError as exc: pass
	root := raw("module",
		rawAt("try_statement", 1,
			fielded("body", raw("block", rawAt("pass_statement", 2))),
			rawAt("except_clause", 3,
				raw("as_pattern",
					leaf("identifier", "ValueError"),
					fielded("alias", raw("as_pattern_target",
						leaf("identifier", "exc"))),
				),
				raw("block", rawAt("pass_statement", 4)),
			),
		))

	tryStmt := rebuild(t, root).Body[0].(*nodes.TryExcept)

	handler := tryStmt.Handlers[0].(*nodes.ExceptHandler)
	if handler.Type.(*nodes.Name).Name != "ValueError" {
		t.Errorf("handler type = %v", handler.Type)
	}

	bound, ok := handler.Name.(*nodes.AssignName)
	if !ok {
		t.Fatalf("handler name is %T, want AssignName", handler.Name)
	}

	if bound.Name != "exc" {
		t.Errorf("handler alias = %q, want %q", bound.Name, "exc")
	}

	if len(handler.Body) != 1 {
		t.Errorf("handler body length = %d, want 1", len(handler.Body))
	}
}

func TestRebuildNamedExpressionNotSupported(t *testing.T) {
	t.Parallel()

	// if (n := 10) > 5: pass
	root := raw("module",
		exprStmt(raw("named_expression",
			fielded("name", leaf("identifier", "n")),
			fielded("value", leaf("integer", "10")),
		)))

	_, err := New().Rebuild(root, "mod", "", false)

	var nse *nodes.NotSupportedError
	if !errors.As(err, &nse) {
		t.Fatalf("error = %v, want NotSupportedError", err)
	}

	if nse.Capability != "assignment expression" {
		t.Errorf("capability = %q", nse.Capability)
	}
}
