package nodes

// Expr is an expression evaluated for effect as a statement.
type Expr struct {
	base

	Value Node
}

func NewExpr(line, col int) *Expr { return &Expr{base: at(line, col)} }

func (s *Expr) PostInit(value Node) {
	s.init(value)
	adopt(s, s.Value)
}

func (s *Expr) init(value Node) {
	s.Value = child(KindExpr, "value", value)
}

func (s *Expr) Kind() Kind { return KindExpr }

func (s *Expr) ChildFields() []Field {
	return []Field{nodeField(KindExpr, "value", s.Value)}
}

func (s *Expr) Recreate(vs []FieldValue) Node {
	want(KindExpr, vs, 1)
	c := *s
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// Assign binds one value to one or more targets.
type Assign struct {
	base

	Targets []Node
	Value   Node
}

func NewAssign(line, col int) *Assign { return &Assign{base: at(line, col)} }

func (s *Assign) PostInit(targets []Node, value Node) {
	s.init(targets, value)
	adoptAll(s, s.Targets)
	adopt(s, s.Value)
}

func (s *Assign) init(targets []Node, value Node) {
	s.Targets = seq(targets)
	s.Value = child(KindAssign, "value", value)
}

func (s *Assign) Kind() Kind { return KindAssign }

func (s *Assign) ChildFields() []Field {
	return []Field{
		seqField(KindAssign, "targets", s.Targets),
		nodeField(KindAssign, "value", s.Value),
	}
}

func (s *Assign) Recreate(vs []FieldValue) Node {
	want(KindAssign, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].List, vs[1].Node)

	return &c
}

// AugAssign is an augmented assignment such as "x += 1". Op carries the
// combined operator spelling.
type AugAssign struct {
	base

	Op     string
	Target Node
	Value  Node
}

func NewAugAssign(op string, line, col int) *AugAssign {
	return &AugAssign{base: at(line, col), Op: op}
}

func (s *AugAssign) PostInit(target, value Node) {
	s.init(target, value)
	adopt(s, s.Target, s.Value)
}

func (s *AugAssign) init(target, value Node) {
	s.Target = child(KindAugAssign, "target", target)
	s.Value = child(KindAugAssign, "value", value)
}

func (s *AugAssign) Kind() Kind { return KindAugAssign }

func (s *AugAssign) ChildFields() []Field {
	return []Field{
		nodeField(KindAugAssign, "target", s.Target),
		nodeField(KindAugAssign, "value", s.Value),
	}
}

func (s *AugAssign) Attrs() []Attr { return []Attr{{"op", s.Op}} }

func (s *AugAssign) Recreate(vs []FieldValue) Node {
	want(KindAugAssign, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].Node)

	return &c
}

// Delete is a "del" statement.
type Delete struct {
	base

	Targets []Node
}

func NewDelete(line, col int) *Delete { return &Delete{base: at(line, col)} }

func (s *Delete) PostInit(targets []Node) {
	s.init(targets)
	adoptAll(s, s.Targets)
}

func (s *Delete) init(targets []Node) { s.Targets = seq(targets) }

func (s *Delete) Kind() Kind { return KindDelete }

func (s *Delete) ChildFields() []Field {
	return []Field{seqField(KindDelete, "targets", s.Targets)}
}

func (s *Delete) Recreate(vs []FieldValue) Node {
	want(KindDelete, vs, 1)
	c := *s
	c.detach()
	c.init(vs[0].List)

	return &c
}

// Return is a "return" statement; Value is Empty for a bare return.
type Return struct {
	base

	Value Node
}

func NewReturn(line, col int) *Return { return &Return{base: at(line, col)} }

func (s *Return) PostInit(value Node) {
	s.init(value)
	adopt(s, s.Value)
}

func (s *Return) init(value Node) {
	s.Value = child(KindReturn, "value", value)
}

func (s *Return) Kind() Kind { return KindReturn }

func (s *Return) ChildFields() []Field {
	return []Field{nodeField(KindReturn, "value", s.Value)}
}

func (s *Return) Recreate(vs []FieldValue) Node {
	want(KindReturn, vs, 1)
	c := *s
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// Raise is a "raise exc from cause" statement; both parts may be Empty.
type Raise struct {
	base

	Exc   Node
	Cause Node
}

func NewRaise(line, col int) *Raise { return &Raise{base: at(line, col)} }

func (s *Raise) PostInit(exc, cause Node) {
	s.init(exc, cause)
	adopt(s, s.Exc, s.Cause)
}

func (s *Raise) init(exc, cause Node) {
	s.Exc = child(KindRaise, "exc", exc)
	s.Cause = child(KindRaise, "cause", cause)
}

func (s *Raise) Kind() Kind { return KindRaise }

func (s *Raise) ChildFields() []Field {
	return []Field{
		nodeField(KindRaise, "exc", s.Exc),
		nodeField(KindRaise, "cause", s.Cause),
	}
}

func (s *Raise) Recreate(vs []FieldValue) Node {
	want(KindRaise, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].Node)

	return &c
}

// Assert is an "assert test, fail" statement; Fail may be Empty.
type Assert struct {
	base

	Test Node
	Fail Node
}

func NewAssert(line, col int) *Assert { return &Assert{base: at(line, col)} }

func (s *Assert) PostInit(test, fail Node) {
	s.init(test, fail)
	adopt(s, s.Test, s.Fail)
}

func (s *Assert) init(test, fail Node) {
	s.Test = child(KindAssert, "test", test)
	s.Fail = child(KindAssert, "fail", fail)
}

func (s *Assert) Kind() Kind { return KindAssert }

func (s *Assert) ChildFields() []Field {
	return []Field{
		nodeField(KindAssert, "test", s.Test),
		nodeField(KindAssert, "fail", s.Fail),
	}
}

func (s *Assert) Recreate(vs []FieldValue) Node {
	want(KindAssert, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].Node)

	return &c
}

// Global declares names as module-level inside a function.
type Global struct {
	base

	Names []string
}

func NewGlobal(names []string, line, col int) *Global {
	return &Global{base: at(line, col), Names: names}
}

func (s *Global) Kind() Kind { return KindGlobal }

func (s *Global) ChildFields() []Field { return nil }

func (s *Global) Attrs() []Attr { return []Attr{{"names", s.Names}} }

func (s *Global) Recreate(vs []FieldValue) Node {
	want(KindGlobal, vs, 0)
	c := *s
	c.detach()

	return &c
}

// Nonlocal declares names as bound in an enclosing function scope.
type Nonlocal struct {
	base

	Names []string
}

func NewNonlocal(names []string, line, col int) *Nonlocal {
	return &Nonlocal{base: at(line, col), Names: names}
}

func (s *Nonlocal) Kind() Kind { return KindNonlocal }

func (s *Nonlocal) ChildFields() []Field { return nil }

func (s *Nonlocal) Attrs() []Attr { return []Attr{{"names", s.Names}} }

func (s *Nonlocal) Recreate(vs []FieldValue) Node {
	want(KindNonlocal, vs, 0)
	c := *s
	c.detach()

	return &c
}

// Import is an "import a.b as c, d" statement.
type Import struct {
	base

	Names []Alias
}

func NewImport(names []Alias, line, col int) *Import {
	return &Import{base: at(line, col), Names: names}
}

func (s *Import) Kind() Kind { return KindImport }

func (s *Import) ChildFields() []Field { return nil }

func (s *Import) Attrs() []Attr { return []Attr{{"names", s.Names}} }

func (s *Import) Recreate(vs []FieldValue) Node {
	want(KindImport, vs, 0)
	c := *s
	c.detach()

	return &c
}

// ImportFrom is a "from mod import name as alias" statement. Level counts
// the leading dots of a relative import; Modname is empty for "from . import x".
type ImportFrom struct {
	base

	Modname string
	Names   []Alias
	Level   int
}

func NewImportFrom(modname string, names []Alias, level, line, col int) *ImportFrom {
	return &ImportFrom{base: at(line, col), Modname: modname, Names: names, Level: level}
}

func (s *ImportFrom) Kind() Kind { return KindImportFrom }

func (s *ImportFrom) ChildFields() []Field { return nil }

func (s *ImportFrom) Attrs() []Attr {
	return []Attr{{"modname", s.Modname}, {"names", s.Names}, {"level", s.Level}}
}

func (s *ImportFrom) Recreate(vs []FieldValue) Node {
	want(KindImportFrom, vs, 0)
	c := *s
	c.detach()

	return &c
}

// If is an "if/elif/else" statement; an elif chain nests as a single If in
// OrElse.
type If struct {
	base

	Test   Node
	Body   []Node
	OrElse []Node
}

func NewIf(line, col int) *If { return &If{base: at(line, col)} }

func (s *If) PostInit(test Node, body, orelse []Node) {
	s.init(test, body, orelse)
	adopt(s, s.Test)
	adoptAll(s, s.Body, s.OrElse)
}

func (s *If) init(test Node, body, orelse []Node) {
	s.Test = child(KindIf, "test", test)
	s.Body = seq(body)
	s.OrElse = seq(orelse)
}

func (s *If) Kind() Kind { return KindIf }

func (s *If) ChildFields() []Field {
	return []Field{
		nodeField(KindIf, "test", s.Test),
		seqField(KindIf, "body", s.Body),
		seqField(KindIf, "orelse", s.OrElse),
	}
}

func (s *If) Recreate(vs []FieldValue) Node {
	want(KindIf, vs, 3)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].List, vs[2].List)

	return &c
}

// While is a "while/else" loop.
type While struct {
	base

	Test   Node
	Body   []Node
	OrElse []Node
}

func NewWhile(line, col int) *While { return &While{base: at(line, col)} }

func (s *While) PostInit(test Node, body, orelse []Node) {
	s.init(test, body, orelse)
	adopt(s, s.Test)
	adoptAll(s, s.Body, s.OrElse)
}

func (s *While) init(test Node, body, orelse []Node) {
	s.Test = child(KindWhile, "test", test)
	s.Body = seq(body)
	s.OrElse = seq(orelse)
}

func (s *While) Kind() Kind { return KindWhile }

func (s *While) ChildFields() []Field {
	return []Field{
		nodeField(KindWhile, "test", s.Test),
		seqField(KindWhile, "body", s.Body),
		seqField(KindWhile, "orelse", s.OrElse),
	}
}

func (s *While) Recreate(vs []FieldValue) Node {
	want(KindWhile, vs, 3)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].List, vs[2].List)

	return &c
}

// For is a "for/else" loop.
type For struct {
	base

	Target Node
	Iter   Node
	Body   []Node
	OrElse []Node
}

func NewFor(line, col int) *For { return &For{base: at(line, col)} }

func (s *For) PostInit(target, iter Node, body, orelse []Node) {
	s.init(target, iter, body, orelse)
	adopt(s, s.Target, s.Iter)
	adoptAll(s, s.Body, s.OrElse)
}

func (s *For) init(target, iter Node, body, orelse []Node) {
	s.Target = child(KindFor, "target", target)
	s.Iter = child(KindFor, "iter", iter)
	s.Body = seq(body)
	s.OrElse = seq(orelse)
}

func (s *For) Kind() Kind { return KindFor }

func (s *For) ChildFields() []Field {
	return []Field{
		nodeField(KindFor, "target", s.Target),
		nodeField(KindFor, "iter", s.Iter),
		seqField(KindFor, "body", s.Body),
		seqField(KindFor, "orelse", s.OrElse),
	}
}

func (s *For) Recreate(vs []FieldValue) Node {
	want(KindFor, vs, 4)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].List, vs[3].List)

	return &c
}

// AsyncFor is an "async for" loop.
type AsyncFor struct {
	For
}

func NewAsyncFor(line, col int) *AsyncFor {
	return &AsyncFor{For{base: at(line, col)}}
}

func (s *AsyncFor) PostInit(target, iter Node, body, orelse []Node) {
	s.init(target, iter, body, orelse)
	adopt(s, s.Target, s.Iter)
	adoptAll(s, s.Body, s.OrElse)
}

func (s *AsyncFor) Kind() Kind { return KindAsyncFor }

func (s *AsyncFor) Recreate(vs []FieldValue) Node {
	want(KindAsyncFor, vs, 4)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].List, vs[3].List)

	return &c
}

// With is a "with" statement over one or more context items.
type With struct {
	base

	Items []Node
	Body  []Node
}

func NewWith(line, col int) *With { return &With{base: at(line, col)} }

func (s *With) PostInit(items, body []Node) {
	s.init(items, body)
	adoptAll(s, s.Items, s.Body)
}

func (s *With) init(items, body []Node) {
	s.Items = seq(items)
	s.Body = seq(body)
}

func (s *With) Kind() Kind { return KindWith }

func (s *With) ChildFields() []Field {
	return []Field{
		seqField(KindWith, "items", s.Items),
		seqField(KindWith, "body", s.Body),
	}
}

func (s *With) Recreate(vs []FieldValue) Node {
	want(KindWith, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].List, vs[1].List)

	return &c
}

// AsyncWith is an "async with" statement.
type AsyncWith struct {
	With
}

func NewAsyncWith(line, col int) *AsyncWith {
	return &AsyncWith{With{base: at(line, col)}}
}

func (s *AsyncWith) PostInit(items, body []Node) {
	s.init(items, body)
	adoptAll(s, s.Items, s.Body)
}

func (s *AsyncWith) Kind() Kind { return KindAsyncWith }

func (s *AsyncWith) Recreate(vs []FieldValue) Node {
	want(KindAsyncWith, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].List, vs[1].List)

	return &c
}

// WithItem is one "expr as vars" item of a with statement; OptionalVars is
// Empty when no binding is given.
type WithItem struct {
	base

	ContextExpr  Node
	OptionalVars Node
}

func NewWithItem(line, col int) *WithItem {
	return &WithItem{base: at(line, col)}
}

func (s *WithItem) PostInit(contextExpr, optionalVars Node) {
	s.init(contextExpr, optionalVars)
	adopt(s, s.ContextExpr, s.OptionalVars)
}

func (s *WithItem) init(contextExpr, optionalVars Node) {
	s.ContextExpr = child(KindWithItem, "context_expr", contextExpr)
	s.OptionalVars = child(KindWithItem, "optional_vars", optionalVars)
}

func (s *WithItem) Kind() Kind { return KindWithItem }

func (s *WithItem) ChildFields() []Field {
	return []Field{
		nodeField(KindWithItem, "context_expr", s.ContextExpr),
		nodeField(KindWithItem, "optional_vars", s.OptionalVars),
	}
}

func (s *WithItem) Recreate(vs []FieldValue) Node {
	want(KindWithItem, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].Node)

	return &c
}

// TryExcept is the handler part of a try statement. A try with both
// handlers and a finally clause nests a TryExcept inside a TryFinally.
type TryExcept struct {
	base

	Body     []Node
	Handlers []Node
	OrElse   []Node
}

func NewTryExcept(line, col int) *TryExcept {
	return &TryExcept{base: at(line, col)}
}

func (s *TryExcept) PostInit(body, handlers, orelse []Node) {
	s.init(body, handlers, orelse)
	adoptAll(s, s.Body, s.Handlers, s.OrElse)
}

func (s *TryExcept) init(body, handlers, orelse []Node) {
	s.Body = seq(body)
	s.Handlers = seq(handlers)
	s.OrElse = seq(orelse)
}

func (s *TryExcept) Kind() Kind { return KindTryExcept }

func (s *TryExcept) ChildFields() []Field {
	return []Field{
		seqField(KindTryExcept, "body", s.Body),
		seqField(KindTryExcept, "handlers", s.Handlers),
		seqField(KindTryExcept, "orelse", s.OrElse),
	}
}

func (s *TryExcept) Recreate(vs []FieldValue) Node {
	want(KindTryExcept, vs, 3)
	c := *s
	c.detach()
	c.init(vs[0].List, vs[1].List, vs[2].List)

	return &c
}

// TryFinally is the finally part of a try statement.
type TryFinally struct {
	base

	Body      []Node
	FinalBody []Node
}

func NewTryFinally(line, col int) *TryFinally {
	return &TryFinally{base: at(line, col)}
}

func (s *TryFinally) PostInit(body, finalBody []Node) {
	s.init(body, finalBody)
	adoptAll(s, s.Body, s.FinalBody)
}

func (s *TryFinally) init(body, finalBody []Node) {
	s.Body = seq(body)
	s.FinalBody = seq(finalBody)
}

func (s *TryFinally) Kind() Kind { return KindTryFinally }

func (s *TryFinally) ChildFields() []Field {
	return []Field{
		seqField(KindTryFinally, "body", s.Body),
		seqField(KindTryFinally, "finalbody", s.FinalBody),
	}
}

func (s *TryFinally) Recreate(vs []FieldValue) Node {
	want(KindTryFinally, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].List, vs[1].List)

	return &c
}

// ExceptHandler is one "except type as name" clause. Type is Empty for a
// bare except, Name is an AssignName or Empty.
type ExceptHandler struct {
	base

	Type Node
	Name Node
	Body []Node
}

func NewExceptHandler(line, col int) *ExceptHandler {
	return &ExceptHandler{base: at(line, col)}
}

func (s *ExceptHandler) PostInit(typ, name Node, body []Node) {
	s.init(typ, name, body)
	adopt(s, s.Type, s.Name)
	adoptAll(s, s.Body)
}

func (s *ExceptHandler) init(typ, name Node, body []Node) {
	s.Type = child(KindExceptHandler, "type", typ)
	s.Name = child(KindExceptHandler, "name", name)
	s.Body = seq(body)
}

func (s *ExceptHandler) Kind() Kind { return KindExceptHandler }

func (s *ExceptHandler) ChildFields() []Field {
	return []Field{
		nodeField(KindExceptHandler, "type", s.Type),
		nodeField(KindExceptHandler, "name", s.Name),
		seqField(KindExceptHandler, "body", s.Body),
	}
}

func (s *ExceptHandler) Recreate(vs []FieldValue) Node {
	want(KindExceptHandler, vs, 3)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].List)

	return &c
}

// Pass is a "pass" statement.
type Pass struct {
	base
}

func NewPass(line, col int) *Pass { return &Pass{base: at(line, col)} }

func (s *Pass) Kind() Kind { return KindPass }

func (s *Pass) ChildFields() []Field { return nil }

func (s *Pass) Recreate(vs []FieldValue) Node {
	want(KindPass, vs, 0)
	c := *s
	c.detach()

	return &c
}

// Break is a "break" statement.
type Break struct {
	base
}

func NewBreak(line, col int) *Break { return &Break{base: at(line, col)} }

func (s *Break) Kind() Kind { return KindBreak }

func (s *Break) ChildFields() []Field { return nil }

func (s *Break) Recreate(vs []FieldValue) Node {
	want(KindBreak, vs, 0)
	c := *s
	c.detach()

	return &c
}

// Continue is a "continue" statement.
type Continue struct {
	base
}

func NewContinue(line, col int) *Continue {
	return &Continue{base: at(line, col)}
}

func (s *Continue) Kind() Kind { return KindContinue }

func (s *Continue) ChildFields() []Field { return nil }

func (s *Continue) Recreate(vs []FieldValue) Node {
	want(KindContinue, vs, 0)
	c := *s
	c.detach()

	return &c
}

// Print is the legacy print statement. Dest is the ">>stream" target or
// Empty, NL reports whether a trailing newline is emitted.
type Print struct {
	base

	NL     bool
	Dest   Node
	Values []Node
}

func NewPrint(nl bool, line, col int) *Print {
	return &Print{base: at(line, col), NL: nl}
}

func (s *Print) PostInit(dest Node, values []Node) {
	s.init(dest, values)
	adopt(s, s.Dest)
	adoptAll(s, s.Values)
}

func (s *Print) init(dest Node, values []Node) {
	s.Dest = child(KindPrint, "dest", dest)
	s.Values = seq(values)
}

func (s *Print) Kind() Kind { return KindPrint }

func (s *Print) ChildFields() []Field {
	return []Field{
		nodeField(KindPrint, "dest", s.Dest),
		seqField(KindPrint, "values", s.Values),
	}
}

func (s *Print) Attrs() []Attr { return []Attr{{"nl", s.NL}} }

func (s *Print) Recreate(vs []FieldValue) Node {
	want(KindPrint, vs, 2)
	c := *s
	c.detach()
	c.init(vs[0].Node, vs[1].List)

	return &c
}
