package nodes

// Decorators wraps the decorator expressions applied to a function or
// class definition.
type Decorators struct {
	base

	Nodes []Node
}

func NewDecorators(line, col int) *Decorators {
	return &Decorators{base: at(line, col)}
}

func (d *Decorators) PostInit(nodes []Node) {
	d.init(nodes)
	adoptAll(d, d.Nodes)
}

func (d *Decorators) init(nodes []Node) { d.Nodes = seq(nodes) }

func (d *Decorators) Kind() Kind { return KindDecorators }

func (d *Decorators) ChildFields() []Field {
	return []Field{seqField(KindDecorators, "nodes", d.Nodes)}
}

func (d *Decorators) Recreate(vs []FieldValue) Node {
	want(KindDecorators, vs, 1)
	c := *d
	c.detach()
	c.init(vs[0].List)

	return &c
}

// Parameter is one formal parameter: a name with an optional default and
// annotation, both Empty when absent.
type Parameter struct {
	base

	Name       string
	Default    Node
	Annotation Node
}

func NewParameter(name string, line, col int) *Parameter {
	return &Parameter{base: at(line, col), Name: name}
}

func (p *Parameter) PostInit(def, annotation Node) {
	p.init(def, annotation)
	adopt(p, p.Default, p.Annotation)
}

func (p *Parameter) init(def, annotation Node) {
	p.Default = child(KindParameter, "default", def)
	p.Annotation = child(KindParameter, "annotation", annotation)
}

func (p *Parameter) Kind() Kind { return KindParameter }

func (p *Parameter) ChildFields() []Field {
	return []Field{
		nodeField(KindParameter, "default", p.Default),
		nodeField(KindParameter, "annotation", p.Annotation),
	}
}

func (p *Parameter) Attrs() []Attr { return []Attr{{"name", p.Name}} }

func (p *Parameter) Recreate(vs []FieldValue) Node {
	want(KindParameter, vs, 2)
	c := *p
	c.detach()
	c.init(vs[0].Node, vs[1].Node)

	return &c
}

// Arguments is the formal parameter list of a function or lambda. It is
// synthesized (no position of its own): line queries delegate to the
// owning definition. Vararg and Kwarg are Parameters or Empty.
type Arguments struct {
	base

	PosOnlyArgs []Node
	Args        []Node
	Vararg      Node
	KwOnlyArgs  []Node
	Kwarg       Node
}

func NewArguments() *Arguments { return &Arguments{} }

func (a *Arguments) PostInit(posOnly, args []Node, vararg Node, kwOnly []Node, kwarg Node) {
	a.init(posOnly, args, vararg, kwOnly, kwarg)
	adoptAll(a, a.PosOnlyArgs, a.Args, a.KwOnlyArgs)
	adopt(a, a.Vararg, a.Kwarg)
}

func (a *Arguments) init(posOnly, args []Node, vararg Node, kwOnly []Node, kwarg Node) {
	a.PosOnlyArgs = seq(posOnly)
	a.Args = seq(args)
	a.Vararg = child(KindArguments, "vararg", vararg)
	a.KwOnlyArgs = seq(kwOnly)
	a.Kwarg = child(KindArguments, "kwarg", kwarg)
}

func (a *Arguments) Kind() Kind { return KindArguments }

func (a *Arguments) ChildFields() []Field {
	return []Field{
		seqField(KindArguments, "posonlyargs", a.PosOnlyArgs),
		seqField(KindArguments, "args", a.Args),
		nodeField(KindArguments, "vararg", a.Vararg),
		seqField(KindArguments, "kwonlyargs", a.KwOnlyArgs),
		nodeField(KindArguments, "kwarg", a.Kwarg),
	}
}

func (a *Arguments) Recreate(vs []FieldValue) Node {
	want(KindArguments, vs, 5)
	c := *a
	c.detach()
	c.init(vs[0].List, vs[1].List, vs[2].Node, vs[3].List, vs[4].Node)

	return &c
}

// Lambda is an anonymous function expression.
type Lambda struct {
	base

	Args Node
	Body Node
}

func NewLambda(line, col int) *Lambda { return &Lambda{base: at(line, col)} }

func (l *Lambda) PostInit(args, body Node) {
	l.init(args, body)
	adopt(l, l.Args, l.Body)
}

func (l *Lambda) init(args, body Node) {
	l.Args = child(KindLambda, "args", args)
	l.Body = child(KindLambda, "body", body)
}

func (l *Lambda) Kind() Kind { return KindLambda }

func (l *Lambda) ChildFields() []Field {
	return []Field{
		nodeField(KindLambda, "args", l.Args),
		nodeField(KindLambda, "body", l.Body),
	}
}

func (l *Lambda) Recreate(vs []FieldValue) Node {
	want(KindLambda, vs, 2)
	c := *l
	c.detach()
	c.init(vs[0].Node, vs[1].Node)

	return &c
}

// ArgNames lists the lambda's parameter names in declaration order.
func (l *Lambda) ArgNames() []string { return argNames(l.Args) }

// FunctionDef is a named function definition. Decorators is a Decorators
// node or Empty, Returns the annotation or Empty.
type FunctionDef struct {
	base

	Name       string
	Doc        string
	Decorators Node
	Args       Node
	Returns    Node
	Body       []Node
}

func NewFunctionDef(name, doc string, line, col int) *FunctionDef {
	return &FunctionDef{base: at(line, col), Name: name, Doc: doc}
}

func (f *FunctionDef) PostInit(decorators, args, returns Node, body []Node) {
	f.init(decorators, args, returns, body)
	adopt(f, f.Decorators, f.Args, f.Returns)
	adoptAll(f, f.Body)
}

func (f *FunctionDef) init(decorators, args, returns Node, body []Node) {
	f.Decorators = child(KindFunctionDef, "decorators", decorators)
	f.Args = child(KindFunctionDef, "args", args)
	f.Returns = child(KindFunctionDef, "returns", returns)
	f.Body = seq(body)
}

func (f *FunctionDef) Kind() Kind { return KindFunctionDef }

func (f *FunctionDef) ChildFields() []Field {
	return []Field{
		nodeField(KindFunctionDef, "decorators", f.Decorators),
		nodeField(KindFunctionDef, "args", f.Args),
		nodeField(KindFunctionDef, "returns", f.Returns),
		seqField(KindFunctionDef, "body", f.Body),
	}
}

func (f *FunctionDef) Attrs() []Attr {
	return []Attr{{"name", f.Name}, {"doc", f.Doc}}
}

func (f *FunctionDef) Recreate(vs []FieldValue) Node {
	want(KindFunctionDef, vs, 4)
	c := *f
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].Node, vs[3].List)

	return &c
}

// ArgNames lists the function's parameter names in declaration order.
func (f *FunctionDef) ArgNames() []string { return argNames(f.Args) }

// QName reports the dotted name qualified by the enclosing frames.
func (f *FunctionDef) QName() string { return qname(f, f.Name) }

// AsyncFunctionDef is an "async def" definition.
type AsyncFunctionDef struct {
	FunctionDef
}

func NewAsyncFunctionDef(name, doc string, line, col int) *AsyncFunctionDef {
	return &AsyncFunctionDef{FunctionDef{base: at(line, col), Name: name, Doc: doc}}
}

func (f *AsyncFunctionDef) PostInit(decorators, args, returns Node, body []Node) {
	f.init(decorators, args, returns, body)
	adopt(f, f.Decorators, f.Args, f.Returns)
	adoptAll(f, f.Body)
}

func (f *AsyncFunctionDef) Kind() Kind { return KindAsyncFunctionDef }

func (f *AsyncFunctionDef) Recreate(vs []FieldValue) Node {
	want(KindAsyncFunctionDef, vs, 4)
	c := *f
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].Node, vs[3].List)

	return &c
}

// QName reports the dotted name qualified by the enclosing frames.
func (f *AsyncFunctionDef) QName() string { return qname(f, f.Name) }

// ClassDef is a class definition. Keywords carries the py3 class keyword
// arguments (metaclass and friends).
type ClassDef struct {
	base

	Name       string
	Doc        string
	Decorators Node
	Bases      []Node
	Keywords   []Node
	Body       []Node
}

func NewClassDef(name, doc string, line, col int) *ClassDef {
	return &ClassDef{base: at(line, col), Name: name, Doc: doc}
}

func (cd *ClassDef) PostInit(decorators Node, bases, keywords, body []Node) {
	cd.init(decorators, bases, keywords, body)
	adopt(cd, cd.Decorators)
	adoptAll(cd, cd.Bases, cd.Keywords, cd.Body)
}

func (cd *ClassDef) init(decorators Node, bases, keywords, body []Node) {
	cd.Decorators = child(KindClassDef, "decorators", decorators)
	cd.Bases = seq(bases)
	cd.Keywords = seq(keywords)
	cd.Body = seq(body)
}

func (cd *ClassDef) Kind() Kind { return KindClassDef }

func (cd *ClassDef) ChildFields() []Field {
	return []Field{
		nodeField(KindClassDef, "decorators", cd.Decorators),
		seqField(KindClassDef, "bases", cd.Bases),
		seqField(KindClassDef, "keywords", cd.Keywords),
		seqField(KindClassDef, "body", cd.Body),
	}
}

func (cd *ClassDef) Attrs() []Attr {
	return []Attr{{"name", cd.Name}, {"doc", cd.Doc}}
}

func (cd *ClassDef) Recreate(vs []FieldValue) Node {
	want(KindClassDef, vs, 4)
	c := *cd
	c.detach()
	c.init(vs[0].Node, vs[1].List, vs[2].List, vs[3].List)

	return &c
}

// QName reports the dotted name qualified by the enclosing frames.
func (cd *ClassDef) QName() string { return qname(cd, cd.Name) }

// Comprehension is one "for target in iter if cond" clause of a
// comprehension expression.
type Comprehension struct {
	base

	Async  bool
	Target Node
	Iter   Node
	Ifs    []Node
}

func NewComprehension(async bool) *Comprehension {
	return &Comprehension{Async: async}
}

func (cp *Comprehension) PostInit(target, iter Node, ifs []Node) {
	cp.init(target, iter, ifs)
	adopt(cp, cp.Target, cp.Iter)
	adoptAll(cp, cp.Ifs)
}

func (cp *Comprehension) init(target, iter Node, ifs []Node) {
	cp.Target = child(KindComprehension, "target", target)
	cp.Iter = child(KindComprehension, "iter", iter)
	cp.Ifs = seq(ifs)
}

func (cp *Comprehension) Kind() Kind { return KindComprehension }

func (cp *Comprehension) ChildFields() []Field {
	return []Field{
		nodeField(KindComprehension, "target", cp.Target),
		nodeField(KindComprehension, "iter", cp.Iter),
		seqField(KindComprehension, "ifs", cp.Ifs),
	}
}

func (cp *Comprehension) Attrs() []Attr { return []Attr{{"is_async", cp.Async}} }

func (cp *Comprehension) Recreate(vs []FieldValue) Node {
	want(KindComprehension, vs, 3)
	c := *cp
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].List)

	return &c
}

// ListComp is a list comprehension.
type ListComp struct {
	base

	Elt        Node
	Generators []Node
}

func NewListComp(line, col int) *ListComp {
	return &ListComp{base: at(line, col)}
}

func (n *ListComp) PostInit(elt Node, generators []Node) {
	n.init(elt, generators)
	adopt(n, n.Elt)
	adoptAll(n, n.Generators)
}

func (n *ListComp) init(elt Node, generators []Node) {
	n.Elt = child(KindListComp, "elt", elt)
	n.Generators = seq(generators)
}

func (n *ListComp) Kind() Kind { return KindListComp }

func (n *ListComp) ChildFields() []Field {
	return []Field{
		nodeField(KindListComp, "elt", n.Elt),
		seqField(KindListComp, "generators", n.Generators),
	}
}

func (n *ListComp) Recreate(vs []FieldValue) Node {
	want(KindListComp, vs, 2)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].List)

	return &c
}

// SetComp is a set comprehension.
type SetComp struct {
	base

	Elt        Node
	Generators []Node
}

func NewSetComp(line, col int) *SetComp {
	return &SetComp{base: at(line, col)}
}

func (n *SetComp) PostInit(elt Node, generators []Node) {
	n.init(elt, generators)
	adopt(n, n.Elt)
	adoptAll(n, n.Generators)
}

func (n *SetComp) init(elt Node, generators []Node) {
	n.Elt = child(KindSetComp, "elt", elt)
	n.Generators = seq(generators)
}

func (n *SetComp) Kind() Kind { return KindSetComp }

func (n *SetComp) ChildFields() []Field {
	return []Field{
		nodeField(KindSetComp, "elt", n.Elt),
		seqField(KindSetComp, "generators", n.Generators),
	}
}

func (n *SetComp) Recreate(vs []FieldValue) Node {
	want(KindSetComp, vs, 2)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].List)

	return &c
}

// GeneratorExp is a generator expression.
type GeneratorExp struct {
	base

	Elt        Node
	Generators []Node
}

func NewGeneratorExp(line, col int) *GeneratorExp {
	return &GeneratorExp{base: at(line, col)}
}

func (n *GeneratorExp) PostInit(elt Node, generators []Node) {
	n.init(elt, generators)
	adopt(n, n.Elt)
	adoptAll(n, n.Generators)
}

func (n *GeneratorExp) init(elt Node, generators []Node) {
	n.Elt = child(KindGeneratorExp, "elt", elt)
	n.Generators = seq(generators)
}

func (n *GeneratorExp) Kind() Kind { return KindGeneratorExp }

func (n *GeneratorExp) ChildFields() []Field {
	return []Field{
		nodeField(KindGeneratorExp, "elt", n.Elt),
		seqField(KindGeneratorExp, "generators", n.Generators),
	}
}

func (n *GeneratorExp) Recreate(vs []FieldValue) Node {
	want(KindGeneratorExp, vs, 2)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].List)

	return &c
}

// DictComp is a dict comprehension.
type DictComp struct {
	base

	Key        Node
	Value      Node
	Generators []Node
}

func NewDictComp(line, col int) *DictComp {
	return &DictComp{base: at(line, col)}
}

func (n *DictComp) PostInit(key, value Node, generators []Node) {
	n.init(key, value, generators)
	adopt(n, n.Key, n.Value)
	adoptAll(n, n.Generators)
}

func (n *DictComp) init(key, value Node, generators []Node) {
	n.Key = child(KindDictComp, "key", key)
	n.Value = child(KindDictComp, "value", value)
	n.Generators = seq(generators)
}

func (n *DictComp) Kind() Kind { return KindDictComp }

func (n *DictComp) ChildFields() []Field {
	return []Field{
		nodeField(KindDictComp, "key", n.Key),
		nodeField(KindDictComp, "value", n.Value),
		seqField(KindDictComp, "generators", n.Generators),
	}
}

func (n *DictComp) Recreate(vs []FieldValue) Node {
	want(KindDictComp, vs, 3)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].List)

	return &c
}

// qname builds the dotted name of a definition by walking the enclosing
// frames. Lambdas contribute nothing and stop the walk.
func qname(n Node, name string) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch f := p.(type) {
		case *Module:
			if f.Name == "" {
				return name
			}

			return f.Name + "." + name
		case *FunctionDef:
			return qname(f, f.Name) + "." + name
		case *AsyncFunctionDef:
			return qname(f, f.Name) + "." + name
		case *ClassDef:
			return qname(f, f.Name) + "." + name
		case *Lambda:
			return name
		}
	}

	return name
}

func argNames(args Node) []string {
	a, ok := args.(*Arguments)
	if !ok {
		return nil
	}

	var out []string

	collect := func(ns []Node) {
		for _, n := range ns {
			if p, ok := n.(*Parameter); ok {
				out = append(out, p.Name)
			}
		}
	}

	collect(a.PosOnlyArgs)
	collect(a.Args)

	if p, ok := a.Vararg.(*Parameter); ok {
		out = append(out, p.Name)
	}

	collect(a.KwOnlyArgs)

	if p, ok := a.Kwarg.(*Parameter); ok {
		out = append(out, p.Name)
	}

	return out
}
