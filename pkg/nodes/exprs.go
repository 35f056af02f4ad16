package nodes

import "fmt"

// Context classifies how an expression participates in a statement: read,
// write or delete.
type Context int

const (
	Load Context = iota
	Store
	Del
)

func (c Context) String() string {
	switch c {
	case Store:
		return "Store"
	case Del:
		return "Del"
	default:
		return "Load"
	}
}

// want guards Recreate alignment: the value slice must match the declared
// field count exactly.
func want(k Kind, vs []FieldValue, n int) {
	if len(vs) != n {
		panic(fmt.Sprintf("nodes: %s recreated with %d field values, want %d", k, len(vs), n))
	}
}

// Name is a read reference to an identifier.
type Name struct {
	base

	Name string
}

func NewName(name string, line, col int) *Name {
	return &Name{base: at(line, col), Name: name}
}

func (n *Name) Kind() Kind { return KindName }

func (n *Name) ChildFields() []Field { return nil }

func (n *Name) Attrs() []Attr { return []Attr{{"name", n.Name}} }

func (n *Name) Recreate(vs []FieldValue) Node {
	want(KindName, vs, 0)
	c := *n
	c.detach()

	return &c
}

// AssignName is an identifier in a write position.
type AssignName struct {
	base

	Name string
}

func NewAssignName(name string, line, col int) *AssignName {
	return &AssignName{base: at(line, col), Name: name}
}

func (n *AssignName) Kind() Kind { return KindAssignName }

func (n *AssignName) ChildFields() []Field { return nil }

func (n *AssignName) Attrs() []Attr { return []Attr{{"name", n.Name}} }

func (n *AssignName) Recreate(vs []FieldValue) Node {
	want(KindAssignName, vs, 0)
	c := *n
	c.detach()

	return &c
}

// DelName is an identifier in a delete position.
type DelName struct {
	base

	Name string
}

func NewDelName(name string, line, col int) *DelName {
	return &DelName{base: at(line, col), Name: name}
}

func (n *DelName) Kind() Kind { return KindDelName }

func (n *DelName) ChildFields() []Field { return nil }

func (n *DelName) Attrs() []Attr { return []Attr{{"name", n.Name}} }

func (n *DelName) Recreate(vs []FieldValue) Node {
	want(KindDelName, vs, 0)
	c := *n
	c.detach()

	return &c
}

// Attribute is a read attribute access, "expr.attr".
type Attribute struct {
	base

	AttrName string
	Expr     Node
}

func NewAttribute(attrname string, line, col int) *Attribute {
	return &Attribute{base: at(line, col), AttrName: attrname}
}

// PostInit attaches the object expression.
func (n *Attribute) PostInit(expr Node) {
	n.init(expr)
	adopt(n, n.Expr)
}

func (n *Attribute) init(expr Node) {
	n.Expr = child(KindAttribute, "expr", expr)
}

func (n *Attribute) Kind() Kind { return KindAttribute }

func (n *Attribute) ChildFields() []Field {
	return []Field{nodeField(KindAttribute, "expr", n.Expr)}
}

func (n *Attribute) Attrs() []Attr { return []Attr{{"attrname", n.AttrName}} }

func (n *Attribute) Recreate(vs []FieldValue) Node {
	want(KindAttribute, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// AssignAttr is an attribute access in a write position.
type AssignAttr struct {
	base

	AttrName string
	Expr     Node
}

func NewAssignAttr(attrname string, line, col int) *AssignAttr {
	return &AssignAttr{base: at(line, col), AttrName: attrname}
}

func (n *AssignAttr) PostInit(expr Node) {
	n.init(expr)
	adopt(n, n.Expr)
}

func (n *AssignAttr) init(expr Node) {
	n.Expr = child(KindAssignAttr, "expr", expr)
}

func (n *AssignAttr) Kind() Kind { return KindAssignAttr }

func (n *AssignAttr) ChildFields() []Field {
	return []Field{nodeField(KindAssignAttr, "expr", n.Expr)}
}

func (n *AssignAttr) Attrs() []Attr { return []Attr{{"attrname", n.AttrName}} }

func (n *AssignAttr) Recreate(vs []FieldValue) Node {
	want(KindAssignAttr, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// DelAttr is an attribute access in a delete position.
type DelAttr struct {
	base

	AttrName string
	Expr     Node
}

func NewDelAttr(attrname string, line, col int) *DelAttr {
	return &DelAttr{base: at(line, col), AttrName: attrname}
}

func (n *DelAttr) PostInit(expr Node) {
	n.init(expr)
	adopt(n, n.Expr)
}

func (n *DelAttr) init(expr Node) {
	n.Expr = child(KindDelAttr, "expr", expr)
}

func (n *DelAttr) Kind() Kind { return KindDelAttr }

func (n *DelAttr) ChildFields() []Field {
	return []Field{nodeField(KindDelAttr, "expr", n.Expr)}
}

func (n *DelAttr) Attrs() []Attr { return []Attr{{"attrname", n.AttrName}} }

func (n *DelAttr) Recreate(vs []FieldValue) Node {
	want(KindDelAttr, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// Const is a literal constant: number, string or bytes. Value holds the
// decoded form when one is representable, Raw always holds the source
// spelling.
type Const struct {
	base

	Value any
	Raw   string
}

func NewConst(value any, raw string, line, col int) *Const {
	return &Const{base: at(line, col), Value: value, Raw: raw}
}

func (n *Const) Kind() Kind { return KindConst }

func (n *Const) ChildFields() []Field { return nil }

func (n *Const) Attrs() []Attr {
	return []Attr{{"value", n.Value}, {"raw", n.Raw}}
}

func (n *Const) Recreate(vs []FieldValue) Node {
	want(KindConst, vs, 0)
	c := *n
	c.detach()

	return &c
}

// NotImplemented is the value a NameConstant carries for Python's
// NotImplemented singleton.
var NotImplemented any = &struct{ name string }{"NotImplemented"}

// NameConstant is one of the reserved singletons: True, False, None or
// NotImplemented. Value is bool, nil or NotImplemented.
type NameConstant struct {
	base

	Value any
}

func NewNameConstant(value any, line, col int) *NameConstant {
	return &NameConstant{base: at(line, col), Value: value}
}

func (n *NameConstant) Kind() Kind { return KindNameConstant }

func (n *NameConstant) ChildFields() []Field { return nil }

func (n *NameConstant) Attrs() []Attr { return []Attr{{"value", n.Value}} }

func (n *NameConstant) Recreate(vs []FieldValue) Node {
	want(KindNameConstant, vs, 0)
	c := *n
	c.detach()

	return &c
}

// Call is a call expression with positional and keyword arguments. Iterable
// unpacking appears as Starred entries in Args, mapping unpacking as
// Keyword entries with an empty Arg.
type Call struct {
	base

	Func     Node
	Args     []Node
	Keywords []Node
}

func NewCall(line, col int) *Call { return &Call{base: at(line, col)} }

// PostInit attaches the callee and the argument lists.
func (n *Call) PostInit(fn Node, args, keywords []Node) {
	n.init(fn, args, keywords)
	adopt(n, n.Func)
	adoptAll(n, n.Args, n.Keywords)
}

func (n *Call) init(fn Node, args, keywords []Node) {
	n.Func = child(KindCall, "func", fn)
	n.Args = seq(args)
	n.Keywords = seq(keywords)
}

func (n *Call) Kind() Kind { return KindCall }

func (n *Call) ChildFields() []Field {
	return []Field{
		nodeField(KindCall, "func", n.Func),
		seqField(KindCall, "args", n.Args),
		seqField(KindCall, "keywords", n.Keywords),
	}
}

func (n *Call) Recreate(vs []FieldValue) Node {
	want(KindCall, vs, 3)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].List, vs[2].List)

	return &c
}

// Keyword is one "name=value" argument of a call. An empty Arg marks a
// "**mapping" unpacking entry.
type Keyword struct {
	base

	Arg   string
	Value Node
}

func NewKeyword(arg string, line, col int) *Keyword {
	return &Keyword{base: at(line, col), Arg: arg}
}

func (n *Keyword) PostInit(value Node) {
	n.init(value)
	adopt(n, n.Value)
}

func (n *Keyword) init(value Node) {
	n.Value = child(KindKeyword, "value", value)
}

func (n *Keyword) Kind() Kind { return KindKeyword }

func (n *Keyword) ChildFields() []Field {
	return []Field{nodeField(KindKeyword, "value", n.Value)}
}

// Attrs reports the arg name, or nil for a "**mapping" entry so dumps
// render it as None.
func (n *Keyword) Attrs() []Attr {
	if n.Arg == "" {
		return []Attr{{"arg", nil}}
	}

	return []Attr{{"arg", n.Arg}}
}

func (n *Keyword) Recreate(vs []FieldValue) Node {
	want(KindKeyword, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// Starred is a "*value" expression.
type Starred struct {
	base

	Ctx   Context
	Value Node
}

func NewStarred(ctx Context, line, col int) *Starred {
	return &Starred{base: at(line, col), Ctx: ctx}
}

func (n *Starred) PostInit(value Node) {
	n.init(value)
	adopt(n, n.Value)
}

func (n *Starred) init(value Node) {
	n.Value = child(KindStarred, "value", value)
}

func (n *Starred) Kind() Kind { return KindStarred }

func (n *Starred) ChildFields() []Field {
	return []Field{nodeField(KindStarred, "value", n.Value)}
}

func (n *Starred) Attrs() []Attr { return []Attr{{"ctx", n.Ctx}} }

func (n *Starred) Recreate(vs []FieldValue) Node {
	want(KindStarred, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// BinOp is a binary arithmetic or bitwise operation.
type BinOp struct {
	base

	Op    string
	Left  Node
	Right Node
}

func NewBinOp(op string, line, col int) *BinOp {
	return &BinOp{base: at(line, col), Op: op}
}

func (n *BinOp) PostInit(left, right Node) {
	n.init(left, right)
	adopt(n, n.Left, n.Right)
}

func (n *BinOp) init(left, right Node) {
	n.Left = child(KindBinOp, "left", left)
	n.Right = child(KindBinOp, "right", right)
}

func (n *BinOp) Kind() Kind { return KindBinOp }

func (n *BinOp) ChildFields() []Field {
	return []Field{
		nodeField(KindBinOp, "left", n.Left),
		nodeField(KindBinOp, "right", n.Right),
	}
}

func (n *BinOp) Attrs() []Attr { return []Attr{{"op", n.Op}} }

func (n *BinOp) Recreate(vs []FieldValue) Node {
	want(KindBinOp, vs, 2)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].Node)

	return &c
}

// BoolOp is an "and"/"or" chain with two or more operands.
type BoolOp struct {
	base

	Op     string
	Values []Node
}

func NewBoolOp(op string, line, col int) *BoolOp {
	return &BoolOp{base: at(line, col), Op: op}
}

func (n *BoolOp) PostInit(values []Node) {
	n.init(values)
	adoptAll(n, n.Values)
}

func (n *BoolOp) init(values []Node) { n.Values = seq(values) }

func (n *BoolOp) Kind() Kind { return KindBoolOp }

func (n *BoolOp) ChildFields() []Field {
	return []Field{seqField(KindBoolOp, "values", n.Values)}
}

func (n *BoolOp) Attrs() []Attr { return []Attr{{"op", n.Op}} }

func (n *BoolOp) Recreate(vs []FieldValue) Node {
	want(KindBoolOp, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].List)

	return &c
}

// UnaryOp is a unary operation.
type UnaryOp struct {
	base

	Op      string
	Operand Node
}

func NewUnaryOp(op string, line, col int) *UnaryOp {
	return &UnaryOp{base: at(line, col), Op: op}
}

func (n *UnaryOp) PostInit(operand Node) {
	n.init(operand)
	adopt(n, n.Operand)
}

func (n *UnaryOp) init(operand Node) {
	n.Operand = child(KindUnaryOp, "operand", operand)
}

func (n *UnaryOp) Kind() Kind { return KindUnaryOp }

func (n *UnaryOp) ChildFields() []Field {
	return []Field{nodeField(KindUnaryOp, "operand", n.Operand)}
}

func (n *UnaryOp) Attrs() []Attr { return []Attr{{"op", n.Op}} }

func (n *UnaryOp) Recreate(vs []FieldValue) Node {
	want(KindUnaryOp, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// Compare is a comparison chain: one left operand, then pairwise operators
// and comparators. Ops and Comparators always have equal length.
type Compare struct {
	base

	Ops         []string
	Left        Node
	Comparators []Node
}

func NewCompare(ops []string, line, col int) *Compare {
	return &Compare{base: at(line, col), Ops: ops}
}

func (n *Compare) PostInit(left Node, comparators []Node) {
	n.init(left, comparators)
	adopt(n, n.Left)
	adoptAll(n, n.Comparators)
}

func (n *Compare) init(left Node, comparators []Node) {
	n.Left = child(KindCompare, "left", left)
	n.Comparators = seq(comparators)
}

func (n *Compare) Kind() Kind { return KindCompare }

func (n *Compare) ChildFields() []Field {
	return []Field{
		nodeField(KindCompare, "left", n.Left),
		seqField(KindCompare, "comparators", n.Comparators),
	}
}

func (n *Compare) Attrs() []Attr { return []Attr{{"ops", n.Ops}} }

func (n *Compare) Recreate(vs []FieldValue) Node {
	want(KindCompare, vs, 2)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].List)

	return &c
}

// IfExp is a conditional expression, "body if test else orelse".
type IfExp struct {
	base

	Test   Node
	Body   Node
	OrElse Node
}

func NewIfExp(line, col int) *IfExp { return &IfExp{base: at(line, col)} }

func (n *IfExp) PostInit(test, body, orelse Node) {
	n.init(test, body, orelse)
	adopt(n, n.Test, n.Body, n.OrElse)
}

func (n *IfExp) init(test, body, orelse Node) {
	n.Test = child(KindIfExp, "test", test)
	n.Body = child(KindIfExp, "body", body)
	n.OrElse = child(KindIfExp, "orelse", orelse)
}

func (n *IfExp) Kind() Kind { return KindIfExp }

func (n *IfExp) ChildFields() []Field {
	return []Field{
		nodeField(KindIfExp, "test", n.Test),
		nodeField(KindIfExp, "body", n.Body),
		nodeField(KindIfExp, "orelse", n.OrElse),
	}
}

func (n *IfExp) Recreate(vs []FieldValue) Node {
	want(KindIfExp, vs, 3)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].Node)

	return &c
}

// Dict is a dictionary display. Keys and Values are parallel; a DictUnpack
// key marks a "**mapping" entry.
type Dict struct {
	base

	Keys   []Node
	Values []Node
}

func NewDict(line, col int) *Dict { return &Dict{base: at(line, col)} }

func (n *Dict) PostInit(keys, values []Node) {
	n.init(keys, values)
	adoptAll(n, n.Keys, n.Values)
}

func (n *Dict) init(keys, values []Node) {
	n.Keys = seq(keys)
	n.Values = seq(values)
}

func (n *Dict) Kind() Kind { return KindDict }

func (n *Dict) ChildFields() []Field {
	return []Field{
		seqField(KindDict, "keys", n.Keys),
		seqField(KindDict, "values", n.Values),
	}
}

func (n *Dict) Recreate(vs []FieldValue) Node {
	want(KindDict, vs, 2)
	c := *n
	c.detach()
	c.init(vs[0].List, vs[1].List)

	return &c
}

// DictUnpack is the placeholder key of a "**mapping" entry in a Dict.
type DictUnpack struct {
	base
}

func NewDictUnpack(line, col int) *DictUnpack {
	return &DictUnpack{base: at(line, col)}
}

func (n *DictUnpack) Kind() Kind { return KindDictUnpack }

func (n *DictUnpack) ChildFields() []Field { return nil }

func (n *DictUnpack) Recreate(vs []FieldValue) Node {
	want(KindDictUnpack, vs, 0)
	c := *n
	c.detach()

	return &c
}

// List is a list display.
type List struct {
	base

	Elts []Node
}

func NewList(line, col int) *List { return &List{base: at(line, col)} }

func (n *List) PostInit(elts []Node) {
	n.init(elts)
	adoptAll(n, n.Elts)
}

func (n *List) init(elts []Node) { n.Elts = seq(elts) }

func (n *List) Kind() Kind { return KindList }

func (n *List) ChildFields() []Field {
	return []Field{seqField(KindList, "elts", n.Elts)}
}

func (n *List) Recreate(vs []FieldValue) Node {
	want(KindList, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].List)

	return &c
}

// Set is a set display.
type Set struct {
	base

	Elts []Node
}

func NewSet(line, col int) *Set { return &Set{base: at(line, col)} }

func (n *Set) PostInit(elts []Node) {
	n.init(elts)
	adoptAll(n, n.Elts)
}

func (n *Set) init(elts []Node) { n.Elts = seq(elts) }

func (n *Set) Kind() Kind { return KindSet }

func (n *Set) ChildFields() []Field {
	return []Field{seqField(KindSet, "elts", n.Elts)}
}

func (n *Set) Recreate(vs []FieldValue) Node {
	want(KindSet, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].List)

	return &c
}

// Tuple is a tuple display.
type Tuple struct {
	base

	Elts []Node
}

func NewTuple(line, col int) *Tuple { return &Tuple{base: at(line, col)} }

func (n *Tuple) PostInit(elts []Node) {
	n.init(elts)
	adoptAll(n, n.Elts)
}

func (n *Tuple) init(elts []Node) { n.Elts = seq(elts) }

func (n *Tuple) Kind() Kind { return KindTuple }

func (n *Tuple) ChildFields() []Field {
	return []Field{seqField(KindTuple, "elts", n.Elts)}
}

func (n *Tuple) Recreate(vs []FieldValue) Node {
	want(KindTuple, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].List)

	return &c
}

// Subscript is "value[slice]".
type Subscript struct {
	base

	Value Node
	Slice Node
}

func NewSubscript(line, col int) *Subscript {
	return &Subscript{base: at(line, col)}
}

func (n *Subscript) PostInit(value, slice Node) {
	n.init(value, slice)
	adopt(n, n.Value, n.Slice)
}

func (n *Subscript) init(value, slice Node) {
	n.Value = child(KindSubscript, "value", value)
	n.Slice = child(KindSubscript, "slice", slice)
}

func (n *Subscript) Kind() Kind { return KindSubscript }

func (n *Subscript) ChildFields() []Field {
	return []Field{
		nodeField(KindSubscript, "value", n.Value),
		nodeField(KindSubscript, "slice", n.Slice),
	}
}

func (n *Subscript) Recreate(vs []FieldValue) Node {
	want(KindSubscript, vs, 2)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].Node)

	return &c
}

// Index is a plain subscript index.
type Index struct {
	base

	Value Node
}

func NewIndex(line, col int) *Index { return &Index{base: at(line, col)} }

func (n *Index) PostInit(value Node) {
	n.init(value)
	adopt(n, n.Value)
}

func (n *Index) init(value Node) {
	n.Value = child(KindIndex, "value", value)
}

func (n *Index) Kind() Kind { return KindIndex }

func (n *Index) ChildFields() []Field {
	return []Field{nodeField(KindIndex, "value", n.Value)}
}

func (n *Index) Recreate(vs []FieldValue) Node {
	want(KindIndex, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// Slice is a "lower:upper:step" subscript; absent parts are Empty.
type Slice struct {
	base

	Lower Node
	Upper Node
	Step  Node
}

func NewSlice(line, col int) *Slice { return &Slice{base: at(line, col)} }

func (n *Slice) PostInit(lower, upper, step Node) {
	n.init(lower, upper, step)
	adopt(n, n.Lower, n.Upper, n.Step)
}

func (n *Slice) init(lower, upper, step Node) {
	n.Lower = child(KindSlice, "lower", lower)
	n.Upper = child(KindSlice, "upper", upper)
	n.Step = child(KindSlice, "step", step)
}

func (n *Slice) Kind() Kind { return KindSlice }

func (n *Slice) ChildFields() []Field {
	return []Field{
		nodeField(KindSlice, "lower", n.Lower),
		nodeField(KindSlice, "upper", n.Upper),
		nodeField(KindSlice, "step", n.Step),
	}
}

func (n *Slice) Recreate(vs []FieldValue) Node {
	want(KindSlice, vs, 3)
	c := *n
	c.detach()
	c.init(vs[0].Node, vs[1].Node, vs[2].Node)

	return &c
}

// ExtSlice is a subscript with multiple slice dimensions.
type ExtSlice struct {
	base

	Dims []Node
}

func NewExtSlice(line, col int) *ExtSlice {
	return &ExtSlice{base: at(line, col)}
}

func (n *ExtSlice) PostInit(dims []Node) {
	n.init(dims)
	adoptAll(n, n.Dims)
}

func (n *ExtSlice) init(dims []Node) { n.Dims = seq(dims) }

func (n *ExtSlice) Kind() Kind { return KindExtSlice }

func (n *ExtSlice) ChildFields() []Field {
	return []Field{seqField(KindExtSlice, "dims", n.Dims)}
}

func (n *ExtSlice) Recreate(vs []FieldValue) Node {
	want(KindExtSlice, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].List)

	return &c
}

// Await is an "await value" expression.
type Await struct {
	base

	Value Node
}

func NewAwait(line, col int) *Await { return &Await{base: at(line, col)} }

func (n *Await) PostInit(value Node) {
	n.init(value)
	adopt(n, n.Value)
}

func (n *Await) init(value Node) {
	n.Value = child(KindAwait, "value", value)
}

func (n *Await) Kind() Kind { return KindAwait }

func (n *Await) ChildFields() []Field {
	return []Field{nodeField(KindAwait, "value", n.Value)}
}

func (n *Await) Recreate(vs []FieldValue) Node {
	want(KindAwait, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// Yield is a "yield value" expression; Value is Empty for a bare yield.
type Yield struct {
	base

	Value Node
}

func NewYield(line, col int) *Yield { return &Yield{base: at(line, col)} }

func (n *Yield) PostInit(value Node) {
	n.init(value)
	adopt(n, n.Value)
}

func (n *Yield) init(value Node) {
	n.Value = child(KindYield, "value", value)
}

func (n *Yield) Kind() Kind { return KindYield }

func (n *Yield) ChildFields() []Field {
	return []Field{nodeField(KindYield, "value", n.Value)}
}

func (n *Yield) Recreate(vs []FieldValue) Node {
	want(KindYield, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// YieldFrom is a "yield from value" expression.
type YieldFrom struct {
	base

	Value Node
}

func NewYieldFrom(line, col int) *YieldFrom {
	return &YieldFrom{base: at(line, col)}
}

func (n *YieldFrom) PostInit(value Node) {
	n.init(value)
	adopt(n, n.Value)
}

func (n *YieldFrom) init(value Node) {
	n.Value = child(KindYieldFrom, "value", value)
}

func (n *YieldFrom) Kind() Kind { return KindYieldFrom }

func (n *YieldFrom) ChildFields() []Field {
	return []Field{nodeField(KindYieldFrom, "value", n.Value)}
}

func (n *YieldFrom) Recreate(vs []FieldValue) Node {
	want(KindYieldFrom, vs, 1)
	c := *n
	c.detach()
	c.init(vs[0].Node)

	return &c
}

// Ellipsis is the "..." literal.
type Ellipsis struct {
	base
}

func NewEllipsis(line, col int) *Ellipsis {
	return &Ellipsis{base: at(line, col)}
}

func (n *Ellipsis) Kind() Kind { return KindEllipsis }

func (n *Ellipsis) ChildFields() []Field { return nil }

func (n *Ellipsis) Recreate(vs []FieldValue) Node {
	want(KindEllipsis, vs, 0)
	c := *n
	c.detach()

	return &c
}
