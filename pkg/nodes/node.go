// Package nodes defines the typed abstract syntax tree for Python source:
// the node variants, the Empty sentinel, structural equality, field
// introspection, line-range resolution and the textual tree dump.
//
// Nodes are built in two phases: a constructor records position and
// attributes, then PostInit attaches child fields and wires parent links.
// Reading a child field before PostInit ran is a structural contract
// violation and panics. After construction trees are treated as immutable;
// structural edits go through the zipper, which synthesizes replacement
// nodes with Recreate instead of mutating.
package nodes

import "fmt"

// Position is a 1-based source location. Line 0 marks the synthetic module
// origin.
type Position struct {
	Line int
	Col  int
}

// Node is the common interface of every tree variant, including the Empty
// sentinel.
type Node interface {
	// Kind reports the syntactic variant.
	Kind() Kind
	// Pos reports the source start position, or nil for synthesized nodes
	// that have no location of their own.
	Pos() *Position
	// Parent reports the enclosing node as wired by PostInit, or nil for a
	// root or detached node.
	Parent() Node
	// ChildFields lists the declared child slots in source order. It panics
	// when called before PostInit completed the node.
	ChildFields() []Field
	// Attrs lists the non-child attributes in declaration order.
	Attrs() []Attr
	// Recreate builds a detached copy of the node carrying the same
	// attributes and position but the given child values, aligned 1:1 with
	// ChildFields. Children keep their original parent links.
	Recreate(values []FieldValue) Node

	setParent(Node)
}

// FieldValue is the content of one child slot: exactly one of a single node
// (possibly Empty) or an ordered sequence.
type FieldValue struct {
	Node Node
	List []Node

	isSeq bool
}

// NodeValue wraps a single node as a field value.
func NodeValue(n Node) FieldValue { return FieldValue{Node: n} }

// SeqValue wraps a node sequence as a field value.
func SeqValue(ns []Node) FieldValue { return FieldValue{List: ns, isSeq: true} }

// IsSeq reports whether the slot holds a sequence rather than a single node.
func (v FieldValue) IsSeq() bool { return v.isSeq }

// Field is a named child slot of a node.
type Field struct {
	Name  string
	Value FieldValue
}

// Attr is a named non-child attribute of a node.
type Attr struct {
	Name  string
	Value any
}

// Alias is one imported name with its optional binding name, as in
// "import a.b as c".
type Alias struct {
	Name   string
	AsName string
}

type base struct {
	pos    *Position
	parent Node
}

func at(line, col int) base {
	return base{pos: &Position{Line: line, Col: col}}
}

func (b *base) Pos() *Position { return b.pos }

func (b *base) Parent() Node { return b.parent }

func (b *base) setParent(p Node) { b.parent = p }

func (b *base) Attrs() []Attr { return nil }

func (b *base) detach() { b.parent = nil }

// adopt wires n's parent link to owner. Nil and Empty children are left
// alone.
func adopt(owner Node, children ...Node) {
	for _, c := range children {
		if c != nil && c != Empty {
			c.setParent(owner)
		}
	}
}

func adoptAll(owner Node, seqs ...[]Node) {
	for _, s := range seqs {
		adopt(owner, s...)
	}
}

// child validates a single-node argument of PostInit: children are never
// nil, absence is spelled Empty.
func child(owner Kind, name string, n Node) Node {
	if n == nil {
		panic(fmt.Sprintf("nodes: %s.%s must not be nil, use Empty", owner, name))
	}

	return n
}

// seq normalizes a sequence argument of PostInit so that a completed field
// is always non-nil.
func seq(ns []Node) []Node {
	if ns == nil {
		return []Node{}
	}

	return ns
}

// nodeField builds a single-node Field, panicking when the slot was never
// completed.
func nodeField(owner Kind, name string, n Node) Field {
	if n == nil {
		panic(fmt.Sprintf("nodes: %s.%s read before PostInit", owner, name))
	}

	return Field{Name: name, Value: NodeValue(n)}
}

// seqField builds a sequence Field, panicking when the slot was never
// completed.
func seqField(owner Kind, name string, ns []Node) Field {
	if ns == nil {
		panic(fmt.Sprintf("nodes: %s.%s read before PostInit", owner, name))
	}

	return Field{Name: name, Value: SeqValue(ns)}
}

// Children yields every child slot entry of n in field order, including
// Empty placeholders. Sequence slots are flattened.
func Children(n Node) []Node {
	var out []Node

	for _, f := range n.ChildFields() {
		if f.Value.IsSeq() {
			out = append(out, f.Value.List...)
		} else {
			out = append(out, f.Value.Node)
		}
	}

	return out
}

// LastChild reports the last materialized child of n, scanning declared
// fields in reverse and skipping Empty slots and empty sequences. It
// returns nil when no child remains.
func LastChild(n Node) Node {
	fields := n.ChildFields()
	for i := len(fields) - 1; i >= 0; i-- {
		v := fields[i].Value
		if v.IsSeq() {
			if len(v.List) > 0 {
				return v.List[len(v.List)-1]
			}

			continue
		}

		if v.Node != Empty {
			return v.Node
		}
	}

	return nil
}
