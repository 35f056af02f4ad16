// Package rawtree holds the untyped concrete syntax tree produced by the
// grammar layer. A raw node records the grammar kind, the source text it
// spans, its field name under its parent and its children in source
// order. The rebuild package consumes raw trees; tests construct them by
// hand so conversion logic stays exercisable without the C grammar.
package rawtree

// Node is one concrete syntax node. Line numbers are 1-based; columns
// are 0-based byte offsets within the line.
type Node struct {
	Kind      string
	Field     string
	Text      string
	Children  []*Node
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
	Named     bool
	Missing   bool
}

// ChildByField returns the first child carrying the given field name, or
// nil.
func (n *Node) ChildByField(name string) *Node {
	for _, c := range n.Children {
		if c.Field == name {
			return c
		}
	}

	return nil
}

// ChildrenByField returns every child carrying the given field name, in
// source order.
func (n *Node) ChildrenByField(name string) []*Node {
	var out []*Node

	for _, c := range n.Children {
		if c.Field == name {
			out = append(out, c)
		}
	}

	return out
}

// NamedChildren returns the named children, skipping tokens and extras
// of the given kinds.
func (n *Node) NamedChildren(skipKinds ...string) []*Node {
	out := make([]*Node, 0, len(n.Children))

next:
	for _, c := range n.Children {
		if !c.Named {
			continue
		}

		for _, k := range skipKinds {
			if c.Kind == k {
				continue next
			}
		}

		out = append(out, c)
	}

	return out
}

// FirstOfKind returns the first child of the given kind, or nil.
func (n *Node) FirstOfKind(kind string) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}

	return nil
}

// IsError reports whether this node is a grammar error node.
func (n *Node) IsError() bool { return n.Kind == "ERROR" }

// Walk visits n and its descendants in prefix order. fn reports whether
// to descend into the visited node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, c := range n.Children {
		c.Walk(fn)
	}
}
