// Package zipper provides a persistent cursor over a nodes tree. A cursor
// pairs a focus (a single node or an ordered sibling sequence) with an
// immutable path of linked frames recording left siblings, right siblings
// and the ancestor chain.
//
// Every operation is pure: movements return a new cursor or nil when no
// destination exists, and edits produce new nodes on the way up instead of
// mutating the tree. Cursors taken before an edit remain valid, which
// makes snapshots and undo a matter of keeping an old cursor around.
package zipper

import (
	"iter"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
)

// cell is one immutable link of a sibling list, nearest sibling first.
type cell struct {
	v    nodes.FieldValue
	next *cell
}

func push(v nodes.FieldValue, next *cell) *cell { return &cell{v: v, next: next} }

// path records how a focus was reached: its siblings, the focus it was
// entered from, that focus's own path, and whether anything below or
// beside was replaced since the last reconstruction.
type path struct {
	left    *cell
	right   *cell
	parent  nodes.FieldValue
	pp      *path
	changed bool
}

func (p *path) withChanged() *path {
	if p == nil || p.changed {
		return p
	}

	c := *p
	c.changed = true

	return &c
}

// Cursor is a location in a tree. The zero value is not usable; start
// from New.
type Cursor struct {
	focus nodes.FieldValue
	path  *path
}

// New creates a root cursor focused on n.
func New(n nodes.Node) *Cursor {
	return &Cursor{focus: nodes.NodeValue(n)}
}

// NewSeq creates a root cursor focused on a sibling sequence.
func NewSeq(ns []nodes.Node) *Cursor {
	return &Cursor{focus: nodes.SeqValue(ns)}
}

// Node reports the focused node, or nil when the focus is a sequence.
func (c *Cursor) Node() nodes.Node {
	if c.focus.IsSeq() {
		return nil
	}

	return c.focus.Node
}

// Seq reports the focused sequence, or nil when the focus is a single
// node.
func (c *Cursor) Seq() []nodes.Node {
	if !c.focus.IsSeq() {
		return nil
	}

	return c.focus.List
}

// IsSeq reports whether the focus is a sibling sequence.
func (c *Cursor) IsSeq() bool { return c.focus.IsSeq() }

// Left moves to the previous sibling, or nil at the leftmost position.
func (c *Cursor) Left() *Cursor {
	if c.path == nil || c.path.left == nil {
		return nil
	}

	p := *c.path
	p.right = push(c.focus, c.path.right)
	p.left = c.path.left.next

	return &Cursor{focus: c.path.left.v, path: &p}
}

// Right moves to the next sibling, or nil at the rightmost position.
func (c *Cursor) Right() *Cursor {
	if c.path == nil || c.path.right == nil {
		return nil
	}

	p := *c.path
	p.left = push(c.focus, c.path.left)
	p.right = c.path.right.next

	return &Cursor{focus: c.path.right.v, path: &p}
}

// Leftmost moves to the first sibling, possibly the cursor itself.
func (c *Cursor) Leftmost() *Cursor {
	cur := c
	for l := cur.Left(); l != nil; l = cur.Left() {
		cur = l
	}

	return cur
}

// Rightmost moves to the last sibling, possibly the cursor itself.
func (c *Cursor) Rightmost() *Cursor {
	cur := c
	for r := cur.Right(); r != nil; r = cur.Right() {
		cur = r
	}

	return cur
}

// Down moves to the first child slot of the focus: the first declared
// field value of a node, or the first element of a sequence. It returns
// nil when the focus has no children. Empty placeholders count as
// children, so callers walking blindly must expect Empty foci.
func (c *Cursor) Down() *Cursor {
	children := childValues(c.focus)
	if len(children) == 0 {
		return nil
	}

	var right *cell
	for i := len(children) - 1; i >= 1; i-- {
		right = push(children[i], right)
	}

	return &Cursor{
		focus: children[0],
		path: &path{
			right:  right,
			parent: c.focus,
			pp:     c.path,
		},
	}
}

// Up moves to the parent focus. With no edits below this is O(1) and
// yields the original ancestor unchanged; otherwise the sibling sequence
// is reassembled and the ancestor re-synthesized via Recreate, with the
// dirty flag propagating upward. Children of a re-synthesized ancestor
// keep their original parent links; the zipper path, not the parent
// links, is authoritative during navigation.
func (c *Cursor) Up() *Cursor {
	p := c.path
	if p == nil {
		return nil
	}

	if !p.changed {
		return &Cursor{focus: p.parent, path: p.pp}
	}

	values := assemble(p.left, c.focus, p.right)

	var focus nodes.FieldValue
	if p.parent.IsSeq() {
		ns := make([]nodes.Node, len(values))
		for i, v := range values {
			ns[i] = v.Node
		}

		focus = nodes.SeqValue(ns)
	} else {
		focus = nodes.NodeValue(p.parent.Node.Recreate(values))
	}

	return &Cursor{focus: focus, path: p.pp.withChanged()}
}

// Root moves to the topmost focus, reconstructing edited ancestors along
// the way.
func (c *Cursor) Root() *Cursor {
	cur := c
	for u := cur.Up(); u != nil; u = cur.Up() {
		cur = u
	}

	return cur
}

// Replace substitutes the focused node and marks the path dirty. The
// previous focus stays valid and unaffected.
func (c *Cursor) Replace(n nodes.Node) *Cursor {
	return &Cursor{focus: nodes.NodeValue(n), path: c.path.withChanged()}
}

// ReplaceSeq substitutes the focused sibling sequence; the new sequence
// may have a different length.
func (c *Cursor) ReplaceSeq(ns []nodes.Node) *Cursor {
	return &Cursor{focus: nodes.SeqValue(ns), path: c.path.withChanged()}
}

// Children yields the child cursors of the focus, left to right. The
// sequence is lazy and restartable per call.
func (c *Cursor) Children() iter.Seq[*Cursor] {
	return func(yield func(*Cursor) bool) {
		for ch := c.Down(); ch != nil; ch = ch.Right() {
			if !yield(ch) {
				return
			}
		}
	}
}

// CommonAncestor walks both cursors' ancestor chains from the root inward
// and returns a cursor at the last focus the chains share, comparing node
// identity. Sequence foci take part in the chains, so two siblings in the
// same body meet at the sequence holding them rather than at the node
// above it. Empty placeholders and empty sequences never count as shared.
// It returns nil when the cursors have no common root.
func (c *Cursor) CommonAncestor(o *Cursor) *Cursor {
	ca := chainFromRoot(c)
	cb := chainFromRoot(o)

	var res *Cursor

	for i := 0; i < len(ca) && i < len(cb); i++ {
		if !sameFocus(ca[i].focus, cb[i].focus) {
			break
		}

		res = ca[i]
	}

	return res
}

func chainFromRoot(c *Cursor) []*Cursor {
	var out []*Cursor
	for cur := c; cur != nil; cur = cur.Up() {
		out = append(out, cur)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// sameFocus compares foci by identity. The Empty singleton is excluded:
// two unrelated absences are not a shared ancestor.
func sameFocus(a, b nodes.FieldValue) bool {
	if a.IsSeq() != b.IsSeq() {
		return false
	}

	if a.IsSeq() {
		return len(a.List) > 0 && len(a.List) == len(b.List) && &a.List[0] == &b.List[0]
	}

	return a.Node != nodes.Empty && a.Node == b.Node
}

func childValues(focus nodes.FieldValue) []nodes.FieldValue {
	if focus.IsSeq() {
		out := make([]nodes.FieldValue, len(focus.List))
		for i, n := range focus.List {
			out[i] = nodes.NodeValue(n)
		}

		return out
	}

	fields := focus.Node.ChildFields()
	if len(fields) == 0 {
		return nil
	}

	out := make([]nodes.FieldValue, len(fields))
	for i, f := range fields {
		out[i] = f.Value
	}

	return out
}

func assemble(left *cell, focus nodes.FieldValue, right *cell) []nodes.FieldValue {
	var reversed []nodes.FieldValue
	for l := left; l != nil; l = l.next {
		reversed = append(reversed, l.v)
	}

	out := make([]nodes.FieldValue, 0, len(reversed)+8)
	for i := len(reversed) - 1; i >= 0; i-- {
		out = append(out, reversed[i])
	}

	out = append(out, focus)
	for r := right; r != nil; r = r.next {
		out = append(out, r.v)
	}

	return out
}
