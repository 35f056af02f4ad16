package zipper

import (
	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
	"github.com/Sumatoshi-tech/pytree/pkg/scope"
)

// Order selects the traversal order of a Walker.
type Order int

const (
	// Preorder visits a focus before its children.
	Preorder Order = iota
	// Postorder visits a focus after its children.
	Postorder
)

// Walker steps through the subtree under a start cursor one focus at a
// time. Unlike Children it descends recursively, yielding both node and
// sequence foci. Between steps the consumer may call Swap to substitute
// the current position; traversal continues from the substitute, so a
// rewrite pass can edit as it walks.
type Walker struct {
	start   *Cursor
	cur     *Cursor
	order   Order
	skip    func(*Cursor) bool
	started bool
}

// Walk creates a walker over the subtree at c. The walk re-roots at c:
// movements inside the walk never escape above the start focus. skip may
// be nil; when it returns true for a cursor, that focus and everything
// below it is passed over.
func Walk(c *Cursor, order Order, skip func(*Cursor) bool) *Walker {
	root := &Cursor{focus: c.focus}

	return &Walker{start: root, order: order, skip: skip}
}

// PreorderDescendants walks the subtree at c in prefix order. skip may
// be nil.
func (c *Cursor) PreorderDescendants(skip func(*Cursor) bool) *Walker {
	return Walk(c, Preorder, skip)
}

// PostorderDescendants walks the subtree at c in postfix order. skip may
// be nil.
func (c *Cursor) PostorderDescendants(skip func(*Cursor) bool) *Walker {
	return Walk(c, Postorder, skip)
}

// Next advances to the next focus in order and returns its cursor, or
// nil when the subtree is exhausted.
func (w *Walker) Next() *Cursor {
	if w.order == Postorder {
		return w.nextPost()
	}

	return w.nextPre()
}

// Swap substitutes the walker's current position. The next call to Next
// continues relative to c instead of the cursor last returned.
func (w *Walker) Swap(c *Cursor) {
	w.cur = c
}

func (w *Walker) nextPre() *Cursor {
	var loc *Cursor

	switch {
	case !w.started:
		w.started = true
		loc = w.start
	case w.cur == nil:
		return nil
	default:
		if d := w.cur.Down(); d != nil {
			loc = d
		} else {
			loc = rightOrUp(w.cur)
		}
	}

	for loc != nil && w.skipped(loc) {
		loc = rightOrUp(loc)
	}

	w.cur = loc

	return loc
}

func (w *Walker) nextPost() *Cursor {
	var loc *Cursor

	switch {
	case !w.started:
		w.started = true
		loc = w.dive(w.start)
	case w.cur == nil:
		return nil
	default:
		if r := w.cur.Right(); r != nil {
			loc = w.dive(r)
		} else {
			loc = w.cur.Up()
		}
	}

	w.cur = loc

	return loc
}

// dive descends to the deepest first descendant of loc that is not
// skipped. A skipped focus is stepped over laterally; when nothing to
// its right remains, its parent is due next.
func (w *Walker) dive(loc *Cursor) *Cursor {
	for loc != nil && !w.skipped(loc) {
		d := loc.Down()
		if d == nil {
			return loc
		}

		loc = d
	}

	if loc == nil {
		return nil
	}

	if r := loc.Right(); r != nil {
		return w.dive(r)
	}

	return loc.Up()
}

func (w *Walker) skipped(c *Cursor) bool {
	return w.skip != nil && w.skip(c)
}

func rightOrUp(loc *Cursor) *Cursor {
	for loc != nil {
		if r := loc.Right(); r != nil {
			return r
		}

		loc = loc.Up()
	}

	return nil
}

// FindDescendantsOfKind collects cursors at every node of kind k in the
// subtree under c, in prefix order.
func FindDescendantsOfKind(c *Cursor, k nodes.Kind) []*Cursor {
	var out []*Cursor

	w := Walk(c, Preorder, nil)
	for cur := w.Next(); cur != nil; cur = w.Next() {
		if n := cur.Node(); n != nil && n.Kind() == k {
			out = append(out, cur)
		}
	}

	return out
}

// Statement climbs to the nearest enclosing statement focus, the cursor
// itself included, or nil when the path holds none.
func (c *Cursor) Statement() *Cursor {
	for cur := c; cur != nil; cur = cur.Up() {
		if n := cur.Node(); n != nil && nodes.IsStatement(n.Kind()) {
			return cur
		}
	}

	return nil
}

// Frame climbs to the nearest enclosing frame focus: a module, function
// definition, class definition or lambda. The cursor itself counts.
func (c *Cursor) Frame() *Cursor {
	for cur := c; cur != nil; cur = cur.Up() {
		n := cur.Node()
		if n == nil {
			continue
		}

		switch n.Kind() {
		case nodes.KindModule, nodes.KindFunctionDef, nodes.KindAsyncFunctionDef,
			nodes.KindClassDef, nodes.KindLambda:
			return cur
		}
	}

	return nil
}

// Scope resolves the lexical scope of the focused node and climbs the
// path to the cursor holding it. Resolution uses the node's parent
// links, so the focus must belong to a built tree; on a re-synthesized
// subtree the result falls back to the nearest scope-introducing focus
// on the path.
func (c *Cursor) Scope() *Cursor {
	var target nodes.Node
	if n := c.Node(); n != nil {
		target = scope.Of(n)
	}

	var fallback *Cursor

	for cur := c; cur != nil; cur = cur.Up() {
		n := cur.Node()
		if n == nil {
			continue
		}

		if target != nil && n == target {
			return cur
		}

		if fallback == nil && scope.Introduces(n.Kind()) {
			fallback = cur
		}
	}

	return fallback
}
