package nodes

import (
	"fmt"
	"strconv"
	"strings"
)

// DumpOptions configures ReprTree.
type DumpOptions struct {
	// ShowIDs appends a per-node identity tag to each variant name.
	ShowIDs bool
	// ShowPosition includes the (line, col) pair of positioned nodes.
	ShowPosition bool
	// ShowDerived includes derived views such as a definition's qualified
	// name and an Arguments node's formatted parameter list.
	ShowDerived bool
	// Indent is the indentation unit, two spaces when empty.
	Indent string
	// MaxDepth truncates nesting past the given depth; 0 is unlimited.
	MaxDepth int
	// MaxWidth truncates sequences past the given entry count; 0 is
	// unlimited.
	MaxWidth int
}

// ReprTree renders a diagnostic multi-line dump of the tree rooted at n.
// A node encountered twice in one dump prints a recursion marker instead
// of re-expanding, guarding against cycles introduced by buggy edits.
func ReprTree(n Node, opts DumpOptions) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}

	d := &dumper{opts: opts, seen: map[Node]bool{}}

	return d.render(n, 0)
}

type dumper struct {
	opts DumpOptions
	seen map[Node]bool
}

func (d *dumper) render(n Node, depth int) string {
	if n == nil {
		return "nil"
	}

	if n == Empty {
		return "Empty"
	}

	kind := string(n.Kind())
	if d.seen[n] {
		return "<recursion on " + kind + ">"
	}

	header := kind
	if d.opts.ShowIDs {
		header = fmt.Sprintf("%s<%p>", kind, n)
	}

	if d.opts.MaxDepth > 0 && depth >= d.opts.MaxDepth {
		return header + "(...)"
	}

	d.seen[n] = true

	var items []string

	for _, a := range n.Attrs() {
		items = append(items, a.Name+"="+attrString(a.Value))
	}

	if d.opts.ShowPosition && n.Pos() != nil {
		items = append(items, fmt.Sprintf("position=(%d, %d)", n.Pos().Line, n.Pos().Col))
	}

	if d.opts.ShowDerived {
		items = append(items, derived(n)...)
	}

	for _, f := range n.ChildFields() {
		if f.Value.IsSeq() {
			items = append(items, f.Name+"="+d.renderSeq(f.Value.List, depth+1))
		} else {
			items = append(items, f.Name+"="+d.render(f.Value.Node, depth+1))
		}
	}

	if len(items) == 0 {
		return header + "()"
	}

	pad := strings.Repeat(d.opts.Indent, depth+1)

	return header + "(\n" + pad + strings.Join(items, ",\n"+pad) + ")"
}

func (d *dumper) renderSeq(ns []Node, depth int) string {
	if len(ns) == 0 {
		return "[]"
	}

	shown, extra := ns, 0
	if d.opts.MaxWidth > 0 && len(ns) > d.opts.MaxWidth {
		shown = ns[:d.opts.MaxWidth]
		extra = len(ns) - d.opts.MaxWidth
	}

	parts := make([]string, 0, len(shown)+1)
	for _, n := range shown {
		parts = append(parts, d.render(n, depth))
	}

	if extra > 0 {
		parts = append(parts, fmt.Sprintf("... %d more", extra))
	}

	pad := strings.Repeat(d.opts.Indent, depth)

	return "[" + strings.Join(parts, ",\n"+pad) + "]"
}

func derived(n Node) []string {
	switch t := n.(type) {
	case *Module:
		return []string{fmt.Sprintf("future_imports=%v", t.FutureImports())}
	case *FunctionDef:
		return []string{"qname=" + strconv.Quote(t.QName())}
	case *AsyncFunctionDef:
		return []string{"qname=" + strconv.Quote(t.QName())}
	case *ClassDef:
		return []string{"qname=" + strconv.Quote(t.QName())}
	case *Arguments:
		return []string{"format=" + strconv.Quote(t.FormatArgs())}
	default:
		return nil
	}
}

func attrString(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return strconv.Quote(t)
	default:
		if v == NotImplemented {
			return "NotImplemented"
		}

		return fmt.Sprint(t)
	}
}

// shortRepr is a one-line compact rendering used where a full dump would
// be noise, such as default values inside a formatted parameter list.
func shortRepr(n Node) string {
	switch t := n.(type) {
	case nil:
		return "nil"
	case *Const:
		if t.Raw != "" {
			return t.Raw
		}

		return attrString(t.Value)
	case *NameConstant:
		return attrString(t.Value)
	case *Name:
		return t.Name
	case *Attribute:
		return shortRepr(t.Expr) + "." + t.AttrName
	default:
		if n == Empty {
			return "Empty"
		}

		return string(n.Kind()) + "(...)"
	}
}
