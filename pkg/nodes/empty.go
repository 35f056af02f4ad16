package nodes

type emptyNode struct{}

// Empty is the singleton placeholder for an absent optional child. It
// participates in traversal like any node, compares equal only to itself
// and never carries children, a position or a parent.
var Empty Node = emptyNode{}

func (emptyNode) Kind() Kind { return KindEmpty }

func (emptyNode) Pos() *Position { return nil }

func (emptyNode) Parent() Node { return nil }

func (emptyNode) ChildFields() []Field { return nil }

func (emptyNode) Attrs() []Attr { return nil }

func (emptyNode) Recreate([]FieldValue) Node { return Empty }

func (emptyNode) setParent(Node) {}
