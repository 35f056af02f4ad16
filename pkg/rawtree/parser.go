package rawtree

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexaandru/go-sitter-forest/python"
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/pytree/pkg/safeconv"
)

// Sentinel errors for grammar-layer failures.
var (
	errPoolType   = errors.New("parser pool returned unexpected type")
	errNoRootNode = errors.New("no root node in parse tree")
)

var pythonLanguage = sync.OnceValue(func() *sitter.Language {
	return sitter.NewLanguage(python.GetLanguage())
})

// Parser turns Python source into raw trees. It is safe for concurrent
// use; underlying grammar parsers are pooled.
type Parser struct {
	pool sync.Pool
}

// NewParser creates a Parser backed by the bundled Python grammar.
func NewParser() *Parser {
	lang := pythonLanguage()

	parser := &Parser{}
	parser.pool = sync.Pool{
		New: func() any {
			tsParser := sitter.NewParser()
			tsParser.SetLanguage(lang)

			return tsParser
		},
	}

	return parser
}

// Parse parses content and returns the raw tree root. Grammar error and
// missing-token nodes are preserved in the tree; callers decide whether
// they are fatal.
func (parser *Parser) Parse(ctx context.Context, content []byte) (*Node, error) {
	tsParser, ok := parser.pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer parser.pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("grammar parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, errNoRootNode
	}

	return fromSitter(root, "", content), nil
}

// keepToken lists anonymous tokens that carry meaning conversion cannot
// recover elsewhere: "async" and "from" discriminate statement variants,
// ":" separates the bounds inside a slice.
func keepToken(kind string) bool {
	switch kind {
	case "async", "from", ":":
		return true
	}

	return false
}

// fromSitter converts a grammar node and its subtree. Anonymous children
// are kept only when they carry a field name or appear in the keepToken
// set: punctuation is noise, but fields such as an operator token drive
// conversion downstream.
func fromSitter(tsNode sitter.Node, field string, source []byte) *Node {
	start := tsNode.StartPoint()
	end := tsNode.EndPoint()

	out := &Node{
		Kind:      tsNode.Type(),
		Field:     field,
		Text:      tsNode.Content(source),
		StartLine: safeconv.MustUintToInt(uint(start.Row)) + 1,
		StartCol:  safeconv.MustUintToInt(uint(start.Column)),
		EndLine:   safeconv.MustUintToInt(uint(end.Row)) + 1,
		EndCol:    safeconv.MustUintToInt(uint(end.Column)),
		Named:     tsNode.IsNamed(),
		Missing:   tsNode.IsMissing(),
	}

	for idx := range tsNode.ChildCount() {
		child := tsNode.Child(idx)
		if child.IsNull() {
			continue
		}

		childField := tsNode.FieldNameForChild(int(idx))
		if !child.IsNamed() && childField == "" && !keepToken(child.Type()) {
			continue
		}

		out.Children = append(out.Children, fromSitter(child, childField, source))
	}

	return out
}
