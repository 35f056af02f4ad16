// Package rebuild converts raw grammar trees into canonical node trees.
// Conversion dispatches on the raw kind through a lookup table; a kind
// with no entry fails loudly, signalling a grammar/version mismatch
// rather than silently dropping nodes.
package rebuild

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
	"github.com/Sumatoshi-tech/pytree/pkg/rawtree"
)

// Sentinel errors for conversion failures.
var (
	// ErrNoConversion marks a raw kind or token the converter does not
	// recognize.
	ErrNoConversion = errors.New("no conversion available")
	// ErrStructure marks a raw tree whose shape violates the grammar's
	// own rules, e.g. more defaults than parameters.
	ErrStructure = errors.New("malformed raw tree")
)

type convertFunc func(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error)

// Rebuilder converts one raw tree. It keeps per-function bookkeeping
// while descending, so create a fresh one per tree and do not share it
// across concurrent rebuilds.
type Rebuilder struct {
	dispatch map[string]convertFunc

	// globalNames stacks the names declared global in each enclosing
	// function, innermost last.
	globalNames []map[string]struct{}
}

// pushFunction opens a global-declaration frame for a function body.
func (r *Rebuilder) pushFunction() {
	r.globalNames = append(r.globalNames, map[string]struct{}{})
}

func (r *Rebuilder) popFunction() {
	r.globalNames = r.globalNames[:len(r.globalNames)-1]
}

func (r *Rebuilder) declareGlobal(names []string) {
	if len(r.globalNames) == 0 {
		return
	}

	frame := r.globalNames[len(r.globalNames)-1]
	for _, n := range names {
		frame[n] = struct{}{}
	}
}

// DeclaredGlobal reports whether name was declared global in the
// function currently being converted.
func (r *Rebuilder) DeclaredGlobal(name string) bool {
	if len(r.globalNames) == 0 {
		return false
	}

	_, ok := r.globalNames[len(r.globalNames)-1][name]

	return ok
}

// New creates a Rebuilder with the full dispatch table.
func New() *Rebuilder {
	r := &Rebuilder{}
	r.dispatch = map[string]convertFunc{
		"expression_statement":    r.expressionStmt,
		"assignment":              r.assignStmt,
		"augmented_assignment":    r.augAssignStmt,
		"assert_statement":        r.assertStmt,
		"break_statement":         r.breakStmt,
		"continue_statement":      r.continueStmt,
		"pass_statement":          r.passStmt,
		"delete_statement":        r.deleteStmt,
		"return_statement":        r.returnStmt,
		"raise_statement":         r.raiseStmt,
		"global_statement":        r.globalStmt,
		"nonlocal_statement":      r.nonlocalStmt,
		"print_statement":         r.printStmt,
		"import_statement":        r.importStmt,
		"import_from_statement":   r.importFromStmt,
		"future_import_statement": r.importFromStmt,
		"if_statement":            r.ifStmt,
		"while_statement":         r.whileStmt,
		"for_statement":           r.forStmt,
		"try_statement":           r.tryStmt,
		"with_statement":          r.withStmt,
		"function_definition":     r.functionDefStmt,
		"class_definition":        r.classDefStmt,
		"decorated_definition":    r.decoratedStmt,

		"identifier":               r.identifier,
		"true":                     r.singleton,
		"false":                    r.singleton,
		"none":                     r.singleton,
		"ellipsis":                 r.ellipsis,
		"integer":                  r.number,
		"float":                    r.number,
		"string":                   r.stringLiteral,
		"concatenated_string":      r.concatenatedString,
		"attribute":                r.attribute,
		"subscript":                r.subscript,
		"slice":                    r.sliceExpr,
		"call":                     r.call,
		"binary_operator":          r.binaryExpr,
		"boolean_operator":         r.booleanExpr,
		"not_operator":             r.notExpr,
		"unary_operator":           r.unaryExpr,
		"comparison_operator":      r.comparisonExpr,
		"conditional_expression":   r.conditionalExpr,
		"parenthesized_expression": r.parenthesized,
		"lambda":                   r.lambdaExpr,
		"await":                    r.awaitExpr,
		"yield":                    r.yieldExpr,
		"tuple":                    r.tupleExpr,
		"tuple_pattern":            r.tupleExpr,
		"expression_list":          r.tupleExpr,
		"pattern_list":             r.tupleExpr,
		"list":                     r.listExpr,
		"list_pattern":             r.listExpr,
		"set":                      r.setExpr,
		"dictionary":               r.dictExpr,
		"list_splat":               r.starred,
		"list_splat_pattern":       r.starred,
		"list_comprehension":       r.listComp,
		"set_comprehension":        r.setComp,
		"dictionary_comprehension": r.dictComp,
		"generator_expression":     r.generatorExp,
		"named_expression":         r.namedExpr,
	}

	return r
}

// Rebuild converts a whole raw module tree into a Module.
func (r *Rebuilder) Rebuild(root *rawtree.Node, modname, modpath string, pkg bool) (*nodes.Module, error) {
	if root == nil || root.Kind != "module" {
		return nil, fmt.Errorf("%w: expected module root", ErrNoConversion)
	}

	body, err := r.stmts(root.NamedChildren("comment"))
	if err != nil {
		return nil, err
	}

	doc, body := docstring(body)

	mod := nodes.NewModule(modname, doc, modpath, pkg, []byte(root.Text))
	mod.PostInit(body)

	return mod, nil
}

// convert dispatches one raw node.
func (r *Rebuilder) convert(raw *rawtree.Node, ctx nodes.Context) (nodes.Node, error) {
	fn, ok := r.dispatch[raw.Kind]
	if !ok {
		return nil, fmt.Errorf("%w for kind %q", ErrNoConversion, raw.Kind)
	}

	return fn(raw, ctx)
}

func (r *Rebuilder) expr(raw *rawtree.Node) (nodes.Node, error) {
	return r.convert(raw, nodes.Load)
}

// exprOrEmpty converts raw when present and yields Empty otherwise.
func (r *Rebuilder) exprOrEmpty(raw *rawtree.Node) (nodes.Node, error) {
	if raw == nil {
		return nodes.Empty, nil
	}

	return r.expr(raw)
}

func (r *Rebuilder) stmts(raws []*rawtree.Node) ([]nodes.Node, error) {
	out := make([]nodes.Node, 0, len(raws))

	for _, raw := range raws {
		n, err := r.convert(raw, nodes.Load)
		if err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	return out, nil
}

// body converts the statements of a block node; a nil block is an empty
// body.
func (r *Rebuilder) body(block *rawtree.Node) ([]nodes.Node, error) {
	if block == nil {
		return nil, nil
	}

	return r.stmts(block.NamedChildren("comment"))
}

func (r *Rebuilder) exprs(raws []*rawtree.Node, ctx nodes.Context) ([]nodes.Node, error) {
	out := make([]nodes.Node, 0, len(raws))

	for _, raw := range raws {
		n, err := r.convert(raw, ctx)
		if err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	return out, nil
}

// requireField returns the named field child or a structure error.
func requireField(raw *rawtree.Node, name string) (*rawtree.Node, error) {
	c := raw.ChildByField(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %s without %q field", ErrStructure, raw.Kind, name)
	}

	return c, nil
}

func pos(raw *rawtree.Node) (line, col int) { return raw.StartLine, raw.StartCol }

func isAsync(raw *rawtree.Node) bool { return raw.FirstOfKind("async") != nil }

// docstring extracts a leading bare string-literal expression statement
// into a doc text, removing it from the body.
func docstring(body []nodes.Node) (string, []nodes.Node) {
	if len(body) == 0 {
		return "", body
	}

	expr, ok := body[0].(*nodes.Expr)
	if !ok {
		return "", body
	}

	konst, ok := expr.Value.(*nodes.Const)
	if !ok {
		return "", body
	}

	doc, ok := konst.Value.(string)
	if !ok {
		return "", body
	}

	return doc, body[1:]
}

// typeExpr unwraps a grammar "type" annotation wrapper to the expression
// it holds.
func (r *Rebuilder) typeExpr(raw *rawtree.Node) (nodes.Node, error) {
	if raw == nil {
		return nodes.Empty, nil
	}

	if raw.Kind == "type" {
		inner := raw.NamedChildren("comment")
		if len(inner) != 1 {
			return nil, fmt.Errorf("%w: type annotation with %d children", ErrStructure, len(inner))
		}

		return r.expr(inner[0])
	}

	return r.expr(raw)
}

// trailingComma reports whether the statement text ends with a comma,
// which in the legacy print form suppresses the newline.
func trailingComma(raw *rawtree.Node) bool {
	return strings.HasSuffix(strings.TrimSpace(raw.Text), ",")
}
