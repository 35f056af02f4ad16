// Package builder assembles canonical modules from Python source text
// or files: it normalizes the source, parses it through the raw grammar
// layer, rejects trees with grammar errors, and runs the rebuilder.
package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
	"github.com/Sumatoshi-tech/pytree/pkg/rawtree"
	"github.com/Sumatoshi-tech/pytree/pkg/rebuild"
	"github.com/Sumatoshi-tech/pytree/pkg/zipper"
)

var errSyntax = errors.New("syntax error")

// Builder turns source into modules. It is safe for concurrent use.
type Builder struct {
	parser *rawtree.Parser
}

func New() *Builder {
	return &Builder{parser: rawtree.NewParser()}
}

// BuildString builds a module from source text. The text is dedented
// first so indented snippets parse as modules; path may be empty for
// anonymous sources.
func (b *Builder) BuildString(ctx context.Context, code, modname, path string) (*nodes.Module, error) {
	code = Dedent(code)
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}

	root, err := b.parser.Parse(ctx, []byte(code))
	if err != nil {
		return nil, &BuildError{Modname: modname, Path: path, Err: err}
	}

	if serr := syntaxCheck(root, code, modname, path); serr != nil {
		return nil, serr
	}

	modpath := "<?>"
	if path != "" {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}

		modpath = abs
	}

	modname, pkg := packageName(modname, path)

	module, err := rebuild.New().Rebuild(root, modname, modpath, pkg)
	if err != nil {
		return nil, &BuildError{Modname: modname, Path: path, Err: err}
	}

	return module, nil
}

// BuildFile builds a module from a file on disk, decoding it to UTF-8
// per its byte-order mark or encoding declaration first.
func (b *Builder) BuildFile(ctx context.Context, path, modname string) (*nodes.Module, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, &BuildError{Modname: modname, Path: path, Err: err}
	}

	code, err := decodeSource(data)
	if err != nil {
		return nil, &BuildError{Modname: modname, Path: path, Err: err}
	}

	return b.BuildString(ctx, string(code), modname, path)
}

func readSource(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	return data, nil
}

// Parse builds an anonymous module from code and returns a zipper cursor
// focused on it.
func Parse(ctx context.Context, code string) (*zipper.Cursor, error) {
	module, err := New().BuildString(ctx, code, "", "")
	if err != nil {
		return nil, err
	}

	return zipper.New(module), nil
}

// packageName strips a trailing ".__init__" from the module name; that
// suffix, or an __init__.py path, marks a package.
func packageName(modname, path string) (string, bool) {
	if trimmed, ok := strings.CutSuffix(modname, ".__init__"); ok {
		return trimmed, true
	}

	return modname, strings.Contains(path, "__init__.py")
}

// syntaxCheck walks the raw tree for grammar error or missing-token
// nodes; the first one found fails the build.
func syntaxCheck(root *rawtree.Node, code, modname, path string) error {
	var bad *rawtree.Node

	root.Walk(func(n *rawtree.Node) bool {
		if bad != nil {
			return false
		}

		if n.IsError() || n.Missing {
			bad = n

			return false
		}

		return true
	})

	if bad == nil {
		return nil
	}

	detail := fmt.Errorf("%w at line %d near %q", errSyntax, bad.StartLine, excerpt(bad.Text))

	return &SyntaxError{
		BuildError: BuildError{Modname: modname, Path: path, Err: detail},
		Source:     code,
		Line:       bad.StartLine,
	}
}

func excerpt(text string) string {
	const limit = 40

	text, _, _ = strings.Cut(text, "\n")
	if len(text) > limit {
		return text[:limit] + "..."
	}

	return text
}
