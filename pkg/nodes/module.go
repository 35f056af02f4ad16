package nodes

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoSource is reported by Module.Stream when neither inline source nor
// a backing file is available.
var ErrNoSource = errors.New("module has no source")

// Module is the root of a built tree. Its position is the synthetic line 0
// so that every real statement lies inside its span.
type Module struct {
	base

	Name    string
	Doc     string
	Path    string
	Package bool
	Body    []Node

	source []byte
}

// NewModule creates a module root. source may be nil when path alone backs
// the module.
func NewModule(name, doc, path string, pkg bool, source []byte) *Module {
	return &Module{base: at(0, 0), Name: name, Doc: doc, Path: path, Package: pkg, source: source}
}

// PostInit attaches the module body.
func (m *Module) PostInit(body []Node) {
	m.init(body)
	adoptAll(m, m.Body)
}

func (m *Module) init(body []Node) { m.Body = seq(body) }

func (m *Module) Kind() Kind { return KindModule }

func (m *Module) ChildFields() []Field {
	return []Field{seqField(KindModule, "body", m.Body)}
}

func (m *Module) Attrs() []Attr {
	return []Attr{
		{"name", m.Name},
		{"doc", m.Doc},
		{"path", m.Path},
		{"package", m.Package},
	}
}

func (m *Module) Recreate(vs []FieldValue) Node {
	want(KindModule, vs, 1)
	c := *m
	c.detach()
	c.init(vs[0].List)

	return &c
}

// QName reports the module's own dotted name.
func (m *Module) QName() string { return m.Name }

// FutureImports lists the names imported from __future__, in source order.
// Python only honors these at the top of the module, so the scan stops at
// the first statement that is not such an import.
func (m *Module) FutureImports() []string {
	var out []string

	for _, st := range m.Body {
		imp, ok := st.(*ImportFrom)
		if !ok || imp.Modname != "__future__" {
			break
		}

		for _, a := range imp.Names {
			out = append(out, a.Name)
		}
	}

	return out
}

// Stream opens the module source for reading. The caller must close the
// returned reader.
func (m *Module) Stream() (io.ReadCloser, error) {
	if m.source != nil {
		return io.NopCloser(bytes.NewReader(m.source)), nil
	}

	if m.Path != "" {
		return os.Open(m.Path)
	}

	return nil, ErrNoSource
}

// RelativeToAbsoluteName resolves a relative import against this module's
// dotted name. level counts the leading dots; zero means the import is
// already absolute. A level pointing above the top-level package reports
// TooManyLevelsError.
func (m *Module) RelativeToAbsoluteName(modname string, level int) (string, error) {
	if level <= 0 {
		return modname, nil
	}

	lvl := level
	if m.Package {
		lvl--
	}

	if lvl > strings.Count(m.Name, ".") {
		return "", &TooManyLevelsError{Level: level, Name: modname}
	}

	parts := strings.Split(m.Name, ".")
	pkgName := strings.Join(parts[:len(parts)-lvl], ".")

	if pkgName == "" {
		return modname, nil
	}

	if modname == "" {
		return pkgName, nil
	}

	return pkgName + "." + modname, nil
}
