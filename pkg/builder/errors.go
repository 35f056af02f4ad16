package builder

import "fmt"

// BuildError reports that a module could not be constructed at all:
// unreadable file, unresolvable encoding declaration, rejected source.
type BuildError struct {
	Modname string
	Path    string
	Err     error
}

func (e *BuildError) Error() string {
	where := e.Modname
	if where == "" {
		where = "<string>"
	}

	if e.Path != "" {
		return fmt.Sprintf("building module %s (%s): %v", where, e.Path, e.Err)
	}

	return fmt.Sprintf("building module %s: %v", where, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// SyntaxError is the parser-rejection specialization of BuildError. It
// keeps the offending source so diagnostics can quote it.
type SyntaxError struct {
	BuildError

	Source string
	Line   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parsing failed at line %d: %s", e.Line, e.BuildError.Error())
}
