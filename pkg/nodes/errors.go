package nodes

import "fmt"

// NoDefaultError reports a lookup of a default value on a parameter that
// has none.
type NoDefaultError struct {
	// Func is the owning function definition, when known.
	Func Node
	// Name is the parameter that was looked up.
	Name string
}

func (e *NoDefaultError) Error() string {
	return fmt.Sprintf("%q has no default", e.Name)
}

// NotSupportedError reports a construct the toolkit deliberately does not
// model.
type NotSupportedError struct {
	Capability string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not supported", e.Capability)
}

// TooManyLevelsError reports a relative import that climbs above the
// top-level package.
type TooManyLevelsError struct {
	// Level is the requested number of leading dots.
	Level int
	// Name is the imported module name.
	Name string
}

func (e *TooManyLevelsError) Error() string {
	return fmt.Sprintf("relative import of %q goes %d levels beyond the top-level package", e.Name, e.Level)
}
