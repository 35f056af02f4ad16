package nodes

import "strings"

// PositionalAndKeyword lists the parameters callable both positionally and
// by keyword: the regular arguments preceded by the positional-only ones.
func (a *Arguments) PositionalAndKeyword() []Node {
	out := make([]Node, 0, len(a.PosOnlyArgs)+len(a.Args))
	out = append(out, a.PosOnlyArgs...)
	out = append(out, a.Args...)

	return out
}

// Defaults reports one entry per positional-and-keyword parameter,
// right-aligned: parameters without a default map to Empty.
func (a *Arguments) Defaults() []Node {
	params := a.PositionalAndKeyword()
	out := make([]Node, len(params))

	for i, n := range params {
		out[i] = Empty

		if p, ok := n.(*Parameter); ok {
			out[i] = p.Default
		}
	}

	return out
}

// DefaultValue reports the default bound to the named parameter. A
// parameter without a default, or an unknown name, reports NoDefaultError.
func (a *Arguments) DefaultValue(name string) (Node, error) {
	for _, n := range a.allParams() {
		p, ok := n.(*Parameter)
		if !ok || p.Name != name {
			continue
		}

		if p.Default == Empty {
			break
		}

		return p.Default, nil
	}

	return nil, &NoDefaultError{Func: a.parent, Name: name}
}

// IsArgument reports whether name is bound by this parameter list,
// including the vararg and kwarg slots.
func (a *Arguments) IsArgument(name string) bool {
	for _, n := range a.allParams() {
		if p, ok := n.(*Parameter); ok && p.Name == name {
			return true
		}
	}

	return false
}

// FindArgname reports the declaration index of name among the
// positional-and-keyword parameters, or -1.
func (a *Arguments) FindArgname(name string) int {
	for i, n := range a.PositionalAndKeyword() {
		if p, ok := n.(*Parameter); ok && p.Name == name {
			return i
		}
	}

	return -1
}

// FormatArgs renders the parameter list the way it would appear in a def
// header, without resolving default expressions beyond their dump form.
func (a *Arguments) FormatArgs() string {
	var parts []string

	appendParam := func(prefix string, n Node) {
		p, ok := n.(*Parameter)
		if !ok {
			return
		}

		s := prefix + p.Name
		if p.Default != Empty {
			s += "=" + shortRepr(p.Default)
		}

		parts = append(parts, s)
	}

	for _, n := range a.PosOnlyArgs {
		appendParam("", n)
	}

	if len(a.PosOnlyArgs) > 0 {
		parts = append(parts, "/")
	}

	for _, n := range a.Args {
		appendParam("", n)
	}

	if a.Vararg != Empty {
		appendParam("*", a.Vararg)
	} else if len(a.KwOnlyArgs) > 0 {
		parts = append(parts, "*")
	}

	for _, n := range a.KwOnlyArgs {
		appendParam("", n)
	}

	if a.Kwarg != Empty {
		appendParam("**", a.Kwarg)
	}

	return strings.Join(parts, ", ")
}

func (a *Arguments) allParams() []Node {
	out := a.PositionalAndKeyword()

	if a.Vararg != Empty {
		out = append(out, a.Vararg)
	}

	out = append(out, a.KwOnlyArgs...)

	if a.Kwarg != Empty {
		out = append(out, a.Kwarg)
	}

	return out
}
