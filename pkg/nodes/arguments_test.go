package nodes

import (
	"errors"
	"testing"
)

func param(name string, def Node) *Parameter {
	p := NewParameter(name, 1, 0)
	if def == nil {
		def = Empty
	}

	p.PostInit(def, Empty)

	return p
}

// makeArgs builds the parameter list of
//
//	def f(a, b=1, *rest, c, d=2, **extra)
func makeArgs() *Arguments {
	args := NewArguments()
	args.PostInit(nil,
		[]Node{param("a", nil), param("b", NewConst(int64(1), "1", 1, 0))},
		param("rest", nil),
		[]Node{param("c", nil), param("d", NewConst(int64(2), "2", 1, 0))},
		param("extra", nil))

	return args
}

func TestDefaultValue(t *testing.T) {
	t.Parallel()

	args := makeArgs()

	got, err := args.DefaultValue("b")
	if err != nil {
		t.Fatalf("DefaultValue(b): %v", err)
	}

	if got.(*Const).Value != int64(1) {
		t.Errorf("default of b = %v, want 1", got)
	}

	// Keyword-only defaults resolve too.
	got, err = args.DefaultValue("d")
	if err != nil {
		t.Fatalf("DefaultValue(d): %v", err)
	}

	if got.(*Const).Value != int64(2) {
		t.Errorf("default of d = %v, want 2", got)
	}
}

func TestDefaultValueMissing(t *testing.T) {
	t.Parallel()

	args := makeArgs()

	for _, name := range []string{"a", "unknown"} {
		_, err := args.DefaultValue(name)

		var nde *NoDefaultError
		if !errors.As(err, &nde) {
			t.Errorf("DefaultValue(%q) error = %v, want NoDefaultError", name, err)

			continue
		}

		if nde.Name != name {
			t.Errorf("error names %q, want %q", nde.Name, name)
		}
	}
}

func TestIsArgument(t *testing.T) {
	t.Parallel()

	args := makeArgs()

	for _, name := range []string{"a", "b", "rest", "c", "extra"} {
		if !args.IsArgument(name) {
			t.Errorf("IsArgument(%q) = false, want true", name)
		}
	}

	if args.IsArgument("zzz") {
		t.Errorf("IsArgument(zzz) = true")
	}
}

func TestFindArgname(t *testing.T) {
	t.Parallel()

	args := makeArgs()

	if got := args.FindArgname("b"); got != 1 {
		t.Errorf("FindArgname(b) = %d, want 1", got)
	}

	// The vararg is not positional-and-keyword.
	if got := args.FindArgname("rest"); got != -1 {
		t.Errorf("FindArgname(rest) = %d, want -1", got)
	}
}

func TestFormatArgs(t *testing.T) {
	t.Parallel()

	if got, want := makeArgs().FormatArgs(), "a, b=1, *rest, c, d=2, **extra"; got != want {
		t.Errorf("FormatArgs = %q, want %q", got, want)
	}
}

func TestFormatArgsPositionalOnly(t *testing.T) {
	t.Parallel()

	args := NewArguments()
	args.PostInit([]Node{param("p", nil)}, []Node{param("q", nil)}, Empty,
		[]Node{param("k", nil)}, Empty)

	if got, want := args.FormatArgs(), "p, /, q, *, k"; got != want {
		t.Errorf("FormatArgs = %q, want %q", got, want)
	}
}

func TestDefaultsRightAligned(t *testing.T) {
	t.Parallel()

	defaults := makeArgs().Defaults()
	if len(defaults) != 2 {
		t.Fatalf("len(Defaults) = %d, want 2", len(defaults))
	}

	if defaults[0] != Empty {
		t.Errorf("parameter a should have no default")
	}

	if defaults[1].(*Const).Value != int64(1) {
		t.Errorf("parameter b default = %v, want 1", defaults[1])
	}
}
