package rebuild

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want any
	}{
		{"1", int64(1)},
		{"0x1f", int64(31)},
		{"0o17", int64(15)},
		{"0b101", int64(5)},
		{"1_000_000", int64(1000000)},
		{"10L", int64(10)},
		{"1.5", 1.5},
		{"1e3", 1000.0},
		{"2j", complex(0, 2)},
		{"9223372036854775808", 9.223372036854776e18},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseNumber(tt.in)
			if err != nil {
				t.Fatalf("parseNumber(%q): %v", tt.in, err)
			}

			if got != tt.want {
				t.Errorf("parseNumber(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestParseNumberInvalid(t *testing.T) {
	t.Parallel()

	if _, err := parseNumber("0x"); !errors.Is(err, ErrNoConversion) {
		t.Errorf("error = %v, want ErrNoConversion", err)
	}
}

func TestParseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want any
	}{
		{"plain double", `"abc"`, "abc"},
		{"plain single", `'abc'`, "abc"},
		{"triple quoted", `"""a
b"""`, "a\nb"},
		{"newline escape", `"a\nb"`, "a\nb"},
		{"tab escape", `"a\tb"`, "a\tb"},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"octal escape", `"\101"`, "A"},
		{"hex escape", `"\x41"`, "A"},
		{"short unicode escape", `"é"`, "é"},
		{"unknown escape kept", `"\q"`, `\q`},
		{"raw keeps escapes", `r"a\nb"`, `a\nb`},
		{"bytes literal", `b"a\x00b"`, []byte{'a', 0, 'b'}},
		{"raw bytes", `rb"a\nb"`, []byte(`a\nb`)},
		{"uppercase prefix", `R"a\nb"`, `a\nb`},
		{"unicode prefix", `u"abc"`, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseString(tt.in)
			if err != nil {
				t.Fatalf("parseString(%q): %v", tt.in, err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseString(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStringUnterminated(t *testing.T) {
	t.Parallel()

	if _, err := parseString(`"abc`); !errors.Is(err, ErrNoConversion) {
		t.Errorf("error = %v, want ErrNoConversion", err)
	}
}
