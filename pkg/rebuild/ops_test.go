package rebuild

import (
	"errors"
	"testing"
)

func TestOperatorTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lookup func(string) (string, error)
		token  string
		want   string
	}{
		{"binary passthrough", binaryOp, "//", "//"},
		{"binary matmul", binaryOp, "@", "@"},
		{"bool and", boolOp, "and", "and"},
		{"unary not", unaryOp, "not", "not"},
		{"compare passthrough", compareOp, "<=", "<="},
		{"compare legacy inequality", compareOp, "<>", "!="},
		{"compare membership", compareOp, "not in", "not in"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.lookup(tc.token)
			if err != nil {
				t.Fatalf("lookup(%q) error: %v", tc.token, err)
			}

			if got != tc.want {
				t.Errorf("lookup(%q) = %q, want %q", tc.token, got, tc.want)
			}
		})
	}
}

func TestOperatorTablesRejectUnknown(t *testing.T) {
	t.Parallel()

	lookups := map[string]func(string) (string, error){
		"binary":  binaryOp,
		"bool":    boolOp,
		"unary":   unaryOp,
		"compare": compareOp,
	}

	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := lookup("?!"); !errors.Is(err, ErrNoConversion) {
				t.Errorf("lookup(%q) error = %v, want ErrNoConversion", "?!", err)
			}
		})
	}
}

func TestAugmentedOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{"+=", "+="},
		{"//=", "//="},
		{"**=", "**="},
		{">>=", ">>="},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()

			got, err := augmentedOp(tc.token)
			if err != nil {
				t.Fatalf("augmentedOp(%q) error: %v", tc.token, err)
			}

			if got != tc.want {
				t.Errorf("augmentedOp(%q) = %q, want %q", tc.token, got, tc.want)
			}
		})
	}
}

func TestAugmentedOpRejects(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"+", "and=", "=="} {
		if _, err := augmentedOp(token); !errors.Is(err, ErrNoConversion) {
			t.Errorf("augmentedOp(%q) error = %v, want ErrNoConversion", token, err)
		}
	}
}

func TestPairCompareTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"single", []string{"<"}, []string{"<"}},
		{"not in folds", []string{"not", "in"}, []string{"not in"}},
		{"is not folds", []string{"is", "not"}, []string{"is not"}},
		{"mixed chain", []string{"<", "is", "not", "in"}, []string{"<", "is not", "in"}},
		{"legacy normalized", []string{"<>"}, []string{"!="}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := pairCompareTokens(tc.tokens)
			if err != nil {
				t.Fatalf("pairCompareTokens(%v) error: %v", tc.tokens, err)
			}

			if len(got) != len(tc.want) {
				t.Fatalf("pairCompareTokens(%v) = %v, want %v", tc.tokens, got, tc.want)
			}

			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("op[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestPairCompareTokensRejectsLoneNot(t *testing.T) {
	t.Parallel()

	if _, err := pairCompareTokens([]string{"not"}); !errors.Is(err, ErrNoConversion) {
		t.Errorf("pairCompareTokens error = %v, want ErrNoConversion", err)
	}
}
