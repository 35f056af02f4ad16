package rebuild

import (
	"fmt"
	"strings"
)

// Canonical operator symbol tables. Raw tokens come straight from the
// grammar; the tables both validate them and normalize legacy spellings
// ("<>" becomes "!=").
var binaryOps = map[string]string{
	"+":  "+",
	"-":  "-",
	"*":  "*",
	"/":  "/",
	"//": "//",
	"%":  "%",
	"**": "**",
	"@":  "@",
	"&":  "&",
	"|":  "|",
	"^":  "^",
	"<<": "<<",
	">>": ">>",
}

var boolOps = map[string]string{
	"and": "and",
	"or":  "or",
}

var unaryOps = map[string]string{
	"+":   "+",
	"-":   "-",
	"~":   "~",
	"not": "not",
}

var compareOps = map[string]string{
	"==":     "==",
	"!=":     "!=",
	"<>":     "!=",
	"<":      "<",
	"<=":     "<=",
	">":      ">",
	">=":     ">=",
	"in":     "in",
	"not in": "not in",
	"is":     "is",
	"is not": "is not",
}

func binaryOp(token string) (string, error) {
	op, ok := binaryOps[token]
	if !ok {
		return "", fmt.Errorf("%w: binary operator %q", ErrNoConversion, token)
	}

	return op, nil
}

func boolOp(token string) (string, error) {
	op, ok := boolOps[token]
	if !ok {
		return "", fmt.Errorf("%w: boolean operator %q", ErrNoConversion, token)
	}

	return op, nil
}

func unaryOp(token string) (string, error) {
	op, ok := unaryOps[token]
	if !ok {
		return "", fmt.Errorf("%w: unary operator %q", ErrNoConversion, token)
	}

	return op, nil
}

func compareOp(token string) (string, error) {
	op, ok := compareOps[token]
	if !ok {
		return "", fmt.Errorf("%w: comparison operator %q", ErrNoConversion, token)
	}

	return op, nil
}

// augmentedOp validates an augmented-assignment token ("+=", "//=") and
// returns the canonical symbol with the "=" retained.
func augmentedOp(token string) (string, error) {
	base, found := strings.CutSuffix(token, "=")
	if !found {
		return "", fmt.Errorf("%w: augmented operator %q", ErrNoConversion, token)
	}

	op, err := binaryOp(base)
	if err != nil {
		return "", fmt.Errorf("%w: augmented operator %q", ErrNoConversion, token)
	}

	return op + "=", nil
}

// pairCompareTokens folds the raw comparison tokens into canonical
// symbols, joining the two-token spellings "not in" and "is not".
func pairCompareTokens(tokens []string) ([]string, error) {
	var out []string

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case tok == "not" && i+1 < len(tokens) && tokens[i+1] == "in":
			tok = "not in"
			i++
		case tok == "is" && i+1 < len(tokens) && tokens[i+1] == "not":
			tok = "is not"
			i++
		}

		op, err := compareOp(tok)
		if err != nil {
			return nil, err
		}

		out = append(out, op)
	}

	return out, nil
}
