package rebuild

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// parseNumber evaluates an integer or float token to its value. Integers
// that fit are int64; magnitudes beyond that degrade to float64. Complex
// literals ("1j") evaluate to complex128. A legacy long suffix ("10L")
// is dropped.
func parseNumber(text string) (any, error) {
	s := strings.ReplaceAll(text, "_", "")

	if strings.HasSuffix(s, "l") || strings.HasSuffix(s, "L") {
		s = s[:len(s)-1]
	}

	if strings.HasSuffix(s, "j") || strings.HasSuffix(s, "J") {
		f, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number literal %q", ErrNoConversion, text)
		}

		return complex(0, f), nil
	}

	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return v, nil
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	return nil, fmt.Errorf("%w: number literal %q", ErrNoConversion, text)
}

// stringPrefix splits a string token into its prefix letters and the
// quoted remainder.
func stringPrefix(text string) (prefix, rest string) {
	for i, r := range text {
		if r == '\'' || r == '"' {
			return strings.ToLower(text[:i]), text[i:]
		}
	}

	return "", text
}

// parseString evaluates one string token to its value: string for text
// literals, []byte for bytes literals. Formatted literals are reported
// as unsupported by the caller before reaching here.
func parseString(text string) (any, error) {
	prefix, rest := stringPrefix(text)

	_, body, err := splitQuotes(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, text)
	}

	raw := strings.Contains(prefix, "r")
	isBytes := strings.Contains(prefix, "b")

	value := body
	if !raw {
		value = unescape(body, isBytes)
	}

	if isBytes {
		return []byte(value), nil
	}

	return value, nil
}

func splitQuotes(s string) (quote, body string, err error) {
	for _, q := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s[len(q):], q) && len(s) >= 2*len(q) {
			return q, s[len(q) : len(s)-len(q)], nil
		}
	}

	return "", "", ErrNoConversion
}

// unescape resolves backslash escapes the way the source language does:
// unknown escapes keep the backslash verbatim.
func unescape(s string, isBytes bool) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		i++
		switch e := s[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '\\', '\'', '"':
			b.WriteByte(e)
		case '\n':
			// Line continuation inside a literal produces nothing.
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := octal(s[i:])
			b.WriteByte(v)
			i += n - 1
		case 'x':
			if v, ok := hexByte(s[i+1:]); ok {
				b.WriteByte(v)
				i += 2
			} else {
				b.WriteString(`\x`)
			}
		case 'u', 'U':
			width := 4
			if e == 'U' {
				width = 8
			}

			if r, ok := hexRune(s[i+1:], width); ok && !isBytes {
				b.WriteRune(r)
				i += width
			} else {
				b.WriteByte('\\')
				b.WriteByte(e)
			}
		default:
			b.WriteByte('\\')
			b.WriteByte(e)
		}
	}

	return b.String()
}

func octal(s string) (byte, int) {
	var v, n int
	for n < 3 && n < len(s) && s[n] >= '0' && s[n] <= '7' {
		v = v*8 + int(s[n]-'0')
		n++
	}

	return byte(v), n
}

func hexByte(s string) (byte, bool) {
	if len(s) < 2 {
		return 0, false
	}

	v, err := strconv.ParseUint(s[:2], 16, 8)
	if err != nil {
		return 0, false
	}

	return byte(v), true
}

func hexRune(s string, width int) (rune, bool) {
	if len(s) < width {
		return 0, false
	}

	v, err := strconv.ParseUint(s[:width], 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, false
	}

	return rune(v), true
}
