package builder

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	errEncodingMismatch = errors.New("encoding declaration does not match byte-order mark")
	errUnknownEncoding  = errors.New("unknown source encoding")
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// codingPattern matches a PEP 263 declaration; only the first two lines
// of a file may carry one.
var codingPattern = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-_.a-zA-Z0-9]+)`)

// decodeSource converts raw file bytes to UTF-8 source text, honoring a
// byte-order mark and a PEP 263 encoding declaration. A UTF-8 BOM
// combined with a declaration naming a different encoding is an error,
// never a silent pick.
func decodeSource(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data, unicode.LittleEndian)
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data, unicode.BigEndian)
	case bytes.HasPrefix(data, bomUTF8):
		payload := data[len(bomUTF8):]

		declared := codingDeclaration(payload)
		if declared != "" && !isUTF8Name(declared) {
			return nil, fmt.Errorf("%w: declared %q, found utf-8 mark", errEncodingMismatch, declared)
		}

		return payload, nil
	}

	declared := codingDeclaration(data)
	if declared == "" || isUTF8Name(declared) {
		return data, nil
	}

	enc, err := htmlindex.Get(declared)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errUnknownEncoding, declared)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %q source: %w", declared, err)
	}

	return decoded, nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) ([]byte, error) {
	dec := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()

	decoded, err := dec.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding utf-16 source: %w", err)
	}

	return decoded, nil
}

// codingDeclaration extracts the encoding name declared in the first two
// lines, or "" when none is declared.
func codingDeclaration(data []byte) string {
	rest := data

	for range 2 {
		line, tail, _ := bytes.Cut(rest, []byte("\n"))
		rest = tail

		if m := codingPattern.FindSubmatch(line); m != nil {
			return string(m[1])
		}

		if len(tail) == 0 {
			break
		}
	}

	return ""
}

func isUTF8Name(name string) bool {
	switch strings.ReplaceAll(strings.ToLower(name), "_", "-") {
	case "utf-8", "utf8", "utf-8-sig":
		return true
	}

	return false
}
