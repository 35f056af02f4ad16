package builder

import "strings"

// Dedent removes the leading whitespace common to every non-blank line,
// so that indented snippets embedded in other source parse as modules.
// Whitespace-only lines are ignored when computing the margin and come
// out empty.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	margin, found := "", false

	for _, line := range lines {
		stripped := strings.TrimLeft(line, " \t")
		if stripped == "" {
			continue
		}

		indent := line[:len(line)-len(stripped)]
		if !found {
			margin, found = indent, true

			continue
		}

		margin = commonIndent(margin, indent)
	}

	if margin == "" {
		return text
	}

	out := make([]string, len(lines))

	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			out[i] = ""

			continue
		}

		out[i] = strings.TrimPrefix(line, margin)
	}

	return strings.Join(out, "\n")
}

func commonIndent(a, b string) string {
	limit := min(len(a), len(b))

	for i := range limit {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:limit]
}
