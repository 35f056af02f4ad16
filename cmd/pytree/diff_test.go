package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestLineDiffGranularity(t *testing.T) {
	t.Parallel()

	a := "Module(\n  Assign(\n    AssignName)\n"
	b := "Module(\n  AugAssign(\n    AssignName)\n"

	diffs := lineDiff(a, b)

	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}

		// Changes land on whole dump lines, never inside one.
		if !strings.HasSuffix(d.Text, "\n") {
			t.Errorf("change %q is not line aligned", d.Text)
		}
	}
}

func TestTrimContext(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "c", "d", "e", "f", "g"}

	got := trimContext(lines, 2, false, false)
	want := []string{"a", "b", "... 3 lines elided ...", "f", "g"}

	if len(got) != len(want) {
		t.Fatalf("trimContext = %v, want %v", got, want)
	}

	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTrimContextEdges(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "c", "d"}

	first := trimContext(lines, 1, true, false)
	if first[0] != "... 3 lines elided ..." || first[1] != "d" {
		t.Errorf("first block = %v, want elision then trailing context", first)
	}

	last := trimContext(lines, 1, false, true)
	if last[0] != "a" || last[1] != "... 3 lines elided ..." {
		t.Errorf("last block = %v, want leading context then elision", last)
	}

	short := trimContext(lines, 2, false, false)
	if len(short) != len(lines) {
		t.Errorf("short block trimmed: %v", short)
	}
}

func TestPrintDiffSummary(t *testing.T) {
	t.Parallel()

	diffs := []diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffEqual, Text: "same\n"},
		{Type: diffmatchpatch.DiffDelete, Text: "one\ntwo\n"},
		{Type: diffmatchpatch.DiffInsert, Text: "three\n"},
	}

	var buf bytes.Buffer
	printDiffSummary(diffs, "a.py", "b.py", &buf)

	want := "a.py -> b.py: +1 -2 dump lines\n"
	if buf.String() != want {
		t.Errorf("summary = %q, want %q", buf.String(), want)
	}
}
