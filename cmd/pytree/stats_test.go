package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
)

func makeStatsModule() *nodes.Module {
	assign := func(line int) *nodes.Assign {
		a := nodes.NewAssign(line, 0)
		a.PostInit([]nodes.Node{nodes.NewAssignName("x", line, 0)}, nodes.NewConst(int64(1), "1", line, 4))

		return a
	}

	m := nodes.NewModule("m", "", "", false, nil)
	m.PostInit([]nodes.Node{assign(1), assign(2)})

	return m
}

func TestCountKinds(t *testing.T) {
	t.Parallel()

	counts, total := countKinds(makeStatsModule())

	// Module + 2 * (Assign, AssignName, Const).
	if total != 7 {
		t.Fatalf("total = %d, want 7", total)
	}

	want := map[nodes.Kind]int{
		nodes.KindModule:     1,
		nodes.KindAssign:     2,
		nodes.KindAssignName: 2,
		nodes.KindConst:      2,
	}

	for _, kc := range counts {
		if kc.count != want[kc.kind] {
			t.Errorf("count[%s] = %d, want %d", kc.kind, kc.count, want[kc.kind])
		}

		delete(want, kc.kind)
	}

	if len(want) != 0 {
		t.Errorf("kinds missing from tally: %v", want)
	}

	// Sorted by count descending, ties by kind name.
	if counts[len(counts)-1].kind != nodes.KindModule {
		t.Errorf("least frequent kind = %s, want Module", counts[len(counts)-1].kind)
	}
}

func TestRenderKindTableTop(t *testing.T) {
	t.Parallel()

	counts, total := countKinds(makeStatsModule())

	var buf bytes.Buffer
	renderKindTable(counts, total, 1, &buf)

	out := buf.String()
	if !strings.Contains(out, "Assign") {
		t.Errorf("table missing most frequent kind: %q", out)
	}

	if strings.Contains(out, "Module") {
		t.Errorf("table should be cut to the top entry: %q", out)
	}
}
