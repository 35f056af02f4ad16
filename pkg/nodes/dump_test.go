package nodes

import (
	"strings"
	"testing"
)

func TestReprTreeLeaf(t *testing.T) {
	t.Parallel()

	got := ReprTree(NewName("x", 1, 0), DumpOptions{})
	want := "Name(\n  name=\"x\")"

	if got != want {
		t.Errorf("ReprTree = %q, want %q", got, want)
	}
}

func TestReprTreeShowPosition(t *testing.T) {
	t.Parallel()

	got := ReprTree(NewName("x", 3, 7), DumpOptions{ShowPosition: true})

	if !strings.Contains(got, "position=(3, 7)") {
		t.Errorf("missing position in %q", got)
	}
}

func TestReprTreeNested(t *testing.T) {
	t.Parallel()

	got := ReprTree(makeAssign(1), DumpOptions{})

	for _, part := range []string{"Assign(", "targets=[AssignName(", "value=Const(", "raw=\"1\""} {
		if !strings.Contains(got, part) {
			t.Errorf("dump missing %q:\n%s", part, got)
		}
	}
}

func TestReprTreeMaxDepth(t *testing.T) {
	t.Parallel()

	got := ReprTree(makeAssign(1), DumpOptions{MaxDepth: 1})

	if !strings.Contains(got, "AssignName(...)") {
		t.Errorf("depth-truncated children should elide fields:\n%s", got)
	}

	if strings.Contains(got, "name=") {
		t.Errorf("truncated dump should not expand grandchildren:\n%s", got)
	}
}

func TestReprTreeMaxWidth(t *testing.T) {
	t.Parallel()

	m := NewModule("mod", "", "", false, nil)
	m.PostInit([]Node{makeAssign(1), makeAssign(2), makeAssign(3)})

	got := ReprTree(m, DumpOptions{MaxWidth: 1})

	if !strings.Contains(got, "... 2 more") {
		t.Errorf("width-truncated sequence should be elided:\n%s", got)
	}
}

func TestReprTreeEmptySlot(t *testing.T) {
	t.Parallel()

	r := NewReturn(1, 0)
	r.PostInit(Empty)

	got := ReprTree(r, DumpOptions{})

	if !strings.Contains(got, "value=Empty") {
		t.Errorf("empty slot should print Empty:\n%s", got)
	}
}

func TestReprTreeShowDerived(t *testing.T) {
	t.Parallel()

	f := makeFunc()

	m := NewModule("mod", "", "", false, nil)
	m.PostInit([]Node{f})

	got := ReprTree(f, DumpOptions{ShowDerived: true})

	if !strings.Contains(got, "qname=\"mod.f\"") {
		t.Errorf("derived dump should carry the qualified name:\n%s", got)
	}

	if !strings.Contains(got, "format=\"a\"") {
		t.Errorf("derived dump should format the parameter list:\n%s", got)
	}
}

func TestReprTreeIDsDiffer(t *testing.T) {
	t.Parallel()

	a, b := NewName("x", 1, 0), NewName("x", 1, 0)

	da := ReprTree(a, DumpOptions{ShowIDs: true})
	db := ReprTree(b, DumpOptions{ShowIDs: true})

	if da == db {
		t.Errorf("identity-tagged dumps of distinct nodes should differ")
	}
}
