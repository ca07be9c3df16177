package page

import (
	"fmt"
	"testing"
)

func makeSections(n int) []Section {
	out := make([]Section, n)
	for i := range out {
		out[i] = Section{
			ID:      fmt.Sprintf("s-%d", i),
			Title:   fmt.Sprintf("Section %d", i),
			Kind:    KindText,
			Content: TextContent{},
			Order:   i,
		}
	}
	return out
}

func assertDense(t *testing.T, sections []Section) {
	t.Helper()
	ordered := SortByOrder(sections)
	for i, s := range ordered {
		if s.Order != i {
			t.Fatalf("order not dense: position %d has Order %d (%v)", i, s.Order, ids(ordered))
		}
	}
}

func ids(sections []Section) []string {
	out := make([]string, len(sections))
	for i, s := range SortByOrder(sections) {
		out[i] = s.ID
	}
	return out
}

func assertIDs(t *testing.T, sections []Section, want ...string) {
	t.Helper()
	got := ids(sections)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAppend(t *testing.T) {
	sections, added := Append(makeSections(2))
	if len(sections) != 3 {
		t.Fatalf("len = %d, want 3", len(sections))
	}
	if added.Order != 2 {
		t.Errorf("new section Order = %d, want 2", added.Order)
	}
	assertDense(t, sections)
}

func TestAppendToEmpty(t *testing.T) {
	sections, added := Append(nil)
	if len(sections) != 1 || added.Order != 0 {
		t.Fatalf("got %d sections, first Order %d", len(sections), added.Order)
	}
}

func TestRemoveReindexes(t *testing.T) {
	sections := Remove(makeSections(4), "s-1")
	assertIDs(t, sections, "s-0", "s-2", "s-3")
	assertDense(t, sections)
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	sections := Remove(makeSections(3), "missing")
	assertIDs(t, sections, "s-0", "s-1", "s-2")
}

func TestMoveSwapsNeighbors(t *testing.T) {
	sections := Move(makeSections(3), "s-1", Up)
	assertIDs(t, sections, "s-1", "s-0", "s-2")
	assertDense(t, sections)

	sections = Move(sections, "s-1", Down)
	assertIDs(t, sections, "s-0", "s-1", "s-2")
	assertDense(t, sections)
}

func TestMoveBoundariesAreNoops(t *testing.T) {
	base := makeSections(3)
	up := Move(base, "s-0", Up)
	assertIDs(t, up, "s-0", "s-1", "s-2")
	down := Move(base, "s-2", Down)
	assertIDs(t, down, "s-0", "s-1", "s-2")
}

func TestMoveUnknownIDIsNoop(t *testing.T) {
	sections := Move(makeSections(3), "missing", Up)
	assertIDs(t, sections, "s-0", "s-1", "s-2")
}

func TestReorderSplices(t *testing.T) {
	sections := Reorder(makeSections(4), 3, 0)
	assertIDs(t, sections, "s-3", "s-0", "s-1", "s-2")
	assertDense(t, sections)

	sections = Reorder(makeSections(4), 0, 2)
	assertIDs(t, sections, "s-1", "s-2", "s-0", "s-3")
	assertDense(t, sections)
}

func TestReorderOutOfRangeIsNoop(t *testing.T) {
	base := makeSections(3)
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		got := Reorder(base, pair[0], pair[1])
		assertIDs(t, got, "s-0", "s-1", "s-2")
	}
}

func TestReplacePreservesOrder(t *testing.T) {
	base := makeSections(3)
	updated := base[1]
	updated.Title = "Renamed"
	updated.Order = 99
	got := Replace(base, updated)
	s, ok := FindByID(got, "s-1")
	if !ok {
		t.Fatal("s-1 missing after Replace")
	}
	if s.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", s.Title)
	}
	if s.Order != 1 {
		t.Errorf("Order = %d, want 1 (order never changes on replace)", s.Order)
	}
}

// Density must hold after any sequence of collection operations.
func TestOperationSequencesKeepDensity(t *testing.T) {
	sections := makeSections(1)
	ops := []func([]Section) []Section{
		func(s []Section) []Section { out, _ := Append(s); return out },
		func(s []Section) []Section { out, _ := Append(s); return out },
		func(s []Section) []Section { return Move(s, "s-0", Down) },
		func(s []Section) []Section { out, _ := Append(s); return out },
		func(s []Section) []Section { return Remove(s, "s-0") },
		func(s []Section) []Section { return Reorder(s, 2, 0) },
		func(s []Section) []Section { return Move(s, ids(s)[0], Up) },
		func(s []Section) []Section { return Remove(s, ids(s)[len(s)-1]) },
	}
	for i, op := range ops {
		sections = op(sections)
		if t.Failed() {
			t.Fatalf("density broken after op %d", i)
		}
		assertDense(t, sections)
	}
}

// A section added, moved to the top, and surviving a delete of its
// neighbor keeps a coherent position throughout.
func TestAddMoveDeleteScenario(t *testing.T) {
	sections := makeSections(2)
	sections, added := Append(sections)

	sections = Move(sections, added.ID, Up)
	sections = Move(sections, added.ID, Up)
	assertIDs(t, sections, added.ID, "s-0", "s-1")

	sections = Remove(sections, "s-0")
	assertIDs(t, sections, added.ID, "s-1")
	assertDense(t, sections)
}
