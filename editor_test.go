package builder

import (
	"errors"
	"testing"
	"time"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

func textSection(id, title, text string, order int) page.Section {
	return page.Section{ID: id, Title: title, Kind: page.KindText, Content: page.TextContent{Text: text}, Order: order}
}

func TestEditorClosedByDefault(t *testing.T) {
	e := NewEditor()
	if e.IsOpen() {
		t.Error("new editor reports open")
	}
	if e.Editing() != "" {
		t.Errorf("Editing = %q, want empty", e.Editing())
	}
	if _, err := e.Draft(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Draft = %v, want ErrNoSession", err)
	}
	if err := e.Mutate(func(*page.Draft) {}); !errors.Is(err, ErrNoSession) {
		t.Errorf("Mutate = %v, want ErrNoSession", err)
	}
	if _, err := e.Save(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Save = %v, want ErrNoSession", err)
	}
}

func TestEditorOpenSeedsDraft(t *testing.T) {
	e := NewEditor()
	e.Open(textSection("s-1", "Intro", "hello", 2))
	if e.Editing() != "s-1" {
		t.Errorf("Editing = %q, want s-1", e.Editing())
	}
	d, err := e.Draft()
	if err != nil {
		t.Fatal(err)
	}
	if d.Title != "Intro" || d.Text != "hello" || d.Order != 2 {
		t.Errorf("draft = %+v", d)
	}
}

func TestEditorSaveCommitsAndCloses(t *testing.T) {
	e := NewEditor()
	sec := textSection("s-1", "Old", "old", 1)
	e.Open(sec)
	if err := e.Mutate(func(d *page.Draft) {
		d.Title = "New"
		d.Text = "new body"
	}); err != nil {
		t.Fatal(err)
	}
	got, err := e.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got.ID != "s-1" || got.Order != 1 {
		t.Errorf("identity changed: %+v", got)
	}
	if got.Title != "New" {
		t.Errorf("Title = %q, want New", got.Title)
	}
	if e.IsOpen() {
		t.Error("editor still open after save")
	}
}

func TestEditorCancelDiscards(t *testing.T) {
	e := NewEditor()
	e.Open(textSection("s-1", "Intro", "keep", 0))
	if err := e.Mutate(func(d *page.Draft) { d.Text = "discard me" }); err != nil {
		t.Fatal(err)
	}
	e.Cancel()
	if e.IsOpen() {
		t.Error("editor still open after cancel")
	}

	// Reopening seeds fresh from the section, not the abandoned draft.
	e.Open(textSection("s-1", "Intro", "keep", 0))
	d, err := e.Draft()
	if err != nil {
		t.Fatal(err)
	}
	if d.Text != "keep" {
		t.Errorf("Text = %q, want the original content", d.Text)
	}
}

func TestEditorOpenReplacesSession(t *testing.T) {
	e := NewEditor()
	e.Open(textSection("s-1", "First", "", 0))
	e.Open(textSection("s-2", "Second", "", 1))
	if e.Editing() != "s-2" {
		t.Errorf("Editing = %q, want s-2", e.Editing())
	}
}

func TestEditorKindSwitchMidSession(t *testing.T) {
	e := NewEditor()
	e.Open(textSection("s-1", "Intro", "words", 0))
	if err := e.Mutate(func(d *page.Draft) { d.SwitchKind(page.KindChart) }); err != nil {
		t.Fatal(err)
	}
	sec, err := e.Save()
	if err != nil {
		t.Fatal(err)
	}
	cc, ok := sec.Content.(page.ChartContent)
	if !ok {
		t.Fatalf("Content = %T, want ChartContent", sec.Content)
	}
	if cc.Data.Title != "Dataset" {
		t.Errorf("chart seeded with %+v, want defaults", cc.Data)
	}
}

func TestChartUpdatesDebounce(t *testing.T) {
	e := NewEditor()
	e.Open(page.Section{ID: "s-1", Kind: page.KindChart, Content: page.ChartContent{ChartKind: page.ChartBar, Data: page.DefaultChartData()}})

	for i, title := range []string{"first", "second", "final"} {
		data := page.DefaultChartData()
		data.Title = title
		if err := e.UpdateChartData(data); err != nil {
			t.Fatalf("update %d failed: %v", i, err)
		}
	}

	// Within the quiet window nothing has landed yet.
	d, err := e.Draft()
	if err != nil {
		t.Fatal(err)
	}
	if d.ChartData.Title == "final" {
		t.Error("update landed before the debounce window elapsed")
	}

	time.Sleep(chartDebounceWait + 100*time.Millisecond)
	d, err = e.Draft()
	if err != nil {
		t.Fatal(err)
	}
	if d.ChartData.Title != "final" {
		t.Errorf("Title = %q, want only the last update applied", d.ChartData.Title)
	}
}

func TestPendingChartDroppedOnCancel(t *testing.T) {
	e := NewEditor()
	e.Open(page.Section{ID: "s-1", Kind: page.KindChart, Content: page.ChartContent{ChartKind: page.ChartBar, Data: page.DefaultChartData()}})

	data := page.DefaultChartData()
	data.Title = "stale"
	if err := e.UpdateChartData(data); err != nil {
		t.Fatal(err)
	}
	e.Cancel()

	e.Open(textSection("s-2", "Next", "", 0))
	time.Sleep(chartDebounceWait + 100*time.Millisecond)
	d, err := e.Draft()
	if err != nil {
		t.Fatal(err)
	}
	if d.ChartData.Title == "stale" {
		t.Error("stale debounced update landed in a new session")
	}
}

func TestUpdateChartDataRequiresSession(t *testing.T) {
	e := NewEditor()
	if err := e.UpdateChartData(page.DefaultChartData()); !errors.Is(err, ErrNoSession) {
		t.Errorf("UpdateChartData = %v, want ErrNoSession", err)
	}
}
