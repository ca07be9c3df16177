package page

import "testing"

func TestNewDraftSeedsFromContent(t *testing.T) {
	sec := Section{
		ID:    "s-1",
		Title: "Numbers",
		Kind:  KindChart,
		Content: ChartContent{
			ChartKind: ChartPie,
			Data:      ChartData{Labels: []string{"a"}, Values: []float64{1}, Title: "T"},
		},
		Order: 2,
	}
	d := NewDraft(sec)
	if d.SectionID != "s-1" || d.Order != 2 || d.Title != "Numbers" {
		t.Errorf("header fields: %+v", d)
	}
	if d.ChartKind != ChartPie {
		t.Errorf("ChartKind = %q, want pie", d.ChartKind)
	}
	if len(d.ChartData.Labels) != 1 || d.ChartData.Labels[0] != "a" {
		t.Errorf("ChartData = %+v", d.ChartData)
	}
}

func TestNewDraftInvalidChartDataGetsDefaults(t *testing.T) {
	sec := Section{ID: "s-1", Kind: KindChart, Content: ChartContent{ChartKind: ChartBar}}
	d := NewDraft(sec)
	if d.ChartData.Title != "Dataset" {
		t.Errorf("ChartData = %+v, want defaults", d.ChartData)
	}
}

func TestSwitchKindResetsTarget(t *testing.T) {
	d := NewDraft(Section{ID: "s-1", Kind: KindText, Content: TextContent{Text: "hello"}})

	d.SwitchKind(KindCards)
	if d.Kind != KindCards {
		t.Fatalf("Kind = %q, want cards", d.Kind)
	}
	if len(d.Cards) != 3 {
		t.Errorf("cards seeded with %d entries, want 3", len(d.Cards))
	}

	d.SwitchKind(KindText)
	if d.Text != "" {
		t.Errorf("Text = %q, want reset on switch back", d.Text)
	}
}

func TestSwitchKindKeepsChartData(t *testing.T) {
	d := NewDraft(Section{ID: "s-1", Kind: KindChart, Content: ChartContent{
		ChartKind: ChartLine,
		Data:      ChartData{Labels: []string{"x"}, Values: []float64{7}},
	}})
	d.SwitchKind(KindText)
	d.SwitchKind(KindChart)
	if len(d.ChartData.Labels) != 1 || d.ChartData.Labels[0] != "x" {
		t.Errorf("chart data lost across kind switches: %+v", d.ChartData)
	}
}

func TestSwitchKindInvalidIsNoop(t *testing.T) {
	d := NewDraft(Section{ID: "s-1", Kind: KindText, Content: TextContent{Text: "keep"}})
	d.SwitchKind(Kind("video"))
	if d.Kind != KindText || d.Text != "keep" {
		t.Errorf("draft changed on invalid kind: %+v", d)
	}
}

func TestResizeCards(t *testing.T) {
	var d Draft
	d.ResizeCards(3)
	if len(d.Cards) != 3 {
		t.Fatalf("len = %d, want 3", len(d.Cards))
	}
	if d.Cards[2].Title != "Card 3" {
		t.Errorf("padded title = %q, want Card 3", d.Cards[2].Title)
	}

	d.Cards[0].Title = "Kept"
	d.ResizeCards(5)
	if d.Cards[0].Title != "Kept" {
		t.Errorf("existing card lost on grow")
	}
	if d.Cards[4].Title != "Card 5" {
		t.Errorf("padded title = %q, want Card 5", d.Cards[4].Title)
	}

	d.ResizeCards(2)
	if len(d.Cards) != 2 {
		t.Errorf("len = %d, want 2 after shrink", len(d.Cards))
	}
}

func TestResizeCardsClamps(t *testing.T) {
	var d Draft
	d.ResizeCards(0)
	if len(d.Cards) != MinCards {
		t.Errorf("len = %d, want %d", len(d.Cards), MinCards)
	}
	d.ResizeCards(50)
	if len(d.Cards) != MaxCards {
		t.Errorf("len = %d, want %d", len(d.Cards), MaxCards)
	}
}

func TestApplyPreservesIdentityAndOrder(t *testing.T) {
	sec := Section{ID: "s-1", Title: "Old", Kind: KindText, Content: TextContent{Text: "old"}, Order: 4}
	d := NewDraft(sec)
	d.Title = "New"
	d.Text = "new body"

	got := d.Apply(sec)
	if got.ID != "s-1" || got.Order != 4 {
		t.Errorf("identity changed: %+v", got)
	}
	if got.Title != "New" {
		t.Errorf("Title = %q, want New", got.Title)
	}
	tc, ok := got.Content.(TextContent)
	if !ok || tc.Text != "new body" {
		t.Errorf("Content = %#v", got.Content)
	}
}

func TestPackChartFillsBaseColor(t *testing.T) {
	d := Draft{Kind: KindChart, ChartKind: ChartBar, ChartData: ChartData{Labels: []string{"a"}, Values: []float64{1}}}
	cc := d.Pack().(ChartContent)
	if cc.Data.BaseColor != DefaultBaseColor {
		t.Errorf("BaseColor = %q, want default filled on pack", cc.Data.BaseColor)
	}
}
