package page

import "fmt"

// Card count bounds enforced by the editor.
const (
	MinCards = 1
	MaxCards = 10
)

// Draft is the editor's working copy of a single section: every per-kind
// field unpacked into an editable shape. It is pure data; the edit
// session lifecycle around it lives in the builder engine.
type Draft struct {
	SectionID string
	Order     int
	Title     string
	Kind      Kind
	Text      string
	Images    []ImageItem
	Cards     []Card
	ChartKind ChartKind
	ChartData ChartData
}

// NewDraft seeds a working copy from the section's current content. The
// non-active kinds get their defaults so switching kind mid-edit always
// finds a sane payload.
func NewDraft(s Section) Draft {
	d := Draft{
		SectionID: s.ID,
		Order:     s.Order,
		Title:     s.Title,
		Kind:      s.Kind,
		ChartKind: ChartBar,
		ChartData: DefaultChartData(),
	}
	switch c := s.Content.(type) {
	case TextContent:
		d.Text = c.Text
	case ImageContent:
		d.Images = append([]ImageItem(nil), c.Images...)
	case CardsContent:
		d.Cards = append([]Card(nil), c.Cards...)
	case ChartContent:
		d.ChartKind = c.ChartKind
		if c.Data.Validate() == nil {
			d.ChartData = c.Data
		}
	}
	return d
}

// SwitchKind changes the working kind, resetting the target kind's
// payload to its default unless compatible data is already in the draft.
// Chart data in particular survives chart sub-option switches so
// in-progress edits are not discarded.
func (d *Draft) SwitchKind(k Kind) {
	if !k.Valid() || k == d.Kind {
		return
	}
	d.Kind = k
	switch k {
	case KindText:
		d.Text = ""
	case KindImage:
		d.Images = nil
	case KindCards:
		if len(d.Cards) == 0 {
			d.ResizeCards(3)
		}
	case KindChart:
		if d.ChartKind == "" {
			d.ChartKind = ChartBar
		}
		if len(d.ChartData.Labels) == 0 {
			d.ChartData = DefaultChartData()
		}
	}
}

// SwitchChartKind changes only the chart sub-option, leaving the dataset
// alone.
func (d *Draft) SwitchChartKind(ck ChartKind) {
	if ck.Valid() {
		d.ChartKind = ck
	}
}

// ResizeCards grows or shrinks the card list to n entries, preserving
// existing cards by index and padding new ones with an auto-numbered
// title and empty content. n is clamped to the editor bounds.
func (d *Draft) ResizeCards(n int) {
	if n < MinCards {
		n = MinCards
	}
	if n > MaxCards {
		n = MaxCards
	}
	for len(d.Cards) < n {
		d.Cards = append(d.Cards, Card{Title: fmt.Sprintf("Card %d", len(d.Cards)+1)})
	}
	d.Cards = d.Cards[:n]
}

// Pack re-assembles the draft's active kind into a content payload.
func (d Draft) Pack() Content {
	switch d.Kind {
	case KindImage:
		return ImageContent{Images: d.Images}
	case KindCards:
		return CardsContent{Cards: d.Cards}
	case KindChart:
		data := d.ChartData
		data.BaseColor = data.Color()
		return ChartContent{ChartKind: d.ChartKind, Data: data}
	default:
		return TextContent{Text: d.Text}
	}
}

// Apply commits the draft onto the section it was seeded from: title,
// kind, and packed content change; id and order never do.
func (d Draft) Apply(s Section) Section {
	s.Title = d.Title
	s.Kind = d.Kind
	s.Content = d.Pack()
	return s
}
