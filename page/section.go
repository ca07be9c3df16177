// Package page defines the typed section content model and the pure
// operations over an ordered section collection. It has no knowledge of
// storage or HTTP; the builder engine layers those on top.
package page

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind discriminates the content shape of a section. It is fixed for a
// section's lifetime: changing kind in the editor produces a new payload,
// never a mutation of the old one.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindCards Kind = "cards"
	KindChart Kind = "chart"
)

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindImage, KindCards, KindChart:
		return true
	}
	return false
}

// Label returns the human-readable name shown in the builder sidebar.
func (k Kind) Label() string {
	switch k {
	case KindText:
		return "Text"
	case KindImage:
		return "Images"
	case KindCards:
		return "Cards"
	case KindChart:
		return "Chart"
	}
	return string(k)
}

// ChartKind selects the chart rendering mode.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
	ChartPie  ChartKind = "pie"
)

// Valid reports whether ck is a known chart kind.
func (ck ChartKind) Valid() bool {
	return ck == ChartBar || ck == ChartLine || ck == ChartPie
}

// DefaultBaseColor is the theme blue substituted when chart data carries
// no base color of its own.
const DefaultBaseColor = "#3a6ea5"

// Content is the variant payload of a section, keyed by Kind.
type Content interface {
	Kind() Kind
}

// TextContent is a multi-line string rendered as one paragraph per line.
type TextContent struct {
	Text string
}

func (TextContent) Kind() Kind { return KindText }

// Paragraphs splits the text on newlines. Empty input yields none.
func (t TextContent) Paragraphs() []string {
	return SplitParagraphs(t.Text)
}

// SplitParagraphs is the single paragraph-splitting rule shared by text
// and card content: one paragraph per newline-separated line, zero
// paragraphs for empty input.
func SplitParagraphs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// ImageItem is one uploaded image: a data-URI payload plus the original
// filename. Width/Height, when positive, override the natural size.
type ImageItem struct {
	Data   string `json:"data"`
	Name   string `json:"name"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ImageContent is an ordered list of images laid out as a grid.
type ImageContent struct {
	Images []ImageItem
}

func (ImageContent) Kind() Kind { return KindImage }

// GridClass maps the image count onto the discrete layout class:
// 1 image is a single column, 2 images two columns, 3 or more three
// columns. An empty list has no class.
func (ic ImageContent) GridClass() string {
	switch n := len(ic.Images); {
	case n == 0:
		return ""
	case n == 1:
		return "grid-1"
	case n == 2:
		return "grid-2"
	default:
		return "grid-3"
	}
}

// Card is one entry of a card grid. Its content splits into paragraphs
// exactly like text content.
type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Paragraphs splits the card body on newlines.
func (c Card) Paragraphs() []string {
	return SplitParagraphs(c.Content)
}

// CardsContent is an ordered list of cards.
type CardsContent struct {
	Cards []Card
}

func (CardsContent) Kind() Kind { return KindCards }

// ChartData is the dataset behind a chart section.
type ChartData struct {
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Title     string    `json:"title"`
	BaseColor string    `json:"baseColor"`
}

// chartDataWire tolerates the legacy "mainColor" key alongside
// "baseColor" when decoding stored payloads.
type chartDataWire struct {
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Title     string    `json:"title"`
	BaseColor string    `json:"baseColor"`
	MainColor string    `json:"mainColor"`
}

// UnmarshalJSON accepts either baseColor or the legacy mainColor key.
func (d *ChartData) UnmarshalJSON(b []byte) error {
	var w chartDataWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	d.Labels = w.Labels
	d.Values = w.Values
	d.Title = w.Title
	d.BaseColor = w.BaseColor
	if d.BaseColor == "" {
		d.BaseColor = w.MainColor
	}
	return nil
}

// Color returns the dataset's base color, falling back to the theme blue.
func (d ChartData) Color() string {
	if d.BaseColor == "" {
		return DefaultBaseColor
	}
	return d.BaseColor
}

// Validate reports why the dataset cannot be rendered, or nil. Rendering
// requires labels and values of equal, nonzero length.
func (d ChartData) Validate() error {
	if len(d.Labels) == 0 {
		return fmt.Errorf("chart data has no labels")
	}
	if len(d.Values) == 0 {
		return fmt.Errorf("chart data has no values")
	}
	if len(d.Labels) != len(d.Values) {
		return fmt.Errorf("chart data has %d labels but %d values", len(d.Labels), len(d.Values))
	}
	return nil
}

// ChartContent couples a chart kind with its dataset. Raw preserves the
// original payload text when the stored data could not be decoded, so
// renderers can show the offending input instead of a chart.
type ChartContent struct {
	ChartKind ChartKind `json:"type"`
	Data      ChartData `json:"data"`
	Raw       string    `json:"-"`
}

func (ChartContent) Kind() Kind { return KindChart }

// RawPayload returns the text shown in the error placeholder for a
// malformed chart: the undecodable input if there was one, otherwise the
// dataset re-encoded as JSON.
func (cc ChartContent) RawPayload() string {
	if cc.Raw != "" {
		return cc.Raw
	}
	b, err := json.MarshalIndent(cc.Data, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// DefaultContent returns the empty payload for a kind, as seeded into a
// freshly created or kind-switched section.
func DefaultContent(k Kind) Content {
	switch k {
	case KindImage:
		return ImageContent{}
	case KindCards:
		return CardsContent{}
	case KindChart:
		return ChartContent{ChartKind: ChartBar, Data: DefaultChartData()}
	default:
		return TextContent{}
	}
}

// DefaultChartData is the starter dataset shown when a chart section has
// no data of its own yet.
func DefaultChartData() ChartData {
	return ChartData{
		Labels:    []string{"Item 1", "Item 2", "Item 3"},
		Values:    []float64{10, 20, 30},
		Title:     "Dataset",
		BaseColor: DefaultBaseColor,
	}
}

// Section is one ordered, typed content block on the page.
type Section struct {
	ID      string
	Title   string
	Kind    Kind
	Content Content
	Order   int
}

// NewSection creates a default section: fresh id, "Untitled" title, text
// kind, empty content, and the given order rank.
func NewSection(order int) Section {
	return Section{
		ID:      "section-" + uuid.NewString(),
		Title:   "Untitled",
		Kind:    KindText,
		Content: TextContent{},
		Order:   order,
	}
}

// sectionWire is the JSON shape shared by the store and the export
// payloads: content is encoded per kind (string, array, or object).
type sectionWire struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Kind    Kind            `json:"type"`
	Content json.RawMessage `json:"content"`
	Order   int             `json:"order"`
}

// MarshalJSON encodes the section with its per-kind content shape.
func (s Section) MarshalJSON() ([]byte, error) {
	content, err := EncodeContent(s.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionWire{
		ID:      s.ID,
		Title:   s.Title,
		Kind:    s.Kind,
		Content: content,
		Order:   s.Order,
	})
}

// UnmarshalJSON decodes a section, substituting documented defaults for
// malformed content rather than failing.
func (s *Section) UnmarshalJSON(b []byte) error {
	var w sectionWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if !w.Kind.Valid() {
		w.Kind = KindText
	}
	s.ID = w.ID
	s.Title = w.Title
	s.Kind = w.Kind
	s.Order = w.Order
	s.Content = DecodeContent(w.Kind, w.Content)
	return nil
}

// EncodeContent serializes a content payload to its wire shape: a bare
// string for text, an array for images and cards, an object for charts.
func EncodeContent(c Content) (json.RawMessage, error) {
	switch v := c.(type) {
	case TextContent:
		return json.Marshal(v.Text)
	case ImageContent:
		if v.Images == nil {
			return json.Marshal([]ImageItem{})
		}
		return json.Marshal(v.Images)
	case CardsContent:
		if v.Cards == nil {
			return json.Marshal([]Card{})
		}
		return json.Marshal(v.Cards)
	case ChartContent:
		return json.Marshal(struct {
			ChartKind ChartKind `json:"type"`
			Data      ChartData `json:"data"`
		}{v.ChartKind, v.Data})
	case nil:
		return json.Marshal("")
	}
	return nil, fmt.Errorf("page: unknown content type %T", c)
}

// DecodeContent turns a raw wire payload back into typed content for the
// given kind. Malformed input never fails: it degrades to the kind's
// default shape, keeping the raw text around for chart error display.
// A single legacy image object decodes as a one-element list, and chart
// data given as a JSON string decodes as the object it contains.
func DecodeContent(k Kind, raw json.RawMessage) Content {
	switch k {
	case KindImage:
		var items []ImageItem
		if err := json.Unmarshal(raw, &items); err == nil {
			return ImageContent{Images: items}
		}
		var single ImageItem
		if err := json.Unmarshal(raw, &single); err == nil && single.Data != "" {
			return ImageContent{Images: []ImageItem{single}}
		}
		return ImageContent{}
	case KindCards:
		var cards []Card
		if err := json.Unmarshal(raw, &cards); err == nil {
			return CardsContent{Cards: cards}
		}
		return CardsContent{}
	case KindChart:
		return decodeChart(raw)
	default:
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			return TextContent{Text: text}
		}
		return TextContent{}
	}
}

func decodeChart(raw json.RawMessage) ChartContent {
	var w struct {
		ChartKind ChartKind       `json:"type"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return ChartContent{ChartKind: ChartBar, Raw: string(raw)}
	}
	if !w.ChartKind.Valid() {
		w.ChartKind = ChartBar
	}
	cc := ChartContent{ChartKind: w.ChartKind}
	if len(w.Data) == 0 {
		return cc
	}
	if err := json.Unmarshal(w.Data, &cc.Data); err == nil {
		return cc
	}
	// Older payloads store the dataset as an embedded JSON string.
	var s string
	if err := json.Unmarshal(w.Data, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &cc.Data); err == nil {
			return cc
		}
		cc.Raw = s
		return cc
	}
	cc.Raw = string(w.Data)
	return cc
}
