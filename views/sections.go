package views

import (
	"bytes"
	"encoding/json"

	"github.com/a-h/templ"

	"github.com/superme-Sophie/manus-dynamic-section/page"
	"github.com/superme-Sophie/manus-dynamic-section/palette"
)

// Mode selects how chart placeholders carry their parameters. Live
// placeholders embed colors precomputed natively by the palette; export
// placeholders embed the raw dataset and leave color derivation to the
// script the exporter inlines. Every other kind renders identically in
// both modes.
type Mode int

const (
	Live Mode = iota
	Export
)

// SectionComponent wraps one section as a templ component.
func SectionComponent(s page.Section, mode Mode) templ.Component {
	return component(func(buf *bytes.Buffer) {
		WriteSection(buf, s, mode)
	})
}

// WriteSection emits the full section container: id anchor, heading, and
// the per-kind body.
func WriteSection(buf *bytes.Buffer, s page.Section, mode Mode) {
	buf.WriteString(`<section id="` + esc(s.ID) + `" class="content-section ` + esc(string(s.Kind)) + `-section">`)
	buf.WriteString(`<div class="container">`)
	buf.WriteString(`<div class="section-title"><h2>` + esc(s.Title) + `</h2></div>`)
	buf.WriteString(`<div class="section-content">`)
	WriteSectionBody(buf, s, mode)
	buf.WriteString(`</div></div></section>`)
}

// WriteSectionBody emits just the content body, dispatched on kind.
func WriteSectionBody(buf *bytes.Buffer, s page.Section, mode Mode) {
	switch c := s.Content.(type) {
	case page.TextContent:
		writeTextBody(buf, c)
	case page.ImageContent:
		writeImageBody(buf, c)
	case page.CardsContent:
		writeCardsBody(buf, c)
	case page.ChartContent:
		writeChartBody(buf, c, mode)
	default:
		buf.WriteString(`<div class="text-content"></div>`)
	}
}

func writeTextBody(buf *bytes.Buffer, c page.TextContent) {
	buf.WriteString(`<div class="text-content">`)
	writeParagraphs(buf, c.Paragraphs())
	buf.WriteString(`</div>`)
}

func writeParagraphs(buf *bytes.Buffer, paragraphs []string) {
	for _, p := range paragraphs {
		buf.WriteString(`<p>` + esc(p) + `</p>`)
	}
}

func writeImageBody(buf *bytes.Buffer, c page.ImageContent) {
	buf.WriteString(`<div class="image-content">`)
	grid := `<div class="image-grid">`
	if cls := c.GridClass(); cls != "" {
		grid = `<div class="image-grid ` + cls + `">`
	}
	buf.WriteString(grid)
	for i, img := range c.Images {
		buf.WriteString(`<div class="image-item"`)
		if img.Width > 0 && img.Height > 0 {
			buf.WriteString(` style="width: ` + itoa(img.Width) + `px; height: ` + itoa(img.Height) + `px;"`)
		}
		buf.WriteString(`>`)
		alt := img.Name
		if alt == "" {
			alt = "Image " + itoa(i+1)
		}
		buf.WriteString(`<img src="` + esc(img.Data) + `" alt="` + esc(alt) + `" class="section-image">`)
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</div></div>`)
}

func writeCardsBody(buf *bytes.Buffer, c page.CardsContent) {
	buf.WriteString(`<div class="cards-content">`)
	for _, card := range c.Cards {
		buf.WriteString(`<div class="card">`)
		buf.WriteString(`<h3 class="card-title">` + esc(card.Title) + `</h3>`)
		buf.WriteString(`<div class="card-body">`)
		writeParagraphs(buf, card.Paragraphs())
		buf.WriteString(`</div></div>`)
	}
	buf.WriteString(`</div>`)
}

// livePayload is the chart placeholder payload for the live page, with
// colors already derived by the native palette implementation.
type livePayload struct {
	Labels     []string  `json:"labels"`
	Values     []float64 `json:"values"`
	Title      string    `json:"title"`
	Background []string  `json:"background"`
	Border     []string  `json:"border"`
}

func writeChartBody(buf *bytes.Buffer, c page.ChartContent, mode Mode) {
	data := c.Data
	if err := data.Validate(); err != nil {
		buf.WriteString(`<div class="chart-error">`)
		buf.WriteString(`<h4>Invalid chart data</h4>`)
		buf.WriteString(`<p>` + esc(err.Error()) + `</p>`)
		buf.WriteString(`<pre>` + esc(c.RawPayload()) + `</pre>`)
		buf.WriteString(`</div>`)
		return
	}
	data.BaseColor = data.Color()

	var payload []byte
	var err error
	if mode == Live {
		colors := palette.Series(string(c.ChartKind), data.BaseColor, len(data.Labels))
		lp := livePayload{
			Labels: data.Labels,
			Values: data.Values,
			Title:  data.Title,
		}
		for _, col := range colors {
			lp.Background = append(lp.Background, col.Fill)
			lp.Border = append(lp.Border, col.Stroke)
		}
		payload, err = json.Marshal(lp)
	} else {
		payload, err = json.Marshal(data)
	}
	if err != nil {
		// Serialization of already-decoded data cannot realistically
		// fail; degrade to the error placeholder all the same.
		buf.WriteString(`<div class="chart-error"><h4>Invalid chart data</h4></div>`)
		return
	}

	buf.WriteString(`<div class="chart-content">`)
	buf.WriteString(`<div class="chart-container">`)
	buf.WriteString(`<canvas class="chart-canvas" data-type="` + esc(string(c.ChartKind)) + `" data-chart="` + esc(string(payload)) + `"></canvas>`)
	buf.WriteString(`</div></div>`)
}

// WriteNav emits the header navigation: one anchor link per section in
// order.
func WriteNav(buf *bytes.Buffer, sections []page.Section) {
	buf.WriteString(`<ul>`)
	for _, s := range page.SortByOrder(sections) {
		buf.WriteString(`<li><a href="#` + esc(s.ID) + `">` + esc(s.Title) + `</a></li>`)
	}
	buf.WriteString(`</ul>`)
}
