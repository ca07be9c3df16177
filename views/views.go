// Package views renders the page builder's HTML: the live page
// projection of a section list, the password-gated builder surface, and
// the shared per-section body markup that the static exporter reuses so
// live and exported output cannot diverge.
//
// Components are hand-written emitters into a bytes.Buffer wrapped in
// templ.ComponentFunc; rendering is a pure projection of its inputs and
// never mutates a section.
package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// ChartCDNURL is the public charting library loaded by the live page and
// referenced from every exported document.
const ChartCDNURL = "https://cdn.jsdelivr.net/npm/chart.js@3.9.1/dist/chart.min.js"

// Site carries the fixed page shell: display title, tagline, and the
// theme passed in by its single owner (the builder configuration).
type Site struct {
	Title   string
	Tagline string
	Theme   page.Theme
}

// component adapts a buffer emitter into a templ.Component.
func component(emit func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		emit(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// esc escapes text content and attribute values. User-entered text is
// always escaped on output, in the live page and in exported documents
// alike.
func esc(s string) string {
	return html.EscapeString(s)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
