package builder

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/superme-Sophie/manus-dynamic-section/page"
	"github.com/superme-Sophie/manus-dynamic-section/palette"
	"github.com/superme-Sophie/manus-dynamic-section/views"
)

// Export renders the section list as a single self-contained HTML
// document. The markup of each section matches the live page; the only
// difference is that chart placeholders carry the raw dataset and an
// inline script derives the colors in the browser, so the file needs no
// server to display.
func Export(site views.Site, sections []page.Section) string {
	var buf bytes.Buffer

	buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	buf.WriteString(`<meta charset="UTF-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	buf.WriteString(`<title>` + html.EscapeString(site.Title) + `</title>`)
	buf.WriteString(`<script src="` + views.ChartCDNURL + `"></script>`)
	buf.WriteString(`<style>`)
	views.WriteStyle(&buf, site.Theme)
	buf.WriteString(`</style></head><body>`)

	buf.WriteString(`<header><div class="container header-content">`)
	buf.WriteString(`<div class="logo">` + html.EscapeString(site.Title) + `</div>`)
	buf.WriteString(`<nav>`)
	views.WriteNav(&buf, sections)
	buf.WriteString(`</nav></div></header>`)

	buf.WriteString(`<div class="hero"><div class="container hero-content">`)
	buf.WriteString(`<h1>` + html.EscapeString(site.Title) + `</h1>`)
	buf.WriteString(`<p>` + html.EscapeString(site.Tagline) + `</p>`)
	buf.WriteString(`</div></div>`)

	for _, s := range page.SortByOrder(sections) {
		views.WriteSection(&buf, s, views.Export)
	}

	buf.WriteString(`<footer><div class="container footer-content">`)
	fmt.Fprintf(&buf, `<div class="copyright">&copy; %d %s</div>`, time.Now().Year(), html.EscapeString(site.Title))
	buf.WriteString(`</div></footer>`)

	buf.WriteString(`<script>`)
	buf.WriteString(palette.Script())
	buf.WriteString(`</script>`)
	buf.WriteString(`</body></html>`)

	return buf.String()
}

// ExportFilename derives the download filename for an exported page.
func ExportFilename(title string) string {
	slug := Slugify(title)
	if slug == "" {
		slug = "page"
	}
	return slug + ".html"
}
