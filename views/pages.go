package views

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// LivePage is the on-screen projection of the current section list: the
// fixed shell (header nav, hero, footer) around one rendered section per
// entry, in order. Charts hydrate from /public/livechart.js using the
// colors precomputed into each placeholder.
func LivePage(site Site, sections []page.Section) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, site, site.Title)
		buf.WriteString(`<script src="/public/livechart.js" defer></script>`)
		buf.WriteString(`</head><body>`)
		writeShellHeader(buf, site, sections)
		for _, s := range page.SortByOrder(sections) {
			WriteSection(buf, s, Live)
		}
		writeShellFooter(buf, site)
		buf.WriteString(`</body></html>`)
	})
}

func writeHead(buf *bytes.Buffer, site Site, title string) {
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	buf.WriteString(`<meta charset="UTF-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	buf.WriteString(`<title>` + esc(title) + `</title>`)
	buf.WriteString(`<script src="` + ChartCDNURL + `"></script>`)
	buf.WriteString(`<style>`)
	WriteStyle(buf, site.Theme)
	buf.WriteString(`</style>`)
}

func writeShellHeader(buf *bytes.Buffer, site Site, sections []page.Section) {
	buf.WriteString(`<header><div class="container header-content">`)
	buf.WriteString(`<div class="logo">` + esc(site.Title) + `</div>`)
	buf.WriteString(`<nav>`)
	WriteNav(buf, sections)
	buf.WriteString(`</nav></div></header>`)
	buf.WriteString(`<div class="hero"><div class="container hero-content">`)
	buf.WriteString(`<h1>` + esc(site.Title) + `</h1>`)
	buf.WriteString(`<p>` + esc(site.Tagline) + `</p>`)
	buf.WriteString(`</div></div>`)
}

func writeShellFooter(buf *bytes.Buffer, site Site) {
	buf.WriteString(`<footer><div class="container footer-content">`)
	buf.WriteString(`<div class="copyright">&copy; ` + itoa(time.Now().Year()) + ` ` + esc(site.Title) + `</div>`)
	buf.WriteString(`</div></footer>`)
}

// NotFound renders the styled 404 page.
func NotFound(site Site) templ.Component {
	return statusPage(site, "404", "Page not found")
}

// ServerError renders the styled 500 page.
func ServerError(site Site) templ.Component {
	return statusPage(site, "500", "Something went wrong")
}

func statusPage(site Site, code, msg string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, site, code+" - "+site.Title)
		buf.WriteString(`</head><body>`)
		buf.WriteString(`<div class="hero"><div class="container hero-content">`)
		buf.WriteString(`<h1>` + esc(code) + `</h1><p>` + esc(msg) + `</p>`)
		buf.WriteString(`<p><a href="/" style="color: #fff">Back to the page</a></p>`)
		buf.WriteString(`</div></div></body></html>`)
	})
}

// --- Builder surface ---

func writeBuilderHead(buf *bytes.Buffer, site Site, title string) {
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	buf.WriteString(`<meta charset="UTF-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	buf.WriteString(`<title>` + esc(title) + `</title>`)
	// Chart scripts so the edit form's preview canvas hydrates like the
	// live page.
	buf.WriteString(`<script src="` + ChartCDNURL + `"></script>`)
	buf.WriteString(`<script src="/public/livechart.js" defer></script>`)
	buf.WriteString(`<style>` + builderStyle + `</style>`)
	buf.WriteString(`</head><body>`)
}

const builderStyle = `
        body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; background: #f4f5f7; color: #333; }
        .wrap { max-width: 860px; margin: 0 auto; padding: 30px 20px; }
        h1 { font-size: 1.4rem; } h2 { font-size: 1.1rem; margin-top: 30px; }
        .msg { background: #e7f5e7; border: 1px solid #9c9; border-radius: 4px; padding: 8px 12px; }
        .err { background: #fdecec; border: 1px solid #c99; border-radius: 4px; padding: 8px 12px; }
        table { width: 100%; border-collapse: collapse; background: #fff; }
        th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid #e3e3e3; }
        form.inline { display: inline; }
        input, select, textarea { font: inherit; padding: 6px 8px; margin: 4px 0; width: 100%; box-sizing: border-box; }
        input[type=number] { width: 90px; } input[type=color] { width: 60px; padding: 2px; }
        button { font: inherit; padding: 6px 12px; cursor: pointer; }
        .actions button { padding: 3px 8px; margin-right: 4px; }
        .card-editor { border: 1px solid #ddd; border-radius: 4px; padding: 10px 14px; margin: 10px 0; background: #fff; }
        .field { margin-bottom: 14px; } label { display: block; font-weight: 600; margin-bottom: 2px; }
        .toolbar a, .toolbar button { margin-right: 10px; }
`

// Login renders the builder password prompt.
func Login(site Site, showError bool, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeBuilderHead(buf, site, "Builder login - "+site.Title)
		buf.WriteString(`<div class="wrap"><h1>` + esc(site.Title) + ` builder</h1>`)
		if showError {
			buf.WriteString(`<p class="err">Wrong password.</p>`)
		}
		buf.WriteString(`<form method="post" action="/builder/login/">`)
		writeCSRF(buf, csrf)
		buf.WriteString(`<div class="field"><label for="password">Password</label>`)
		buf.WriteString(`<input id="password" type="password" name="password" autofocus></div>`)
		buf.WriteString(`<button type="submit">Log in</button>`)
		buf.WriteString(`</form></div></body></html>`)
	})
}

func writeCSRF(buf *bytes.Buffer, csrf string) {
	buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrf) + `">`)
}

// Dashboard lists the sections with add/move/edit/delete controls, the
// theme form, and the export actions.
func Dashboard(site Site, sections []page.Section, msg, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeBuilderHead(buf, site, "Builder - "+site.Title)
		buf.WriteString(`<div class="wrap"><h1>` + esc(site.Title) + ` builder</h1>`)
		if msg != "" {
			buf.WriteString(`<p class="msg">` + esc(msg) + `</p>`)
		}
		buf.WriteString(`<p class="toolbar">`)
		buf.WriteString(`<a href="/" target="_blank">View page</a> `)
		buf.WriteString(`<a href="/export/html/">Export HTML</a>`)
		buf.WriteString(`</p>`)

		buf.WriteString(`<h2>Sections</h2><table><tr><th>#</th><th>Title</th><th>Kind</th><th></th></tr>`)
		ordered := page.SortByOrder(sections)
		for _, s := range ordered {
			buf.WriteString(`<tr><td>` + itoa(s.Order) + `</td>`)
			buf.WriteString(`<td>` + esc(s.Title) + `</td>`)
			buf.WriteString(`<td>` + esc(s.Kind.Label()) + `</td>`)
			buf.WriteString(`<td class="actions">`)
			writeMoveForm(buf, s.ID, page.Up, csrf)
			writeMoveForm(buf, s.ID, page.Down, csrf)
			buf.WriteString(`<form class="inline" method="get" action="/builder/sections/` + esc(s.ID) + `/edit/"><button>Edit</button></form>`)
			buf.WriteString(`<form class="inline" method="post" action="/builder/sections/` + esc(s.ID) + `/delete/">`)
			writeCSRF(buf, csrf)
			buf.WriteString(`<button>Delete</button></form>`)
			buf.WriteString(`</td></tr>`)
		}
		buf.WriteString(`</table>`)
		buf.WriteString(`<form method="post" action="/builder/sections/add/" style="margin-top:10px">`)
		writeCSRF(buf, csrf)
		buf.WriteString(`<button type="submit">Add section</button></form>`)

		buf.WriteString(`<h2>Theme</h2>`)
		buf.WriteString(`<form method="post" action="/builder/theme/">`)
		writeCSRF(buf, csrf)
		theme := site.Theme.WithDefaults()
		buf.WriteString(`<label>Primary</label><input type="color" name="primary" value="` + esc(theme.Primary) + `">`)
		buf.WriteString(`<label>Secondary</label><input type="color" name="secondary" value="` + esc(theme.Secondary) + `">`)
		buf.WriteString(`<label>Accent</label><input type="color" name="accent" value="` + esc(theme.Accent) + `">`)
		buf.WriteString(`<p><button type="submit">Apply theme</button></p></form>`)

		buf.WriteString(`<h2>Raster export</h2>`)
		buf.WriteString(`<form method="post" action="/export/raster/">`)
		writeCSRF(buf, csrf)
		buf.WriteString(`<button type="submit">Export page as image</button></form>`)

		buf.WriteString(`<form method="post" action="/builder/logout/" style="margin-top:30px">`)
		writeCSRF(buf, csrf)
		buf.WriteString(`<button type="submit">Log out</button></form>`)
		buf.WriteString(`</div></body></html>`)
	})
}

func writeMoveForm(buf *bytes.Buffer, id string, dir page.Direction, csrf string) {
	arrow := "&uarr;"
	if dir == page.Down {
		arrow = "&darr;"
	}
	buf.WriteString(`<form class="inline" method="post" action="/builder/sections/` + esc(id) + `/move/">`)
	writeCSRF(buf, csrf)
	buf.WriteString(`<input type="hidden" name="direction" value="` + string(dir) + `">`)
	buf.WriteString(`<button>` + arrow + `</button></form>`)
}

// EditForm renders the per-kind editing form over the working copy,
// alongside a live preview of the draft packed back into a section.
func EditForm(site Site, draft page.Draft, csrf string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeBuilderHead(buf, site, "Edit section - "+site.Title)
		buf.WriteString(`<div class="wrap"><h1>Edit section</h1>`)

		// Kind switch posts immediately so the form re-seeds for the
		// new kind without committing anything.
		buf.WriteString(`<form method="post" action="/builder/sections/` + esc(draft.SectionID) + `/kind/">`)
		writeCSRF(buf, csrf)
		buf.WriteString(`<div class="field"><label for="kind">Section kind</label><select id="kind" name="kind" onchange="this.form.submit()">`)
		for _, k := range []page.Kind{page.KindText, page.KindImage, page.KindChart, page.KindCards} {
			sel := ""
			if k == draft.Kind {
				sel = ` selected`
			}
			buf.WriteString(`<option value="` + string(k) + `"` + sel + `>` + esc(k.Label()) + `</option>`)
		}
		buf.WriteString(`</select></div></form>`)

		buf.WriteString(`<form method="post" action="/builder/save/">`)
		writeCSRF(buf, csrf)
		buf.WriteString(`<div class="field"><label for="title">Section title</label>`)
		buf.WriteString(`<input id="title" type="text" name="title" value="` + esc(draft.Title) + `"></div>`)

		switch draft.Kind {
		case page.KindText:
			buf.WriteString(`<div class="field"><label for="text">Content</label>`)
			buf.WriteString(`<textarea id="text" name="text" rows="10">` + esc(draft.Text) + `</textarea></div>`)
		case page.KindImage:
			writeImageFields(buf, draft)
		case page.KindCards:
			writeCardFields(buf, draft)
		case page.KindChart:
			writeChartFields(buf, draft)
		}

		buf.WriteString(`<p><button type="submit">Save</button> `)
		buf.WriteString(`<button type="submit" formaction="/builder/sections/` + esc(draft.SectionID) + `/edit/">Update preview</button></p></form>`)
		buf.WriteString(`<form method="post" action="/builder/cancel/">`)
		writeCSRF(buf, csrf)
		buf.WriteString(`<button type="submit">Cancel</button></form>`)

		if draft.Kind == page.KindImage {
			writeUploadForm(buf, csrf)
		}

		buf.WriteString(`<h2>Preview</h2>`)
		preview := page.Section{ID: "preview", Title: draft.Title, Kind: draft.Kind, Content: draft.Pack()}
		buf.WriteString(`<div style="background:#fff;border:1px solid #ddd;border-radius:4px;padding:10px">`)
		WriteSectionBody(buf, preview, Live)
		buf.WriteString(`</div>`)
		buf.WriteString(`</div></body></html>`)
	})
}

func writeImageFields(buf *bytes.Buffer, draft page.Draft) {
	buf.WriteString(`<div class="field"><label>Images</label>`)
	if len(draft.Images) == 0 {
		buf.WriteString(`<p>No images yet. Upload below; JPG, PNG and GIF up to 5 MB.</p>`)
	}
	for i, img := range draft.Images {
		name := img.Name
		if name == "" {
			name = "Image " + itoa(i+1)
		}
		buf.WriteString(`<p>` + itoa(i+1) + `. ` + esc(name))
		if img.Width > 0 {
			buf.WriteString(` (` + itoa(img.Width) + `&times;` + itoa(img.Height) + `)`)
		}
		buf.WriteString(`</p>`)
	}
	buf.WriteString(`</div>`)
}

// The upload posts out-of-band into the open session; the save form
// itself carries no file data.
func writeUploadForm(buf *bytes.Buffer, csrf string) {
	buf.WriteString(`<form method="post" action="/builder/images/upload/" enctype="multipart/form-data">`)
	writeCSRF(buf, csrf)
	buf.WriteString(`<div class="field"><input type="file" name="image" accept="image/*">`)
	buf.WriteString(`<button type="submit">Upload</button></div></form>`)
}

func writeCardFields(buf *bytes.Buffer, draft page.Draft) {
	buf.WriteString(`<div class="field"><label for="cards-count">Card count (1-10)</label>`)
	buf.WriteString(`<input id="cards-count" type="number" name="cards_count" min="1" max="10" value="` + itoa(len(draft.Cards)) + `"></div>`)
	for i, card := range draft.Cards {
		buf.WriteString(`<div class="card-editor"><h3>Card ` + itoa(i+1) + `</h3>`)
		buf.WriteString(`<div class="field"><label>Card title</label>`)
		buf.WriteString(`<input type="text" name="card_title_` + itoa(i) + `" value="` + esc(card.Title) + `"></div>`)
		buf.WriteString(`<div class="field"><label>Card content</label>`)
		buf.WriteString(`<textarea name="card_content_` + itoa(i) + `" rows="4">` + esc(card.Content) + `</textarea></div>`)
		buf.WriteString(`</div>`)
	}
}

func writeChartFields(buf *bytes.Buffer, draft page.Draft) {
	buf.WriteString(`<div class="field"><label for="chart-kind">Chart type</label><select id="chart-kind" name="chart_kind">`)
	for _, ck := range []page.ChartKind{page.ChartBar, page.ChartLine, page.ChartPie} {
		sel := ""
		if ck == draft.ChartKind {
			sel = ` selected`
		}
		buf.WriteString(`<option value="` + string(ck) + `"` + sel + `>` + chartKindLabel(ck) + `</option>`)
	}
	buf.WriteString(`</select></div>`)
	buf.WriteString(`<div class="field"><label for="chart-title">Chart title</label>`)
	buf.WriteString(`<input id="chart-title" type="text" name="chart_title" value="` + esc(draft.ChartData.Title) + `"></div>`)
	buf.WriteString(`<div class="field"><label for="labels">Labels (comma separated)</label>`)
	buf.WriteString(`<input id="labels" type="text" name="labels" value="` + esc(strings.Join(draft.ChartData.Labels, ", ")) + `"></div>`)
	buf.WriteString(`<div class="field"><label for="values">Values (comma separated)</label>`)
	buf.WriteString(`<input id="values" type="text" name="values" value="` + esc(joinFloats(draft.ChartData.Values)) + `"></div>`)
	buf.WriteString(`<div class="field"><label for="base-color">Base color</label>`)
	buf.WriteString(`<input id="base-color" type="color" name="base_color" value="` + esc(draft.ChartData.Color()) + `"></div>`)
	buf.WriteString(`<p><button type="submit" formaction="/builder/chart/preview/">Preview chart</button></p>`)
}

func chartKindLabel(ck page.ChartKind) string {
	switch ck {
	case page.ChartLine:
		return "Line"
	case page.ChartPie:
		return "Pie"
	default:
		return "Bar"
	}
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
