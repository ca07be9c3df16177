package builder

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/superme-Sophie/manus-dynamic-section/page"
	"github.com/superme-Sophie/manus-dynamic-section/views"
)

func (a *App) site() views.Site {
	return views.Site{
		Title:   a.Config.Title,
		Tagline: a.Config.Tagline,
		Theme:   a.Theme(),
	}
}

func (a *App) handleHome(c echo.Context) error {
	sections, err := a.Cache.List()
	if err != nil {
		return err
	}
	return Render(c, views.LivePage(a.site(), sections))
}

// --- Builder session ---

func (a *App) handleBuilder(c echo.Context) error {
	if !IsBuilder(c) {
		return Render(c, views.Login(a.site(), false, CsrfToken(c)))
	}
	return a.renderDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.BuilderPassword)) == 1 {
		if err := setBuilderSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	a.loginLimiter.Record(ip)
	return Render(c, views.Login(a.site(), true, CsrfToken(c)))
}

func handleLogout(c echo.Context) error {
	if err := clearBuilderSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/builder/")
}

func (a *App) renderDashboard(c echo.Context, msg string) error {
	sections, err := a.Collection.List()
	if err != nil {
		return err
	}
	return Render(c, views.Dashboard(a.site(), sections, msg, CsrfToken(c)))
}

// --- Section collection ---

func (a *App) handleSectionAdd(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	if _, err := a.Collection.Add(); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/builder/?msg=added")
}

func (a *App) handleSectionDelete(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	id := c.Param("id")
	// An open edit session on the deleted section would otherwise save
	// into a ghost.
	if a.Editor.Editing() == id {
		a.Editor.Cancel()
	}
	if err := a.Collection.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Redirect(http.StatusSeeOther, "/builder/?msg=not+found")
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/builder/?msg=deleted")
}

func (a *App) handleSectionMove(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	id := c.Param("id")
	dir := page.Direction(c.FormValue("direction"))
	if dir != page.Up && dir != page.Down {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	if err := a.Collection.Move(id, dir); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Redirect(http.StatusSeeOther, "/builder/?msg=not+found")
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/builder/")
}

func (a *App) handleReorder(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	from, err1 := strconv.Atoi(c.FormValue("from"))
	to, err2 := strconv.Atoi(c.FormValue("to"))
	if err1 != nil || err2 != nil {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	if err := a.Collection.Reorder(from, to); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/builder/")
}

// --- Edit session ---

func (a *App) handleEditOpen(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	id := c.Param("id")
	// Re-rendering an already open session must not reseed the draft and
	// discard in-progress edits.
	if a.Editor.Editing() != id {
		sec, err := a.Collection.Get(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return c.Redirect(http.StatusSeeOther, "/builder/?msg=not+found")
			}
			return err
		}
		a.Editor.Open(sec)
	}
	return a.renderEditForm(c)
}

func (a *App) handleEditUpdate(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	if a.Editor.Editing() != c.Param("id") {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	if err := a.applyDraftForm(c); err != nil {
		return err
	}
	return a.renderEditForm(c)
}

func (a *App) handleKindSwitch(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	id := c.Param("id")
	if a.Editor.Editing() != id {
		return c.Redirect(http.StatusSeeOther, "/builder/sections/"+id+"/edit/")
	}
	kind := page.Kind(c.FormValue("kind"))
	if err := a.Editor.Mutate(func(d *page.Draft) {
		d.SwitchKind(kind)
	}); err != nil {
		return err
	}
	return a.renderEditForm(c)
}

// handleChartPreview feeds chart form values into the debounced update
// path. Rapid successive posts coalesce; the dataset lands on the draft
// once the input settles.
func (a *App) handleChartPreview(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	if err := a.Editor.UpdateChartData(parseChartForm(c)); err != nil {
		if errors.Is(err, ErrNoSession) {
			return c.Redirect(http.StatusSeeOther, "/builder/")
		}
		return err
	}
	if ck := page.ChartKind(c.FormValue("chart_kind")); ck != "" {
		if err := a.Editor.Mutate(func(d *page.Draft) { d.SwitchChartKind(ck) }); err != nil {
			return err
		}
	}
	return a.renderEditForm(c)
}

func (a *App) handleImageUpload(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	id := a.Editor.Editing()
	if id == "" {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/builder/sections/"+id+"/edit/")
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	item, err := IngestImage(src, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
	if err != nil {
		var ie *IngestError
		if errors.As(err, &ie) {
			return c.String(http.StatusBadRequest, ie.Reason)
		}
		return err
	}
	if err := a.Editor.Mutate(func(d *page.Draft) {
		d.Images = append(d.Images, item)
	}); err != nil {
		return err
	}
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, item)
	}
	return c.Redirect(http.StatusSeeOther, "/builder/sections/"+id+"/edit/")
}

func (a *App) handleEditSave(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	if err := a.applyDraftForm(c); err != nil {
		if errors.Is(err, ErrNoSession) {
			return c.Redirect(http.StatusSeeOther, "/builder/")
		}
		return err
	}
	sec, err := a.Editor.Save()
	if err != nil {
		return err
	}
	if err := a.Collection.Update(sec); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/builder/?msg=saved")
}

func (a *App) handleEditCancel(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	a.Editor.Cancel()
	return c.Redirect(http.StatusSeeOther, "/builder/")
}

func (a *App) renderEditForm(c echo.Context) error {
	draft, err := a.Editor.Draft()
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	return Render(c, views.EditForm(a.site(), draft, CsrfToken(c)))
}

// applyDraftForm folds the posted per-kind fields into the open draft.
// Chart fields are applied directly here so a save always commits what
// the form shows, regardless of any pending debounced update.
func (a *App) applyDraftForm(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	return a.Editor.Mutate(func(d *page.Draft) {
		if title := c.FormValue("title"); title != "" || formHas(c, "title") {
			d.Title = strings.TrimSpace(title)
		}
		switch d.Kind {
		case page.KindText:
			d.Text = c.FormValue("text")
		case page.KindCards:
			if n, err := strconv.Atoi(c.FormValue("cards_count")); err == nil {
				d.ResizeCards(n)
			}
			for i := range d.Cards {
				if formHas(c, "card_title_"+strconv.Itoa(i)) {
					d.Cards[i].Title = c.FormValue("card_title_" + strconv.Itoa(i))
				}
				if formHas(c, "card_content_"+strconv.Itoa(i)) {
					d.Cards[i].Content = c.FormValue("card_content_" + strconv.Itoa(i))
				}
			}
		case page.KindChart:
			d.SwitchChartKind(page.ChartKind(c.FormValue("chart_kind")))
			d.ChartData = parseChartForm(c)
		}
	})
}

func formHas(c echo.Context, key string) bool {
	_, ok := c.Request().Form[key]
	return ok
}

func parseChartForm(c echo.Context) page.ChartData {
	labels := FilterEmpty(strings.Split(c.FormValue("labels"), ","))
	data := page.ChartData{
		Labels:    labels,
		Values:    ParseFloats(c.FormValue("values")),
		Title:     strings.TrimSpace(c.FormValue("chart_title")),
		BaseColor: strings.TrimSpace(c.FormValue("base_color")),
	}
	return data
}

// --- Theme ---

func (a *App) handleTheme(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	a.SetTheme(page.Theme{
		Primary:   strings.TrimSpace(c.FormValue("primary")),
		Secondary: strings.TrimSpace(c.FormValue("secondary")),
		Accent:    strings.TrimSpace(c.FormValue("accent")),
	})
	return c.Redirect(http.StatusSeeOther, "/builder/?msg=theme+updated")
}

// --- Export ---

func (a *App) handleExportHTML(c echo.Context) error {
	sections, err := a.Cache.List()
	if err != nil {
		return err
	}
	doc := Export(a.site(), sections)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+ExportFilename(a.Config.Title)+`"`)
	return c.HTML(http.StatusOK, doc)
}

func (a *App) handleExportRaster(c echo.Context) error {
	if !IsBuilder(c) {
		return c.Redirect(http.StatusSeeOther, "/builder/")
	}
	if a.rasterizer == nil {
		return c.String(http.StatusServiceUnavailable, "Raster export is not configured.")
	}
	ctx := c.Request().Context()
	png, err := a.rasterizer.Capture(ctx, a.Config.URL+"/", CaptureOptions{
		Scale:            2,
		AllowCrossOrigin: true,
		Background:       true,
	})
	if err != nil {
		c.Logger().Errorf("raster export: %v", err)
		return c.String(http.StatusBadGateway, "Raster export failed.")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+Slugify(a.Config.Title)+".png"+`"`)
	return c.Blob(http.StatusOK, "image/png", png)
}

// --- Errors ---

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
