package builder

import (
	"time"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// Config holds all configuration for a builder instance.
type Config struct {
	Title   string // Page title shown in the shell (default "Dynamic Page")
	Tagline string // Hero tagline under the title
	URL     string // Canonical URL (default "http://localhost:3000")

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/page.db")

	Theme page.Theme // Initial page color scheme; App.SetTheme changes it at runtime

	BuilderPassword string // Required: builder login password
	SessionSecret   string // Required: session encryption secret
	CookieSecure    bool   // Set true for HTTPS

	PageCacheTTL time.Duration // Section cache TTL (default 5min)
}

func (c *Config) setDefaults() {
	if c.Title == "" {
		c.Title = "Dynamic Page"
	}
	if c.Tagline == "" {
		c.Tagline = "Assembled with the dynamic section builder"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/page.db"
	}
	c.Theme = c.Theme.WithDefaults()
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithRasterizer plugs in the external screenshot collaborator used by
// the raster export endpoint. Without one the endpoint reports that
// raster export is unavailable.
func WithRasterizer(r Rasterizer) Option {
	return func(a *App) {
		a.rasterizer = r
	}
}
