// Package builder is a dynamic page engine built with Go, Echo, and templ.
// A page is an ordered list of typed sections (text, image grid, cards,
// chart) edited through a password-protected builder surface, rendered
// live, and exportable as a standalone HTML document.
package builder

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

// App is the central application. It wires together the store, cache,
// section collection, editor, handlers, and middleware.
type App struct {
	Config     Config
	Echo       *echo.Echo
	Store      *Store
	Cache      *PageCache
	Collection *Collection
	Editor     *Editor

	loginLimiter *LoginLimiter
	rasterizer   Rasterizer
	customRoutes []func(*App)

	themeMu sync.RWMutex
	theme   page.Theme
}

// Theme returns the current site theme.
func (a *App) Theme() page.Theme {
	a.themeMu.RLock()
	defer a.themeMu.RUnlock()
	return a.theme
}

// SetTheme replaces the site theme, filling missing fields with defaults.
func (a *App) SetTheme(t page.Theme) {
	a.themeMu.Lock()
	defer a.themeMu.Unlock()
	a.theme = t.WithDefaults()
}

// New creates a new App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		theme:  cfg.Theme,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, middleware, routes, and starts
// the server.
func (a *App) Start() error {
	if a.Config.BuilderPassword == "" {
		return fmt.Errorf("builder: BuilderPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("builder: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("builder: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewPageCache(a.Store, a.Config.PageCacheTTL)
	a.Collection = NewCollection(a.Store, a.Cache)
	a.Editor = NewEditor()
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if err := a.seedWelcome(); err != nil {
		return fmt.Errorf("builder: seed: %w", err)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// seedWelcome inserts a starter text section into an empty store so the
// first visit does not render a blank page.
func (a *App) seedWelcome() error {
	n, err := a.Store.Count()
	if err != nil || n > 0 {
		return err
	}
	_, err = a.Collection.Add()
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded engine assets, currently just the chart bootstrap.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/livechart.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	// Public routes
	e.GET("/", a.handleHome)

	// Builder routes
	e.GET("/builder/", a.handleBuilder)
	e.POST("/builder/login/", a.handleLogin)
	e.POST("/builder/logout/", handleLogout)
	e.POST("/builder/sections/add/", a.handleSectionAdd)
	e.POST("/builder/sections/:id/delete/", a.handleSectionDelete)
	e.DELETE("/builder/sections/:id/", a.handleSectionDelete)
	e.POST("/builder/sections/:id/move/", a.handleSectionMove)
	e.POST("/builder/sections/reorder/", a.handleReorder)
	e.GET("/builder/sections/:id/edit/", a.handleEditOpen)
	e.POST("/builder/sections/:id/edit/", a.handleEditUpdate)
	e.POST("/builder/sections/:id/kind/", a.handleKindSwitch)
	e.POST("/builder/chart/preview/", a.handleChartPreview)
	e.POST("/builder/images/upload/", a.handleImageUpload)
	e.POST("/builder/save/", a.handleEditSave)
	e.POST("/builder/cancel/", a.handleEditCancel)
	e.POST("/builder/theme/", a.handleTheme)

	// Export routes
	e.GET("/export/html/", a.handleExportHTML)
	e.POST("/export/raster/", a.handleExportRaster)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Editor != nil {
		a.Editor.Cancel()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback
// if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("builder: required environment variable %s is not set", key)
	}
	return v
}
