// Package folio serves a single-page developer portfolio with Echo.
// The page is rendered from content records, each section carries a
// visibility watcher hook, and the navigation bar tracks the section being
// read. The same App can export the page as static files.
package folio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/section"
	"github.com/eringen/folio/views"
)

// ErrNotFound is returned when a requested thumbnail does not exist.
var ErrNotFound = errors.New("folio: not found")

// App is the central folio application. It wires together content, the
// page cache, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *PageCache

	limiter      *RequestLimiter
	customRoutes []func(*App)
	ready        bool

	mu       sync.RWMutex
	content  content.Content
	thumbs   map[string][]byte
	loadedAt time.Time
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.Cache = NewPageCache(a.Config.PageCacheTTL, a.renderHome)
	return a
}

// Setup loads content and registers middleware and routes. It is called by
// Start; call it directly to use App.Echo as an http.Handler.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Load(); err != nil {
		return err
	}

	if a.Config.RateLimit > 0 {
		a.limiter = NewRequestLimiter(a.Config.RateLimit, a.Config.RateWindow)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and listens on Config.Addr.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets (folio.js, folio.css) are served first; anything
	// else under /public falls through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	for _, name := range []string{"folio.js", "folio.css"} {
		e.GET("/public/"+name, echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	}
	e.GET("/public/thumbs/:name", a.handleThumb)
	e.Static("/public", a.Config.StaticDir)

	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", a.handleHealth)
	e.GET("/", a.handleHome)
}

// Load reads content from Config.ContentDir, builds project thumbnails and
// swaps both in. The page cache is invalidated on success; on failure the
// previous content keeps serving.
func (a *App) Load() error {
	c, err := content.Load(a.Config.ContentDir)
	if err != nil {
		return fmt.Errorf("folio: load content: %w", err)
	}
	thumbs, projects, err := buildThumbnails(a.Config.ContentDir, c.Projects)
	if err != nil {
		return fmt.Errorf("folio: build thumbnails: %w", err)
	}
	c.Projects = projects

	a.mu.Lock()
	a.content = c
	a.thumbs = thumbs
	a.loadedAt = time.Now().UTC()
	a.mu.Unlock()

	a.Cache.Invalidate()
	return nil
}

// Content returns the content currently being served.
func (a *App) Content() content.Content {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.content
}

// LoadedAt returns when content was last loaded.
func (a *App) LoadedAt() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loadedAt
}

func (a *App) thumb(name string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	data, ok := a.thumbs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,

		AssetVersion: AssetVersion(),
	}
}

// renderHome renders the full page with the section a freshly mounted page
// starts on highlighted.
func (a *App) renderHome() ([]byte, error) {
	var buf bytes.Buffer
	active := section.NewTracker().Active()
	if err := views.Home(a.viewConfig(), a.Content(), active).Render(context.Background(), &buf); err != nil {
		return nil, fmt.Errorf("folio: render home: %w", err)
	}
	return buf.Bytes(), nil
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return nil
}
