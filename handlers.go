package folio

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	page, err := a.Cache.Get()
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, page)
}

func (a *App) handleThumb(c echo.Context) error {
	data, err := a.thumb(c.Param("name"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"loadedAt": a.LoadedAt(),
	})
}

// handleFavicon serves the user's favicon.svg, falling back to the embedded one.
func (a *App) handleFavicon(c echo.Context) error {
	if p := a.staticFile("favicon.svg"); p != "" {
		return c.File(p)
	}
	data, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

// handleRobots serves the user's robots.txt, falling back to a generated one.
func (a *App) handleRobots(c echo.Context) error {
	if p := a.staticFile("robots.txt"); p != "" {
		return c.File(p)
	}
	return c.String(http.StatusOK, robotsTxt(a.Config.URL))
}

// staticFile returns the path of name in the static dir, or "" when absent.
func (a *App) staticFile(name string) string {
	p := filepath.Join(a.Config.StaticDir, name)
	if info, err := os.Stat(p); err == nil && !info.IsDir() {
		return p
	}
	return ""
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.viewConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
