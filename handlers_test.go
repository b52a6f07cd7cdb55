package folio

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

const testContent = `profile:
  name: Jane Doe
projects:
  - id: 1
    title: Shot
    description: A project with a screenshot
    tech: [Go, Echo]
    github: https://github.com/jane/shot
    image: shot.png
`

func newTestApp(t *testing.T, cfg SiteConfig, opts ...Option) *App {
	t.Helper()
	if cfg.URL == "" {
		cfg.URL = "https://example.com"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = t.TempDir()
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = -1
	}
	a := New(cfg, opts...)
	if err := a.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func contentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "content.yaml"), []byte(testContent), 0o644); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(dir, "shot.png"), 1600, 900)
	return dir
}

func get(a *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersPortfolio(t *testing.T) {
	a := newTestApp(t, SiteConfig{Name: "Jane"})
	rec := get(a, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != echo.MIMETextHTMLCharsetUTF8 {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`aria-current="true">Home</a>`,
		`<section id="home"`,
		`<section id="contact"`,
		`data-threshold="0.5"`,
		`<script src="/public/folio.js?v=` + AssetVersion() + `" defer>`,
		`<link rel="stylesheet" href="/public/folio.css?v=` + AssetVersion() + `">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if got := strings.Count(body, `aria-current="true"`); got != 1 {
		t.Errorf("%d links marked current, want 1", got)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=3600" {
		t.Errorf("Cache-Control = %q", cc)
	}
	if xfo := rec.Header().Get("X-Frame-Options"); xfo != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", xfo)
	}
}

func TestHomeUsesContentDirAndThumbnails(t *testing.T) {
	a := newTestApp(t, SiteConfig{ContentDir: contentDir(t)})

	body := get(a, "/").Body.String()
	if !strings.Contains(body, ">Jane Doe</span>") {
		t.Errorf("profile name not rendered")
	}
	if !strings.Contains(body, `src="/public/thumbs/shot.jpg"`) {
		t.Errorf("thumbnail not referenced")
	}
	if got := strings.Count(body, "project-card"); got != 1 {
		t.Errorf("project cards = %d, want 1", got)
	}

	rec := get(a, "/public/thumbs/shot.jpg")
	if rec.Code != http.StatusOK {
		t.Fatalf("thumb status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/jpeg" {
		t.Errorf("thumb content type = %q", ct)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("thumb is not a jpeg: %v", err)
	}
	if cfg.Width != maxThumbWidth {
		t.Errorf("thumb width = %d, want %d", cfg.Width, maxThumbWidth)
	}
}

func TestMissingThumbIs404(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	rec := get(a, "/public/thumbs/nope.jpg")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestNotFoundPage(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	rec := get(a, "/no/such/page")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "This page does not exist.") {
		t.Errorf("styled 404 page not rendered: %s", rec.Body.String())
	}
}

func TestServerErrorPage(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/boom", func(c echo.Context) error {
			return errors.New("boom")
		})
	}))
	rec := get(a, "/boom")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Errorf("styled 500 page not rendered")
	}
}

func TestEmbeddedAssets(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	tests := []struct {
		path, want string
	}{
		{"/public/folio.js", "IntersectionObserver"},
		{"/public/folio.css", ".nav-link.active"},
		{"/favicon.svg", "<svg"},
	}
	for _, tt := range tests {
		rec := get(a, tt.path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200", tt.path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), tt.want) {
			t.Errorf("%s missing %q", tt.path, tt.want)
		}
	}
}

func TestAssetCacheControl(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	tests := []struct {
		path, want string
	}{
		{"/public/folio.js?v=" + AssetVersion(), "public, max-age=31536000, immutable"},
		{"/public/folio.css?v=" + AssetVersion(), "public, max-age=31536000, immutable"},
		{"/public/folio.js", "public, max-age=3600"},
		{"/public/folio.css", "public, max-age=3600"},
	}
	for _, tt := range tests {
		rec := get(a, tt.path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200", tt.path, rec.Code)
			continue
		}
		if cc := rec.Header().Get("Cache-Control"); cc != tt.want {
			t.Errorf("%s Cache-Control = %q, want %q", tt.path, cc, tt.want)
		}
	}
}

func TestAssetVersionIsStableHash(t *testing.T) {
	v := AssetVersion()
	if len(v) != 12 {
		t.Fatalf("AssetVersion() = %q, want 12 hex chars", v)
	}
	if AssetVersion() != v {
		t.Error("AssetVersion changed between calls")
	}
}

func TestUserStaticAssets(t *testing.T) {
	static := t.TempDir()
	if err := os.WriteFile(filepath.Join(static, "resume.txt"), []byte("cv"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(static, "robots.txt"), []byte("User-agent: *\nDisallow: /\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, SiteConfig{StaticDir: static})

	if body := get(a, "/public/resume.txt").Body.String(); body != "cv" {
		t.Errorf("static file body = %q, want cv", body)
	}
	if body := get(a, "/robots.txt").Body.String(); !strings.Contains(body, "Disallow: /") {
		t.Errorf("user robots.txt not served: %q", body)
	}
}

func TestGeneratedRobotsAndSitemap(t *testing.T) {
	a := newTestApp(t, SiteConfig{URL: "https://jane.dev/"})

	robots := get(a, "/robots.txt").Body.String()
	if !strings.Contains(robots, "Sitemap: https://jane.dev/sitemap.xml") {
		t.Errorf("robots.txt = %q", robots)
	}

	rec := get(a, "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("sitemap status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<?xml") {
		t.Errorf("sitemap missing xml header")
	}
	if !strings.Contains(body, "<loc>https://jane.dev/</loc>") {
		t.Errorf("sitemap missing home url: %s", body)
	}
	if !strings.Contains(body, "<lastmod>") {
		t.Errorf("sitemap missing lastmod")
	}
}

func TestHealth(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	rec := get(a, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["status"] != "ok" {
		t.Errorf("status = %v, want ok", got["status"])
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}

func TestRateLimit(t *testing.T) {
	a := newTestApp(t, SiteConfig{RateLimit: 2})

	for i := 0; i < 2; i++ {
		if rec := get(a, "/"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}
	if rec := get(a, "/"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec := get(a, "/healthz"); rec.Code != http.StatusOK {
		t.Errorf("healthz should bypass the limiter, got %d", rec.Code)
	}
}

func TestLoadInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) {
		yaml := "profile:\n  name: " + name + "\n"
		if err := os.WriteFile(filepath.Join(dir, "content.yaml"), []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("Before")
	a := newTestApp(t, SiteConfig{ContentDir: dir})
	if !strings.Contains(get(a, "/").Body.String(), "Before") {
		t.Fatal("initial content not rendered")
	}

	write("After")
	if err := a.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(get(a, "/").Body.String(), "After") {
		t.Error("page still cached after Load")
	}
}

func TestLoadFailureKeepsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, []byte("profile:\n  name: Kept\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, SiteConfig{ContentDir: dir})

	if err := os.WriteFile(path, []byte("skills:\n  - name: Go\n    level: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := a.Load(); err == nil {
		t.Fatal("expected validation error")
	}
	if got := a.Content().Profile.Name; got != "Kept" {
		t.Errorf("Profile.Name = %q, want Kept", got)
	}
}
