package folio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/eringen/folio/views"
)

// Build exports the portfolio as static files into outDir:
// index.html, 404.html, public/ (embedded assets, then the user's static
// dir, then thumbnails), favicon.svg, sitemap.xml and robots.txt.
func (a *App) Build(outDir string) error {
	if err := a.Load(); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("folio: build: create %s: %w", outDir, err)
	}

	publicDir := filepath.Join(outDir, "public")
	embeddedFS, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		return fmt.Errorf("folio: build: %w", err)
	}
	if err := copyFS(embeddedFS, publicDir); err != nil {
		return fmt.Errorf("folio: build: copy embedded assets: %w", err)
	}

	if info, err := os.Stat(a.Config.StaticDir); err == nil && info.IsDir() {
		if err := copyFS(os.DirFS(a.Config.StaticDir), publicDir); err != nil {
			return fmt.Errorf("folio: build: copy static assets: %w", err)
		}
	} else {
		log.Printf("Static assets directory '%s' not found, skipping copy.", a.Config.StaticDir)
	}

	a.mu.RLock()
	thumbs := make(map[string][]byte, len(a.thumbs))
	for name, data := range a.thumbs {
		thumbs[name] = data
	}
	a.mu.RUnlock()
	for name, data := range thumbs {
		if err := writeFile(filepath.Join(publicDir, "thumbs", name), data); err != nil {
			return fmt.Errorf("folio: build: %w", err)
		}
	}

	page, err := a.renderHome()
	if err != nil {
		return err
	}
	var notFound bytes.Buffer
	if err := views.NotFound(a.viewConfig()).Render(context.Background(), &notFound); err != nil {
		return fmt.Errorf("folio: build: render 404: %w", err)
	}
	sitemap, err := sitemapXML(a.Config.URL, a.LoadedAt())
	if err != nil {
		return fmt.Errorf("folio: build: sitemap: %w", err)
	}
	favicon, err := fs.ReadFile(os.DirFS(outDir), "public/favicon.svg")
	if err != nil {
		return fmt.Errorf("folio: build: favicon: %w", err)
	}

	files := map[string][]byte{
		"index.html":  page,
		"404.html":    notFound.Bytes(),
		"sitemap.xml": sitemap,
		"favicon.svg": favicon,
	}
	if p := a.staticFile("robots.txt"); p == "" {
		files["robots.txt"] = []byte(robotsTxt(a.Config.URL))
	} else if data, err := os.ReadFile(p); err != nil {
		return fmt.Errorf("folio: build: %w", err)
	} else {
		files["robots.txt"] = data
	}
	for name, data := range files {
		if err := writeFile(filepath.Join(outDir, name), data); err != nil {
			return fmt.Errorf("folio: build: %w", err)
		}
	}

	log.Printf("Exported %s to %s (%d thumbnails)", a.Config.Name, outDir, len(thumbs))
	return nil
}

// copyFS recursively copies the contents of src into dst.
func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(src, path, dstPath); err != nil {
			return fmt.Errorf("copy %s to %s: %w", path, dstPath, err)
		}
		return nil
	})
}

func copyFile(src fs.FS, name, dstFile string) error {
	srcF, err := src.Open(name)
	if err != nil {
		return err
	}
	defer srcF.Close()

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return err
	}
	dstF, err := os.Create(dstFile)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		dstF.Close()
		return err
	}
	return dstF.Close()
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
