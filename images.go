package folio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/eringen/folio/content"
)

const (
	maxThumbWidth = 800
	jpegQuality   = 80
	thumbsPath    = "/public/thumbs/"
)

// makeThumbnail decodes an image from src, resizes it to maxThumbWidth when
// wider, and encodes it as JPEG.
func makeThumbnail(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxThumbWidth {
		newH := h * maxThumbWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxThumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Slugify lowercases s and joins its runs of ASCII letters and digits with
// hyphens.
func Slugify(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(words, "-")
}

// thumbFilename picks a slug for a project image, falling back to the
// project title when the file name has no usable characters.
func thumbFilename(p content.Project) string {
	base := strings.TrimSuffix(filepath.Base(p.Image), filepath.Ext(p.Image))
	name := Slugify(base)
	if name == "" {
		name = Slugify(p.Title)
	}
	if name == "" {
		name = fmt.Sprintf("project-%d", p.ID)
	}
	return name
}

// uniqueFilename appends a counter until name is not taken.
func uniqueFilename(name string, taken map[string][]byte) string {
	candidate := name + ".jpg"
	for counter := 2; ; counter++ {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d.jpg", name, counter)
	}
}

// buildThumbnails renders a thumbnail for every project with an image
// (relative to dir) and returns the thumbnails by filename alongside a copy
// of projects with Thumb set.
func buildThumbnails(dir string, projects []content.Project) (map[string][]byte, []content.Project, error) {
	thumbs := make(map[string][]byte)
	out := make([]content.Project, len(projects))
	copy(out, projects)

	for i := range out {
		p := &out[i]
		p.Thumb = ""
		if p.Image == "" {
			continue
		}
		path := p.Image
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("project %q: %w", p.Title, err)
		}
		data, err := makeThumbnail(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("project %q: %w", p.Title, err)
		}
		name := uniqueFilename(thumbFilename(*p), thumbs)
		thumbs[name] = data
		p.Thumb = thumbsPath + name
	}
	return thumbs, out, nil
}
