// Package output encodes rendered images to disk.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an output image encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// FormatFor picks the encoding from the file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Encode writes img to w in the given format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes img to path, creating parent directories as needed
func Save(path string, img image.Image) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Thumbnail scales img so its longest side is size pixels
func Thumbnail(img image.Image, size int) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if size <= 0 || w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	tw, th := size, size
	if w >= h {
		th = max(1, (h*size+w/2)/w)
	} else {
		tw = max(1, (w*size+h/2)/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// ThumbnailPath returns the preview path for an output file:
// render.png -> render_thumb.png
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
