package output

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	_ "golang.org/x/image/webp"
)

func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return img
}

func TestFormatFor(t *testing.T) {
	testCases := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"render.png", FormatPNG, false},
		{"out/Render.PNG", FormatPNG, false},
		{"render.webp", FormatWebP, false},
		{"render.jpg", "", true},
		{"render", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			format, err := FormatFor(tc.path)
			if tc.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if format != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, format)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	src := gradientImage(16, 9)

	for _, name := range []string{"nested/dir/render.png", "render.webp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, src); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("Failed to open output: %v", err)
			}
			defer f.Close()

			decoded, _, err := image.Decode(f)
			if err != nil {
				t.Fatalf("Failed to decode output: %v", err)
			}
			if decoded.Bounds() != src.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", src.Bounds(), decoded.Bounds())
			}

			// Both encodings are lossless
			for _, p := range []image.Point{{0, 0}, {15, 0}, {7, 4}, {15, 8}} {
				r1, g1, b1, _ := src.At(p.X, p.Y).RGBA()
				r2, g2, b2, _ := decoded.At(p.X, p.Y).RGBA()
				if r1>>8 != r2>>8 || g1>>8 != g2>>8 || b1>>8 != b2>>8 {
					t.Errorf("Pixel %v: expected (%d,%d,%d), got (%d,%d,%d)",
						p, r1>>8, g1>>8, b1>>8, r2>>8, g2>>8, b2>>8)
				}
			}
		})
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.bmp")
	err := Save(path, gradientImage(2, 2))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Expected no file to be written")
	}
}

func TestThumbnail(t *testing.T) {
	testCases := []struct {
		name         string
		w, h, size   int
		wantW, wantH int
	}{
		{"landscape", 400, 225, 100, 100, 56},
		{"portrait", 200, 400, 100, 50, 100},
		{"square", 64, 64, 32, 32, 32},
		{"thin", 1000, 1, 10, 10, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			thumb := Thumbnail(gradientImage(tc.w, tc.h), tc.size)
			if thumb.Bounds().Dx() != tc.wantW || thumb.Bounds().Dy() != tc.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tc.wantW, tc.wantH, thumb.Bounds().Dx(), thumb.Bounds().Dy())
			}
		})
	}
}

func TestThumbnailPreservesFlatColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			src.Set(x, y, fill)
		}
	}

	thumb := Thumbnail(src, 10)
	got := thumb.RGBAAt(5, 2)
	near := func(a, b uint8) bool { return a-b <= 1 || b-a <= 1 }
	if !near(got.R, fill.R) || !near(got.G, fill.G) || !near(got.B, fill.B) || got.A != 255 {
		t.Errorf("Expected %v, got %v", fill, got)
	}
}

func TestThumbnailPath(t *testing.T) {
	if got := ThumbnailPath("output/basic/render_1.png"); got != "output/basic/render_1_thumb.png" {
		t.Errorf("Expected render_1_thumb.png, got %q", got)
	}
	if got := ThumbnailPath("render.webp"); got != "render_thumb.webp" {
		t.Errorf("Expected render_thumb.webp, got %q", got)
	}
}
