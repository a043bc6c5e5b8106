package loaders

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func quadrantImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // blue
	return img
}

func checkQuadrants(t *testing.T, imageData *ImageData) {
	t.Helper()
	if imageData.Width != 2 || imageData.Height != 2 {
		t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if len(imageData.Pixels) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(imageData.Pixels))
	}

	expected := []struct {
		name  string
		color core.Vec3
	}{
		{"Top-left (white)", core.NewVec3(1, 1, 1)},
		{"Top-right (red)", core.NewVec3(1, 0, 0)},
		{"Bottom-left (green)", core.NewVec3(0, 1, 0)},
		{"Bottom-right (blue)", core.NewVec3(0, 0, 1)},
	}
	const tolerance = 0.01
	for i, e := range expected {
		got := imageData.Pixels[i]
		if abs(got.X-e.color.X) > tolerance ||
			abs(got.Y-e.color.Y) > tolerance ||
			abs(got.Z-e.color.Z) > tolerance {
			t.Errorf("%s: expected %v, got %v", e.name, e.color, got)
		}
	}
}

func writeImage(t *testing.T, path string, img image.Image, encode func(io.Writer, image.Image) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
	f.Close()
}

// TestLoadImage round-trips the quadrant image through each lossless format
func TestLoadImage(t *testing.T) {
	testCases := []struct {
		name   string
		file   string
		encode func(io.Writer, image.Image) error
	}{
		{"png", "test.png", png.Encode},
		{"tga", "test.tga", tga.Encode},
		{"tga upper-case extension", "TEST.TGA", tga.Encode},
		{"webp", "test.webp", func(w io.Writer, img image.Image) error { return nativewebp.Encode(w, img, nil) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFile := filepath.Join(t.TempDir(), tc.file)
			writeImage(t, testFile, quadrantImage(), tc.encode)

			imageData, err := LoadImage(testFile)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			checkQuadrants(t, imageData)
		})
	}
}

// JPEG is lossy and subsamples chroma, so a flat image is compared loosely
func TestLoadImageJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 230, G: 120, B: 20, A: 255})
		}
	}

	testFile := filepath.Join(t.TempDir(), "test.jpg")
	writeImage(t, testFile, img, func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
	})

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if imageData.Width != 16 || imageData.Height != 16 {
		t.Fatalf("Expected 16x16 image, got %dx%d", imageData.Width, imageData.Height)
	}

	expected := core.NewVec3(230.0/255.0, 120.0/255.0, 20.0/255.0)
	got := imageData.Pixels[8*16+8]
	const tolerance = 0.05
	if abs(got.X-expected.X) > tolerance || abs(got.Y-expected.Y) > tolerance || abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestLoadImageTexture(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "tex.png")
	writeImage(t, testFile, quadrantImage(), png.Encode)

	texture, err := LoadImageTexture(testFile)
	if err != nil {
		t.Fatalf("LoadImageTexture failed: %v", err)
	}

	// V is flipped: v near 1 samples the top row
	got := texture.Evaluate(0.75, 0.75, core.Vec3{})
	if abs(got.X-1) > 0.01 || got.Y > 0.01 || got.Z > 0.01 {
		t.Errorf("Expected red at top-right, got %v", got)
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestLoadImageUnknownFormat(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "junk.bin")
	if err := os.WriteFile(testFile, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := LoadImage(testFile); err == nil {
		t.Error("Expected decode error, got nil")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
