package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// ImageBuffer is a row-major RGB image, top row first, 3 bytes per pixel
type ImageBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// RowResult holds the encoded pixels of one finished scanline
type RowResult struct {
	Row    int
	Pixels []byte
}

// RGB returns the color of the pixel at (x, y)
func (b *ImageBuffer) RGB(x, y int) (r, g, bl uint8) {
	i := (y*b.Width + x) * 3
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// ToRGBA converts the buffer to an opaque image for encoding
func (b *ImageBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := b.RGB(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return img
}

// MergeRows sorts row results by row index and concatenates them into the
// final buffer. The result must be exactly width*height*3 bytes with every
// row present once.
func MergeRows(width, height int, rows []RowResult) (*ImageBuffer, error) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Row < rows[j].Row
	})

	expected := width * height * 3
	total := 0
	for _, row := range rows {
		total += len(row.Pixels)
	}
	if total != expected {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrBufferSizeMismatch, expected, total)
	}

	pix := make([]byte, 0, expected)
	for i, row := range rows {
		if row.Row != i {
			return nil, fmt.Errorf("%w: expected row %d, got row %d", ErrRowMismatch, i, row.Row)
		}
		if len(row.Pixels) != width*3 {
			return nil, fmt.Errorf("%w: row %d has %d bytes, expected %d", ErrBufferSizeMismatch, row.Row, len(row.Pixels), width*3)
		}
		pix = append(pix, row.Pixels...)
	}

	return &ImageBuffer{Width: width, Height: height, Pix: pix}, nil
}

// ColorToRGB gamma-corrects a linear color (gamma 2) and maps each channel
// to clamp(round(sqrt(c)*255), 0, 255). Negative and NaN channels map to 0.
func ColorToRGB(c core.Vec3) (r, g, b uint8) {
	return channelToByte(c.X), channelToByte(c.Y), channelToByte(c.Z)
}

func channelToByte(c float64) uint8 {
	if !(c > 0) {
		return 0
	}
	v := math.Round(math.Sqrt(c) * 255)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
