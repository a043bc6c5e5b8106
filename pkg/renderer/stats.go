package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Workers         int
	TotalSamples    int64         // Camera rays traced
	RowsPerWorker   []int         // Rows claimed by each worker
	RenderDuration  time.Duration // Time spent tracing rows
	MergeDuration   time.Duration // Time spent sorting and concatenating rows
}

// SamplesPerSecond returns the camera-ray throughput of the trace stage
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderDuration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderDuration.Seconds()
}

// Progress is a snapshot of how many rows have finished
type Progress struct {
	RowsDone  int
	TotalRows int
	Elapsed   time.Duration
}

// Fraction returns completed rows as a value in [0, 1]
func (p Progress) Fraction() float64 {
	if p.TotalRows == 0 {
		return 1
	}
	return float64(p.RowsDone) / float64(p.TotalRows)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/65535.0 + 0.7152*float64(g)/65535.0 + 0.0722*float64(b)/65535.0
		}
	}
	return total / float64(count)
}
