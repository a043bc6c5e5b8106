package material

import (
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// TestImageTextureEvaluate tests basic texture sampling
func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Vec3{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	})

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom-left", 0.1, 0.1, black},
		{"bottom-right", 0.9, 0.1, white},
		{"top-left", 0.1, 0.9, white},
		{"top-right", 0.9, 0.9, black},
		{"wraps above one", 1.1, 0.1, black},
		{"wraps below zero", -0.1, 0.1, white},
		{"v of one clamps to top row", 0.1, 1.0 - 1e-12, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.u, tt.v, core.Vec3{}); got != tt.expected {
				t.Errorf("UV(%v,%v): expected %v, got %v", tt.u, tt.v, tt.expected, got)
			}
		})
	}
}

func TestImageTextureEvaluate_Empty(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Evaluate(0.5, 0.5, core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan for empty texture, got %v", got)
	}
}

func TestCheckerboardTexture(t *testing.T) {
	a := core.NewVec3(1, 0, 0)
	b := core.NewVec3(0, 0, 1)
	texture := NewCheckerboardTexture(8, 8, 4, a, b)

	if texture.Pixels[0] != a {
		t.Errorf("Expected first check %v, got %v", a, texture.Pixels[0])
	}
	if texture.Pixels[4] != b {
		t.Errorf("Expected second check %v, got %v", b, texture.Pixels[4])
	}
	if texture.Pixels[4*8+4] != a {
		t.Errorf("Expected diagonal check %v, got %v", a, texture.Pixels[4*8+4])
	}
}
