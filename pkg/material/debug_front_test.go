package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

func TestDebugFront_ColorsBySide(t *testing.T) {
	debug := NewDebugFront()
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name     string
		front    bool
		expected core.Vec3
	}{
		{"front face", true, core.NewVec3(1, 0, 0)},
		{"back face", false, core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := core.HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: tt.front}
			scatter, didScatter := debug.Scatter(ray, hit, random)
			if !didScatter {
				t.Fatal("Expected DebugFront to scatter")
			}
			if scatter.Attenuation != tt.expected {
				t.Errorf("Expected attenuation %v, got %v", tt.expected, scatter.Attenuation)
			}
			if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
				t.Errorf("Expected diffuse direction above surface, got %v", scatter.Scattered.Direction)
			}
		})
	}

	if emitted := debug.Emitted(0, 0, core.Vec3{}); emitted != (core.Vec3{}) {
		t.Errorf("Expected black emission, got %v", emitted)
	}
}
