package material

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// DebugFront scatters like Lambertian but colors front-face and back-face
// hits differently, making surface orientation visible in renders
type DebugFront struct {
	nonEmitter
	Front core.Vec3
	Back  core.Vec3
}

// NewDebugFront creates a debug material that shows front faces red and back faces green
func NewDebugFront() *DebugFront {
	return &DebugFront{
		Front: core.NewVec3(1, 0, 0),
		Back:  core.NewVec3(0, 1, 0),
	}
}

// Scatter implements the Material interface
func (d *DebugFront) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	attenuation := d.Back
	if hit.FrontFace {
		attenuation = d.Front
	}
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, random)),
		Attenuation: attenuation,
	}, true
}
