package material

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// DiffuseLight represents a light-emitting material. It absorbs every
// incoming ray.
type DiffuseLight struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewDiffuseLight creates a light with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter always reports absorption
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission at the surface point
func (e *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return e.Emission.Evaluate(u, v, point)
}
