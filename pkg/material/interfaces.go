package material

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Material decides how a ray continues after hitting a surface and how much
// light the surface gives off. Implementations are immutable and safe to
// share between render workers.
type Material interface {
	// Scatter returns the outgoing ray and its attenuation, or false when
	// the ray is absorbed
	Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool)

	// Emitted returns the light radiated at a surface point
	Emitted(u, v float64, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Per-channel color attenuation
}

// nonEmitter gives embedding materials the default black emission
type nonEmitter struct{}

// Emitted returns black
func (nonEmitter) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
