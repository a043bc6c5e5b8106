package material

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	nonEmitter
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, random)),
		Attenuation: l.Albedo.Evaluate(hit.U, hit.V, hit.Point),
	}, true
}

// diffuseDirection returns normal plus a random offset from the normal's
// hemisphere, falling back to the normal when the sum degenerates
func diffuseDirection(normal core.Vec3, random *rand.Rand) core.Vec3 {
	direction := normal.Add(core.RandomInHemisphere(normal, random))
	if direction.NearZero() {
		return normal
	}
	return direction
}
