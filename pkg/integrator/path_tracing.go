package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// DefaultEpsilon is the near bound of every intersection query. It keeps a
// scattered ray from re-hitting the surface it starts on.
const DefaultEpsilon = 0.001

// PathTracer implements recursive unidirectional path tracing with a fixed
// depth cap and no Russian roulette
type PathTracer struct {
	Background Background
	Epsilon    float64
}

// NewPathTracer creates a path tracer with the default sky and epsilon
func NewPathTracer() *PathTracer {
	return &PathTracer{
		Background: DefaultBackground(),
		Epsilon:    DefaultEpsilon,
	}
}

// RayColor computes the color for a single ray. A material id missing from
// materials panics with material.ErrUnknownMaterial.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Shape, materials *material.Registry, random *rand.Rand, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	var hit core.HitRecord
	if !world.Hit(ray, pt.Epsilon, math.Inf(1), &hit) {
		return pt.Background.Color(ray.Direction)
	}

	mat := materials.MustGet(hit.MaterialID)
	emitted := mat.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := mat.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	incoming := pt.RayColor(scatter.Scattered, world, materials, random, depth-1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
