package integrator

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance carried back along ray. world and
	// materials are shared read-only; random belongs to the calling worker.
	RayColor(ray core.Ray, world geometry.Shape, materials *material.Registry, random *rand.Rand, depth int) core.Vec3
}

// Background is a vertical sky gradient used for rays that escape the scene
type Background struct {
	Top    core.Vec3 // Color for rays pointing straight up
	Bottom core.Vec3 // Color for rays pointing straight down
}

// DefaultBackground returns the white-to-light-blue sky
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the sky color seen along direction
func (b Background) Color(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
