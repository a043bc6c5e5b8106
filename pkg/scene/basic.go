package scene

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewBasicScene creates a gray sphere at (0,0,-1) resting on a ground sphere
func NewBasicScene(random *rand.Rand, opts Options) (*Scene, error) {
	s := newScene("basic", geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
	})

	gray := s.Materials.Add(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	ground := s.Materials.Add(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
	)

	return s, nil
}
