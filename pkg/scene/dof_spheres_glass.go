package scene

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewDOFSpheresGlassScene creates three spheres on a ground sphere seen
// through a wide aperture. The left sphere nests two hollow glass shells
// around a small fuzzy metal core.
func NewDOFSpheresGlassScene(random *rand.Rand, opts Options) (*Scene, error) {
	s := newScene("dof-spheres-glass", geometry.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.5,
		// Focus on the look-at point
		FocusDistance: 0,
	})

	ground := s.Materials.Add(material.NewLambertian(core.NewVec3(86.0/255.0, 125.0/255.0, 70.0/255.0)))
	center := s.Materials.Add(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	glass := s.Materials.Add(material.NewDielectric(1.5))
	gold := s.Materials.Add(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0))

	left := core.NewVec3(-1, 0, -1)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		// Outer shell
		geometry.NewSphere(left, 0.5, glass),
		geometry.NewSphere(left, -0.45, glass),
		// Inner shell
		geometry.NewSphere(left, 0.3, glass),
		geometry.NewSphere(left, -0.25, glass),
		geometry.NewSphere(left, 0.15, gold),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s, nil
}
