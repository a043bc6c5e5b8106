package scene

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewRandomSpheresScene creates the classic cover scene: a huge ground
// sphere scattered with small random spheres and three large hero spheres.
// Some small glass spheres get a second glass sphere inside them.
func NewRandomSpheresScene(random *rand.Rand, opts Options) (*Scene, error) {
	s := newScene("random-spheres", geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10,
	})

	ground := s.Materials.Add(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	glass := s.Materials.Add(material.NewDielectric(1.5))
	brown := s.Materials.Add(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	light := s.Materials.Add(material.NewDiffuseLight(core.NewVec3(5, 5, 5)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, brown),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, light),
	)

	keepClear := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			innerSphere := false
			var mat material.Material
			switch {
			case chooseMat < 0.7:
				// Diffuse
				albedo := core.RandomColor(random).MultiplyVec(core.RandomColor(random))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.85:
				// Metal
				albedo := core.RandomVec3(random, 0, 0.5)
				mat = material.NewMetal(albedo, core.RandomRange(random, 0, 0.5))
			default:
				// Glass
				innerSphere = random.Float64() >= 0.5
				mat = material.NewDielectric(core.RandomRange(random, 0.5, 2.5))
			}

			id := s.Materials.Add(mat)
			s.Add(geometry.NewSphere(center, 0.2, id))
			if innerSphere {
				s.Add(geometry.NewSphere(center, 0.15, id))
			}
		}
	}

	return s, nil
}
