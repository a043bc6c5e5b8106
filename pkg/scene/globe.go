package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/loaders"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewGlobeScene creates a textured sphere next to a textured emissive
// sphere. opts.Texture names an image file for the globe; without one a
// checkerboard is used and the light shows a UV debug pattern.
func NewGlobeScene(random *rand.Rand, opts Options) (*Scene, error) {
	s := newScene("globe", geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 16.0 / 9.0,
	})

	var surface material.ColorSource
	if opts.Texture != "" {
		texture, err := loaders.LoadImageTexture(opts.Texture)
		if err != nil {
			return nil, fmt.Errorf("globe texture: %w", err)
		}
		surface = texture
	} else {
		surface = material.NewCheckerboardTexture(256, 128, 16,
			core.NewVec3(0.9, 0.9, 0.9),
			core.NewVec3(0.2, 0.2, 0.8),
		)
	}

	globe := s.Materials.Add(material.NewTexturedLambertian(surface))
	glow := s.Materials.Add(material.NewTexturedDiffuseLight(material.NewUVDebugTexture(64, 64)))
	ground := s.Materials.Add(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	s.Add(
		geometry.NewSphere(core.NewVec3(-1.2, 1, 0), 1, globe),
		geometry.NewSphere(core.NewVec3(1.5, 0.6, 0.5), 0.6, glow),
	)
	s.Add(NewGroundTriangles(core.NewVec3(0, 0, 0), 50, ground)...)

	return s, nil
}
