package scene

import (
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewCornellScene creates a debug scene: one triangle in the XZ plane seen
// from below. The DebugFront material shows red where the camera sees the
// front face and green where it sees the back face.
func NewCornellScene(random *rand.Rand, opts Options) (*Scene, error) {
	s := newScene("cornell", geometry.CameraConfig{
		Center:      core.NewVec3(0, -4, 0),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(1, 0, 0),
		VFov:        90,
		AspectRatio: 1,
	})

	debug := s.Materials.Add(material.NewDebugFront())
	s.Add(geometry.NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		debug,
	))

	return s, nil
}
