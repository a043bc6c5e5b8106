package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Shapes       []geometry.Shape   // Objects in the scene
	Materials    *material.Registry // Materials referenced by Shapes
	AspectRatio  float64            // Width / height the camera was built for

	// World is the intersection structure over Shapes. It is nil until
	// Preprocess builds it.
	World geometry.Shape
}

// Options tune scene construction
type Options struct {
	Texture string // Image file for textured scenes; empty uses a procedural texture
}

// newScene creates an empty scene with a camera and a fresh registry
func newScene(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Materials:    material.NewRegistry(),
		AspectRatio:  cameraConfig.AspectRatio,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Preprocess prepares the scene for rendering: every material id is checked
// against the registry, the registry is frozen, and the world structure is
// built. A BVH is validated before use.
func (s *Scene) Preprocess(random *rand.Rand, useBVH bool) error {
	if s.Camera == nil {
		return fmt.Errorf("scene %q has no camera", s.Name)
	}

	for i, shape := range s.Shapes {
		user, ok := shape.(geometry.MaterialUser)
		if !ok {
			continue
		}
		for _, id := range user.MaterialIDs() {
			if _, err := s.Materials.Get(id); err != nil {
				return fmt.Errorf("shape %d (%T): %w", i, shape, err)
			}
		}
	}
	s.Materials.Freeze()

	if !useBVH {
		s.World = geometry.NewList(s.Shapes...)
		return nil
	}

	bvh := geometry.NewBVH(s.Shapes, random)
	if err := bvh.Validate(); err != nil {
		return err
	}
	s.World = bvh
	return nil
}

// GetWorld returns the structure built by Preprocess
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetMaterials returns the material registry
func (s *Scene) GetMaterials() *material.Registry {
	return s.Materials
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		switch obj := shape.(type) {
		case *geometry.TriangleMesh:
			// Triangle meshes contain multiple triangles
			count += obj.TriangleCount()
		default:
			count++
		}
	}
	return count
}

// BVHStats returns statistics for a BVH world, or false for a flat list
func (s *Scene) BVHStats() (geometry.BVHStats, bool) {
	bvh, ok := s.World.(*geometry.BVH)
	if !ok {
		return geometry.BVHStats{}, false
	}
	return bvh.Stats(), true
}

// NewGroundTriangles creates two large triangles forming a square floor centered at center
func NewGroundTriangles(center core.Vec3, size float64, materialID int) []geometry.Shape {
	h := size / 2
	a := core.NewVec3(center.X-h, center.Y, center.Z-h)
	b := core.NewVec3(center.X+h, center.Y, center.Z-h)
	c := core.NewVec3(center.X+h, center.Y, center.Z+h)
	d := core.NewVec3(center.X-h, center.Y, center.Z+h)
	return []geometry.Shape{
		geometry.NewTriangle(a, d, c, materialID),
		geometry.NewTriangle(a, c, b, materialID),
	}
}
