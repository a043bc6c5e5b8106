package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewTriangleMeshScene creates a rotated box, a pyramid and an icosahedron
// built from triangle meshes on a triangle floor.
func NewTriangleMeshScene(random *rand.Rand, opts Options) (*Scene, error) {
	s := newScene("triangle-mesh", geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.02,
	})

	warm := s.Materials.Add(material.NewDiffuseLight(core.NewVec3(12.0, 11.0, 10.0)))
	cool := s.Materials.Add(material.NewDiffuseLight(core.NewVec3(6.0, 7.0, 8.0)))
	s.Add(
		geometry.NewSphere(core.NewVec3(2, 6, 3), 1.5, warm),
		geometry.NewSphere(core.NewVec3(-3, 4, 2), 0.8, cool),
	)

	ground := s.Materials.Add(material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7)))
	s.Add(NewGroundTriangles(core.NewVec3(0, 0, 0), 100, ground)...)

	redMetal := s.Materials.Add(material.NewMetal(core.NewVec3(0.8, 0.2, 0.2), 0.1))
	blue := s.Materials.Add(material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8)))
	gold := s.Materials.Add(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05))

	box, err := createBoxMesh(core.NewVec3(-2, 0.5, 0), core.NewVec3(1, 1, 1), core.NewVec3(0, math.Pi/6, 0), redMetal, random)
	if err != nil {
		return nil, err
	}
	pyramid, err := createPyramidMesh(core.NewVec3(0, 1, 0), 1.5, 2.0, core.NewVec3(0, math.Pi/4, 0), blue, random)
	if err != nil {
		return nil, err
	}
	icosahedron, err := createIcosahedronMesh(core.NewVec3(2, 0.8, 0), 0.8, core.NewVec3(0, math.Pi/3, 0), gold, random)
	if err != nil {
		return nil, err
	}
	s.Add(box, pyramid, icosahedron)

	return s, nil
}

func newRotatedMesh(vertices []core.Vec3, faces []int, center, rotation core.Vec3, materialID int, random *rand.Rand) (*geometry.TriangleMesh, error) {
	var options *geometry.TriangleMeshOptions
	if rotation != (core.Vec3{}) {
		options = &geometry.TriangleMeshOptions{Rotation: &rotation, Center: &center}
	}
	return geometry.NewTriangleMesh(vertices, faces, materialID, options, random)
}

// createBoxMesh creates a 12-triangle box
func createBoxMesh(center, size, rotation core.Vec3, materialID int, random *rand.Rand) (*geometry.TriangleMesh, error) {
	h := size.Multiply(0.5)
	vertices := []core.Vec3{
		center.Add(core.NewVec3(-h.X, -h.Y, -h.Z)), // 0: left-bottom-back
		center.Add(core.NewVec3(+h.X, -h.Y, -h.Z)), // 1: right-bottom-back
		center.Add(core.NewVec3(+h.X, +h.Y, -h.Z)), // 2: right-top-back
		center.Add(core.NewVec3(-h.X, +h.Y, -h.Z)), // 3: left-top-back
		center.Add(core.NewVec3(-h.X, -h.Y, +h.Z)), // 4: left-bottom-front
		center.Add(core.NewVec3(+h.X, -h.Y, +h.Z)), // 5: right-bottom-front
		center.Add(core.NewVec3(+h.X, +h.Y, +h.Z)), // 6: right-top-front
		center.Add(core.NewVec3(-h.X, +h.Y, +h.Z)), // 7: left-top-front
	}

	faces := []int{
		0, 1, 2, 0, 2, 3, // back
		4, 6, 5, 4, 7, 6, // front
		0, 3, 7, 0, 7, 4, // left
		1, 5, 6, 1, 6, 2, // right
		0, 4, 5, 0, 5, 1, // bottom
		3, 2, 6, 3, 6, 7, // top
	}

	return newRotatedMesh(vertices, faces, center, rotation, materialID, random)
}

// createPyramidMesh creates a square pyramid centered at center
func createPyramidMesh(center core.Vec3, baseSize, height float64, rotation core.Vec3, materialID int, random *rand.Rand) (*geometry.TriangleMesh, error) {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		center.Add(core.NewVec3(-halfBase, -halfHeight, -halfBase)),
		center.Add(core.NewVec3(+halfBase, -halfHeight, -halfBase)),
		center.Add(core.NewVec3(+halfBase, -halfHeight, +halfBase)),
		center.Add(core.NewVec3(-halfBase, -halfHeight, +halfBase)),
		center.Add(core.NewVec3(0, +halfHeight, 0)), // apex
	}

	faces := []int{
		0, 2, 1, 0, 3, 2, // base
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}

	return newRotatedMesh(vertices, faces, center, rotation, materialID, random)
}

// createIcosahedronMesh creates a 20-sided polyhedron
func createIcosahedronMesh(center core.Vec3, radius float64, rotation core.Vec3, materialID int, random *rand.Rand) (*geometry.TriangleMesh, error) {
	phi := (1.0 + math.Sqrt(5)) / 2.0
	scale := radius / math.Sqrt(1+phi*phi)

	corners := []core.Vec3{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	vertices := make([]core.Vec3, len(corners))
	for i, c := range corners {
		vertices[i] = center.Add(c.Multiply(scale))
	}

	faces := []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return newRotatedMesh(vertices, faces, center, rotation, materialID, random)
}
