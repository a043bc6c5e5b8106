package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// ErrInvalidMesh is returned when mesh face data is inconsistent
var ErrInvalidMesh = errors.New("invalid triangle mesh")

// TriangleMesh is a collection of triangles behind its own BVH
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVH
	materials []int
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Materials []int      // Optional per-triangle material handles
	Rotation  *core.Vec3 // Optional rotation (radians around X, Y, Z) applied to vertices
	Center    *core.Vec3 // Optional center point for rotation
}

// NewTriangleMesh creates a mesh from vertices and face indices. Each group
// of three indices in faces forms a triangle using material unless
// options.Materials overrides it.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material int, options *TriangleMeshOptions, random *rand.Rand) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrInvalidMesh, len(faces))
	}
	numTriangles := len(faces) / 3

	if options != nil && options.Materials != nil && len(options.Materials) != numTriangles {
		return nil, fmt.Errorf("%w: %d materials for %d triangles", ErrInvalidMesh, len(options.Materials), numTriangles)
	}

	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			// Translate to center, rotate, then translate back
			if options.Center != nil {
				vertex = vertex.Subtract(*options.Center)
			}
			vertex = rotateVertex(vertex, *options.Rotation)
			if options.Center != nil {
				vertex = vertex.Add(*options.Center)
			}
			workingVertices[i] = vertex
		}
	}

	triangles := make([]Shape, numTriangles)
	materials := make([]int, 0, 1)
	seen := make(map[int]bool)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(workingVertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i, idx, len(workingVertices))
			}
		}

		triangleMaterial := material
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}
		if !seen[triangleMaterial] {
			seen[triangleMaterial] = true
			materials = append(materials, triangleMaterial)
		}

		triangles[i] = NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], triangleMaterial)
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(triangles, random),
		materials: materials,
	}, nil
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	return tm.bvh.Hit(ray, tMin, tMax, rec)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() (core.AABB, bool) {
	return tm.bvh.BoundingBox()
}

// MaterialIDs returns every material handle used by the mesh
func (tm *TriangleMesh) MaterialIDs() []int {
	return tm.materials
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	if rotation.X != 0 {
		cos := math.Cos(rotation.X)
		sin := math.Sin(rotation.X)
		y := vertex.Y*cos - vertex.Z*sin
		z := vertex.Y*sin + vertex.Z*cos
		vertex = core.NewVec3(vertex.X, y, z)
	}

	if rotation.Y != 0 {
		cos := math.Cos(rotation.Y)
		sin := math.Sin(rotation.Y)
		x := vertex.X*cos + vertex.Z*sin
		z := -vertex.X*sin + vertex.Z*cos
		vertex = core.NewVec3(x, vertex.Y, z)
	}

	if rotation.Z != 0 {
		cos := math.Cos(rotation.Z)
		sin := math.Sin(rotation.Z)
		x := vertex.X*cos - vertex.Y*sin
		y := vertex.X*sin + vertex.Y*cos
		vertex = core.NewVec3(x, y, vertex.Z)
	}

	return vertex
}
