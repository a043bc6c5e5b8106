package geometry

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// triangleEpsilon is the smallest |determinant| treated as a real crossing
const triangleEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices.
// Both faces are hittable; FrontFace tells them apart.
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	Material   int       // Registry handle of the material
	normal     core.Vec3 // Cached unit normal, (V1-V0)×(V2-V0)
	bbox       core.AABB // Cached bounding box
	bounded    bool
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material int) *Triangle {
	t := newTriangle(v0, v1, v2, material)
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	t.bounded = true
	return t
}

// NewUnboundedTriangle creates a triangle that reports no bounding box.
// Aggregates test it on every ray instead of pruning it.
func NewUnboundedTriangle(v0, v1, v2 core.Vec3, material int) *Triangle {
	return newTriangle(v0, v1, v2, material)
}

func newTriangle(v0, v1, v2 core.Vec3, material int) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
	}
}

// MaterialIDs returns the registry handle of the triangle's material
func (t *Triangle) MaterialIDs() []int {
	return []int{t.Material}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)

	// Ray parallel to the plane, or a degenerate triangle
	if math.Abs(det) < triangleEpsilon {
		return false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0.0 || u > 1.0 {
		return false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tHit := edge2.Dot(qvec) * invDet
	if tHit < tMin || tHit > tMax {
		return false
	}

	rec.T = tHit
	rec.Point = ray.At(tHit)
	rec.SetFaceNormal(ray, t.normal)
	rec.MaterialID = t.Material
	rec.U, rec.V = u, v

	return true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() (core.AABB, bool) {
	return t.bbox, t.bounded
}

// Normal returns the triangle's unit normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
