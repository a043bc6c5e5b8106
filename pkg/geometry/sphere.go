package geometry

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Sphere represents a sphere shape. A negative radius turns the surface
// inside out, which is how hollow glass shells are carved.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material int) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// MaterialIDs returns the registry handle of the sphere's material
func (s *Sphere) MaterialIDs() []int {
	return []int{s.Material}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	if s.Radius == 0 {
		return false
	}

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	outwardNormal := rec.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.MaterialID = s.Material
	rec.U, rec.V = sphereUV(outwardNormal)

	return true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X, v runs from -Y (0) to +Y (1).
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, -p.X)

	u = phi / (2 * math.Pi)
	if u < 0 {
		u += 1
	}
	return u, theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}
