package geometry

import "github.com/df07/go-scanline-raytracer/pkg/core"

// Shape is anything a ray can be intersected with: primitives and the
// aggregates built from them.
type Shape interface {
	// Hit fills rec and returns true when the ray hits within [tMin, tMax].
	// rec is left untouched on a miss.
	Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool

	// BoundingBox returns a conservative box around the shape. ok is false
	// when the shape cannot provide one; such shapes are not pruned.
	BoundingBox() (box core.AABB, ok bool)
}

// MaterialUser is implemented by shapes that reference registry materials
type MaterialUser interface {
	MaterialIDs() []int
}
