package geometry

import "github.com/df07/go-scanline-raytracer/pkg/core"

// List is a flat, ordered collection of shapes searched linearly
type List struct {
	Shapes []Shape
}

// NewList creates a list over the given shapes
func NewList(shapes ...Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends a shape to the list
func (l *List) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *List) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest hit among all shapes. The far bound shrinks to the
// closest hit found so far, so later shapes only report closer hits.
func (l *List) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	var candidate core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if shape.Hit(ray, tMin, closestSoFar, &candidate) {
			hitAnything = true
			closestSoFar = candidate.T
			*rec = candidate
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all member boxes. It reports false when
// the list is empty or any member has no bounds.
func (l *List) BoundingBox() (core.AABB, bool) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, shape := range l.Shapes {
		shapeBox, ok := shape.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = shapeBox
		} else {
			box = box.Union(shapeBox)
		}
	}
	return box, true
}
