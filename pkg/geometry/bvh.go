package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// ErrMalformedBVH is returned by Validate when a node box does not enclose its children
var ErrMalformedBVH = errors.New("malformed BVH")

// BVHNode is an interior node of the hierarchy. Box is the union of the
// children's boxes, computed when the node is built.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   core.AABB
}

// Hit tests the node box first and only descends on a box hit. The right
// child is searched no further than the left child's hit.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	if !n.Box.Hit(ray, tMin, tMax) {
		return false
	}

	hitLeft := n.Left.Hit(ray, tMin, tMax, rec)
	if hitLeft {
		tMax = rec.T
	}
	hitRight := n.Right.Hit(ray, tMin, tMax, rec)

	return hitLeft || hitRight
}

// BoundingBox returns the node's box
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.Box, true
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Shapes without a bounding box cannot be placed in the tree and are kept in
// a side list that is searched linearly.
type BVH struct {
	Root      Shape // nil when there are no bounded shapes
	Unbounded []Shape
	count     int
}

// NewBVH constructs a BVH from a slice of shapes. The split axis of every
// node is drawn from random.
func NewBVH(shapes []Shape, random *rand.Rand) *BVH {
	bvh := &BVH{count: len(shapes)}

	// Copy so the caller's slice order is never disturbed by sorting
	bounded := make([]Shape, 0, len(shapes))
	for _, shape := range shapes {
		if _, ok := shape.BoundingBox(); ok {
			bounded = append(bounded, shape)
		} else {
			bvh.Unbounded = append(bvh.Unbounded, shape)
		}
	}

	if len(bounded) > 0 {
		bvh.Root = buildBVH(bounded, random)
	}
	return bvh
}

// buildBVH recursively builds the hierarchy over shapes, which it may reorder
func buildBVH(shapes []Shape, random *rand.Rand) Shape {
	axis := random.Intn(3)

	switch len(shapes) {
	case 1:
		return shapes[0]
	case 2:
		left, right := shapes[0], shapes[1]
		if boxLess(right, left, axis) {
			left, right = right, left
		}
		return newBVHNode(left, right)
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		return boxLess(shapes[i], shapes[j], axis)
	})

	mid := len(shapes) / 2
	return newBVHNode(
		buildBVH(shapes[:mid], random),
		buildBVH(shapes[mid:], random),
	)
}

func newBVHNode(left, right Shape) *BVHNode {
	leftBox, _ := left.BoundingBox()
	rightBox, _ := right.BoundingBox()
	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   leftBox.Union(rightBox),
	}
}

// boxLess orders shapes by the minimum corner of their boxes on axis
func boxLess(a, b Shape, axis int) bool {
	boxA, _ := a.BoundingBox()
	boxB, _ := b.BoundingBox()
	return boxA.Min.Axis(axis) < boxB.Min.Axis(axis)
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	hitAnything := false
	if bvh.Root != nil && bvh.Root.Hit(ray, tMin, tMax, rec) {
		hitAnything = true
		tMax = rec.T
	}

	var candidate core.HitRecord
	for _, shape := range bvh.Unbounded {
		if shape.Hit(ray, tMin, tMax, &candidate) {
			hitAnything = true
			tMax = candidate.T
			*rec = candidate
		}
	}

	return hitAnything
}

// BoundingBox returns the root box. A BVH holding unbounded shapes has no box.
func (bvh *BVH) BoundingBox() (core.AABB, bool) {
	if bvh.Root == nil || len(bvh.Unbounded) > 0 {
		return core.AABB{}, false
	}
	return bvh.Root.BoundingBox()
}

// Len returns the number of shapes the BVH was built from
func (bvh *BVH) Len() int {
	return bvh.count
}

// Validate checks that every interior node's box contains both child boxes
func (bvh *BVH) Validate() error {
	if bvh.Root == nil {
		return nil
	}
	return validateNode(bvh.Root, 0)
}

func validateNode(shape Shape, depth int) error {
	node, ok := shape.(*BVHNode)
	if !ok {
		return nil
	}
	if node.Left == nil || node.Right == nil {
		return fmt.Errorf("%w: node at depth %d is missing a child", ErrMalformedBVH, depth)
	}

	for _, child := range []Shape{node.Left, node.Right} {
		childBox, ok := child.BoundingBox()
		if !ok {
			return fmt.Errorf("%w: unbounded child at depth %d", ErrMalformedBVH, depth+1)
		}
		if !node.Box.Contains(childBox) {
			return fmt.Errorf("%w: node box %v at depth %d does not contain child box %v",
				ErrMalformedBVH, node.Box, depth, childBox)
		}
		if err := validateNode(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{UnboundedShapes: len(bvh.Unbounded)}
	if bvh.Root == nil {
		return stats
	}

	bvh.collectStats(bvh.Root, 0, &stats)
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}
	return stats
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	InteriorNodes   int
	LeafNodes       int
	MaxDepth        int
	AvgDepth        float64
	UnboundedShapes int
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(shape Shape, depth int, stats *BVHStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	node, ok := shape.(*BVHNode)
	if !ok {
		stats.LeafNodes++
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	stats.InteriorNodes++
	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
