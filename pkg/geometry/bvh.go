package geometry

import (
	"math/rand"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// missingBoxOnce limits the missing-bounding-box warning to one line per
// process; unbounded subtrees are legitimate for constant-medium internals
// and must still be inserted.
var missingBoxOnce sync.Once

// BVHNode is a node of a bounding-volume hierarchy over arbitrary hitables.
// Leaves with a single child alias Left and Right to the same hitable.
type BVHNode struct {
	Left  core.Hitable
	Right core.Hitable
	Box   core.AABB
}

// NewBVHNode builds a hierarchy over the given hitables for the shutter
// interval [t0, t1]. The split axis is chosen uniformly at random from rng,
// so the same seed always builds the same tree; no surface-area heuristic is
// used. The slice is reordered in place.
func NewBVHNode(list []core.Hitable, t0, t1 float64, rng *rand.Rand) *BVHNode {
	node := &BVHNode{}

	axis := rng.Intn(3)
	sort.Slice(list, func(i, j int) bool {
		return boxMinAxis(list[i], axis) < boxMinAxis(list[j], axis)
	})

	switch len(list) {
	case 1:
		// Single child: alias it on both sides so Hit still works
		node.Left = list[0]
		node.Right = list[0]
	case 2:
		node.Left = list[0]
		node.Right = list[1]
	default:
		half := len(list) / 2
		node.Left = NewBVHNode(list[:half], t0, t1, rng)
		node.Right = NewBVHNode(list[half:], t0, t1, rng)
	}

	leftBox, leftOK := node.Left.BoundingBox(t0, t1)
	rightBox, rightOK := node.Right.BoundingBox(t0, t1)
	if !leftOK || !rightOK {
		missingBoxOnce.Do(func() {
			zap.S().Warn("no bounding box in bvh node constructor")
		})
	}
	node.Box = leftBox.Union(rightBox)

	return node
}

// boxMinAxis returns the minimum corner of h's box along the given axis, or
// zero when the box is missing (the subtree is still inserted)
func boxMinAxis(h core.Hitable, axis int) float64 {
	box, ok := h.BoundingBox(0, 0)
	if !ok {
		missingBoxOnce.Do(func() {
			zap.S().Warn("no bounding box in bvh node constructor")
		})
		return 0
	}
	return box.Min.Axis(axis)
}

// Hit implements the Hitable interface. Both subtrees are tested with the
// full [tMin, tMax] interval; the second subtree may be entirely in front of
// the first, so tMax must not shrink between the descents.
func (n *BVHNode) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	if !n.Box.Hit(r, tMin, tMax) {
		return nil, false
	}

	leftRec, hitLeft := n.Left.Hit(r, tMin, tMax, rng)
	rightRec, hitRight := n.Right.Hit(r, tMin, tMax, rng)

	switch {
	case hitLeft && hitRight:
		if leftRec.T < rightRec.T {
			return leftRec, true
		}
		return rightRec, true
	case hitLeft:
		return leftRec, true
	case hitRight:
		return rightRec, true
	default:
		return nil, false
	}
}

// BoundingBox implements the Hitable interface
func (n *BVHNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.Box, true
}

// PdfValue implements the Hitable interface
func (n *BVHNode) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return 0
}

// Random implements the Hitable interface
func (n *BVHNode) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// IsLightShape implements the Hitable interface
func (n *BVHNode) IsLightShape() bool {
	return false
}
