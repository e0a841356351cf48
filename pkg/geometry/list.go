package geometry

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// HitableList tests all children and keeps the closest hit. It is also used
// as the non-owning view over light shapes, where sampling is uniform over
// children.
type HitableList struct {
	List []core.Hitable
}

// NewHitableList creates a list over the given children
func NewHitableList(list []core.Hitable) *HitableList {
	return &HitableList{List: list}
}

// Add appends a child to the list
func (hl *HitableList) Add(h core.Hitable) {
	hl.List = append(hl.List, h)
}

// Len returns the number of children
func (hl *HitableList) Len() int {
	return len(hl.List)
}

// Hit implements the Hitable interface
func (hl *HitableList) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, h := range hl.List {
		if rec, ok := h.Hit(r, tMin, closestSoFar, rng); ok {
			closest = rec
			closestSoFar = rec.T
		}
	}

	return closest, closest != nil
}

// BoundingBox implements the Hitable interface. Unlike the reference
// implementation, which repeatedly reads the first child, every child's box
// is accumulated.
func (hl *HitableList) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(hl.List) == 0 {
		return core.AABB{}, false
	}

	box, ok := hl.List[0].BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}

	for _, h := range hl.List[1:] {
		next, ok := h.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		box = box.Union(next)
	}

	return box, true
}

// PdfValue implements the Hitable interface: a uniform average over children
func (hl *HitableList) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	if len(hl.List) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(hl.List))
	sum := 0.0
	for _, h := range hl.List {
		sum += weight * h.PdfValue(origin, direction, rng)
	}
	return sum
}

// Random implements the Hitable interface: a uniformly chosen child samples
func (hl *HitableList) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(hl.List) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return hl.List[rng.Intn(len(hl.List))].Random(origin, rng)
}

// IsLightShape implements the Hitable interface
func (hl *HitableList) IsLightShape() bool {
	return false
}
