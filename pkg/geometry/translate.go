package geometry

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// Translate offsets its inner hitable by moving rays into the inner frame
// and hit points back out
type Translate struct {
	Inner  core.Hitable
	Offset core.Vec3
}

// NewTranslate wraps a hitable with a translation
func NewTranslate(inner core.Hitable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit implements the Hitable interface
func (tr *Translate) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	moved := core.NewRayAtTime(r.Origin.Subtract(tr.Offset), r.Direction, r.Time)
	rec, ok := tr.Inner.Hit(moved, tMin, tMax, rng)
	if !ok {
		return nil, false
	}
	rec.P = rec.P.Add(tr.Offset)
	return rec, true
}

// BoundingBox implements the Hitable interface
func (tr *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := tr.Inner.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(tr.Offset), box.Max.Add(tr.Offset)), true
}

// PdfValue implements the Hitable interface
func (tr *Translate) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return 0
}

// Random implements the Hitable interface
func (tr *Translate) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// IsLightShape implements the Hitable interface
func (tr *Translate) IsLightShape() bool {
	return tr.Inner.IsLightShape()
}
