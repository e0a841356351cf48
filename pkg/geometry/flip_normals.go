package geometry

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// FlipNormals negates the surface normal of its inner hitable
type FlipNormals struct {
	Inner core.Hitable
}

// NewFlipNormals wraps a hitable with flipped normals
func NewFlipNormals(inner core.Hitable) *FlipNormals {
	return &FlipNormals{Inner: inner}
}

// Hit implements the Hitable interface
func (f *FlipNormals) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	rec, ok := f.Inner.Hit(r, tMin, tMax, rng)
	if !ok {
		return nil, false
	}
	rec.Normal = rec.Normal.Negate()
	return rec, true
}

// BoundingBox implements the Hitable interface
func (f *FlipNormals) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(t0, t1)
}

// PdfValue implements the Hitable interface
func (f *FlipNormals) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return f.Inner.PdfValue(origin, direction, rng)
}

// Random implements the Hitable interface
func (f *FlipNormals) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return f.Inner.Random(origin, rng)
}

// IsLightShape implements the Hitable interface
func (f *FlipNormals) IsLightShape() bool {
	return f.Inner.IsLightShape()
}
