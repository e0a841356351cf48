package geometry

import (
	"math"
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/material"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// ConstantMedium is a homogeneous participating medium bounded by another
// hitable. Rays scatter inside the boundary at an exponentially distributed
// distance with the medium's isotropic phase material.
type ConstantMedium struct {
	Boundary core.Hitable
	Density  float64
	Phase    core.Material
}

// NewConstantMedium creates a constant-density medium with an isotropic
// phase function of the given color texture
func NewConstantMedium(boundary core.Hitable, density float64, albedo texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary: boundary,
		Density:  density,
		Phase:    material.NewIsotropic(albedo),
	}
}

// Hit implements the Hitable interface. Two boundary intersections bracket
// the ray segment inside the medium; the scatter distance is -ln(U)/density.
func (cm *ConstantMedium) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	rec1, ok := cm.Boundary.Hit(r, -math.MaxFloat64, math.MaxFloat64, rng)
	if !ok {
		return nil, false
	}

	rec2, ok := cm.Boundary.Hit(r, rec1.T+0.0001, math.MaxFloat64, rng)
	if !ok {
		return nil, false
	}

	t1, t2 := rec1.T, rec2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	dirLength := r.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * dirLength
	hitDistance := -math.Log(rng.Float64()) / cm.Density
	if hitDistance >= distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/dirLength
	return &core.HitRecord{
		T:      t,
		P:      r.At(t),
		Normal: core.NewVec3(1, 0, 0), // arbitrary; the phase function ignores it
		Mat:    cm.Phase,
	}, true
}

// BoundingBox implements the Hitable interface, delegating to the boundary
func (cm *ConstantMedium) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return cm.Boundary.BoundingBox(t0, t1)
}

// PdfValue implements the Hitable interface
func (cm *ConstantMedium) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return 0
}

// Random implements the Hitable interface
func (cm *ConstantMedium) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// IsLightShape implements the Hitable interface
func (cm *ConstantMedium) IsLightShape() bool {
	return false
}
