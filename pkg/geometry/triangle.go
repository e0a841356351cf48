package geometry

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// triangleEpsilon is the determinant cutoff for rays parallel to a triangle
const triangleEpsilon = 1e-7

// Vertex carries a triangle corner's position and interpolated attributes
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
	Color    core.Vec3
	U, V     float64
}

// Triangle is a single triangle with per-vertex attributes, intersected with
// the Moeller-Trumbore algorithm
type Triangle struct {
	V0, V1, V2 Vertex
	Mat        core.Material
	bbox       core.AABB
}

// NewTriangle creates a new triangle
func NewTriangle(v0, v1, v2 Vertex, mat core.Material) *Triangle {
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		Mat: mat,
		bbox: core.NewAABBFromPoints(
			v0.Position, v1.Position, v2.Position),
	}
}

// Hit implements the Hitable interface
func (t *Triangle) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	edge1 := t.V1.Position.Subtract(t.V0.Position)
	edge2 := t.V2.Position.Subtract(t.V0.Position)

	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -triangleEpsilon && a < triangleEpsilon {
		// Ray is parallel to the triangle plane
		return nil, false
	}

	f := 1.0 / a
	s := r.Origin.Subtract(t.V0.Position)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if tHit <= triangleEpsilon || tHit <= tMin || tHit >= tMax {
		return nil, false
	}

	w := 1 - u - v
	normal := t.V0.Normal.Multiply(w).
		Add(t.V1.Normal.Multiply(u)).
		Add(t.V2.Normal.Multiply(v))

	return &core.HitRecord{
		T:      tHit,
		P:      r.At(tHit),
		Normal: normal,
		U:      w*t.V0.U + u*t.V1.U + v*t.V2.U,
		V:      w*t.V0.V + u*t.V1.V + v*t.V2.V,
		Mat:    t.Mat,
	}, true
}

// BoundingBox implements the Hitable interface
func (t *Triangle) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return t.bbox, true
}

// PdfValue implements the Hitable interface
func (t *Triangle) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return 0
}

// Random implements the Hitable interface
func (t *Triangle) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// IsLightShape implements the Hitable interface
func (t *Triangle) IsLightShape() bool {
	return false
}
