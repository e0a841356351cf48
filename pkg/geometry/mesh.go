package geometry

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// TriangleMesh owns a set of triangles and accelerates intersection with an
// internal BVH built at construction
type TriangleMesh struct {
	Triangles []*Triangle
	Mat       core.Material
	bvh       *BVHNode
}

// NewTriangleMesh creates a mesh over the given triangles. The rng drives
// the internal BVH's split-axis choices.
func NewTriangleMesh(triangles []*Triangle, mat core.Material, rng *rand.Rand) *TriangleMesh {
	hitables := make([]core.Hitable, len(triangles))
	for i, t := range triangles {
		hitables[i] = t
	}

	return &TriangleMesh{
		Triangles: triangles,
		Mat:       mat,
		bvh:       NewBVHNode(hitables, 0, 1, rng),
	}
}

// Hit implements the Hitable interface
func (m *TriangleMesh) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	return m.bvh.Hit(r, tMin, tMax, rng)
}

// BoundingBox implements the Hitable interface
func (m *TriangleMesh) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return m.bvh.BoundingBox(t0, t1)
}

// PdfValue implements the Hitable interface
func (m *TriangleMesh) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return 0
}

// Random implements the Hitable interface
func (m *TriangleMesh) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// IsLightShape implements the Hitable interface
func (m *TriangleMesh) IsLightShape() bool {
	return false
}
