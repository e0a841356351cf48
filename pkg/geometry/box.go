package geometry

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// Box is an axis-aligned box assembled from six rectangles with inward faces
// flipped
type Box struct {
	PMin, PMax core.Vec3
	faces      *HitableList
}

// NewBox creates a new box between two corner points
func NewBox(p0, p1 core.Vec3, mat core.Material) *Box {
	faces := []core.Hitable{
		NewRect(PlaneXY, p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewFlipNormals(NewRect(PlaneXY, p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat)),
		NewRect(PlaneXZ, p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewFlipNormals(NewRect(PlaneXZ, p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat)),
		NewRect(PlaneYZ, p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewFlipNormals(NewRect(PlaneYZ, p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat)),
	}

	return &Box{PMin: p0, PMax: p1, faces: NewHitableList(faces)}
}

// Hit implements the Hitable interface
func (b *Box) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	return b.faces.Hit(r, tMin, tMax, rng)
}

// BoundingBox implements the Hitable interface
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.PMin, b.PMax), true
}

// PdfValue implements the Hitable interface
func (b *Box) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return 0
}

// Random implements the Hitable interface
func (b *Box) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// IsLightShape implements the Hitable interface
func (b *Box) IsLightShape() bool {
	return false
}
