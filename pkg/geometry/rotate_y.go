package geometry

import (
	"math"
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// RotateY rotates its inner hitable about the Y axis: rays are rotated into
// the inner frame, hit points and normals rotated back out. The bounding box
// is the axis-aligned hull of the inner box's eight rotated corners.
type RotateY struct {
	Inner    core.Hitable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
	hasBox   bool
}

// NewRotateY wraps a hitable with a rotation of the given angle in degrees
func NewRotateY(inner core.Hitable, angleDegrees float64) *RotateY {
	radians := core.DegreesToRadians(angleDegrees)
	ry := &RotateY{
		Inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	var box core.AABB
	box, ry.hasBox = inner.BoundingBox(0, 1)

	minV := core.NewVec3(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
	maxV := minV.Negate()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := ry.cosTheta*x + ry.sinTheta*z
				newZ := -ry.sinTheta*x + ry.cosTheta*z

				corner := core.NewVec3(newX, y, newZ)
				minV = core.MinVec(minV, corner)
				maxV = core.MaxVec(maxV, corner)
			}
		}
	}
	ry.bbox = core.NewAABB(minV, maxV)

	return ry
}

// rotateIn rotates a world-space vector into the inner frame
func (ry *RotateY) rotateIn(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		ry.cosTheta*v.X-ry.sinTheta*v.Z,
		v.Y,
		ry.sinTheta*v.X+ry.cosTheta*v.Z,
	)
}

// rotateOut rotates an inner-frame vector back into world space
func (ry *RotateY) rotateOut(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		ry.cosTheta*v.X+ry.sinTheta*v.Z,
		v.Y,
		-ry.sinTheta*v.X+ry.cosTheta*v.Z,
	)
}

// Hit implements the Hitable interface
func (ry *RotateY) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	rotated := core.NewRayAtTime(ry.rotateIn(r.Origin), ry.rotateIn(r.Direction), r.Time)
	rec, ok := ry.Inner.Hit(rotated, tMin, tMax, rng)
	if !ok {
		return nil, false
	}

	rec.P = ry.rotateOut(rec.P)
	rec.Normal = ry.rotateOut(rec.Normal)
	return rec, true
}

// BoundingBox implements the Hitable interface
func (ry *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return ry.bbox, ry.hasBox
}

// PdfValue implements the Hitable interface
func (ry *RotateY) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return 0
}

// Random implements the Hitable interface
func (ry *RotateY) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// IsLightShape implements the Hitable interface
func (ry *RotateY) IsLightShape() bool {
	return ry.Inner.IsLightShape()
}
