package geometry

import (
	"math"
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// AxisPlane selects which coordinate plane an axis-aligned rectangle lies in
type AxisPlane int

const (
	PlaneXY AxisPlane = iota
	PlaneXZ
	PlaneYZ
)

// rectThickness pads the degenerate axis of a rectangle's bounding box
const rectThickness = 0.0001

// Rect is an axis-aligned rectangle spanning [A0,A1]x[B0,B1] at offset K
// along the plane's constant axis
type Rect struct {
	Plane          AxisPlane
	A0, A1, B0, B1 float64
	K              float64
	Mat            core.Material
	Light          bool
}

// NewRect creates a new axis-aligned rectangle
func NewRect(plane AxisPlane, a0, a1, b0, b1, k float64, mat core.Material) *Rect {
	return &Rect{Plane: plane, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Mat: mat}
}

// NewLightRect creates a rectangle that participates in explicit light sampling
func NewLightRect(plane AxisPlane, a0, a1, b0, b1, k float64, mat core.Material) *Rect {
	r := NewRect(plane, a0, a1, b0, b1, k, mat)
	r.Light = true
	return r
}

// normal returns the plane's constant axis as a unit normal
func (rc *Rect) normal() core.Vec3 {
	switch rc.Plane {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// axisComponents projects the ray onto the rectangle's two free axes,
// returning (origin, direction) pairs for each
func (rc *Rect) axisComponents(r core.Ray) (a0, aDir, b0, bDir float64) {
	switch rc.Plane {
	case PlaneXY:
		return r.Origin.X, r.Direction.X, r.Origin.Y, r.Direction.Y
	case PlaneXZ:
		return r.Origin.X, r.Direction.X, r.Origin.Z, r.Direction.Z
	default:
		return r.Origin.Y, r.Direction.Y, r.Origin.Z, r.Direction.Z
	}
}

// planePoint builds a world point from free-axis coordinates (a, b) and the
// plane offset
func (rc *Rect) planePoint(a, b float64) core.Vec3 {
	switch rc.Plane {
	case PlaneXY:
		return core.NewVec3(a, b, rc.K)
	case PlaneXZ:
		return core.NewVec3(a, rc.K, b)
	default:
		return core.NewVec3(rc.K, a, b)
	}
}

// Hit implements the Hitable interface
func (rc *Rect) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	normal := rc.normal()
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-5 {
		return nil, false
	}

	t := rc.planePoint(rc.A0, rc.B0).Subtract(r.Origin).Dot(normal) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	aO, aD, bO, bD := rc.axisComponents(r)
	a := aO + t*aD
	b := bO + t*bD
	if a < rc.A0 || a > rc.A1 || b < rc.B0 || b > rc.B1 {
		return nil, false
	}

	return &core.HitRecord{
		T:      t,
		P:      r.At(t),
		Normal: normal,
		U:      (a - rc.A0) / (rc.A1 - rc.A0),
		V:      (b - rc.B0) / (rc.B1 - rc.B0),
		Mat:    rc.Mat,
	}, true
}

// BoundingBox implements the Hitable interface
func (rc *Rect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	switch rc.Plane {
	case PlaneXY:
		return core.NewAABB(
			core.NewVec3(rc.A0, rc.B0, rc.K-rectThickness),
			core.NewVec3(rc.A1, rc.B1, rc.K+rectThickness)), true
	case PlaneXZ:
		return core.NewAABB(
			core.NewVec3(rc.A0, rc.K-rectThickness, rc.B0),
			core.NewVec3(rc.A1, rc.K+rectThickness, rc.B1)), true
	default:
		return core.NewAABB(
			core.NewVec3(rc.K-rectThickness, rc.A0, rc.B0),
			core.NewVec3(rc.K+rectThickness, rc.A1, rc.B1)), true
	}
}

// PdfValue implements the Hitable interface. For a direction that hits, the
// density converts the rectangle's area measure to solid angle:
// d^2 / (|cos| * area).
func (rc *Rect) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	rec, ok := rc.Hit(core.NewRay(origin, direction), 0.001, math.MaxFloat64, rng)
	if !ok {
		return 0
	}

	area := (rc.A1 - rc.A0) * (rc.B1 - rc.B0)
	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	return distanceSquared / (cosine * area)
}

// Random implements the Hitable interface
func (rc *Rect) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	a := rc.A0 + rng.Float64()*(rc.A1-rc.A0)
	b := rc.B0 + rng.Float64()*(rc.B1-rc.B0)
	return rc.planePoint(a, b).Subtract(origin)
}

// IsLightShape implements the Hitable interface
func (rc *Rect) IsLightShape() bool {
	return rc.Light
}
