package geometry

import (
	"math"
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// MovingSphere is a sphere whose center interpolates linearly between two
// points over the shutter interval, producing motion blur
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Mat              core.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat core.Material) *MovingSphere {
	return &MovingSphere{
		Center0: center0, Center1: center1,
		Time0: time0, Time1: time1,
		Radius: radius, Mat: mat,
	}
}

// CenterAt returns the sphere center at the given shutter time
func (ms *MovingSphere) CenterAt(time float64) core.Vec3 {
	frac := (time - ms.Time0) / (ms.Time1 - ms.Time0)
	return ms.Center0.Add(ms.Center1.Subtract(ms.Center0).Multiply(frac))
}

// Hit implements the Hitable interface
func (ms *MovingSphere) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	center := ms.CenterAt(r.Time)
	oc := r.Origin.Subtract(center)

	a := r.Direction.Dot(r.Direction)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - ms.Radius*ms.Radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-b - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-b + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	p := r.At(root)
	normal := p.Subtract(center).Divide(ms.Radius)
	u, v := core.SphereUV(normal)

	return &core.HitRecord{
		T:      root,
		P:      p,
		Normal: normal,
		U:      u,
		V:      v,
		Mat:    ms.Mat,
	}, true
}

// BoundingBox implements the Hitable interface; the box spans both endpoint
// positions so it is valid for any time in the shutter interval
func (ms *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	a := core.NewAABBForSphere(ms.Center0, ms.Radius)
	b := core.NewAABBForSphere(ms.Center1, ms.Radius)
	return a.Union(b), true
}

// PdfValue implements the Hitable interface
func (ms *MovingSphere) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	return 0
}

// Random implements the Hitable interface
func (ms *MovingSphere) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// IsLightShape implements the Hitable interface
func (ms *MovingSphere) IsLightShape() bool {
	return false
}
