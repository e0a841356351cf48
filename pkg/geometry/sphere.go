package geometry

import (
	"math"
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// Sphere is an analytic sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    core.Material
	Light  bool
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// NewLightSphere creates a sphere that participates in explicit light sampling
func NewLightSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat, Light: true}
}

// Hit implements the Hitable interface
func (s *Sphere) Hit(r core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	oc := r.Origin.Subtract(s.Center)

	a := r.Direction.Dot(r.Direction)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

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
	normal := p.Subtract(s.Center).Divide(s.Radius)
	u, v := core.SphereUV(normal)

	return &core.HitRecord{
		T:      root,
		P:      p,
		Normal: normal,
		U:      u,
		V:      v,
		Mat:    s.Mat,
	}, true
}

// BoundingBox implements the Hitable interface
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABBForSphere(s.Center, s.Radius), true
}

// PdfValue implements the Hitable interface. For a visible sphere the
// density is the reciprocal of the solid angle it subtends from origin.
func (s *Sphere) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.MaxFloat64, rng); !ok {
		return 0
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/s.Center.Subtract(origin).LengthSquared())
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1.0 / solidAngle
}

// Random implements the Hitable interface
func (s *Sphere) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	uvw := core.BuildFromW(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, direction.LengthSquared(), rng))
}

// IsLightShape implements the Hitable interface
func (s *Sphere) IsLightShape() bool {
	return s.Light
}
