package material

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// Dielectric is a clear material that reflects or refracts by Snell's law,
// weighting the choice with the Schlick approximation. Attenuation is always
// white.
type Dielectric struct {
	RefIdx float64
}

// NewDielectric creates a dielectric material with the given refractive index
func NewDielectric(refIdx float64) *Dielectric {
	return &Dielectric{RefIdx: refIdx}
}

// Scatter implements the Material interface
func (d *Dielectric) Scatter(rayIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction, rec.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if rayIn.Direction.Dot(rec.Normal) > 0 {
		outwardNormal = rec.Normal.Negate()
		niOverNt = d.RefIdx
		cosine = d.RefIdx * rayIn.Direction.Dot(rec.Normal) / rayIn.Direction.Length()
	} else {
		outwardNormal = rec.Normal
		niOverNt = 1.0 / d.RefIdx
		cosine = -rayIn.Direction.Dot(rec.Normal) / rayIn.Direction.Length()
	}

	reflectProb := 1.0
	refracted, ok := core.Refract(rayIn.Direction, outwardNormal, niOverNt)
	if ok {
		reflectProb = core.Schlick(cosine, d.RefIdx)
	}

	scatter := core.ScatterRecord{
		IsSpecular:  true,
		Attenuation: core.NewVec3(1, 1, 1),
	}
	if rng.Float64() < reflectProb {
		scatter.SpecularRay = core.NewRayAtTime(rec.P, reflected, rayIn.Time)
	} else {
		scatter.SpecularRay = core.NewRayAtTime(rec.P, refracted, rayIn.Time)
	}

	return scatter, true
}

// ScatteringPdf implements the Material interface
func (d *Dielectric) ScatteringPdf(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements the Material interface
func (d *Dielectric) Emitted(rayIn core.Ray, rec core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Albedo implements the Material interface
func (d *Dielectric) Albedo(u, v float64, p core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}
