package material

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// Isotropic is the phase material for participating media: it scatters in a
// uniformly random direction regardless of the incident ray
type Isotropic struct {
	AlbedoTex texture.Texture
}

// NewIsotropic creates an isotropic phase material
func NewIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{AlbedoTex: albedo}
}

// Scatter implements the Material interface
func (iso *Isotropic) Scatter(rayIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		IsSpecular:  true,
		SpecularRay: core.NewRay(rec.P, core.RandomInUnitSphere(rng)),
		Attenuation: iso.AlbedoTex.Value(rec.U, rec.V, rec.P),
	}, true
}

// ScatteringPdf implements the Material interface
func (iso *Isotropic) ScatteringPdf(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements the Material interface
func (iso *Isotropic) Emitted(rayIn core.Ray, rec core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Albedo implements the Material interface
func (iso *Isotropic) Albedo(u, v float64, p core.Vec3) core.Vec3 {
	return iso.AlbedoTex.Value(u, v, p)
}
