package material

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// Metal reflects specularly, with an optional fuzz sphere jittering the
// reflected direction
type Metal struct {
	AlbedoTex texture.Texture
	Fuzz      float64
}

// NewMetal creates a metal material; fuzz is clamped to at most 1
func NewMetal(albedo texture.Texture, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{AlbedoTex: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface
func (m *Metal) Scatter(rayIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), rec.Normal)
	jittered := reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzz))

	return core.ScatterRecord{
		IsSpecular:  true,
		SpecularRay: core.NewRay(rec.P, jittered),
		Attenuation: m.AlbedoTex.Value(rec.U, rec.V, rec.P),
	}, true
}

// ScatteringPdf implements the Material interface
func (m *Metal) ScatteringPdf(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements the Material interface
func (m *Metal) Emitted(rayIn core.Ray, rec core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Albedo implements the Material interface
func (m *Metal) Albedo(u, v float64, p core.Vec3) core.Vec3 {
	return m.AlbedoTex.Value(u, v, p)
}
