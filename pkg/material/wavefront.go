package material

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// Wavefront is the material attached to loaded OBJ meshes: lambertian
// scattering backed by the mesh's diffuse map, optionally flagged to behave
// as a fuzzy metal instead.
type Wavefront struct {
	Lambertian
	MakeMetal bool
	Fuzz      float64
}

// NewWavefront creates a mesh material over an already-loaded diffuse map
func NewWavefront(diffuse texture.Texture, makeMetal bool, fuzz float64) *Wavefront {
	return &Wavefront{
		Lambertian: Lambertian{AlbedoTex: diffuse},
		MakeMetal:  makeMetal,
		Fuzz:       fuzz,
	}
}

// Scatter implements the Material interface
func (w *Wavefront) Scatter(rayIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	if w.MakeMetal {
		reflected := core.Reflect(rayIn.Direction.Normalize(), rec.Normal)
		return core.ScatterRecord{
			IsSpecular:  true,
			SpecularRay: core.NewRay(rec.P, reflected.Add(core.RandomInUnitSphere(rng).Multiply(w.Fuzz))),
			Attenuation: w.AlbedoTex.Value(rec.U, rec.V, rec.P),
		}, true
	}

	scatter, ok := w.Lambertian.Scatter(rayIn, rec, rng)
	scatter.Attenuation = w.AlbedoTex.Value(rec.U, rec.V, rec.P)
	return scatter, ok
}
