package material

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// DiffuseLight never scatters; it emits its texture on the front face only
type DiffuseLight struct {
	EmitTex texture.Texture
}

// NewDiffuseLight creates an emissive material
func NewDiffuseLight(emit texture.Texture) *DiffuseLight {
	return &DiffuseLight{EmitTex: emit}
}

// Scatter implements the Material interface; lights absorb incident rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPdf implements the Material interface
func (dl *DiffuseLight) ScatteringPdf(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements the Material interface
func (dl *DiffuseLight) Emitted(rayIn core.Ray, rec core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	if rec.Normal.Dot(rayIn.Direction) < 0 {
		return dl.EmitTex.Value(u, v, p)
	}
	return core.Vec3{}
}

// Albedo implements the Material interface
func (dl *DiffuseLight) Albedo(u, v float64, p core.Vec3) core.Vec3 {
	return dl.EmitTex.Value(u, v, p)
}
