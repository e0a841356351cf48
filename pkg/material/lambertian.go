package material

import (
	"math"
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/pdf"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// scatteringPdfFloor mirrors the clamp in pdf.Cosine: without it, near-zero
// densities in the estimator produce rogue bright pixels at low sample counts.
const scatteringPdfFloor = 0.05

// Lambertian is a perfectly diffuse material with a cosine-weighted
// scattering density and a texture-driven albedo
type Lambertian struct {
	AlbedoTex texture.Texture
}

// NewLambertian creates a lambertian material
func NewLambertian(albedo texture.Texture) *Lambertian {
	return &Lambertian{AlbedoTex: albedo}
}

// Scatter implements the Material interface
func (l *Lambertian) Scatter(rayIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	target := rec.P.Add(rec.Normal).Add(core.RandomInUnitSphere(rng))

	return core.ScatterRecord{
		IsSpecular:       false,
		Attenuation:      l.AlbedoTex.Value(rec.U, rec.V, rec.P),
		Pdf:              pdf.NewCosine(rec.Normal),
		ScatteredClassic: core.NewRayAtTime(rec.P, target.Subtract(rec.P), rayIn.Time),
	}, true
}

// ScatteringPdf implements the Material interface
func (l *Lambertian) ScatteringPdf(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return math.Max(cosine/math.Pi, scatteringPdfFloor)
}

// Emitted implements the Material interface
func (l *Lambertian) Emitted(rayIn core.Ray, rec core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Albedo implements the Material interface
func (l *Lambertian) Albedo(u, v float64, p core.Vec3) core.Vec3 {
	return l.AlbedoTex.Value(u, v, p)
}
