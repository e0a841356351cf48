// Package pdf provides the directional probability densities used by the
// integrator: cosine-weighted hemisphere sampling, sampling toward a shape,
// and an equal-weight mixture of two densities.
package pdf

import (
	"math"
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// pdfFloor is the lower clamp applied to cosine densities. Near-zero values
// in the estimator denominator produce rogue bright pixels at low sample
// counts; the floor trades a small bias for their absence.
const pdfFloor = 0.05

// Cosine is a cosine-weighted density over the hemisphere about a surface
// normal
type Cosine struct {
	uvw core.OrthoNormalBasis
}

// NewCosine creates a cosine density about the normal w
func NewCosine(w core.Vec3) *Cosine {
	return &Cosine{uvw: core.BuildFromW(w)}
}

// Value implements the Pdf interface
func (c *Cosine) Value(direction core.Vec3, rng *rand.Rand) float64 {
	cosine := direction.Normalize().Dot(c.uvw.W)
	if cosine > 0 {
		return math.Max(cosine/math.Pi, pdfFloor)
	}
	return pdfFloor
}

// Generate implements the Pdf interface
func (c *Cosine) Generate(rng *rand.Rand) core.Vec3 {
	return c.uvw.Local(core.RandomCosineDirection(rng))
}

// Hitable samples directions from a fixed origin toward a shape, delegating
// to the shape's own density
type Hitable struct {
	Shape  core.Hitable
	Origin core.Vec3
}

// NewHitable creates a shape-sampling density
func NewHitable(shape core.Hitable, origin core.Vec3) *Hitable {
	return &Hitable{Shape: shape, Origin: origin}
}

// Value implements the Pdf interface
func (h *Hitable) Value(direction core.Vec3, rng *rand.Rand) float64 {
	return h.Shape.PdfValue(h.Origin, direction, rng)
}

// Generate implements the Pdf interface
func (h *Hitable) Generate(rng *rand.Rand) core.Vec3 {
	return h.Shape.Random(h.Origin, rng)
}

// Mixture averages two densities with equal weight and flips a fair coin to
// generate
type Mixture struct {
	P0, P1 core.Pdf
}

// NewMixture creates an equal-weight mixture of two densities
func NewMixture(p0, p1 core.Pdf) *Mixture {
	return &Mixture{P0: p0, P1: p1}
}

// Value implements the Pdf interface
func (m *Mixture) Value(direction core.Vec3, rng *rand.Rand) float64 {
	return 0.5*m.P0.Value(direction, rng) + 0.5*m.P1.Value(direction, rng)
}

// Generate implements the Pdf interface
func (m *Mixture) Generate(rng *rand.Rand) core.Vec3 {
	if rng.Float64() < 0.5 {
		return m.P0.Generate(rng)
	}
	return m.P1.Generate(rng)
}
