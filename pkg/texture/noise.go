package texture

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

const turbulenceDepth = 7

// Noise is a marble-like procedural texture: sinusoidal bands along Z
// perturbed by Perlin turbulence. The lattice tables are built once at
// construction from the given seed, so renders are reproducible and workers
// share the same noise field.
type Noise struct {
	Scale float64
	noise *perlin.Perlin
}

// NewNoise creates a noise texture with the given band scale and seed
func NewNoise(scale float64, seed int64) *Noise {
	return &Noise{
		Scale: scale,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Value implements the Texture interface
func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1).
		Multiply(0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.turbulence(p))))
}

// turbulence sums octaves of noise with halving amplitude and doubling
// frequency
func (n *Noise) turbulence(p core.Vec3) float64 {
	accum := 0.0
	weight := 1.0
	q := p
	for i := 0; i < turbulenceDepth; i++ {
		accum += weight * n.noise.Noise3D(q.X, q.Y, q.Z)
		weight *= 0.5
		q = q.Multiply(2)
	}
	return math.Abs(accum)
}
