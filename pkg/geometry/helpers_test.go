package geometry

import (
	"math/rand"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// testMaterial is a stand-in material for intersection tests; it never
// scatters
type testMaterial struct{}

func (testMaterial) Scatter(rayIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (testMaterial) ScatteringPdf(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 0
}

func (testMaterial) Emitted(rayIn core.Ray, rec core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (testMaterial) Albedo(u, v float64, p core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
