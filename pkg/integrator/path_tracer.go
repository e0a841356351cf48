// Package integrator implements the recursive importance-sampled path
// tracing loop.
package integrator

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/pdf"
)

// Counters aggregates the shared per-render state the integrator reports
// into. All fields are atomic, so one instance is shared across workers.
type Counters struct {
	RaysFired       atomic.Int64
	PdfQueryRetries atomic.Int64
	ExitRequested   atomic.Bool
}

// PathTracer evaluates radiance along rays by recursive scattering. When
// PdfEnabled is set and the scene carries light shapes, diffuse bounces draw
// from an equal mixture of the material's density and a density over the
// light shapes.
type PathTracer struct {
	MaxDepth   int
	PdfEnabled bool
	counters   *Counters
}

// NewPathTracer creates a path tracer reporting into the given counters
func NewPathTracer(maxDepth int, pdfEnabled bool, counters *Counters) *PathTracer {
	return &PathTracer{
		MaxDepth:   maxDepth,
		PdfEnabled: pdfEnabled,
		counters:   counters,
	}
}

// Trace returns the radiance arriving along the ray. Recursion is bounded
// strictly by MaxDepth; there is no Russian roulette.
func (pt *PathTracer) Trace(scene core.Scene, r core.Ray, depth int, rng *rand.Rand) core.Vec3 {
	// Bail promptly on cooperative cancellation
	if pt.counters.ExitRequested.Load() {
		return scene.BackgroundColor()
	}

	pt.counters.RaysFired.Add(1)

	rec, ok := scene.World().Hit(r, 0.001, math.MaxFloat64, rng)
	if !ok {
		return scene.BackgroundColor()
	}

	emitted := rec.Mat.Emitted(r, *rec, rec.U, rec.V, rec.P)

	if depth >= pt.MaxDepth {
		return emitted
	}

	scatter, ok := rec.Mat.Scatter(r, *rec, rng)
	if !ok {
		return emitted
	}

	if scatter.IsSpecular {
		return scatter.Attenuation.MultiplyVec(pt.Trace(scene, scatter.SpecularRay, depth+1, rng))
	}

	scattered := scatter.ScatteredClassic
	scatterPdf := 1.0
	pdfValue := 1.0
	if pt.PdfEnabled {
		var density core.Pdf = scatter.Pdf
		if lights := scene.LightShapes(); lights != nil {
			density = pdf.NewMixture(pdf.NewHitable(lights, rec.P), scatter.Pdf)
		}

		scattered = core.NewRayAtTime(rec.P, density.Generate(rng), r.Time)
		pdfValue = density.Value(scattered.Direction, rng)
		scatterPdf = rec.Mat.ScatteringPdf(r, *rec, scattered)
	}

	// A degenerate scatter direction contributes nothing beyond emission
	if scattered.Direction.LengthSquared() < 1e-12 {
		return emitted
	}

	// Clamp bad pdf values instead of poisoning the estimate
	if math.IsNaN(pdfValue) || math.IsInf(pdfValue, 0) {
		pdfValue = 1.0
		pt.counters.PdfQueryRetries.Add(1)
	}

	indirect := pt.Trace(scene, scattered, depth+1, rng)
	return emitted.Add(scatter.Attenuation.Multiply(scatterPdf / pdfValue).MultiplyVec(indirect))
}
