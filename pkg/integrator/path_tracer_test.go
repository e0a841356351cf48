package integrator_test

import (
	"math/rand"
	"testing"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/geometry"
	"github.com/mvollmer/go-pathtracer/pkg/integrator"
	"github.com/mvollmer/go-pathtracer/pkg/material"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

// stubScene is a minimal core.Scene for integrator tests
type stubScene struct {
	world  core.Hitable
	lights core.Hitable
	bg     core.Vec3
}

func (s stubScene) World() core.Hitable       { return s.world }
func (s stubScene) LightShapes() core.Hitable { return s.lights }
func (s stubScene) BackgroundColor() core.Vec3 {
	return s.bg
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestTrace_MissReturnsBackground(t *testing.T) {
	scene := stubScene{
		world: geometry.NewHitableList(nil),
		bg:    core.NewVec3(0.7, 0.7, 0.7),
	}
	counters := &integrator.Counters{}
	pt := integrator.NewPathTracer(10, true, counters)

	got := pt.Trace(scene, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0, testRNG())
	if !got.Equals(scene.bg) {
		t.Errorf("expected background color, got %v", got)
	}
	if counters.RaysFired.Load() != 1 {
		t.Errorf("expected 1 ray fired, got %d", counters.RaysFired.Load())
	}
}

func TestTrace_LightEmission(t *testing.T) {
	light := material.NewDiffuseLight(texture.NewConstant(core.NewVec3(4, 4, 4)))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, light)
	scene := stubScene{
		world: geometry.NewHitableList([]core.Hitable{sphere}),
		bg:    core.Vec3{},
	}
	pt := integrator.NewPathTracer(10, true, &integrator.Counters{})

	got := pt.Trace(scene, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0, testRNG())
	if !got.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("expected direct emission (4,4,4), got %v", got)
	}
}

func TestTrace_MaxDepthReturnsEmittedOnly(t *testing.T) {
	diffuse := material.NewLambertian(texture.NewConstant(core.NewVec3(0.5, 0.5, 0.5)))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, diffuse)
	scene := stubScene{
		world: geometry.NewHitableList([]core.Hitable{sphere}),
		bg:    core.NewVec3(1, 1, 1),
	}
	pt := integrator.NewPathTracer(0, true, &integrator.Counters{})

	// depth == MaxDepth: a non-emissive hit contributes nothing
	got := pt.Trace(scene, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0, testRNG())
	if !got.IsZero() {
		t.Errorf("expected black at depth cutoff, got %v", got)
	}
}

func TestTrace_CancellationReturnsBackground(t *testing.T) {
	diffuse := material.NewLambertian(texture.NewConstant(core.NewVec3(0.5, 0.5, 0.5)))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, diffuse)
	scene := stubScene{
		world: geometry.NewHitableList([]core.Hitable{sphere}),
		bg:    core.NewVec3(0.3, 0.3, 0.3),
	}
	counters := &integrator.Counters{}
	counters.ExitRequested.Store(true)
	pt := integrator.NewPathTracer(10, true, counters)

	got := pt.Trace(scene, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0, testRNG())
	if !got.Equals(scene.bg) {
		t.Errorf("cancelled trace must return the background, got %v", got)
	}
	if counters.RaysFired.Load() != 0 {
		t.Errorf("cancelled trace must not count rays, got %d", counters.RaysFired.Load())
	}
}

func TestTrace_DiffuseGathersLight(t *testing.T) {
	// A lambertian floor under an area light: radiance reaching the floor
	// must be positive and finite over many samples
	floor := geometry.NewRect(geometry.PlaneXZ, -10, 10, -10, 10, 0,
		material.NewLambertian(texture.NewConstant(core.NewVec3(0.73, 0.73, 0.73))))
	lightMat := material.NewDiffuseLight(texture.NewConstant(core.NewVec3(15, 15, 15)))
	lightShape := geometry.NewLightRect(geometry.PlaneXZ, -2, 2, -2, 2, 5, lightMat)

	world := geometry.NewHitableList([]core.Hitable{
		floor,
		geometry.NewFlipNormals(lightShape),
	})
	scene := stubScene{
		world:  world,
		lights: geometry.NewHitableList([]core.Hitable{lightShape}),
		bg:     core.Vec3{},
	}
	pt := integrator.NewPathTracer(8, true, &integrator.Counters{})
	rng := testRNG()

	sum := core.Vec3{}
	const samples = 200
	for i := 0; i < samples; i++ {
		c := pt.Trace(scene, core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0.1, -1, 0.1)), 0, rng)
		if c.HasNaN() {
			t.Fatal("trace produced NaN")
		}
		if c.X < 0 || c.Y < 0 || c.Z < 0 {
			t.Fatalf("negative radiance %v", c)
		}
		sum = sum.Add(c)
	}

	mean := sum.Multiply(1.0 / samples)
	if mean.X <= 0 {
		t.Errorf("expected light to reach the floor, mean %v", mean)
	}
}

func TestTrace_SpecularBounceReachesBackground(t *testing.T) {
	mirror := material.NewMetal(texture.NewConstant(core.NewVec3(1, 1, 1)), 0)
	// A mirror plane reflecting straight back up into the background
	plane := geometry.NewRect(geometry.PlaneXZ, -10, 10, -10, 10, 0, mirror)
	scene := stubScene{
		world: geometry.NewHitableList([]core.Hitable{plane}),
		bg:    core.NewVec3(0.25, 0.5, 0.75),
	}
	pt := integrator.NewPathTracer(10, true, &integrator.Counters{})

	got := pt.Trace(scene, core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)), 0, testRNG())
	if !got.Equals(scene.bg) {
		t.Errorf("perfect mirror should return the background, got %v", got)
	}
}
