package geometry

import (
	"math"
	"testing"

	"github.com/mvollmer/go-pathtracer/pkg/core"
	"github.com/mvollmer/go-pathtracer/pkg/texture"
)

func TestConstantMedium_ScattersInsideBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	// Density high enough that nearly every ray scatters inside
	medium := NewConstantMedium(boundary, 1000, texture.NewConstant(core.NewVec3(1, 1, 1)))
	rng := testRNG()

	hits := 0
	for i := 0; i < 100; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
		rec, ok := medium.Hit(ray, 0.001, math.MaxFloat64, rng)
		if !ok {
			continue
		}
		hits++
		// The scatter point must lie inside the boundary segment [4, 6]
		if rec.T < 4 || rec.T > 6 {
			t.Fatalf("scatter at t=%f outside the boundary segment", rec.T)
		}
	}

	if hits < 95 {
		t.Errorf("dense medium: expected nearly all rays to scatter, got %d/100", hits)
	}
}

func TestConstantMedium_ThinMediumMostlyPassesThrough(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	medium := NewConstantMedium(boundary, 1e-6, texture.NewConstant(core.NewVec3(1, 1, 1)))
	rng := testRNG()

	hits := 0
	for i := 0; i < 100; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
		if _, ok := medium.Hit(ray, 0.001, math.MaxFloat64, rng); ok {
			hits++
		}
	}

	if hits > 5 {
		t.Errorf("thin medium: expected almost no scatters, got %d/100", hits)
	}
}

func TestConstantMedium_MissesOutsideBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	medium := NewConstantMedium(boundary, 1000, texture.NewConstant(core.NewVec3(1, 1, 1)))
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1))
	if _, ok := medium.Hit(ray, 0.001, math.MaxFloat64, rng); ok {
		t.Error("expected a ray outside the boundary to miss")
	}
}

func TestConstantMedium_BoundingBoxDelegates(t *testing.T) {
	boundary := NewSphere(core.NewVec3(1, 2, 3), 2, testMaterial{})
	medium := NewConstantMedium(boundary, 0.5, texture.NewConstant(core.NewVec3(1, 1, 1)))

	got, ok := medium.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected bounding box")
	}
	want, _ := boundary.BoundingBox(0, 1)
	if !got.Min.Equals(want.Min) || !got.Max.Equals(want.Max) {
		t.Errorf("expected delegation to boundary box")
	}
}
