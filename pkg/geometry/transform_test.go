package geometry

import (
	"math"
	"testing"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

func TestTranslate_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))
	rng := testRNG()

	rec, ok := moved.Hit(core.NewRay(core.NewVec3(5, 0, 3), core.NewVec3(0, 0, -1)), 0.001, 1000, rng)
	if !ok {
		t.Fatal("expected hit on translated sphere")
	}
	if !rec.P.Equals(core.NewVec3(5, 0, 1)) {
		t.Errorf("hit point: expected {5 0 1}, got %v", rec.P)
	}

	// The original location no longer intersects
	if _, ok := moved.Hit(core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)), 0.001, 1000, rng); ok {
		t.Error("expected miss at the untranslated location")
	}
}

func TestTranslate_RoundTrip(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 1, testMaterial{})
	offset := core.NewVec3(-4, 7, 0.5)
	wrapped := NewTranslate(NewTranslate(sphere, offset), offset.Negate())
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(1, 2, 10), core.NewVec3(0, 0, -1))
	direct, okDirect := sphere.Hit(ray, 0.001, 1000, rng)
	viaWrap, okWrap := wrapped.Hit(ray, 0.001, 1000, rng)

	if okDirect != okWrap {
		t.Fatalf("hit disagreement: direct=%t wrapped=%t", okDirect, okWrap)
	}
	if math.Abs(direct.T-viaWrap.T) > 1e-9 || !direct.P.Equals(viaWrap.P) {
		t.Errorf("translate round trip changed the hit: %v vs %v", direct.P, viaWrap.P)
	}
}

func TestTranslate_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	moved := NewTranslate(sphere, core.NewVec3(10, 0, 0))

	box, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected bounding box")
	}
	if !box.Min.Equals(core.NewVec3(9, -1, -1)) || !box.Max.Equals(core.NewVec3(11, 1, 1)) {
		t.Errorf("unexpected box: %v %v", box.Min, box.Max)
	}
}

func TestRotateY_Hit(t *testing.T) {
	// A box rotated 90 degrees swaps its X and Z extents
	box := NewBox(core.NewVec3(-2, -1, -1), core.NewVec3(2, 1, 1), testMaterial{})
	rotated := NewRotateY(box, 90)
	rng := testRNG()

	// Along world Z the rotated box now extends to +-2
	if _, ok := rotated.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, rng); !ok {
		t.Error("expected hit along rotated long axis")
	}
	if _, ok := rotated.Hit(core.NewRay(core.NewVec3(1.5, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, rng); ok {
		t.Error("expected miss outside rotated narrow axis")
	}
}

func TestRotateY_RoundTrip(t *testing.T) {
	sphere := NewSphere(core.NewVec3(3, 0, 0), 1, testMaterial{})
	wrapped := NewRotateY(NewRotateY(sphere, 37), -37)
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(3, 0, 10), core.NewVec3(0, 0, -1))
	direct, okDirect := sphere.Hit(ray, 0.001, 1000, rng)
	viaWrap, okWrap := wrapped.Hit(ray, 0.001, 1000, rng)

	if okDirect != okWrap {
		t.Fatalf("hit disagreement: direct=%t wrapped=%t", okDirect, okWrap)
	}
	if math.Abs(direct.T-viaWrap.T) > 1e-9 {
		t.Errorf("rotate round trip changed T: %f vs %f", direct.T, viaWrap.T)
	}
	if direct.P.Subtract(viaWrap.P).Length() > 1e-9 {
		t.Errorf("rotate round trip changed the hit point: %v vs %v", direct.P, viaWrap.P)
	}
}

func TestRotateY_BoundingBoxCoversCorners(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 2), testMaterial{})
	rotated := NewRotateY(box, 45)

	got, ok := rotated.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected bounding box")
	}

	// The rotated footprint of a 2x2 base spans 2*sqrt(2) along X
	want := 2 * math.Sqrt2
	if math.Abs((got.Max.X-got.Min.X)-want) > 1e-9 {
		t.Errorf("rotated box X extent: expected %f, got %f", want, got.Max.X-got.Min.X)
	}
	if math.Abs(got.Max.Y-1) > 1e-9 || math.Abs(got.Min.Y) > 1e-9 {
		t.Errorf("rotation about Y must not change the Y extent: %v %v", got.Min, got.Max)
	}
}

func TestFlipNormals(t *testing.T) {
	rect := NewRect(PlaneXY, -1, 1, -1, 1, 0, testMaterial{})
	flipped := NewFlipNormals(rect)
	rng := testRNG()

	ray := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))
	rec, ok := rect.Hit(ray, 0.001, 1000, rng)
	if !ok {
		t.Fatal("expected hit")
	}
	flippedRec, ok := flipped.Hit(ray, 0.001, 1000, rng)
	if !ok {
		t.Fatal("expected hit through wrapper")
	}

	if !flippedRec.Normal.Equals(rec.Normal.Negate()) {
		t.Errorf("expected negated normal, got %v vs %v", flippedRec.Normal, rec.Normal)
	}
}
