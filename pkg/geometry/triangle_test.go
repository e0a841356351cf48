package geometry

import (
	"math"
	"testing"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

func unitTriangle() *Triangle {
	return NewTriangle(
		Vertex{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), U: 0, V: 0},
		Vertex{Position: core.NewVec3(1, 0, 0), Normal: core.NewVec3(0, 0, 1), U: 1, V: 0},
		Vertex{Position: core.NewVec3(0, 1, 0), Normal: core.NewVec3(0, 0, 1), U: 0, V: 1},
		testMaterial{},
	)
}

func TestTriangle_Hit(t *testing.T) {
	tri := unitTriangle()
	rng := testRNG()

	tests := []struct {
		name    string
		origin  core.Vec3
		dir     core.Vec3
		wantHit bool
	}{
		{"inside", core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1), true},
		{"outside", core.NewVec3(0.9, 0.9, 1), core.NewVec3(0, 0, -1), false},
		{"parallel", core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0), false},
		{"behind origin", core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tri.Hit(core.NewRay(tt.origin, tt.dir), 0.001, 1000, rng)
			if ok != tt.wantHit {
				t.Errorf("Hit: expected %t, got %t", tt.wantHit, ok)
			}
		})
	}
}

func TestTriangle_BarycentricInterpolation(t *testing.T) {
	tri := unitTriangle()
	rng := testRNG()

	// Hitting vertex V1's corner region: UV approaches (1, 0)
	rec, ok := tri.Hit(core.NewRay(core.NewVec3(0.98, 0.01, 1), core.NewVec3(0, 0, -1)), 0.001, 1000, rng)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.U-0.98) > 1e-9 || math.Abs(rec.V-0.01) > 1e-9 {
		t.Errorf("UV: expected (0.98, 0.01), got (%f, %f)", rec.U, rec.V)
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Normal: expected {0 0 1}, got %v", rec.Normal)
	}
}

func TestTriangle_InterpolatedNormals(t *testing.T) {
	nLeft := core.NewVec3(-1, 0, 1).Normalize()
	nRight := core.NewVec3(1, 0, 1).Normalize()
	tri := NewTriangle(
		Vertex{Position: core.NewVec3(-1, 0, 0), Normal: nLeft},
		Vertex{Position: core.NewVec3(1, 0, 0), Normal: nRight},
		Vertex{Position: core.NewVec3(0, 2, 0), Normal: core.NewVec3(0, 0, 1)},
		testMaterial{},
	)
	rng := testRNG()

	// Near the left vertex the normal leans left, near the right it leans
	// right
	left, ok := tri.Hit(core.NewRay(core.NewVec3(-0.9, 0.05, 1), core.NewVec3(0, 0, -1)), 0.001, 1000, rng)
	if !ok {
		t.Fatal("expected left hit")
	}
	right, ok := tri.Hit(core.NewRay(core.NewVec3(0.9, 0.05, 1), core.NewVec3(0, 0, -1)), 0.001, 1000, rng)
	if !ok {
		t.Fatal("expected right hit")
	}

	if left.Normal.X >= 0 {
		t.Errorf("left normal should lean -X, got %v", left.Normal)
	}
	if right.Normal.X <= 0 {
		t.Errorf("right normal should lean +X, got %v", right.Normal)
	}
}

func TestTriangleMesh_HitViaInternalBVH(t *testing.T) {
	rng := testRNG()

	// A small grid of disjoint triangles in the z=0 plane
	var tris []*Triangle
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			x := float64(i) * 2
			y := float64(j) * 2
			tris = append(tris, NewTriangle(
				Vertex{Position: core.NewVec3(x, y, 0), Normal: core.NewVec3(0, 0, 1)},
				Vertex{Position: core.NewVec3(x+1, y, 0), Normal: core.NewVec3(0, 0, 1)},
				Vertex{Position: core.NewVec3(x, y+1, 0), Normal: core.NewVec3(0, 0, 1)},
				testMaterial{},
			))
		}
	}
	mesh := NewTriangleMesh(tris, testMaterial{}, rng)

	if _, ok := mesh.Hit(core.NewRay(core.NewVec3(4.25, 4.25, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, rng); !ok {
		t.Error("expected hit on grid triangle")
	}
	if _, ok := mesh.Hit(core.NewRay(core.NewVec3(1.5, 1.5, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, rng); ok {
		t.Error("expected miss between triangles")
	}

	box, ok := mesh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected mesh bounding box")
	}
	if !box.Contains(core.NewVec3(7, 7, 0), 1e-9) {
		t.Errorf("mesh box %v %v misses far corner", box.Min, box.Max)
	}
}
